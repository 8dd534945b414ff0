package rechlog_test

import (
	"testing"

	"github.com/fwojciec/rechlog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCategory(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		want    rechlog.Category
		wantErr bool
	}{
		{name: "exact label", input: "Ostéopathie", want: rechlog.CategoryOsteopathy},
		{name: "different case", input: "BIOMÉCANIQUE CLINIQUE", want: rechlog.CategoryClinicalBiomechanics},
		{name: "decomposed accent", input: "Biome\u0301canique", want: rechlog.CategoryBiomechanics},
		{name: "extra spaces", input: "  Biomécanique   clinique ", want: rechlog.CategoryClinicalBiomechanics},
		{name: "empty clears", input: "", want: ""},
		{name: "unknown", input: "Cardiologie", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := rechlog.ParseCategory(tt.input)

			if tt.wantErr {
				require.Error(t, err)
				assert.Equal(t, rechlog.EINVALID, rechlog.ErrorCode(err))
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseEvidenceLevel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		want    rechlog.EvidenceLevel
		wantErr bool
	}{
		{name: "exact label", input: "Niveau 1 - Méta-analyses", want: rechlog.EvidenceMetaAnalysis},
		{name: "en dash", input: "Niveau 3 – Études rétrospectives", want: rechlog.EvidenceRetrospective},
		{name: "typographic apostrophe", input: "Niveau 4 - Consensus d’experts", want: rechlog.EvidenceExpertOpinion},
		{name: "bare rank", input: "2", want: rechlog.EvidenceProspective},
		{name: "empty clears", input: "", want: ""},
		{name: "rank out of range", input: "5", wantErr: true},
		{name: "unknown", input: "Niveau 9", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := rechlog.ParseEvidenceLevel(tt.input)

			if tt.wantErr {
				require.Error(t, err)
				assert.Equal(t, rechlog.EINVALID, rechlog.ErrorCode(err))
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
