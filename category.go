package rechlog

import "strings"

// Category is a research topic from a fixed list.
type Category string

// Category constants.
const (
	CategoryBiomechanics         Category = "Biomécanique"
	CategoryOsteopathy           Category = "Ostéopathie"
	CategoryNeuroscience         Category = "Neurosciences"
	CategoryAnatomy              Category = "Anatomie"
	CategoryNeuroanatomy         Category = "Neuroanatomie"
	CategoryNeurophysiology      Category = "Neurophysiologie"
	CategoryClinicalBiomechanics Category = "Biomécanique clinique"
)

// Categories lists every category in display order.
var Categories = []Category{
	CategoryBiomechanics,
	CategoryOsteopathy,
	CategoryNeuroscience,
	CategoryAnatomy,
	CategoryNeuroanatomy,
	CategoryNeurophysiology,
	CategoryClinicalBiomechanics,
}

// ParseCategory returns the category matching s, ignoring case and Unicode
// normalization form. An empty string parses to the empty category.
func ParseCategory(s string) (Category, error) {
	key := enumKey(s)
	if key == "" {
		return "", nil
	}
	for _, c := range Categories {
		if enumKey(string(c)) == key {
			return c, nil
		}
	}
	return "", Errorf(EINVALID, "unknown category %q", s)
}

// EvidenceLevel ranks the rigor of a study design.
type EvidenceLevel string

// EvidenceLevel constants, from strongest to weakest.
const (
	EvidenceMetaAnalysis  EvidenceLevel = "Niveau 1 - Méta-analyses"
	EvidenceProspective   EvidenceLevel = "Niveau 2 - Études prospectives"
	EvidenceRetrospective EvidenceLevel = "Niveau 3 - Études rétrospectives"
	EvidenceExpertOpinion EvidenceLevel = "Niveau 4 - Consensus d'experts"
)

// EvidenceLevels lists every evidence level in rank order.
var EvidenceLevels = []EvidenceLevel{
	EvidenceMetaAnalysis,
	EvidenceProspective,
	EvidenceRetrospective,
	EvidenceExpertOpinion,
}

// ParseEvidenceLevel returns the evidence level matching s. Besides the full
// label it accepts the bare rank ("1" to "4") and an en dash in place of the
// hyphen. An empty string parses to the empty level.
func ParseEvidenceLevel(s string) (EvidenceLevel, error) {
	key := enumKey(s)
	if key == "" {
		return "", nil
	}
	for i, l := range EvidenceLevels {
		if key == enumKey(string(l)) || key == string(rune('1'+i)) {
			return l, nil
		}
	}
	return "", Errorf(EINVALID, "unknown evidence level %q", s)
}

var punctuationReplacer = strings.NewReplacer(
	"–", "-", // en dash
	"—", "-", // em dash
	"’", "'", // right single quotation mark
)

// enumKey reduces an enumeration label to a comparable form.
func enumKey(s string) string {
	s = punctuationReplacer.Replace(fold(s))
	return strings.Join(strings.Fields(s), " ")
}
