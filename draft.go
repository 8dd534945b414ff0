package rechlog

import (
	"context"
	"slices"
)

// Draft field names accepted by SetField. They match the JSON keys of Entry.
const (
	FieldTitle         = "title"
	FieldURL           = "url"
	FieldDescription   = "description"
	FieldEvidenceLevel = "evidenceLevel"
	FieldCategory      = "category"
	FieldNotes         = "notes"
)

// Draft is an entry being composed. ID and Date are assigned on commit.
type Draft struct {
	Title         string
	URL           string
	Description   string
	EvidenceLevel EvidenceLevel
	Category      Category
	Notes         string
	Tags          []string
}

// Validate returns an error if the draft can not be committed.
func (d *Draft) Validate() error {
	return (&Entry{Title: d.Title, URL: d.URL}).Validate()
}

// SetField overwrites one scalar field. Category and evidence level values
// must belong to their enumeration; an empty value clears the field.
func (d *Draft) SetField(name, value string) error {
	switch name {
	case FieldTitle:
		d.Title = value
	case FieldURL:
		d.URL = value
	case FieldDescription:
		d.Description = value
	case FieldNotes:
		d.Notes = value
	case FieldCategory:
		c, err := ParseCategory(value)
		if err != nil {
			return err
		}
		d.Category = c
	case FieldEvidenceLevel:
		l, err := ParseEvidenceLevel(value)
		if err != nil {
			return err
		}
		d.EvidenceLevel = l
	default:
		return Errorf(EINVALID, "unknown field %q", name)
	}
	return nil
}

// AddTag appends a tag. Empty text is ignored and reported as false.
func (d *Draft) AddTag(text string) bool {
	if text == "" {
		return false
	}
	d.Tags = append(d.Tags, text)
	return true
}

// RemoveTag removes the tag at position i. Out of range positions are ignored.
func (d *Draft) RemoveTag(i int) {
	if i < 0 || i >= len(d.Tags) {
		return
	}
	d.Tags = slices.Delete(d.Tags, i, i+1)
}

// Reset clears every field.
func (d *Draft) Reset() {
	*d = Draft{Tags: []string{}}
}

// Entry builds an entry from the draft with the given identity and date.
// Line endings in the text fields are normalized.
func (d *Draft) Entry(id, date string) *Entry {
	e := &Entry{
		ID:            id,
		Title:         d.Title,
		URL:           d.URL,
		Date:          date,
		Description:   d.Description,
		EvidenceLevel: d.EvidenceLevel,
		Category:      d.Category,
		Notes:         d.Notes,
		Tags:          d.Tags,
	}
	return e.Normalized()
}

// Form couples a draft with a pending tag input and the service it commits to.
type Form struct {
	Draft    Draft
	TagInput string

	Entries EntryService
}

// NewForm returns a form with an empty draft committing to entries.
func NewForm(entries EntryService) *Form {
	f := &Form{Entries: entries}
	f.Draft.Reset()
	return f
}

// CommitTag moves the pending tag input into the draft and clears the input.
// An empty input does nothing.
func (f *Form) CommitTag() {
	if f.Draft.AddTag(f.TagInput) {
		f.TagInput = ""
	}
}

// Submit creates an entry from the draft and resets the form on success.
// On failure the draft is left as it was.
func (f *Form) Submit(ctx context.Context) (*Entry, error) {
	entry, err := f.Entries.CreateEntry(ctx, &f.Draft)
	if err != nil {
		return nil, err
	}
	f.Draft.Reset()
	f.TagInput = ""
	return entry, nil
}
