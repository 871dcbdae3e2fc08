package models

// Label classifies a dataset entry.
type Label string

const (
	// LabelValid marks an admissible dictionary word.
	LabelValid Label = "valid"

	// LabelInvalid marks a randomly generated string.
	LabelInvalid Label = "invalid"
)

// IsValid checks if the label is a known value.
func (l Label) IsValid() bool {
	switch l {
	case LabelValid, LabelInvalid:
		return true
	}
	return false
}

// Entry is a single labeled word in a dataset.
type Entry struct {
	Text  string
	Label Label
}

// Len returns the length of the entry text in bytes. Entry text is always
// ASCII, so this equals the character count.
func (e Entry) Len() int {
	return len(e.Text)
}
