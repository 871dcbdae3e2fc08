package dataset

import "errors"

// Sentinel errors for dataset operations.
var (
	// ErrNoAdmissibleWords indicates the inputs held no admissible word, so
	// no target length can be computed.
	ErrNoAdmissibleWords = errors.New("dataset: no admissible words in input")

	// ErrNoInputs indicates no input file was given.
	ErrNoInputs = errors.New("dataset: no input files")

	// ErrInvalidEntry indicates an entry longer than the target length or
	// carrying an unknown label reached the writer.
	ErrInvalidEntry = errors.New("dataset: invalid entry")
)
