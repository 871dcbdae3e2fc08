package dataset

import (
	"fmt"

	"github.com/modu-ai/sniglet/pkg/models"
)

// Filler is the default sentinel used to pad short words.
const Filler = '*'

// Pad splits word into one field per character and right pads it with filler
// up to length. A word longer than length is returned unpadded.
func Pad(word string, length int, filler rune) []string {
	size := max(len(word), length)
	fields := make([]string, 0, size)
	for _, r := range word {
		fields = append(fields, string(r))
	}
	pad := string(filler)
	for len(fields) < length {
		fields = append(fields, pad)
	}
	return fields
}

// Row returns the CSV record for an entry: the padded characters followed by
// the label.
func Row(e models.Entry, length int, filler rune) []string {
	return append(Pad(e.Text, length, filler), string(e.Label))
}

// Header returns the CSV header for rows of the given length:
// char01,...,charNN followed by labelColumn.
func Header(length int, labelColumn string) []string {
	header := make([]string, 0, length+1)
	for i := range length {
		header = append(header, fmt.Sprintf("char%02d", i+1))
	}
	return append(header, labelColumn)
}
