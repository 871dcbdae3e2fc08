package dataset

import (
	"math/rand/v2"

	"github.com/modu-ai/sniglet/internal/noise"
	"github.com/modu-ai/sniglet/pkg/models"
)

// Options controls how a dataset is assembled and written.
type Options struct {
	// Limit is the hard target length; zero uses the mean word length.
	Limit      int
	TrainRatio float64
	// Shuffle rounds are drawn from [ShuffleMin, ShuffleMax).
	ShuffleMin int
	ShuffleMax int
	Filler     rune

	LabelColumn        string
	PredictLabelColumn string
}

// DefaultOptions returns the options used when nothing is configured.
func DefaultOptions() Options {
	return Options{
		TrainRatio:         0.8,
		ShuffleMin:         25,
		ShuffleMax:         50,
		Filler:             Filler,
		LabelColumn:        "Valid",
		PredictLabelColumn: "prediction",
	}
}

// Dataset is a shuffled, labeled set of entries split into training and
// testing subsets. Every entry is at most Length characters long.
type Dataset struct {
	Length int
	Train  []models.Entry
	Test   []models.Entry

	// Valid and Invalid count the entries kept for each label.
	Valid   int
	Invalid int
	// Dropped counts entries discarded for exceeding Length.
	Dropped int
	// Rounds is the number of shuffles applied before the split.
	Rounds int
}

// Total returns the number of entries in both subsets.
func (d *Dataset) Total() int {
	return len(d.Train) + len(d.Test)
}

// TargetLength returns limit when it is positive, otherwise the floor of the
// mean length of words.
func TargetLength(words []string, limit int) (int, error) {
	if len(words) == 0 {
		return 0, ErrNoAdmissibleWords
	}
	if limit > 0 {
		return limit, nil
	}
	sum := 0
	for _, w := range words {
		sum += len(w)
	}
	return sum / len(words), nil
}

// SplitIndex returns the index at which n entries are split for the given
// training ratio.
func SplitIndex(n int, ratio float64) int {
	return int(float64(n) * ratio)
}

// Assemble builds a dataset from admissible words. One noise string is
// generated per word before length filtering, valid entries precede invalid
// ones until the shuffle, and the split happens after the last shuffle.
func Assemble(words []string, opts Options, rng *rand.Rand) (*Dataset, error) {
	length, err := TargetLength(words, opts.Limit)
	if err != nil {
		return nil, err
	}

	invalid := noise.NewGenerator(rng).Pool(len(words), length)

	ds := &Dataset{Length: length}
	entries := make([]models.Entry, 0, len(words)+len(invalid))
	entries = appendLabeled(entries, words, length, models.LabelValid, &ds.Valid, &ds.Dropped)
	entries = appendLabeled(entries, invalid, length, models.LabelInvalid, &ds.Invalid, &ds.Dropped)

	ds.Rounds = shuffleRounds(rng, opts.ShuffleMin, opts.ShuffleMax)
	for range ds.Rounds {
		rng.Shuffle(len(entries), func(i, j int) {
			entries[i], entries[j] = entries[j], entries[i]
		})
	}

	split := SplitIndex(len(entries), opts.TrainRatio)
	ds.Train = entries[:split:split]
	ds.Test = entries[split:]
	return ds, nil
}

func appendLabeled(dst []models.Entry, words []string, length int, label models.Label, kept, dropped *int) []models.Entry {
	for _, w := range words {
		if len(w) > length {
			*dropped++
			continue
		}
		dst = append(dst, models.Entry{Text: w, Label: label})
		*kept++
	}
	return dst
}

// shuffleRounds draws a round count from [lo, hi). A degenerate range
// yields lo, and at least one round is always applied.
func shuffleRounds(rng *rand.Rand, lo, hi int) int {
	lo = max(lo, 1)
	if hi <= lo {
		return lo
	}
	return lo + rng.IntN(hi-lo)
}
