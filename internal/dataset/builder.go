package dataset

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"math/rand/v2"

	"github.com/modu-ai/sniglet/internal/wordlist"
)

// Stages is notified as a build moves through its phases. Implementations
// typically drive a spinner and a progress bar.
type Stages interface {
	// Importing is called before the word lists are read. The returned
	// function is called once reading has finished.
	Importing(paths []string) (done func())
	// Writing is called with the total row count before files are written.
	Writing(totalRows int) Reporter
}

type nopStages struct{}

func (nopStages) Importing([]string) func() { return func() {} }
func (nopStages) Writing(int) Reporter       { return nopReporter{} }

// Result summarizes a completed build.
type Result struct {
	Words   int
	Files   []wordlist.FileStats
	Dataset *Dataset
	Outputs []Output
}

// Builder runs the full pipeline: import, assemble, write.
type Builder struct {
	importer  *wordlist.Importer
	opts      Options
	outputDir string
	rng       *rand.Rand
	logger    *slog.Logger
	stages    Stages
}

// BuilderOption customises Builder.
type BuilderOption func(*Builder)

// WithLogger sets the logger used for progress messages.
func WithLogger(logger *slog.Logger) BuilderOption {
	return func(b *Builder) {
		if logger != nil {
			b.logger = logger
		}
	}
}

// WithStages registers stage callbacks.
func WithStages(s Stages) BuilderOption {
	return func(b *Builder) {
		if s != nil {
			b.stages = s
		}
	}
}

// WithImporter overrides the word-list importer.
func WithImporter(im *wordlist.Importer) BuilderOption {
	return func(b *Builder) {
		if im != nil {
			b.importer = im
		}
	}
}

// NewBuilder creates a Builder writing into outputDir and drawing all
// randomness from rng.
func NewBuilder(outputDir string, opts Options, rng *rand.Rand, options ...BuilderOption) *Builder {
	b := &Builder{
		opts:      opts,
		outputDir: outputDir,
		rng:       rng,
		logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
		stages:    nopStages{},
	}
	for _, opt := range options {
		opt(b)
	}
	if b.importer == nil {
		b.importer = wordlist.NewImporter(nil, b.logger)
	}
	return b
}

// @MX:ANCHOR: [AUTO] Build is the single entry point of the dataset pipeline
// @MX:REASON: [AUTO] fan_in=2, called from internal/cli/dataset.go and builder_test.go
// Build imports the word lists at paths, assembles the dataset and writes the
// four CSV files. Nothing is written when the inputs hold no admissible word.
func (b *Builder) Build(ctx context.Context, paths []string) (*Result, error) {
	if len(paths) == 0 {
		return nil, ErrNoInputs
	}

	done := b.stages.Importing(paths)
	words, err := b.importer.Import(ctx, paths)
	done()
	if err != nil {
		return nil, fmt.Errorf("import word lists: %w", err)
	}
	b.logger.Info("word lists imported", "files", len(paths), "admissible", len(words))

	ds, err := Assemble(words, b.opts, b.rng)
	if err != nil {
		return nil, fmt.Errorf("assemble dataset: %w", err)
	}
	b.logger.Info("dataset assembled",
		"length", ds.Length,
		"valid", ds.Valid,
		"invalid", ds.Invalid,
		"dropped", ds.Dropped,
		"shuffles", ds.Rounds,
		"train", len(ds.Train),
		"test", len(ds.Test),
	)

	reporter := b.stages.Writing(RowCount(ds))
	outputs, err := NewWriter(b.outputDir, b.opts, reporter).WriteAll(ctx, ds)
	if err != nil {
		return nil, fmt.Errorf("write dataset: %w", err)
	}
	for _, o := range outputs {
		b.logger.Debug("dataset file written", "path", o.Path, "rows", o.Rows)
	}

	return &Result{
		Words:   len(words),
		Files:   b.importer.Stats(),
		Dataset: ds,
		Outputs: outputs,
	}, nil
}
