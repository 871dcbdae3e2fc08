package dataset

import (
	"bufio"
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"

	"github.com/modu-ai/sniglet/internal/defs"
	"github.com/modu-ai/sniglet/pkg/models"
)

// Output file names.
const (
	TrainFile        = defs.TrainCSV
	TestFile         = defs.TestCSV
	TrainPredictFile = defs.TrainPredictCSV
	TestPredictFile  = defs.TestPredictCSV
)

// reportEvery is the number of rows written between progress reports.
const reportEvery = 1000

// Reporter receives write progress in rows. SetTitle is called with the
// name of each file before it is written.
type Reporter interface {
	Increment(n int)
	SetTitle(title string)
	Done()
}

type nopReporter struct{}

func (nopReporter) Increment(int)   {}
func (nopReporter) SetTitle(string) {}
func (nopReporter) Done()           {}

// Output describes one written CSV file.
type Output struct {
	Path string
	Rows int
}

// Writer emits the four CSV files of a dataset into a directory.
type Writer struct {
	dir      string
	opts     Options
	reporter Reporter
}

// NewWriter creates a Writer for dir. A nil reporter discards progress.
func NewWriter(dir string, opts Options, reporter Reporter) *Writer {
	if reporter == nil {
		reporter = nopReporter{}
	}
	return &Writer{dir: dir, opts: opts, reporter: reporter}
}

// RowCount returns the number of data rows WriteAll emits for ds.
func RowCount(ds *Dataset) int {
	return 2 * ds.Total()
}

// WriteAll creates the output directory if needed and writes the training
// and testing subsets, each with both header variants. Files are written one
// at a time and closed before the next one is opened.
func (w *Writer) WriteAll(ctx context.Context, ds *Dataset) ([]Output, error) {
	defer w.reporter.Done()

	if err := os.MkdirAll(w.dir, defs.DirPerm); err != nil {
		return nil, fmt.Errorf("create output dir: %w", err)
	}

	plan := []struct {
		name    string
		label   string
		entries []models.Entry
	}{
		{TrainFile, w.opts.LabelColumn, ds.Train},
		{TestFile, w.opts.LabelColumn, ds.Test},
		{TrainPredictFile, w.opts.PredictLabelColumn, ds.Train},
		{TestPredictFile, w.opts.PredictLabelColumn, ds.Test},
	}

	outputs := make([]Output, 0, len(plan))
	for _, p := range plan {
		if err := ctx.Err(); err != nil {
			return outputs, err
		}
		path := filepath.Join(w.dir, p.name)
		w.reporter.SetTitle("Writing " + p.name)
		header := Header(ds.Length, p.label)
		if err := w.writeFile(ctx, path, header, p.entries, ds.Length); err != nil {
			return outputs, err
		}
		outputs = append(outputs, Output{Path: path, Rows: len(p.entries)})
	}
	return outputs, nil
}

func (w *Writer) writeFile(ctx context.Context, path string, header []string, entries []models.Entry, length int) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, defs.FilePerm)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}

	if err := w.writeRows(ctx, f, header, entries, length); err != nil {
		_ = f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", path, err)
	}
	return nil
}

func (w *Writer) writeRows(ctx context.Context, f *os.File, header []string, entries []models.Entry, length int) error {
	bw := bufio.NewWriter(f)
	cw := csv.NewWriter(bw)

	if err := cw.Write(header); err != nil {
		return fmt.Errorf("header: %w", err)
	}

	pending := 0
	for i, e := range entries {
		if e.Len() > length || !e.Label.IsValid() {
			return fmt.Errorf("row %d %q (%s): %w", i+1, e.Text, e.Label, ErrInvalidEntry)
		}
		if err := cw.Write(Row(e, length, w.opts.Filler)); err != nil {
			return fmt.Errorf("row %d: %w", i+1, err)
		}
		pending++
		if pending == reportEvery {
			if err := ctx.Err(); err != nil {
				return err
			}
			w.reporter.Increment(pending)
			pending = 0
		}
	}
	if pending > 0 {
		w.reporter.Increment(pending)
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("flush: %w", err)
	}
	return bw.Flush()
}
