package wordlist

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
)

// maxLineSize bounds a single line of a word list.
const maxLineSize = 1 << 20

// FileStats records how many lines of one file were read and kept.
type FileStats struct {
	Path     string
	Lines    int
	Accepted int
}

// Importer reads word-list files through a Filter.
type Importer struct {
	filter *Filter
	logger *slog.Logger
	stats  []FileStats
}

// NewImporter creates an Importer. A nil logger discards output.
func NewImporter(filter *Filter, logger *slog.Logger) *Importer {
	if filter == nil {
		filter = NewFilter(MinLength)
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Importer{filter: filter, logger: logger}
}

// Import reads every file in paths and returns the admissible words in file
// order, then line order. The first missing or unreadable file aborts the
// import.
func (im *Importer) Import(ctx context.Context, paths []string) ([]string, error) {
	im.stats = im.stats[:0]

	var words []string
	for _, path := range paths {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		st, err := im.importFile(ctx, path, &words)
		if err != nil {
			return nil, err
		}
		im.stats = append(im.stats, st)
		im.logger.Debug("word list imported", "path", path, "lines", st.Lines, "accepted", st.Accepted)
	}
	return words, nil
}

// Stats returns per-file counts from the last Import call.
func (im *Importer) Stats() []FileStats {
	out := make([]FileStats, len(im.stats))
	copy(out, im.stats)
	return out
}

func (im *Importer) importFile(ctx context.Context, path string, words *[]string) (FileStats, error) {
	st := FileStats{Path: path}

	f, err := os.Open(path)
	if err != nil {
		return st, fmt.Errorf("open word list: %w", err)
	}
	defer f.Close()

	before := len(*words)
	n, err := im.scan(ctx, f, words)
	st.Lines = n
	st.Accepted = len(*words) - before
	if err != nil {
		return st, fmt.Errorf("read word list %s: %w", path, err)
	}
	return st, nil
}

// scan appends the admissible lines of r to words and returns the number of
// lines read.
func (im *Importer) scan(ctx context.Context, r io.Reader, words *[]string) (int, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	lines := 0
	for sc.Scan() {
		lines++
		if lines%10000 == 0 {
			if err := ctx.Err(); err != nil {
				return lines, err
			}
		}
		line := sc.Text()
		if im.filter.Admit(line) {
			*words = append(*words, Normalize(line))
		}
	}
	return lines, sc.Err()
}

// Import reads paths with the default filter.
func Import(ctx context.Context, paths []string) ([]string, error) {
	return NewImporter(nil, nil).Import(ctx, paths)
}
