package dataset

import (
	"context"
	"encoding/csv"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/modu-ai/sniglet/pkg/models"
)

func readCSVAll(t *testing.T, path string) [][]string {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	all, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	return all
}

type countingReporter struct {
	rows   int
	done   int
	titles []string
}

func (r *countingReporter) Increment(n int)       { r.rows += n }
func (r *countingReporter) SetTitle(title string) { r.titles = append(r.titles, title) }
func (r *countingReporter) Done()                 { r.done++ }

func sampleDataset() *Dataset {
	return &Dataset{
		Length: 5,
		Train: []models.Entry{
			{Text: "cat", Label: models.LabelValid},
			{Text: "qwzx", Label: models.LabelInvalid},
			{Text: "mouse", Label: models.LabelValid},
		},
		Test: []models.Entry{
			{Text: "ptk", Label: models.LabelInvalid},
		},
	}
}

func TestWriteAllProducesFourFiles(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "datasets")
	rep := &countingReporter{}

	outputs, err := NewWriter(dir, DefaultOptions(), rep).WriteAll(context.Background(), sampleDataset())
	require.NoError(t, err)

	require.Len(t, outputs, 4)
	assert.Equal(t, []Output{
		{Path: filepath.Join(dir, TrainFile), Rows: 3},
		{Path: filepath.Join(dir, TestFile), Rows: 1},
		{Path: filepath.Join(dir, TrainPredictFile), Rows: 3},
		{Path: filepath.Join(dir, TestPredictFile), Rows: 1},
	}, outputs)

	assert.Equal(t, RowCount(sampleDataset()), rep.rows)
	assert.Equal(t, 1, rep.done)
	assert.Equal(t, []string{
		"Writing " + TrainFile,
		"Writing " + TestFile,
		"Writing " + TrainPredictFile,
		"Writing " + TestPredictFile,
	}, rep.titles)
}

func TestWriteAllRejectsInvalidEntries(t *testing.T) {
	tests := []struct {
		name  string
		entry models.Entry
	}{
		{"longer than target", models.Entry{Text: "elephant", Label: models.LabelValid}},
		{"unknown label", models.Entry{Text: "cat", Label: models.Label("maybe")}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ds := sampleDataset()
			ds.Test = append(ds.Test, tt.entry)

			_, err := NewWriter(t.TempDir(), DefaultOptions(), nil).WriteAll(context.Background(), ds)
			assert.ErrorIs(t, err, ErrInvalidEntry)
		})
	}
}

func TestWriteAllContents(t *testing.T) {
	dir := t.TempDir()
	_, err := NewWriter(dir, DefaultOptions(), nil).WriteAll(context.Background(), sampleDataset())
	require.NoError(t, err)

	train := readCSVAll(t, filepath.Join(dir, TrainFile))
	assert.Equal(t, [][]string{
		{"char01", "char02", "char03", "char04", "char05", "Valid"},
		{"c", "a", "t", "*", "*", "valid"},
		{"q", "w", "z", "x", "*", "invalid"},
		{"m", "o", "u", "s", "e", "valid"},
	}, train)

	testPredict := readCSVAll(t, filepath.Join(dir, TestPredictFile))
	assert.Equal(t, [][]string{
		{"char01", "char02", "char03", "char04", "char05", "prediction"},
		{"p", "t", "k", "*", "*", "invalid"},
	}, testPredict)

	// Same rows under both header variants.
	trainPredict := readCSVAll(t, filepath.Join(dir, TrainPredictFile))
	assert.Equal(t, train[1:], trainPredict[1:])
}

func TestWriteAllRawFormat(t *testing.T) {
	dir := t.TempDir()
	_, err := NewWriter(dir, DefaultOptions(), nil).WriteAll(context.Background(), sampleDataset())
	require.NoError(t, err)

	raw, err := os.ReadFile(filepath.Join(dir, TestFile))
	require.NoError(t, err)
	assert.Equal(t, "char01,char02,char03,char04,char05,Valid\np,t,k,*,*,invalid\n", string(raw))
}

func TestWriteAllEveryRowHasFixedWidth(t *testing.T) {
	dir := t.TempDir()
	ds := sampleDataset()
	_, err := NewWriter(dir, DefaultOptions(), nil).WriteAll(context.Background(), ds)
	require.NoError(t, err)

	for _, name := range []string{TrainFile, TestFile, TrainPredictFile, TestPredictFile} {
		for i, row := range readCSVAll(t, filepath.Join(dir, name)) {
			assert.Len(t, row, ds.Length+1, "%s row %d", name, i)
		}
	}
}

func TestWriteAllOverwrites(t *testing.T) {
	dir := t.TempDir()
	stale := filepath.Join(dir, TrainFile)
	require.NoError(t, os.WriteFile(stale, []byte(strings.Repeat("stale\n", 100)), 0o644))

	_, err := NewWriter(dir, DefaultOptions(), nil).WriteAll(context.Background(), sampleDataset())
	require.NoError(t, err)

	assert.Len(t, readCSVAll(t, stale), 4)
}

func TestWriteAllCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	dir := t.TempDir()
	outputs, err := NewWriter(dir, DefaultOptions(), nil).WriteAll(ctx, sampleDataset())
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, outputs)
}

func TestWriteAllUnwritableDir(t *testing.T) {
	parent := t.TempDir()
	blocker := filepath.Join(parent, "file")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o644))

	_, err := NewWriter(filepath.Join(blocker, "out"), DefaultOptions(), nil).WriteAll(context.Background(), sampleDataset())
	assert.Error(t, err)
}
