package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/modu-ai/sniglet/internal/config"
	"github.com/modu-ai/sniglet/internal/dataset"
	"github.com/modu-ai/sniglet/internal/noise"
	"github.com/modu-ai/sniglet/internal/ui"
	"github.com/modu-ai/sniglet/internal/wordlist"
)

var (
	limitFlag      int
	outputDirFlag  string
	seedFlag       uint64
	noProgressFlag bool
)

var datasetCmd = &cobra.Command{
	Use:   "dataset <input>...",
	Short: "Build train/test CSV datasets from word lists",
	Long: `Build labeled CSV datasets from one or more word-list files.

Every admissible word (lowercase ASCII letters only, at least three characters,
not a possessive) is labeled "valid" and paired with a random string labeled
"invalid". Entries longer than the target length are dropped; the target
length is --limit, or the mean admissible word length when --limit is 0.

Four files are written to the output directory:
  dtrain.csv, dtest.csv                  header char01,...,charNN,Valid
  dtrain_predict.csv, dtest_predict.csv  header char01,...,charNN,prediction`,
	Args: cobra.MinimumNArgs(1),
	RunE: runDataset,
}

func init() {
	addDatasetFlags(datasetCmd.Flags())
}

// addDatasetFlags registers the build flags. The root command and the
// dataset subcommand share the same variables.
func addDatasetFlags(fs *pflag.FlagSet) {
	fs.IntVar(&limitFlag, "limit", config.DefaultLimit, "hard target length for words (0 uses the mean length)")
	fs.StringVarP(&outputDirFlag, "output-dir", "o", config.DefaultOutputDir, "directory to write the CSV files to")
	fs.Uint64Var(&seedFlag, "seed", 0, "random seed for noise and shuffling (0 picks one at random)")
	fs.BoolVar(&noProgressFlag, "no-progress", false, "disable the spinner and progress bar")
}

// runDataset loads configuration, applies flag overrides and runs the
// dataset builder over the positional inputs.
func runDataset(cmd *cobra.Command, args []string) error {
	if deps == nil {
		return fmt.Errorf("dependencies not initialized")
	}

	// Only the implicit default config file may be absent.
	load := deps.Config.Load
	if cmd.Flags().Changed("config") {
		load = deps.Config.LoadExplicit
	}
	cfg, err := load(configFlag)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	applyDatasetFlags(cmd, cfg)
	if err := config.Validate(cfg); err != nil {
		return fmt.Errorf("invalid options: %w", err)
	}

	logger := newLogger(cmd.ErrOrStderr(), cfg.System.LogLevel, cfg.System.LogFormat)
	deps.Logger = logger
	if deps.Config.Loaded() {
		logger.Debug("config loaded", "path", deps.Config.Path())
	} else {
		logger.Debug("config file not found, using defaults", "path", deps.Config.Path())
	}

	progress := ui.NewProgress(deps.Theme, deps.Headless, cmd.ErrOrStderr())
	if noProgressFlag {
		progress = ui.NewQuietProgress()
	}

	importer := wordlist.NewImporter(wordlist.NewFilter(cfg.Dataset.MinWordLength), logger)
	builder := dataset.NewBuilder(
		cfg.Dataset.OutputDir,
		datasetOptions(cfg),
		noise.NewRand(cfg.Dataset.Seed),
		dataset.WithLogger(logger),
		dataset.WithImporter(importer),
		dataset.WithStages(progressStages{progress: progress}),
	)

	res, err := builder.Build(cmd.Context(), args)
	if err != nil {
		return err
	}

	_, _ = fmt.Fprintln(cmd.OutOrStdout(), ui.RenderSummary(deps.Theme, "Dataset written", summaryOf(res)))
	return nil
}

// applyDatasetFlags copies explicitly set flags over the loaded config.
func applyDatasetFlags(cmd *cobra.Command, cfg *config.Config) {
	flags := cmd.Flags()
	if flags.Changed("limit") {
		cfg.Dataset.Limit = limitFlag
	}
	if flags.Changed("output-dir") {
		cfg.Dataset.OutputDir = outputDirFlag
	}
	if flags.Changed("seed") {
		cfg.Dataset.Seed = seedFlag
	}
	if logLevelFlag != "" {
		cfg.System.LogLevel = logLevelFlag
	}
	if logFormatFlag != "" {
		cfg.System.LogFormat = logFormatFlag
	}
}

func datasetOptions(cfg *config.Config) dataset.Options {
	return dataset.Options{
		Limit:              cfg.Dataset.Limit,
		TrainRatio:         cfg.Dataset.TrainRatio,
		ShuffleMin:         cfg.Dataset.ShuffleMin,
		ShuffleMax:         cfg.Dataset.ShuffleMax,
		Filler:             cfg.FillerRune(),
		LabelColumn:        cfg.Dataset.LabelColumn,
		PredictLabelColumn: cfg.Dataset.PredictLabelColumn,
	}
}

func summaryOf(res *dataset.Result) ui.Summary {
	s := ui.Summary{
		Words:   res.Words,
		Length:  res.Dataset.Length,
		Valid:   res.Dataset.Valid,
		Invalid: res.Dataset.Invalid,
		Dropped: res.Dataset.Dropped,
		Train:   len(res.Dataset.Train),
		Test:    len(res.Dataset.Test),
	}
	for _, o := range res.Outputs {
		s.Files = append(s.Files, ui.SummaryFile{Path: o.Path, Rows: o.Rows})
	}
	return s
}

// progressStages drives the UI from the builder's stages.
type progressStages struct {
	progress ui.Progress
}

func (s progressStages) Importing(paths []string) func() {
	sp := s.progress.Spinner(fmt.Sprintf("Reading %d word list(s)", len(paths)))
	return sp.Stop
}

func (s progressStages) Writing(total int) dataset.Reporter {
	return s.progress.Start("Writing datasets", total)
}
