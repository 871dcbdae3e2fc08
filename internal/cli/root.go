package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/modu-ai/sniglet/internal/config"
	"github.com/modu-ai/sniglet/pkg/version"
)

// Global flags
var (
	configFlag    string
	logLevelFlag  string
	logFormatFlag string
)

var rootCmd = &cobra.Command{
	Use:   "sniglet <input>...",
	Short: "Build labeled word datasets for the sniglet validator",
	Long: `sniglet turns word-list files into labeled CSV datasets used to train a
character-based classifier that tells dictionary words apart from random
strings.

sniglet reads the word lists, keeps the admissible words, pairs them with
random noise strings, pads every entry to a fixed length and writes an 80/20
train/test split in two header variants. "sniglet dataset <input>..." is the
same command.`,
	Example: `  sniglet words.txt
  sniglet words.txt names.txt --limit 8 --output-dir out`,
	Args:          cobra.MinimumNArgs(1),
	RunE:          runDataset,
	Version:       version.GetVersion(),
	SilenceUsage:  true,
	SilenceErrors: false,
}

// @MX:ANCHOR: [AUTO] Execute is the main entry point for the sniglet CLI
// @MX:REASON: [AUTO] fan_in=2, called from cmd/sniglet/main.go and root_test.go
// Execute initializes dependencies and runs the root command. SIGINT and
// SIGTERM cancel the command context.
func Execute() error {
	InitDependencies()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return rootCmd.ExecuteContext(ctx)
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf("sniglet %s\n", version.GetFullVersion()))

	rootCmd.PersistentFlags().StringVarP(&configFlag, "config", "c", config.DefaultConfigFile, "config file path")
	rootCmd.PersistentFlags().StringVar(&logLevelFlag, "log-level", "", "log level: debug/info/warn/error (default from config)")
	rootCmd.PersistentFlags().StringVar(&logFormatFlag, "log-format", "", "log format: text/json (default from config)")

	addDatasetFlags(rootCmd.Flags())
	rootCmd.AddCommand(datasetCmd)
}
