package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"wordtally/internal/config"
	"wordtally/internal/logging"
)

// app holds the state shared by all commands of one execution.
type app struct {
	// Global flags
	verbose    bool
	configPath string

	// Report flags, applied over the config file when set
	top    int
	sortBy string
	format string
	style  string
	theme  string

	cfg    *config.Config
	logger *zap.Logger
}

// usageError marks errors caused by how the command was invoked.
type usageError struct {
	err error
}

func (e *usageError) Error() string { return e.err.Error() }
func (e *usageError) Unwrap() error { return e.err }

func newRootCmd() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:   "tally <file-path> [query]",
		Short: "Count word frequencies in a text file",
		Long: `tally lowercases a text file, strips ASCII punctuation and counts
every whitespace-delimited word. With a query, only the occurrences of
that query are counted. The query is matched as typed against the
lowercased text, so "CAT" never matches.

A file named like a subcommand (config, csvstats) must be given with a
path prefix, e.g. ./config.

Examples:
  tally book.txt
  tally book.txt whale
  tally book.txt --top 10 --format table
  tally ./config
  tally csvstats tracks.csv price`,
		Args:              cobra.ArbitraryArgs,
		SilenceErrors:     true,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
		RunE: a.runCount,
	}

	rootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return &usageError{err: err}
	})

	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&a.configPath, "config", "", "YAML configuration file")
	rootCmd.PersistentFlags().StringVarP(&a.format, "format", "f", config.FormatText, "Output format: text, json, yaml, markdown, table")
	rootCmd.PersistentFlags().StringVar(&a.style, "style", "", "Glamour style for markdown output (e.g. dark, light, ascii, notty)")
	rootCmd.PersistentFlags().StringVar(&a.theme, "theme", "light", "Table color theme: light, dark")

	// Word count flags
	rootCmd.Flags().IntVarP(&a.top, "top", "n", 0, "Only print the N most frequent words (0 = all)")
	rootCmd.Flags().StringVar(&a.sortBy, "sort", config.SortByCount, "Ordering: count (descending, then word) or alpha")

	rootCmd.AddCommand(a.newCSVStatsCmd())
	rootCmd.AddCommand(a.newConfigCmd())

	return rootCmd
}

// setup loads the configuration, applies explicit flags over it and
// builds the logger.
func (a *app) setup(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("top") {
		cfg.Report.Top = a.top
	}
	if flags.Changed("sort") {
		cfg.Report.Sort = a.sortBy
	}
	if flags.Changed("format") {
		cfg.Report.Format = a.format
	}
	if flags.Changed("style") {
		cfg.Report.Style = a.style
	}
	if flags.Changed("theme") {
		cfg.Report.Theme = a.theme
	}
	if err := cfg.Validate(); err != nil {
		return &usageError{err: err}
	}
	a.cfg = cfg

	logger, err := logging.New(cfg.Logging, a.verbose)
	if err != nil {
		return err
	}
	a.logger = logger
	a.logger.Debug("Configuration loaded",
		zap.String("config", a.configPath),
		zap.String("format", cfg.Report.Format),
		zap.String("sort", cfg.Report.Sort),
		zap.Int("top", cfg.Report.Top))
	return nil
}

// run executes the CLI and returns the process exit code.
func run(args []string, stdout, stderr io.Writer) int {
	rootCmd := newRootCmd()
	rootCmd.SetArgs(args)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(stderr, describeError(err))
		return 1
	}
	return 0
}

func describeError(err error) string {
	var ue *usageError
	if errors.As(err, &ue) || errors.Is(err, config.ErrMissingArgument) {
		return fmt.Sprintf("Problem parsing arguments: %v", err)
	}
	return fmt.Sprintf("Application error: %v", err)
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}
