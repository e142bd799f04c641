package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"wordtally/internal/config"
	"wordtally/internal/csvstats"
	"wordtally/internal/report"
)

func (a *app) newCSVStatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "csvstats <file-path> <column>",
		Short: "Summary statistics for one numeric CSV column",
		Long: `Reads a CSV file whose first non-blank line is a header, parses the
named column as numbers and prints count, min, max, mean and standard
deviation. Rows with a missing or non-numeric value are skipped and counted.

Example:
  tally csvstats tracks.csv price`,
		Args: func(cmd *cobra.Command, args []string) error {
			switch {
			case len(args) == 0:
				return fmt.Errorf("%w: missing file path", config.ErrMissingArgument)
			case len(args) == 1:
				return fmt.Errorf("%w: missing column name", config.ErrMissingArgument)
			case len(args) > 2:
				return &usageError{err: fmt.Errorf("too many arguments: expected <file-path> <column>, got %d", len(args))}
			}
			return nil
		},
		RunE: a.runCSVStats,
	}
}

func (a *app) runCSVStats(cmd *cobra.Command, args []string) error {
	path, column := args[0], args[1]

	stats, err := csvstats.File(path, column, csvstats.Options{
		Comma:  a.cfg.CommaRune(),
		Logger: a.logger,
	})
	if err != nil {
		return err
	}

	a.logger.Info("Column summarized",
		zap.String("path", path),
		zap.String("column", stats.Column),
		zap.Int("valid", stats.Valid),
		zap.Int("skipped", stats.Skipped))

	return report.WriteStats(cmd.OutOrStdout(), stats, report.OptionsFromConfig(a.cfg))
}
