package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"wordtally/internal/config"
	"wordtally/internal/input"
	"wordtally/internal/report"
	"wordtally/internal/textnorm"
	"wordtally/internal/wordcount"
)

// runCount reads a text file and prints its word counts.
func (a *app) runCount(cmd *cobra.Command, args []string) error {
	inv, err := config.ParseInvocation(args)
	if err != nil {
		return &usageError{err: err}
	}

	content, err := input.ReadFile(inv.Path)
	if err != nil {
		return err
	}
	normalized := textnorm.Normalize(content)
	a.logger.Debug("File normalized",
		zap.String("path", inv.Path),
		zap.Int("raw_bytes", len(content)),
		zap.Int("normalized_bytes", len(normalized)))

	var counts wordcount.WordCounts
	if inv.HasQuery {
		counts, err = wordcount.CountQuery(normalized, inv.Query)
	} else {
		counts, err = wordcount.Count(normalized)
	}
	if err != nil {
		return fmt.Errorf("%s: %w", inv.Path, err)
	}

	var entries []wordcount.Entry
	switch a.cfg.Report.Sort {
	case config.SortByAlpha:
		entries = counts.ByWord()
	default:
		entries = counts.ByCount()
	}
	entries = wordcount.Top(entries, a.cfg.Report.Top)

	a.logger.Info("Words counted",
		zap.String("path", inv.Path),
		zap.Bool("query", inv.HasQuery),
		zap.Int("distinct", len(counts)),
		zap.Int("total", counts.Total()),
		zap.Int("printed", len(entries)))

	return report.WriteCounts(cmd.OutOrStdout(), entries, report.OptionsFromConfig(a.cfg))
}
