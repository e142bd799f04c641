// Package report writes word counts and column statistics in the formats
// supported by the tally commands.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/glamour"
	"gopkg.in/yaml.v3"

	"wordtally/internal/config"
	"wordtally/internal/csvstats"
	"wordtally/internal/ui"
	"wordtally/internal/wordcount"
)

// Options selects the output format.
type Options struct {
	Format    string
	Style     string // glamour style, markdown only
	Theme     string // light or dark, table only
	Precision int    // decimals for statistics
}

// OptionsFromConfig builds Options from the report and csv config blocks.
func OptionsFromConfig(cfg *config.Config) Options {
	return Options{
		Format:    cfg.Report.Format,
		Style:     cfg.Report.Style,
		Theme:     cfg.Report.Theme,
		Precision: cfg.CSV.Precision,
	}
}

// WriteCounts writes entries in the order given.
func WriteCounts(w io.Writer, entries []wordcount.Entry, opts Options) error {
	if entries == nil {
		entries = []wordcount.Entry{}
	}

	switch opts.Format {
	case config.FormatText, "":
		var sb strings.Builder
		for _, e := range entries {
			fmt.Fprintf(&sb, "%s: %d\n", e.Word, e.Count)
		}
		_, err := io.WriteString(w, sb.String())
		return err
	case config.FormatJSON:
		return writeJSON(w, entries)
	case config.FormatYAML:
		return writeYAML(w, entries)
	case config.FormatMarkdown:
		var sb strings.Builder
		sb.WriteString("| Word | Count |\n| --- | ---: |\n")
		for _, e := range entries {
			fmt.Fprintf(&sb, "| %s | %d |\n", e.Word, e.Count)
		}
		return writeMarkdown(w, sb.String(), opts.Style)
	case config.FormatTable:
		table := ui.NewTable("", "Word", "Count")
		table.NumericCols[1] = true
		for _, e := range entries {
			table.AddRow(e.Word, strconv.Itoa(e.Count))
		}
		_, err := io.WriteString(w, table.View(ui.NewStyles(ui.ThemeByName(opts.Theme))))
		return err
	default:
		return fmt.Errorf("unsupported report format: %s", opts.Format)
	}
}

// WriteStats writes one column summary.
func WriteStats(w io.Writer, stats *csvstats.ColumnStats, opts Options) error {
	num := func(v float64) string {
		return strconv.FormatFloat(v, 'f', opts.Precision, 64)
	}
	rows := [][2]string{
		{"Column", stats.Column},
		{"Valid rows", strconv.Itoa(stats.Valid)},
		{"Skipped rows", strconv.Itoa(stats.Skipped)},
		{"Min", num(stats.Min)},
		{"Max", num(stats.Max)},
		{"Mean", num(stats.Mean)},
		{"Std dev", num(stats.StdDev)},
	}

	switch opts.Format {
	case config.FormatText, "":
		var sb strings.Builder
		for _, row := range rows {
			fmt.Fprintf(&sb, "%s: %s\n", row[0], row[1])
		}
		_, err := io.WriteString(w, sb.String())
		return err
	case config.FormatJSON:
		return writeJSON(w, stats)
	case config.FormatYAML:
		return writeYAML(w, stats)
	case config.FormatMarkdown:
		var sb strings.Builder
		sb.WriteString("| Statistic | Value |\n| --- | ---: |\n")
		for _, row := range rows {
			fmt.Fprintf(&sb, "| %s | %s |\n", row[0], strings.ReplaceAll(row[1], "|", `\|`))
		}
		return writeMarkdown(w, sb.String(), opts.Style)
	case config.FormatTable:
		table := ui.NewTable("", "Statistic", "Value")
		table.NumericCols[1] = true
		for _, row := range rows {
			table.AddRow(row[0], row[1])
		}
		_, err := io.WriteString(w, table.View(ui.NewStyles(ui.ThemeByName(opts.Theme))))
		return err
	default:
		return fmt.Errorf("unsupported report format: %s", opts.Format)
	}
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to encode json: %w", err)
	}
	return nil
}

func writeYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to encode yaml: %w", err)
	}
	return enc.Close()
}

// writeMarkdown writes md as is, or rendered through glamour when a style
// is named.
func writeMarkdown(w io.Writer, md, style string) error {
	if style == "" {
		_, err := io.WriteString(w, md)
		return err
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithStylePath(style),
		glamour.WithWordWrap(80),
	)
	if err != nil {
		return fmt.Errorf("failed to create markdown renderer: %w", err)
	}
	out, err := renderer.Render(md)
	if err != nil {
		return fmt.Errorf("failed to render markdown: %w", err)
	}
	_, err = io.WriteString(w, out)
	return err
}
