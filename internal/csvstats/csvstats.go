// Package csvstats computes summary statistics for one numeric column of a
// CSV file whose first non-blank line is a header.
package csvstats

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"wordtally/internal/input"
)

var (
	// ErrColumnNotFound is returned when the header has no such column.
	ErrColumnNotFound = errors.New("column not found")
	// ErrNoValidValues is returned when no row held a usable number.
	ErrNoValidValues = errors.New("no valid numeric values")
)

// ColumnStats summarizes the numeric values of one column.
type ColumnStats struct {
	Column  string  `json:"column" yaml:"column"`
	Valid   int     `json:"valid" yaml:"valid"`
	Skipped int     `json:"skipped" yaml:"skipped"`
	Min     float64 `json:"min" yaml:"min"`
	Max     float64 `json:"max" yaml:"max"`
	Mean    float64 `json:"mean" yaml:"mean"`
	StdDev  float64 `json:"std_dev" yaml:"std_dev"`
}

// Options controls CSV parsing.
type Options struct {
	Comma rune

	// Logger receives one debug line per skipped row. Nil disables logging.
	Logger *zap.Logger
}

// DefaultOptions returns comma separated parsing.
func DefaultOptions() Options {
	return Options{Comma: ','}
}

// File opens path and computes statistics for column.
func File(path, column string, opts Options) (*ColumnStats, error) {
	f, err := input.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	stats, err := Compute(f, column, opts)
	if err != nil {
		var readErr *input.FileReadError
		if errors.As(err, &readErr) {
			readErr.Path = path
		}
		return nil, err
	}
	return stats, nil
}

// Compute reads CSV from r and computes statistics for column.
// Rows where the cell is missing, blank, not a number, or not finite are
// counted as skipped.
func Compute(r io.Reader, column string, opts Options) (*ColumnStats, error) {
	if opts.Comma == 0 {
		opts.Comma = ','
	}
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	reader := csv.NewReader(r)
	reader.Comma = opts.Comma
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true
	reader.ReuseRecord = true

	header, err := readHeader(reader)
	if err != nil {
		return nil, err
	}

	idx := -1
	name := strings.TrimSpace(column)
	for i, h := range header {
		if h == name {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, fmt.Errorf("%w: %q (available: %s)", ErrColumnNotFound, name, strings.Join(header, ", "))
	}

	var acc accumulator
	skipped := 0
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, parseError(err)
		}
		if isBlank(record) {
			continue
		}

		v, ok := parseCell(record, idx)
		if !ok {
			skipped++
			line, _ := reader.FieldPos(0)
			logger.Debug("Skipping row",
				zap.String("column", name),
				zap.Int("line", line),
				zap.String("cell", cellText(record, idx)))
			continue
		}
		acc.add(v)
	}

	if acc.n == 0 {
		return nil, fmt.Errorf("%w in column %q (%d rows skipped)", ErrNoValidValues, name, skipped)
	}

	return &ColumnStats{
		Column:  name,
		Valid:   acc.n,
		Skipped: skipped,
		Min:     acc.min,
		Max:     acc.max,
		Mean:    acc.mean,
		StdDev:  acc.stdDev(),
	}, nil
}

func readHeader(reader *csv.Reader) ([]string, error) {
	for {
		record, err := reader.Read()
		if err == io.EOF {
			return nil, input.ErrEmptyInput
		}
		if err != nil {
			return nil, parseError(err)
		}
		if isBlank(record) {
			continue
		}

		header := make([]string, len(record))
		for i, h := range record {
			header[i] = strings.TrimSpace(h)
		}
		return header, nil
	}
}

func parseCell(record []string, idx int) (float64, bool) {
	if idx >= len(record) {
		return 0, false
	}
	cell := strings.TrimSpace(record[idx])
	if cell == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(cell, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}

func cellText(record []string, idx int) string {
	if idx >= len(record) {
		return ""
	}
	return record[idx]
}

func isBlank(record []string) bool {
	for _, field := range record {
		if strings.TrimSpace(field) != "" {
			return false
		}
	}
	return true
}

// parseError keeps I/O failures distinguishable from malformed CSV.
func parseError(err error) error {
	var pe *csv.ParseError
	if errors.As(err, &pe) {
		return fmt.Errorf("failed to parse csv: %w", err)
	}
	return &input.FileReadError{Err: err}
}

// accumulator tracks running statistics with Welford's method.
type accumulator struct {
	n    int
	mean float64
	m2   float64
	min  float64
	max  float64
}

func (a *accumulator) add(v float64) {
	a.n++
	if a.n == 1 {
		a.min, a.max = v, v
	} else {
		a.min = math.Min(a.min, v)
		a.max = math.Max(a.max, v)
	}
	delta := v - a.mean
	a.mean += delta / float64(a.n)
	a.m2 += delta * (v - a.mean)
}

// stdDev is the sample standard deviation; a single value has none.
func (a *accumulator) stdDev() float64 {
	if a.n < 2 {
		return 0
	}
	return math.Sqrt(a.m2 / float64(a.n-1))
}
