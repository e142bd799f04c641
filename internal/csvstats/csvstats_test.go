package csvstats

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"wordtally/internal/input"
)

const tracks = `name, price, qty
alpha, 1, 10
beta, 2, 20
gamma, x, 30
delta, , 40
epsilon, 3, 50
zeta, 4
`

func TestCompute(t *testing.T) {
	stats, err := Compute(strings.NewReader(tracks), "price", DefaultOptions())
	require.NoError(t, err)

	assert.Equal(t, "price", stats.Column)
	assert.Equal(t, 4, stats.Valid)
	assert.Equal(t, 2, stats.Skipped)
	assert.Equal(t, 1.0, stats.Min)
	assert.Equal(t, 4.0, stats.Max)
	assert.InDelta(t, 2.5, stats.Mean, 1e-9)
	assert.InDelta(t, 1.2909944, stats.StdDev, 1e-6)
}

func TestComputeMissingCellIsSkipped(t *testing.T) {
	stats, err := Compute(strings.NewReader(tracks), "qty", DefaultOptions())
	require.NoError(t, err)

	assert.Equal(t, 5, stats.Valid)
	assert.Equal(t, 1, stats.Skipped)
	assert.Equal(t, 30.0, stats.Mean)
}

func TestComputeSkipsLeadingBlankLines(t *testing.T) {
	data := "\n   \nvalue\n5\n\n7\n"

	stats, err := Compute(strings.NewReader(data), "value", DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, 2, stats.Valid)
	assert.Equal(t, 0, stats.Skipped)
	assert.Equal(t, 6.0, stats.Mean)
}

func TestComputeSingleValue(t *testing.T) {
	stats, err := Compute(strings.NewReader("v\n42\n"), "v", DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, 42.0, stats.Min)
	assert.Equal(t, 42.0, stats.Max)
	assert.Equal(t, 0.0, stats.StdDev)
}

func TestComputeRejectsNonFinite(t *testing.T) {
	stats, err := Compute(strings.NewReader("v\nNaN\nInf\n-Inf\n1.5\n"), "v", DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, 1, stats.Valid)
	assert.Equal(t, 3, stats.Skipped)
}

func TestComputeCustomComma(t *testing.T) {
	stats, err := Compute(strings.NewReader("a;b\n1;2\n3;4\n"), "b", Options{Comma: ';'})
	require.NoError(t, err)
	assert.Equal(t, 3.0, stats.Mean)
}

func TestComputeErrors(t *testing.T) {
	tests := []struct {
		name   string
		data   string
		column string
		want   error
	}{
		{"empty file", "", "price", input.ErrEmptyInput},
		{"blank file", "\n  \n", "price", input.ErrEmptyInput},
		{"unknown column", tracks, "cost", ErrColumnNotFound},
		{"no numbers", "price\nfree\n\n n/a \n", "price", ErrNoValidValues},
		{"header only", "price\n", "price", ErrNoValidValues},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Compute(strings.NewReader(tt.data), tt.column, DefaultOptions())
			assert.True(t, errors.Is(err, tt.want), "got %v", err)
		})
	}
}

func TestFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.csv")
	require.NoError(t, os.WriteFile(path, []byte(tracks), 0644))

	stats, err := File(path, " price ", DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, "price", stats.Column)
	assert.Equal(t, 4, stats.Valid)
}

func TestFileMissing(t *testing.T) {
	_, err := File(filepath.Join(t.TempDir(), "nope.csv"), "price", DefaultOptions())

	var readErr *input.FileReadError
	require.True(t, errors.As(err, &readErr))
	assert.True(t, errors.Is(err, fs.ErrNotExist))
}

func TestComputeLogsSkippedRows(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	opts := Options{Comma: ',', Logger: zap.New(core)}

	_, err := Compute(strings.NewReader(tracks), "price", opts)
	require.NoError(t, err)

	entries := logs.FilterMessage("Skipping row").All()
	require.Len(t, entries, 2)

	first := entries[0].ContextMap()
	assert.Equal(t, "price", first["column"])
	assert.EqualValues(t, 4, first["line"])
	assert.Equal(t, " x", first["cell"])

	second := entries[1].ContextMap()
	assert.EqualValues(t, 5, second["line"])
	assert.Equal(t, " ", second["cell"])
}
