package wordcount

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wordtally/internal/input"
	"wordtally/internal/textnorm"
)

func TestCount(t *testing.T) {
	content := textnorm.Normalize("The cat sat. The CAT sat!")
	require.Equal(t, "the cat sat the cat sat", content)

	got, err := Count(content)
	require.NoError(t, err)

	want := WordCounts{"the": 2, "cat": 2, "sat": 2}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Count() mismatch (-want +got):\n%s", diff)
	}
}

func TestCountQuery(t *testing.T) {
	content := textnorm.Normalize("The cat sat. The CAT sat!")

	got, err := CountQuery(content, "cat")
	require.NoError(t, err)
	assert.Equal(t, WordCounts{"cat": 2}, got)
}

func TestCountQueryIsLiteral(t *testing.T) {
	content := textnorm.Normalize("The cat sat. The CAT sat!")

	tests := []struct {
		query string
		want  WordCounts
	}{
		{"CAT", WordCounts{"CAT": 0}},
		{"cat.", WordCounts{"cat.": 0}},
		{"c-a-t", WordCounts{"c-a-t": 0}},
		{"cat sat", WordCounts{"cat sat": 2}},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			got, err := CountQuery(content, tt.query)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCountQueryMatchesSubstrings(t *testing.T) {
	content := textnorm.Normalize("concatenate the cat; scatter cats")

	got, err := CountQuery(content, "cat")
	require.NoError(t, err)
	assert.Equal(t, 4, got["cat"])
}

func TestCountQueryNonOverlapping(t *testing.T) {
	got, err := CountQuery("aaaa", "aa")
	require.NoError(t, err)
	assert.Equal(t, 2, got["aa"])
}

func TestCountQueryMissingWord(t *testing.T) {
	got, err := CountQuery("the cat sat", "dog")
	require.NoError(t, err)
	assert.Equal(t, WordCounts{"dog": 0}, got)
}

func TestEmptyInput(t *testing.T) {
	_, err := Count("")
	assert.True(t, errors.Is(err, input.ErrEmptyInput))

	_, err = CountQuery("", "cat")
	assert.True(t, errors.Is(err, input.ErrEmptyInput))
}

func TestEmptyQuery(t *testing.T) {
	_, err := CountQuery("the cat", "")
	assert.True(t, errors.Is(err, ErrEmptyQuery))

	got, err := CountQuery("the cat", "?!")
	require.NoError(t, err)
	assert.Equal(t, WordCounts{"?!": 0}, got)
}

func TestWhitespaceOnlyContent(t *testing.T) {
	got, err := Count(" \n\t ")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestTotalMatchesTokenCount(t *testing.T) {
	inputs := []string{
		"The cat sat. The CAT sat!",
		"one, two; three: one... two? ONE!",
		"  lead and trail  \n\n spaces\tand tabs ",
		"it's a dog-eat-dog world -- isn't it?",
		"a",
	}

	for _, raw := range inputs {
		content := textnorm.Normalize(raw)
		counts, err := Count(content)
		require.NoError(t, err)

		assert.Equal(t, len(textnorm.Tokens(content)), counts.Total(), "input %q", raw)
		for word := range counts {
			assert.NotEmpty(t, word)
			for _, r := range word {
				assert.False(t, textnorm.IsPunct(r), "word %q contains punctuation", word)
			}
		}
	}
}

func TestByCount(t *testing.T) {
	counts := WordCounts{"b": 2, "a": 2, "c": 5, "d": 1}

	want := []Entry{
		{Word: "c", Count: 5},
		{Word: "a", Count: 2},
		{Word: "b", Count: 2},
		{Word: "d", Count: 1},
	}
	if diff := cmp.Diff(want, counts.ByCount()); diff != "" {
		t.Errorf("ByCount() mismatch (-want +got):\n%s", diff)
	}
}

func TestByWord(t *testing.T) {
	counts := WordCounts{"pear": 1, "apple": 3, "fig": 2}

	want := []Entry{
		{Word: "apple", Count: 3},
		{Word: "fig", Count: 2},
		{Word: "pear", Count: 1},
	}
	if diff := cmp.Diff(want, counts.ByWord()); diff != "" {
		t.Errorf("ByWord() mismatch (-want +got):\n%s", diff)
	}
}

func TestTop(t *testing.T) {
	entries := WordCounts{"a": 3, "b": 2, "c": 1}.ByCount()

	assert.Len(t, Top(entries, 2), 2)
	assert.Equal(t, "a", Top(entries, 1)[0].Word)
	assert.Len(t, Top(entries, 0), 3)
	assert.Len(t, Top(entries, 10), 3)
	assert.Len(t, Top(entries, -1), 3)
}
