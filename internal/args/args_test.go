package args

// Test Plan for Args:
// - Parse() with pattern and one file
// - Parse() collects flags before the pattern
// - Parse() collects flags interleaved with positionals
// - Parse() accepts multiple file patterns in order
// - Parse() rejects unknown dash tokens and names them
// - Parse() rejects too few positionals with usage text
// - Parse() rejects an empty argv
// - Parse() agrees with flags.From() on the flag sequence
// - Usage() lists every flag

import (
	"testing"

	"github.com/mvp-joe/rep/internal/flags"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_Basic(t *testing.T) {
	t.Parallel()

	got, err := Parse([]string{"rep", "pattern", "file.txt"})
	require.NoError(t, err)

	assert.Empty(t, got.Flags)
	assert.Equal(t, "pattern", got.Pattern)
	assert.Equal(t, []string{"file.txt"}, got.FilePatterns)
}

func TestParse_WithFlags(t *testing.T) {
	t.Parallel()

	got, err := Parse([]string{"rep", "-n", "-i", "pattern", "file.txt"})
	require.NoError(t, err)

	assert.Equal(t, []flags.Flag{flags.LineNumbers, flags.CaseInsensitive}, got.Flags)
	assert.Equal(t, "pattern", got.Pattern)
	assert.Equal(t, []string{"file.txt"}, got.FilePatterns)
}

func TestParse_MixedFlagOrder(t *testing.T) {
	t.Parallel()

	argv := []string{"rep", "-n", "pattern", "-i", "file.txt", "-c"}
	got, err := Parse(argv)
	require.NoError(t, err)

	assert.Equal(t, []flags.Flag{flags.LineNumbers, flags.CaseInsensitive, flags.Count}, got.Flags)
	assert.Equal(t, flags.From(argv), got.Flags)
	assert.Equal(t, "pattern", got.Pattern)
	assert.Equal(t, []string{"file.txt"}, got.FilePatterns)
}

func TestParse_MultipleFiles(t *testing.T) {
	t.Parallel()

	got, err := Parse([]string{"rep", "-n", "pattern", "file1.txt", "*.md", "file2.txt"})
	require.NoError(t, err)

	assert.Equal(t, []string{"file1.txt", "*.md", "file2.txt"}, got.FilePatterns)
}

func TestParse_UnknownFlag(t *testing.T) {
	t.Parallel()

	for _, token := range []string{"-x", "-ni", "--line-number", "-"} {
		_, err := Parse([]string{"rep", token, "pattern", "file.txt"})
		require.Error(t, err, "token %q", token)
		assert.ErrorIs(t, err, ErrUnknownFlag)
		assert.Contains(t, err.Error(), token)
		assert.Contains(t, err.Error(), "Usage: rep")
	}
}

func TestParse_InsufficientArguments(t *testing.T) {
	t.Parallel()

	for _, argv := range [][]string{
		{"rep"},
		{"rep", "pattern"},
		{"rep", "-n", "pattern"},
		{"rep", "-n", "-i"},
	} {
		_, err := Parse(argv)
		require.Error(t, err, "argv %v", argv)
		assert.ErrorIs(t, err, ErrInvalidArguments)
		assert.Contains(t, err.Error(), "Usage: rep")
	}
}

func TestParse_Empty(t *testing.T) {
	t.Parallel()

	_, err := Parse(nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidArguments)
	assert.Contains(t, err.Error(), "no arguments provided")
}

func TestUsage(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Usage: rep [-n] [-i] [-c] [-v] [-w] [-V] <pattern> <file>...", Usage("rep"))
}
