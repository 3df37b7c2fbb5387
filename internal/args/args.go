// Package args splits a raw argument vector into flags, the search pattern and
// the file patterns.
package args

import (
	"errors"
	"fmt"
	"strings"

	"github.com/mvp-joe/rep/internal/flags"
)

var (
	// ErrInvalidArguments indicates the pattern or file patterns are missing
	ErrInvalidArguments = errors.New("invalid arguments")

	// ErrUnknownFlag indicates a dash-prefixed token that is not a recognized flag
	ErrUnknownFlag = errors.New("unknown flag")
)

// Parsed is the result of splitting an argument vector.
type Parsed struct {
	Flags        []flags.Flag
	Pattern      string
	FilePatterns []string
}

// Usage returns the one-line usage string for programName.
func Usage(programName string) string {
	var b strings.Builder
	b.WriteString("Usage: ")
	b.WriteString(programName)
	for _, f := range flags.All {
		b.WriteString(" [")
		b.WriteString(f.String())
		b.WriteString("]")
	}
	b.WriteString(" <pattern> <file>...")
	return b.String()
}

// Parse splits argv, whose first element is the program name. Flags may appear
// anywhere; the first other token is the pattern and the rest are file patterns.
func Parse(argv []string) (Parsed, error) {
	if len(argv) == 0 {
		return Parsed{}, fmt.Errorf("%w: no arguments provided", ErrInvalidArguments)
	}

	programName := argv[0]
	parsed := Parsed{Flags: []flags.Flag{}}
	var positional []string

	for _, arg := range argv[1:] {
		if !strings.HasPrefix(arg, "-") {
			positional = append(positional, arg)
			continue
		}
		f, ok := flags.Of(arg)
		if !ok {
			return Parsed{}, fmt.Errorf("%w: %s\n%s", ErrUnknownFlag, arg, Usage(programName))
		}
		parsed.Flags = append(parsed.Flags, f)
	}

	if len(positional) < 2 {
		return Parsed{}, fmt.Errorf("%w: %s", ErrInvalidArguments, Usage(programName))
	}

	parsed.Pattern = positional[0]
	parsed.FilePatterns = positional[1:]
	return parsed, nil
}
