// Package search finds the lines of a text that contain a literal pattern.
package search

import (
	"slices"
	"strings"

	"github.com/mvp-joe/rep/internal/flags"
)

// Config controls how lines are matched. It is derived once per run.
type Config struct {
	CaseInsensitive bool
	InvertMatch     bool
}

// ConfigFromFlags builds a Config from the parsed flag sequence.
// WordMatch is accepted by the flag model but has no effect here.
func ConfigFromFlags(fl []flags.Flag) Config {
	return Config{
		CaseInsensitive: slices.Contains(fl, flags.CaseInsensitive),
		InvertMatch:     slices.Contains(fl, flags.Invert),
	}
}

// MatchedLine is a selected line and its zero-based position in the content.
type MatchedLine struct {
	LineNumber int
	Content    string
}

// Result holds the selected lines in their original order.
// TotalCount always equals len(Matches).
type Result struct {
	Matches    []MatchedLine
	TotalCount int
}

// Search returns every line of content that contains pattern, or every line
// that does not when cfg.InvertMatch is set. An empty pattern matches all lines.
// Empty content has no lines, so the result is empty even when inverted.
func Search(content, pattern string, cfg Config) Result {
	needle := pattern
	if cfg.CaseInsensitive {
		needle = strings.ToLower(pattern)
	}

	matches := []MatchedLine{}
	for i, line := range splitLines(content) {
		var isMatch bool
		if cfg.CaseInsensitive {
			isMatch = strings.Contains(strings.ToLower(line), needle)
		} else {
			isMatch = strings.Contains(line, needle)
		}

		if isMatch != cfg.InvertMatch {
			matches = append(matches, MatchedLine{LineNumber: i, Content: line})
		}
	}

	return Result{
		Matches:    matches,
		TotalCount: len(matches),
	}
}

// splitLines splits on '\n' and drops a trailing '\r' from each line.
// A final terminator does not produce an extra empty line.
func splitLines(content string) []string {
	if content == "" {
		return nil
	}

	lines := strings.Split(content, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}
