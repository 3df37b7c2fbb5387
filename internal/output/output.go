// Package output renders search results as text lines.
package output

import (
	"slices"
	"strconv"
	"strings"

	"github.com/mvp-joe/rep/internal/flags"
)

// Mode selects between per-line output and a per-file count.
type Mode int

const (
	FullLines Mode = iota
	Count
)

func (m Mode) String() string {
	if m == Count {
		return "count"
	}
	return "full-lines"
}

// ModeFromFlags returns Count if any Count flag is present.
func ModeFromFlags(fl []flags.Flag) Mode {
	if slices.Contains(fl, flags.Count) {
		return Count
	}
	return FullLines
}

// Config controls how results are rendered for a whole run.
type Config struct {
	Mode            Mode
	ShowLineNumbers bool
	ShowFilename    bool
}

// NewConfig derives the output configuration from the flags and whether more
// than one file is being searched. Line numbers are never shown in count mode.
func NewConfig(fl []flags.Flag, multipleFiles bool) Config {
	mode := ModeFromFlags(fl)
	return Config{
		Mode:            mode,
		ShowLineNumbers: mode != Count && slices.Contains(fl, flags.LineNumbers),
		ShowFilename:    multipleFiles,
	}
}

// FormatMatch renders one selected line. lineNumber is zero-based and printed
// one-based. An empty filename is treated as absent.
func FormatMatch(line string, lineNumber int, filename string, cfg Config) string {
	var parts []string

	if filename != "" && cfg.ShowFilename {
		parts = append(parts, filename)
	}
	if cfg.ShowLineNumbers {
		parts = append(parts, strconv.Itoa(lineNumber+1))
	}

	if len(parts) == 0 {
		return line
	}
	return strings.Join(append(parts, line), ":")
}

// FormatCount renders the number of selected lines in a file.
func FormatCount(count int, filename string, showFilename bool) string {
	if filename != "" && showFilename {
		return filename + ":" + strconv.Itoa(count)
	}
	return strconv.Itoa(count)
}
