// Package files resolves file glob patterns to paths and reads file contents.
package files

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/gobwas/glob"
)

const globMeta = "*?[{\\"

// compiledPattern holds the pattern string and every compiled variant of it.
// A pattern with n "**/" segments has up to 2^n variants so that each "**/"
// can also match zero directories.
type compiledPattern struct {
	pattern string
	globs   []glob.Glob
}

func compilePattern(pattern string) (compiledPattern, error) {
	cp := compiledPattern{pattern: pattern}
	for _, variant := range doubleStarVariants(pattern) {
		g, err := glob.Compile(variant, '/')
		if err != nil {
			return compiledPattern{}, err
		}
		cp.globs = append(cp.globs, g)
	}
	return cp, nil
}

func (cp compiledPattern) match(path string) bool {
	for _, g := range cp.globs {
		if g.Match(path) {
			return true
		}
	}
	return false
}

// doubleStarVariants returns pattern plus every variant with one or more
// segment-leading "**/" removed.
func doubleStarVariants(pattern string) []string {
	for i := 0; i+3 <= len(pattern); i++ {
		if pattern[i:i+3] != "**/" || (i > 0 && pattern[i-1] != '/') {
			continue
		}
		head := pattern[:i]
		var out []string
		for _, rest := range doubleStarVariants(pattern[i+3:]) {
			out = append(out, head+"**/"+rest, head+rest)
		}
		return out
	}
	return []string{pattern}
}

// Expander turns file glob patterns into concrete paths.
type Expander struct {
	ignorePatterns []compiledPattern
}

// NewExpander creates an expander that drops any path matching one of the
// ignore patterns.
func NewExpander(ignorePatterns []string) (*Expander, error) {
	e := &Expander{}
	for _, pattern := range ignorePatterns {
		cp, err := compilePattern(filepath.ToSlash(pattern))
		if err != nil {
			return nil, fmt.Errorf("%w: '%s' - %v", ErrGlobPattern, pattern, err)
		}
		e.ignorePatterns = append(e.ignorePatterns, cp)
	}
	return e, nil
}

// Expand resolves each pattern in order and concatenates the results.
// Paths within one pattern come back in lexical walk order. An expansion
// that yields nothing at all is ErrNoFilesMatched.
func (e *Expander) Expand(patterns []string) ([]string, error) {
	var paths []string

	for _, pattern := range patterns {
		matched, err := e.expandOne(pattern)
		if err != nil {
			return nil, err
		}
		paths = append(paths, matched...)
	}

	if len(paths) == 0 {
		return nil, ErrNoFilesMatched
	}
	return paths, nil
}

func (e *Expander) expandOne(pattern string) ([]string, error) {
	slashed := filepath.ToSlash(pattern)
	prefix := ""
	if strings.HasPrefix(slashed, "./") {
		prefix = "./"
		slashed = strings.TrimLeft(slashed[2:], "/")
	}

	cp, err := compilePattern(slashed)
	if err != nil {
		return nil, fmt.Errorf("%w: '%s' - %v", ErrGlobPattern, pattern, err)
	}

	// Plain paths are taken as-is when they exist
	if !strings.ContainsAny(slashed, globMeta) {
		if _, err := os.Stat(pattern); err != nil {
			return nil, nil
		}
		if e.shouldIgnore(slashed) {
			return nil, nil
		}
		return []string{pattern}, nil
	}

	root, maxDepth := walkRoot(slashed)
	if _, err := os.Stat(root); err != nil {
		return nil, nil
	}

	var matched []string
	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return fmt.Errorf("%w: failed to read path '%s': %v", ErrGlobPattern, pattern, err)
		}

		if d.IsDir() {
			if maxDepth >= 0 && path != root && depth(root, path) >= maxDepth {
				return filepath.SkipDir
			}
			return nil
		}

		slashPath := filepath.ToSlash(path)
		if !cp.match(slashPath) || e.shouldIgnore(slashPath) {
			return nil
		}
		matched = append(matched, prefix+slashPath)
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrGlobPattern) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: failed to read path '%s': %v", ErrGlobPattern, pattern, err)
	}

	return matched, nil
}

// shouldIgnore checks if a path matches any ignore pattern.
func (e *Expander) shouldIgnore(slashPath string) bool {
	for _, cp := range e.ignorePatterns {
		if cp.match(slashPath) {
			return true
		}
	}
	return false
}

// walkRoot returns the longest directory prefix of pattern free of glob
// metacharacters, and how many path segments below it a match can sit.
// maxDepth is -1 when the pattern can match at any depth.
func walkRoot(pattern string) (root string, maxDepth int) {
	segments := strings.Split(pattern, "/")

	literal := 0
	for literal < len(segments)-1 && !strings.ContainsAny(segments[literal], globMeta) {
		literal++
	}

	root = strings.Join(segments[:literal], "/")
	switch {
	case root == "" && literal > 0:
		root = "/"
	case root == "":
		root = "."
	}

	maxDepth = len(segments) - literal
	if strings.Contains(pattern, "**") || strings.Contains(pattern, "{") {
		maxDepth = -1
	}
	return filepath.FromSlash(root), maxDepth
}

func depth(root, path string) int {
	rel, err := filepath.Rel(root, path)
	if err != nil || rel == "." {
		return 0
	}
	return strings.Count(filepath.ToSlash(rel), "/") + 1
}
