// Package runner drives a search run: each resolved file is read, searched
// and rendered in order before the next one is touched.
package runner

import (
	"fmt"
	"io"
	"slices"

	"go.uber.org/zap"

	"github.com/mvp-joe/rep/internal/flags"
	"github.com/mvp-joe/rep/internal/output"
	"github.com/mvp-joe/rep/internal/search"
)

// FileReader supplies the full text of a file.
type FileReader interface {
	Read(path string) (string, error)
}

// Request describes one run over already resolved paths.
type Request struct {
	Pattern string
	Paths   []string
	Flags   []flags.Flag
}

// Runner writes result lines to out and diagnostics to log.
type Runner struct {
	out    io.Writer
	reader FileReader
	log    *zap.Logger
}

// New creates a Runner. A nil logger discards diagnostics.
func New(out io.Writer, reader FileReader, log *zap.Logger) *Runner {
	if log == nil {
		log = zap.NewNop()
	}
	return &Runner{
		out:    out,
		reader: reader,
		log:    log,
	}
}

// Run processes req.Paths sequentially. The first error stops the run;
// output already written for earlier files stays written.
func (r *Runner) Run(req Request) error {
	searchCfg := search.ConfigFromFlags(req.Flags)
	outputCfg := output.NewConfig(req.Flags, len(req.Paths) > 1)

	// TODO: implement whole-word matching for -w; until then it is accepted and ignored.
	if slices.Contains(req.Flags, flags.WordMatch) {
		r.log.Warn("word match (-w) is not supported yet; flag ignored")
	}

	r.log.Info("processing files",
		zap.Int("count", len(req.Paths)),
		zap.Stringer("mode", outputCfg.Mode),
	)

	for _, path := range req.Paths {
		if err := r.processFile(path, req.Pattern, searchCfg, outputCfg); err != nil {
			return err
		}
	}
	return nil
}

func (r *Runner) processFile(path, pattern string, searchCfg search.Config, outputCfg output.Config) error {
	r.log.Info("searching file",
		zap.String("file", path),
		zap.String("pattern", pattern),
		zap.Bool("case_insensitive", searchCfg.CaseInsensitive),
		zap.Bool("invert_match", searchCfg.InvertMatch),
	)

	contents, err := r.reader.Read(path)
	if err != nil {
		return err
	}

	result := search.Search(contents, pattern, searchCfg)
	r.log.Info("search complete", zap.String("file", path), zap.Int("matches", result.TotalCount))

	switch outputCfg.Mode {
	case output.Count:
		return r.writeLine(output.FormatCount(result.TotalCount, path, outputCfg.ShowFilename))
	default:
		for _, m := range result.Matches {
			if err := r.writeLine(output.FormatMatch(m.Content, m.LineNumber, path, outputCfg)); err != nil {
				return err
			}
		}
	}
	return nil
}

func (r *Runner) writeLine(line string) error {
	if _, err := fmt.Fprintln(r.out, line); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}
