package runner

// Test Plan for Runner:
// - single file, no flags prints matching lines bare
// - -i prints every line with original casing
// - -v prints the complement in order
// - -n prints one-based line numbers
// - -c prints a bare count for one file and filename:count for several
// - -n is ignored in count mode
// - several files prefix filename and keep file order
// - a read failure stops the run after earlier output and is returned unchanged
// - verbose diagnostics go to the logger, never to output
// - -w logs a warning and otherwise changes nothing

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/mvp-joe/rep/internal/flags"
)

const sample = "line one\nline two\nline three"

var errRead = errors.New("read failed")

// mapReader serves file contents from memory and records reads.
type mapReader struct {
	files map[string]string
	reads []string
}

func (m *mapReader) Read(path string) (string, error) {
	m.reads = append(m.reads, path)
	content, ok := m.files[path]
	if !ok {
		return "", errRead
	}
	return content, nil
}

func run(t *testing.T, files map[string]string, req Request) (string, error) {
	t.Helper()
	var out bytes.Buffer
	err := New(&out, &mapReader{files: files}, nil).Run(req)
	return out.String(), err
}

func TestRun_PlainMatch(t *testing.T) {
	t.Parallel()

	out, err := run(t, map[string]string{"f.txt": sample}, Request{Pattern: "two", Paths: []string{"f.txt"}})
	require.NoError(t, err)
	assert.Equal(t, "line two\n", out)
}

func TestRun_CaseInsensitive(t *testing.T) {
	t.Parallel()

	out, err := run(t, map[string]string{"f.txt": sample}, Request{
		Pattern: "LINE",
		Paths:   []string{"f.txt"},
		Flags:   []flags.Flag{flags.CaseInsensitive},
	})
	require.NoError(t, err)
	assert.Equal(t, "line one\nline two\nline three\n", out)
}

func TestRun_Invert(t *testing.T) {
	t.Parallel()

	out, err := run(t, map[string]string{"f.txt": sample}, Request{
		Pattern: "two",
		Paths:   []string{"f.txt"},
		Flags:   []flags.Flag{flags.Invert},
	})
	require.NoError(t, err)
	assert.Equal(t, "line one\nline three\n", out)
}

func TestRun_LineNumbers(t *testing.T) {
	t.Parallel()

	out, err := run(t, map[string]string{"f.txt": sample}, Request{
		Pattern: "line t",
		Paths:   []string{"f.txt"},
		Flags:   []flags.Flag{flags.LineNumbers},
	})
	require.NoError(t, err)
	assert.Equal(t, "2:line two\n3:line three\n", out)
}

func TestRun_CountSingleFile(t *testing.T) {
	t.Parallel()

	out, err := run(t, map[string]string{"f.txt": sample}, Request{
		Pattern: "line t",
		Paths:   []string{"f.txt"},
		Flags:   []flags.Flag{flags.Count, flags.LineNumbers},
	})
	require.NoError(t, err)
	assert.Equal(t, "2\n", out)

	out, err = run(t, map[string]string{"f.txt": sample}, Request{
		Pattern: "missing",
		Paths:   []string{"f.txt"},
		Flags:   []flags.Flag{flags.Count},
	})
	require.NoError(t, err)
	assert.Equal(t, "0\n", out)
}

func TestRun_CountMultipleFiles(t *testing.T) {
	t.Parallel()

	files := map[string]string{"a.txt": sample, "b.txt": "nothing here\n"}
	out, err := run(t, files, Request{
		Pattern: "line",
		Paths:   []string{"b.txt", "a.txt"},
		Flags:   []flags.Flag{flags.Count},
	})
	require.NoError(t, err)
	assert.Equal(t, "b.txt:0\na.txt:3\n", out)
}

func TestRun_MultipleFilesPrefixFilename(t *testing.T) {
	t.Parallel()

	files := map[string]string{"a.txt": sample, "b.txt": "two by two\n"}
	out, err := run(t, files, Request{
		Pattern: "two",
		Paths:   []string{"a.txt", "b.txt"},
		Flags:   []flags.Flag{flags.LineNumbers},
	})
	require.NoError(t, err)
	assert.Equal(t, "a.txt:2:line two\nb.txt:1:two by two\n", out)
}

func TestRun_ReadErrorStopsRun(t *testing.T) {
	t.Parallel()

	reader := &mapReader{files: map[string]string{"a.txt": sample, "c.txt": sample}}
	var out bytes.Buffer

	err := New(&out, reader, nil).Run(Request{
		Pattern: "one",
		Paths:   []string{"a.txt", "missing.txt", "c.txt"},
	})

	require.ErrorIs(t, err, errRead)
	assert.Equal(t, "a.txt:line one\n", out.String())
	assert.Equal(t, []string{"a.txt", "missing.txt"}, reader.reads)
}

func TestRun_VerboseDiagnosticsGoToLogger(t *testing.T) {
	t.Parallel()

	core, logs := observer.New(zapcore.InfoLevel)
	var out bytes.Buffer

	err := New(&out, &mapReader{files: map[string]string{"f.txt": sample}}, zap.New(core)).Run(Request{
		Pattern: "two",
		Paths:   []string{"f.txt"},
		Flags:   []flags.Flag{flags.Verbose},
	})
	require.NoError(t, err)

	assert.Equal(t, "line two\n", out.String())
	processing := logs.FilterMessage("processing files").All()
	require.Len(t, processing, 1)
	assert.Equal(t, int64(1), processing[0].ContextMap()["count"])
	assert.Equal(t, "full-lines", processing[0].ContextMap()["mode"])

	searched := logs.FilterMessage("searching file").All()
	require.Len(t, searched, 1)
	assert.Equal(t, "f.txt", searched[0].ContextMap()["file"])
	assert.Equal(t, "two", searched[0].ContextMap()["pattern"])

	done := logs.FilterMessage("search complete").All()
	require.Len(t, done, 1)
	assert.Equal(t, int64(1), done[0].ContextMap()["matches"])
}

func TestRun_WordMatchWarnsAndIsIgnored(t *testing.T) {
	t.Parallel()

	core, logs := observer.New(zapcore.WarnLevel)
	var out bytes.Buffer

	err := New(&out, &mapReader{files: map[string]string{"f.txt": "online\non line\n"}}, zap.New(core)).Run(Request{
		Pattern: "line",
		Paths:   []string{"f.txt"},
		Flags:   []flags.Flag{flags.WordMatch},
	})
	require.NoError(t, err)

	assert.Equal(t, "online\non line\n", out.String())
	assert.Equal(t, 1, logs.FilterLevelExact(zapcore.WarnLevel).Len())
}
