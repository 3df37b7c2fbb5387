package files

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"unicode/utf8"
)

// OSReader reads whole files from the local filesystem as UTF-8 text.
type OSReader struct{}

// Read returns the full contents of path. Failures are classified as
// ErrFileNotFound, ErrPermissionDenied or ErrIO.
func (OSReader) Read(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		switch {
		case errors.Is(err, fs.ErrNotExist):
			return "", fmt.Errorf("%w: '%s'", ErrFileNotFound, path)
		case errors.Is(err, fs.ErrPermission):
			return "", fmt.Errorf("%w: permission denied when reading '%s'", ErrPermissionDenied, path)
		default:
			return "", fmt.Errorf("%w: cannot read '%s' - %v", ErrIO, path, err)
		}
	}

	if !utf8.Valid(data) {
		return "", fmt.Errorf("%w: cannot read '%s' - stream did not contain valid UTF-8", ErrIO, path)
	}

	return string(data), nil
}
