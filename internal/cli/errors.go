package cli

import (
	"errors"
	"strings"

	"github.com/mvp-joe/rep/internal/args"
	"github.com/mvp-joe/rep/internal/files"
)

// formatError renders err for the terminal, with hints for the error kinds
// users can act on.
func formatError(err error) string {
	switch {
	case errors.Is(err, args.ErrUnknownFlag):
		return "Unknown flag: " + detail(err, args.ErrUnknownFlag) +
			"\n\nTip: Use 'rep --help' to see usage instructions"

	case errors.Is(err, args.ErrInvalidArguments):
		return "Invalid arguments: " + detail(err, args.ErrInvalidArguments) +
			"\n\nTip: Use 'rep --help' to see usage instructions"

	case errors.Is(err, files.ErrNoFilesMatched):
		return "No files found matching your pattern" +
			"\n\nTips:" +
			"\n  • Check if the files exist in the current directory" +
			"\n  • Try a simpler pattern (e.g., *.txt instead of complex globs)" +
			"\n  • Check files.ignore in .rep/config.yml"

	case errors.Is(err, files.ErrGlobPattern):
		return "Invalid file pattern: " + detail(err, files.ErrGlobPattern) +
			"\n\nTips:" +
			"\n  • Use * to match multiple characters (e.g., *.txt)" +
			"\n  • Use ? to match a single character" +
			"\n  • Use [abc] to match any of a, b, or c" +
			"\n  • Escape special characters with \\"

	case errors.Is(err, files.ErrFileNotFound):
		return "Cannot find file: " + detail(err, files.ErrFileNotFound) +
			"\n\nTips:" +
			"\n  • Check if the file path is correct" +
			"\n  • Use quotes for paths with spaces"

	case errors.Is(err, files.ErrPermissionDenied), errors.Is(err, files.ErrIO):
		return "File operation failed: " + detail(err, files.ErrPermissionDenied, files.ErrIO) +
			"\n\nTips:" +
			"\n  • Check if you have permission to read the file" +
			"\n  • Make sure the path names a text file, not a directory"

	default:
		return err.Error()
	}
}

// detail strips the leading "<sentinel>: " that %w wrapping puts in front of the message.
func detail(err error, sentinels ...error) string {
	msg := err.Error()
	for _, s := range sentinels {
		if rest, ok := strings.CutPrefix(msg, s.Error()+": "); ok {
			return rest
		}
	}
	return msg
}
