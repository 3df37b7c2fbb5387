package files

import "errors"

var (
	// ErrNoFilesMatched indicates every file pattern expanded to zero paths
	ErrNoFilesMatched = errors.New("no files matched")

	// ErrGlobPattern indicates an invalid glob expression or an unreadable directory during expansion
	ErrGlobPattern = errors.New("invalid file pattern")

	// ErrFileNotFound indicates a resolved path no longer exists
	ErrFileNotFound = errors.New("file not found")

	// ErrPermissionDenied indicates a resolved path cannot be read by the current user
	ErrPermissionDenied = errors.New("permission denied")

	// ErrIO indicates any other failure while reading a file
	ErrIO = errors.New("file operation failed")
)
