package entities

import (
	"errors"
	"fmt"
)

// Sentinel errors for errors.Is matching
var (
	ErrInvalidBundleFormat = errors.New("invalid bundle format")
	ErrFileNotFound        = errors.New("file not found")
	ErrPermissionDenied    = errors.New("permission denied")
	ErrFileIO              = errors.New("file I/O error")
	ErrUploadDirNotFound   = errors.New("upload directory not found")
	ErrChecksumMismatch    = errors.New("checksum mismatch")
)

// InvalidBundleError is returned when a filename matches none of the bundle grammars
type InvalidBundleError struct {
	Filename string
}

func (e *InvalidBundleError) Error() string {
	return fmt.Sprintf("invalid bundle format: %s", e.Filename)
}

// Is reports whether target is ErrInvalidBundleFormat
func (e *InvalidBundleError) Is(target error) bool {
	return target == ErrInvalidBundleFormat
}

// FileErrorKind classifies a file access failure
type FileErrorKind int

// File access failure kinds
const (
	FileNotFound FileErrorKind = iota
	PermissionDenied
	IOFailure
)

func (k FileErrorKind) String() string {
	switch k {
	case FileNotFound:
		return "not_found"
	case PermissionDenied:
		return "permission_denied"
	default:
		return "io_error"
	}
}

// FileError reports a failure to read a file, with the offending path
type FileError struct {
	Kind FileErrorKind
	Path string
	Err  error
}

func (e *FileError) Error() string {
	switch e.Kind {
	case FileNotFound:
		return fmt.Sprintf("file not found: %s", e.Path)
	case PermissionDenied:
		return fmt.Sprintf("permission denied: %s", e.Path)
	default:
		return fmt.Sprintf("error hashing file %s: %v", e.Path, e.Err)
	}
}

// Unwrap returns the underlying cause
func (e *FileError) Unwrap() error {
	return e.Err
}

// Is matches the sentinel for the error kind
func (e *FileError) Is(target error) bool {
	switch target {
	case ErrFileNotFound:
		return e.Kind == FileNotFound
	case ErrPermissionDenied:
		return e.Kind == PermissionDenied
	case ErrFileIO:
		return e.Kind == IOFailure
	}
	return false
}

// ChecksumMismatchError is returned when a file's digest differs from the expected one
type ChecksumMismatchError struct {
	Path     string
	Expected string
	Actual   string
}

func (e *ChecksumMismatchError) Error() string {
	return fmt.Sprintf("checksum mismatch for %s: expected %s, got %s", e.Path, e.Expected, e.Actual)
}

// Is reports whether target is ErrChecksumMismatch
func (e *ChecksumMismatchError) Is(target error) bool {
	return target == ErrChecksumMismatch
}
