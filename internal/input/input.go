// Package input reads source files for the tally commands and defines the
// errors shared by every command that consumes a file.
package input

import (
	"errors"
	"fmt"
	"io"
	"os"
	"unicode/utf8"
)

var (
	// ErrEmptyInput is returned when a file has no usable content.
	ErrEmptyInput = errors.New("file is empty")
	// ErrInvalidUTF8 is returned for text files that are not UTF-8 encoded.
	ErrInvalidUTF8 = errors.New("stream did not contain valid UTF-8")
)

// FileReadError reports a file that could not be opened or read.
type FileReadError struct {
	Path string
	Err  error
}

func (e *FileReadError) Error() string {
	return fmt.Sprintf("failed to read %s: %v", e.Path, e.Err)
}

func (e *FileReadError) Unwrap() error {
	return e.Err
}

// Open opens path for reading. Failures are reported as *FileReadError.
func Open(path string) (*os.File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &FileReadError{Path: path, Err: err}
	}
	return f, nil
}

// ReadFile returns the whole content of path, which must be valid UTF-8.
func ReadFile(path string) (string, error) {
	f, err := Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return "", &FileReadError{Path: path, Err: err}
	}
	if !utf8.Valid(data) {
		return "", &FileReadError{Path: path, Err: ErrInvalidUTF8}
	}
	return string(data), nil
}
