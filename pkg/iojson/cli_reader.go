package iojson

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli/v3"
)

// FileReader decodes a T from the file named by its flag, or from stdin when
// the flag is "-".
type FileReader[T any] struct {
	Name  string
	Usage string

	path  string
	stdin io.Reader
}

// Flag returns the flag that sets the input path.
func (fr *FileReader[T]) Flag() *cli.StringFlag {
	return &cli.StringFlag{
		Name:        fr.Name,
		Usage:       fr.Usage,
		Destination: &fr.path,
	}
}

// IsSet reports whether an input path was given.
func (fr *FileReader[T]) IsSet() bool {
	return fr.path != ""
}

// Read decodes the input.
func (fr *FileReader[T]) Read() (T, error) {
	var input T

	var reader io.Reader
	switch {
	case fr.path == "":
		return input, fmt.Errorf("--%s not provided", fr.Name)
	case fr.path == "-":
		reader = fr.stdin
		if reader == nil {
			reader = os.Stdin
		}
	default:
		f, err := os.Open(fr.path)
		if err != nil {
			return input, fmt.Errorf("open file: %w", err)
		}
		defer func() { _ = f.Close() }()
		reader = f
	}

	if err := json.NewDecoder(reader).Decode(&input); err != nil {
		return input, fmt.Errorf("decode JSON: %w", err)
	}
	return input, nil
}
