package iojson

import (
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli/v3"
	"golang.org/x/term"
	"gopkg.in/yaml.v3"
)

// FileReader decodes a YAML (or JSON) document from the file named by its
// --file flag, or from stdin when the flag is unset.
type FileReader[T any] struct {
	fileFlagValue string

	// Stdin is read when no file is given. Defaults to os.Stdin.
	Stdin *os.File
}

// Flag returns the --file flag bound to the reader.
func (fr *FileReader[T]) Flag() *cli.StringFlag {
	return &cli.StringFlag{
		Name:        "file",
		Aliases:     []string{"f"},
		Usage:       "path to a YAML or JSON file (reads from stdin if not provided)",
		Destination: &fr.fileFlagValue,
	}
}

// Source returns the file path that will be read, or "-" for stdin.
func (fr *FileReader[T]) Source() string {
	if fr.fileFlagValue == "" {
		return "-"
	}
	return fr.fileFlagValue
}

// Read decodes the input into a T.
func (fr *FileReader[T]) Read() (T, error) {
	var input T

	if fr.fileFlagValue != "" {
		f, err := os.Open(fr.fileFlagValue)
		if err != nil {
			return input, fmt.Errorf("open file: %w", err)
		}
		defer func() { _ = f.Close() }()
		return Decode[T](f)
	}

	stdin := fr.Stdin
	if stdin == nil {
		stdin = os.Stdin
	}
	if term.IsTerminal(int(stdin.Fd())) {
		return input, fmt.Errorf("no input provided (stdin is a terminal); use -f flag or pipe input")
	}

	return Decode[T](stdin)
}

// Decode reads a single YAML or JSON document from r.
func Decode[T any](r io.Reader) (T, error) {
	var input T
	if err := yaml.NewDecoder(r).Decode(&input); err != nil {
		if err == io.EOF {
			return input, fmt.Errorf("decode input: document is empty")
		}
		return input, fmt.Errorf("decode input: %w", err)
	}
	return input, nil
}
