package report

import (
	"fmt"
	"io"
	"os"
)

// Source hands the interpreter one block of program text
type Source interface {
	Name() string
	Read() (string, error)
}

// FileSource reads a program from a file
type FileSource struct {
	Path string
}

func (s FileSource) Name() string { return s.Path }

func (s FileSource) Read() (string, error) {
	data, err := os.ReadFile(s.Path)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", s.Path, err)
	}
	return string(data), nil
}

// ReaderSource reads a program from an io.Reader such as stdin
type ReaderSource struct {
	Label  string
	Reader io.Reader
}

func (s ReaderSource) Name() string { return s.Label }

func (s ReaderSource) Read() (string, error) {
	data, err := io.ReadAll(s.Reader)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", s.Label, err)
	}
	return string(data), nil
}

// StringSource supplies program text held in memory
type StringSource struct {
	Label string
	Text  string
}

func (s StringSource) Name() string { return s.Label }

func (s StringSource) Read() (string, error) {
	return s.Text, nil
}
