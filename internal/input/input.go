package input

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"orgguess/internal/textutil"
)

// Stdin is the path that selects standard input.
const Stdin = "-"

// maxLineBytes bounds a single line in line mode.
const maxLineBytes = 4 * 1024 * 1024

// ErrUnsupportedFormat is returned for inputs no reader understands.
var ErrUnsupportedFormat = errors.New("unsupported input format")

// Options controls how inputs are split and cleaned.
type Options struct {
	// Whole treats each plain-text input as a single text instead of one
	// text per line.
	Whole bool
	// StripHTML removes markup from every text.
	StripHTML bool
	// StripNoise removes bracket symbols and runs of punctuation.
	StripNoise bool
	// Sheet selects the XLSX sheet; empty means the first sheet.
	Sheet string
	// Column selects the XLSX column by letters; empty means "A".
	Column string
	// Stdin replaces os.Stdin for the "-" path.
	Stdin io.Reader
}

// Read loads the texts in path. Blank texts are dropped.
func Read(path string, opts Options) ([]string, error) {
	var (
		texts []string
		err   error
	)
	switch format(path) {
	case "stdin":
		r := opts.Stdin
		if r == nil {
			r = os.Stdin
		}
		texts, err = ReadLines(r, opts.Whole)
	case "json":
		texts, err = readFile(path, ReadJSON)
	case "xlsx":
		texts, err = ReadXLSX(path, opts.Sheet, opts.Column)
	case "html":
		texts, err = readFile(path, ReadHTML)
	case "text":
		texts, err = readFile(path, func(r io.Reader) ([]string, error) {
			return ReadLines(r, opts.Whole)
		})
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", displayPath(path), err)
	}
	return Clean(texts, opts), nil
}

// ReadAll reads every path in order and concatenates the texts.
func ReadAll(paths []string, opts Options) ([]string, error) {
	var all []string
	for _, path := range paths {
		texts, err := Read(path, opts)
		if err != nil {
			return nil, err
		}
		all = append(all, texts...)
	}
	return all, nil
}

// ReadLines returns one text per non-blank line, or the whole stream as one
// text when whole is set.
func ReadLines(r io.Reader, whole bool) ([]string, error) {
	if whole {
		data, err := io.ReadAll(r)
		if err != nil {
			return nil, err
		}
		return []string{string(data)}, nil
	}
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), maxLineBytes)
	var texts []string
	for scanner.Scan() {
		if line := scanner.Text(); strings.TrimSpace(line) != "" {
			texts = append(texts, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return texts, nil
}

// ReadJSON decodes a JSON array of strings.
func ReadJSON(r io.Reader) ([]string, error) {
	var texts []string
	if err := json.NewDecoder(r).Decode(&texts); err != nil {
		return nil, fmt.Errorf("decode json array of strings: %w", err)
	}
	return texts, nil
}

func readFile(path string, read func(io.Reader) ([]string, error)) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return read(f)
}

func format(path string) string {
	if path == Stdin {
		return "stdin"
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return "json"
	case ".xlsx", ".xlsm":
		return "xlsx"
	case ".html", ".htm", ".xhtml":
		return "html"
	case ".xls", ".pdf", ".docx", ".zip", ".gz":
		return ""
	default:
		return "text"
	}
}

// Clean applies the StripHTML and StripNoise options and drops blank texts.
// It reuses the storage of texts.
func Clean(texts []string, opts Options) []string {
	out := texts[:0]
	for _, text := range texts {
		if opts.StripHTML {
			text = textutil.StripHTML(text)
		}
		if opts.StripNoise {
			text = textutil.StripNoise(text)
		}
		if strings.TrimSpace(text) == "" {
			continue
		}
		out = append(out, text)
	}
	return out
}

func displayPath(path string) string {
	if path == Stdin {
		return "stdin"
	}
	return path
}
