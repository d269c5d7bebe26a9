package orgguess

import (
	"errors"
	"fmt"
	"strings"

	"orgguess/internal/ner"
)

var (
	ErrUnsupportedLanguage = ner.ErrUnsupportedLanguage
	ErrModelLoad           = ner.ErrModelLoad
	ErrNoTexts             = errors.New("no input texts")
	ErrNoOrganization      = errors.New("no organization found")
	ErrAmbiguous           = errors.New("ambiguous organization")
)

// Exit codes reported by the CLI for each failure class.
const (
	ExitOK                  = 0
	ExitFailure             = 1
	ExitNoOrganization      = 2
	ExitUnsupportedLanguage = 3
	ExitAmbiguous           = 4
	ExitNoTexts             = 5
)

// AmbiguousError reports organizations that tied for the most mentions when
// the tie policy refuses to choose.
type AmbiguousError struct {
	Candidates []Candidate
}

func (e *AmbiguousError) Error() string {
	names := make([]string, 0, len(e.Candidates))
	for _, c := range e.Candidates {
		names = append(names, fmt.Sprintf("%q", c.Text))
	}
	count := 0
	if len(e.Candidates) > 0 {
		count = e.Candidates[0].Count
	}
	return fmt.Sprintf("%s: %s each mentioned %d times", ErrAmbiguous, strings.Join(names, ", "), count)
}

func (e *AmbiguousError) Unwrap() error {
	return ErrAmbiguous
}

// Wrap builds an error message with operation context while tagging it with
// marker so callers can classify it with errors.Is.
func Wrap(marker error, operation, message string, err error) error {
	detail := buildDetail(operation, message)
	if marker == nil {
		if err != nil {
			return fmt.Errorf("%s: %w", detail, err)
		}
		return errors.New(detail)
	}
	if err != nil {
		return fmt.Errorf("%w: %s: %w", marker, detail, err)
	}
	return fmt.Errorf("%w: %s", marker, detail)
}

// ExitCode maps an error returned by this package to a process exit code.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitOK
	case errors.Is(err, ErrNoOrganization):
		return ExitNoOrganization
	case errors.Is(err, ErrUnsupportedLanguage):
		return ExitUnsupportedLanguage
	case errors.Is(err, ErrAmbiguous):
		return ExitAmbiguous
	case errors.Is(err, ErrNoTexts):
		return ExitNoTexts
	default:
		return ExitFailure
	}
}

func buildDetail(operation, message string) string {
	parts := make([]string, 0, 2)
	if operation = strings.TrimSpace(operation); operation != "" {
		parts = append(parts, operation)
	}
	if message = strings.TrimSpace(message); message != "" {
		parts = append(parts, message)
	}
	if len(parts) == 0 {
		return "guess failure"
	}
	return strings.Join(parts, ": ")
}
