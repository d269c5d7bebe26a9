package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/mattn/go-isatty"
)

const timestampLayout = "2006-01-02 15:04:05"

func formatTimestamp(ts time.Time) string {
	if ts.IsZero() {
		return ""
	}
	return ts.Local().Format(timestampLayout)
}

// formatValue renders a field value for console output. Strings with spaces,
// quotes or "=" are quoted; string slices are joined with ", ".
func formatValue(v slog.Value) string {
	switch v.Kind() {
	case slog.KindTime:
		return formatTimestamp(v.Time())
	case slog.KindAny:
		switch value := v.Any().(type) {
		case error:
			return quote(value.Error())
		case []string:
			parts := make([]string, len(value))
			for i, s := range value {
				parts[i] = quote(s)
			}
			return strings.Join(parts, ", ")
		case fmt.Stringer:
			return quote(value.String())
		}
	}
	return quote(v.String())
}

func quote(s string) string {
	if s == "" || strings.ContainsFunc(s, func(r rune) bool {
		return unicode.IsSpace(r) || unicode.IsControl(r) || r == '"' || r == '='
	}) {
		return strconv.Quote(s)
	}
	return s
}

func isTerminal(w io.Writer) bool {
	file, ok := w.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
