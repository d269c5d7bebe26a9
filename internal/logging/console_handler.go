package logging

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"slices"
	"strings"
	"sync"
	"time"
)

// consoleSink serializes writes from every handler derived from one logger.
type consoleSink struct {
	mu    sync.Mutex
	w     io.Writer
	color bool
}

func (s *consoleSink) write(line string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, err := io.WriteString(s.w, line)
	return err
}

// consoleHandler renders one header line per record followed by one bullet
// per field:
//
//	2026-01-02 15:04:05 WARN [guess] – organization tie settled by policy
//	    - Winner: "Acme Corp"
//
// Debug records keep raw field keys and show the run ID.
type consoleHandler struct {
	sink      *consoleSink
	level     slog.Leveler
	source    bool
	prefix    string
	component string
	fields    []field
}

type field struct {
	key   string
	value slog.Value
}

func newConsoleHandler(w io.Writer, level slog.Leveler, source bool) *consoleHandler {
	return &consoleHandler{
		sink:   &consoleSink{w: w, color: isTerminal(w)},
		level:  level,
		source: source,
	}
}

func (h *consoleHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level.Level()
}

func (h *consoleHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	if len(attrs) == 0 {
		return h
	}
	next := h.clone()
	for _, attr := range attrs {
		next.add(attr, h.prefix)
	}
	return next
}

func (h *consoleHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	next := h.clone()
	next.prefix = h.prefix + name + "."
	return next
}

func (h *consoleHandler) Handle(_ context.Context, record slog.Record) error {
	line := h.clone()
	record.Attrs(func(attr slog.Attr) bool {
		line.add(attr, h.prefix)
		return true
	})

	ts := record.Time
	if ts.IsZero() {
		ts = time.Now()
	}
	message := strings.TrimSpace(record.Message)
	if message == "" {
		message = "(no message)"
	}

	var b strings.Builder
	b.WriteString(formatTimestamp(ts))
	b.WriteByte(' ')
	b.WriteString(h.sink.paint(record.Level, levelLabel(record.Level)))
	if line.component != "" {
		fmt.Fprintf(&b, " [%s]", line.component)
	}
	b.WriteString(" – ")
	b.WriteString(message)
	if h.source {
		if src := record.Source(); src != nil && src.File != "" {
			fmt.Fprintf(&b, " [%s:%d]", filepath.Base(src.File), src.Line)
		}
	}
	b.WriteByte('\n')

	verbose := record.Level < slog.LevelInfo
	for _, f := range line.fields {
		label := f.key
		if !verbose {
			if f.key == FieldRunID {
				continue
			}
			label = displayLabel(f.key)
		}
		fmt.Fprintf(&b, "    - %s: %s\n", label, formatValue(f.value))
	}
	return h.sink.write(b.String())
}

func (h *consoleHandler) clone() *consoleHandler {
	next := *h
	next.fields = slices.Clone(h.fields)
	return &next
}

// add flattens attr into h.fields. The innermost component attribute names
// the line; later fields replace earlier ones with the same key.
func (h *consoleHandler) add(attr slog.Attr, prefix string) {
	attr.Value = attr.Value.Resolve()
	if attr.Equal(slog.Attr{}) {
		return
	}
	if attr.Value.Kind() == slog.KindGroup {
		if attr.Key != "" {
			prefix += attr.Key + "."
		}
		for _, member := range attr.Value.Group() {
			h.add(member, prefix)
		}
		return
	}
	key := prefix + attr.Key
	if key == FieldComponent {
		h.component = attr.Value.String()
		return
	}
	if i := slices.IndexFunc(h.fields, func(f field) bool { return f.key == key }); i >= 0 {
		h.fields[i].value = attr.Value
		return
	}
	h.fields = append(h.fields, field{key: key, value: attr.Value})
}

const (
	ansiReset  = "\x1b[0m"
	ansiRed    = "\x1b[31m"
	ansiYellow = "\x1b[33m"
	ansiCyan   = "\x1b[36m"
	ansiGray   = "\x1b[90m"
)

func (s *consoleSink) paint(level slog.Level, label string) string {
	if !s.color {
		return label
	}
	color := ansiCyan
	switch {
	case level >= slog.LevelError:
		color = ansiRed
	case level >= slog.LevelWarn:
		color = ansiYellow
	case level < slog.LevelInfo:
		color = ansiGray
	}
	return color + label + ansiReset
}

// displayLabel turns snake_case keys into "Snake case" labels for info output.
func displayLabel(key string) string {
	key = strings.NewReplacer(".", " ", "_", " ").Replace(key)
	if key == "" {
		return key
	}
	return strings.ToUpper(key[:1]) + key[1:]
}

func levelLabel(level slog.Level) string {
	switch {
	case level >= slog.LevelError:
		return "ERROR"
	case level >= slog.LevelWarn:
		return "WARN"
	case level >= slog.LevelInfo:
		return "INFO"
	default:
		return "DEBUG"
	}
}
