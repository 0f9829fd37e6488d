// Package diag holds the best-effort diagnostic log the relay writes to.
// Nothing in the service reads these lines back.
package diag

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"
)

// Logger appends one line per call. Implementations must not fail loudly.
type Logger interface {
	Log(args ...any)
}

const timeLayout = "2006-01-02T15:04:05.000Z07:00"

// FormatLine renders args as "[timestamp] a b c". Strings are written as is,
// anything else is JSON encoded.
func FormatLine(now time.Time, args ...any) string {
	parts := make([]string, 0, len(args))
	for _, a := range args {
		parts = append(parts, render(a))
	}
	return "[" + now.UTC().Format(timeLayout) + "] " + strings.Join(parts, " ")
}

func render(a any) string {
	switch v := a.(type) {
	case string:
		return v
	case error:
		return v.Error()
	case fmt.Stringer:
		return v.String()
	}
	b, err := json.Marshal(a)
	if err != nil {
		return fmt.Sprint(a)
	}
	return string(b)
}

// File appends lines to a file on disk and echoes them to an optional writer.
type File struct {
	mu   sync.Mutex
	path string
	echo io.Writer
	now  func() time.Time
}

func NewFile(path string, echo io.Writer) *File {
	return &File{path: path, echo: echo, now: time.Now}
}

func (f *File) Log(args ...any) {
	line := FormatLine(f.now(), args...) + "\n"

	f.mu.Lock()
	defer f.mu.Unlock()
	if f.echo != nil {
		_, _ = io.WriteString(f.echo, line)
	}
	if f.path == "" {
		return
	}
	fh, err := os.OpenFile(f.path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return
	}
	_, _ = fh.WriteString(line)
	_ = fh.Close()
}

type discard struct{}

func (discard) Log(...any) {}

// Discard drops every line.
var Discard Logger = discard{}

type safe struct{ next Logger }

// Safe wraps l so that a panicking sink never reaches the caller.
func Safe(l Logger) Logger {
	if l == nil {
		return Discard
	}
	if s, ok := l.(safe); ok {
		return s
	}
	return safe{next: l}
}

func (s safe) Log(args ...any) {
	defer func() { _ = recover() }()
	s.next.Log(args...)
}
