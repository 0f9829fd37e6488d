package diag

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestFormatLine(t *testing.T) {
	now := time.Date(2026, 1, 2, 3, 4, 5, 6_000_000, time.UTC)

	tests := []struct {
		name string
		args []any
		want string
	}{
		{"strings verbatim", []any{"[proxy] status=", "ok"}, "[2026-01-02T03:04:05.006Z] [proxy] status= ok"},
		{"non strings as json", []any{"ok=", true, 404}, "[2026-01-02T03:04:05.006Z] ok= true 404"},
		{"errors by message", []any{errors.New("boom")}, "[2026-01-02T03:04:05.006Z] boom"},
		{"maps as json", []any{map[string]int{"a": 1}}, `[2026-01-02T03:04:05.006Z] {"a":1}`},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := FormatLine(now, tc.args...); got != tc.want {
				t.Errorf("expected %q, got %q", tc.want, got)
			}
		})
	}
}

func TestFile_AppendsLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "server.log")
	var echo bytes.Buffer
	f := NewFile(path, &echo)

	f.Log("first")
	f.Log("second", 2)

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d: %q", len(lines), data)
	}
	if !strings.HasSuffix(lines[1], "] second 2") {
		t.Errorf("unexpected line %q", lines[1])
	}
	if echo.String() != string(data) {
		t.Errorf("echo differs from file: %q vs %q", echo.String(), data)
	}
}

func TestFile_UnwritablePathIsIgnored(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing-dir", "server.log")
	f := NewFile(path, nil)

	f.Log("still fine")

	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Fatalf("expected no file, got err=%v", err)
	}
}

type panicky struct{}

func (panicky) Log(...any) { panic("sink exploded") }

func TestSafe_RecoversPanics(t *testing.T) {
	Safe(panicky{}).Log("x")
	Safe(nil).Log("x")
}
