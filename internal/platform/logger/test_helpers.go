package logger

import (
	"bufio"
	"bytes"
	"encoding/json"
	"log/slog"
	"sync"
	"testing"
)

// Entry is one decoded JSON log record.
type Entry = map[string]any

// TestLogBuffer collects JSON log output from concurrent writers.
type TestLogBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *TestLogBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *TestLogBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

// GetLogEntries decodes every non-blank line written so far.
func (b *TestLogBuffer) GetLogEntries() ([]Entry, error) {
	var entries []Entry
	sc := bufio.NewScanner(bytes.NewReader([]byte(b.String())))
	sc.Buffer(make([]byte, 0, 64<<10), 1<<20)
	for sc.Scan() {
		line := bytes.TrimSpace(sc.Bytes())
		if len(line) == 0 {
			continue
		}
		var e Entry
		if err := json.Unmarshal(line, &e); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, sc.Err()
}

// FindEntries returns the records logged with message msg.
// Undecodable output yields nil.
func (b *TestLogBuffer) FindEntries(msg string) []Entry {
	entries, err := b.GetLogEntries()
	if err != nil {
		return nil
	}
	var found []Entry
	for _, e := range entries {
		if e[slog.MessageKey] == msg {
			found = append(found, e)
		}
	}
	return found
}

// SetupTestLogger returns a debug-level JSON logger writing into a fresh
// buffer. The logger is also the slog default until the test ends, so tests
// calling it must not run in parallel.
func SetupTestLogger(t *testing.T) (*TestLogBuffer, *slog.Logger) {
	t.Helper()

	buf := &TestLogBuffer{}
	log := slog.New(NewHandler(buf, slog.LevelDebug))

	prev := slog.Default()
	slog.SetDefault(log)
	t.Cleanup(func() { slog.SetDefault(prev) })

	return buf, log
}
