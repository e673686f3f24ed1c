package testutil

import (
	"bytes"
	"encoding/json"
	"strings"
	"sync"
	"testing"
)

// LogBuffer collects the JSON lines written by a zerolog logger. It is safe
// for concurrent writers and can be passed wherever an io.Writer is expected.
type LogBuffer struct {
	buf bytes.Buffer
	mu  sync.Mutex
}

func NewLogBuffer() *LogBuffer {
	return &LogBuffer{}
}

func (b *LogBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	n, err := b.buf.Write(p)
	if err != nil {
		return n, err //nolint:wrapcheck // bytes.Buffer errors are returned as is
	}
	return n, nil
}

func (b *LogBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

// Entries decodes every log line.
func (b *LogBuffer) Entries(t *testing.T) []map[string]any {
	t.Helper()

	var entries []map[string]any
	for _, line := range strings.Split(strings.TrimSpace(b.String()), "\n") {
		if line == "" {
			continue
		}
		entry := map[string]any{}
		if err := json.Unmarshal([]byte(line), &entry); err != nil {
			t.Fatalf("Failed to decode log line %q: %v", line, err)
		}
		entries = append(entries, entry)
	}
	return entries
}

// Messages returns the message field of every log line in order.
func (b *LogBuffer) Messages(t *testing.T) []string {
	t.Helper()

	entries := b.Entries(t)
	messages := make([]string, 0, len(entries))
	for _, entry := range entries {
		if msg, ok := entry["message"].(string); ok {
			messages = append(messages, msg)
		}
	}
	return messages
}
