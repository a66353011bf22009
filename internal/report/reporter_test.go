package report

import (
	"bytes"
	"strings"
	"testing"

	"github.com/hamed0406/domainwatch/internal/stats"
)

func TestConsole_SortedTruncatedOutput(t *testing.T) {
	var buf bytes.Buffer
	r := NewConsole(&buf)

	r.Report(stats.Snapshot{
		"zeta.example":    {Up: 5, Total: 6},
		"alpha.example":   {Up: 1, Total: 1},
		"charlie.example": {Up: 0, Total: 4},
	})

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("want 3 lines, got %d: %q", len(lines), buf.String())
	}
	if !strings.HasPrefix(lines[0], "alpha.example") ||
		!strings.HasPrefix(lines[1], "charlie.example") ||
		!strings.HasPrefix(lines[2], "zeta.example") {
		t.Fatalf("domains not sorted: %v", lines)
	}
	if !strings.Contains(lines[2], "83%") {
		t.Fatalf("5/6 must report truncated 83%%, got %q", lines[2])
	}
	if !strings.Contains(lines[1], "0%") {
		t.Fatalf("0/4 must report 0%%, got %q", lines[1])
	}
}

func TestConsole_EmptySnapshotWritesNothing(t *testing.T) {
	var buf bytes.Buffer
	NewConsole(&buf).Report(stats.Snapshot{})
	if buf.Len() != 0 {
		t.Fatalf("want no output, got %q", buf.String())
	}
}
