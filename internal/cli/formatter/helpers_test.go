package formatter

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestHumanDateFrom(t *testing.T) {
	now := time.Date(2026, 2, 7, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name  string
		input time.Time
		want  string
	}{
		{"today", now.Add(-2 * time.Hour), "Today 10:00"},
		{"yesterday", now.Add(-24 * time.Hour), "Yesterday 12:00"},
		{"older", time.Date(2022, 9, 30, 8, 5, 0, 0, time.UTC), "Sep 30, 2022 08:05"},
		{"future", now.Add(48 * time.Hour), "Feb 9, 2026 12:00"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HumanDateFrom(tt.input, now))
		})
	}
}

func TestTruncID(t *testing.T) {
	assert.Equal(t, "abcdefgh", stripANSI(TruncID("abcdefghijkl")))
	assert.Equal(t, "abc", stripANSI(TruncID("abc")))
}

func TestRenderBox(t *testing.T) {
	got := stripANSI(RenderBox("ledger", "body"))
	assert.Contains(t, got, "LEDGER")
	assert.Contains(t, got, "body")
	assert.True(t, strings.HasPrefix(got, "╭"))
	assert.True(t, strings.HasSuffix(got, "╯"))

	untitled := stripANSI(RenderBox("", "only"))
	assert.Contains(t, untitled, "only")
	assert.NotContains(t, untitled, "LEDGER")
}

func TestRenderTable(t *testing.T) {
	got := stripANSI(RenderTable([]string{"A", "LONGER"}, [][]string{{"wide cell", "x"}, {"y"}}))
	lines := strings.Split(strings.TrimSuffix(got, "\n"), "\n")
	assert.Len(t, lines, 4)
	assert.Equal(t, "A          LONGER", lines[0])
	assert.Equal(t, "─────────  ──────", lines[1])
	assert.Equal(t, "wide cell  x", lines[2])
	assert.Equal(t, "y          ", lines[3])

	assert.Empty(t, RenderTable(nil, nil))
}
