package ui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func TestOnSurfacePadsRaggedLinesToBlockWidth(t *testing.T) {
	out := onSurface("ab\nabcdef\nabc", lipgloss.NoColor{})

	lines := strings.Split(stripANSI(out), "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d lines, expected 3", len(lines))
	}
	for i, line := range lines {
		if w := lipgloss.Width(line); w != 6 {
			t.Errorf("line %d width = %d, expected padded to 6", i, w)
		}
	}
	if !strings.HasPrefix(lines[1], "abcdef") {
		t.Errorf("content lost: %q", lines[1])
	}
}

func TestOnSurfaceEmptyOverlay(t *testing.T) {
	if out := onSurface("", lipgloss.NoColor{}); out != "" {
		t.Errorf("empty overlay rendered %q", out)
	}
}
