package ui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
)

func TestCanvasPlace(t *testing.T) {
	c := newCanvas(10, 3)
	c.place("ab\ncd", 2, 1)

	want := []string{
		"          ",
		"  ab      ",
		"  cd      ",
	}
	got := strings.Split(ansi.Strip(c.String()), "\n")
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Row %d: expected %q, got %q", i, want[i], got[i])
		}
	}
}

func TestCanvasClips(t *testing.T) {
	tests := []struct {
		name  string
		block string
		x, y  int
		want  string
	}{
		{"right edge", "abcdef", 7, 0, "       abc"},
		{"left edge", "abcdef", -4, 0, "ef        "},
		{"past right", "abc", 10, 0, "          "},
		{"above", "abc", 0, -1, "          "},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newCanvas(10, 1)
			c.place(tt.block, tt.x, tt.y)
			if got := ansi.Strip(c.String()); got != tt.want {
				t.Errorf("Expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestSpliceKeepsWidth(t *testing.T) {
	row := "\x1b[31m" + strings.Repeat("x", 12) + "\x1b[0m"
	line := "\x1b[1mhello\x1b[0m"
	got := splice(row, line, 3, 12)
	if w := ansi.StringWidth(got); w != 12 {
		t.Errorf("Expected width 12, got %d", w)
	}
	if plain := ansi.Strip(got); plain != "xxxhelloxxxx" {
		t.Errorf("Expected xxxhelloxxxx, got %q", plain)
	}
}

func TestCanvasApply(t *testing.T) {
	c := newCanvas(3, 2)
	c.apply(func(line string) string { return strings.ReplaceAll(line, " ", ".") })
	if got := c.String(); got != "...\n..." {
		t.Errorf("Expected dots, got %q", got)
	}
}

func TestSpliceKeepsZoneMarkersOnce(t *testing.T) {
	row := "abcd\x1b[1000zX\x1b[1001z"
	got := splice(row, "Y", 0, 5)

	want := "\x1b[mY\x1b[mbcd\x1b[1000zX\x1b[1001z"
	if got != want {
		t.Errorf("Expected %q, got %q", want, got)
	}
	for _, marker := range []string{"\x1b[1000z", "\x1b[1001z"} {
		if n := strings.Count(got, marker); n != 1 {
			t.Errorf("Expected marker %q once, got %d", marker, n)
		}
		if strings.Index(got, marker) < strings.Index(got, "Y") {
			t.Errorf("Expected marker %q after the spliced cell, got %q", marker, got)
		}
	}
}

func TestSpliceDropsCoveredZone(t *testing.T) {
	row := "abc\x1b[7zd\x1b[7zef"
	got := splice(row, "XYZ", 2, 6)
	if strings.Contains(got, "\x1b[7z") {
		t.Errorf("Expected covered zone markers to be dropped, got %q", got)
	}
	if plain := ansi.Strip(got); plain != "abXYZf" {
		t.Errorf("Expected abXYZf, got %q", plain)
	}
}

func TestSpliceOverlappingOpeners(t *testing.T) {
	// Two one-cell zones at opposite edges, placed right edge first.
	c := newCanvas(10, 1)
	c.place("\x1b[1zL\x1b[1z", 9, 0)
	c.place("\x1b[2zR\x1b[2z", 0, 0)

	got := c.String()
	for _, marker := range []string{"\x1b[1z", "\x1b[2z"} {
		if n := strings.Count(got, marker); n != 2 {
			t.Errorf("Expected marker %q twice, got %d in %q", marker, n, got)
		}
	}
	if first := strings.Index(got, "\x1b[1z"); first < strings.Index(got, "R") {
		t.Errorf("Expected the right edge zone to start after column 0, got %q", got)
	}
	if plain := ansi.Strip(got); plain != "R        L" {
		t.Errorf("Expected %q, got %q", "R        L", plain)
	}
}

func TestHeadAndTail(t *testing.T) {
	s := "\x1b[31mab\x1b[9zcd\x1b[9z\x1b[0m"

	if got := head(s, 2); got != "\x1b[31mab\x1b[9z" {
		t.Errorf("Expected head to keep the marker before column 2, got %q", got)
	}
	if got := tail(s, 3); got != "\x1b[31md\x1b[9z\x1b[0m" {
		t.Errorf("Expected tail to carry the style but not the opening marker, got %q", got)
	}
	if got := tail(s, 9); got != "" {
		t.Errorf("Expected empty tail past the end, got %q", got)
	}
	if got := head("ab", 4); got != "ab  " {
		t.Errorf("Expected head padded to 4 cells, got %q", got)
	}
}

func TestHeadSplitsWideCharacter(t *testing.T) {
	if got := head("a日b", 2); got != "a " {
		t.Errorf("Expected %q, got %q", "a ", got)
	}
	if got := tail("a日b", 2); got != " b" {
		t.Errorf("Expected %q, got %q", " b", got)
	}
}
