package overlay

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"

	"github.com/marcus/dropdown/pkg/mouse"
)

func TestComputeBelowDefault(t *testing.T) {
	c := NewCalculator()
	trigger := mouse.Rect{X: 5, Y: 2, W: 10, H: 1}

	p := c.Compute(trigger, Size{W: 20, H: 6}, Size{W: 300, H: 100})

	if !p.Visible {
		t.Fatal("expected visible placement")
	}
	if p.Top != 3 {
		t.Errorf("Top = %d, want 3 (trigger bottom edge)", p.Top)
	}
	if p.Left != 5 {
		t.Errorf("Left = %d, want 5 (trigger left edge)", p.Left)
	}
	if p.Flipped {
		t.Error("expected no flip with room below")
	}
}

func TestComputeFlipsAbove(t *testing.T) {
	// Anchor near the bottom, menu taller than the space below,
	// enough headroom above: placement flips.
	c := NewCalculator()
	trigger := mouse.Rect{X: 10, Y: 80, W: 12, H: 1}

	p := c.Compute(trigger, Size{W: 20, H: 30}, Size{W: 300, H: 100})

	if !p.Flipped {
		t.Fatal("expected flipped placement")
	}
	if p.Top != 80-30 {
		t.Errorf("Top = %d, want %d (trigger top minus menu height)", p.Top, 80-30)
	}
}

func TestComputeNoFlipWithoutHeadroom(t *testing.T) {
	// Overflows below, but the anchor sits too high above the fold to
	// satisfy triggerTop > menuHeight + margin: stays below.
	c := NewCalculator()
	trigger := mouse.Rect{X: 10, Y: 20, W: 12, H: 1}

	p := c.Compute(trigger, Size{W: 20, H: 30}, Size{W: 300, H: 40})

	if p.Flipped {
		t.Error("expected no flip without headroom above")
	}
	if p.Top != 21 {
		t.Errorf("Top = %d, want 21 (keeps bottom placement)", p.Top)
	}
}

func TestComputeFlipHeadroomBoundary(t *testing.T) {
	c := NewCalculator()
	content := Size{W: 20, H: 30}
	viewport := Size{W: 300, H: 60}

	// triggerTop must exceed menuHeight + margin (38) to flip.
	cases := []struct {
		name    string
		top     int
		flipped bool
	}{
		{"exactly at threshold", 38, false},
		{"one past threshold", 39, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := c.Compute(mouse.Rect{X: 10, Y: tc.top, W: 12, H: 1}, content, viewport)
			if p.Flipped != tc.flipped {
				t.Errorf("Flipped = %v, want %v", p.Flipped, tc.flipped)
			}
		})
	}
}

func TestComputeClampsRightOverflow(t *testing.T) {
	c := NewCalculator()
	trigger := mouse.Rect{X: 270, Y: 2, W: 8, H: 1}

	p := c.Compute(trigger, Size{W: 40, H: 6}, Size{W: 300, H: 100})

	want := 300 - 40 - 8
	if p.Left != want {
		t.Errorf("Left = %d, want %d (viewport width - menu width - margin)", p.Left, want)
	}
}

func TestComputeClampFloorsAtMargin(t *testing.T) {
	// Menu wider than the viewport: the clamp bottoms out at the margin.
	c := NewCalculator()
	trigger := mouse.Rect{X: 50, Y: 2, W: 8, H: 1}

	p := c.Compute(trigger, Size{W: 400, H: 6}, Size{W: 300, H: 100})

	if p.Left != c.Margin {
		t.Errorf("Left = %d, want margin %d", p.Left, c.Margin)
	}
}

func TestComputeMinWidth(t *testing.T) {
	c := NewCalculator()
	viewport := Size{W: 600, H: 100}
	content := Size{W: 20, H: 6}

	cases := []struct {
		name     string
		triggerW int
		want     int
	}{
		{"narrow trigger uses floor", 24, DefaultMinWidth},
		{"wide trigger wins", 220, 220},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := c.Compute(mouse.Rect{X: 5, Y: 2, W: tc.triggerW, H: 1}, content, viewport)
			if p.MinWidth != tc.want {
				t.Errorf("MinWidth = %d, want %d", p.MinWidth, tc.want)
			}
		})
	}
}

func TestComputeGuards(t *testing.T) {
	c := NewCalculator()

	cases := []struct {
		name     string
		anchor   mouse.Rect
		content  Size
		viewport Size
	}{
		{"unmeasured anchor", mouse.Rect{}, Size{W: 20, H: 6}, Size{W: 300, H: 100}},
		{"unknown viewport", mouse.Rect{X: 5, Y: 2, W: 10, H: 1}, Size{W: 20, H: 6}, Size{}},
		{"empty content", mouse.Rect{X: 5, Y: 2, W: 10, H: 1}, Size{}, Size{W: 300, H: 100}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := c.Compute(tc.anchor, tc.content, tc.viewport)
			if p.Visible {
				t.Error("expected invisible placement")
			}
		})
	}
}

func TestComputeTerminalScale(t *testing.T) {
	// Cell-scale configuration: single-cell margin, modest width floor.
	c := Calculator{Margin: 1, MinWidth: 12}
	trigger := mouse.Rect{X: 60, Y: 21, W: 14, H: 1}

	p := c.Compute(trigger, Size{W: 24, H: 5}, Size{W: 80, H: 24})

	if !p.Flipped {
		t.Error("expected flip two rows above the bottom")
	}
	if p.Top != 21-5 {
		t.Errorf("Top = %d, want %d", p.Top, 21-5)
	}
	if p.Left != 80-24-1 {
		t.Errorf("Left = %d, want %d", p.Left, 80-24-1)
	}
	if p.MinWidth != 14 {
		t.Errorf("MinWidth = %d, want trigger width 14", p.MinWidth)
	}
}

func TestComposePlainSplice(t *testing.T) {
	base := strings.Join([]string{
		"aaaaaaaaaa",
		"bbbbbbbbbb",
		"cccccccccc",
	}, "\n")
	fg := "XX\nYY"

	got := Compose(base, fg, 2, 1)

	want := strings.Join([]string{
		"aaaaaaaaaa",
		"bbXXbbbbbb",
		"ccYYcccccc",
	}, "\n")
	if got != want {
		t.Errorf("Compose =\n%q\nwant\n%q", got, want)
	}
}

func TestComposeClipsBottom(t *testing.T) {
	base := "aaaaaaaaaa\nbbbbbbbbbb"
	fg := "XX\nYY\nZZ"

	got := Compose(base, fg, 0, 1)

	want := "aaaaaaaaaa\nXXbbbbbbbb"
	if got != want {
		t.Errorf("Compose =\n%q\nwant\n%q", got, want)
	}
}

func TestComposePadsRaggedBase(t *testing.T) {
	// A base line narrower than the splice column gets padded so the
	// floated block still lands at its computed column.
	got := Compose("ab", "XY", 5, 0)

	want := "ab   XY"
	if got != want {
		t.Errorf("Compose = %q, want %q", got, want)
	}
}

func TestComposePadsShortForegroundLines(t *testing.T) {
	base := "aaaaaaaaaa\nbbbbbbbbbb"
	fg := "XXXX\nY"

	got := Compose(base, fg, 2, 0)

	want := "aaXXXXaaaa\nbbY   bbbb"
	if got != want {
		t.Errorf("Compose =\n%q\nwant\n%q", got, want)
	}
}

func TestComposePreservesStyling(t *testing.T) {
	base := "\x1b[31mRRRRRRRR\x1b[0m"
	fg := "XX"

	got := Compose(base, fg, 3, 0)

	if stripped := ansi.Strip(got); stripped != "RRRXXRRR" {
		t.Errorf("stripped = %q, want %q", stripped, "RRRXXRRR")
	}
	if !strings.Contains(got, "\x1b[31m") {
		t.Error("expected the base styling sequence to survive the splice")
	}
}

func TestComposeEmptyForeground(t *testing.T) {
	base := "aaaa\nbbbb"
	if got := Compose(base, "", 1, 1); got != base {
		t.Errorf("Compose with empty fg = %q, want base unchanged", got)
	}
}
