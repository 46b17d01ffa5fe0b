// Package overlay places floating content relative to an anchor
// rectangle and composites it over an already rendered base view.
// The placement logic is pure: feed it the anchor, the content size,
// and the viewport, get back where the content goes and whether it
// had to flip above the anchor.
package overlay

import (
	"github.com/marcus/dropdown/pkg/mouse"
)

// Size is a width/height pair in layout units.
type Size struct {
	W, H int
}

// Placement is the computed position of floating content. Visible is
// false until the first successful computation after opening, so
// content never flashes at the origin before the anchor is measured.
type Placement struct {
	Visible  bool
	Top      int
	Left     int
	MinWidth int
	Flipped  bool
}

// Calculator defaults. A terminal cell is a coarse layout unit, so
// hosts working in cells usually configure far smaller values; the
// defaults match anchors measured in fine-grained units.
const (
	DefaultMargin   = 8
	DefaultMinWidth = 160
)

// Calculator computes floating-content placement. Margin is the gap
// kept from viewport edges when clamping and the headroom required
// before flipping; MinWidth is the floor for the content width hint.
type Calculator struct {
	Margin   int
	MinWidth int
}

// NewCalculator returns a calculator with the default constants.
func NewCalculator() Calculator {
	return Calculator{Margin: DefaultMargin, MinWidth: DefaultMinWidth}
}

// Compute places content of the given size against the anchor within
// the viewport.
//
// The content opens below the anchor, left edges aligned. It flips
// above only when it would overflow the bottom of the viewport and
// there is room above the anchor (anchor top greater than content
// height plus margin); when neither direction fits it stays below.
// The left edge is clamped so the content keeps Margin cells from the
// right viewport edge, but never left of Margin itself. MinWidth in
// the result is the width the renderer should give the content: at
// least the anchor's width, never below the calculator's floor.
//
// An unmeasured anchor, an unknown viewport, or empty content yields
// an invisible placement; the caller hides the content and retries
// after the next measurement pass.
func (c Calculator) Compute(anchor mouse.Rect, content, viewport Size) Placement {
	if anchor.Empty() || viewport.W <= 0 || viewport.H <= 0 || content.W <= 0 || content.H <= 0 {
		return Placement{}
	}

	p := Placement{
		Visible:  true,
		Top:      anchor.Y + anchor.H,
		Left:     anchor.X,
		MinWidth: max(anchor.W, c.MinWidth),
	}

	if p.Top+content.H > viewport.H && anchor.Y > content.H+c.Margin {
		p.Top = anchor.Y - content.H
		p.Flipped = true
	}

	if p.Left+content.W > viewport.W {
		p.Left = max(c.Margin, viewport.W-content.W-c.Margin)
	}

	return p
}
