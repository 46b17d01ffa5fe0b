package overlay

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// Compose splices fg over base with fg's top-left cell at (x, y),
// preserving ANSI styling on both sides of every cut. Lines fg does
// not cover pass through untouched; fg lines that fall outside the
// base are clipped. Short fg lines are padded to the block width so
// the floated content covers a clean rectangle.
func Compose(base, fg string, x, y int) string {
	if fg == "" {
		return base
	}
	if x < 0 {
		x = 0
	}

	baseLines := strings.Split(base, "\n")
	fgLines := strings.Split(fg, "\n")
	fgW := lipgloss.Width(fg)

	for i := 0; i < len(fgLines); i++ {
		row := y + i
		if row < 0 || row >= len(baseLines) {
			continue
		}
		baseLines[row] = spliceLine(baseLines[row], fgLines[i], x, fgW)
	}

	return strings.Join(baseLines, "\n")
}

// spliceLine replaces fgW cells of line starting at column x with fgLine.
func spliceLine(line, fgLine string, x, fgW int) string {
	lineW := ansi.StringWidth(line)

	left := ansi.Cut(line, 0, x)
	if lw := ansi.StringWidth(left); lw < x {
		left += strings.Repeat(" ", x-lw)
	}

	if w := ansi.StringWidth(fgLine); w < fgW {
		fgLine += strings.Repeat(" ", fgW-w)
	} else if w > fgW {
		fgLine = ansi.Cut(fgLine, 0, fgW)
	}

	var right string
	if x+fgW < lineW {
		right = ansi.Cut(line, x+fgW, lineW)
	}

	return left + fgLine + right
}
