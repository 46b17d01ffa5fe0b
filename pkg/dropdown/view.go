package dropdown

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/marcus/dropdown/pkg/mouse"
	"github.com/marcus/dropdown/pkg/overlay"
)

const (
	arrowClosed = "▾"
	arrowOpen   = "▴"

	markSelected  = "✓ "
	markNone      = "  "
	markChecked   = "[x] "
	markUnchecked = "[ ] "
)

// View renders the trigger: the current value (or placeholder) and an
// open/closed arrow, wrapped in a measurement mark when a zone manager
// is attached. The menu is not part of View; hosts composite it with
// Overlay after assembling their frame.
func (m *Model[T]) View() string {
	m.ensureID()

	style := m.styles.Trigger
	switch {
	case m.ctrl.disabled:
		style = m.styles.TriggerDisabled
	case m.focused:
		style = m.styles.TriggerFocused
	}

	arrow := arrowClosed
	if m.ctrl.open {
		arrow = arrowOpen
	}

	box := style.Render(m.valueText() + " " + arrow)
	if m.zones != nil {
		box = m.zones.Mark(m.regionID("trigger"), box)
	}
	if m.label != "" {
		return m.styles.Label.Render(m.label) + " " + box
	}
	return box
}

// Overlay composites the open menu over the host's finished frame. The
// trigger must already be in the frame for its measurement to exist;
// until it does, the base frame passes through untouched instead of
// flashing a menu at a stale position.
func (m *Model[T]) Overlay(base string) string {
	if !m.ctrl.open {
		return base
	}

	trigger := m.triggerRect()
	lay := m.menuLayout(trigger.W)
	size := overlay.Size{W: lay.width, H: lay.height}
	m.place = m.calc.Compute(trigger, size, m.viewport)
	if !m.place.Visible {
		m.handler.Clear()
		m.watcher.SetRegions(trigger)
		return base
	}

	m.lastMenu = size
	m.registerRegions(trigger, lay)
	return overlay.Compose(base, m.renderMenu(lay), m.place.Left, m.place.Top)
}

func (m *Model[T]) valueText() string {
	sel := m.SelectedOptions()
	if m.renderValue != nil {
		return m.renderValue(sel)
	}
	if len(sel) == 0 {
		return m.styles.Placeholder.Render(m.placeholder)
	}
	labels := make([]string, len(sel))
	for i, opt := range sel {
		labels[i] = opt.Label
	}
	return strings.Join(labels, ", ")
}

// ensureID assigns the widget's region prefix on first render. Zone
// prefixes keep multiple dropdowns in one program from colliding.
func (m *Model[T]) ensureID() {
	if m.id != "" {
		return
	}
	if m.zones != nil {
		m.id = m.zones.NewPrefix()
		return
	}
	m.id = "dropdown"
}

// menuLayout is the computed shape of one menu frame: which option
// rows are in the scroll window, which chrome lines surround them, and
// the final outer size the placement calculator receives.
type menuLayout struct {
	rows       []int
	allRows    int
	topMore    int
	bottomMore int

	filterLine bool
	windowed   bool
	noMatches  bool

	inner  int
	width  int
	height int
}

// menuLayout sizes the menu before it is rendered, so placement works
// on the exact dimensions the frame will have. Width is measured over
// every option, not just the visible window, keeping the menu stable
// while scrolling and filtering; when the list is windowed both
// more-indicator lines are reserved so the height never jumps either.
func (m *Model[T]) menuLayout(triggerW int) menuLayout {
	var lay menuLayout

	all := m.rows()
	lay.allRows = len(all)
	lay.filterLine = m.filterOn
	lay.noMatches = m.filterOn && m.query != "" && lay.allRows == 0
	lay.windowed = lay.allRows > m.maxVisible

	start, end := 0, lay.allRows
	if lay.windowed {
		start = m.scroll
		if start > lay.allRows-m.maxVisible {
			start = lay.allRows - m.maxVisible
		}
		if start < 0 {
			start = 0
		}
		end = start + m.maxVisible
	}
	lay.rows = all[start:end]
	lay.topMore = start
	lay.bottomMore = lay.allRows - end

	inner := 0
	for _, opt := range m.ctrl.options {
		if w := lipgloss.Width(m.rowContent(opt)); w > inner {
			inner = w
		}
	}
	lay.width = max(inner+2, max(triggerW, m.calc.MinWidth))
	lay.inner = lay.width - 2

	lay.height = len(lay.rows) + 2
	if lay.filterLine {
		lay.height++
	}
	if lay.windowed {
		lay.height += 2
	}
	if lay.noMatches {
		lay.height++
	}
	return lay
}

func (m *Model[T]) renderMenu(lay menuLayout) string {
	lines := make([]string, 0, lay.height-2)

	if lay.filterLine {
		lines = append(lines, padTo(m.filterInput.View(), lay.inner))
	}
	if lay.windowed {
		lines = append(lines, m.moreLine(lay.topMore, "↑", lay.inner))
	}
	for _, idx := range lay.rows {
		lines = append(lines, m.renderRow(idx, lay.inner))
	}
	if lay.noMatches {
		lines = append(lines, m.styles.NoMatches.Render(padTo("no matches", lay.inner)))
	}
	if lay.windowed {
		lines = append(lines, m.moreLine(lay.bottomMore, "↓", lay.inner))
	}

	return m.styles.Menu.Render(strings.Join(lines, "\n"))
}

func (m *Model[T]) moreLine(n int, arrow string, width int) string {
	if n <= 0 {
		return strings.Repeat(" ", width)
	}
	return m.styles.More.Render(padTo(fmt.Sprintf("%s %d more", arrow, n), width))
}

func (m *Model[T]) renderRow(idx, width int) string {
	opt := m.ctrl.options[idx]
	content := padTo(m.rowContent(opt), width)
	switch {
	case idx == m.ctrl.highlighted:
		return m.styles.OptionHighlighted.Render(content)
	case m.ctrl.isSelected(opt.Value):
		return m.styles.OptionSelected.Render(content)
	default:
		return m.styles.Option.Render(content)
	}
}

// rowContent is the unstyled, unpadded text of one option row: a
// selection marker and the label, or whatever a custom option renderer
// produces.
func (m *Model[T]) rowContent(opt Option[T]) string {
	selected := m.ctrl.isSelected(opt.Value)
	if m.renderOption != nil {
		return m.renderOption(opt, selected)
	}
	mark := markNone
	switch {
	case m.ctrl.multi && selected:
		mark = markChecked
	case m.ctrl.multi:
		mark = markUnchecked
	case selected:
		mark = markSelected
	}
	return mark + opt.Label
}

// padTo fits s to exactly width cells, truncating with an ellipsis or
// padding with spaces.
func padTo(s string, width int) string {
	if width <= 0 {
		return ""
	}
	s = ansi.Truncate(s, width, "…")
	if gap := width - lipgloss.Width(s); gap > 0 {
		s += strings.Repeat(" ", gap)
	}
	return s
}

// registerRegions rebuilds the mouse hit map for the placed menu: one
// region for the whole menu and one per visible option row. Rows sit
// one cell inside the border, below the filter line and the top
// scroll indicator when present. Later regions win hit-testing, so
// rows shadow the menu region.
func (m *Model[T]) registerRegions(trigger mouse.Rect, lay menuLayout) {
	m.handler.Clear()
	m.handler.HitMap.Add(m.regionID("menu"), m.menuRect(), nil)

	rowX := m.place.Left + 1
	rowY := m.place.Top + 1
	if lay.filterLine {
		rowY++
	}
	if lay.windowed {
		rowY++
	}
	for _, idx := range lay.rows {
		m.handler.HitMap.AddRect(m.regionID("option"), rowX, rowY, lay.inner, 1, idx)
		rowY++
	}

	m.watcher.SetRegions(trigger, m.menuRect())
}
