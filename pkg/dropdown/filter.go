package dropdown

import (
	"strings"

	"github.com/sahilm/fuzzy"
)

// rows returns the option indexes the menu shows, in display order:
// every option when no filter is active, otherwise the fuzzy matches
// best-first.
func (m *Model[T]) rows() []int {
	if m.visible == nil {
		all := make([]int, len(m.ctrl.options))
		for i := range all {
			all[i] = i
		}
		return all
	}
	return m.visible
}

// syncFilter picks up a query change after the text input handled a
// message.
func (m *Model[T]) syncFilter() {
	q := strings.TrimSpace(m.filterInput.Value())
	if q != m.query {
		m.query = q
		m.refilter()
	}
}

// refilter recomputes the visible rows from the current query. The
// match set is derived fresh from the option labels each time; nothing
// about it is cached across option-list changes. Filtering resets the
// scroll window and re-seats the highlight on the best match, or
// clears it when nothing matches.
func (m *Model[T]) refilter() {
	m.scroll = 0

	if m.query == "" {
		m.visible = nil
		if m.ctrl.open && m.ctrl.highlighted < 0 {
			m.ctrl.highlighted = m.ctrl.initialHighlight()
		}
		return
	}

	labels := make([]string, len(m.ctrl.options))
	for i, opt := range m.ctrl.options {
		labels[i] = opt.Label
	}
	matches := fuzzy.Find(m.query, labels)
	m.visible = make([]int, len(matches))
	for i, match := range matches {
		m.visible[i] = match.Index
	}

	if len(m.visible) > 0 {
		m.ctrl.setHighlight(m.visible[0])
	} else {
		m.ctrl.highlighted = -1
	}
}

// moveVisible steps the highlight through the displayed rows with
// wraparound. Without an active filter that is exactly the
// controller's own move; with one, the walk happens over the match
// list so hidden options are never highlighted.
func (m *Model[T]) moveVisible(delta int) {
	if m.visible == nil {
		m.ctrl.moveHighlight(delta)
		m.ensureHighlightVisible()
		return
	}
	if !m.ctrl.open || len(m.visible) == 0 {
		return
	}
	pos := 0
	for i, idx := range m.visible {
		if idx == m.ctrl.highlighted {
			pos = i
			break
		}
	}
	n := len(m.visible)
	pos = ((pos+delta)%n + n) % n
	m.ctrl.setHighlight(m.visible[pos])
	m.ensureHighlightVisible()
}

// ensureHighlightVisible clamps the scroll window around the
// highlighted row.
func (m *Model[T]) ensureHighlightVisible() {
	rows := m.rows()
	pos := -1
	for i, idx := range rows {
		if idx == m.ctrl.highlighted {
			pos = i
			break
		}
	}
	if pos < 0 {
		m.scroll = 0
		return
	}
	if pos < m.scroll {
		m.scroll = pos
	}
	if pos >= m.scroll+m.maxVisible {
		m.scroll = pos - m.maxVisible + 1
	}
	m.clampScroll()
}

// scrollBy moves the window without touching the highlight, as wheel
// scrolling over the menu does.
func (m *Model[T]) scrollBy(delta int) {
	m.scroll += delta
	m.clampScroll()
}

func (m *Model[T]) clampScroll() {
	maxScroll := len(m.rows()) - m.maxVisible
	if maxScroll < 0 {
		maxScroll = 0
	}
	if m.scroll > maxScroll {
		m.scroll = maxScroll
	}
	if m.scroll < 0 {
		m.scroll = 0
	}
}
