package dropdown

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/marcus/dropdown/pkg/mouse"
	"github.com/marcus/dropdown/pkg/overlay"
)

// Update routes one message through the widget. Keyboard input applies
// only while focused; mouse input is position-routed, so hosts can
// forward it to every widget. The model mutates in place and returns
// any follow-up command.
func (m *Model[T]) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.viewport = overlay.Size{W: msg.Width, H: msg.Height}
		if m.ctrl.open {
			m.recomputePlacement()
		}
		return nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.MouseMsg:
		return m.handleMouse(msg)
	}

	// Remaining message kinds only matter to the filter caret.
	if m.ctrl.open && m.filterOn {
		var cmd tea.Cmd
		m.filterInput, cmd = m.filterInput.Update(msg)
		return cmd
	}
	return nil
}

func (m *Model[T]) handleKey(msg tea.KeyMsg) tea.Cmd {
	if !m.focused || m.ctrl.disabled {
		return nil
	}

	if !m.ctrl.open {
		if key.Matches(msg, m.keys.Open) {
			return m.openMenu()
		}
		return nil
	}

	// With filtering on, printable input belongs to the query; the
	// letter aliases on Up/Down/Commit only apply without a filter.
	if m.filterOn && isTextKey(msg) {
		var cmd tea.Cmd
		m.filterInput, cmd = m.filterInput.Update(msg)
		m.syncFilter()
		return cmd
	}

	switch {
	case key.Matches(msg, m.keys.Close):
		if m.filterOn && m.query != "" {
			m.filterInput.Reset()
			m.query = ""
			m.refilter()
			return nil
		}
		m.closeMenu()
	case key.Matches(msg, m.keys.Tab):
		m.closeMenu()
	case key.Matches(msg, m.keys.Up):
		m.moveVisible(-1)
	case key.Matches(msg, m.keys.Down):
		m.moveVisible(1)
	case key.Matches(msg, m.keys.Commit):
		m.commit()
	}
	return nil
}

func isTextKey(msg tea.KeyMsg) bool {
	switch msg.Type {
	case tea.KeyRunes, tea.KeySpace, tea.KeyBackspace:
		return true
	}
	return false
}

// commit selects the highlighted row. Single-select closes inside the
// controller; the model-side teardown follows it.
func (m *Model[T]) commit() {
	m.ctrl.commitHighlighted()
	m.syncClosed()
}

func (m *Model[T]) handleMouse(msg tea.MouseMsg) tea.Cmd {
	if m.ctrl.disabled {
		return nil
	}

	if m.triggerPressed(msg) {
		if m.ctrl.open {
			m.closeMenu()
			return nil
		}
		return m.openMenu()
	}

	if !m.ctrl.open {
		return nil
	}

	act := m.handler.HandleMouse(msg)
	switch act.Type {
	case mouse.ActionClick:
		if act.Region != nil {
			if idx, ok := optionIndex(act.Region); ok {
				m.ctrl.choose(idx)
				m.syncClosed()
			}
		}
	case mouse.ActionHover:
		if act.Region != nil {
			if idx, ok := optionIndex(act.Region); ok {
				m.ctrl.setHighlight(idx)
			}
		}
	case mouse.ActionScrollUp:
		if act.Region != nil {
			m.scrollBy(-1)
		} else {
			m.recomputePlacement()
		}
	case mouse.ActionScrollDown:
		if act.Region != nil {
			m.scrollBy(1)
		} else {
			m.recomputePlacement()
		}
	}

	m.watcher.Observe(msg)
	return nil
}

// triggerPressed reports a left press on the measured trigger region.
func (m *Model[T]) triggerPressed(msg tea.MouseMsg) bool {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return false
	}
	if m.zones == nil {
		return false
	}
	return m.zones.Get(m.regionID("trigger")).InBounds(msg)
}

func optionIndex(r *mouse.Region) (int, bool) {
	idx, ok := r.Data.(int)
	return idx, ok
}

// syncClosed tears down the model-side open state after the controller
// closed from inside a commit. Safe to call while still open.
func (m *Model[T]) syncClosed() {
	if m.ctrl.open {
		return
	}
	m.place = overlay.Placement{}
	m.scroll = 0
	m.watcher.SetActive(false)
	if m.filterOn {
		m.filterInput.Blur()
		m.filterInput.Reset()
		m.query = ""
		m.visible = nil
	}
}

// recomputePlacement derives the menu placement from the latest
// trigger measurement and refreshes the watcher's inside-regions. The
// render pass runs the same computation with the menu's final size.
func (m *Model[T]) recomputePlacement() {
	if !m.ctrl.open {
		return
	}
	trigger := m.triggerRect()
	lay := m.menuLayout(trigger.W)
	size := overlay.Size{W: lay.width, H: lay.height}
	m.place = m.calc.Compute(trigger, size, m.viewport)
	if m.place.Visible {
		m.lastMenu = size
	}
	m.watcher.SetRegions(trigger, m.menuRect())
}

// triggerRect is the trigger's measured screen rectangle, zero until
// the first frame containing the trigger has been scanned.
func (m *Model[T]) triggerRect() mouse.Rect {
	if m.zones == nil {
		return mouse.Rect{}
	}
	z := m.zones.Get(m.regionID("trigger"))
	if z == nil || z.IsZero() {
		return mouse.Rect{}
	}
	return mouse.Rect{X: z.StartX, Y: z.StartY, W: z.EndX - z.StartX, H: z.EndY - z.StartY + 1}
}

// menuRect is the menu's on-screen rectangle, zero while unplaced.
func (m *Model[T]) menuRect() mouse.Rect {
	if !m.place.Visible {
		return mouse.Rect{}
	}
	return mouse.Rect{X: m.place.Left, Y: m.place.Top, W: m.lastMenu.W, H: m.lastMenu.H}
}
