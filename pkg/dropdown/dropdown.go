// Package dropdown provides a selection-menu widget for bubbletea
// programs: an inline trigger that opens a floating option list placed
// relative to itself and the viewport, navigable by keyboard and
// mouse, dismissed by commit, escape, tab or a press outside it.
//
// The widget is a component, not a program: a host model forwards
// messages to Update, renders the trigger with View wherever it lays
// it out, and composites open menus over its finished frame with
// Overlay. Trigger positions are measured through a bubblezone
// manager, so the host wraps its final frame in the manager's Scan.
package dropdown

import (
	"fmt"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"

	"github.com/marcus/dropdown/pkg/mouse"
	"github.com/marcus/dropdown/pkg/overlay"
)

// Option is one selectable entry. Identity is the Value; labels are
// what the user sees. Values are assumed unique within a list.
type Option[T comparable] struct {
	Label string
	Value T
}

// NewOption builds an option from a label and its value.
func NewOption[T comparable](label string, value T) Option[T] {
	return Option[T]{Label: label, Value: value}
}

// Model is a dropdown widget instance. Create one with New, keep it by
// pointer, and route messages to it from the host's Update.
type Model[T comparable] struct {
	ctrl *controller[T]

	id          string
	label       string
	placeholder string

	renderOption func(Option[T], bool) string
	renderValue  func([]Option[T]) string

	keys   KeyMap
	styles Styles

	zones    *zone.Manager
	calc     overlay.Calculator
	place    overlay.Placement
	viewport overlay.Size
	lastMenu overlay.Size

	handler *mouse.Handler
	watcher *mouse.Watcher

	focused    bool
	maxVisible int
	scroll     int

	filterOn    bool
	filterInput textinput.Model
	query       string
	visible     []int // option indexes matching the query; nil = no filter active
}

// New constructs a dropdown over the given options, uncontrolled and
// single-select. Configure it by chaining the With methods before the
// first message reaches it:
//
//	dd := dropdown.New(opts).
//		WithPlaceholder("Pick a region").
//		WithZones(zones).
//		WithOnChange(onRegion)
//
// Calling WithValue switches the instance to controlled mode for its
// whole lifetime.
func New[T comparable](options []Option[T]) *Model[T] {
	m := &Model[T]{
		placeholder: "Select…",
		keys:        DefaultKeyMap(),
		styles:      DefaultStyles(),
		calc:        overlay.NewCalculator(),
		handler:     mouse.NewHandler(),
		maxVisible:  8,
	}
	m.ctrl = newController(options, &uncontrolled[T]{}, false)
	m.watcher = mouse.NewWatcher(func() { m.closeMenu() })

	ti := textinput.New()
	ti.Prompt = "/ "
	ti.Placeholder = "filter"
	ti.CharLimit = 64
	m.filterInput = ti

	return m
}

// Value returns the single-select value and whether one is set.
func (m *Model[T]) Value() (T, bool) {
	cur := m.ctrl.currentValue()
	if len(cur) == 0 {
		var zero T
		return zero, false
	}
	return cur[0], true
}

// Values returns the selected values. The returned slice is a copy.
func (m *Model[T]) Values() []T {
	cur := m.ctrl.currentValue()
	out := make([]T, len(cur))
	copy(out, cur)
	return out
}

// SelectedOptions resolves the current selection against the option
// list, in selection order. Values no longer present are skipped.
func (m *Model[T]) SelectedOptions() []Option[T] {
	var out []Option[T]
	for _, v := range m.ctrl.currentValue() {
		for _, opt := range m.ctrl.options {
			if opt.Value == v {
				out = append(out, opt)
				break
			}
		}
	}
	return out
}

// SetValue overwrites the selection from the host side. In controlled
// mode this is how the host feeds its authoritative value in; in
// uncontrolled mode it is a programmatic set. No change notification
// fires; the host already knows.
func (m *Model[T]) SetValue(values ...T) {
	m.ctrl.source.set(values)
}

// SetOptions replaces the option list and reconciles highlight, filter
// and scroll state against it.
func (m *Model[T]) SetOptions(options []Option[T]) {
	m.ctrl.setOptions(options)
	m.scroll = 0
	if m.query != "" {
		m.refilter()
	}
}

// Options returns the current option list.
func (m *Model[T]) Options() []Option[T] {
	return m.ctrl.options
}

// IsOpen reports whether the menu is showing.
func (m *Model[T]) IsOpen() bool {
	return m.ctrl.open
}

// Highlighted returns the highlighted option index, -1 when none.
func (m *Model[T]) Highlighted() int {
	return m.ctrl.highlighted
}

// Disabled reports whether interaction is suppressed.
func (m *Model[T]) Disabled() bool {
	return m.ctrl.disabled
}

// SetDisabled toggles interaction suppression. Disabling an open
// widget closes it first so it cannot strand an inert menu on screen.
func (m *Model[T]) SetDisabled(disabled bool) {
	if disabled && m.ctrl.open {
		m.closeMenu()
	}
	m.ctrl.disabled = disabled
}

// Focus directs subsequent keyboard input to this widget.
func (m *Model[T]) Focus() {
	m.focused = true
}

// Blur removes keyboard focus. An open menu closes; focus loss is a
// dismissal.
func (m *Model[T]) Blur() {
	m.focused = false
	if m.ctrl.open {
		m.closeMenu()
	}
}

// Focused reports whether the widget has keyboard focus.
func (m *Model[T]) Focused() bool {
	return m.focused
}

// ID returns the widget's region identifier.
func (m *Model[T]) ID() string {
	return m.id
}

// Open shows the menu programmatically.
func (m *Model[T]) Open() tea.Cmd {
	return m.openMenu()
}

// Close hides the menu programmatically.
func (m *Model[T]) Close() {
	if m.ctrl.open {
		m.closeMenu()
	}
}

// Reposition recomputes the menu placement from the latest
// measurements. Hosts call it after scrolling their own content while
// a menu is open; resize and wheel events recompute on their own.
func (m *Model[T]) Reposition() {
	if m.ctrl.open {
		m.recomputePlacement()
	}
}

// Placement returns the menu's current computed placement. Visible is
// false while closed or before the trigger has been measured.
func (m *Model[T]) Placement() overlay.Placement {
	if !m.ctrl.open {
		return overlay.Placement{}
	}
	return m.place
}

// openMenu transitions to open, initializes the highlight, arms the
// outside-press watcher and tries an immediate placement from the last
// measurements. Returns the filter caret blink command when filtering
// is enabled.
func (m *Model[T]) openMenu() tea.Cmd {
	if m.ctrl.disabled || m.ctrl.open {
		return nil
	}
	m.ctrl.openMenu()
	m.scroll = 0
	m.place = overlay.Placement{}
	m.watcher.SetActive(true)
	m.recomputePlacement()
	if m.filterOn {
		m.filterInput.Reset()
		m.query = ""
		m.visible = nil
		m.filterInput.Focus()
		return textinput.Blink
	}
	return nil
}

// closeMenu is the one close path: highlight resets, placement is
// discarded, the watcher disarms and the filter clears. Every
// dismissal funnel (escape, tab, outside press, commit, blur,
// disable) ends here.
func (m *Model[T]) closeMenu() {
	m.ctrl.closeMenu()
	m.syncClosed()
}

// regionID names one of the widget's screen regions.
func (m *Model[T]) regionID(part string) string {
	return fmt.Sprintf("%s.%s", m.id, part)
}
