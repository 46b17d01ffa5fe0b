package dropdown

import (
	zone "github.com/lrstanley/bubblezone"
)

// Configuration is method chaining on the model, the way form
// libraries in this ecosystem do it. Chain these at construction;
// cosmetic ones (WithStyles, WithKeyMap, WithMaxVisible) also apply
// live, which hosts use when re-theming from a config reload. The
// runtime mutators (SetValue, SetOptions, SetDisabled, Focus) live in
// dropdown.go.

// WithMulti switches the widget to multi-select: commits toggle
// membership and keep the menu open.
func (m *Model[T]) WithMulti() *Model[T] {
	m.ctrl.multi = true
	return m
}

// WithValue supplies an externally owned selection and fixes the
// widget in controlled mode for its whole lifetime: commits notify but
// never store, and the host feeds every new value back with SetValue.
func (m *Model[T]) WithValue(values ...T) *Model[T] {
	m.ctrl.source = &controlled[T]{values: values}
	return m
}

// WithDefault sets the initial selection of an uncontrolled widget.
// Ignored in controlled mode; the external value is authoritative.
func (m *Model[T]) WithDefault(values ...T) *Model[T] {
	if s, ok := m.ctrl.source.(*uncontrolled[T]); ok {
		s.values = values
	}
	return m
}

// WithOnChange registers the change listener. It fires synchronously
// on every commit with the full new selection; single-select arrives
// as a one-element slice.
func (m *Model[T]) WithOnChange(fn func([]T)) *Model[T] {
	m.ctrl.onChange = fn
	return m
}

// WithDisabled sets initial interaction suppression.
func (m *Model[T]) WithDisabled(disabled bool) *Model[T] {
	m.ctrl.disabled = disabled
	return m
}

// WithPlaceholder sets the trigger text shown while nothing is
// selected and no value renderer is supplied.
func (m *Model[T]) WithPlaceholder(s string) *Model[T] {
	m.placeholder = s
	return m
}

// WithLabel sets a caption rendered before the trigger.
func (m *Model[T]) WithLabel(s string) *Model[T] {
	m.label = s
	return m
}

// WithID sets the widget's region identifier. When absent, one is
// generated from the zone manager's prefix sequence on first render.
func (m *Model[T]) WithID(id string) *Model[T] {
	m.id = id
	return m
}

// WithRenderOption overrides option-row rendering. The callback gets
// the option and its selected state and returns the row content;
// highlight styling is still applied around it.
func (m *Model[T]) WithRenderOption(fn func(Option[T], bool) string) *Model[T] {
	m.renderOption = fn
	return m
}

// WithRenderValue overrides trigger-label rendering. The callback gets
// the selected options in selection order; an empty slice means
// nothing is selected.
func (m *Model[T]) WithRenderValue(fn func([]Option[T]) string) *Model[T] {
	m.renderValue = fn
	return m
}

// WithStyles replaces the widget styling.
func (m *Model[T]) WithStyles(s Styles) *Model[T] {
	m.styles = s
	return m
}

// WithKeyMap replaces the key bindings.
func (m *Model[T]) WithKeyMap(k KeyMap) *Model[T] {
	m.keys = k
	return m
}

// WithZones supplies the bubblezone manager used to measure the
// trigger on screen. Without one the widget is keyboard-only and its
// menu cannot be placed, so it stays hidden.
func (m *Model[T]) WithZones(z *zone.Manager) *Model[T] {
	m.zones = z
	return m
}

// WithMaxVisible caps the option rows shown at once; longer lists
// scroll to keep the highlight visible.
func (m *Model[T]) WithMaxVisible(n int) *Model[T] {
	if n > 0 {
		m.maxVisible = n
	}
	return m
}

// WithFilter enables the type-to-filter field at the top of the menu.
func (m *Model[T]) WithFilter(on bool) *Model[T] {
	m.filterOn = on
	return m
}

// WithPlacement overrides the placement constants. Terminal hosts
// usually want a one-cell margin and a small width floor; the defaults
// suit finer-grained layout units.
func (m *Model[T]) WithPlacement(margin, minWidth int) *Model[T] {
	m.calc.Margin = margin
	m.calc.MinWidth = minWidth
	return m
}
