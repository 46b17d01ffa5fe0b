package dropdown

// valueSource is the tagged value-sourcing mode, fixed at construction.
// Exactly one implementation is active per widget for its whole
// lifetime: controlled instances never store a selection themselves,
// uncontrolled ones own theirs.
type valueSource[T comparable] interface {
	// current returns the selection this source considers authoritative.
	current() []T
	// apply records a user-committed selection. Controlled sources
	// ignore it; the host is expected to feed the value back.
	apply(next []T)
	// set overwrites the stored selection from the host side.
	set(next []T)
}

// uncontrolled owns the selection.
type uncontrolled[T comparable] struct {
	values []T
}

func (s *uncontrolled[T]) current() []T   { return s.values }
func (s *uncontrolled[T]) apply(next []T) { s.values = next }
func (s *uncontrolled[T]) set(next []T)   { s.values = next }

// controlled mirrors a host-owned selection. apply is deliberately a
// no-op: commits only notify, they never mutate the mirror.
type controlled[T comparable] struct {
	values []T
}

func (s *controlled[T]) current() []T { return s.values }
func (s *controlled[T]) apply([]T)    {}
func (s *controlled[T]) set(next []T) { s.values = next }

// controller owns the widget's interaction state: the option list, the
// open flag, the highlighted index and the selection itself. All
// transitions are synchronous; notifications fire inside the
// triggering call.
type controller[T comparable] struct {
	options  []Option[T]
	source   valueSource[T]
	multi    bool
	disabled bool

	open        bool
	highlighted int // -1 while closed or when nothing can be highlighted

	onChange func([]T)
}

func newController[T comparable](options []Option[T], source valueSource[T], multi bool) *controller[T] {
	return &controller[T]{
		options:     options,
		source:      source,
		multi:       multi,
		highlighted: -1,
	}
}

func (c *controller[T]) currentValue() []T {
	return c.source.current()
}

// isSelected reports membership for multi-select and equality with the
// current value for single-select; both reduce to a membership test on
// the value slice.
func (c *controller[T]) isSelected(v T) bool {
	for _, cur := range c.source.current() {
		if cur == v {
			return true
		}
	}
	return false
}

// selectedIndex locates the single-select value in the current option
// list. Derived fresh on every call; the option list may have changed
// since the selection was made.
func (c *controller[T]) selectedIndex() int {
	cur := c.source.current()
	if len(cur) == 0 {
		return -1
	}
	for i, opt := range c.options {
		if opt.Value == cur[0] {
			return i
		}
	}
	return -1
}

// initialHighlight is the highlight an opening menu starts on: the
// selected option for single-select when one is present, else the
// first option, or -1 when there is nothing to highlight.
func (c *controller[T]) initialHighlight() int {
	if len(c.options) == 0 {
		return -1
	}
	if !c.multi {
		if i := c.selectedIndex(); i >= 0 {
			return i
		}
	}
	return 0
}

func (c *controller[T]) openMenu() {
	if c.disabled || c.open {
		return
	}
	c.open = true
	c.highlighted = c.initialHighlight()
}

func (c *controller[T]) closeMenu() {
	c.open = false
	c.highlighted = -1
}

func (c *controller[T]) toggleOpen() {
	if c.disabled {
		return
	}
	if c.open {
		c.closeMenu()
	} else {
		c.openMenu()
	}
}

// moveHighlight steps the highlight by delta, wrapping in both
// directions: down from the last option lands on the first, up from
// the first lands on the last.
func (c *controller[T]) moveHighlight(delta int) {
	n := len(c.options)
	if !c.open || n == 0 {
		return
	}
	c.highlighted = ((c.highlighted+delta)%n + n) % n
}

// setHighlight moves the highlight directly, as pointer hover does.
// Keyboard and pointer share this one index.
func (c *controller[T]) setHighlight(i int) {
	if !c.open || i < 0 || i >= len(c.options) {
		return
	}
	c.highlighted = i
}

// choose commits the option at index i. Single-select: the value is
// replaced and the menu closes. Multi-select: the value toggles in or
// out of the collection, other entries keep their order, and the menu
// stays open. The change listener fires either way, with the value the
// commit intended, whether or not this instance stores it.
func (c *controller[T]) choose(i int) {
	if c.disabled || i < 0 || i >= len(c.options) {
		return
	}
	v := c.options[i].Value

	if c.multi {
		cur := c.source.current()
		next := make([]T, 0, len(cur)+1)
		removed := false
		for _, existing := range cur {
			if existing == v {
				removed = true
				continue
			}
			next = append(next, existing)
		}
		if !removed {
			next = append(next, v)
		}
		c.source.apply(next)
		c.notify(next)
		return
	}

	next := []T{v}
	c.source.apply(next)
	c.closeMenu()
	c.notify(next)
}

// commitHighlighted commits the highlighted option, if any. With an
// empty option list there is never a valid highlight, so this is the
// no-op the empty-commit case calls for.
func (c *controller[T]) commitHighlighted() {
	if c.highlighted >= 0 && c.highlighted < len(c.options) {
		c.choose(c.highlighted)
	}
}

func (c *controller[T]) notify(next []T) {
	if c.onChange != nil {
		c.onChange(next)
	}
}

// setOptions swaps the option list. A highlight that no longer points
// at a valid option is recomputed the way opening computes it.
func (c *controller[T]) setOptions(options []Option[T]) {
	c.options = options
	if c.open && (c.highlighted < 0 || c.highlighted >= len(options)) {
		c.highlighted = c.initialHighlight()
	}
}
