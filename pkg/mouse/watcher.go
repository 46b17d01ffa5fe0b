package mouse

import (
	tea "github.com/charmbracelet/bubbletea"
)

// Watcher fires a callback when a pointer press lands outside every
// registered inside-region. A floating menu registers itself and its
// trigger, activates the watcher while open, and closes on the callback.
//
// The watcher only examines messages while active, and owners route
// messages to it only while the watched surface exists, so there is
// nothing to leak across open/close cycles.
type Watcher struct {
	active  bool
	regions []Rect

	// OnOutside is invoked once per qualifying press. May be nil.
	OnOutside func()
}

// NewWatcher returns an inactive watcher.
func NewWatcher(onOutside func()) *Watcher {
	return &Watcher{OnOutside: onOutside}
}

// SetActive enables or disables the watcher. Deactivating also drops
// the registered regions; they are stale once the surface is gone.
func (w *Watcher) SetActive(active bool) {
	w.active = active
	if !active {
		w.regions = w.regions[:0]
	}
}

// Active reports whether the watcher is examining presses.
func (w *Watcher) Active() bool {
	return w.active
}

// SetRegions replaces the inside-regions. Empty rectangles are kept out
// so an unmeasured region can never swallow the whole screen test.
func (w *Watcher) SetRegions(regions ...Rect) {
	w.regions = w.regions[:0]
	for _, r := range regions {
		if !r.Empty() {
			w.regions = append(w.regions, r)
		}
	}
}

// Observe examines one mouse message and reports whether OnOutside
// fired. Only button presses qualify; wheel, motion and release never
// dismiss. Terminal protocols deliver touch as a press, so touch is
// covered by the same path.
func (w *Watcher) Observe(msg tea.MouseMsg) bool {
	if !w.active {
		return false
	}
	if msg.Action != tea.MouseActionPress {
		return false
	}
	switch msg.Button {
	case tea.MouseButtonWheelUp, tea.MouseButtonWheelDown,
		tea.MouseButtonWheelLeft, tea.MouseButtonWheelRight:
		return false
	}
	for _, r := range w.regions {
		if r.Contains(msg.X, msg.Y) {
			return false
		}
	}
	if w.OnOutside != nil {
		w.OnOutside()
	}
	return true
}
