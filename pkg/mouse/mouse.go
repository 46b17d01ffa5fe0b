// Package mouse routes terminal mouse events to named screen regions.
// Widgets register the rectangles they rendered, then feed bubbletea
// mouse messages through a Handler to get back hit-tested actions.
package mouse

import (
	tea "github.com/charmbracelet/bubbletea"
)

// Rect is a rectangle in screen cells. The right and bottom edges are
// exclusive: a Rect at X=10 with W=20 covers columns 10 through 29.
type Rect struct {
	X, Y, W, H int
}

// Contains reports whether the cell at (x, y) lies inside the rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Empty reports whether the rectangle has no area.
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// Region is a named rectangle with optional caller data, such as the
// index of the option a menu row displays.
type Region struct {
	ID   string
	Rect Rect
	Data any
}

// HitMap resolves screen coordinates to registered regions. Regions
// added later win when rectangles overlap, so callers register
// back-to-front (background first, floating content last).
type HitMap struct {
	regions []Region
}

// NewHitMap returns an empty hit map.
func NewHitMap() *HitMap {
	return &HitMap{}
}

// AddRect registers a region by its corner and size.
func (h *HitMap) AddRect(id string, x, y, w, ht int, data any) {
	h.Add(id, Rect{X: x, Y: y, W: w, H: ht}, data)
}

// Add registers a region.
func (h *HitMap) Add(id string, r Rect, data any) {
	h.regions = append(h.regions, Region{ID: id, Rect: r, Data: data})
}

// Test returns the topmost region containing (x, y), or nil.
func (h *HitMap) Test(x, y int) *Region {
	for i := len(h.regions) - 1; i >= 0; i-- {
		if h.regions[i].Rect.Contains(x, y) {
			return &h.regions[i]
		}
	}
	return nil
}

// Clear removes all regions. Call before re-registering for a new frame.
func (h *HitMap) Clear() {
	h.regions = h.regions[:0]
}

// Regions returns the registered regions in registration order.
func (h *HitMap) Regions() []Region {
	return h.regions
}

// ActionType classifies a routed mouse action.
type ActionType int

const (
	ActionNone ActionType = iota
	ActionClick
	ActionHover
	ActionScrollUp
	ActionScrollDown
	ActionScrollLeft
	ActionScrollRight
)

// Action is the result of routing one mouse message: what happened,
// where, and the region it happened over (nil for a miss).
type Action struct {
	Type   ActionType
	Region *Region
	X, Y   int
}

// Handler turns raw bubbletea mouse messages into hit-tested actions.
// The embedded HitMap is rebuilt by the owner each frame.
type Handler struct {
	HitMap *HitMap
}

// NewHandler returns a handler with an empty hit map.
func NewHandler() *Handler {
	return &Handler{HitMap: NewHitMap()}
}

// HandleMouse routes a mouse message. Presses become clicks (or scroll
// actions for wheel buttons, horizontal when shift is held), motion
// becomes hover. Releases produce ActionNone; selection is press-driven.
func (h *Handler) HandleMouse(msg tea.MouseMsg) Action {
	region := h.HitMap.Test(msg.X, msg.Y)
	act := Action{Type: ActionNone, Region: region, X: msg.X, Y: msg.Y}

	switch msg.Action {
	case tea.MouseActionPress:
		switch msg.Button {
		case tea.MouseButtonWheelUp:
			if msg.Shift {
				act.Type = ActionScrollLeft
			} else {
				act.Type = ActionScrollUp
			}
		case tea.MouseButtonWheelDown:
			if msg.Shift {
				act.Type = ActionScrollRight
			} else {
				act.Type = ActionScrollDown
			}
		case tea.MouseButtonLeft:
			act.Type = ActionClick
		}
	case tea.MouseActionMotion:
		act.Type = ActionHover
	}

	return act
}

// Clear resets the hit map.
func (h *Handler) Clear() {
	h.HitMap.Clear()
}
