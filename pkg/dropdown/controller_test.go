package dropdown

import (
	"reflect"
	"testing"
)

func intOptions() []Option[int] {
	return []Option[int]{
		NewOption("alpha", 1),
		NewOption("bravo", 2),
		NewOption("charlie", 3),
	}
}

func TestInitialHighlight(t *testing.T) {
	tests := []struct {
		name     string
		options  []Option[int]
		selected []int
		multi    bool
		want     int
	}{
		{name: "empty list", options: nil, want: -1},
		{name: "no selection", options: intOptions(), want: 0},
		{name: "single with selection", options: intOptions(), selected: []int{2}, want: 1},
		{name: "selection missing from options", options: intOptions(), selected: []int{9}, want: 0},
		{name: "multi ignores selection", options: intOptions(), selected: []int{3}, multi: true, want: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newController(tt.options, &uncontrolled[int]{values: tt.selected}, tt.multi)
			if got := c.initialHighlight(); got != tt.want {
				t.Errorf("initialHighlight() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestOpenCloseHighlight(t *testing.T) {
	c := newController(intOptions(), &uncontrolled[int]{values: []int{2}}, false)
	if c.highlighted != -1 {
		t.Fatalf("highlighted before open = %d, want -1", c.highlighted)
	}

	c.openMenu()
	if !c.open {
		t.Fatal("openMenu() left the menu closed")
	}
	if c.highlighted != 1 {
		t.Errorf("highlighted after open = %d, want 1", c.highlighted)
	}

	c.closeMenu()
	if c.open {
		t.Fatal("closeMenu() left the menu open")
	}
	if c.highlighted != -1 {
		t.Errorf("highlighted after close = %d, want -1", c.highlighted)
	}
}

func TestToggleOpen(t *testing.T) {
	c := newController(intOptions(), &uncontrolled[int]{}, false)
	c.toggleOpen()
	if !c.open {
		t.Fatal("first toggle did not open")
	}
	c.toggleOpen()
	if c.open {
		t.Fatal("second toggle did not close")
	}
}

func TestMoveHighlightWraps(t *testing.T) {
	tests := []struct {
		name  string
		start int
		delta int
		want  int
	}{
		{"down", 0, 1, 1},
		{"down from last wraps to first", 2, 1, 0},
		{"up from first wraps to last", 0, -1, 2},
		{"up", 2, -1, 1},
		{"large positive step", 0, 7, 1},
		{"large negative step", 0, -7, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newController(intOptions(), &uncontrolled[int]{}, false)
			c.openMenu()
			c.highlighted = tt.start
			c.moveHighlight(tt.delta)
			if c.highlighted != tt.want {
				t.Errorf("moveHighlight(%d) from %d = %d, want %d", tt.delta, tt.start, c.highlighted, tt.want)
			}
		})
	}
}

func TestMoveHighlightGuards(t *testing.T) {
	closed := newController(intOptions(), &uncontrolled[int]{}, false)
	closed.moveHighlight(1)
	if closed.highlighted != -1 {
		t.Errorf("moveHighlight on a closed menu set highlight %d", closed.highlighted)
	}

	empty := newController[int](nil, &uncontrolled[int]{}, false)
	empty.openMenu()
	empty.moveHighlight(1)
	if empty.highlighted != -1 {
		t.Errorf("moveHighlight with no options set highlight %d", empty.highlighted)
	}
}

func TestSingleSelectCommit(t *testing.T) {
	var got [][]int
	c := newController(intOptions(), &uncontrolled[int]{}, false)
	c.onChange = func(v []int) { got = append(got, v) }

	c.openMenu()
	c.moveHighlight(1)
	c.commitHighlighted()

	if c.open {
		t.Error("single-select commit left the menu open")
	}
	if want := []int{2}; !reflect.DeepEqual(c.currentValue(), want) {
		t.Errorf("value after commit = %v, want %v", c.currentValue(), want)
	}
	if len(got) != 1 || !reflect.DeepEqual(got[0], []int{2}) {
		t.Errorf("onChange calls = %v, want [[2]]", got)
	}
}

func TestReselectNotifiesAgain(t *testing.T) {
	calls := 0
	c := newController(intOptions(), &uncontrolled[int]{}, false)
	c.onChange = func([]int) { calls++ }

	c.openMenu()
	c.commitHighlighted()
	c.openMenu()
	c.commitHighlighted()

	if calls != 2 {
		t.Errorf("onChange calls = %d, want 2", calls)
	}
	if want := []int{1}; !reflect.DeepEqual(c.currentValue(), want) {
		t.Errorf("value = %v, want %v", c.currentValue(), want)
	}
}

func TestMultiToggle(t *testing.T) {
	var last []int
	c := newController(intOptions(), &uncontrolled[int]{}, true)
	c.onChange = func(v []int) { last = v }

	c.openMenu()
	c.choose(0)
	if !c.open {
		t.Fatal("multi commit closed the menu")
	}
	c.choose(2)
	if want := []int{1, 3}; !reflect.DeepEqual(c.currentValue(), want) {
		t.Fatalf("value after two commits = %v, want %v", c.currentValue(), want)
	}

	// Toggling an earlier entry out keeps the rest in order.
	c.choose(0)
	if want := []int{3}; !reflect.DeepEqual(c.currentValue(), want) {
		t.Errorf("value after toggle-off = %v, want %v", c.currentValue(), want)
	}
	if want := []int{3}; !reflect.DeepEqual(last, want) {
		t.Errorf("last onChange value = %v, want %v", last, want)
	}
}

func TestMultiToggleTwiceRestores(t *testing.T) {
	c := newController(intOptions(), &uncontrolled[int]{values: []int{1, 3}}, true)
	c.openMenu()
	c.choose(1)
	c.choose(1)
	if want := []int{1, 3}; !reflect.DeepEqual(c.currentValue(), want) {
		t.Errorf("value after double toggle = %v, want %v", c.currentValue(), want)
	}
}

func TestControlledCommitNotifiesWithoutStoring(t *testing.T) {
	var got []int
	c := newController(intOptions(), &controlled[int]{values: []int{3}}, false)
	c.onChange = func(v []int) { got = v }

	c.openMenu()
	if c.highlighted != 2 {
		t.Fatalf("highlighted after open = %d, want 2", c.highlighted)
	}
	c.setHighlight(0)
	c.commitHighlighted()

	if want := []int{1}; !reflect.DeepEqual(got, want) {
		t.Errorf("onChange value = %v, want %v", got, want)
	}
	if want := []int{3}; !reflect.DeepEqual(c.currentValue(), want) {
		t.Errorf("controlled value mutated to %v, want %v", c.currentValue(), want)
	}

	// The host feeds the committed value back in.
	c.source.set([]int{1})
	if want := []int{1}; !reflect.DeepEqual(c.currentValue(), want) {
		t.Errorf("value after set = %v, want %v", c.currentValue(), want)
	}
}

func TestDisabledSuppressesEverything(t *testing.T) {
	calls := 0
	c := newController(intOptions(), &uncontrolled[int]{}, false)
	c.onChange = func([]int) { calls++ }
	c.disabled = true

	c.openMenu()
	if c.open {
		t.Fatal("openMenu opened a disabled widget")
	}
	c.toggleOpen()
	if c.open {
		t.Fatal("toggleOpen opened a disabled widget")
	}
	c.choose(1)
	if calls != 0 || len(c.currentValue()) != 0 {
		t.Errorf("disabled choose committed: calls=%d value=%v", calls, c.currentValue())
	}
}

func TestCommitWithNoOptions(t *testing.T) {
	calls := 0
	c := newController[string](nil, &uncontrolled[string]{}, false)
	c.onChange = func([]string) { calls++ }

	c.openMenu()
	c.commitHighlighted()

	if calls != 0 {
		t.Errorf("onChange calls = %d, want 0", calls)
	}
	if len(c.currentValue()) != 0 {
		t.Errorf("value = %v, want empty", c.currentValue())
	}
}

func TestSetOptionsReseatsHighlight(t *testing.T) {
	c := newController(intOptions(), &uncontrolled[int]{}, false)
	c.openMenu()
	c.highlighted = 2

	c.setOptions(intOptions()[:2])
	if c.highlighted != 0 {
		t.Errorf("highlighted after shrink = %d, want 0", c.highlighted)
	}

	c.highlighted = 1
	c.setOptions(intOptions())
	if c.highlighted != 1 {
		t.Errorf("valid highlight moved to %d after grow", c.highlighted)
	}

	closed := newController(intOptions(), &uncontrolled[int]{}, false)
	closed.setOptions(intOptions()[:1])
	if closed.highlighted != -1 {
		t.Errorf("highlighted on a closed menu = %d, want -1", closed.highlighted)
	}
}

func TestSelectedIndexTracksOptionList(t *testing.T) {
	c := newController(intOptions(), &uncontrolled[int]{values: []int{3}}, false)
	if got := c.selectedIndex(); got != 2 {
		t.Fatalf("selectedIndex() = %d, want 2", got)
	}

	c.setOptions([]Option[int]{NewOption("charlie", 3), NewOption("alpha", 1)})
	if got := c.selectedIndex(); got != 0 {
		t.Errorf("selectedIndex() after reorder = %d, want 0", got)
	}

	c.setOptions([]Option[int]{NewOption("alpha", 1)})
	if got := c.selectedIndex(); got != -1 {
		t.Errorf("selectedIndex() with value missing = %d, want -1", got)
	}
}
