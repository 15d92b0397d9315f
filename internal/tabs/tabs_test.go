package tabs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/muurk/headless/internal/control"
	"github.com/muurk/headless/internal/input"
)

func abc() []Item {
	return []Item{{ID: "a"}, {ID: "b", Disabled: true}, {ID: "c"}}
}

func TestNavigatorInitialState(t *testing.T) {
	tests := []struct {
		name        string
		items       []Item
		def         string
		wantActive  string
		wantFocused int
	}{
		{"first enabled by default", abc(), "", "a", 0},
		{"explicit default", abc(), "c", "c", 2},
		{"disabled default falls back", abc(), "b", "a", 0},
		{"unknown default falls back", abc(), "zzz", "a", 0},
		{"leading disabled skipped", []Item{{ID: "x", Disabled: true}, {ID: "y"}}, "", "y", 1},
		{"all disabled", []Item{{ID: "x", Disabled: true}}, "", "", noFocus},
		{"empty list", nil, "", "", noFocus},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			view := New(Options{Items: tt.items, DefaultActiveID: tt.def}).View()
			assert.Equal(t, tt.wantActive, view.ActiveID)
			assert.Equal(t, tt.wantFocused, view.FocusedIndex)
		})
	}
}

func TestNavigatorSkipsDisabledWithoutWrapping(t *testing.T) {
	var changes []string
	opts := Options{Items: abc(), OnActiveChange: func(id string) { changes = append(changes, id) }}
	nav := New(opts)
	view := nav.Compute(opts)

	require.True(t, view.OnKey(0, input.KeyRight))
	view = nav.Compute(opts)
	assert.Equal(t, 2, view.FocusedIndex)
	assert.Equal(t, "c", view.ActiveID)

	require.True(t, view.OnKey(2, input.KeyRight), "boundary is still handled")
	view = nav.Compute(opts)
	assert.Equal(t, 2, view.FocusedIndex)

	require.True(t, view.OnKey(2, input.KeyLeft))
	assert.Equal(t, 0, nav.View().FocusedIndex)
	require.True(t, nav.HandleKey(0, input.KeyLeft))
	assert.Equal(t, 0, nav.View().FocusedIndex)

	assert.Equal(t, []string{"c", "a"}, changes)
}

func TestNavigatorBoundaryKeepsReceivingItemFocused(t *testing.T) {
	calls := 0
	opts := Options{Items: abc(), OnActiveChange: func(string) { calls++ }}
	nav := New(opts)
	require.Equal(t, 0, nav.Compute(opts).FocusedIndex)

	// c was focused directly, so the key arrives there while a is focused.
	require.True(t, nav.HandleKey(2, input.KeyRight))
	view := nav.Compute(opts)
	assert.Equal(t, 2, view.FocusedIndex)
	assert.Equal(t, "a", view.ActiveID, "boundary does not activate")
	assert.Equal(t, 0, calls)

	// A disabled receiver never takes focus.
	two := Options{Items: []Item{{ID: "a"}, {ID: "b", Disabled: true}}}
	nav = New(two)
	require.True(t, nav.HandleKey(1, input.KeyRight))
	assert.Equal(t, 0, nav.Compute(two).FocusedIndex)
}

func TestNavigatorHomeEnd(t *testing.T) {
	items := []Item{{ID: "x", Disabled: true}, {ID: "a"}, {ID: "b"}, {ID: "c"}, {ID: "y", Disabled: true}}
	nav := New(Options{Items: items, DefaultActiveID: "b"})

	require.True(t, nav.HandleKey(2, input.KeyEnd))
	assert.Equal(t, 3, nav.View().FocusedIndex)
	assert.Equal(t, "c", nav.View().ActiveID)

	require.True(t, nav.HandleKey(3, input.KeyHome))
	assert.Equal(t, 1, nav.View().FocusedIndex)
	assert.Equal(t, "a", nav.View().ActiveID)
}

func TestNavigatorOrientation(t *testing.T) {
	items := []Item{{ID: "a"}, {ID: "b"}}

	horizontal := New(Options{Items: items})
	assert.False(t, horizontal.HandleKey(0, input.KeyDown))
	assert.Equal(t, 0, horizontal.View().FocusedIndex)

	vertical := New(Options{Items: items, Orientation: Vertical})
	assert.False(t, vertical.HandleKey(0, input.KeyRight))
	require.True(t, vertical.HandleKey(0, input.KeyDown))
	assert.Equal(t, "b", vertical.View().ActiveID)
	require.True(t, vertical.HandleKey(1, input.KeyUp))
	assert.Equal(t, "a", vertical.View().ActiveID)
}

func TestNavigatorFocusNeverOnDisabled(t *testing.T) {
	items := []Item{
		{ID: "a", Disabled: true}, {ID: "b"}, {ID: "c", Disabled: true},
		{ID: "d", Disabled: true}, {ID: "e"}, {ID: "f"}, {ID: "g", Disabled: true},
	}
	keys := []input.Key{
		input.KeyRight, input.KeyRight, input.KeyLeft, input.KeyEnd, input.KeyRight,
		input.KeyHome, input.KeyLeft, input.KeyRight, input.KeyLeft, input.KeyEnd,
	}
	nav := New(Options{Items: items})

	for i, k := range keys {
		nav.HandleKey(nav.View().FocusedIndex, k)
		view := nav.View()
		require.GreaterOrEqual(t, view.FocusedIndex, 0, "step %d", i)
		assert.False(t, items[view.FocusedIndex].Disabled, "step %d %s", i, k)
	}
}

func TestNavigatorClick(t *testing.T) {
	var changes []string
	opts := Options{Items: abc(), OnActiveChange: func(id string) { changes = append(changes, id) }}
	nav := New(opts)
	view := nav.Compute(opts)

	assert.True(t, view.OnClick(1), "disabled click is swallowed")
	assert.Equal(t, "a", nav.View().ActiveID)

	require.True(t, view.OnClick(2))
	assert.Equal(t, 2, nav.View().FocusedIndex)
	assert.Equal(t, "c", nav.View().ActiveID)

	assert.False(t, view.OnClick(7))
	assert.False(t, view.OnClick(-1))
	assert.Equal(t, []string{"c"}, changes)
}

func TestNavigatorEnterOnDisabledItem(t *testing.T) {
	calls := 0
	nav := New(Options{Items: abc(), OnActiveChange: func(string) { calls++ }})

	assert.True(t, nav.HandleKey(1, input.KeyEnter))
	assert.True(t, nav.HandleKey(1, input.KeySpace))
	assert.Equal(t, 0, calls)
	assert.Equal(t, "a", nav.View().ActiveID)
	assert.False(t, nav.HandleKey(9, input.KeyEnter))
}

func TestNavigatorManualActivation(t *testing.T) {
	var changes []string
	opts := Options{
		Items:          []Item{{ID: "a"}, {ID: "b"}, {ID: "c"}},
		Activation:     Manual,
		OnActiveChange: func(id string) { changes = append(changes, id) },
	}
	nav := New(opts)

	require.True(t, nav.HandleKey(0, input.KeyRight))
	view := nav.Compute(opts)
	assert.Equal(t, 1, view.FocusedIndex)
	assert.Equal(t, "a", view.ActiveID, "focus moved without activating")
	assert.True(t, view.ItemAttrs(1).TabStop)
	assert.True(t, view.ItemAttrs(0).Selected)

	require.True(t, nav.HandleKey(1, input.KeySpace))
	assert.Equal(t, "b", nav.View().ActiveID)
	assert.Equal(t, []string{"b"}, changes)
}

func TestNavigatorControlled(t *testing.T) {
	var requested []string
	opts := Options{
		Items:          abc(),
		ActiveID:       control.Ptr("a"),
		OnActiveChange: func(id string) { requested = append(requested, id) },
	}
	nav := New(opts)

	require.True(t, nav.HandleKey(0, input.KeyRight))
	view := nav.Compute(opts)
	assert.Equal(t, "a", view.ActiveID, "unchanged until fed back")
	assert.Equal(t, 2, view.FocusedIndex, "focus is engine state")
	assert.Equal(t, []string{"c"}, requested)

	opts.ActiveID = control.Ptr("c")
	view = nav.Compute(opts)
	assert.Equal(t, "c", view.ActiveID)
	assert.True(t, view.ItemAttrs(2).Selected)
}

func TestNavigatorExternalChangeKeepsFocus(t *testing.T) {
	items := []Item{{ID: "a"}, {ID: "b"}, {ID: "c"}}
	opts := Options{Items: items, ActiveID: control.Ptr("a")}
	nav := New(opts)

	opts.ActiveID = control.Ptr("c")
	view := nav.Compute(opts)
	assert.Equal(t, "c", view.ActiveID)
	assert.Equal(t, 0, view.FocusedIndex)
}

func TestNavigatorRepairsRemovedItems(t *testing.T) {
	calls := 0
	opts := Options{
		Items:           []Item{{ID: "a"}, {ID: "b"}, {ID: "c"}},
		DefaultActiveID: "c",
		OnActiveChange:  func(string) { calls++ },
	}
	nav := New(opts)
	assert.Equal(t, 2, nav.View().FocusedIndex)

	opts.Items = []Item{{ID: "a"}, {ID: "b"}}
	view := nav.Compute(opts)
	assert.Equal(t, "a", view.ActiveID)
	assert.Equal(t, 0, view.FocusedIndex)
	assert.Zero(t, calls, "repair does not notify")

	opts.Items = []Item{{ID: "a", Disabled: true}, {ID: "b"}}
	view = nav.Compute(opts)
	assert.Equal(t, "b", view.ActiveID)
	assert.Equal(t, 1, view.FocusedIndex)
}

func TestNavigatorEmptyList(t *testing.T) {
	nav := New(Options{})
	view := nav.View()

	assert.Empty(t, view.Items)
	assert.Equal(t, noFocus, view.FocusedIndex)
	assert.False(t, view.OnKey(0, input.KeyRight))
	assert.False(t, view.OnClick(0))
	assert.Equal(t, ItemAttrs{}, view.ItemAttrs(0))
}

func TestNavigatorAttrs(t *testing.T) {
	view := New(Options{Items: abc(), BaseID: "demo", DefaultActiveID: "c"}).View()

	assert.Equal(t, ItemAttrs{
		ID:        "c",
		Selected:  true,
		TabStop:   true,
		TriggerID: "demo-trigger-c",
		PanelID:   "demo-panel-c",
	}, view.ItemAttrs(2))
	assert.Equal(t, ItemAttrs{
		ID:        "b",
		Disabled:  true,
		TriggerID: "demo-trigger-b",
		PanelID:   "demo-panel-b",
	}, view.ItemAttrs(1))

	assert.Equal(t, PanelAttrs{ID: "demo-panel-c", LabelledBy: "demo-trigger-c"}, view.PanelAttrs("c"))
	assert.True(t, view.PanelAttrs("a").Hidden)

	stops := 0
	for i := range view.Items {
		if view.ItemAttrs(i).TabStop {
			stops++
		}
	}
	assert.Equal(t, 1, stops)
}

func TestNavigatorGeneratedBaseID(t *testing.T) {
	first := New(Options{Items: abc()})
	second := New(Options{Items: abc()})

	assert.NotEmpty(t, first.View().BaseID)
	assert.NotEqual(t, first.View().BaseID, second.View().BaseID)
	assert.Equal(t, first.View().BaseID, first.Compute(Options{Items: abc()}).BaseID, "stable across computations")
}

func TestNavigatorComputeIsDeterministic(t *testing.T) {
	opts := Options{Items: abc(), BaseID: "x"}
	nav := New(opts)
	assert.Equal(t, nav.Compute(opts).State, nav.Compute(opts).State)
}

func TestEnumStrings(t *testing.T) {
	assert.Equal(t, "horizontal", Horizontal.String())
	assert.Equal(t, "vertical", Vertical.String())
	assert.Equal(t, "automatic", Automatic.String())
	assert.Equal(t, "manual", Manual.String())
}
