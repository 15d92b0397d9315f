package tabs

import (
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/muurk/headless/internal/control"
	"github.com/muurk/headless/internal/input"
	"github.com/muurk/headless/internal/logging"
)

const engineName = "tabs"

// noFocus is the focused index of a list without enabled items.
const noFocus = -1

// Orientation selects which arrow keys move focus.
type Orientation int

const (
	// Horizontal moves focus with Left and Right.
	Horizontal Orientation = iota
	// Vertical moves focus with Up and Down.
	Vertical
)

// String returns a human-readable name for the orientation
func (o Orientation) String() string {
	switch o {
	case Horizontal:
		return "horizontal"
	case Vertical:
		return "vertical"
	default:
		return fmt.Sprintf("Orientation(%d)", o)
	}
}

// Activation selects whether moving focus also activates.
type Activation int

const (
	// Automatic activates every item focus lands on.
	Automatic Activation = iota
	// Manual moves focus only; Enter or Space activates.
	Manual
)

// String returns a human-readable name for the activation mode
func (a Activation) String() string {
	switch a {
	case Automatic:
		return "automatic"
	case Manual:
		return "manual"
	default:
		return fmt.Sprintf("Activation(%d)", a)
	}
}

// Item is one selectable entry.
type Item struct {
	ID       string
	Label    string
	Disabled bool
}

// Options are the per-computation inputs of a Navigator.
type Options struct {
	Items       []Item
	Orientation Orientation
	Activation  Activation

	// ActiveID makes the active item controlled by the caller.
	ActiveID *string
	// DefaultActiveID seeds the uncontrolled active item. Empty, unknown or
	// disabled ids fall back to the first enabled item.
	DefaultActiveID string
	OnActiveChange  func(id string)

	// BaseID prefixes the trigger and panel ids. A random one is generated
	// at construction when empty.
	BaseID string
}

// State is the data-only part of a View.
type State struct {
	ActiveID     string
	FocusedIndex int
	Orientation  Orientation
	Activation   Activation
	Items        []Item
	BaseID       string
}

// ItemAttrs describes one trigger for assistive technology.
type ItemAttrs struct {
	ID        string
	Selected  bool
	Disabled  bool
	TabStop   bool
	TriggerID string
	PanelID   string
}

// PanelAttrs describes the panel belonging to an item.
type PanelAttrs struct {
	ID         string
	LabelledBy string
	Hidden     bool
}

func (s State) triggerID(id string) string { return s.BaseID + "-trigger-" + id }
func (s State) panelID(id string) string   { return s.BaseID + "-panel-" + id }

// ItemAttrs returns the attributes of the item at index. Exactly one enabled
// item is a tab stop: the focused one. An out of range index yields the zero
// value.
func (s State) ItemAttrs(index int) ItemAttrs {
	if index < 0 || index >= len(s.Items) {
		return ItemAttrs{}
	}
	it := s.Items[index]
	return ItemAttrs{
		ID:        it.ID,
		Selected:  it.ID == s.ActiveID,
		Disabled:  it.Disabled,
		TabStop:   index == s.FocusedIndex,
		TriggerID: s.triggerID(it.ID),
		PanelID:   s.panelID(it.ID),
	}
}

// PanelAttrs returns the attributes of the panel for id.
func (s State) PanelAttrs(id string) PanelAttrs {
	return PanelAttrs{
		ID:         s.panelID(id),
		LabelledBy: s.triggerID(id),
		Hidden:     id != s.ActiveID,
	}
}

// View is the result of a computation: state plus event handlers. Handlers
// return true when the event should be treated as handled.
type View struct {
	State

	OnClick func(index int) bool
	OnKey   func(index int, k input.Key) bool
}

// Navigator is the roving selection engine. It is not safe for concurrent use.
type Navigator struct {
	active  *control.State[string]
	focused int
	baseID  string
	latest  Options
}

// New creates a Navigator. Ownership of the active id is decided here from
// whether opts.ActiveID is set.
func New(opts Options) *Navigator {
	def := opts.DefaultActiveID
	if !selectable(opts.Items, def) {
		def = firstEnabledID(opts.Items)
	}

	n := &Navigator{
		active:  control.New(engineName, opts.ActiveID, def),
		focused: noFocus,
		baseID:  opts.BaseID,
	}
	if n.baseID == "" {
		n.baseID = "tabs-" + uuid.NewString()
	}
	n.sync(opts)
	return n
}

// Compute refreshes the inputs and returns the current view.
func (n *Navigator) Compute(opts Options) View {
	n.sync(opts)
	return n.View()
}

// View returns the view for the latest inputs without changing them.
func (n *Navigator) View() View {
	return View{
		State:   n.state(),
		OnClick: n.Click,
		OnKey:   n.HandleKey,
	}
}

func (n *Navigator) sync(opts Options) {
	n.latest = opts
	if opts.BaseID != "" {
		n.baseID = opts.BaseID
	}
	n.active.Sync(opts.ActiveID, opts.OnActiveChange)

	items := opts.Items
	if !n.active.Controlled() && !selectable(items, n.active.Get()) {
		repaired := firstEnabledID(items)
		logging.Debug("active item no longer selectable",
			zap.String("engine", engineName),
			zap.String("from", n.active.Get()),
			zap.String("to", repaired))
		n.active.Replace(repaired)
	}

	if n.focused < 0 || n.focused >= len(items) || items[n.focused].Disabled {
		n.focused = n.restingFocus()
	}
}

// restingFocus is where focus sits when nothing has been navigated yet or the
// focused item went away: the active item when it is enabled, otherwise the
// first enabled item.
func (n *Navigator) restingFocus() int {
	items := n.latest.Items
	if i := indexOf(items, n.active.Get()); i >= 0 && !items[i].Disabled {
		return i
	}
	return n.adjacent(-1, 1)
}

func (n *Navigator) state() State {
	items := make([]Item, len(n.latest.Items))
	copy(items, n.latest.Items)
	return State{
		ActiveID:     n.active.Get(),
		FocusedIndex: n.focused,
		Orientation:  n.latest.Orientation,
		Activation:   n.latest.Activation,
		Items:        items,
		BaseID:       n.baseID,
	}
}

// adjacent returns the first enabled index strictly after from in direction
// dir, or noFocus at the boundary.
func (n *Navigator) adjacent(from, dir int) int {
	items := n.latest.Items
	for i := from + dir; i >= 0 && i < len(items); i += dir {
		if !items[i].Disabled {
			return i
		}
	}
	return noFocus
}

func (n *Navigator) focus(index int) {
	if index == n.focused {
		return
	}
	logging.LogTransition(engineName, "focus", n.focused, index)
	n.focused = index
}

func (n *Navigator) activate(index int) {
	n.focus(index)
	n.active.Set(n.latest.Items[index].ID)
}

// Click activates the item at index. Clicking a disabled item is handled
// without any effect.
func (n *Navigator) Click(index int) bool {
	items := n.latest.Items
	if index < 0 || index >= len(items) {
		return false
	}
	if items[index].Disabled {
		logging.LogIgnored(engineName, "click", "item disabled")
		return true
	}
	n.activate(index)
	return true
}

// HandleKey processes k delivered to the item at index. Arrow keys along the
// orientation move to the neighbouring enabled item and stop at either end,
// where focus stays on the item that received the key.
// Home and End jump to the first and last enabled item. Enter and Space
// activate the item itself.
func (n *Navigator) HandleKey(index int, k input.Key) bool {
	items := n.latest.Items
	if index < 0 || index >= len(items) {
		return false
	}

	prev, next := input.KeyLeft, input.KeyRight
	if n.latest.Orientation == Vertical {
		prev, next = input.KeyUp, input.KeyDown
	}

	var target int
	switch k {
	case prev:
		target = n.adjacent(index, -1)
	case next:
		target = n.adjacent(index, 1)
	case input.KeyHome:
		target = n.adjacent(-1, 1)
	case input.KeyEnd:
		target = n.adjacent(len(items), -1)
	case input.KeyEnter, input.KeySpace:
		if items[index].Disabled {
			logging.LogIgnored(engineName, "key "+k.String(), "item disabled")
			return true
		}
		n.activate(index)
		return true
	default:
		return false
	}

	if target == noFocus {
		// Stay on the item that received the key.
		if !items[index].Disabled {
			n.focus(index)
		}
		logging.LogIgnored(engineName, "key "+k.String(), "boundary")
		return true
	}
	if n.latest.Activation == Manual {
		n.focus(target)
		return true
	}
	n.activate(target)
	return true
}

func indexOf(items []Item, id string) int {
	for i, it := range items {
		if it.ID == id {
			return i
		}
	}
	return -1
}

func selectable(items []Item, id string) bool {
	i := indexOf(items, id)
	return i >= 0 && !items[i].Disabled
}

func firstEnabledID(items []Item) string {
	for _, it := range items {
		if !it.Disabled {
			return it.ID
		}
	}
	return ""
}
