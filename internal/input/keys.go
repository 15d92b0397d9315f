package input

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// Key is a device-independent navigation key understood by the engines.
type Key int

const (
	KeyNone Key = iota
	KeyLeft
	KeyRight
	KeyUp
	KeyDown
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown
	KeyEnter
	KeySpace
	KeyTab
	KeyShiftTab
)

var keyNames = map[Key]string{
	KeyNone:     "none",
	KeyLeft:     "left",
	KeyRight:    "right",
	KeyUp:       "up",
	KeyDown:     "down",
	KeyHome:     "home",
	KeyEnd:      "end",
	KeyPageUp:   "pageup",
	KeyPageDown: "pagedown",
	KeyEnter:    "enter",
	KeySpace:    "space",
	KeyTab:      "tab",
	KeyShiftTab: "shifttab",
}

// String returns the action name of the key, as used in config files
func (k Key) String() string {
	if name, ok := keyNames[k]; ok {
		return name
	}
	return "unknown"
}

// ParseKey maps an action name back to a Key. Unknown names return KeyNone.
func ParseKey(name string) Key {
	name = strings.ToLower(strings.TrimSpace(name))
	for k, n := range keyNames {
		if n == name {
			return k
		}
	}
	return KeyNone
}

// KeyMap binds terminal keys to engine keys.
type KeyMap struct {
	Left     key.Binding
	Right    key.Binding
	Up       key.Binding
	Down     key.Binding
	Home     key.Binding
	End      key.Binding
	PageUp   key.Binding
	PageDown key.Binding
	Enter    key.Binding
	Space    key.Binding
	Tab      key.Binding
	ShiftTab key.Binding
}

// DefaultKeyMap returns arrow/vim bindings
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Left: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "previous"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "next"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Home: key.NewBinding(
			key.WithKeys("home", "g"),
			key.WithHelp("home/g", "first"),
		),
		End: key.NewBinding(
			key.WithKeys("end", "G"),
			key.WithHelp("end/G", "last"),
		),
		PageUp: key.NewBinding(
			key.WithKeys("pgup"),
			key.WithHelp("pgup", "big step up"),
		),
		PageDown: key.NewBinding(
			key.WithKeys("pgdown"),
			key.WithHelp("pgdn", "big step down"),
		),
		Enter: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "activate"),
		),
		Space: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "activate"),
		),
		Tab: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next widget"),
		),
		ShiftTab: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "previous widget"),
		),
	}
}

func (m *KeyMap) binding(k Key) *key.Binding {
	switch k {
	case KeyLeft:
		return &m.Left
	case KeyRight:
		return &m.Right
	case KeyUp:
		return &m.Up
	case KeyDown:
		return &m.Down
	case KeyHome:
		return &m.Home
	case KeyEnd:
		return &m.End
	case KeyPageUp:
		return &m.PageUp
	case KeyPageDown:
		return &m.PageDown
	case KeyEnter:
		return &m.Enter
	case KeySpace:
		return &m.Space
	case KeyTab:
		return &m.Tab
	case KeyShiftTab:
		return &m.ShiftTab
	default:
		return nil
	}
}

// Override replaces the terminal keys bound to an action, keeping its help
// description. It returns false when the action name is unknown or no keys
// are given.
func (m *KeyMap) Override(action string, keys []string) bool {
	b := m.binding(ParseKey(action))
	if b == nil || len(keys) == 0 {
		return false
	}
	desc := b.Help().Desc
	*b = key.NewBinding(
		key.WithKeys(keys...),
		key.WithHelp(strings.Join(keys, "/"), desc),
	)
	return true
}

// translationOrder fixes precedence when a terminal key is bound to more than
// one action.
var translationOrder = []Key{
	KeyLeft, KeyRight, KeyUp, KeyDown,
	KeyHome, KeyEnd, KeyPageUp, KeyPageDown,
	KeyEnter, KeySpace, KeyTab, KeyShiftTab,
}

// Translate maps a terminal key message to an engine key, or KeyNone.
func (m KeyMap) Translate(msg tea.KeyMsg) Key {
	for _, k := range translationOrder {
		if key.Matches(msg, *m.binding(k)) {
			return k
		}
	}
	return KeyNone
}

// ShortHelp returns keybindings to be shown in the mini help view
func (m KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{m.Left, m.Right, m.Home, m.End, m.Tab}
}

// FullHelp returns keybindings for the expanded help view
func (m KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{m.Left, m.Right, m.Up, m.Down},
		{m.Home, m.End, m.PageUp, m.PageDown},
		{m.Enter, m.Space, m.Tab, m.ShiftTab},
	}
}
