package demo

import (
	"sort"

	"github.com/charmbracelet/bubbles/key"
	"go.uber.org/zap"

	"github.com/muurk/headless/internal/input"
	"github.com/muurk/headless/internal/logging"
)

// keyMap adds the app-level bindings to the engine bindings.
type keyMap struct {
	input.KeyMap
	Help key.Binding
	Quit key.Binding
}

// newKeyMap builds the default bindings and applies overrides keyed by
// action name. Unknown actions are logged and skipped.
func newKeyMap(overrides map[string][]string) keyMap {
	km := keyMap{
		KeyMap: input.DefaultKeyMap(),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "toggle help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc"),
			key.WithHelp("q", "quit"),
		),
	}

	actions := make([]string, 0, len(overrides))
	for action := range overrides {
		actions = append(actions, action)
	}
	sort.Strings(actions)

	for _, action := range actions {
		if !km.Override(action, overrides[action]) {
			logging.Warn("ignoring key override",
				zap.String("action", action),
				zap.Strings("keys", overrides[action]))
		}
	}
	return km
}

// ShortHelp returns keybindings to be shown in the mini help view
func (k keyMap) ShortHelp() []key.Binding {
	return append(k.KeyMap.ShortHelp(), k.Help, k.Quit)
}

// FullHelp returns keybindings for the expanded help view
func (k keyMap) FullHelp() [][]key.Binding {
	return append(k.KeyMap.FullHelp(), []key.Binding{k.Help, k.Quit})
}
