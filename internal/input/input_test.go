package input

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestTranslateDefaultKeyMap(t *testing.T) {
	km := DefaultKeyMap()

	tests := []struct {
		name string
		msg  tea.KeyMsg
		want Key
	}{
		{"left arrow", tea.KeyMsg{Type: tea.KeyLeft}, KeyLeft},
		{"vim h", runeKey('h'), KeyLeft},
		{"right arrow", tea.KeyMsg{Type: tea.KeyRight}, KeyRight},
		{"up arrow", tea.KeyMsg{Type: tea.KeyUp}, KeyUp},
		{"down arrow", tea.KeyMsg{Type: tea.KeyDown}, KeyDown},
		{"home", tea.KeyMsg{Type: tea.KeyHome}, KeyHome},
		{"end", tea.KeyMsg{Type: tea.KeyEnd}, KeyEnd},
		{"shift g", runeKey('G'), KeyEnd},
		{"page up", tea.KeyMsg{Type: tea.KeyPgUp}, KeyPageUp},
		{"page down", tea.KeyMsg{Type: tea.KeyPgDown}, KeyPageDown},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, KeyEnter},
		{"space", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, KeySpace},
		{"tab", tea.KeyMsg{Type: tea.KeyTab}, KeyTab},
		{"shift tab", tea.KeyMsg{Type: tea.KeyShiftTab}, KeyShiftTab},
		{"unbound", runeKey('x'), KeyNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, km.Translate(tt.msg))
		})
	}
}

func TestKeyMapOverride(t *testing.T) {
	km := DefaultKeyMap()

	require.True(t, km.Override("left", []string{"a"}))
	assert.Equal(t, KeyLeft, km.Translate(runeKey('a')))
	assert.Equal(t, KeyNone, km.Translate(runeKey('h')), "old binding should be replaced")
	assert.Equal(t, "previous", km.Left.Help().Desc)

	assert.False(t, km.Override("teleport", []string{"t"}))
	assert.False(t, km.Override("right", nil))
}

func TestParseKeyRoundTrip(t *testing.T) {
	for k := KeyLeft; k <= KeyShiftTab; k++ {
		assert.Equal(t, k, ParseKey(k.String()), k.String())
	}
	assert.Equal(t, KeyNone, ParseKey("bogus"))
	assert.Equal(t, KeyHome, ParseKey("  HOME "))
}

func TestPointerTrackerDragSequence(t *testing.T) {
	var tr PointerTracker

	phase, ev, ok := tr.FromMouse(tea.MouseMsg{X: 4, Y: 1, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	require.True(t, ok)
	assert.Equal(t, PhaseDown, phase)
	assert.Equal(t, PointerEvent{ID: int(tea.MouseButtonLeft), X: 4, Y: 1}, ev)
	assert.True(t, tr.Active())

	phase, ev, ok = tr.FromMouse(tea.MouseMsg{X: 9, Y: 1, Action: tea.MouseActionMotion, Button: tea.MouseButtonNone})
	require.True(t, ok)
	assert.Equal(t, PhaseMove, phase)
	assert.Equal(t, int(tea.MouseButtonLeft), ev.ID, "motion inherits the pressed button")
	assert.Equal(t, 9.0, ev.X)

	phase, ev, ok = tr.FromMouse(tea.MouseMsg{X: 12, Y: 1, Action: tea.MouseActionRelease, Button: tea.MouseButtonNone})
	require.True(t, ok)
	assert.Equal(t, PhaseUp, phase)
	assert.Equal(t, int(tea.MouseButtonLeft), ev.ID)
	assert.False(t, tr.Active())
}

func TestPointerTrackerIgnoresWheelAndIdleMotion(t *testing.T) {
	var tr PointerTracker

	_, _, ok := tr.FromMouse(tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonWheelUp})
	assert.False(t, ok)

	_, _, ok = tr.FromMouse(tea.MouseMsg{Action: tea.MouseActionMotion})
	assert.False(t, ok)

	_, _, ok = tr.FromMouse(tea.MouseMsg{Action: tea.MouseActionRelease})
	assert.False(t, ok)
}

func TestPhaseString(t *testing.T) {
	assert.Equal(t, "down", PhaseDown.String())
	assert.Equal(t, "move", PhaseMove.String())
	assert.Equal(t, "up", PhaseUp.String())
	assert.Equal(t, "unknown", Phase(9).String())
}
