// Package input translates terminal events into the device-independent events
// consumed by the headless engines.
//
// Keyboard messages are matched against a KeyMap of bubbles/key bindings and
// reduced to a Key. Mouse messages pass through a PointerTracker, which
// correlates press, motion and release into PointerEvents that carry a
// pointer identity.
//
// Engines only see Key and PointerEvent values, so they can be driven from
// tests, from the command line, or from any other front end.
package input
