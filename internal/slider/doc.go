// Package slider implements a headless bounded value controller.
//
// A Slider keeps a numeric value inside [Min, Max], aligned to Step counted
// from Min. The value changes through three paths:
//
//   - Keyboard: arrows move one step, PageUp/PageDown ten steps, Home and End
//     jump to exactly Min and Max.
//   - Pointer: a press on the track starts a drag, moves from the same pointer
//     update the value, and the release fires OnValueCommit once.
//   - The caller, when the value is controlled.
//
// The rendering layer publishes the track geometry through the TrackRef
// returned by Track; pointer positions are mapped onto it. Horizontal tracks
// grow from the left edge, vertical tracks from the bottom edge.
//
// A range with Max below Min collapses to Min. A Step that is zero, negative
// or NaN turns snapping off and values are only clamped.
package slider
