// Package ui renders the headless engines' view models for the terminal.
//
// The engines never draw anything. This package turns their data-only State
// values into lipgloss-styled strings and reports where clickable parts ended
// up, so the host can route mouse events back to the right handler:
//
//   - RenderPagination returns the page line plus Hit extents per page and
//     control.
//   - RenderSlider returns the track plus the slider.Rect to publish through
//     the slider's TrackRef.
//   - RenderTabs returns the trigger row (or column) plus Hit extents.
//
// Non-interactive commands use Printer together with Header and Result boxes
// for their output.
//
// # Logging Integration
//
// This package expects logging to be controlled via the HEADLESS_LOG_LEVEL
// environment variable. When unset or empty, zap logging is silent, allowing
// the styled output to be displayed cleanly.
package ui
