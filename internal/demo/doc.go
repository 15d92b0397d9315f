// Package demo is an interactive terminal showcase for the headless engines.
//
// It hosts a pagination navigator, a slider and a tabs navigator in one
// Bubble Tea program and acts as their rendering layer: each frame it
// computes a view per engine, draws it with the internal/ui widgets and
// routes keyboard and mouse input back to the view's handlers.
//
// # Input
//
// Tab and Shift+Tab move keyboard focus between the three sections. All other
// keys are translated with input.KeyMap and delivered to the focused engine.
// Mouse presses are hit-tested against the layout of the last frame, so a
// click on a page number, a tab or the slider track reaches the right
// handler. Drags and releases always go to the slider, which ignores events
// from pointers it is not tracking.
//
// # Ownership
//
// The slider runs controlled: its value lives in the demo and is fed back on
// every frame. Pagination and tabs own their state. When the pagination
// preset enables cursor mode, the demo keeps the page position itself and
// only tells the navigator whether it can move.
//
// # Usage
//
//	cfg, _ := config.Load()
//	program := tea.NewProgram(demo.NewAppModel(cfg), tea.WithAltScreen(), tea.WithMouseCellMotion())
//	if _, err := program.Run(); err != nil {
//	    log.Fatal(err)
//	}
package demo
