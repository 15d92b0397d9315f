// Package tabs implements a headless roving selection navigator.
//
// A Navigator tracks two things for a linear list of items: which item is
// active (selected) and which item holds roving focus, the single tab stop of
// the group. Focus is a plain index; the active item is an id that may be
// controlled by the caller.
//
// Navigation never wraps and skips disabled items. With Automatic activation,
// the default, every focus move also activates the target. With Manual
// activation arrows only move focus and Enter or Space activates.
//
//	nav := tabs.New(tabs.Options{Items: items})
//	view := nav.Compute(tabs.Options{Items: items, OnActiveChange: show})
//	for i := range view.Items {
//	    attrs := view.ItemAttrs(i)
//	    // draw trigger; attrs.TabStop marks the focusable one
//	}
package tabs
