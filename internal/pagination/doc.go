// Package pagination implements a headless range navigator.
//
// A Navigator works in one of two addressing modes, derived from its inputs
// on every computation:
//
//   - Offset mode (TotalPages set): pages are addressed by number. The view
//     carries an ordered list of page items with ellipses at the gaps, and
//     the navigator owns or mirrors the current page.
//   - Cursor mode (TotalPages nil): only "is there more in this direction"
//     is known. The four can-go flags come straight from the inputs and the
//     relative moves forward to caller callbacks.
//
// # Usage
//
//	nav := pagination.New(pagination.Options{TotalPages: control.Ptr(10)})
//
//	// once per render
//	view := nav.Compute(pagination.Options{
//	    TotalPages:   control.Ptr(10),
//	    OnPageChange: func(p int) { fetch(p) },
//	})
//	for _, item := range view.Items {
//	    // draw item
//	}
//	view.OnNext()
//
// Invalid requests (out of range, unavailable, disabled) are ignored without
// notification. Nothing in this package returns an error.
package pagination
