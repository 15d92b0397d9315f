package pagination

import (
	"fmt"

	"github.com/muurk/headless/internal/control"
	"github.com/muurk/headless/internal/input"
	"github.com/muurk/headless/internal/logging"
)

const engineName = "pagination"

// Mode is the addressing mode of a navigator. It is derived from the inputs
// on every computation and never stored.
type Mode int

const (
	// ModeOffset addresses pages by absolute number with a known total.
	ModeOffset Mode = iota
	// ModeCursor only knows whether there is more in each direction.
	ModeCursor
)

// String returns a human-readable name for the mode
func (m Mode) String() string {
	switch m {
	case ModeOffset:
		return "offset"
	case ModeCursor:
		return "cursor"
	default:
		return fmt.Sprintf("Mode(%d)", m)
	}
}

// Options are the per-computation inputs of a Navigator.
type Options struct {
	// TotalPages selects offset mode when set.
	TotalPages *int
	// Page makes the current page controlled by the caller.
	Page *int
	// DefaultPage seeds the uncontrolled page. Values below 1 mean 1.
	DefaultPage int
	// Siblings is the number of pages shown on each side of the current one.
	// Nil means 1.
	Siblings *int

	Disabled      bool
	ShowFirstLast bool

	// Cursor mode availability. HasFirstPage and HasLastPage default to
	// HasPreviousPage and HasNextPage.
	HasNextPage     bool
	HasPreviousPage bool
	HasFirstPage    *bool
	HasLastPage     *bool

	// OnPageChange is notified with the requested page in offset mode.
	OnPageChange func(page int)

	// Cursor mode callbacks.
	OnNext     func()
	OnPrevious func()
	OnFirst    func()
	OnLast     func()
}

// State is the data-only part of a View.
type State struct {
	Mode          Mode
	CurrentPage   int
	TotalPages    int
	Items         []Item
	CanGoFirst    bool
	CanGoPrevious bool
	CanGoNext     bool
	CanGoLast     bool
	Disabled      bool
	ShowFirstLast bool
}

// Summary is the text announced for the navigator as a whole.
func (s State) Summary() string {
	if s.Mode == ModeCursor {
		return "Pagination"
	}
	if s.TotalPages <= 0 {
		return "No pages"
	}
	return fmt.Sprintf("Page %d of %d", s.CurrentPage, s.TotalPages)
}

// View is the result of a computation: state plus event handlers. Handlers
// return true when the request was accepted.
type View struct {
	State

	OnPageSelect func(page int) bool
	OnPrevious   func() bool
	OnNext       func() bool
	OnFirst      func() bool
	OnLast       func() bool
	OnKey        func(k input.Key) bool
}

// Navigator is the paginated-range engine. It is not safe for concurrent use.
type Navigator struct {
	page   *control.State[int]
	latest Options
}

// New creates a Navigator. Ownership of the current page is decided here
// from whether opts.Page is set.
func New(opts Options) *Navigator {
	def := opts.DefaultPage
	if def < 1 {
		def = 1
	}
	n := &Navigator{page: control.New(engineName, opts.Page, def)}
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
		State:        n.state(),
		OnPageSelect: n.SelectPage,
		OnPrevious:   n.Previous,
		OnNext:       n.Next,
		OnFirst:      n.First,
		OnLast:       n.Last,
		OnKey:        n.HandleKey,
	}
}

func (n *Navigator) sync(opts Options) {
	n.latest = opts
	n.page.Sync(opts.Page, opts.OnPageChange)
}

func (n *Navigator) mode() Mode {
	if n.latest.TotalPages != nil {
		return ModeOffset
	}
	return ModeCursor
}

func (n *Navigator) total() int {
	if n.latest.TotalPages == nil {
		return 0
	}
	return *n.latest.TotalPages
}

func (n *Navigator) siblings() int {
	if n.latest.Siblings == nil {
		return 1
	}
	return *n.latest.Siblings
}

func (n *Navigator) currentPage() int {
	p := n.page.Get()
	total := n.total()
	if total < 1 {
		return max(p, 1)
	}
	return clamp(p, 1, total)
}

func (n *Navigator) state() State {
	o := n.latest
	s := State{
		Mode:          n.mode(),
		Disabled:      o.Disabled,
		ShowFirstLast: o.ShowFirstLast,
	}

	if s.Mode == ModeCursor {
		s.Items = []Item{}
		s.CanGoPrevious = o.HasPreviousPage
		s.CanGoNext = o.HasNextPage
		s.CanGoFirst = o.HasPreviousPage
		if o.HasFirstPage != nil {
			s.CanGoFirst = *o.HasFirstPage
		}
		s.CanGoLast = o.HasNextPage
		if o.HasLastPage != nil {
			s.CanGoLast = *o.HasLastPage
		}
		return s
	}

	s.TotalPages = n.total()
	s.CurrentPage = n.currentPage()
	s.Items = Items(s.TotalPages, s.CurrentPage, n.siblings())
	s.CanGoPrevious = s.TotalPages >= 1 && s.CurrentPage > 1
	s.CanGoFirst = s.CanGoPrevious
	s.CanGoNext = s.CurrentPage < s.TotalPages
	s.CanGoLast = s.CanGoNext
	return s
}

// SelectPage requests page n in offset mode. It is ignored while disabled, in
// cursor mode, for the current page and for pages outside [1, total].
func (n *Navigator) SelectPage(page int) bool {
	if n.latest.Disabled {
		logging.LogIgnored(engineName, "select", "disabled")
		return false
	}
	if n.mode() != ModeOffset {
		logging.LogIgnored(engineName, "select", "cursor mode")
		return false
	}
	if page < 1 || page > n.total() {
		logging.LogIgnored(engineName, "select", "out of range")
		return false
	}
	if page == n.currentPage() {
		logging.LogIgnored(engineName, "select", "already current")
		return false
	}
	return n.page.Set(page)
}

// Previous moves one page back.
func (n *Navigator) Previous() bool {
	return n.step("previous", func(s State) bool { return s.CanGoPrevious },
		func(s State) int { return s.CurrentPage - 1 }, n.latest.OnPrevious)
}

// Next moves one page forward.
func (n *Navigator) Next() bool {
	return n.step("next", func(s State) bool { return s.CanGoNext },
		func(s State) int { return s.CurrentPage + 1 }, n.latest.OnNext)
}

// First moves to page 1.
func (n *Navigator) First() bool {
	return n.step("first", func(s State) bool { return s.CanGoFirst },
		func(State) int { return 1 }, n.latest.OnFirst)
}

// Last moves to the final page.
func (n *Navigator) Last() bool {
	return n.step("last", func(s State) bool { return s.CanGoLast },
		func(s State) int { return s.TotalPages }, n.latest.OnLast)
}

// step gates a relative move on disabled and availability. In offset mode it
// resolves to a page selection; in cursor mode it forwards to the caller's
// callback without page arithmetic.
func (n *Navigator) step(event string, can func(State) bool, target func(State) int, forward func()) bool {
	if n.latest.Disabled {
		logging.LogIgnored(engineName, event, "disabled")
		return false
	}
	s := n.state()
	if !can(s) {
		logging.LogIgnored(engineName, event, "unavailable")
		return false
	}
	if s.Mode == ModeOffset {
		return n.SelectPage(target(s))
	}
	logging.LogTransition(engineName, event, "cursor", "cursor")
	if forward != nil {
		forward()
	}
	return true
}

// HandleKey maps navigation keys onto the relative moves: Left/PageUp for
// previous, Right/PageDown for next, Home and End for first and last. It
// reports whether the key belongs to the navigator, which stays true when the
// move itself is unavailable or the navigator is disabled.
func (n *Navigator) HandleKey(k input.Key) bool {
	switch k {
	case input.KeyLeft, input.KeyPageUp:
		n.Previous()
	case input.KeyRight, input.KeyPageDown:
		n.Next()
	case input.KeyHome:
		n.First()
	case input.KeyEnd:
		n.Last()
	default:
		return false
	}
	return true
}
