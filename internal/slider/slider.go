package slider

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/muurk/headless/internal/control"
	"github.com/muurk/headless/internal/input"
	"github.com/muurk/headless/internal/logging"
)

const engineName = "slider"

// bigStepFactor is the multiple of step applied by PageUp and PageDown.
const bigStepFactor = 10

// Orientation selects the axis the track maps onto.
type Orientation int

const (
	// Horizontal maps the left edge of the track to min.
	Horizontal Orientation = iota
	// Vertical maps the bottom edge of the track to min.
	Vertical
)

// String returns a human-readable name for the orientation
func (o Orientation) String() string {
	switch o {
	case Horizontal:
		return "horizontal"
	case Vertical:
		return "vertical"
	default:
		return fmt.Sprintf("Orientation(%d)", o)
	}
}

// Rect is the measured geometry of the track, in the same coordinate space
// as pointer events.
type Rect struct {
	Left   float64
	Top    float64
	Width  float64
	Height float64
}

// TrackRef is a handle through which the rendering layer publishes the
// track's current geometry. The slider always reads the latest value, so a
// gesture spanning several renders sees fresh geometry.
type TrackRef struct {
	rect     Rect
	measured bool
}

// Set records the track geometry.
func (r *TrackRef) Set(rect Rect) {
	r.rect = rect
	r.measured = true
}

// Clear forgets the geometry, for example when the track is not on screen.
func (r *TrackRef) Clear() {
	r.rect = Rect{}
	r.measured = false
}

// Get returns the last recorded geometry and whether one was recorded.
func (r *TrackRef) Get() (Rect, bool) {
	return r.rect, r.measured
}

// Options are the per-computation inputs of a Slider.
type Options struct {
	Min  *float64 // default 0
	Max  *float64 // default 100
	Step *float64 // default 1

	// Value makes the value controlled by the caller.
	Value *float64
	// DefaultValue seeds the uncontrolled value. Nil means Min.
	DefaultValue *float64

	Disabled    bool
	Orientation Orientation

	// OnValueChange fires for every committed change, including each pointer
	// move of a drag.
	OnValueChange func(value float64)
	// OnValueCommit fires once when a drag ends.
	OnValueCommit func(value float64)
}

func (o Options) bounds() (lo, hi, step float64) {
	lo, hi, step = 0, 100, 1
	if o.Min != nil {
		lo = *o.Min
	}
	if o.Max != nil {
		hi = *o.Max
	}
	if o.Step != nil {
		step = *o.Step
	}
	if hi < lo {
		hi = lo
	}
	return lo, hi, step
}

// State is the data-only part of a View.
type State struct {
	Value       float64
	Percentage  float64
	Min         float64
	Max         float64
	Step        float64
	Disabled    bool
	Dragging    bool
	Orientation Orientation
}

// Attrs is the accessibility description of the slider.
type Attrs struct {
	ValueMin    float64
	ValueMax    float64
	ValueNow    float64
	ValueText   string
	Orientation Orientation
	Disabled    bool
}

// Attrs returns the values an assistive technology should announce.
func (s State) Attrs() Attrs {
	return Attrs{
		ValueMin:    s.Min,
		ValueMax:    s.Max,
		ValueNow:    s.Value,
		ValueText:   formatValue(s.Value, s.Min, s.Step),
		Orientation: s.Orientation,
		Disabled:    s.Disabled,
	}
}

// View is the result of a computation: state plus event handlers. Handlers
// return true when the event should be treated as handled.
type View struct {
	State

	Track         *TrackRef
	OnKey         func(k input.Key) bool
	OnPointerDown func(ev input.PointerEvent) bool
	OnPointerMove func(ev input.PointerEvent) bool
	OnPointerUp   func(ev input.PointerEvent) bool
}

// gesture is the state of an in-progress pointer drag.
type gesture struct {
	pointerID int
	last      float64
}

// Slider is the bounded value engine. It is not safe for concurrent use.
type Slider struct {
	value  *control.State[float64]
	latest Options
	track  TrackRef
	active *gesture
}

// New creates a Slider. Ownership of the value is decided here from whether
// opts.Value is set.
func New(opts Options) *Slider {
	lo, hi, step := opts.bounds()
	def := lo
	if opts.DefaultValue != nil {
		def = Snap(*opts.DefaultValue, lo, hi, step)
	}
	s := &Slider{value: control.New(engineName, opts.Value, def)}
	s.sync(opts)
	return s
}

// Compute refreshes the inputs and returns the current view.
func (s *Slider) Compute(opts Options) View {
	s.sync(opts)
	return s.View()
}

// View returns the view for the latest inputs without changing them.
func (s *Slider) View() View {
	return View{
		State:         s.state(),
		Track:         &s.track,
		OnKey:         s.HandleKey,
		OnPointerDown: s.PointerDown,
		OnPointerMove: s.PointerMove,
		OnPointerUp:   s.PointerUp,
	}
}

// Track returns the handle the rendering layer uses to publish geometry.
func (s *Slider) Track() *TrackRef {
	return &s.track
}

// Dragging reports whether a pointer gesture is in progress.
func (s *Slider) Dragging() bool {
	return s.active != nil
}

func (s *Slider) sync(opts Options) {
	s.latest = opts
	s.value.Sync(opts.Value, opts.OnValueChange)
}

func (s *Slider) state() State {
	lo, hi, step := s.latest.bounds()
	v := clamp(s.value.Get(), lo, hi)
	return State{
		Value:       v,
		Percentage:  Percentage(v, lo, hi),
		Min:         lo,
		Max:         hi,
		Step:        step,
		Disabled:    s.latest.Disabled,
		Dragging:    s.active != nil,
		Orientation: s.latest.Orientation,
	}
}

func (s *Slider) commit(event string, v float64) bool {
	changed := s.value.Set(v)
	if !changed {
		logging.LogIgnored(engineName, event, "unchanged")
	}
	return changed
}

// HandleKey applies a keyboard step. Arrow keys move by one step, PageUp and
// PageDown by ten, Home and End jump to exactly min and max. Navigation keys
// are reported as handled even while disabled so the host does not act on
// them.
func (s *Slider) HandleKey(k input.Key) bool {
	st := s.state()

	var target float64
	switch k {
	case input.KeyRight, input.KeyUp:
		target = Snap(st.Value+st.Step, st.Min, st.Max, st.Step)
	case input.KeyLeft, input.KeyDown:
		target = Snap(st.Value-st.Step, st.Min, st.Max, st.Step)
	case input.KeyPageUp:
		target = Snap(st.Value+st.Step*bigStepFactor, st.Min, st.Max, st.Step)
	case input.KeyPageDown:
		target = Snap(st.Value-st.Step*bigStepFactor, st.Min, st.Max, st.Step)
	case input.KeyHome:
		target = st.Min
	case input.KeyEnd:
		target = st.Max
	default:
		return false
	}

	if st.Disabled {
		logging.LogIgnored(engineName, "key "+k.String(), "disabled")
		return true
	}
	s.commit("key "+k.String(), target)
	return true
}

// valueAt maps a pointer position onto the track and snaps the result.
func (s *Slider) valueAt(ev input.PointerEvent) (float64, bool) {
	rect, ok := s.track.Get()
	if !ok {
		return 0, false
	}
	lo, hi, step := s.latest.bounds()
	if hi <= lo {
		return lo, true
	}

	var fraction float64
	switch s.latest.Orientation {
	case Vertical:
		if rect.Height > 0 {
			fraction = (rect.Top + rect.Height - ev.Y) / rect.Height
		}
	default:
		if rect.Width > 0 {
			fraction = (ev.X - rect.Left) / rect.Width
		}
	}
	fraction = clamp(fraction, 0, 1)

	return Snap(lo+fraction*(hi-lo), lo, hi, step), true
}

// PointerDown starts a drag: the value under the pointer is committed and
// later events from the same pointer are captured until release. A gesture
// left over from another pointer is discarded.
func (s *Slider) PointerDown(ev input.PointerEvent) bool {
	if s.latest.Disabled {
		s.active = nil
		logging.LogIgnored(engineName, "pointer down", "disabled")
		return true
	}

	v, ok := s.valueAt(ev)
	if !ok {
		logging.LogIgnored(engineName, "pointer down", "track not measured")
		return false
	}

	if s.active != nil {
		logging.Debug("discarding stale drag gesture",
			zap.Int("stale_pointer", s.active.pointerID),
			zap.Int("pointer", ev.ID))
	}
	s.active = &gesture{pointerID: ev.ID, last: v}
	s.commit("pointer down", v)
	return true
}

// PointerMove updates a drag in progress. Events from other pointers are not
// handled. Positions outside the track clamp to its ends.
func (s *Slider) PointerMove(ev input.PointerEvent) bool {
	if s.active == nil || s.active.pointerID != ev.ID {
		return false
	}
	if s.latest.Disabled {
		s.active = nil
		logging.LogIgnored(engineName, "pointer move", "disabled")
		return true
	}

	v, ok := s.valueAt(ev)
	if !ok {
		return true
	}
	s.active.last = v
	s.commit("pointer move", v)
	return true
}

// PointerUp ends a drag and fires OnValueCommit once with the final value.
// The pointer position is not consulted, so releasing outside the track still
// ends the gesture.
func (s *Slider) PointerUp(ev input.PointerEvent) bool {
	if s.active == nil || s.active.pointerID != ev.ID {
		return false
	}
	g := s.active
	s.active = nil

	if s.latest.Disabled {
		logging.LogIgnored(engineName, "pointer up", "disabled")
		return true
	}

	logging.LogTransition(engineName, "commit", nil, g.last)
	if s.latest.OnValueCommit != nil {
		s.latest.OnValueCommit(g.last)
	}
	return true
}
