// Package overlay positions floating content, such as a tooltip, next to an
// anchor inside a viewport.
//
// Engines never position anything themselves; the rendering layer hands the
// anchor geometry it measured to a Resolver and draws the floating content at
// the returned offset.
package overlay

import "fmt"

// Side is the edge of the anchor the floating content sits against.
type Side int

const (
	Top Side = iota
	Bottom
	Left
	Right
)

var sideNames = [...]string{"top", "bottom", "left", "right"}

// String returns a human-readable name for the side
func (s Side) String() string {
	if s < 0 || int(s) >= len(sideNames) {
		return fmt.Sprintf("Side(%d)", s)
	}
	return sideNames[s]
}

// Opposite returns the side across the anchor.
func (s Side) Opposite() Side {
	switch s {
	case Top:
		return Bottom
	case Bottom:
		return Top
	case Left:
		return Right
	default:
		return Left
	}
}

// Align positions the floating content along the anchor's edge.
type Align int

const (
	Start Align = iota
	Center
	End
)

// Rect is a rectangle in terminal cells.
type Rect struct {
	X, Y          int
	Width, Height int
}

// Placement is a requested or resolved position. On input only Side and
// Align are read. On output OffsetX and OffsetY hold the top-left cell of
// the floating content.
type Placement struct {
	Side    Side
	Align   Align
	OffsetX int
	OffsetY int
}

// Resolver computes where floating content goes.
type Resolver interface {
	Resolve(anchor, floating Rect, want Placement) Placement
}

// Clamped flips to the opposite side when the preferred side does not fit
// inside Viewport and then clamps the result so it stays on screen.
type Clamped struct {
	Viewport Rect
	// Gap is the number of cells between anchor and floating content.
	Gap int
}

var _ Resolver = Clamped{}

// Resolve implements Resolver.
func (c Clamped) Resolve(anchor, floating Rect, want Placement) Placement {
	side := want.Side
	if !c.fits(anchor, floating, side) && c.fits(anchor, floating, side.Opposite()) {
		side = side.Opposite()
	}

	x, y := c.place(anchor, floating, side, want.Align)
	vp := c.Viewport
	return Placement{
		Side:    side,
		Align:   want.Align,
		OffsetX: clamp(x, vp.X, vp.X+vp.Width-floating.Width),
		OffsetY: clamp(y, vp.Y, vp.Y+vp.Height-floating.Height),
	}
}

func (c Clamped) place(anchor, floating Rect, side Side, align Align) (x, y int) {
	switch side {
	case Top:
		y = anchor.Y - floating.Height - c.Gap
	case Bottom:
		y = anchor.Y + anchor.Height + c.Gap
	case Left:
		x = anchor.X - floating.Width - c.Gap
	case Right:
		x = anchor.X + anchor.Width + c.Gap
	}

	if side == Top || side == Bottom {
		x = alignOn(anchor.X, anchor.Width, floating.Width, align)
	} else {
		y = alignOn(anchor.Y, anchor.Height, floating.Height, align)
	}
	return x, y
}

// fits reports whether content placed on side stays inside the viewport along
// the main axis. The cross axis is always clamped later.
func (c Clamped) fits(anchor, floating Rect, side Side) bool {
	x, y := c.place(anchor, floating, side, Start)
	vp := c.Viewport
	switch side {
	case Top, Bottom:
		return y >= vp.Y && y+floating.Height <= vp.Y+vp.Height
	default:
		return x >= vp.X && x+floating.Width <= vp.X+vp.Width
	}
}

func alignOn(start, span, size int, align Align) int {
	switch align {
	case Center:
		return start + (span-size)/2
	case End:
		return start + span - size
	default:
		return start
	}
}

// clamp keeps v in [lo, hi], preferring lo when the range is empty.
func clamp(v, lo, hi int) int {
	if v > hi {
		v = hi
	}
	if v < lo {
		v = lo
	}
	return v
}
