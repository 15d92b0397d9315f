package ui

import (
	"math"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/muurk/headless/internal/pagination"
	"github.com/muurk/headless/internal/slider"
	"github.com/muurk/headless/internal/tabs"
)

// Hit indices for the pagination controls. Page items use their page number.
const (
	HitFirst    = -1
	HitPrevious = -2
	HitNext     = -3
	HitLast     = -4
)

// Hit is a run of cells [Start, End) along the widget's axis that belongs to
// one clickable element.
type Hit struct {
	Index int
	Start int
	End   int
}

// HitTest returns the index of the element covering pos.
func HitTest(hits []Hit, pos int) (int, bool) {
	for _, h := range hits {
		if pos >= h.Start && pos < h.End {
			return h.Index, true
		}
	}
	return 0, false
}

// row lays out styled segments on one line and records their extents.
type row struct {
	parts  []string
	hits   []Hit
	cursor int
}

func (r *row) add(rendered string, index int, clickable bool) {
	if len(r.parts) > 0 {
		r.parts = append(r.parts, " ")
		r.cursor++
	}
	w := lipgloss.Width(rendered)
	if clickable {
		r.hits = append(r.hits, Hit{Index: index, Start: r.cursor, End: r.cursor + w})
	}
	r.parts = append(r.parts, rendered)
	r.cursor += w
}

func (r *row) String() string {
	return strings.Join(r.parts, "")
}

func controlStyle(enabled bool) lipgloss.Style {
	if enabled {
		return NavControlStyle
	}
	return DisabledStyle
}

// RenderPagination draws the navigator on a single line followed by its
// summary, and returns the clickable extents.
func RenderPagination(s pagination.State) (string, []Hit) {
	var r row
	can := func(flag bool) bool { return flag && !s.Disabled }

	if s.ShowFirstLast {
		r.add(controlStyle(can(s.CanGoFirst)).Render(FirstGlyph), HitFirst, can(s.CanGoFirst))
	}
	r.add(controlStyle(can(s.CanGoPrevious)).Render(PreviousGlyph), HitPrevious, can(s.CanGoPrevious))

	for _, it := range s.Items {
		switch {
		case it.Kind == pagination.KindEllipsis:
			r.add(DisabledStyle.Render(EllipsisGlyph), 0, false)
		case it.IsCurrent:
			r.add(CurrentPageStyle.Render("["+strconv.Itoa(it.Value)+"]"), it.Value, false)
		case s.Disabled:
			r.add(DisabledStyle.Render(strconv.Itoa(it.Value)), it.Value, false)
		default:
			r.add(PageStyle.Render(strconv.Itoa(it.Value)), it.Value, true)
		}
	}

	r.add(controlStyle(can(s.CanGoNext)).Render(NextGlyph), HitNext, can(s.CanGoNext))
	if s.ShowFirstLast {
		r.add(controlStyle(can(s.CanGoLast)).Render(LastGlyph), HitLast, can(s.CanGoLast))
	}

	return r.String() + "  " + MutedStyle.Render(s.Summary()), r.hits
}

// thumbOffset is the cell of the thumb on a track of length cells.
func thumbOffset(percentage float64, length int) int {
	return int(math.Round(percentage / 100 * float64(length-1)))
}

// RenderSlider draws a track of length cells with the value after it and
// returns the track geometry relative to the top-left of the output.
// Horizontal tracks span one line; vertical tracks span length lines with
// max at the top.
func RenderSlider(s slider.State, length int) (string, slider.Rect) {
	if length < 2 {
		length = 2
	}
	fill, rest, thumb := TrackFillStyle, TrackRestStyle, ThumbStyle
	if s.Disabled {
		fill, rest, thumb = DisabledStyle, DisabledStyle, DisabledStyle
	}
	pos := thumbOffset(s.Percentage, length)
	valueText := MutedStyle.Render(s.Attrs().ValueText)

	if s.Orientation == slider.Vertical {
		lines := make([]string, length)
		for y := range lines {
			cell := length - 1 - y
			switch {
			case cell == pos:
				lines[y] = thumb.Render(ThumbGlyph) + " " + valueText
			case cell < pos:
				lines[y] = fill.Render(TrackVertFill)
			default:
				lines[y] = rest.Render(TrackVertRest)
			}
		}
		return strings.Join(lines, "\n"), slider.Rect{Width: 1, Height: float64(length - 1)}
	}

	line := fill.Render(strings.Repeat(TrackFillGlyph, pos)) +
		thumb.Render(ThumbGlyph) +
		rest.Render(strings.Repeat(TrackRestGlyph, length-1-pos)) +
		" " + valueText
	return line, slider.Rect{Width: float64(length - 1), Height: 1}
}

// ThumbCell returns the cell offset of the thumb along a track of length
// cells, counted from the top-left of RenderSlider's output.
func ThumbCell(s slider.State, length int) (x, y int) {
	if length < 2 {
		length = 2
	}
	pos := thumbOffset(s.Percentage, length)
	if s.Orientation == slider.Vertical {
		return 0, length - 1 - pos
	}
	return pos, 0
}

// RenderTabs draws the tab triggers and returns their extents: columns for a
// horizontal list, rows for a vertical one.
func RenderTabs(s tabs.State) (string, []Hit) {
	rendered := make([]string, len(s.Items))
	for i, it := range s.Items {
		attrs := s.ItemAttrs(i)
		label := it.Label
		if label == "" {
			label = it.ID
		}

		prefix := " "
		if attrs.TabStop {
			prefix = FocusGlyph
		}

		style := TabStyle
		switch {
		case attrs.Disabled:
			style = DisabledTabStyle
		case attrs.Selected:
			style = ActiveTabStyle
		}
		rendered[i] = style.Render(prefix + label)
	}

	if s.Orientation == tabs.Vertical {
		hits := make([]Hit, len(rendered))
		for i := range rendered {
			hits[i] = Hit{Index: i, Start: i, End: i + 1}
		}
		return strings.Join(rendered, "\n"), hits
	}

	var r row
	for i, text := range rendered {
		r.add(text, i, true)
	}
	return r.String(), r.hits
}

// RenderTooltip draws a one-line tooltip.
func RenderTooltip(text string) string {
	return TooltipStyle.Render(text)
}
