package pagination

import "fmt"

// ItemKind distinguishes page entries from gap markers.
type ItemKind int

const (
	KindPage ItemKind = iota
	KindEllipsis
)

// String returns a human-readable name for the item kind
func (k ItemKind) String() string {
	switch k {
	case KindPage:
		return "page"
	case KindEllipsis:
		return "ellipsis"
	default:
		return fmt.Sprintf("ItemKind(%d)", k)
	}
}

// Item is one entry of the offset-mode page list. Value is zero for ellipses.
type Item struct {
	Kind      ItemKind
	Value     int
	IsCurrent bool
}

// Label is the text announced for the item.
func (it Item) Label() string {
	if it.Kind == KindEllipsis {
		return "More pages"
	}
	return fmt.Sprintf("Page %d", it.Value)
}

// Items builds the page list for an offset navigator.
//
// Page 1 and the final page are always present, together with every page
// within siblings of current (limited to [2, total-1]). An ellipsis is placed
// wherever two consecutive entries are more than one page apart. A total of
// zero or less yields an empty list. Out-of-range current values are clamped
// and negative siblings are treated as zero.
func Items(total, current, siblings int) []Item {
	if total <= 0 {
		return []Item{}
	}
	current = clamp(current, 1, total)
	siblings = clamp(siblings, 0, total)

	// Both window edges are computed without adding siblings to current, so
	// siblings near math.MaxInt cannot overflow.
	lo, hi := 2, total-1
	if siblings < current-2 {
		lo = current - siblings
	}
	if siblings < total-1-current {
		hi = current + siblings
	}

	pages := make([]int, 0, max(hi-lo+1, 0)+2)
	pages = append(pages, 1)
	for p := lo; p <= hi; p++ {
		pages = append(pages, p)
	}
	if total > 1 {
		pages = append(pages, total)
	}

	items := make([]Item, 0, len(pages)+2)
	for i, p := range pages {
		if i > 0 && p-pages[i-1] > 1 {
			items = append(items, Item{Kind: KindEllipsis})
		}
		items = append(items, Item{Kind: KindPage, Value: p, IsCurrent: p == current})
	}
	return items
}

// PageCount returns the number of pages needed to show totalItems at
// pageSize per page. Non-positive sizes yield zero pages.
func PageCount(totalItems, pageSize int) int {
	if totalItems <= 0 || pageSize <= 0 {
		return 0
	}
	return (totalItems + pageSize - 1) / pageSize
}

// Bounds returns the half-open [start, end) index window of a 1-based page.
// The page is clamped to the available range, so the result is always safe
// to use for slicing a collection of totalItems elements.
func Bounds(page, pageSize, totalItems int) (start, end int) {
	pages := PageCount(totalItems, pageSize)
	if pages == 0 {
		return 0, 0
	}
	page = clamp(page, 1, pages)
	start = (page - 1) * pageSize
	end = min(start+pageSize, totalItems)
	return start, end
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
