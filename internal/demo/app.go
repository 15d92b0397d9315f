package demo

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/muurk/headless/internal/config"
	"github.com/muurk/headless/internal/input"
	"github.com/muurk/headless/internal/logging"
	"github.com/muurk/headless/internal/overlay"
	"github.com/muurk/headless/internal/pagination"
	"github.com/muurk/headless/internal/slider"
	"github.com/muurk/headless/internal/tabs"
	"github.com/muurk/headless/internal/ui"
)

// Section identifies the widget that receives keyboard input.
type Section int

const (
	SectionPagination Section = iota
	SectionSlider
	SectionTabs
	sectionCount
)

// String returns a human-readable name for the section
func (s Section) String() string {
	switch s {
	case SectionPagination:
		return "pagination"
	case SectionSlider:
		return "slider"
	case SectionTabs:
		return "tabs"
	default:
		return "unknown"
	}
}

// shared is the state the engine callbacks write to. The model is copied on
// every update, so callbacks hold a pointer to this instead.
type shared struct {
	sliderValue float64 // the slider is controlled by the demo
	cursorPage  int     // position in cursor mode, unknown to the navigator
	status      string
}

// layout records where the clickable parts landed in the last render.
type layout struct {
	pageRow  int
	pageHits []ui.Hit

	trackTop    int
	trackRows   int
	trackLength int

	tabsTop      int
	tabsHits     []ui.Hit
	tabsVertical bool
}

// AppModel is the Bubble Tea model hosting the three engines.
type AppModel struct {
	Width  int
	Height int

	focus   Section
	keys    keyMap
	help    help.Model
	pointer input.PointerTracker
	preset  *config.Config
	st      *shared

	pager  *pagination.Navigator
	slider *slider.Slider
	tabs   *tabs.Navigator
}

// NewAppModel creates the demo from cfg. A nil cfg uses the defaults.
func NewAppModel(cfg *config.Config) AppModel {
	if cfg == nil {
		cfg = config.NewConfig()
	}

	sp := cfg.Slider
	m := AppModel{
		Width:  defaultWidth,
		Height: defaultHeight,
		keys:   newKeyMap(cfg.Keys),
		help:   help.New(),
		preset: cfg,
		st: &shared{
			sliderValue: slider.Snap(sp.Default, sp.Min, sp.Max, sp.Step),
			cursorPage:  1,
		},
	}

	m.pager = pagination.New(m.paginationOptions())
	m.slider = slider.New(m.sliderOptions())
	m.tabs = tabs.New(m.tabsOptions())
	return m
}

// Focus returns the section receiving keyboard input.
func (m AppModel) Focus() Section {
	return m.focus
}

// Status returns the last event reported by an engine callback.
func (m AppModel) Status() string {
	return m.st.status
}

func (m AppModel) totalPages() int {
	p := m.preset.Pagination
	return pagination.PageCount(p.TotalItems, p.PageSize)
}

func (m AppModel) paginationOptions() pagination.Options {
	p := m.preset.Pagination
	st := m.st
	total := m.totalPages()

	if p.Cursor {
		move := func(page int, event string) func() {
			return func() {
				st.cursorPage = page
				st.status = fmt.Sprintf("pagination: %s (cursor page %d)", event, page)
			}
		}
		return pagination.Options{
			ShowFirstLast:   p.ShowFirstLast,
			HasNextPage:     st.cursorPage < total,
			HasPreviousPage: st.cursorPage > 1,
			OnNext:          move(st.cursorPage+1, "next"),
			OnPrevious:      move(st.cursorPage-1, "previous"),
			OnFirst:         move(1, "first"),
			OnLast:          move(total, "last"),
		}
	}

	siblings := p.Siblings
	return pagination.Options{
		TotalPages:    &total,
		Siblings:      &siblings,
		ShowFirstLast: p.ShowFirstLast,
		OnPageChange: func(page int) {
			st.status = fmt.Sprintf("pagination: page %d", page)
		},
	}
}

func (m AppModel) sliderOptions() slider.Options {
	sp := m.preset.Slider
	st := m.st
	lo, hi, step := sp.Min, sp.Max, sp.Step

	orientation := slider.Horizontal
	if sp.Vertical {
		orientation = slider.Vertical
	}

	return slider.Options{
		Min:         &lo,
		Max:         &hi,
		Step:        &step,
		Value:       &st.sliderValue,
		Orientation: orientation,
		OnValueChange: func(v float64) {
			st.sliderValue = v
		},
		OnValueCommit: func(v float64) {
			st.status = fmt.Sprintf("slider: committed %g", v)
		},
	}
}

func (m AppModel) tabsOptions() tabs.Options {
	tp := m.preset.Tabs
	st := m.st

	presetItems := tp.TabItems()
	items := make([]tabs.Item, len(presetItems))
	for i, it := range presetItems {
		items[i] = tabs.Item{ID: it.ID, Label: it.Label, Disabled: it.Disabled}
	}

	opts := tabs.Options{
		Items:           items,
		DefaultActiveID: tp.Default,
		BaseID:          "demo-tabs",
		OnActiveChange: func(id string) {
			st.status = "tabs: activated " + id
		},
	}
	if tp.Orientation == "vertical" {
		opts.Orientation = tabs.Vertical
	}
	if tp.Activation == "manual" {
		opts.Activation = tabs.Manual
	}
	return opts
}

// Init implements tea.Model
func (m AppModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model
func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" || key.Matches(msg, m.keys.Quit) {
			return m, tea.Quit
		}
		if key.Matches(msg, m.keys.Help) {
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		}
		m.handleKey(m.keys.Translate(msg))
		return m, nil

	case tea.MouseMsg:
		phase, ev, ok := m.pointer.FromMouse(msg)
		if ok {
			m.handlePointer(phase, ev)
		}
		return m, nil
	}

	return m, nil
}

func (m *AppModel) handleKey(k input.Key) {
	switch k {
	case input.KeyNone:
		return
	case input.KeyTab:
		m.focus = (m.focus + 1) % sectionCount
		return
	case input.KeyShiftTab:
		m.focus = (m.focus + sectionCount - 1) % sectionCount
		return
	}

	var handled bool
	switch m.focus {
	case SectionPagination:
		handled = m.pager.Compute(m.paginationOptions()).OnKey(k)
	case SectionSlider:
		handled = m.slider.Compute(m.sliderOptions()).OnKey(k)
	case SectionTabs:
		view := m.tabs.Compute(m.tabsOptions())
		handled = view.OnKey(view.FocusedIndex, k)
	}
	logging.Debug("key routed",
		zap.Stringer("section", m.focus),
		zap.Stringer("key", k),
		zap.Bool("handled", handled))
}

func (m *AppModel) handlePointer(phase input.Phase, ev input.PointerEvent) {
	_, l := m.render()
	x, y := int(ev.X), int(ev.Y)

	switch phase {
	case input.PhaseMove:
		m.slider.PointerMove(ev)
		return
	case input.PhaseUp:
		m.slider.PointerUp(ev)
		return
	}

	switch {
	case y >= l.trackTop && y < l.trackTop+l.trackRows:
		m.focus = SectionSlider
		if x >= margin && x < margin+l.trackLength {
			m.slider.PointerDown(ev)
		}

	case y == l.pageRow:
		m.focus = SectionPagination
		if idx, ok := ui.HitTest(l.pageHits, x-margin); ok {
			m.clickPagination(idx)
		}

	case l.tabsVertical && y >= l.tabsTop && y < l.tabsTop+len(l.tabsHits):
		m.focus = SectionTabs
		if idx, ok := ui.HitTest(l.tabsHits, y-l.tabsTop); ok {
			m.tabs.Click(idx)
		}

	case !l.tabsVertical && y == l.tabsTop:
		m.focus = SectionTabs
		if idx, ok := ui.HitTest(l.tabsHits, x-margin); ok {
			m.tabs.Click(idx)
		}
	}
}

func (m *AppModel) clickPagination(idx int) {
	view := m.pager.Compute(m.paginationOptions())
	switch idx {
	case ui.HitFirst:
		view.OnFirst()
	case ui.HitPrevious:
		view.OnPrevious()
	case ui.HitNext:
		view.OnNext()
	case ui.HitLast:
		view.OnLast()
	default:
		view.OnPageSelect(idx)
	}
}

// View implements tea.Model
func (m AppModel) View() string {
	content, _ := m.render()
	return renderContainer(content, m.help.View(m.keys), m.Width, m.Height)
}

// render draws the content area and records where everything landed. It also
// publishes the slider track geometry so pointer events can be mapped.
func (m AppModel) render() (string, layout) {
	var (
		lines []string
		l     layout
	)
	add := func(block string) int {
		row := len(lines)
		lines = append(lines, strings.Split(block, "\n")...)
		return row
	}

	add(renderHeader())
	add("")

	// Pagination
	add(renderSectionTitle("Pagination", m.focus == SectionPagination))
	pv := m.pager.Compute(m.paginationOptions())
	pageLine, pageHits := ui.RenderPagination(pv.State)
	l.pageRow = add(indent(pageLine))
	l.pageHits = pageHits
	add(indent(ui.MutedStyle.Render(m.paginationDetail(pv.State))))
	add("")

	// Slider
	add(renderSectionTitle("Slider", m.focus == SectionSlider))
	sv := m.slider.Compute(m.sliderOptions())
	l.trackLength = trackLength(m.Width)
	track, rect := ui.RenderSlider(sv.State, l.trackLength)

	horizontal := sv.Orientation == slider.Horizontal
	tipRow := -1
	if horizontal {
		tipRow = add("")
	}
	l.trackTop = add(indent(track))
	l.trackRows = lipgloss.Height(track)
	if horizontal {
		add("")
	}
	m.slider.Track().Set(slider.Rect{
		Left:   float64(margin) + rect.Left,
		Top:    float64(l.trackTop) + rect.Top,
		Width:  rect.Width,
		Height: rect.Height,
	})

	if horizontal && (m.focus == SectionSlider || sv.Dragging) {
		row, col, tip := m.placeTooltip(sv.State, l, tipRow)
		lines[row] = strings.Repeat(" ", col) + tip
	}

	// Tabs
	add(renderSectionTitle("Tabs", m.focus == SectionTabs))
	tv := m.tabs.Compute(m.tabsOptions())
	tabsOut, tabsHits := ui.RenderTabs(tv.State)
	l.tabsTop = add(indent(tabsOut))
	l.tabsHits = tabsHits
	l.tabsVertical = tv.Orientation == tabs.Vertical
	add(indent(m.renderPanel(tv.State)))
	add("")

	if status := m.st.status; status != "" {
		add(statusStyle.Render(status))
	}

	return strings.Join(lines, "\n"), l
}

// placeTooltip positions the value tooltip above the thumb, flipping below it
// when the row above is not available.
func (m AppModel) placeTooltip(s slider.State, l layout, tipRow int) (row, col int, tip string) {
	tip = ui.RenderTooltip(s.Attrs().ValueText)
	x, y := ui.ThumbCell(s, l.trackLength)

	resolver := overlay.Clamped{Viewport: overlay.Rect{X: 0, Y: tipRow, Width: m.Width, Height: 3}}
	placed := resolver.Resolve(
		overlay.Rect{X: margin + x, Y: l.trackTop + y, Width: 1, Height: 1},
		overlay.Rect{Width: lipgloss.Width(tip), Height: 1},
		overlay.Placement{Side: overlay.Top, Align: overlay.Center},
	)
	return placed.OffsetY, placed.OffsetX, tip
}

func (m AppModel) paginationDetail(s pagination.State) string {
	if s.Mode == pagination.ModeCursor {
		return fmt.Sprintf("cursor mode, at page %d", m.st.cursorPage)
	}
	p := m.preset.Pagination
	start, end := pagination.Bounds(s.CurrentPage, p.PageSize, p.TotalItems)
	if end == 0 {
		return "no items"
	}
	return fmt.Sprintf("showing items %d-%d of %d", start+1, end, p.TotalItems)
}

func (m AppModel) renderPanel(s tabs.State) string {
	var body string
	for _, it := range m.preset.Tabs.TabItems() {
		if it.ID == s.ActiveID {
			body = it.Body
			break
		}
	}
	if body == "" {
		body = "(empty)"
	}

	attrs := s.PanelAttrs(s.ActiveID)
	meta := ui.MutedStyle.Render(fmt.Sprintf("%s, labelled by %s", attrs.ID, attrs.LabelledBy))

	width := m.Width - 2*margin
	if width < 20 {
		width = 20
	}
	return ui.PanelBoxStyle(width, m.focus == SectionTabs).Render(body + "\n" + meta)
}
