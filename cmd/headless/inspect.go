package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/muurk/headless/internal/input"
	"github.com/muurk/headless/internal/logging"
	"github.com/muurk/headless/internal/pagination"
	"github.com/muurk/headless/internal/slider"
	"github.com/muurk/headless/internal/tabs"
	"github.com/muurk/headless/internal/ui"
	"github.com/muurk/headless/internal/version"
)

// Slider track bounds when the length is derived from the terminal width
const (
	minTrackLength = 10
	maxTrackLength = 60
)

// Inspect command flags
var (
	outputFormat string
	keyNames     string
	disabled     bool
	vertical     bool

	pageTotal     int
	pageCurrent   int
	pageSiblings  int
	pageFirstLast bool
	pageCursor    bool
	pageHasNext   bool
	pageHasPrev   bool

	sliderMin    float64
	sliderMax    float64
	sliderStep   float64
	sliderValue  float64
	sliderLength int

	tabItems  []string
	tabActive string
	tabManual bool
)

func init() {
	rootCmd.AddCommand(inspectCmd)
	inspectCmd.AddCommand(inspectPaginationCmd)
	inspectCmd.AddCommand(inspectSliderCmd)
	inspectCmd.AddCommand(inspectTabsCmd)

	inspectCmd.PersistentFlags().StringVar(&outputFormat, "format", "detailed", "Output format (detailed, json)")
	inspectCmd.PersistentFlags().StringVar(&keyNames, "keys", "", "Comma-separated keys to deliver before printing (left, right, up, down, home, end, pageup, pagedown, enter, space)")
	inspectCmd.PersistentFlags().BoolVar(&disabled, "disabled", false, "Disable the widget")

	f := inspectPaginationCmd.Flags()
	f.IntVar(&pageTotal, "total", 10, "Total pages")
	f.IntVar(&pageCurrent, "page", 1, "Starting page")
	f.IntVar(&pageSiblings, "siblings", 1, "Pages shown on each side of the current one")
	f.BoolVar(&pageFirstLast, "first-last", false, "Show first and last controls")
	f.BoolVar(&pageCursor, "cursor", false, "Use cursor mode (no page numbers)")
	f.BoolVar(&pageHasNext, "has-next", true, "Cursor mode: a next page exists")
	f.BoolVar(&pageHasPrev, "has-prev", false, "Cursor mode: a previous page exists")

	f = inspectSliderCmd.Flags()
	f.Float64Var(&sliderMin, "min", 0, "Minimum value")
	f.Float64Var(&sliderMax, "max", 100, "Maximum value")
	f.Float64Var(&sliderStep, "step", 1, "Step")
	f.Float64Var(&sliderValue, "value", 0, "Starting value (snapped)")
	f.IntVar(&sliderLength, "length", 0, "Track length in cells (0 fits the terminal)")
	f.BoolVar(&vertical, "vertical", false, "Vertical orientation")

	f = inspectTabsCmd.Flags()
	f.StringSliceVar(&tabItems, "items", []string{"one", "two", "three"}, "Tab ids; prefix with ! to disable, add =Label for a label")
	f.StringVar(&tabActive, "active", "", "Initially active tab id")
	f.BoolVar(&tabManual, "manual", false, "Manual activation")
	f.BoolVar(&vertical, "vertical", false, "Vertical orientation")
}

// inspectCmd computes one engine view from flags and prints it
var inspectCmd = &cobra.Command{
	Use:   "inspect",
	Short: "Compute and print a single engine view",
	Long: `Build an engine from flags, optionally deliver keys to it, and print
the resulting view with its accessibility attributes.

Set HEADLESS_LOG_LEVEL=debug to see each transition and ignored event.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := logging.InitializeFromEnv(); err != nil {
			return fmt.Errorf("failed to initialize logging: %w", err)
		}
		switch outputFormat {
		case "detailed", "json":
			return nil
		default:
			return fmt.Errorf("unknown format %q (use detailed or json)", outputFormat)
		}
	},
}

var inspectPaginationCmd = &cobra.Command{
	Use:   "pagination",
	Short: "Inspect the pagination engine",
	Example: `  # Page 5 of 10
  headless inspect pagination --total 10 --page 5

  # Move right twice then jump to the end
  headless inspect pagination --total 20 --keys right,right,end

  # Cursor mode
  headless inspect pagination --cursor --has-prev --format json`,
	RunE: runInspectPagination,
}

func runInspectPagination(cmd *cobra.Command, args []string) error {
	keys, err := parseKeys(keyNames)
	if err != nil {
		return err
	}

	opts := pagination.Options{
		DefaultPage:   pageCurrent,
		Siblings:      &pageSiblings,
		Disabled:      disabled,
		ShowFirstLast: pageFirstLast,
	}
	if pageCursor {
		opts.HasNextPage = pageHasNext
		opts.HasPreviousPage = pageHasPrev
	} else {
		opts.TotalPages = &pageTotal
	}

	nav := pagination.New(opts)
	for _, k := range keys {
		nav.HandleKey(k)
	}
	state := nav.Compute(opts).State

	out := cmd.OutOrStdout()
	if outputFormat == "json" {
		return writeJSON(out, state)
	}

	printer := ui.NewPrinter(out)
	printer.PrintHeader("Pagination", "inspect pagination",
		ui.Param{Key: "Mode", Value: state.Mode.String()},
		ui.Param{Key: "Keys", Value: keyList(keys)},
	)
	rendered, _ := ui.RenderPagination(state)
	printer.PrintLines(rendered, "")

	result := ui.NewSuccessResult("View",
		ui.Param{Key: "Summary", Value: state.Summary()},
		ui.Param{Key: "Previous", Value: strconv.FormatBool(state.CanGoPrevious)},
		ui.Param{Key: "Next", Value: strconv.FormatBool(state.CanGoNext)},
		ui.Param{Key: "First", Value: strconv.FormatBool(state.CanGoFirst)},
		ui.Param{Key: "Last", Value: strconv.FormatBool(state.CanGoLast)},
	)
	labels := make([]string, len(state.Items))
	for i, it := range state.Items {
		labels[i] = it.Label()
	}
	if len(labels) > 0 {
		result.AddDetail("Items", strings.Join(labels, ", "))
	}
	printer.PrintResult(result)
	return nil
}

var inspectSliderCmd = &cobra.Command{
	Use:   "slider",
	Short: "Inspect the slider engine",
	Example: `  # Decimal steps snap cleanly
  headless inspect slider --min 0 --max 1 --step 0.1 --value 0.3 --keys right

  # Big steps
  headless inspect slider --value 50 --keys pageup,pageup`,
	RunE: runInspectSlider,
}

func runInspectSlider(cmd *cobra.Command, args []string) error {
	keys, err := parseKeys(keyNames)
	if err != nil {
		return err
	}

	opts := slider.Options{
		Min:          &sliderMin,
		Max:          &sliderMax,
		Step:         &sliderStep,
		DefaultValue: &sliderValue,
		Disabled:     disabled,
	}
	if vertical {
		opts.Orientation = slider.Vertical
	}

	s := slider.New(opts)
	for _, k := range keys {
		s.HandleKey(k)
	}
	state := s.Compute(opts).State
	attrs := state.Attrs()

	out := cmd.OutOrStdout()
	if outputFormat == "json" {
		return writeJSON(out, struct {
			State slider.State `json:"state"`
			Attrs slider.Attrs `json:"attrs"`
		}{state, attrs})
	}

	printer := ui.NewPrinter(out)
	printer.PrintHeader("Slider", "inspect slider",
		ui.Param{Key: "Range", Value: fmt.Sprintf("%g..%g step %g", state.Min, state.Max, state.Step)},
		ui.Param{Key: "Keys", Value: keyList(keys)},
	)
	rendered, _ := ui.RenderSlider(state, trackLength(sliderLength, printer.Width()))
	printer.PrintLines(rendered, "")

	printer.PrintResult(ui.NewSuccessResult("View",
		ui.Param{Key: "Value", Value: attrs.ValueText},
		ui.Param{Key: "Percentage", Value: strconv.FormatFloat(state.Percentage, 'f', 1, 64)},
		ui.Param{Key: "Orientation", Value: attrs.Orientation.String()},
		ui.Param{Key: "Disabled", Value: strconv.FormatBool(attrs.Disabled)},
	))
	return nil
}

var inspectTabsCmd = &cobra.Command{
	Use:   "tabs",
	Short: "Inspect the tabs engine",
	Example: `  # The disabled tab is skipped
  headless inspect tabs --items a,!b,c --keys right

  # Manual activation moves focus only
  headless inspect tabs --manual --keys right,right`,
	RunE: runInspectTabs,
}

func runInspectTabs(cmd *cobra.Command, args []string) error {
	keys, err := parseKeys(keyNames)
	if err != nil {
		return err
	}

	opts := tabs.Options{
		Items:           parseTabItems(tabItems),
		DefaultActiveID: tabActive,
		BaseID:          "tabs",
	}
	if vertical {
		opts.Orientation = tabs.Vertical
	}
	if tabManual {
		opts.Activation = tabs.Manual
	}

	nav := tabs.New(opts)
	for _, k := range keys {
		view := nav.Compute(opts)
		nav.HandleKey(view.FocusedIndex, k)
	}
	state := nav.Compute(opts).State

	out := cmd.OutOrStdout()
	if outputFormat == "json" {
		attrs := make([]tabs.ItemAttrs, len(state.Items))
		for i := range state.Items {
			attrs[i] = state.ItemAttrs(i)
		}
		return writeJSON(out, struct {
			State tabs.State       `json:"state"`
			Items []tabs.ItemAttrs `json:"items"`
			Panel tabs.PanelAttrs  `json:"panel"`
		}{state, attrs, state.PanelAttrs(state.ActiveID)})
	}

	printer := ui.NewPrinter(out)
	printer.PrintHeader("Tabs", "inspect tabs",
		ui.Param{Key: "Activation", Value: state.Activation.String()},
		ui.Param{Key: "Keys", Value: keyList(keys)},
	)
	rendered, _ := ui.RenderTabs(state)
	printer.PrintLines(rendered, "")

	result := ui.NewSuccessResult("View",
		ui.Param{Key: "Active", Value: state.ActiveID},
		ui.Param{Key: "Focused", Value: strconv.Itoa(state.FocusedIndex)},
	)
	for i := range state.Items {
		a := state.ItemAttrs(i)
		result.AddDetail(a.TriggerID, fmt.Sprintf("selected=%t disabled=%t tabstop=%t", a.Selected, a.Disabled, a.TabStop))
	}
	printer.PrintResult(result)
	return nil
}

// trackLength returns the requested slider length, or one that leaves room
// for the value text on a terminal of width cells.
func trackLength(requested, width int) int {
	if requested > 0 {
		return requested
	}
	return min(max(width-12, minTrackLength), maxTrackLength)
}

// parseKeys maps a comma-separated list of action names to engine keys.
func parseKeys(list string) ([]input.Key, error) {
	if strings.TrimSpace(list) == "" {
		return nil, nil
	}
	names := strings.Split(list, ",")
	keys := make([]input.Key, 0, len(names))
	for _, name := range names {
		k := input.ParseKey(name)
		if k == input.KeyNone {
			return nil, fmt.Errorf("unknown key %q", name)
		}
		keys = append(keys, k)
	}
	return keys, nil
}

func keyList(keys []input.Key) string {
	if len(keys) == 0 {
		return "none"
	}
	names := make([]string, len(keys))
	for i, k := range keys {
		names[i] = k.String()
	}
	return strings.Join(names, ", ")
}

// parseTabItems reads "id", "id=Label" and "!id" (disabled) specs.
func parseTabItems(specs []string) []tabs.Item {
	items := make([]tabs.Item, 0, len(specs))
	for _, spec := range specs {
		spec = strings.TrimSpace(spec)
		if spec == "" {
			continue
		}
		var it tabs.Item
		if strings.HasPrefix(spec, "!") {
			it.Disabled = true
			spec = spec[1:]
		}
		it.ID, it.Label, _ = strings.Cut(spec, "=")
		if it.Label == "" {
			it.Label = it.ID
		}
		items = append(items, it)
	}
	return items
}

// writeJSON prints view together with the build that computed it.
func writeJSON(w io.Writer, view any) error {
	data, err := json.MarshalIndent(struct {
		Build version.Info `json:"build"`
		View  any          `json:"view"`
	}{version.Get(), view}, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}
