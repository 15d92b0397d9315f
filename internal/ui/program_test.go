package ui

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHeaderAndResult(t *testing.T) {
	header := NewHeader("Pagination", "headless inspect pagination",
		Param{Key: "Total", Value: "10"}, Param{Key: "Page", Value: "5"}).SetWidth(MinTerminalWidth).Render()
	assert.Contains(t, header, "PAGINATION")
	assert.Less(t, strings.Index(header, "Total"), strings.Index(header, "Page:"), "params keep their order")

	warn := NewWarningResult("Config", []string{"slider.step: must be positive"}).Render()
	assert.Contains(t, warn, "WARNING")
	assert.Contains(t, warn, "slider.step")
}

func TestPrinterWarnings(t *testing.T) {
	var b strings.Builder
	p := NewPrinter(&b).SetWidth(MinTerminalWidth)

	p.PrintWarnings("Config", nil)
	assert.Empty(t, b.String())

	p.PrintWarnings("Config", []error{assert.AnError})
	assert.Contains(t, b.String(), assert.AnError.Error())
}

func TestConfirm(t *testing.T) {
	tests := []struct {
		answer string
		want   bool
	}{
		{"y\n", true},
		{"YES\n", true},
		{"n\n", false},
		{"\n", false},
		{"", false},
	}
	for _, tt := range tests {
		var out strings.Builder
		assert.Equal(t, tt.want, Confirm(strings.NewReader(tt.answer), &out, "exists", "Overwrite?"), "%q", tt.answer)
		assert.Contains(t, out.String(), "Overwrite?")
	}
}

func TestPrinterLinesAndWidth(t *testing.T) {
	var b strings.Builder
	p := NewPrinter(&b).SetWidth(72)
	assert.Equal(t, 72, p.Width())

	p.PrintLines("one", "", "two")
	assert.Equal(t, "one\n\ntwo\n", b.String())
}
