// Package widgets provides reusable TUI visualization components.
package widgets

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Sparkline renders a series as a Unicode bar chart.
type Sparkline struct {
	Data           []float64
	Width          int
	HighlightFrom  int // First data index to highlight, -1 for none
	HighlightTo    int // Last data index to highlight (inclusive)
	NormalColor    lipgloss.Color
	HighlightColor lipgloss.Color
}

// sparkBlocks are Unicode block elements for 8 levels of height.
var sparkBlocks = []rune{'▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

// NewSparkline creates a sparkline with default styling.
func NewSparkline(data []float64, width int) Sparkline {
	return Sparkline{
		Data:           data,
		Width:          width,
		HighlightFrom:  -1,
		HighlightTo:    -1,
		NormalColor:    lipgloss.Color("62"),  // Blue
		HighlightColor: lipgloss.Color("201"), // Magenta
	}
}

// WithHighlight highlights data indices from..to inclusive.
func (s Sparkline) WithHighlight(from, to int) Sparkline {
	s.HighlightFrom = from
	s.HighlightTo = to
	return s
}

// Render produces the sparkline string.
func (s Sparkline) Render() string {
	if len(s.Data) == 0 {
		return ""
	}

	// Bars start at zero so an empty residue never looks covered.
	maxVal := 0.0
	for _, v := range s.Data {
		if v > maxVal {
			maxVal = v
		}
	}

	samples := s.sampleData()

	var b strings.Builder
	normalStyle := lipgloss.NewStyle().Foreground(s.NormalColor)
	highlightStyle := lipgloss.NewStyle().Foreground(s.HighlightColor).Bold(true)

	for i, val := range samples {
		char := " "
		if val > 0 && maxVal > 0 {
			blockIdx := int(val / maxVal * 7)
			blockIdx = max(0, min(blockIdx, 7))
			char = string(sparkBlocks[blockIdx])
		}

		idx := s.mapSampleToData(i, len(samples))
		if s.HighlightFrom >= 0 && idx >= s.HighlightFrom && idx <= s.HighlightTo {
			b.WriteString(highlightStyle.Render(char))
		} else {
			b.WriteString(normalStyle.Render(char))
		}
	}

	return b.String()
}

// sampleData reduces data points to fit within width.
func (s Sparkline) sampleData() []float64 {
	if len(s.Data) <= s.Width {
		return s.Data
	}

	result := make([]float64, s.Width)
	ratio := float64(len(s.Data)) / float64(s.Width)

	for i := 0; i < s.Width; i++ {
		idx := int(float64(i) * ratio)
		if idx >= len(s.Data) {
			idx = len(s.Data) - 1
		}
		result[i] = s.Data[idx]
	}

	return result
}

// mapSampleToData maps a sample index back to original data index.
func (s Sparkline) mapSampleToData(sampleIdx, sampleCount int) int {
	if sampleCount >= len(s.Data) {
		return sampleIdx
	}
	ratio := float64(len(s.Data)) / float64(sampleCount)
	return int(float64(sampleIdx) * ratio)
}
