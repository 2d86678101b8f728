/* SPDX-License-Identifier: GPL-2.0-only */
/* Copyright (C) 2026 ijuttt */

package widgets

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/ijuttt/trackview/internal/coord"
)

// Minimap renders the whole sequence as a bar with the live window filled in
// and the finalized window's bounds marked.
type Minimap struct {
	Length         int
	Live           coord.Window
	Finalized      coord.Window
	Width          int
	FilledColor    lipgloss.Color
	EmptyColor     lipgloss.Color
	FinalizedColor lipgloss.Color
	WarnColor      lipgloss.Color
}

// NewMinimap creates a minimap with default styling.
func NewMinimap(length int, live coord.Window, width int) Minimap {
	return Minimap{
		Length:         length,
		Live:           live,
		Width:          width,
		FilledColor:    lipgloss.Color("39"),  // Blue
		EmptyColor:     lipgloss.Color("240"), // Dark gray
		FinalizedColor: lipgloss.Color("214"), // Orange
		WarnColor:      lipgloss.Color("196"), // Red
	}
}

// WithFinalized marks the committed window.
func (m Minimap) WithFinalized(w coord.Window) Minimap {
	m.Finalized = w
	return m
}

// column maps a residue position to a bar column, clamped to the bar.
func (m Minimap) column(pos int) int {
	pos = max(1, min(pos, m.Length))
	col := (pos - 1) * m.Width / m.Length
	return max(0, min(col, m.Width-1))
}

// Render produces the minimap string.
func (m Minimap) Render() string {
	if m.Width <= 0 || m.Length <= 0 {
		return ""
	}

	filled := m.FilledColor
	if m.Live.Reversed() {
		filled = m.WarnColor
	}
	filledStyle := lipgloss.NewStyle().Foreground(filled)
	emptyStyle := lipgloss.NewStyle().Foreground(m.EmptyColor)
	markStyle := lipgloss.NewStyle().Foreground(m.FinalizedColor).Bold(true)

	live := m.Live.Normalized()
	if m.Live.IsZero() {
		live = coord.NewWindow(1, m.Length)
	}
	from, to := m.column(live.Start), m.column(live.End)

	marks := map[int]bool{}
	if !m.Finalized.IsZero() {
		fin := m.Finalized.Normalized()
		marks[m.column(fin.Start)] = true
		marks[m.column(fin.End)] = true
	}

	var b strings.Builder
	for i := 0; i < m.Width; i++ {
		switch {
		case marks[i]:
			b.WriteString(markStyle.Render("┃"))
		case i >= from && i <= to:
			b.WriteString(filledStyle.Render("█"))
		default:
			b.WriteString(emptyStyle.Render("░"))
		}
	}

	return b.String()
}
