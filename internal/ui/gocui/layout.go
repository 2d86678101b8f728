/* SPDX-License-Identifier: GPL-2.0-only */
/* Copyright (C) 2026 ijuttt */

package gocui

// -----------------------------------------------------------------------------
// Layout Constants
// -----------------------------------------------------------------------------

const (
	// HeaderHeight is the height of the header view (including borders).
	HeaderHeight = 3

	// FooterHeight is the height of the footer view (including borders).
	FooterHeight = 2

	// ContentTopOffset is the Y position where content views start.
	ContentTopOffset = HeaderHeight

	// MinTracksWidth is the minimum width for the tracks panel.
	MinTracksWidth = 40

	// MinInfoWidth and MaxInfoWidth bound the inspector panel.
	MinInfoWidth = 28
	MaxInfoWidth = 48

	// InfoPanelDivisor gives the inspector a third of the screen.
	InfoPanelDivisor = 3
)

// Layout manages view positioning and sizing calculations.
type Layout struct {
	maxX, maxY int
}

// NewLayout creates a new layout calculator with the given terminal size.
func NewLayout(maxX, maxY int) *Layout {
	return &Layout{maxX: maxX, maxY: maxY}
}

// HeaderBounds returns the bounds for the header view.
// Returns x0, y0, x1, y1.
func (l *Layout) HeaderBounds() (int, int, int, int) {
	return 0, 0, l.maxX - 1, HeaderHeight - 1
}

// TracksBounds returns the bounds for the tracks panel (left side).
// Returns x0, y0, x1, y1.
func (l *Layout) TracksBounds() (int, int, int, int) {
	return 0, ContentTopOffset, l.splitX() - 1, ContentTopOffset + l.contentHeight()
}

// InfoBounds returns the bounds for the inspector panel (right side).
// Returns x0, y0, x1, y1.
func (l *Layout) InfoBounds() (int, int, int, int) {
	return l.splitX(), ContentTopOffset, l.maxX - 1, ContentTopOffset + l.contentHeight()
}

// FooterBounds returns the bounds for the footer/help view.
// Returns x0, y0, x1, y1.
func (l *Layout) FooterBounds() (int, int, int, int) {
	return 0, l.maxY - FooterHeight - 1, l.maxX - 1, l.maxY - 1
}

// TracksWidth is the number of columns inside the tracks panel frame.
func (l *Layout) TracksWidth() int {
	x0, _, x1, _ := l.TracksBounds()
	return max(x1-x0-1, 1)
}

// splitX returns the column where the inspector starts.
func (l *Layout) splitX() int {
	info := min(max(l.maxX/InfoPanelDivisor, MinInfoWidth), MaxInfoWidth)
	return max(l.maxX-info, 1)
}

// contentHeight returns the available height for content panels.
func (l *Layout) contentHeight() int {
	return l.maxY - HeaderHeight - FooterHeight - 2
}

// IsTerminalTooSmall checks if the terminal is too small for the TUI.
func (l *Layout) IsTerminalTooSmall() bool {
	return l.maxX < MinTracksWidth+MinInfoWidth || l.maxY < HeaderHeight+FooterHeight+5
}
