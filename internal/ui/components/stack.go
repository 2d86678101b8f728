/* SPDX-License-Identifier: GPL-2.0-only */
/* Copyright (C) 2026 ijuttt */

package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/ijuttt/trackview/internal/app"
	"github.com/ijuttt/trackview/internal/ui/styles"
	"github.com/ijuttt/trackview/internal/ui/widgets"
)

// -----------------------------------------------------------------------------
// Track Stack Layout
// -----------------------------------------------------------------------------

const (
	// stackOffsetX is the border plus left padding before column 0.
	stackOffsetX = 2
	// stackOffsetY is the border plus the minimap row before the first track.
	stackOffsetY = 2
)

// -----------------------------------------------------------------------------
// Track Stack Component
// -----------------------------------------------------------------------------

// TrackStack lays tracks out vertically in one panel and routes pointer
// gestures to the track under the pointer.
type TrackStack struct {
	state    *app.State
	tracks   []*Track
	active   int
	dragging int // index of the track holding a drag, -1 for none
	width    int
	height   int
	focused  bool
}

// NewTrackStack creates one track per kind, top to bottom.
func NewTrackStack(state *app.State, tuning Tuning, kinds ...Kind) *TrackStack {
	if len(kinds) == 0 {
		kinds = AllKinds()
	}
	ts := &TrackStack{state: state, dragging: -1}
	for _, k := range kinds {
		ts.tracks = append(ts.tracks, NewTrack(k, state, tuning))
	}
	ts.updateFocus()
	return ts
}

// Close unsubscribes every track.
func (ts *TrackStack) Close() {
	for _, t := range ts.tracks {
		t.Close()
	}
}

// Tracks returns the tracks in stack order.
func (ts *TrackStack) Tracks() []*Track { return ts.tracks }

// Active returns the track that receives keyboard gestures.
func (ts *TrackStack) Active() *Track { return ts.tracks[ts.active] }

// ActiveIndex returns the position of the active track.
func (ts *TrackStack) ActiveIndex() int { return ts.active }

// FocusNext moves keyboard focus to the next track, wrapping around.
func (ts *TrackStack) FocusNext() {
	ts.active = (ts.active + 1) % len(ts.tracks)
	ts.updateFocus()
}

// FocusPrev moves keyboard focus to the previous track, wrapping around.
func (ts *TrackStack) FocusPrev() {
	ts.active = (ts.active - 1 + len(ts.tracks)) % len(ts.tracks)
	ts.updateFocus()
}

// SetSize updates the component dimensions.
func (ts *TrackStack) SetSize(width, height int) {
	ts.width = width
	ts.height = height
	for _, t := range ts.tracks {
		t.SetWidth(ts.contentWidth())
	}
}

// SetFocused sets the focus state.
func (ts *TrackStack) SetFocused(focused bool) {
	ts.focused = focused
	ts.updateFocus()
}

func (ts *TrackStack) updateFocus() {
	for i, t := range ts.tracks {
		t.SetFocused(ts.focused && i == ts.active)
	}
}

// contentWidth is the panel width minus horizontal padding.
func (ts *TrackStack) contentWidth() int {
	return max(1, ts.width-2)
}

// -----------------------------------------------------------------------------
// Pointer Routing
// -----------------------------------------------------------------------------

// HitTest maps a panel-relative cell to a track, a content column and a
// content row. Title rows report row -1.
func (ts *TrackStack) HitTest(x, y int) (idx, col, row int, ok bool) {
	col = x - stackOffsetX
	if col < 0 || col >= ts.contentWidth() {
		return 0, 0, 0, false
	}
	r := y - stackOffsetY
	for i, t := range ts.tracks {
		h := t.Kind().Height() + 1
		if r >= 0 && r < h {
			return i, col, r - 1, true
		}
		r -= h
	}
	return 0, 0, 0, false
}

// Press focuses the track under the pointer and starts a gesture on it.
func (ts *TrackStack) Press(x, y int) bool {
	idx, col, row, ok := ts.HitTest(x, y)
	if !ok {
		return false
	}
	ts.active = idx
	ts.updateFocus()
	ts.dragging = idx
	ts.tracks[idx].Press(col, row)
	return true
}

// Motion feeds the dragging track, wherever the pointer is vertically.
func (ts *TrackStack) Motion(x int) {
	if ts.dragging < 0 {
		return
	}
	ts.tracks[ts.dragging].Motion(ts.clampCol(x))
}

// Release ends the gesture on the dragging track.
func (ts *TrackStack) Release(x int) {
	if ts.dragging < 0 {
		return
	}
	t := ts.tracks[ts.dragging]
	ts.dragging = -1
	t.Release(ts.clampCol(x))
}

// Dragging reports whether a track holds a pointer gesture.
func (ts *TrackStack) Dragging() bool { return ts.dragging >= 0 }

func (ts *TrackStack) clampCol(x int) int {
	return max(0, min(x-stackOffsetX, ts.contentWidth()-1))
}

// -----------------------------------------------------------------------------
// Rendering
// -----------------------------------------------------------------------------

// View renders the stack.
func (ts *TrackStack) View() string {
	parts := []string{ts.renderMinimap()}
	for _, t := range ts.tracks {
		parts = append(parts, t.View())
	}
	return ts.applyPanelStyle(strings.Join(parts, "\n"))
}

func (ts *TrackStack) renderMinimap() string {
	ds := ts.state.Dataset()
	if ds == nil {
		return styles.DimItemStyle.Render("Select a dataset to view tracks")
	}
	vp := ts.state.Viewport()
	return widgets.NewMinimap(ds.Length(), vp.Window(), ts.contentWidth()).
		WithFinalized(vp.Finalized()).
		Render()
}

// applyPanelStyle applies the appropriate panel style.
func (ts *TrackStack) applyPanelStyle(content string) string {
	style := styles.BasePanelStyle
	if ts.focused {
		style = styles.ActivePanelStyle
	}

	border := styles.BuildTitledBorder("Tracks", ts.width+2, lipgloss.RoundedBorder())
	return style.
		Border(border).
		Width(ts.width).
		Height(ts.height).
		MaxHeight(ts.height + 2).
		Render(content)
}
