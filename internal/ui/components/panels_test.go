/* SPDX-License-Identifier: GPL-2.0-only */
/* Copyright (C) 2026 ijuttt */

package components

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/ijuttt/trackview/internal/app"
	"github.com/ijuttt/trackview/internal/coord"
	"github.com/ijuttt/trackview/internal/processor"
	"github.com/ijuttt/trackview/internal/viewport"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runeKey(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// -----------------------------------------------------------------------------
// TrackStack
// -----------------------------------------------------------------------------

func newTestStack(t *testing.T, s *app.State) *TrackStack {
	t.Helper()
	ts := NewTrackStack(s, DefaultTuning())
	ts.SetSize(52, 40) // 50 content columns
	t.Cleanup(ts.Close)
	return ts
}

func TestStackHitTest(t *testing.T) {
	ts := newTestStack(t, testState(t))

	tests := []struct {
		name     string
		x, y     int
		idx, col int
		row      int
		ok       bool
	}{
		{"border", 1, 3, 0, 0, 0, false},
		{"minimap", 2, 1, 0, 0, 0, false},
		{"sequence title", 2, 2, 0, 0, -1, true},
		{"sequence row", 12, 5, 0, 10, 2, true},
		{"lollipop title", 2, 6, 1, 0, -1, true},
		{"peptide row", 13, 11, 2, 11, 0, true},
		{"below tracks", 2, 60, 0, 0, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			idx, col, row, ok := ts.HitTest(tt.x, tt.y)
			require.Equal(t, tt.ok, ok)
			if ok {
				assert.Equal(t, tt.idx, idx)
				assert.Equal(t, tt.col, col)
				assert.Equal(t, tt.row, row)
			}
		})
	}
}

func TestStackDragMovesEveryTrack(t *testing.T) {
	s := testState(t)
	ts := newTestStack(t, s)

	updates := 0
	s.Viewport().Subscribe(func(viewport.Live) { updates++ })

	require.True(t, ts.Press(12, 11))
	assert.Equal(t, 2, ts.ActiveIndex())
	assert.True(t, ts.Dragging())

	ts.Motion(22)
	ts.Release(22)

	assert.False(t, ts.Dragging())
	assert.Equal(t, 1, updates)
	assert.Equal(t, coord.NewWindow(11, 21), s.Viewport().Finalized())
	for _, tr := range ts.Tracks() {
		assert.Equal(t, coord.NewWindow(11, 21), tr.Window(), tr.Kind().String())
	}
	assert.Equal(t, ts.Tracks()[2].Token(), s.Viewport().Updater())
}

func TestStackMotionClampsToTrack(t *testing.T) {
	s := testState(t)
	ts := newTestStack(t, s)

	ts.Press(2, 3)
	ts.Motion(500)
	ts.Release(500)

	assert.Equal(t, coord.NewWindow(1, 50), s.Viewport().Finalized())
}

func TestStackClickHighlights(t *testing.T) {
	s := testState(t)
	ts := newTestStack(t, s)

	ts.Press(13, 11)
	ts.Release(13)

	assert.Equal(t, coord.Span{Start: 10, End: 25}, s.Highlight().Span())
}

func TestStackIgnoresStrayEvents(t *testing.T) {
	s := testState(t)
	ts := newTestStack(t, s)

	assert.False(t, ts.Press(0, 0))
	ts.Motion(20)
	ts.Release(20)
	assert.Equal(t, coord.NewWindow(1, 50), s.Viewport().Window())
}

func TestStackFocus(t *testing.T) {
	ts := newTestStack(t, testState(t))
	ts.SetFocused(true)

	assert.Equal(t, KindSequence, ts.Active().Kind())
	ts.FocusPrev()
	assert.Equal(t, KindNetwork, ts.Active().Kind())
	ts.FocusNext()
	ts.FocusNext()
	assert.Equal(t, KindLollipop, ts.Active().Kind())
	assert.True(t, ts.Tracks()[1].focused)
	assert.False(t, ts.Tracks()[0].focused)
}

func TestStackViewWithoutDataset(t *testing.T) {
	ts := newTestStack(t, app.NewState())
	assert.Contains(t, ts.View(), "Select a dataset")
}

// -----------------------------------------------------------------------------
// Inspector
// -----------------------------------------------------------------------------

func TestInspectorSelectHighlightsPeptide(t *testing.T) {
	s := testState(t)
	in := NewInspector(s)
	in.SetSize(40, 40)

	in.Update(tea.KeyMsg{Type: tea.KeyDown})
	in.Update(tea.KeyMsg{Type: tea.KeyDown})
	in.Update(tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, 2, in.Cursor(), "cursor stops at the last peptide")

	in.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, coord.Span{Start: 30, End: 40}, s.Highlight().Span())

	in.Update(runeKey("g"))
	assert.Equal(t, 0, in.Cursor())
}

func TestInspectorFollowsHighlight(t *testing.T) {
	s := testState(t)
	in := NewInspector(s)

	s.Highlight().Set(s.Dataset().Peptides[1])
	in.FollowHighlight()
	assert.Equal(t, 1, in.Cursor())

	s.Highlight().Clear()
	in.FollowHighlight()
	assert.Equal(t, 1, in.Cursor())
}

func TestInspectorView(t *testing.T) {
	s := testState(t)
	in := NewInspector(s)
	in.SetSize(50, 60)
	in.SetSelectedFile(&processor.FileInfo{Path: "test.json", Name: "test.json", Size: 2048, ModTime: time.Now()})

	out := in.View()
	assert.Contains(t, out, "TEST")
	assert.Contains(t, out, "[1, 50]")
	assert.Contains(t, out, "✓ Loaded")
	assert.NotContains(t, out, "⚠")

	s.Viewport().Update(coord.NewWindow(40, 10), viewport.NoUpdater)
	assert.Contains(t, in.View(), "reversed window")
}

func TestWindowWarning(t *testing.T) {
	assert.Equal(t, "", windowWarning(coord.NewWindow(1, 50), 50))
	assert.Contains(t, windowWarning(coord.NewWindow(50, 1), 50), "reversed")
	assert.Contains(t, windowWarning(coord.NewWindow(1, 80), 50), "exceeds")
}

func TestTruncateRunes(t *testing.T) {
	assert.Equal(t, "ABC", truncateRunes("ABC", 5))
	assert.Equal(t, "AB...", truncateRunes("ABCDEFG", 5))
	assert.Equal(t, "AB", truncateRunes("ABCDEFG", 2))
}

// -----------------------------------------------------------------------------
// Explorer
// -----------------------------------------------------------------------------

func TestExplorerNavigation(t *testing.T) {
	e := NewExplorer()
	e.SetSize(30, 20)
	e.SetFiles([]processor.FileInfo{
		{Path: "/d/a.json", Name: "a.json"},
		{Path: "/d/b.json", Name: "b.json"},
	})

	assert.Equal(t, "/d/a.json", e.Selected())
	e.Update(tea.KeyMsg{Type: tea.KeyDown})
	e.Update(tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, "/d/b.json", e.Selected())

	e.SetFiles(e.files[:1])
	assert.Equal(t, 0, e.Cursor(), "cursor clamps when the list shrinks")

	e.SetLoaded("/d/a.json")
	assert.Contains(t, e.View(), "a.json")
}

func TestExplorerEmpty(t *testing.T) {
	e := NewExplorer()
	assert.Nil(t, e.SelectedFile())
	assert.Equal(t, "", e.Selected())
	assert.Contains(t, e.View(), "No datasets found")
}

func TestFormatFileSize(t *testing.T) {
	assert.Equal(t, "512 B", FormatFileSize(512))
	assert.Equal(t, "2.0 KB", FormatFileSize(2048))
	assert.Equal(t, "1.5 MB", FormatFileSize(3*1024*1024/2))
}

// -----------------------------------------------------------------------------
// Confirm dialog
// -----------------------------------------------------------------------------

func TestConfirmDialog(t *testing.T) {
	c := NewConfirmDialog()
	_, handled := c.Update(runeKey("y"))
	assert.False(t, handled, "hidden dialog ignores input")

	c.Show(ConfirmReset, "Reset the view?", "")
	require.True(t, c.IsVisible())
	assert.Contains(t, c.View(), "Reset view")

	res, handled := c.Update(runeKey("y"))
	require.True(t, handled)
	assert.True(t, res.Confirmed)
	assert.Equal(t, ConfirmReset, res.Action)
	assert.False(t, c.IsVisible())

	c.Show(ConfirmReload, "Reload?", "/d/a.json")
	res, _ = c.Update(tea.KeyMsg{Type: tea.KeyEsc})
	assert.False(t, res.Confirmed)
	assert.Equal(t, "/d/a.json", res.Data)
}
