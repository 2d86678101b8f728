/* SPDX-License-Identifier: GPL-2.0-only */
/* Copyright (C) 2026 ijuttt */

package bubbletea

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/ijuttt/trackview/internal/app"
	"github.com/ijuttt/trackview/internal/config"
	"github.com/ijuttt/trackview/internal/coord"
	"github.com/ijuttt/trackview/internal/model"
	"github.com/ijuttt/trackview/internal/processor"
	"github.com/ijuttt/trackview/internal/ui/components"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleJSON = `{
  "name": "SAMPLE",
  "sequence": "ACDEFGHIKLACDEFGHIKLACDEFGHIKLACDEFGHIKLACDEFGHIKL",
  "peptides": [
    {"peptide_start": 2, "peptide_end": 5, "sequence": "CDEF"},
    {"start": 10, "end": 25}
  ]
}`

func testConfig(t *testing.T) *config.Config {
	return &config.Config{DataDir: t.TempDir(), ZoomFactor: 2, PanFraction: 0.25}
}

// newTestApp returns a 120x40 app with the 50-residue sample loaded.
func newTestApp(t *testing.T) (App, *app.State) {
	t.Helper()
	state := app.NewState()
	a := NewApp(state, testConfig(t), "")
	t.Cleanup(a.Close)

	ds, err := model.ParseDataset([]byte(sampleJSON))
	require.NoError(t, err)

	a = update(t, a, tea.WindowSizeMsg{Width: 120, Height: 40})
	a = update(t, a, processor.LoadResultMsg{Path: "sample.json", Dataset: ds})
	return a, state
}

func update(t *testing.T, a App, msg tea.Msg) App {
	t.Helper()
	m, _ := a.Update(msg)
	next, ok := m.(App)
	require.True(t, ok)
	return next
}

func keyMsg(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func mouse(x, y int, action tea.MouseAction) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: action, Button: tea.MouseButtonLeft}
}

// findLoad runs cmd and returns the first LoadResultMsg it produces.
func findLoad(t *testing.T, cmd tea.Cmd) (processor.LoadResultMsg, bool) {
	t.Helper()
	if cmd == nil {
		return processor.LoadResultMsg{}, false
	}
	switch msg := cmd().(type) {
	case processor.LoadResultMsg:
		return msg, true
	case tea.BatchMsg:
		for _, c := range msg {
			if res, ok := findLoad(t, c); ok {
				return res, true
			}
		}
	}
	return processor.LoadResultMsg{}, false
}

func TestLoadResultResetsView(t *testing.T) {
	a, state := newTestApp(t)

	assert.Equal(t, coord.NewWindow(1, 50), state.Viewport().Window())
	assert.Equal(t, coord.NewWindow(1, 50), state.Viewport().Finalized())
	assert.Contains(t, a.statusMsg, "SAMPLE")
	assert.Equal(t, "sample.json", state.Path())
}

func TestLoadErrorIsReported(t *testing.T) {
	a, state := newTestApp(t)

	a = update(t, a, processor.LoadResultMsg{Path: "bad.json", Err: os.ErrNotExist})

	assert.NotEmpty(t, a.errMsg)
	assert.Equal(t, "sample.json", state.Path(), "failed loads keep the session")
}

func TestZoomKeys(t *testing.T) {
	a, state := newTestApp(t)

	a = update(t, a, keyMsg("+"))
	assert.Equal(t, coord.NewWindow(13, 37), state.Viewport().Finalized())
	assert.Equal(t, a.tracks.Active().Token(), state.Viewport().Updater())

	a = update(t, a, keyMsg("-"))
	assert.Equal(t, coord.NewWindow(1, 50), state.Viewport().Finalized())
	assert.Contains(t, a.statusMsg, "[1, 50]")
}

func TestPanKeysOnlyInTracksPanel(t *testing.T) {
	a, state := newTestApp(t)
	a = update(t, a, keyMsg("+"))

	a = update(t, a, keyMsg("l"))
	assert.Equal(t, coord.NewWindow(13, 37), state.Viewport().Finalized(), "explorer ignores pan keys")

	a.activePanel = PanelTracks
	a = update(t, a, keyMsg("l"))
	assert.Equal(t, coord.NewWindow(19, 43), state.Viewport().Finalized())
	a = update(t, a, keyMsg("h"))
	assert.Equal(t, coord.NewWindow(13, 37), state.Viewport().Finalized())
}

func TestResetAsksForConfirmation(t *testing.T) {
	a, state := newTestApp(t)
	a = update(t, a, keyMsg("+"))

	a = update(t, a, keyMsg("0"))
	require.True(t, a.confirmDialog.IsVisible())
	assert.Equal(t, coord.NewWindow(13, 37), state.Viewport().Window())

	a = update(t, a, keyMsg("+"))
	assert.Equal(t, coord.NewWindow(13, 37), state.Viewport().Window(), "dialog blocks other keys")

	a = update(t, a, keyMsg("y"))
	assert.False(t, a.confirmDialog.IsVisible())
	assert.Equal(t, coord.NewWindow(1, 50), state.Viewport().Window())
	assert.Equal(t, coord.NewWindow(1, 50), state.Viewport().Finalized())
}

func TestMouseDragZoomsAllTracks(t *testing.T) {
	a, state := newTestApp(t)

	// Tracks panel starts at column 57; column 59 is content column 0.
	// Row 4 is the first sequence row. 59 content columns show 50 residues.
	require.Equal(t, 57, a.tracksX())

	a = update(t, a, mouse(69, 4, tea.MouseActionPress))
	assert.Equal(t, PanelTracks, a.activePanel)

	a = update(t, a, mouse(89, 4, tea.MouseActionMotion))
	assert.Equal(t, coord.NewWindow(9, 26), state.Viewport().Window())
	assert.Equal(t, coord.NewWindow(1, 50), state.Viewport().Finalized(), "committed only on release")

	a = update(t, a, mouse(89, 30, tea.MouseActionRelease))
	assert.Equal(t, coord.NewWindow(9, 26), state.Viewport().Finalized())
	for _, tr := range a.tracks.Tracks() {
		assert.Equal(t, coord.NewWindow(9, 26), tr.Window(), tr.Kind().String())
	}
	assert.False(t, a.tracks.Dragging())
}

func TestMouseClickHighlightsPeptide(t *testing.T) {
	a, state := newTestApp(t)

	// Peptide rows start at stack row 11. Content column 12 shows residue 11.
	a = update(t, a, mouse(59+12, 11+panelTop, tea.MouseActionPress))
	a = update(t, a, mouse(59+12, 11+panelTop, tea.MouseActionRelease))

	assert.Equal(t, coord.Span{Start: 10, End: 25}, state.Highlight().Span())
	assert.Equal(t, 1, a.inspector.Cursor(), "inspector follows the highlight")
	assert.Equal(t, coord.NewWindow(1, 50), state.Viewport().Finalized())
}

func TestSplitterDrag(t *testing.T) {
	a, _ := newTestApp(t)

	a = update(t, a, mouse(21, 5, tea.MouseActionPress))
	require.Equal(t, DragExplorer, a.dragActive)

	a = update(t, a, mouse(33, 5, tea.MouseActionMotion))
	assert.InDelta(t, 0.28, a.explorerRatio, 0.001)

	a = update(t, a, mouse(90, 5, tea.MouseActionMotion))
	assert.InDelta(t, 0.40, a.explorerRatio, 0.001, "clamped")

	a = update(t, a, mouse(90, 5, tea.MouseActionRelease))
	assert.Equal(t, DragNone, a.dragActive)
}

func TestTabCyclesPanels(t *testing.T) {
	a, _ := newTestApp(t)

	for _, want := range []int{PanelInspector, PanelTracks, PanelExplorer} {
		a = update(t, a, tea.KeyMsg{Type: tea.KeyTab})
		assert.Equal(t, want, a.activePanel)
	}
}

func TestInspectorEnterHighlights(t *testing.T) {
	a, state := newTestApp(t)
	a.activePanel = PanelInspector

	a = update(t, a, tea.KeyMsg{Type: tea.KeyDown})
	a = update(t, a, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, coord.Span{Start: 10, End: 25}, state.Highlight().Span())

	a = update(t, a, keyMsg("x"))
	assert.True(t, state.Highlight().Span().IsZero())
}

func TestExplorerEnterLoadsDataset(t *testing.T) {
	state := app.NewState()
	cfg := testConfig(t)
	path := filepath.Join(cfg.DataDir, "sample.json")
	require.NoError(t, os.WriteFile(path, []byte(sampleJSON), 0o644))

	a := NewApp(state, cfg, "")
	t.Cleanup(a.Close)
	a = update(t, a, tea.WindowSizeMsg{Width: 120, Height: 40})

	files, err := processor.ListFiles(cfg.DataDir, config.DatasetFileExtension)
	require.NoError(t, err)
	a = update(t, a, processor.FileListMsg{Files: files})

	_, cmd := a.Update(tea.KeyMsg{Type: tea.KeyEnter})
	res, ok := findLoad(t, cmd)
	require.True(t, ok)
	require.NoError(t, res.Err)

	a = update(t, a, res)
	assert.Equal(t, path, state.Path())
	assert.Equal(t, coord.NewWindow(1, 50), state.Viewport().Window())

	// Loading the same file again asks first.
	a = update(t, a, tea.KeyMsg{Type: tea.KeyEnter})
	assert.True(t, a.confirmDialog.IsVisible())
}

func TestInitLoadsInitialPath(t *testing.T) {
	cfg := testConfig(t)
	path := filepath.Join(cfg.DataDir, "sample.json")
	require.NoError(t, os.WriteFile(path, []byte(sampleJSON), 0o644))

	a := NewApp(app.NewState(), cfg, path)
	t.Cleanup(a.Close)

	res, ok := findLoad(t, a.Init())
	require.True(t, ok)
	assert.Equal(t, path, res.Path)
	assert.Equal(t, "SAMPLE", res.Dataset.GetName())
}

func TestHelpOverlay(t *testing.T) {
	a, _ := newTestApp(t)

	a = update(t, a, keyMsg("?"))
	assert.True(t, a.help.ShowAll)
	assert.Contains(t, a.View(), "zoom in")

	a = update(t, a, tea.KeyMsg{Type: tea.KeyEsc})
	assert.False(t, a.help.ShowAll)
}

func TestView(t *testing.T) {
	a, _ := newTestApp(t)
	out := a.View()

	assert.Contains(t, out, "Trackview")
	assert.Contains(t, out, "SAMPLE")
	assert.True(t, strings.Contains(out, "Tracks"))

	var zero App
	assert.Equal(t, "Initializing...", zero.View())
}

func TestProgramCloseWithoutRun(t *testing.T) {
	p := NewProgram(testConfig(t), "")
	assert.NotPanics(t, p.Close)
}

func TestTracksUseConfiguredTuning(t *testing.T) {
	state := app.NewState()
	cfg := &config.Config{ZoomFactor: 5, PanFraction: 0.5}
	a := NewApp(state, cfg, "")
	t.Cleanup(a.Close)

	ds, err := model.ParseDataset([]byte(sampleJSON))
	require.NoError(t, err)
	a = update(t, a, processor.LoadResultMsg{Path: "sample.json", Dataset: ds})

	a = update(t, a, keyMsg("+"))
	assert.Equal(t, 10, state.Viewport().Window().Len())
	assert.Equal(t, components.KindSequence, a.tracks.Active().Kind())
}
