/* SPDX-License-Identifier: GPL-2.0-only */
/* Copyright (C) 2026 ijuttt */

// Package bubbletea provides the main TUI application using Bubble Tea.
package bubbletea

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/ijuttt/trackview/internal/app"
	"github.com/ijuttt/trackview/internal/config"
	"github.com/ijuttt/trackview/internal/processor"
	"github.com/ijuttt/trackview/internal/ui/components"
	"github.com/ijuttt/trackview/internal/ui/styles"
)

// Panel identifiers
const (
	PanelExplorer = iota
	PanelInspector
	PanelTracks
	PanelCount
)

// Drag targets
const (
	DragNone = iota
	DragExplorer
	DragInspector
)

// panelTop is the row where the panels start, below the header.
const panelTop = 1

// App is the main application model.
type App struct {
	state *app.State
	cfg   *config.Config

	// Components
	explorer      components.Explorer
	inspector     components.Inspector
	tracks        *components.TrackStack
	confirmDialog components.ConfirmDialog
	help          help.Model

	// State
	activePanel int
	initialPath string
	loading     bool
	statusMsg   string
	errMsg      string

	// Layout and Resizing
	width          int
	height         int
	explorerRatio  float64
	inspectorRatio float64
	dragActive     int     // DragNone, DragExplorer, DragInspector
	dragStartMX    int     // Mouse X at drag start
	dragStartRatio float64 // Ratio at drag start

	// Key bindings
	keys KeyMap
}

// NewApp creates a new application instance. initialPath, when set, is
// loaded as soon as the program starts.
func NewApp(state *app.State, cfg *config.Config, initialPath string) App {
	tuning := components.Tuning{ZoomFactor: cfg.ZoomFactor, PanFraction: cfg.PanFraction}

	h := help.New()
	h.Styles.ShortKey = styles.HelpKeyStyle
	h.Styles.ShortDesc = styles.HelpDescStyle
	h.Styles.FullKey = styles.HelpKeyStyle
	h.Styles.FullDesc = styles.HelpDescStyle

	return App{
		state:         state,
		cfg:           cfg,
		explorer:      components.NewExplorer(),
		inspector:     components.NewInspector(state),
		tracks:        components.NewTrackStack(state, tuning),
		confirmDialog: components.NewConfirmDialog(),
		help:          h,
		activePanel:   PanelExplorer,
		initialPath:   initialPath,
		keys:          DefaultKeyMap(),
		statusMsg:     "Loading files...",
		// Default ratios
		explorerRatio:  0.18,
		inspectorRatio: 0.27,
		dragActive:     DragNone,
	}
}

// Close unsubscribes the tracks from the session.
func (a App) Close() {
	a.tracks.Close()
}

func (a App) dataPaths() []string {
	return config.GetDataPaths(a.cfg.DataDir)
}

// Init initializes the application.
func (a App) Init() tea.Cmd {
	cmds := []tea.Cmd{processor.RefreshFilesCmd(a.dataPaths(), config.DatasetFileExtension)}
	if a.initialPath != "" {
		cmds = append(cmds, processor.LoadDatasetCmd(a.initialPath))
	}
	return tea.Batch(cmds...)
}

// Update handles messages and updates the model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	// Handle confirmation dialog first if visible
	if a.confirmDialog.IsVisible() {
		if result, handled := a.confirmDialog.Update(msg); handled {
			if !result.Confirmed {
				a.statusMsg = "Cancelled"
				return a, nil
			}
			switch result.Action {
			case components.ConfirmReset:
				a.state.ResetView()
				a.statusMsg = "View reset to the whole sequence"
			case components.ConfirmReload:
				a.loading = true
				a.statusMsg = "Reloading dataset..."
				return a, processor.LoadDatasetCmd(result.Data)
			}
			return a, nil
		}
		switch msg.(type) {
		case tea.KeyMsg, tea.MouseMsg:
			return a, nil // Block other input while dialog is visible
		}
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.confirmDialog.SetSize(msg.Width, msg.Height)
		a.updateComponentSizes()

	case tea.MouseMsg:
		a.handleMouse(msg)

	case tea.KeyMsg:
		if cmd := a.handleKey(msg); cmd != nil {
			cmds = append(cmds, cmd)
		}

	case processor.FileListMsg:
		a.loading = false
		if msg.Err != nil {
			a.errMsg = msg.Err.Error()
		} else {
			a.explorer.SetFiles(msg.Files)
			a.statusMsg = fmt.Sprintf("Found %d datasets (sorted by date)", len(msg.Files))
			a.errMsg = ""
			a.inspector.SetSelectedFile(a.explorer.SelectedFile())
		}

	case processor.LoadResultMsg:
		a.loading = false
		if msg.Err != nil {
			a.errMsg = msg.Err.Error()
			a.statusMsg = "Failed to load dataset"
		} else {
			a.state.SetDataset(msg.Path, msg.Dataset)
			a.explorer.SetLoaded(msg.Path)
			a.inspector.ResetCursor()
			a.statusMsg = fmt.Sprintf("✓ Loaded %s: %d residues, %d peptides",
				msg.Dataset.GetName(), msg.Dataset.Length(), len(msg.Dataset.Peptides))
			a.errMsg = ""
		}
	}

	return a, tea.Batch(cmds...)
}

// -----------------------------------------------------------------------------
// Input Handling
// -----------------------------------------------------------------------------

// handleKey applies global keys first and forwards the rest to the active panel.
func (a *App) handleKey(msg tea.KeyMsg) tea.Cmd {
	if a.help.ShowAll {
		if key.Matches(msg, a.keys.Help, a.keys.Escape) {
			a.help.ShowAll = false
			return nil
		}
		if !key.Matches(msg, a.keys.Quit) {
			return nil
		}
	}

	switch {
	case key.Matches(msg, a.keys.Quit):
		return tea.Quit

	case key.Matches(msg, a.keys.Help):
		a.help.ShowAll = true

	case key.Matches(msg, a.keys.Tab):
		a.activePanel = (a.activePanel + 1) % PanelCount
		a.updateFocus()

	case key.Matches(msg, a.keys.Reload):
		a.loading = true
		a.statusMsg = "Reloading files..."
		return processor.RefreshFilesCmd(a.dataPaths(), config.DatasetFileExtension)

	case key.Matches(msg, a.keys.Enter) && a.activePanel == PanelExplorer:
		path := a.explorer.Selected()
		if path == "" {
			return nil
		}
		if path == a.state.Path() {
			a.confirmDialog.Show(
				components.ConfirmReload,
				fmt.Sprintf("Reload '%s'? The view will be reset.", filepath.Base(path)),
				path,
			)
			return nil
		}
		a.loading = true
		a.statusMsg = "Loading dataset..."
		return processor.LoadDatasetCmd(path)

	case key.Matches(msg, a.keys.ZoomIn):
		a.tracks.Active().ZoomIn()
		a.reportWindow()

	case key.Matches(msg, a.keys.ZoomOut):
		a.tracks.Active().ZoomOut()
		a.reportWindow()

	case key.Matches(msg, a.keys.Reset):
		if a.state.Dataset() != nil {
			a.confirmDialog.Show(
				components.ConfirmReset,
				"Show the whole sequence and clear the highlight?",
				"",
			)
		}

	case key.Matches(msg, a.keys.ClearHighlight):
		a.state.Highlight().Clear()
		a.statusMsg = "Highlight cleared"

	case key.Matches(msg, a.keys.NextTrack):
		a.tracks.FocusNext()

	case key.Matches(msg, a.keys.PrevTrack):
		a.tracks.FocusPrev()

	default:
		return a.forwardKey(msg)
	}
	return nil
}

// forwardKey hands a key to the active panel.
func (a *App) forwardKey(msg tea.KeyMsg) tea.Cmd {
	switch a.activePanel {
	case PanelExplorer:
		cmd := a.explorer.Update(msg)
		a.inspector.SetSelectedFile(a.explorer.SelectedFile())
		return cmd

	case PanelInspector:
		return a.inspector.Update(msg)

	case PanelTracks:
		switch {
		case key.Matches(msg, a.keys.Left):
			a.tracks.Active().Pan(-1)
			a.reportWindow()
		case key.Matches(msg, a.keys.Right):
			a.tracks.Active().Pan(1)
			a.reportWindow()
		case key.Matches(msg, a.keys.Up):
			a.tracks.FocusPrev()
		case key.Matches(msg, a.keys.Down):
			a.tracks.FocusNext()
		}
	}
	return nil
}

// handleMouse routes splitter drags to the layout and everything else over
// the tracks panel to the track stack.
func (a *App) handleMouse(msg tea.MouseMsg) {
	switch msg.Action {
	case tea.MouseActionRelease:
		if a.dragActive != DragNone {
			a.dragActive = DragNone
			a.statusMsg = "Ready"
			return
		}
		if a.tracks.Dragging() {
			a.tracks.Release(msg.X - a.tracksX())
			a.inspector.FollowHighlight()
			a.reportWindow()
		}

	case tea.MouseActionMotion:
		if a.dragActive != DragNone {
			a.resize(msg.X)
			return
		}
		if a.tracks.Dragging() {
			a.tracks.Motion(msg.X - a.tracksX())
		}

	case tea.MouseActionPress:
		switch msg.Button {
		case tea.MouseButtonLeft:
			a.press(msg)
		case tea.MouseButtonWheelUp:
			if msg.X >= a.tracksX() {
				a.tracks.Active().ZoomIn()
				a.reportWindow()
			}
		case tea.MouseButtonWheelDown:
			if msg.X >= a.tracksX() {
				a.tracks.Active().ZoomOut()
				a.reportWindow()
			}
		}
	}
}

// press starts a splitter drag, or focuses the panel under the pointer.
func (a *App) press(msg tea.MouseMsg) {
	// Hit test for splitters (tolerance +/- 2 chars for ease of use)
	s1 := int(float64(a.width) * a.explorerRatio)
	s2 := int(float64(a.width)*a.explorerRatio) + int(float64(a.width)*a.inspectorRatio)

	switch {
	case msg.X >= s1-2 && msg.X <= s1+2:
		a.dragActive = DragExplorer
		a.dragStartMX = msg.X
		a.dragStartRatio = a.explorerRatio
		a.statusMsg = "Resizing Explorer..."

	case msg.X >= s2-2 && msg.X <= s2+2:
		a.dragActive = DragInspector
		a.dragStartMX = msg.X
		a.dragStartRatio = a.inspectorRatio
		a.statusMsg = "Resizing Inspector..."

	case msg.X < s1:
		a.activePanel = PanelExplorer
		a.updateFocus()

	case msg.X < s2:
		a.activePanel = PanelInspector
		a.updateFocus()

	default:
		a.activePanel = PanelTracks
		a.updateFocus()
		a.tracks.Press(msg.X-a.tracksX(), msg.Y-panelTop)
	}
}

// resize moves the active splitter, keeping every panel usable.
func (a *App) resize(x int) {
	deltaRatio := float64(x-a.dragStartMX) / float64(a.width)
	newRatio := a.dragStartRatio + deltaRatio // Base change on original ratio

	switch a.dragActive {
	case DragExplorer:
		// Clamp: Min 10%, Max 40%
		a.explorerRatio = min(max(newRatio, 0.10), 0.40)

	case DragInspector:
		// Clamp: Min 20%, and the tracks keep at least 30%
		newRatio = max(newRatio, 0.20)
		if a.explorerRatio+newRatio > 0.70 {
			newRatio = 0.70 - a.explorerRatio
		}
		a.inspectorRatio = newRatio
	}
	a.updateComponentSizes()
}

func (a *App) reportWindow() {
	vp := a.state.Viewport()
	a.statusMsg = fmt.Sprintf("Window %s  finalized %s", vp.Window(), vp.Finalized())
}

// -----------------------------------------------------------------------------
// Layout
// -----------------------------------------------------------------------------

func (a App) panelWidths() (explorer, inspector, tracks int) {
	explorer = int(float64(a.width) * a.explorerRatio)
	inspector = int(float64(a.width) * a.inspectorRatio)
	tracks = a.width - explorer - inspector - 6 // Account for borders
	return explorer, inspector, tracks
}

// tracksX is the screen column of the tracks panel's left border.
func (a App) tracksX() int {
	e, i, _ := a.panelWidths()
	return e + i + 4
}

// updateComponentSizes recalculates component dimensions.
func (a *App) updateComponentSizes() {
	// Reserve space for header and status bar
	contentHeight := a.height - 4

	explorerWidth, inspectorWidth, tracksWidth := a.panelWidths()
	a.explorer.SetSize(explorerWidth, contentHeight)
	a.inspector.SetSize(inspectorWidth, contentHeight)
	a.tracks.SetSize(tracksWidth, contentHeight)
	a.help.Width = a.width

	a.updateFocus()
}

// updateFocus sets focus states on components.
func (a *App) updateFocus() {
	a.explorer.SetFocused(a.activePanel == PanelExplorer)
	a.inspector.SetFocused(a.activePanel == PanelInspector)
	a.tracks.SetFocused(a.activePanel == PanelTracks)
}

// -----------------------------------------------------------------------------
// Rendering
// -----------------------------------------------------------------------------

// View renders the application.
func (a App) View() string {
	if a.width == 0 {
		return "Initializing..."
	}

	// Overlay confirmation dialog if visible
	if a.confirmDialog.IsVisible() {
		return a.confirmDialog.View()
	}
	if a.help.ShowAll {
		return a.renderHelp()
	}

	var b strings.Builder

	b.WriteString(a.renderHeader())
	b.WriteString("\n")

	panels := lipgloss.JoinHorizontal(
		lipgloss.Top,
		a.explorer.View(),
		a.inspector.View(),
		a.tracks.View(),
	)
	b.WriteString(panels)
	b.WriteString("\n")

	b.WriteString(a.renderStatusBar())

	return b.String()
}

// renderHeader renders the application header.
func (a App) renderHeader() string {
	title := styles.PanelTitleStyle.Render("🧬 Trackview")
	if ds := a.state.Dataset(); ds != nil {
		title += styles.SecondaryStyle.Render(fmt.Sprintf(" %s  %d aa", ds.GetName(), ds.Length()))
	}
	return title
}

// renderHelp renders the full key map centred on screen.
func (a App) renderHelp() string {
	box := styles.ActivePanelStyle.Render(
		styles.PanelTitleStyle.Render("Keys") + "\n\n" +
			a.help.FullHelpView(a.keys.FullHelp()) + "\n\n" +
			styles.DimItemStyle.Render("? or esc to close"))
	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, box)
}

// renderStatusBar renders the status bar.
func (a App) renderStatusBar() string {
	var left string

	if a.errMsg != "" {
		left = styles.ErrorStyle.Render(a.errMsg)
	} else if a.loading {
		left = styles.LoadingStyle.Render(a.statusMsg)
	} else {
		left = styles.DimItemStyle.Render(a.statusMsg)
	}

	right := a.help.ShortHelpView(a.keys.ShortHelp())

	// Pad to fill width
	padding := max(a.width-lipgloss.Width(left)-lipgloss.Width(right)-2, 0)

	return styles.StatusBarStyle.
		Width(a.width).
		Render(left + strings.Repeat(" ", padding) + right)
}
