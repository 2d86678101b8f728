/* SPDX-License-Identifier: GPL-2.0-only */
/* Copyright (C) 2026 ijuttt */

// Package gocui provides the gocui-based classic TUI implementation.
package gocui

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/ijuttt/trackview/internal/app"
	"github.com/ijuttt/trackview/internal/config"
	"github.com/ijuttt/trackview/internal/coord"
	"github.com/ijuttt/trackview/internal/ui/components"
	"github.com/ijuttt/trackview/internal/ui/render"
	lib "github.com/jroimartin/gocui"
)

// -----------------------------------------------------------------------------
// View Names
// -----------------------------------------------------------------------------

const (
	ViewHeader = "header"
	ViewTracks = "tracks"
	ViewInfo   = "info"
	ViewFooter = "footer"
)

const helpText = "+/- zoom  h/l pan  j/k track  n/p peptide  x clear  0 reset  q quit"

// -----------------------------------------------------------------------------
// Adapter Implementation
// -----------------------------------------------------------------------------

// Adapter implements ui.UI using gocui.
type Adapter struct {
	gui    *lib.Gui
	state  *app.State
	layout *Layout
	tuning components.Tuning
	panel  *trackPanel
	status string
	cancel func()
}

// New creates a new gocui adapter.
func New(cfg *config.Config) (*Adapter, error) {
	g, err := lib.NewGui(lib.OutputNormal)
	if err != nil {
		return nil, err
	}
	// Mouse stays off: gocui fails its main loop on clicks that land on a
	// frame, and it never reports motion, so drags are not possible anyway.
	g.Cursor = false
	return &Adapter{
		gui:    g,
		tuning: components.Tuning{ZoomFactor: cfg.ZoomFactor, PanFraction: cfg.PanFraction},
	}, nil
}

// Run implements ui.UI.
func (a *Adapter) Run(state *app.State) error {
	a.state = state
	a.panel = newTrackPanel(state, a.tuning)
	a.cancel = state.Viewport().SubscribeFinalized(func(w coord.Window) {
		a.status = "committed " + w.String()
		slog.Debug("window committed", "window", w.String(), "updater", state.Viewport().Updater().String())
	})

	a.gui.SetManagerFunc(a.layoutManager)
	if err := a.setupBindings(); err != nil {
		return err
	}
	err := a.gui.MainLoop()
	if err == lib.ErrQuit {
		return nil
	}
	return err
}

// Close implements ui.UI.
func (a *Adapter) Close() {
	if a.cancel != nil {
		a.cancel()
	}
	if a.panel != nil {
		a.panel.close()
	}
	a.gui.Close()
}

// -----------------------------------------------------------------------------
// Layout Management
// -----------------------------------------------------------------------------

// layoutManager creates and updates all views. gocui calls it after every
// handled event, so track changes show up without an explicit redraw.
func (a *Adapter) layoutManager(g *lib.Gui) error {
	maxX, maxY := g.Size()
	a.layout = NewLayout(maxX, maxY)

	if a.layout.IsTerminalTooSmall() {
		a.status = fmt.Sprintf("terminal too small (%dx%d)", maxX, maxY)
	}

	views := []struct {
		name   string
		bounds func() (int, int, int, int)
		title  string
	}{
		{ViewHeader, a.layout.HeaderBounds, ""},
		{ViewTracks, a.layout.TracksBounds, " Tracks "},
		{ViewInfo, a.layout.InfoBounds, " Inspector "},
		{ViewFooter, a.layout.FooterBounds, ""},
	}
	for _, vs := range views {
		x0, y0, x1, y1 := vs.bounds()
		v, err := g.SetView(vs.name, x0, y0, x1, y1)
		if err != nil && err != lib.ErrUnknownView {
			return err
		}
		v.Frame = vs.title != ""
		v.Title = vs.title
	}

	a.panel.setWidth(a.layout.TracksWidth())
	return a.renderAll()
}

// -----------------------------------------------------------------------------
// Rendering
// -----------------------------------------------------------------------------

// renderAll updates all view contents.
func (a *Adapter) renderAll() error {
	if v, err := a.gui.View(ViewHeader); err == nil {
		v.Clear()
		fmt.Fprint(v, a.header())
	}

	if v, err := a.gui.View(ViewTracks); err == nil {
		v.Clear()
		fmt.Fprint(v, a.panel.render())
	}

	if v, err := a.gui.View(ViewInfo); err == nil {
		v.Clear()
		for _, l := range infoLines(a.state) {
			fmt.Fprintln(v, render.ANSI(l))
		}
	}

	if v, err := a.gui.View(ViewFooter); err == nil {
		v.Clear()
		fmt.Fprint(v, render.Dim+helpText+render.Reset)
		if a.status != "" {
			fmt.Fprint(v, "  "+a.status)
		}
	}

	return nil
}

func (a *Adapter) header() string {
	var b strings.Builder
	b.WriteString(render.Bold + "trackview" + render.Reset)
	if ds := a.state.Dataset(); ds != nil {
		fmt.Fprintf(&b, "  %s  %d aa  %s", ds.GetName(), ds.Length(), render.Dim+a.state.Path()+render.Reset)
	}
	return b.String()
}

// -----------------------------------------------------------------------------
// Key Bindings
// -----------------------------------------------------------------------------

// setupBindings configures keybindings.
func (a *Adapter) setupBindings() error {
	bindings := []struct {
		view    string
		key     interface{}
		handler func(*lib.Gui, *lib.View) error
	}{
		{"", lib.KeyCtrlC, a.quit},
		{"", 'q', a.quit},
		{"", '+', a.gesture((*components.Track).ZoomIn)},
		{"", '=', a.gesture((*components.Track).ZoomIn)},
		{"", '-', a.gesture((*components.Track).ZoomOut)},
		{"", 'h', a.pan(-1)},
		{"", lib.KeyArrowLeft, a.pan(-1)},
		{"", 'l', a.pan(1)},
		{"", lib.KeyArrowRight, a.pan(1)},
		{"", 'j', a.focus(1)},
		{"", lib.KeyArrowDown, a.focus(1)},
		{"", 'k', a.focus(-1)},
		{"", lib.KeyArrowUp, a.focus(-1)},
		{"", 'n', a.peptide(1)},
		{"", 'p', a.peptide(-1)},
		{"", 'x', a.clearHighlight},
		{"", '0', a.reset},
	}

	for _, b := range bindings {
		if err := a.gui.SetKeybinding(b.view, b.key, lib.ModNone, b.handler); err != nil {
			return err
		}
	}

	return nil
}

func (a *Adapter) quit(g *lib.Gui, v *lib.View) error {
	return lib.ErrQuit
}

func (a *Adapter) gesture(fn func(*components.Track)) func(*lib.Gui, *lib.View) error {
	return func(*lib.Gui, *lib.View) error {
		fn(a.panel.activeTrack())
		return nil
	}
}

func (a *Adapter) pan(dir int) func(*lib.Gui, *lib.View) error {
	return a.gesture(func(t *components.Track) { t.Pan(dir) })
}

func (a *Adapter) focus(delta int) func(*lib.Gui, *lib.View) error {
	return func(*lib.Gui, *lib.View) error {
		a.panel.focus(delta)
		return nil
	}
}

func (a *Adapter) peptide(dir int) func(*lib.Gui, *lib.View) error {
	return func(*lib.Gui, *lib.View) error {
		cyclePeptide(a.state, dir)
		return nil
	}
}

func (a *Adapter) clearHighlight(g *lib.Gui, v *lib.View) error {
	a.state.Highlight().Clear()
	return nil
}

func (a *Adapter) reset(g *lib.Gui, v *lib.View) error {
	a.state.ResetView()
	return nil
}
