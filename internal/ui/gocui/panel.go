/* SPDX-License-Identifier: GPL-2.0-only */
/* Copyright (C) 2026 ijuttt */

package gocui

import (
	"fmt"
	"strings"

	"github.com/ijuttt/trackview/internal/analysis"
	"github.com/ijuttt/trackview/internal/app"
	"github.com/ijuttt/trackview/internal/coord"
	"github.com/ijuttt/trackview/internal/ui/components"
	"github.com/ijuttt/trackview/internal/ui/render"
)

// trackPanel stacks the classic frontend's tracks. The adapter writes its
// text into the tracks view.
type trackPanel struct {
	state  *app.State
	tracks []*components.Track
	active int
}

func newTrackPanel(state *app.State, tuning components.Tuning) *trackPanel {
	p := &trackPanel{state: state}
	for _, k := range components.AllKinds() {
		p.tracks = append(p.tracks, components.NewTrack(k, state, tuning))
	}
	p.tracks[0].SetFocused(true)
	return p
}

func (p *trackPanel) close() {
	for _, t := range p.tracks {
		t.Close()
	}
}

func (p *trackPanel) setWidth(width int) {
	for _, t := range p.tracks {
		t.SetWidth(width)
	}
}

func (p *trackPanel) activeTrack() *components.Track { return p.tracks[p.active] }

func (p *trackPanel) focus(delta int) {
	p.tracks[p.active].SetFocused(false)
	p.active = (p.active + delta + len(p.tracks)) % len(p.tracks)
	p.tracks[p.active].SetFocused(true)
}

func (p *trackPanel) render() string {
	var b strings.Builder
	for i, t := range p.tracks {
		title := t.Title()
		if i == p.active {
			b.WriteString(render.Bold + title + render.Reset)
		} else {
			b.WriteString(render.Dim + title + render.Reset)
		}
		b.WriteString("\n")
		for _, l := range t.Lines() {
			b.WriteString(render.ANSI(l))
			b.WriteString("\n")
		}
	}
	return b.String()
}

// cyclePeptide highlights the next (dir > 0) or previous peptide.
func cyclePeptide(state *app.State, dir int) {
	ds := state.Dataset()
	if ds == nil || len(ds.Peptides) == 0 {
		return
	}
	n := len(ds.Peptides)
	i := state.HighlightedPeptide()
	switch {
	case i < 0 && dir < 0:
		i = n - 1
	case i < 0:
		i = 0
	default:
		i = (i + dir + n) % n
	}
	if pep, ok := state.Peptide(i); ok {
		state.Highlight().Set(pep)
	}
}

// infoLines describes the session for the inspector view.
func infoLines(state *app.State) []render.Line {
	ds := state.Dataset()
	if ds == nil {
		return []render.Line{render.Text("No dataset loaded", render.RoleDim)}
	}

	vp := state.Viewport()
	field := func(name, value string, role render.Role) render.Line {
		return render.Line{{Text: fmt.Sprintf("%-10s", name), Role: render.RoleDim}, {Text: value, Role: role}}
	}

	updater := "none"
	if tok := vp.Updater(); !tok.IsZero() {
		updater = tok.Label()
	}

	lines := []render.Line{
		field("Name", ds.GetName(), render.RoleNormal),
		field("Length", fmt.Sprintf("%d aa", ds.Length()), render.RoleNormal),
		field("Peptides", fmt.Sprintf("%d", len(ds.Peptides)), render.RoleNormal),
		render.Text("", render.RoleNormal),
		field("Window", vp.Window().String(), render.RoleMarker),
		field("Updater", updater, render.RoleNormal),
		field("Committed", vp.Finalized().String(), render.RoleNormal),
	}
	if err := coord.Check(vp.Window(), ds.Length()); err != nil {
		lines = append(lines, render.Text("⚠ "+err.Error(), render.RoleWarning))
	}

	// Peak of each metric inside the live window.
	lines = append(lines, render.Text("", render.RoleNormal))
	for _, m := range analysis.DefaultMetrics() {
		prof := analysis.BuildProfile(ds, m, vp.Window(), coord.Span{})
		lines = append(lines, field(m.Name(), fmt.Sprintf("max %.0f %s", prof.MaxValue, m.Unit()), render.RoleNormal))
	}

	lines = append(lines, render.Text("", render.RoleNormal))
	span := state.Highlight().Span()
	if span.IsZero() {
		return append(lines, field("Highlight", "none", render.RoleDim))
	}
	lines = append(lines, field("Highlight", span.String(), render.RoleAccent))
	if i := state.HighlightedPeptide(); i >= 0 {
		pep, _ := state.Peptide(i)
		lines = append(lines, field("Peptide", fmt.Sprintf("#%d %s", i+1, pep.Sequence), render.RoleNormal))
	}
	return lines
}
