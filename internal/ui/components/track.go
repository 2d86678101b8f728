/* SPDX-License-Identifier: GPL-2.0-only */
/* Copyright (C) 2026 ijuttt */

package components

import (
	"fmt"
	"math"
	"strings"

	"github.com/ijuttt/trackview/internal/analysis"
	"github.com/ijuttt/trackview/internal/app"
	"github.com/ijuttt/trackview/internal/coord"
	"github.com/ijuttt/trackview/internal/model"
	"github.com/ijuttt/trackview/internal/ui/render"
	"github.com/ijuttt/trackview/internal/ui/styles"
	"github.com/ijuttt/trackview/internal/ui/widgets"
	"github.com/ijuttt/trackview/internal/viewport"
)

// -----------------------------------------------------------------------------
// Track Kinds
// -----------------------------------------------------------------------------

// Kind selects what a track draws.
type Kind int

const (
	KindSequence Kind = iota
	KindLollipop
	KindPeptides
	KindStructure
	KindNetwork
)

// networkRows is the summary line plus four nodes.
const networkRows = 5

var kindNames = map[Kind]string{
	KindSequence:  "Sequence",
	KindLollipop:  "Modifications",
	KindPeptides:  "Peptides",
	KindStructure: "Structure",
	KindNetwork:   "Network",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// AllKinds returns every track kind in stack order.
func AllKinds() []Kind {
	return []Kind{KindSequence, KindLollipop, KindPeptides, KindStructure, KindNetwork}
}

// Height returns the number of content rows a track of this kind draws,
// not counting its title.
func (k Kind) Height() int {
	switch k {
	case KindSequence:
		return 3
	case KindLollipop:
		return render.LollipopHeight
	case KindPeptides:
		return render.MaxPeptideRows + 1 // + coverage sparkline
	case KindStructure:
		return 1
	case KindNetwork:
		return networkRows
	}
	return 1
}

// lineRows is the part of Height drawn from render lines.
func (k Kind) lineRows() int {
	if k == KindPeptides {
		return render.MaxPeptideRows
	}
	return k.Height()
}

// -----------------------------------------------------------------------------
// Tuning
// -----------------------------------------------------------------------------

// Tuning holds the step sizes of keyboard gestures.
type Tuning struct {
	ZoomFactor  float64
	PanFraction float64
}

// DefaultTuning matches the configuration defaults.
func DefaultTuning() Tuning {
	return Tuning{ZoomFactor: 2, PanFraction: 0.25}
}

// -----------------------------------------------------------------------------
// Track Component
// -----------------------------------------------------------------------------

type drag struct {
	active bool
	scale  render.Scale // scale at press time
	anchor coord.Coordinate
	col    int
	row    int
	moved  bool
}

// Track is one linked view over the shared window. It owns a viewport token,
// adopts windows written by other tracks and publishes its own gestures.
type Track struct {
	kind   Kind
	token  viewport.Token
	state  *app.State
	tuning Tuning

	window coord.Window
	span   coord.Span

	width   int
	focused bool
	drag    drag

	cancels []func()
}

// NewTrack creates a track and subscribes it to the session's services.
// Call Close to unsubscribe.
func NewTrack(kind Kind, state *app.State, tuning Tuning) *Track {
	t := &Track{
		kind:   kind,
		token:  viewport.NewToken(strings.ToLower(kind.String())),
		state:  state,
		tuning: tuning,
		window: state.Viewport().Window(),
		span:   state.Highlight().Span(),
		width:  1,
	}
	t.cancels = []func(){
		state.Viewport().Subscribe(t.onViewport),
		state.Viewport().SubscribeFinalized(t.onFinalized),
		state.Highlight().Subscribe(t.onHighlight),
	}
	return t
}

// Close removes the track's subscriptions.
func (t *Track) Close() {
	for _, cancel := range t.cancels {
		cancel()
	}
	t.cancels = nil
}

// onViewport must never write to the viewport. A write here would attribute
// the window to this track and wake every other track again.
func (t *Track) onViewport(l viewport.Live) {
	if viewport.IsEcho(l, t.token) {
		return
	}
	t.window = l.Window
}

// onFinalized adopts committed windows. Resets are unattributed and keep the
// last token, so the track that dragged last sees them only through here.
func (t *Track) onFinalized(w coord.Window) {
	if t.drag.active {
		return
	}
	t.window = w
}

func (t *Track) onHighlight(s coord.Span) {
	t.span = s
}

// Kind returns what the track draws.
func (t *Track) Kind() Kind { return t.kind }

// Token returns the track's viewport identity.
func (t *Track) Token() viewport.Token { return t.token }

// Window returns the window the track currently displays.
func (t *Track) Window() coord.Window { return t.window }

// Span returns the highlight the track currently displays.
func (t *Track) Span() coord.Span { return t.span }

// Dragging reports whether a pointer gesture is in progress.
func (t *Track) Dragging() bool { return t.drag.active }

// SetWidth sets the number of columns the track draws.
func (t *Track) SetWidth(width int) {
	t.width = max(1, width)
}

// SetFocused sets the focus state.
func (t *Track) SetFocused(focused bool) {
	t.focused = focused
}

func (t *Track) dataset() *model.Dataset {
	return t.state.Dataset()
}

func (t *Track) scale() render.Scale {
	return render.NewScale(t.window, t.dataset().Length(), t.width)
}

// publish shows w locally, then hands it to the other tracks.
func (t *Track) publish(w coord.Window) {
	t.window = w
	t.state.Viewport().Update(w, t.token)
}

// -----------------------------------------------------------------------------
// Pointer Gestures
// -----------------------------------------------------------------------------

// Press starts a gesture at a content cell.
func (t *Track) Press(col, row int) {
	s := t.scale()
	t.drag = drag{
		active: true,
		scale:  s,
		anchor: s.CoordAt(col),
		col:    col,
		row:    row,
	}
}

// Motion extends the gesture. Every new column publishes the brushed window.
func (t *Track) Motion(col int) {
	if !t.drag.active {
		return
	}
	if col == t.drag.col && !t.drag.moved {
		return
	}
	t.drag.moved = true
	pos := t.drag.scale.CoordAt(col)
	a := t.drag.anchor
	t.publish(coord.NewWindow(min(a, pos), max(a, pos)))
}

// Release ends the gesture. A drag commits its final window once; a press
// without motion is a click and highlights the feature under it.
func (t *Track) Release(col int) {
	if !t.drag.active {
		return
	}
	if col != t.drag.col {
		t.Motion(col)
	}
	moved, startCol, row := t.drag.moved, t.drag.col, t.drag.row
	t.drag = drag{}

	if !moved {
		t.Click(startCol, row)
		return
	}
	t.state.Viewport().Commit()
}

// Click highlights the feature at a content cell and reports whether there
// was one.
func (t *Track) Click(col, row int) bool {
	f, ok := t.FeatureAt(col, row)
	if !ok {
		return false
	}
	t.state.Highlight().Set(f)
	return true
}

// FeatureAt returns the feature drawn at a content cell.
func (t *Track) FeatureAt(col, row int) (coord.Feature, bool) {
	ds := t.dataset()
	if ds == nil || col < 0 || col >= t.width || row < 0 || row >= t.kind.Height() {
		return nil, false
	}
	s := t.scale()

	switch t.kind {
	case KindSequence:
		pos := s.CoordAt(col)
		if ds.ResidueAt(pos) != 0 {
			return residue(pos), true
		}
	case KindLollipop:
		for _, m := range ds.Modifications {
			if c, ok := s.ColumnOf(m.Position); ok && c == col {
				return residue(m.Position), true
			}
		}
	case KindPeptides:
		rows := render.PackPeptides(ds, s.Window, render.MaxPeptideRows)
		if i, ok := render.PeptideAt(ds, s, rows, row, col); ok {
			return ds.Peptides[i], true
		}
	case KindStructure:
		return structureRun(ds, s.CoordAt(col))
	case KindNetwork:
		nodes := render.NetworkNodes(ds, s.Window)
		if i := row - 1; i >= 0 && i < len(nodes) && row < networkRows {
			return nodes[i], true
		}
	}
	return nil, false
}

func residue(pos coord.Coordinate) coord.Feature {
	return coord.Span{Start: pos, End: pos}.AsFeature()
}

// structureRun returns the run of identical secondary structure around pos.
func structureRun(ds *model.Dataset, pos coord.Coordinate) (coord.Feature, bool) {
	if ds.Structure == "" || ds.ResidueAt(pos) == 0 {
		return nil, false
	}
	kind := ds.StructureAt(pos)
	start, end := pos, pos
	for start > 1 && ds.StructureAt(start-1) == kind {
		start--
	}
	for end < ds.Length() && ds.StructureAt(end+1) == kind {
		end++
	}
	return coord.Span{Start: start, End: end}.AsFeature(), true
}

// -----------------------------------------------------------------------------
// Keyboard Gestures
// -----------------------------------------------------------------------------

// ZoomIn narrows the window around its centre by the zoom factor.
func (t *Track) ZoomIn() { t.zoom(1 / t.tuning.ZoomFactor) }

// ZoomOut widens the window around its centre by the zoom factor.
func (t *Track) ZoomOut() { t.zoom(t.tuning.ZoomFactor) }

func (t *Track) zoom(f float64) {
	n := t.dataset().Length()
	if n == 0 {
		return
	}
	w := t.scale().Window
	size := int(math.Round(float64(w.Len()) * f))
	size = max(1, min(size, n))
	center := (w.Start + w.End) / 2
	t.settle(center-size/2, size, n)
}

// Pan moves the window by the pan fraction; dir < 0 moves towards the
// N-terminus.
func (t *Track) Pan(dir int) {
	n := t.dataset().Length()
	if n == 0 || dir == 0 {
		return
	}
	w := t.scale().Window
	size := min(w.Len(), n)
	step := max(1, int(float64(size)*t.tuning.PanFraction))
	if dir < 0 {
		step = -step
	}
	t.settle(w.Start+step, size, n)
}

// settle clamps a window of size residues starting at start into the
// sequence, then publishes and commits it.
func (t *Track) settle(start, size, n int) {
	start = max(1, min(start, n-size+1))
	t.publish(coord.NewWindow(start, start+size-1))
	t.state.Viewport().Commit()
}

// -----------------------------------------------------------------------------
// Rendering
// -----------------------------------------------------------------------------

// Lines returns the track's content rows without any terminal styling.
func (t *Track) Lines() []render.Line {
	ds := t.dataset()
	blank := render.Text(strings.Repeat(" ", t.width), render.RoleNormal)

	var lines []render.Line
	if ds == nil {
		lines = []render.Line{render.Text("no dataset loaded", render.RoleDim)}
	} else {
		s := t.scale()
		switch t.kind {
		case KindSequence:
			lines = append(render.Ruler(s), render.Sequence(ds, s, t.span))
		case KindLollipop:
			lines = render.Lollipop(ds, s, t.span)
		case KindPeptides:
			rows := render.PackPeptides(ds, s.Window, render.MaxPeptideRows)
			lines = render.Peptides(ds, s, t.span, rows)
		case KindStructure:
			lines = []render.Line{render.Structure(ds, s, t.span)}
		case KindNetwork:
			lines = render.Network(ds, s.Window, t.span, t.width, networkRows)
		}
	}

	for len(lines) < t.kind.lineRows() {
		lines = append(lines, blank)
	}
	return lines
}

// Coverage returns the peptide depth under each column.
func (t *Track) Coverage() widgets.Sparkline {
	s := t.scale()
	data := make([]float64, s.Width)
	prof := analysis.BuildProfile(t.dataset(), analysis.CoverageMetric{}, s.Window, t.span)
	if len(prof.Points) == 0 {
		return widgets.NewSparkline(data, s.Width)
	}

	first := prof.Points[0].Position
	from, to := -1, -1
	for col := range data {
		i := s.CoordAt(col) - first
		if i < 0 || i >= len(prof.Points) {
			continue
		}
		data[col] = prof.Points[i].Value
		if prof.Points[i].Highlighted {
			if from < 0 {
				from = col
			}
			to = col
		}
	}
	return widgets.NewSparkline(data, s.Width).WithHighlight(from, to)
}

// Title returns the unstyled title line.
func (t *Track) Title() string {
	title := fmt.Sprintf(" %s %s ", t.kind, t.window)
	if t.window.IsZero() {
		title = fmt.Sprintf(" %s ", t.kind)
	}
	if t.state.Viewport().Updater() == t.token {
		title += "◂ "
	}
	return title
}

// View renders the title and content rows.
func (t *Track) View() string {
	titleStyle := styles.TrackTitleStyle
	switch {
	case t.drag.active:
		titleStyle = styles.DraggingTrackTitleStyle
	case t.focused:
		titleStyle = styles.ActiveTrackTitleStyle
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(t.Title()))
	b.WriteString("\n")
	b.WriteString(styles.RenderLines(t.Lines()))
	if t.kind == KindPeptides {
		b.WriteString("\n")
		b.WriteString(t.Coverage().Render())
	}
	return b.String()
}
