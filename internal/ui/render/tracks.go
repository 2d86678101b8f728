package render

import (
	"fmt"
	"math"
	"sort"
	"strconv"

	"github.com/ijuttt/trackview/internal/coord"
	"github.com/ijuttt/trackview/internal/model"
)

// -----------------------------------------------------------------------------
// Ruler
// -----------------------------------------------------------------------------

// Ruler draws an axis with position labels.
func Ruler(s Scale) []Line {
	axis := newCanvas(s.Width, GlyphAxis, RoleDim)
	labels := newCanvas(s.Width, GlyphGap, RoleDim)

	step := tickStep(s)
	first := step
	if s.Window.Start > 0 {
		k := (s.Window.Start-1)/step + 1
		if k > s.Window.End/step {
			return []Line{labels.line(), axis.line()}
		}
		first = k * step
	}

	lastEnd := -1
	for pos := first; pos <= s.Window.End; pos += step {
		col, ok := s.ColumnOf(pos)
		if !ok {
			continue
		}
		axis.set(col, GlyphTick, RoleDim)
		label := strconv.Itoa(pos)
		if col > lastEnd && col+len(label) <= s.Width {
			labels.write(col, label, RoleNormal)
			lastEnd = col + len(label)
		}
		if pos > s.Window.End-step {
			break
		}
	}
	return []Line{labels.line(), axis.line()}
}

// tickStep picks a 1/2/5 x 10^n step so labels sit at least MinTickSpacing apart.
func tickStep(s Scale) int {
	perCol := float64(s.Window.Len()) / float64(s.Width)
	minStep := perCol * MinTickSpacing
	step := 1
	for {
		for _, m := range []int{1, 2, 5} {
			if float64(step*m) >= minStep {
				return step * m
			}
		}
		if step > math.MaxInt/10 {
			return math.MaxInt
		}
		step *= 10
	}
}

// -----------------------------------------------------------------------------
// Sequence
// -----------------------------------------------------------------------------

// Sequence draws residue letters when zoomed in, a density bar otherwise.
func Sequence(ds *model.Dataset, s Scale, hl coord.Span) Line {
	c := newCanvas(s.Width, GlyphGap, RoleNormal)
	if ds == nil {
		return c.line()
	}

	for col := 0; col < s.Width; col++ {
		pos := s.CoordAt(col)
		role := roleFor(pos, hl, RoleNormal)
		if s.Zoomed() {
			first, ok := s.ColumnOf(pos)
			if !ok || first != col {
				continue
			}
			if r := ds.ResidueAt(pos); r != 0 {
				c.set(col, rune(r), role)
			}
			continue
		}
		if ds.ResidueAt(pos) != 0 {
			c.set(col, GlyphDense, role)
		}
	}
	return c.line()
}

// -----------------------------------------------------------------------------
// Lollipop (modification sites)
// -----------------------------------------------------------------------------

// Lollipop draws one head per modified column, a stem, and the base axis.
func Lollipop(ds *model.Dataset, s Scale, hl coord.Span) []Line {
	heads := newCanvas(s.Width, GlyphGap, RoleNormal)
	stems := newCanvas(s.Width, GlyphGap, RoleDim)
	base := newCanvas(s.Width, GlyphAxis, RoleDim)
	if ds == nil {
		return []Line{heads.line(), stems.line(), base.line()}
	}

	counts := make(map[int]int)
	accent := make(map[int]bool)
	for _, m := range ds.Modifications {
		col, ok := s.ColumnOf(m.Position)
		if !ok {
			continue
		}
		counts[col] += m.Count
		if !hl.IsZero() && hl.Contains(m.Position) {
			accent[col] = true
		}
	}

	for col, n := range counts {
		glyph := GlyphHead
		if n >= StrongModificationCount {
			glyph = GlyphHeadStrong
		}
		role := RoleMarker
		if accent[col] {
			role = RoleAccent
		}
		heads.set(col, glyph, role)
		stems.set(col, GlyphStem, role)
	}
	return []Line{heads.line(), stems.line(), base.line()}
}

// -----------------------------------------------------------------------------
// Peptides
// -----------------------------------------------------------------------------

// PackPeptides assigns each peptide overlapping w to the first row where it
// does not collide with an earlier one. Rows hold indices into ds.Peptides.
func PackPeptides(ds *model.Dataset, w coord.Window, maxRows int) [][]int {
	if ds == nil {
		return nil
	}

	var idx []int
	for i, p := range ds.Peptides {
		if w.IsZero() || w.Overlaps(p) {
			idx = append(idx, i)
		}
	}
	sort.SliceStable(idx, func(a, b int) bool {
		return spanOf(ds, idx[a]).Start < spanOf(ds, idx[b]).Start
	})

	var rows [][]int
	var rowEnd []int
	for _, i := range idx {
		sp := spanOf(ds, i)
		placed := false
		for r := range rows {
			if rowEnd[r] < sp.Start {
				rows[r] = append(rows[r], i)
				rowEnd[r] = sp.End
				placed = true
				break
			}
		}
		if !placed && len(rows) < maxRows {
			rows = append(rows, []int{i})
			rowEnd = append(rowEnd, sp.End)
		}
	}
	return rows
}

func spanOf(ds *model.Dataset, i int) coord.Span {
	return coord.SpanOf(ds.Peptides[i]).Normalized()
}

// Peptides draws one line per packed row.
func Peptides(ds *model.Dataset, s Scale, hl coord.Span, rows [][]int) []Line {
	out := make([]Line, 0, len(rows))
	for _, row := range rows {
		c := newCanvas(s.Width, GlyphGap, RoleNormal)
		for _, i := range row {
			p := ds.Peptides[i]
			c0, c1, ok := s.Columns(p.PeptideStart, p.PeptideEnd)
			if !ok {
				continue
			}
			role := RoleMarker
			if coord.SpanOf(p) == hl {
				role = RoleAccent
			}
			for col := c0; col <= c1; col++ {
				c.set(col, GlyphPeptide, role)
			}
		}
		out = append(out, c.line())
	}
	return out
}

// PeptideAt returns the peptide drawn at (row, col), if any.
func PeptideAt(ds *model.Dataset, s Scale, rows [][]int, row, col int) (int, bool) {
	if row < 0 || row >= len(rows) {
		return 0, false
	}
	for _, i := range rows[row] {
		p := ds.Peptides[i]
		c0, c1, ok := s.Columns(p.PeptideStart, p.PeptideEnd)
		if ok && col >= c0 && col <= c1 {
			return i, true
		}
	}
	return 0, false
}

// -----------------------------------------------------------------------------
// Structure (1-D)
// -----------------------------------------------------------------------------

// Structure draws helices, strands and coils from the secondary structure string.
func Structure(ds *model.Dataset, s Scale, hl coord.Span) Line {
	c := newCanvas(s.Width, GlyphGap, RoleDim)
	if ds == nil || ds.Structure == "" {
		return c.line()
	}

	for col := 0; col < s.Width; col++ {
		pos := s.CoordAt(col)
		if ds.ResidueAt(pos) == 0 {
			continue
		}
		glyph, role := GlyphCoil, RoleCoil
		switch ds.StructureAt(pos) {
		case 'H', 'G', 'I':
			glyph, role = GlyphHelix, RoleHelix
		case 'E', 'B':
			glyph, role = GlyphStrand, RoleStrand
		}
		c.set(col, glyph, roleFor(pos, hl, role))
	}
	return c.line()
}

// -----------------------------------------------------------------------------
// Network
// -----------------------------------------------------------------------------

// NetworkNodes returns the nodes anchored inside w, most connected first.
// Row i+1 of Network draws node i.
func NetworkNodes(ds *model.Dataset, w coord.Window) []model.Node {
	if ds == nil {
		return nil
	}
	var visible []model.Node
	for _, n := range ds.Network.Nodes {
		if n.Anchored() && (w.IsZero() || w.Overlaps(n)) {
			visible = append(visible, n)
		}
	}
	sort.SliceStable(visible, func(a, b int) bool {
		return ds.Network.Degree(visible[a].ID) > ds.Network.Degree(visible[b].ID)
	})
	return visible
}

// Network lists graph nodes anchored inside w, most connected first.
func Network(ds *model.Dataset, w coord.Window, hl coord.Span, width, maxRows int) []Line {
	if ds == nil || len(ds.Network.Nodes) == 0 {
		return []Line{Text("no network", RoleDim)}
	}

	visible := NetworkNodes(ds, w)
	out := []Line{Text(truncate(fmt.Sprintf("%d nodes, %d edges, %d in view",
		len(ds.Network.Nodes), len(ds.Network.Edges), len(visible)), width), RoleDim)}

	for i, n := range visible {
		if i+1 >= maxRows {
			break
		}
		role := RoleNormal
		if !hl.IsZero() && coord.NewWindow(hl.Start, hl.End).Overlaps(n) {
			role = RoleAccent
		}
		label := n.Label
		if label == "" {
			label = n.ID
		}
		text := fmt.Sprintf(" %s [%d-%d] deg %d", label, n.Begin, n.Stop, ds.Network.Degree(n.ID))
		out = append(out, Line{
			{Text: string(GlyphNode), Role: RoleMarker},
			{Text: truncate(text, width-1), Role: role},
		})
	}
	return out
}

// -----------------------------------------------------------------------------
// Helpers
// -----------------------------------------------------------------------------

func roleFor(pos coord.Coordinate, hl coord.Span, fallback Role) Role {
	if !hl.IsZero() && hl.Contains(pos) {
		return RoleAccent
	}
	return fallback
}

func truncate(s string, width int) string {
	r := []rune(s)
	if width <= 0 {
		return ""
	}
	if len(r) <= width {
		return s
	}
	if width <= 3 {
		return string(r[:width])
	}
	return string(r[:width-3]) + "..."
}
