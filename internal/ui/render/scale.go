package render

import (
	"math"
	"math/bits"

	"github.com/ijuttt/trackview/internal/coord"
)

// Scale maps terminal columns onto the residue axis for one window.
type Scale struct {
	Window coord.Window // normalized
	Width  int
}

// NewScale builds a scale for w drawn across width columns. A zero window
// means the whole sequence; reversed windows are drawn in ascending order.
func NewScale(w coord.Window, length, width int) Scale {
	if w.IsZero() && length > 0 {
		w = coord.NewWindow(1, length)
	}
	if width < 1 {
		width = 1
	}
	return Scale{Window: w.Normalized(), Width: width}
}

// Zoomed reports whether every residue gets at least one column.
func (s Scale) Zoomed() bool { return s.Window.Len() <= s.Width }

// extent is the window length as an unsigned count. Only a window covering
// every int is one short.
func (s Scale) extent() uint64 {
	d := uint64(s.Window.End) - uint64(s.Window.Start)
	if d == math.MaxUint64 {
		return d
	}
	return d + 1
}

// mulDiv returns a*b/c without overflowing the product. The quotient must
// fit in 64 bits.
func mulDiv(a, b, c uint64) uint64 {
	hi, lo := bits.Mul64(a, b)
	q, _ := bits.Div64(hi, lo, c)
	return q
}

// CoordAt returns the residue under column col.
func (s Scale) CoordAt(col int) coord.Coordinate {
	col = max(0, min(col, s.Width-1))
	off := mulDiv(uint64(col), s.extent(), uint64(s.Width))
	// off < extent, so the wrapping sum stays inside the window.
	return s.Window.Start + int(off)
}

// ColumnOf returns the first column showing pos.
func (s Scale) ColumnOf(pos coord.Coordinate) (int, bool) {
	if !s.Window.Contains(pos) {
		return 0, false
	}
	d := uint64(pos) - uint64(s.Window.Start)
	col := mulDiv(d, uint64(s.Width), s.extent())
	return min(int(col), s.Width-1), true
}

// Columns returns the column range covering [start, end] clipped to the view.
func (s Scale) Columns(start, end coord.Coordinate) (int, int, bool) {
	if start > end {
		start, end = end, start
	}
	if end < s.Window.Start || start > s.Window.End {
		return 0, 0, false
	}
	start = max(start, s.Window.Start)
	end = min(end, s.Window.End)
	c0, _ := s.ColumnOf(start)
	c1, _ := s.ColumnOf(end)
	// Extend to the last column of the end residue when zoomed in.
	if next, ok := s.ColumnOf(end + 1); ok && next-1 > c1 {
		c1 = next - 1
	} else if !ok && end == s.Window.End {
		c1 = s.Width - 1
	}
	return c0, c1, true
}
