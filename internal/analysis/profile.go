package analysis

import (
	"github.com/ijuttt/trackview/internal/coord"
	"github.com/ijuttt/trackview/internal/model"
)

// Point is a single residue value in a profile.
type Point struct {
	Position    coord.Coordinate
	Value       float64
	Highlighted bool // True if the residue lies in the highlighted span
}

// Profile is a metric sampled over a window.
type Profile struct {
	MetricName string
	MetricUnit string
	Points     []Point
	// HighlightIndex is the first highlighted point, or -1.
	HighlightIndex int
	MinValue       float64
	MaxValue       float64
}

// Values returns the bare values, for widgets that only need the series.
func (p Profile) Values() []float64 {
	out := make([]float64, len(p.Points))
	for i, pt := range p.Points {
		out[i] = pt.Value
	}
	return out
}

// BuildProfile samples metric over w, clipped to the sequence. Reversed
// windows are read in ascending order; a zero window means the whole sequence.
func BuildProfile(ds *model.Dataset, metric Metric, w coord.Window, hl coord.Span) Profile {
	if ds == nil || ds.Length() == 0 {
		return Profile{HighlightIndex: -1}
	}

	values := metric.Extract(ds)
	if w.IsZero() {
		w = coord.NewWindow(1, ds.Length())
	}
	w = w.Normalized()
	start, end := max(w.Start, 1), min(w.End, ds.Length())

	p := Profile{
		MetricName:     metric.Name(),
		MetricUnit:     metric.Unit(),
		HighlightIndex: -1,
	}
	if start > end {
		return p
	}

	p.Points = make([]Point, 0, end-start+1)
	p.MinValue, p.MaxValue = values[start-1], values[start-1]

	for pos := start; pos <= end; pos++ {
		val := values[pos-1]
		if val < p.MinValue {
			p.MinValue = val
		}
		if val > p.MaxValue {
			p.MaxValue = val
		}

		lit := !hl.IsZero() && hl.Contains(pos)
		if lit && p.HighlightIndex < 0 {
			p.HighlightIndex = len(p.Points)
		}
		p.Points = append(p.Points, Point{Position: pos, Value: val, Highlighted: lit})
	}

	return p
}

// Coverage returns the share of residues covered by at least one peptide.
func Coverage(ds *model.Dataset) float64 {
	n := ds.Length()
	if n == 0 {
		return 0
	}
	covered := 0
	for _, v := range (CoverageMetric{}).Extract(ds) {
		if v > 0 {
			covered++
		}
	}
	return float64(covered) / float64(n)
}
