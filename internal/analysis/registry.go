package analysis

// DefaultMetrics returns the standard set of per-residue metrics.
func DefaultMetrics() []Metric {
	return []Metric{
		CoverageMetric{},
		ModificationMetric{},
	}
}
