/* SPDX-License-Identifier: GPL-2.0-only */
/* Copyright (C) 2026 ijuttt */

// Package analysis provides viewer-side computation for dataset tracks.
// This layer sits between the raw model types and presentation, computing
// per-residue series that tracks sample over the visible window.
package analysis

import "github.com/ijuttt/trackview/internal/model"

// Metric defines a pluggable per-residue extractor.
// Implement this interface to add new series without modifying rendering code.
type Metric interface {
	Name() string
	Unit() string
	// Extract returns one value per residue; index 0 is position 1.
	Extract(ds *model.Dataset) []float64
}

// CoverageMetric counts how many peptides cover each residue.
type CoverageMetric struct{}

func (CoverageMetric) Name() string { return "Coverage" }
func (CoverageMetric) Unit() string { return "peptides" }

func (CoverageMetric) Extract(ds *model.Dataset) []float64 {
	n := ds.Length()
	out := make([]float64, n)
	for _, p := range ds.Peptides {
		start, end := p.PeptideStart, p.PeptideEnd
		if start > end {
			start, end = end, start
		}
		for pos := max(start, 1); pos <= min(end, n); pos++ {
			out[pos-1]++
		}
	}
	return out
}

// ModificationMetric sums modification counts per residue.
type ModificationMetric struct{}

func (ModificationMetric) Name() string { return "Modifications" }
func (ModificationMetric) Unit() string { return "sites" }

func (ModificationMetric) Extract(ds *model.Dataset) []float64 {
	n := ds.Length()
	out := make([]float64, n)
	for _, m := range ds.Modifications {
		if m.Position >= 1 && m.Position <= n {
			out[m.Position-1] += float64(m.Count)
		}
	}
	return out
}
