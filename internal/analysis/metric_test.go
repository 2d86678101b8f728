/* SPDX-License-Identifier: GPL-2.0-only */
/* Copyright (C) 2026 ijuttt */

package analysis

import (
	"testing"

	"github.com/ijuttt/trackview/internal/coord"
	"github.com/ijuttt/trackview/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testDataset() *model.Dataset {
	return &model.Dataset{
		Sequence: "ACDEFGHIKL", // 10 residues
		Peptides: []model.Peptide{
			{PeptideStart: 2, PeptideEnd: 5},
			{PeptideStart: 4, PeptideEnd: 6},
			{PeptideStart: 9, PeptideEnd: 14}, // runs past the end
		},
		Modifications: []model.Modification{
			{Position: 4, Name: "Phospho", Count: 2},
			{Position: 4, Name: "Acetyl", Count: 1},
			{Position: 99, Name: "Bogus", Count: 1},
		},
	}
}

func TestCoverageMetricExtract(t *testing.T) {
	m := CoverageMetric{}
	assert.Equal(t, "Coverage", m.Name())

	got := m.Extract(testDataset())
	assert.Equal(t, []float64{0, 1, 1, 2, 2, 1, 0, 0, 1, 1}, got)
}

func TestModificationMetricExtract(t *testing.T) {
	got := ModificationMetric{}.Extract(testDataset())
	assert.Equal(t, []float64{0, 0, 0, 3, 0, 0, 0, 0, 0, 0}, got)
}

func TestBuildProfileWindow(t *testing.T) {
	p := BuildProfile(testDataset(), CoverageMetric{}, coord.NewWindow(3, 6), coord.Span{Start: 5, End: 8})

	require.Len(t, p.Points, 4)
	assert.Equal(t, 3, p.Points[0].Position)
	assert.Equal(t, []float64{1, 2, 2, 1}, p.Values())
	assert.Equal(t, 1.0, p.MinValue)
	assert.Equal(t, 2.0, p.MaxValue)
	assert.Equal(t, 2, p.HighlightIndex)
	assert.True(t, p.Points[3].Highlighted)
}

func TestBuildProfileZeroWindowIsWholeSequence(t *testing.T) {
	p := BuildProfile(testDataset(), CoverageMetric{}, coord.Window{}, coord.Span{})
	assert.Len(t, p.Points, 10)
	assert.Equal(t, -1, p.HighlightIndex)
}

func TestBuildProfileReversedAndClipped(t *testing.T) {
	p := BuildProfile(testDataset(), CoverageMetric{}, coord.NewWindow(40, 8), coord.Span{})
	require.Len(t, p.Points, 3)
	assert.Equal(t, 8, p.Points[0].Position)
	assert.Equal(t, 10, p.Points[2].Position)
}

func TestBuildProfileOutsideSequence(t *testing.T) {
	p := BuildProfile(testDataset(), CoverageMetric{}, coord.NewWindow(20, 30), coord.Span{})
	assert.Empty(t, p.Points)
	assert.Nil(t, BuildProfile(nil, CoverageMetric{}, coord.Window{}, coord.Span{}).Points)
}

func TestCoverage(t *testing.T) {
	assert.InDelta(t, 0.7, Coverage(testDataset()), 1e-9)
	assert.Equal(t, 0.0, Coverage(&model.Dataset{}))
}

func TestDefaultMetrics(t *testing.T) {
	names := []string{}
	for _, m := range DefaultMetrics() {
		names = append(names, m.Name())
	}
	assert.Equal(t, []string{"Coverage", "Modifications"}, names)
}
