/* SPDX-License-Identifier: GPL-2.0-only */
/* Copyright (C) 2026 ijuttt */

package app

import (
	"testing"

	"github.com/ijuttt/trackview/internal/coord"
	"github.com/ijuttt/trackview/internal/model"
	"github.com/ijuttt/trackview/internal/viewport"
	"github.com/stretchr/testify/assert"
)

func testDataset() *model.Dataset {
	return &model.Dataset{
		Name:     "demo",
		Sequence: "MPNFSGNWKIIRSENFEELLKVLGVNVMLRKIAVAAASKPAVEIKQEGDT",
		Peptides: []model.Peptide{
			{PeptideStart: 10, PeptideEnd: 25},
			{PeptideStart: 30, PeptideEnd: 42},
		},
	}
}

func TestNewStateIsEmpty(t *testing.T) {
	s := NewState()
	assert.Nil(t, s.Dataset())
	assert.Equal(t, coord.Window{}, s.Viewport().Window())
	assert.True(t, s.Highlight().Span().IsZero())
	assert.Equal(t, -1, s.HighlightedPeptide())
}

func TestStatesDoNotShareServices(t *testing.T) {
	a, b := NewState(), NewState()
	a.Viewport().Update(coord.NewWindow(3, 9), viewport.NewToken("x"))
	assert.Equal(t, coord.Window{}, b.Viewport().Window())
}

func TestSetDatasetResetsView(t *testing.T) {
	s := NewState()
	tok := viewport.NewToken("track")
	s.Viewport().Update(coord.NewWindow(5, 6), tok)
	s.Highlight().Set(coord.Span{Start: 1, End: 2}.AsFeature())

	s.SetDataset("/tmp/demo.json", testDataset())

	assert.Equal(t, "/tmp/demo.json", s.Path())
	assert.Equal(t, coord.NewWindow(1, 50), s.Viewport().Window())
	assert.Equal(t, coord.NewWindow(1, 50), s.Viewport().Finalized())
	assert.Equal(t, tok, s.Viewport().Updater(), "reset is unattributed")
	assert.True(t, s.Highlight().Span().IsZero())
}

func TestSetNilDataset(t *testing.T) {
	s := NewState()
	s.SetDataset("a.json", testDataset())
	s.SetDataset("", nil)

	assert.Nil(t, s.Dataset())
	assert.Equal(t, coord.Window{}, s.Viewport().Window())
}

func TestPeptideLookup(t *testing.T) {
	s := NewState()
	s.SetDataset("a.json", testDataset())

	p, ok := s.Peptide(1)
	assert.True(t, ok)
	assert.Equal(t, 30, p.Start())

	_, ok = s.Peptide(2)
	assert.False(t, ok)

	s.Highlight().Set(p)
	assert.Equal(t, 1, s.HighlightedPeptide())
}
