/* SPDX-License-Identifier: GPL-2.0-only */
/* Copyright (C) 2026 ijuttt */

// Package app provides the session state shared by every frontend and track.
package app

import (
	"log/slog"
	"sync"

	"github.com/ijuttt/trackview/internal/coord"
	"github.com/ijuttt/trackview/internal/highlight"
	"github.com/ijuttt/trackview/internal/model"
	"github.com/ijuttt/trackview/internal/viewport"
)

// State is created once per run and passed by reference to every component.
// It owns the loaded dataset and the two shared interaction services.
type State struct {
	mu      sync.RWMutex
	dataset *model.Dataset
	path    string

	viewport  *viewport.Service
	highlight *highlight.Service
}

// NewState creates a session with no dataset and fresh services.
func NewState() *State {
	return &State{
		viewport:  viewport.New(),
		highlight: highlight.New(),
	}
}

// Viewport returns the shared viewport service.
func (s *State) Viewport() *viewport.Service { return s.viewport }

// Highlight returns the shared highlight service.
func (s *State) Highlight() *highlight.Service { return s.highlight }

// Dataset returns the loaded dataset (read-only), or nil.
func (s *State) Dataset() *model.Dataset {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.dataset
}

// Path returns the file the dataset was loaded from.
func (s *State) Path() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.path
}

// SetDataset installs ds and resets the view to the whole sequence.
// A nil dataset unloads the session.
func (s *State) SetDataset(path string, ds *model.Dataset) {
	s.mu.Lock()
	s.dataset = ds
	s.path = path
	s.mu.Unlock()

	slog.Info("dataset installed", "path", path, "residues", ds.Length())
	s.ResetView()
}

// ResetView shows the whole sequence and clears the highlight. The write is
// not attributed to any component, so the last updater token is kept.
func (s *State) ResetView() {
	full := coord.Window{}
	if n := s.Dataset().Length(); n > 0 {
		full = coord.NewWindow(1, n)
	}
	s.viewport.Update(full, viewport.NoUpdater)
	s.viewport.Commit()
	s.highlight.Clear()
}

// Peptide returns peptide i of the loaded dataset.
func (s *State) Peptide(i int) (model.Peptide, bool) {
	ds := s.Dataset()
	if ds == nil || i < 0 || i >= len(ds.Peptides) {
		return model.Peptide{}, false
	}
	return ds.Peptides[i], true
}

// HighlightedPeptide returns the index of the peptide matching the current
// highlight, or -1.
func (s *State) HighlightedPeptide() int {
	ds := s.Dataset()
	if ds == nil {
		return -1
	}
	span := s.highlight.Span()
	if span.IsZero() {
		return -1
	}
	for i, p := range ds.Peptides {
		if coord.SpanOf(p) == span {
			return i
		}
	}
	return -1
}
