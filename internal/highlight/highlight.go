/* SPDX-License-Identifier: GPL-2.0-only */
/* Copyright (C) 2026 ijuttt */

// Package highlight keeps the span highlighted across all tracks.
//
// Selections are discrete clicks, so there is no live/finalized split: every
// Set is final as soon as it returns.
package highlight

import (
	"log/slog"

	"github.com/ijuttt/trackview/internal/coord"
	"github.com/ijuttt/trackview/internal/reactive"
)

// Service owns the highlighted span. Create one per session.
type Service struct {
	span *reactive.Value[coord.Span]
}

// New creates a service with nothing highlighted.
func New() *Service {
	return &Service{span: reactive.NewValue(coord.Span{})}
}

// Set highlights the bounds of f exactly as given. Observers run before Set
// returns.
func (s *Service) Set(f coord.Feature) {
	span := coord.SpanOf(f)
	changed := s.span.Set(span)
	slog.Debug("highlight set", "span", span.String(), "changed", changed)
}

// Clear removes the highlight.
func (s *Service) Clear() {
	s.Set(coord.Span{}.AsFeature())
}

// Span returns the highlighted span.
func (s *Service) Span() coord.Span { return s.span.Get() }

// Subscribe runs fn after every change to the span.
func (s *Service) Subscribe(fn func(coord.Span)) (cancel func()) {
	return s.span.Subscribe(fn)
}
