/* SPDX-License-Identifier: GPL-2.0-only */
/* Copyright (C) 2026 ijuttt */

// Package coord defines positions and ranges on the shared residue axis.
//
// Values in this package are plain data. Nothing here reorders or clamps a
// range on its own; callers that want a well-formed range ask for one
// explicitly with Normalized or Check.
package coord

import (
	"errors"
	"fmt"
	"math"
)

// Coordinate is a position on the residue axis (1-based for real sequences).
type Coordinate = int

var (
	ErrReversed   = errors.New("range start is after end")
	ErrOutOfRange = errors.New("range lies outside the sequence")
)

// Feature is anything with a start and end on the residue axis, e.g. a peptide.
type Feature interface {
	Start() Coordinate
	End() Coordinate
}

// -----------------------------------------------------------------------------
// Window
// -----------------------------------------------------------------------------

// Window is the visible region of the sequence.
type Window struct {
	Start Coordinate
	End   Coordinate
}

// NewWindow returns the window [start, end] exactly as given.
func NewWindow(start, end Coordinate) Window {
	return Window{Start: start, End: end}
}

// IsZero reports whether the window is the [0, 0] default.
func (w Window) IsZero() bool { return w.Start == 0 && w.End == 0 }

// Reversed reports whether start lies after end.
func (w Window) Reversed() bool { return w.Start > w.End }

// Len returns the number of positions covered, inclusive of both bounds.
// Reversed windows report the length of their normalized form. Windows wider
// than math.MaxInt saturate at math.MaxInt.
func (w Window) Len() int {
	n := w.Normalized()
	d := n.End - n.Start
	if d < 0 || d == math.MaxInt {
		return math.MaxInt
	}
	return d + 1
}

// Normalized returns a copy with the bounds in ascending order.
func (w Window) Normalized() Window {
	if w.Reversed() {
		return Window{Start: w.End, End: w.Start}
	}
	return w
}

// Contains reports whether pos falls inside the normalized window.
func (w Window) Contains(pos Coordinate) bool {
	n := w.Normalized()
	return pos >= n.Start && pos <= n.End
}

// Overlaps reports whether f shares at least one position with the window.
func (w Window) Overlaps(f Feature) bool {
	n := w.Normalized()
	s := Span{Start: f.Start(), End: f.End()}.Normalized()
	return s.Start <= n.End && s.End >= n.Start
}

func (w Window) String() string {
	return fmt.Sprintf("[%d, %d]", w.Start, w.End)
}

// -----------------------------------------------------------------------------
// Span
// -----------------------------------------------------------------------------

// Span is a highlighted range, typically a selected peptide.
type Span struct {
	Start Coordinate
	End   Coordinate
}

// SpanOf copies the bounds of f.
func SpanOf(f Feature) Span {
	return Span{Start: f.Start(), End: f.End()}
}

// IsZero reports whether nothing is highlighted.
func (s Span) IsZero() bool { return s.Start == 0 && s.End == 0 }

// Normalized returns a copy with the bounds in ascending order.
func (s Span) Normalized() Span {
	if s.Start > s.End {
		return Span{Start: s.End, End: s.Start}
	}
	return s
}

// Contains reports whether pos falls inside the normalized span.
func (s Span) Contains(pos Coordinate) bool {
	n := s.Normalized()
	return pos >= n.Start && pos <= n.End
}

func (s Span) String() string {
	return fmt.Sprintf("(%d, %d)", s.Start, s.End)
}

type spanFeature struct{ s Span }

func (f spanFeature) Start() Coordinate { return f.s.Start }
func (f spanFeature) End() Coordinate   { return f.s.End }

// AsFeature wraps the span so it can be passed where a Feature is expected.
func (s Span) AsFeature() Feature { return spanFeature{s} }

// -----------------------------------------------------------------------------
// Validation
// -----------------------------------------------------------------------------

// Check reports whether w is a well-formed window for a sequence of the given
// length. It is advisory: stored windows are never rejected.
func Check(w Window, length int) error {
	if w.Reversed() {
		return fmt.Errorf("window %s: %w", w, ErrReversed)
	}
	if length > 0 && (w.Start < 1 || w.End > length) {
		return fmt.Errorf("window %s for length %d: %w", w, length, ErrOutOfRange)
	}
	return nil
}
