/* SPDX-License-Identifier: GPL-2.0-only */
/* Copyright (C) 2026 ijuttt */

package coord

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWindowHelpers(t *testing.T) {
	tests := []struct {
		name     string
		w        Window
		wantLen  int
		wantNorm Window
		reversed bool
	}{
		{"ordered", NewWindow(10, 20), 11, NewWindow(10, 20), false},
		{"single position", NewWindow(5, 5), 1, NewWindow(5, 5), false},
		{"reversed", NewWindow(50, 10), 41, NewWindow(10, 50), true},
		{"zero default", Window{}, 1, Window{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantLen, tt.w.Len())
			assert.Equal(t, tt.wantNorm, tt.w.Normalized())
			assert.Equal(t, tt.reversed, tt.w.Reversed())
		})
	}
}

func TestNormalizedDoesNotMutate(t *testing.T) {
	w := NewWindow(30, 3)
	_ = w.Normalized()
	assert.Equal(t, NewWindow(30, 3), w)
}

func TestWindowContainsAndOverlaps(t *testing.T) {
	w := NewWindow(100, 200)

	assert.True(t, w.Contains(100))
	assert.True(t, w.Contains(200))
	assert.False(t, w.Contains(201))

	assert.True(t, w.Overlaps(Span{Start: 190, End: 210}.AsFeature()))
	assert.True(t, w.Overlaps(Span{Start: 210, End: 150}.AsFeature()))
	assert.False(t, w.Overlaps(Span{Start: 201, End: 230}.AsFeature()))
}

func TestSpanOf(t *testing.T) {
	s := SpanOf(Span{Start: 10, End: 25}.AsFeature())
	assert.Equal(t, Span{Start: 10, End: 25}, s)
	assert.Equal(t, "(10, 25)", s.String())
	assert.False(t, s.IsZero())
	assert.True(t, Span{}.IsZero())
}

func TestSpanAsFeatureRoundTrips(t *testing.T) {
	for _, sp := range []Span{{}, {Start: 10, End: 25}, {Start: 40, End: 3}, {Start: -5, End: 0}} {
		f := sp.AsFeature()
		assert.Equal(t, sp.Start, f.Start())
		assert.Equal(t, sp.End, f.End())
		assert.Equal(t, sp, SpanOf(f))
	}
}

func TestLenSaturates(t *testing.T) {
	assert.Equal(t, math.MaxInt, NewWindow(math.MinInt, math.MaxInt).Len())
	assert.Equal(t, math.MaxInt, NewWindow(math.MaxInt, -1).Len())
	assert.Equal(t, math.MaxInt, NewWindow(0, math.MaxInt-1).Len())
	assert.Equal(t, math.MaxInt-1, NewWindow(1, math.MaxInt-1).Len())
}

func TestCheck(t *testing.T) {
	require.NoError(t, Check(NewWindow(1, 87), 87))

	err := Check(NewWindow(40, 10), 87)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrReversed)

	err = Check(NewWindow(1, 88), 87)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrOutOfRange)

	// Without a known length only ordering is checked.
	assert.NoError(t, Check(NewWindow(1, 10_000), 0))
}
