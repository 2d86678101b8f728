/* SPDX-License-Identifier: GPL-2.0-only */
/* Copyright (C) 2026 ijuttt */

// Package viewport keeps the zoom window shared by every track.
//
// The live window changes continuously while a user drags; the finalized
// window only changes when a gesture ends and someone calls Commit. Each live
// write records which component made it, so observers can recognise their
// own writes coming back to them.
//
// Consumers that both observe and write the window must not write from their
// observer. An observer that sees its own token returns early; one that sees
// another token adopts the window and returns. Two observers that write back
// unconditionally will keep overwriting each other's token forever.
package viewport

import (
	"log/slog"

	"github.com/google/uuid"
	"github.com/ijuttt/trackview/internal/coord"
	"github.com/ijuttt/trackview/internal/reactive"
)

// -----------------------------------------------------------------------------
// Updater Tokens
// -----------------------------------------------------------------------------

// Token identifies the component behind a live window write. It is only used
// to recognise echoes, never for access control.
type Token struct {
	id    uuid.UUID
	label string
}

// NoUpdater attributes a write to nobody. Update keeps the previously stored
// token when given NoUpdater.
var NoUpdater = Token{}

// NewToken returns a fresh token. label only shows up in logs.
func NewToken(label string) Token {
	return Token{id: uuid.New(), label: label}
}

// IsZero reports whether t is NoUpdater.
func (t Token) IsZero() bool { return t.id == uuid.Nil }

// Label returns the human-readable name given to NewToken.
func (t Token) Label() string { return t.label }

func (t Token) String() string {
	if t.IsZero() {
		return "none"
	}
	if t.label != "" {
		return t.label + "/" + t.id.String()[:8]
	}
	return t.id.String()
}

// -----------------------------------------------------------------------------
// Live Record
// -----------------------------------------------------------------------------

// Live is the live window together with the token of whoever last wrote it.
// Both fields change in one step, so an observer never sees one without the
// other.
type Live struct {
	Window  coord.Window
	Updater Token
}

// IsEcho reports whether l was written by self. It is the guard every track
// runs at the top of its observer.
func IsEcho(l Live, self Token) bool {
	return !self.IsZero() && l.Updater == self
}

// -----------------------------------------------------------------------------
// Service
// -----------------------------------------------------------------------------

// Service owns the live window, its updater token and the finalized window.
// Create one per session and hand the pointer to every track.
type Service struct {
	live      *reactive.Value[Live]
	finalized *reactive.Value[coord.Window]
}

// New creates a service with a [0, 0] live window, no updater and a [0, 0]
// finalized window.
func New() *Service {
	return &Service{
		live:      reactive.NewValue(Live{}),
		finalized: reactive.NewValue(coord.Window{}),
	}
}

// Update stores w as the live window. The bounds are stored exactly as given,
// reversed or not. When updater is not NoUpdater it replaces the stored token;
// otherwise the previous token stays. Observers run before Update returns.
//
// An unattributed write keeps the last updater's token, so that updater's
// echo guard skips it. It only reaches that updater through a later Commit.
func (s *Service) Update(w coord.Window, updater Token) {
	changed := s.live.Update(func(cur Live) Live {
		next := Live{Window: w, Updater: cur.Updater}
		if !updater.IsZero() {
			next.Updater = updater
		}
		return next
	})
	slog.Debug("viewport updated",
		"window", w.String(),
		"updater", updater.String(),
		"changed", changed)
}

// Commit copies the live window into the finalized window. Calling it again
// without an Update in between changes nothing and notifies nobody.
func (s *Service) Commit() {
	w := s.live.Get().Window
	changed := s.finalized.Set(w)
	slog.Debug("viewport committed", "window", w.String(), "changed", changed)
}

// Live returns the live window and its updater as one snapshot.
func (s *Service) Live() Live { return s.live.Get() }

// Window returns the live window.
func (s *Service) Window() coord.Window { return s.live.Get().Window }

// Updater returns the token of the last attributed write.
func (s *Service) Updater() Token { return s.live.Get().Updater }

// Finalized returns the last committed window.
func (s *Service) Finalized() coord.Window { return s.finalized.Get() }

// Subscribe runs fn after every change to the live record.
func (s *Service) Subscribe(fn func(Live)) (cancel func()) {
	return s.live.Subscribe(fn)
}

// SubscribeFinalized runs fn after every change to the finalized window.
func (s *Service) SubscribeFinalized(fn func(coord.Window)) (cancel func()) {
	return s.finalized.Subscribe(fn)
}
