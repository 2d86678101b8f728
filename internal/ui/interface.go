/* SPDX-License-Identifier: GPL-2.0-only */
/* Copyright (C) 2026 ijuttt */

// Package ui defines the interface every trackview frontend implements.
package ui

import "github.com/ijuttt/trackview/internal/app"

// UI abstracts the terminal UI implementation.
// Both frontends drive the same session, so tracks in either stay linked.
type UI interface {
	// Run starts the UI main loop with the given session state.
	Run(state *app.State) error
	// Close releases UI resources.
	Close()
}
