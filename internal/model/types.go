/* SPDX-License-Identifier: GPL-2.0-only */
/* Copyright (C) 2026 ijuttt */

// Package model provides data types for parsing trackview dataset files.
package model

import "github.com/ijuttt/trackview/internal/coord"

// Dataset represents the top-level structure of a dataset JSON file.
type Dataset struct {
	SchemaVersion int            `json:"schema_version"`
	Name          string         `json:"name"`
	Accession     string         `json:"accession,omitempty"`
	Sequence      string         `json:"sequence"`
	Peptides      []Peptide      `json:"peptides"`
	Modifications []Modification `json:"modifications"`
	Structure     string         `json:"structure,omitempty"` // one char per residue: H, E, C or -
	Network       Network        `json:"network"`
}

// Peptide is an identified peptide mapped onto the sequence (1-based, inclusive).
type Peptide struct {
	PeptideStart int     `json:"peptide_start"`
	PeptideEnd   int     `json:"peptide_end"`
	Sequence     string  `json:"sequence,omitempty"`
	Score        float64 `json:"score,omitempty"`
	// Short-form aliases accepted from older exports
	StartAlias int `json:"start,omitempty"`
	EndAlias   int `json:"end,omitempty"`
}

// Modification is a post-translational modification site.
type Modification struct {
	Position int    `json:"position"`
	Name     string `json:"name"`
	Residue  string `json:"residue,omitempty"`
	Count    int    `json:"count,omitempty"`
}

// Network is a peptide/protein interaction graph.
type Network struct {
	Nodes []Node `json:"nodes"`
	Edges []Edge `json:"edges"`
}

// Node is a graph vertex. Start and End anchor it to the sequence when known.
type Node struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	Size  int    `json:"size,omitempty"`
	Begin int    `json:"start,omitempty"`
	Stop  int    `json:"end,omitempty"`
}

// Edge is an undirected link between two nodes.
type Edge struct {
	Source string `json:"source"`
	Target string `json:"target"`
	Size   int    `json:"size,omitempty"`
}

// Start implements coord.Feature.
func (p Peptide) Start() coord.Coordinate { return p.PeptideStart }

// End implements coord.Feature.
func (p Peptide) End() coord.Coordinate { return p.PeptideEnd }

// Start implements coord.Feature.
func (n Node) Start() coord.Coordinate { return n.Begin }

// End implements coord.Feature.
func (n Node) End() coord.Coordinate { return n.Stop }

// Anchored reports whether the node maps onto the sequence.
func (n Node) Anchored() bool { return n.Begin > 0 && n.Stop > 0 }
