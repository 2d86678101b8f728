/* SPDX-License-Identifier: GPL-2.0-only */
/* Copyright (C) 2026 ijuttt */

package model

import "strings"

// normalize fills canonical fields from aliases used by older exports.
func (d *Dataset) normalize() {
	d.Sequence = strings.ToUpper(strings.Join(strings.Fields(d.Sequence), ""))

	for i := range d.Peptides {
		p := &d.Peptides[i]
		if p.PeptideStart == 0 && p.StartAlias > 0 {
			p.PeptideStart = p.StartAlias
		}
		if p.PeptideEnd == 0 && p.EndAlias > 0 {
			p.PeptideEnd = p.EndAlias
		}
		p.StartAlias, p.EndAlias = 0, 0
	}

	for i := range d.Modifications {
		if d.Modifications[i].Count == 0 {
			d.Modifications[i].Count = 1
		}
	}
}

// Length returns the sequence length in residues.
func (d *Dataset) Length() int {
	if d == nil {
		return 0
	}
	return len(d.Sequence)
}

// GetName returns the dataset name, falling back to the accession.
func (d *Dataset) GetName() string {
	if d.Name != "" {
		return d.Name
	}
	if d.Accession != "" {
		return d.Accession
	}
	return "unnamed"
}

// StructureAt returns the secondary structure code at a 1-based position.
func (d *Dataset) StructureAt(pos int) byte {
	if pos < 1 || pos > len(d.Structure) {
		return '-'
	}
	return d.Structure[pos-1]
}

// ResidueAt returns the residue at a 1-based position, or 0 outside the sequence.
func (d *Dataset) ResidueAt(pos int) byte {
	if pos < 1 || pos > len(d.Sequence) {
		return 0
	}
	return d.Sequence[pos-1]
}

// Degree returns the number of edges touching node id.
func (n *Network) Degree(id string) int {
	deg := 0
	for _, e := range n.Edges {
		if e.Source == id || e.Target == id {
			deg++
		}
	}
	return deg
}
