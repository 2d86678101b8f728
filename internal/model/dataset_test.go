/* SPDX-License-Identifier: GPL-2.0-only */
/* Copyright (C) 2026 ijuttt */

package model

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/ijuttt/trackview/internal/coord"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleDataset = `{
	"schema_version": 1,
	"name": "CRABP2",
	"accession": "P29373",
	"sequence": "mpnfsgnwki irsenfeell kvlgvnvmlr kiavaaaskp\n avEIKQEGDT",
	"peptides": [
		{"peptide_start": 10, "peptide_end": 25, "sequence": "KIIRSENFEELLKVLG", "score": 41.5},
		{"start": 30, "end": 42}
	],
	"modifications": [
		{"position": 5, "name": "Phospho", "residue": "S"},
		{"position": 12, "name": "Acetyl", "residue": "R", "count": 3}
	],
	"structure": "CCCCHHHHHHHHCCCEEEEE",
	"network": {
		"nodes": [
			{"id": "1", "label": "KIIRSENFEELLK", "start": 10, "end": 25},
			{"id": "2", "label": "RARA"}
		],
		"edges": [{"source": "1", "target": "2", "size": 2}]
	}
}`

func TestParseDataset(t *testing.T) {
	ds, err := ParseDataset([]byte(sampleDataset))
	require.NoError(t, err)

	assert.Equal(t, "CRABP2", ds.GetName())
	assert.Equal(t, "MPNFSGNWKIIRSENFEELLKVLGVNVMLRKIAVAAASKPAVEIKQEGDT", ds.Sequence)
	assert.Equal(t, 50, ds.Length())
}

func TestPeptideAliases(t *testing.T) {
	ds, err := ParseDataset([]byte(sampleDataset))
	require.NoError(t, err)
	require.Len(t, ds.Peptides, 2)

	assert.Equal(t, coord.Span{Start: 10, End: 25}, coord.SpanOf(ds.Peptides[0]))
	assert.Equal(t, coord.Span{Start: 30, End: 42}, coord.SpanOf(ds.Peptides[1]))
	assert.Zero(t, ds.Peptides[1].StartAlias)
}

func TestModificationCountDefault(t *testing.T) {
	ds, err := ParseDataset([]byte(sampleDataset))
	require.NoError(t, err)

	assert.Equal(t, 1, ds.Modifications[0].Count)
	assert.Equal(t, 3, ds.Modifications[1].Count)
}

func TestNetworkHelpers(t *testing.T) {
	ds, err := ParseDataset([]byte(sampleDataset))
	require.NoError(t, err)

	assert.True(t, ds.Network.Nodes[0].Anchored())
	assert.False(t, ds.Network.Nodes[1].Anchored())
	assert.Equal(t, 1, ds.Network.Degree("2"))
	assert.Equal(t, 0, ds.Network.Degree("3"))
}

func TestPositionLookups(t *testing.T) {
	ds, err := ParseDataset([]byte(sampleDataset))
	require.NoError(t, err)

	assert.Equal(t, byte('M'), ds.ResidueAt(1))
	assert.Equal(t, byte(0), ds.ResidueAt(0))
	assert.Equal(t, byte(0), ds.ResidueAt(51))
	assert.Equal(t, byte('H'), ds.StructureAt(5))
	assert.Equal(t, byte('-'), ds.StructureAt(40))
}

func TestGetNameFallbacks(t *testing.T) {
	assert.Equal(t, "P29373", (&Dataset{Accession: "P29373"}).GetName())
	assert.Equal(t, "unnamed", (&Dataset{}).GetName())
	assert.Equal(t, 0, (*Dataset)(nil).Length())
}

func TestLoadDataset(t *testing.T) {
	path := filepath.Join(t.TempDir(), "crabp2.json")
	require.NoError(t, os.WriteFile(path, []byte(sampleDataset), 0o644))

	ds, err := LoadDataset(path)
	require.NoError(t, err)
	assert.Len(t, ds.Peptides, 2)
}

func TestLoadDatasetErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := LoadDataset(filepath.Join(dir, "missing.json"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	bad := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte("{not json"), 0o644))
	_, err = LoadDataset(bad)
	assert.ErrorContains(t, err, "cannot parse JSON")
}
