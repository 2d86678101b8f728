/* SPDX-License-Identifier: GPL-2.0-only */
/* Copyright (C) 2026 ijuttt */

package model

import (
	"encoding/json"
	"fmt"
	"os"
)

// MaxFileSize is the maximum allowed dataset file size (16 MiB).
const MaxFileSize = 16 * 1024 * 1024

// LoadDataset reads and parses a dataset JSON file.
func LoadDataset(path string) (*Dataset, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("cannot stat %s: %w", path, err)
	}

	if info.Size() > MaxFileSize {
		return nil, fmt.Errorf("file %s exceeds maximum size (%d bytes)", path, MaxFileSize)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cannot read %s: %w", path, err)
	}

	return ParseDataset(data)
}

// ParseDataset decodes dataset JSON and normalizes legacy fields.
func ParseDataset(data []byte) (*Dataset, error) {
	var ds Dataset
	if err := json.Unmarshal(data, &ds); err != nil {
		return nil, fmt.Errorf("cannot parse JSON: %w", err)
	}

	ds.normalize()
	return &ds, nil
}
