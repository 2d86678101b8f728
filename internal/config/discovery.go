/* SPDX-License-Identifier: GPL-2.0-only */
/* Copyright (C) 2026 ijuttt */

package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"
)

// -----------------------------------------------------------------------------
// Dataset Discovery
// -----------------------------------------------------------------------------

// ErrNoDatasets is returned when no dataset file exists in any search path.
var ErrNoDatasets = errors.New("no dataset files found")

// DiscoverLatestDataset searches the given paths for the most recent dataset.
// Returns the path to the newest .json file found, or an error if none exist.
func DiscoverLatestDataset(dataPaths []string) (string, error) {
	var candidates []fileCandidate

	for _, dir := range dataPaths {
		files, err := findDatasetFiles(dir)
		if err != nil {
			// Directory might not exist; continue searching
			continue
		}
		candidates = append(candidates, files...)
	}

	if len(candidates) == 0 {
		return "", fmt.Errorf("%w in paths: %v", ErrNoDatasets, dataPaths)
	}

	// Sort by modification time (newest first)
	sort.Slice(candidates, func(i, j int) bool {
		return candidates[i].modTime.After(candidates[j].modTime)
	})

	return candidates[0].path, nil
}

// fileCandidate represents a discovered dataset file with its metadata.
type fileCandidate struct {
	path    string
	modTime time.Time
}

// findDatasetFiles returns all .json files in the given directory.
func findDatasetFiles(dir string) ([]fileCandidate, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%s is not a directory", dir)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var candidates []fileCandidate
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		if filepath.Ext(entry.Name()) != DatasetFileExtension {
			continue
		}

		fullPath := filepath.Join(dir, entry.Name())
		fileInfo, err := entry.Info()
		if err != nil {
			continue
		}

		candidates = append(candidates, fileCandidate{
			path:    fullPath,
			modTime: fileInfo.ModTime(),
		})
	}

	return candidates, nil
}
