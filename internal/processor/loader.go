/* SPDX-License-Identifier: GPL-2.0-only */
/* Copyright (C) 2026 ijuttt */

// Package processor provides async dataset loading for the TUI.
package processor

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/ijuttt/trackview/internal/model"
)

// -----------------------------------------------------------------------------
// Messages
// -----------------------------------------------------------------------------

// LoadResultMsg is sent when a dataset file has been loaded.
type LoadResultMsg struct {
	Path    string
	Dataset *model.Dataset
	Err     error
}

// FileListMsg is sent when the file list has been refreshed.
type FileListMsg struct {
	Files []FileInfo
	Err   error
}

// -----------------------------------------------------------------------------
// Commands
// -----------------------------------------------------------------------------

// LoadDatasetCmd creates a command to load a dataset file asynchronously.
func LoadDatasetCmd(path string) tea.Cmd {
	return func() tea.Msg {
		ds, err := model.LoadDataset(path)
		return LoadResultMsg{
			Path:    path,
			Dataset: ds,
			Err:     err,
		}
	}
}

// RefreshFilesCmd creates a command to refresh the file list.
func RefreshFilesCmd(paths []string, extension string) tea.Cmd {
	return func() tea.Msg {
		var allFiles []FileInfo
		for _, dir := range paths {
			files, err := ListFiles(dir, extension)
			if err != nil {
				continue
			}
			allFiles = append(allFiles, files...)
		}
		return FileListMsg{Files: allFiles}
	}
}
