/* SPDX-License-Identifier: GPL-2.0-only */
/* Copyright (C) 2026 ijuttt */

// trackview is a terminal viewer for protein sequence datasets with linked,
// zoomable tracks.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/ijuttt/trackview/internal/app"
	"github.com/ijuttt/trackview/internal/config"
	"github.com/ijuttt/trackview/internal/logging"
	"github.com/ijuttt/trackview/internal/model"
	"github.com/ijuttt/trackview/internal/ui"
	"github.com/ijuttt/trackview/internal/ui/bubbletea"
	"github.com/ijuttt/trackview/internal/ui/gocui"
)

func main() {
	classic := false
	path := ""
	for _, arg := range os.Args[1:] {
		switch arg {
		case "-h", "--help":
			printUsage()
			os.Exit(0)
		case "--classic":
			classic = true
		default:
			path = arg
		}
	}

	if err := run(classic, path); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// run owns every resource, so its deferred closes have finished (and the
// terminal is restored) by the time main decides the exit code.
func run(classic bool, path string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("configuration: %w", err)
	}

	logCloser, err := logging.Init(cfg.LogFile, cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		return fmt.Errorf("logging: %w", err)
	}
	defer logCloser.Close()

	state := app.NewState()

	var frontend ui.UI
	if classic {
		frontend, err = classicUI(cfg, state, path)
	} else {
		frontend = bubbletea.NewProgram(cfg, path)
	}
	if err != nil {
		slog.Error("startup failed", "error", err)
		return err
	}
	defer frontend.Close()

	slog.Info("trackview starting", "classic", classic, "path", path)
	if err := frontend.Run(state); err != nil {
		slog.Error("ui exited", "error", err)
		return fmt.Errorf("running program: %w", err)
	}
	return nil
}

// classicUI loads the dataset up front, since the gocui frontend has no file
// browser, and returns the adapter.
func classicUI(cfg *config.Config, state *app.State, path string) (ui.UI, error) {
	if path == "" {
		latest, err := config.DiscoverLatestDataset(config.GetDataPaths(cfg.DataDir))
		if err != nil {
			return nil, err
		}
		path = latest
	}

	ds, err := model.LoadDataset(path)
	if err != nil {
		return nil, err
	}
	state.SetDataset(path, ds)

	return gocui.New(cfg)
}

// printUsage displays usage information.
func printUsage() {
	fmt.Fprintf(os.Stderr, "Usage: %s [options] [dataset.json]\n\n", os.Args[0])
	fmt.Fprintln(os.Stderr, "Trackview - linked sequence, peptide and structure tracks in the terminal.")
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "Options:")
	fmt.Fprintln(os.Stderr, "  -h, --help     Show this help message")
	fmt.Fprintln(os.Stderr, "  --classic      Use the gocui frontend (keyboard only)")
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "Dataset search paths (searched in order):")
	for i, p := range config.GetDataPaths(os.Getenv(config.EnvDataDir)) {
		fmt.Fprintf(os.Stderr, "  %d. %s\n", i+1, p)
	}
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "Environment variables:")
	fmt.Fprintf(os.Stderr, "  %s      Override the data directory\n", config.EnvDataDir)
	fmt.Fprintln(os.Stderr, "  TRACKVIEW_LOG_FILE      Write logs to this file")
	fmt.Fprintln(os.Stderr, "  TRACKVIEW_LOG_LEVEL     debug, info, warn or error")
	fmt.Fprintln(os.Stderr, "  TRACKVIEW_LOG_FORMAT    text or json")
	fmt.Fprintln(os.Stderr, "  TRACKVIEW_ZOOM_FACTOR   Window change per zoom step (default 2)")
	fmt.Fprintln(os.Stderr, "  TRACKVIEW_PAN_FRACTION  Share of the window moved per pan step (default 0.25)")
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "Keybindings:")
	fmt.Fprintln(os.Stderr, "  Tab          Switch between panels")
	fmt.Fprintln(os.Stderr, "  drag         Brush a window on any track")
	fmt.Fprintln(os.Stderr, "  click        Highlight the feature under the pointer")
	fmt.Fprintln(os.Stderr, "  + / -        Zoom in / out")
	fmt.Fprintln(os.Stderr, "  h / l        Pan (tracks panel)")
	fmt.Fprintln(os.Stderr, "  ] / [        Next / previous track")
	fmt.Fprintln(os.Stderr, "  0            Reset the view")
	fmt.Fprintln(os.Stderr, "  x            Clear the highlight")
	fmt.Fprintln(os.Stderr, "  Enter        Load dataset / select peptide")
	fmt.Fprintln(os.Stderr, "  q            Quit")
}
