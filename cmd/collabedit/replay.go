package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/dshills/collabedit/internal/config"
	"github.com/dshills/collabedit/internal/engine"
	"github.com/dshills/collabedit/internal/history"
	"github.com/dshills/collabedit/internal/renderer"
)

// runListHistory implements "-CHH FILE": list every past session
// recorded for a file, oldest first, indexed the way -CH/-B expect.
func runListHistory(file string) int {
	cfg, err := config.Load("collabedit.toml")
	if err != nil {
		fmt.Fprintf(os.Stderr, "collabedit: %v\n", err)
		return 1
	}
	starts, err := history.ListSessions(cfg.Host.BaseDir, filepath.Base(file))
	if err != nil {
		fmt.Fprintf(os.Stderr, "collabedit: %v\n", err)
		return 1
	}
	if len(starts) == 0 {
		fmt.Printf("no history recorded for %s\n", file)
		return 0
	}
	for i, start := range starts {
		fmt.Printf("%d  %s\n", i, history.SessionTimestamp(start))
	}
	return 0
}

// loadSessionPaths resolves the IDX argument shared by -CH and -B
// against the ordered session listing -CHH reports.
func loadSessionPaths(baseDir, file, idxArg string) (history.Paths, error) {
	idx, err := strconv.Atoi(idxArg)
	if err != nil {
		return history.Paths{}, fmt.Errorf("invalid history index %q", idxArg)
	}
	basename := filepath.Base(file)
	starts, err := history.ListSessions(baseDir, basename)
	if err != nil {
		return history.Paths{}, err
	}
	if idx < 0 || idx >= len(starts) {
		return history.Paths{}, fmt.Errorf("no session %d for %s", idx, file)
	}
	return history.Paths{BaseDir: baseDir, Basename: basename, SessionStart: starts[idx]}, nil
}

// runReplay implements "-CH FILE IDX": a read-only view of the
// document as it stood at the close of the session history index IDX
// names (per -CHH's listing).
func runReplay(file, idxArg string) int {
	cfg, err := config.Load("collabedit.toml")
	if err != nil {
		fmt.Fprintf(os.Stderr, "collabedit: %v\n", err)
		return 1
	}
	paths, err := loadSessionPaths(cfg.Host.BaseDir, file, idxArg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "collabedit: %v\n", err)
		return 1
	}

	lines, err := history.LoadFinal(paths)
	if err != nil {
		fmt.Fprintf(os.Stderr, "collabedit: %v\n", err)
		return 1
	}

	view := renderer.Render(engine.Snapshot{Lines: lines}, nil)
	drawFrame(os.Stdout, view, fmt.Sprintf("replay: %s session %s (read-only)", file, idxArg))
	return 0
}
