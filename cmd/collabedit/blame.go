package main

import (
	"fmt"
	"os"

	"github.com/dshills/collabedit/internal/config"
	"github.com/dshills/collabedit/internal/engine"
	"github.com/dshills/collabedit/internal/history"
	"github.com/dshills/collabedit/internal/renderer"
)

// runBlame implements "-B FILE IDX": a read-only view of the session
// history index IDX names, with every line colored by the author who
// last touched it.
func runBlame(file, idxArg string) int {
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
	blame, err := history.LoadBlame(cfg.Host.BaseDir, paths.Basename, paths.SessionStart, sessionOwner(paths), len(lines))
	if err != nil {
		fmt.Fprintf(os.Stderr, "collabedit: %v\n", err)
		return 1
	}

	view := renderer.Render(engine.Snapshot{Lines: lines}, blame)
	drawFrame(os.Stdout, view, fmt.Sprintf("blame: %s session %s (read-only)", file, idxArg))
	return 0
}

// sessionOwner best-effort resolves the hosting user of a persisted
// session for the blame-bootstrap fallback: the persisted artifacts
// (spec §6) never record the owner directly, so this reads the
// reconciled log and takes the earliest frame's author, the session's
// first recorded edit. An unreadable or empty log yields "" (no author
// to bootstrap with).
func sessionOwner(paths history.Paths) string {
	log, err := history.LoadLog(paths)
	if err != nil || len(log) == 0 {
		return ""
	}
	return log[0].Author
}
