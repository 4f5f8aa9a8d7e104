package main

import (
	"bufio"
	"fmt"
	"net"
	"os"
	"path/filepath"

	"golang.org/x/term"

	"github.com/dshills/collabedit/internal/config"
	"github.com/dshills/collabedit/internal/editop"
	"github.com/dshills/collabedit/internal/engine"
	"github.com/dshills/collabedit/internal/history"
	"github.com/dshills/collabedit/internal/logging"
	"github.com/dshills/collabedit/internal/permissions"
	"github.com/dshills/collabedit/internal/renderer"
	"github.com/dshills/collabedit/internal/session"
)

func runHost(file, user string, debug bool) int {
	cfg, err := config.Load("collabedit.toml")
	if err != nil {
		fmt.Fprintf(os.Stderr, "collabedit: %v\n", err)
		return 1
	}
	logger := newLogger("host", debug)

	text, err := os.ReadFile(file)
	if err != nil && !os.IsNotExist(err) {
		fmt.Fprintf(os.Stderr, "collabedit: reading %s: %v\n", file, err)
		return 1
	}

	perms, err := permissions.Load(filepath.Join(cfg.Host.BaseDir, "permissions"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "collabedit: %v\n", err)
		return 1
	}
	if !perms.CanWrite(user) {
		perms.Set(user, permissions.Read|permissions.Write)
		if err := perms.Save(); err != nil {
			fmt.Fprintf(os.Stderr, "collabedit: %v\n", err)
			return 1
		}
	}

	eng := engine.NewFromText(user, string(text), engine.Now(), logger)

	addr := fmt.Sprintf("%s:%d", cfg.Host.Address, cfg.Host.Port)
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "collabedit: listen %s: %v\n", addr, err)
		return 1
	}

	host := session.NewHost(ln, eng, perms, logger)
	go func() {
		if err := host.Serve(); err != nil {
			logger.Errorf("serve stopped", logging.F("err", err))
		}
	}()

	status := fmt.Sprintf("hosting %s as %s on %s — Ctrl-Z undo, Ctrl-Y redo, Ctrl-C quit", file, user, addr)
	runLocalEditLoop(eng, host.LocalEdit, user, status)

	host.Close()
	return saveHistory(cfg.Host.BaseDir, filepath.Base(file), eng)
}

func saveHistory(baseDir, basename string, eng *engine.Engine) int {
	reconciled, blame := eng.Reconcile()
	paths := history.Paths{BaseDir: baseDir, Basename: basename, SessionStart: eng.SessionStart()}
	if err := history.Save(paths, eng.Lines(), reconciled, blame); err != nil {
		fmt.Fprintf(os.Stderr, "collabedit: saving history: %v\n", err)
		return 1
	}
	return 0
}

func newLogger(prefix string, debug bool) *logging.Logger {
	level := logging.Info
	if debug {
		level = logging.Debug
	}
	return logging.New(os.Stderr, prefix, level)
}

// runLocalEditLoop puts the terminal in raw mode and repeatedly draws
// the engine's current state, reads one keystroke, and applies it
// through apply until the user quits. It is shared by host mode
// (apply = host.LocalEdit) and client mode (apply = a function that
// both sends the command over the wire and mirrors it locally).
func runLocalEditLoop(eng *engine.Engine, apply func(string, editop.Command) error, user, status string) {
	fd := int(os.Stdin.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		// Not an interactive terminal (e.g. piped stdin in a test or
		// CI run): nothing to render or read, fall through.
		return
	}
	defer term.Restore(fd, oldState)

	reader := bufio.NewReader(os.Stdin)
	for {
		snap := eng.Snapshot()
		view := renderer.Render(snap, nil)
		drawFrame(os.Stdout, view, status)

		res, err := readCommand(reader)
		if err != nil || res.quit {
			return
		}
		if !res.applicable {
			continue
		}
		if err := apply(user, res.cmd); err != nil {
			logger := newLogger("input", false)
			logger.Warnf("apply failed", logging.F("err", err))
		}
	}
}
