package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/dshills/collabedit/internal/config"
	"github.com/dshills/collabedit/internal/permissions"
)

func loadPermissions() (*permissions.Table, string, error) {
	cfg, err := config.Load("collabedit.toml")
	if err != nil {
		return nil, "", err
	}
	path := filepath.Join(cfg.Host.BaseDir, "permissions")
	tbl, err := permissions.Load(path)
	return tbl, path, err
}

// runPermission implements "-P USER ±rights" (spec §6): a leading '+'
// adds the given rights to any the user already holds, a leading '-'
// revokes them, dropping the user entirely once no rights remain.
func runPermission(user, rights string) int {
	tbl, _, err := loadPermissions()
	if err != nil {
		fmt.Fprintf(os.Stderr, "collabedit: %v\n", err)
		return 1
	}

	if len(rights) < 1 || (rights[0] != '+' && rights[0] != '-') {
		fmt.Fprintln(os.Stderr, "collabedit: rights must be prefixed with + or -")
		return 1
	}
	sign, body := rights[0], strings.TrimSpace(rights[1:])
	delta := permissions.ParseRight(body)
	if delta == permissions.None {
		fmt.Fprintf(os.Stderr, "collabedit: unrecognized rights %q (want r or rw)\n", body)
		return 1
	}

	if sign == '+' {
		tbl.Set(user, tbl.Right(user)|delta)
	} else {
		remaining := tbl.Right(user) &^ delta
		if remaining == permissions.None {
			tbl.Remove(user)
		} else {
			tbl.Set(user, remaining)
		}
	}

	if err := tbl.Save(); err != nil {
		fmt.Fprintf(os.Stderr, "collabedit: %v\n", err)
		return 1
	}
	return 0
}

// runListPermissions implements "-Pl": a columnar listing of every
// entry in the permissions file.
func runListPermissions() int {
	tbl, path, err := loadPermissions()
	if err != nil {
		fmt.Fprintf(os.Stderr, "collabedit: %v\n", err)
		return 1
	}
	entries := tbl.Entries()
	if len(entries) == 0 {
		fmt.Printf("no entries in %s\n", path)
		return 0
	}
	width := 0
	for _, e := range entries {
		if len(e.Username) > width {
			width = len(e.Username)
		}
	}
	for _, e := range entries {
		fmt.Printf("%-*s  %s\n", width, e.Username, e.Right)
	}
	return 0
}
