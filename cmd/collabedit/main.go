// Package main is the entry point for collabedit: a single binary that
// hosts a collaborative editing session, connects to one, administers
// its permission file, or opens a read-only replay/blame view onto its
// saved history.
package main

import (
	"fmt"
	"os"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	debug := false
	args = stripDebugFlag(args, &debug)

	if len(args) == 0 {
		usage()
		return 1
	}

	switch args[0] {
	case "-H":
		if len(args) != 3 {
			fmt.Fprintln(os.Stderr, "usage: collabedit -H FILE USER")
			return 1
		}
		return runHost(args[1], args[2], debug)
	case "-C":
		if len(args) != 3 {
			fmt.Fprintln(os.Stderr, "usage: collabedit -C IP USER")
			return 1
		}
		return runConnect(args[1], args[2], debug)
	case "-P":
		if len(args) != 3 {
			fmt.Fprintln(os.Stderr, "usage: collabedit -P USER +rights|-rights")
			return 1
		}
		return runPermission(args[1], args[2])
	case "-Pl":
		return runListPermissions()
	case "-CHH":
		if len(args) != 2 {
			fmt.Fprintln(os.Stderr, "usage: collabedit -CHH FILE")
			return 1
		}
		return runListHistory(args[1])
	case "-CH":
		if len(args) != 3 {
			fmt.Fprintln(os.Stderr, "usage: collabedit -CH FILE IDX")
			return 1
		}
		return runReplay(args[1], args[2])
	case "-B":
		if len(args) != 3 {
			fmt.Fprintln(os.Stderr, "usage: collabedit -B FILE IDX")
			return 1
		}
		return runBlame(args[1], args[2])
	default:
		usage()
		return 1
	}
}

// stripDebugFlag removes a trailing/anywhere "-D" token and reports it
// via debug, since spec §6 lists -D as a verbosity modifier rather than
// a mode of its own.
func stripDebugFlag(args []string, debug *bool) []string {
	out := args[:0:0]
	for _, a := range args {
		if a == "-D" {
			*debug = true
			continue
		}
		out = append(out, a)
	}
	return out
}

func usage() {
	fmt.Fprintln(os.Stderr, `collabedit - a collaborative terminal text editor

Usage:
  collabedit -H FILE USER       host an editing session on FILE as USER
  collabedit -C IP USER         connect to a host at IP as USER
  collabedit -P USER +rights    grant rights (r, rw) to USER
  collabedit -P USER -rights    revoke rights from USER (entry removed once none remain)
  collabedit -Pl                list permissions
  collabedit -CHH FILE          list saved history indices for FILE
  collabedit -CH FILE IDX       open a read-only replay of history index IDX
  collabedit -B FILE IDX        open a read-only blame view for index IDX
  -D may appear anywhere to enable verbose debug logging`)
}
