package history

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/dshills/collabedit/internal/document"
)

// StateAt reconstructs the document as it stood immediately after the
// frame at index idx in the raw (unreconciled) session log, given the
// persisted final document. Pass idx == -1 to reconstruct the
// pre-session original.
//
// Because an InsertFrame's schema carries no copy of the text it added
// (spec §3), forward replay from the original is not recoverable from
// the persisted log alone. Reconstruction instead walks the raw log
// backward from the final document: undoing a CutFrame means
// reinserting its captured Text at Top; undoing an InsertFrame means
// cutting out its [Top, Bot) span. Both directions need only what the
// log already stores.
func StateAt(final []string, log []*Frame, idx int) ([]string, error) {
	doc := document.NewFromString(strings.Join(final, "\n"))
	for i := len(log) - 1; i > idx; i-- {
		f := log[i]
		switch f.Kind {
		case CutFrame:
			if _, err := doc.Insert(f.Text, f.Top); err != nil {
				return nil, fmt.Errorf("history: replaying cut frame %d: %w", i, err)
			}
		case InsertFrame:
			if err := doc.Cut(f.Top, f.Bot); err != nil {
				return nil, fmt.Errorf("history: replaying insert frame %d: %w", i, err)
			}
		}
	}
	return doc.Lines(), nil
}

// Original reconstructs the document as it stood before any frame in
// the raw session log was applied.
func Original(final []string, log []*Frame) ([]string, error) {
	return StateAt(final, log, -1)
}

// ListSessions enumerates the persisted session-start timestamps for a
// given file's history directory, oldest first, by scanning for
// "*.o.cache" artifacts (spec §6, supplemented -CHH listing).
func ListSessions(baseDir, basename string) ([]int64, error) {
	dir := filepath.Join(baseDir, "history", basename)
	entries, err := os.ReadDir(dir)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var starts []int64
	for _, e := range entries {
		name := e.Name()
		if !strings.HasSuffix(name, ".o.cache") {
			continue
		}
		ts, err := strconv.ParseInt(strings.TrimSuffix(name, ".o.cache"), 10, 64)
		if err != nil {
			continue
		}
		starts = append(starts, ts)
	}
	sort.Slice(starts, func(i, j int) bool { return starts[i] < starts[j] })
	return starts, nil
}
