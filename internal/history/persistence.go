package history

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// Paths locates the three persisted artifacts for one session of one
// file (spec §6): the final document copy, the reconciled history log,
// and the per-line blame vector.
type Paths struct {
	BaseDir      string
	Basename     string
	SessionStart int64
}

func (p Paths) dir() string { return filepath.Join(p.BaseDir, "history", p.Basename) }

// OriginalPath is the final document copy, "<start>.o.cache".
func (p Paths) OriginalPath() string {
	return filepath.Join(p.dir(), fmt.Sprintf("%d.o.cache", p.SessionStart))
}

// LogPath is the reconciled history log, "<start>.cache".
func (p Paths) LogPath() string {
	return filepath.Join(p.dir(), fmt.Sprintf("%d.cache", p.SessionStart))
}

// BlamePath is the per-line author vector, "<start>.blame.cache".
func (p Paths) BlamePath() string {
	return filepath.Join(p.dir(), fmt.Sprintf("%d.blame.cache", p.SessionStart))
}

// Save persists the final document, the reconciled log, and the blame
// vector for one session, creating the per-file history directory if
// needed.
func Save(p Paths, final []string, reconciled []*Frame, blame []string) error {
	if err := os.MkdirAll(p.dir(), 0o755); err != nil {
		return fmt.Errorf("history: creating %s: %w", p.dir(), err)
	}
	if err := os.WriteFile(p.OriginalPath(), []byte(strings.Join(final, "\n")), 0o644); err != nil {
		return fmt.Errorf("history: writing original cache: %w", err)
	}

	var logBuf strings.Builder
	for _, f := range reconciled {
		logBuf.WriteString(f.Encode())
		logBuf.WriteByte('\n')
	}
	if err := os.WriteFile(p.LogPath(), []byte(logBuf.String()), 0o644); err != nil {
		return fmt.Errorf("history: writing log cache: %w", err)
	}

	if err := os.WriteFile(p.BlamePath(), []byte(strings.Join(blame, "\n")), 0o644); err != nil {
		return fmt.Errorf("history: writing blame cache: %w", err)
	}
	return nil
}

// LoadFinal reads the persisted final document copy.
func LoadFinal(p Paths) ([]string, error) {
	data, err := os.ReadFile(p.OriginalPath())
	if err != nil {
		return nil, err
	}
	return strings.Split(string(data), "\n"), nil
}

// LoadLog reads and decodes the persisted reconciled history log.
func LoadLog(p Paths) ([]*Frame, error) {
	f, err := os.Open(p.LogPath())
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var log []*Frame
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := sc.Text()
		if line == "" {
			continue
		}
		fr, err := DecodeFrame(line)
		if err != nil {
			return nil, err
		}
		log = append(log, fr)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return log, nil
}

// LoadBlame reads the persisted per-line author vector for one session
// index of one file (spec §6, supplemented -B blame view). When the
// blame cache is missing, it does not fail the whole load: per spec §7
// Persistence error handling ("if blame file missing, blame is
// bootstrapped from the owner's username for every line"), it returns
// a vector with owner repeated once per line of lineCount instead.
func LoadBlame(baseDir, basename string, sessionStart int64, owner string, lineCount int) ([]string, error) {
	p := Paths{BaseDir: baseDir, Basename: basename, SessionStart: sessionStart}
	data, err := os.ReadFile(p.BlamePath())
	if err != nil {
		if os.IsNotExist(err) {
			blame := make([]string, lineCount)
			for i := range blame {
				blame[i] = owner
			}
			return blame, nil
		}
		return nil, err
	}
	if len(data) == 0 {
		return nil, nil
	}
	return strings.Split(string(data), "\n"), nil
}

// SessionTimestamp is a small helper for CLI listing output, formatting
// a session-start Unix timestamp as its directory-friendly form.
func SessionTimestamp(start int64) string {
	return strconv.FormatInt(start, 10)
}
