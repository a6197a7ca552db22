// Package session persists the turn-by-turn conversation as append-only,
// date-partitioned markdown transcripts under the chat-history sub-tree.
// Logs are only ever appended to; nothing here edits, truncates, or
// deletes a session file.
package session

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/rvasay/atelier/internal/workspace"
)

// Role identifies the author of a turn.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Sentinels returned by MostRecent in place of missing or unreadable logs.
const (
	SentinelNoHistory  = "No chat history yet"
	SentinelNoSessions = "No chat sessions yet"
	SentinelUnreadable = "Could not read recent chat"
)

const (
	filePrefix = "session-"
	fileSuffix = ".md"
	dateLayout = "2006-01-02"
	timeLayout = "15:04:05"
)

// Store appends turns to per-day session logs. The clock is injectable so
// tests can simulate day rollover.
type Store struct {
	root workspace.Root
	now  func() time.Time
}

// NewStore creates a Store over the given workspace using the wall clock.
func NewStore(root workspace.Root) *Store {
	return &Store{root: root, now: time.Now}
}

// NewStoreWithClock creates a Store with an injected clock.
func NewStoreWithClock(root workspace.Root, now func() time.Time) *Store {
	return &Store{root: root, now: now}
}

// FileName returns the session file name for the given date.
func FileName(t time.Time) string {
	return filePrefix + t.Format(dateLayout) + fileSuffix
}

// FormatBlock renders a single turn in the transcript block format.
func FormatBlock(role Role, t time.Time, content string) string {
	return fmt.Sprintf("\n## %s (%s)\n\n%s\n", strings.ToUpper(string(role)), t.Format(timeLayout), content)
}

// AppendTurn appends one formatted turn block to today's session log,
// creating the chat-history directory and the log file on first use.
// The block goes out as a single write, so a reader never observes a
// partially appended turn from this process.
func (s *Store) AppendTurn(role Role, content string) error {
	if err := os.MkdirAll(s.root.ChatDir(), 0755); err != nil {
		return err
	}

	now := s.now()
	path := filepath.Join(s.root.ChatDir(), FileName(now))

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return err
	}
	defer f.Close()

	if _, err := f.WriteString(FormatBlock(role, now, content)); err != nil {
		return err
	}
	return f.Close()
}

// MostRecent returns the content of the latest session log. The fixed
// date encoding makes the lexicographically greatest filename the
// chronologically latest. Missing directory, no session files, and
// unreadable content each degrade to their sentinel.
func (s *Store) MostRecent() string {
	entries, err := os.ReadDir(s.root.ChatDir())
	if err != nil {
		return SentinelNoHistory
	}

	var names []string
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || !strings.HasPrefix(name, filePrefix) || !strings.HasSuffix(name, fileSuffix) {
			continue
		}
		names = append(names, name)
	}
	if len(names) == 0 {
		return SentinelNoSessions
	}
	sort.Strings(names)

	data, err := os.ReadFile(filepath.Join(s.root.ChatDir(), names[len(names)-1]))
	if err != nil || !utf8.Valid(data) {
		return SentinelUnreadable
	}
	return string(data)
}

// List returns the session file names in chronological order.
func (s *Store) List() []string {
	entries, err := os.ReadDir(s.root.ChatDir())
	if err != nil {
		return nil
	}
	var names []string
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || !strings.HasPrefix(name, filePrefix) || !strings.HasSuffix(name, fileSuffix) {
			continue
		}
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Read returns the content of a named session log.
func (s *Store) Read(name string) (string, error) {
	if !strings.HasPrefix(name, filePrefix) || !strings.HasSuffix(name, fileSuffix) || strings.ContainsAny(name, "/\\") {
		return "", os.ErrNotExist
	}
	data, err := os.ReadFile(filepath.Join(s.root.ChatDir(), name))
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// Day extracts the date portion of a session file name, or "" if the name
// does not follow the session naming scheme.
func Day(name string) string {
	day := strings.TrimSuffix(strings.TrimPrefix(name, filePrefix), fileSuffix)
	if _, err := time.Parse(dateLayout, day); err != nil {
		return ""
	}
	return day
}
