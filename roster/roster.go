// Copyright (c) 2025 Julian Mercado.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package roster

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

// DefaultNames is the built-in roster used when no persisted roster
// exists or the file fails to parse.
var DefaultNames = []string{
	"Javier", "Lindsay", "Yesenia", "Bryan", "Daniella",
	"Rogelio", "Viviana", "Martha", "Bernie",
}

type fileFormat struct {
	Entrants []string `yaml:"entrants"`
}

// Roster holds the ordered entrant list for the running contest. Reads
// happen on every request; writes only via the admin edit operation.
type Roster struct {
	mu    sync.RWMutex
	path  string
	names []string
}

// Load reads the roster from the YAML file at path, falling back to
// DefaultNames if the file is missing or unparseable.
func Load(path string) *Roster {
	r := &Roster{path: path}

	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			slog.Warn("failed to read roster file, using defaults", "path", path, "error", err)
		}
		r.names = append([]string(nil), DefaultNames...)
		return r
	}

	var f fileFormat
	if err := yaml.Unmarshal(data, &f); err != nil || len(f.Entrants) == 0 {
		slog.Warn("failed to parse roster file, using defaults", "path", path, "error", err)
		r.names = append([]string(nil), DefaultNames...)
		return r
	}

	r.names = stripBlanks(f.Entrants)
	return r
}

// Names returns a copy of the current entrant list.
func (r *Roster) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]string(nil), r.names...)
}

// Len returns the number of entrants.
func (r *Roster) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.names)
}

// Name returns the display name at ordinal i, or "" if out of range.
func (r *Roster) Name(i int) string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if i < 0 || i >= len(r.names) {
		return ""
	}
	return r.names[i]
}

// Replace swaps in a new entrant list and persists it. Blank entries
// are always stripped before saving. Existing rating rows are not
// rewritten: rows whose ordinal exceeds the new length stay in the
// table and are excluded from every read path.
func (r *Roster) Replace(names []string) error {
	cleaned := stripBlanks(names)

	r.mu.Lock()
	defer r.mu.Unlock()

	data, err := yaml.Marshal(fileFormat{Entrants: cleaned})
	if err != nil {
		return fmt.Errorf("failed to encode roster: %w", err)
	}
	if err := os.WriteFile(r.path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write roster file: %w", err)
	}

	r.names = cleaned
	return nil
}

func stripBlanks(names []string) []string {
	out := make([]string, 0, len(names))
	for _, n := range names {
		n = strings.TrimSpace(n)
		if n != "" {
			out = append(out, n)
		}
	}
	return out
}
