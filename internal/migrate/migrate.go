// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

// Package migrate moves caches left in the pre-0.2.0 layout into the
// current one.
//
// Before 0.2.0, when $CARGO_HOME was set the caches lived in
// $CARGO_HOME/.cargo rather than $CARGO_HOME itself. Run moves each cache
// subtree up one level unless something already occupies the new location,
// then removes the legacy directory if nothing is left in it. It is safe to
// run on every start: a migrated tree yields an empty log.
//
// No lock is taken. Two processes migrating the same tree at once can race on
// the same rename; callers that care must serialise migration themselves.
package migrate

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"

	"github.com/apex/log"
	"github.com/go-git/go-billy/v5"

	"github.com/staranto/cargoeval/internal/platform"
)

// Layout locates the legacy cache directory. The current cache root is its
// parent.
type Layout interface {
	LegacyCacheDir() (string, bool)
}

// Log is the user-facing record of what a migration did or declined to do,
// in decision order.
type Log []string

func (l *Log) add(format string, args ...any) {
	*l = append(*l, fmt.Sprintf(format, args...))
}

// Migrator reconciles a legacy cache layout with the current one.
type Migrator struct {
	Layout   Layout
	FS       billy.Filesystem
	Subtrees []string
}

// New returns a Migrator for the cache subtrees cargo-eval knows about.
func New(r *platform.Resolver) *Migrator {
	return &Migrator{
		Layout:   r,
		FS:       r.FS,
		Subtrees: platform.CacheSubtrees,
	}
}

// Run performs the migration in the given mode. It stops at the first
// filesystem error and returns the log accumulated up to that point; moves
// already made stay made.
func (m *Migrator) Run(mode Mode) (Log, error) {
	var out Log

	legacy, ok := m.Layout.LegacyCacheDir()
	if !ok {
		return out, nil
	}
	found, err := m.exists(legacy)
	if err != nil || !found {
		return out, err
	}

	log.Infof("<0.2.0 cache directory (%s) exists; attempting migration (%s)", legacy, mode)
	mut := NewMutator(mode, m.FS)
	root := filepath.Dir(legacy)

	// Subtrees moved out of legacy, whether or not mode actually moved them.
	moved := make(map[string]bool, len(m.Subtrees))

	for _, name := range m.Subtrees {
		from := filepath.Join(legacy, name)
		to := filepath.Join(root, name)

		oldFound, err := m.exists(from)
		if err != nil {
			return out, err
		}
		if !oldFound {
			log.Debugf("not migrating %s; does not exist", from)
			continue
		}

		newFound, err := m.exists(to)
		if err != nil {
			return out, err
		}
		if newFound {
			log.Debugf("not migrating %s; already exists at new location", from)
			out.add("Did not move %q: new location %q already exists.", from, to)
			continue
		}

		log.Debugf("migrating %s -> %s", from, to)
		if err := mut.Rename(from, to); err != nil {
			return out, fmt.Errorf("failed to move %s to %s: %w", from, to, err)
		}
		moved[name] = true
		out.add("Moved %q to %q.", from, to)
	}

	entries, err := m.FS.ReadDir(legacy)
	if err != nil {
		return out, fmt.Errorf("failed to read %s: %w", legacy, err)
	}
	remaining := 0
	for _, e := range entries {
		if !moved[e.Name()] {
			remaining++
		}
	}

	if remaining > 0 {
		log.Debugf("not removing %s; %d entries left", legacy, remaining)
		out.add("Not removing %q: not empty.", legacy)
	} else {
		log.Debugf("%s is empty; removing", legacy)
		if err := mut.Remove(legacy); err != nil {
			return out, fmt.Errorf("failed to remove %s: %w", legacy, err)
		}
		out.add("Removed empty directory %q.", legacy)
	}

	log.Info("done with migration")
	return out, nil
}

func (m *Migrator) exists(path string) (bool, error) {
	_, err := m.FS.Stat(path)
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, fs.ErrNotExist):
		return false, nil
	default:
		return false, fmt.Errorf("failed to stat %s: %w", path, err)
	}
}
