// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package migrate

import (
	"github.com/apex/log"
	"github.com/go-git/go-billy/v5"
)

// Mode selects whether a migration touches the filesystem.
type Mode int

const (
	// DryRun decides and logs everything but changes nothing.
	DryRun Mode = iota
	// ForReal performs the moves and removals it logs.
	ForReal
)

// ForReal reports whether m performs mutations.
func (m Mode) ForReal() bool {
	return m == ForReal
}

func (m Mode) String() string {
	if m.ForReal() {
		return "for-real"
	}
	return "dry-run"
}

// Mutator carries out, or only logs, the filesystem changes a migration
// decides on.
type Mutator interface {
	Rename(from, to string) error
	Remove(path string) error
}

// NewMutator returns the Mutator for mode operating on fs.
func NewMutator(mode Mode, fs billy.Basic) Mutator {
	if mode.ForReal() {
		return performer{fs: fs}
	}
	return recorder{}
}

type performer struct {
	fs billy.Basic
}

func (p performer) Rename(from, to string) error {
	return p.fs.Rename(from, to)
}

func (p performer) Remove(path string) error {
	return p.fs.Remove(path)
}

// recorder logs the operations it would have performed.
type recorder struct{}

func (recorder) Rename(from, to string) error {
	log.Debugf("dry run: would rename %s -> %s", from, to)
	return nil
}

func (recorder) Remove(path string) error {
	log.Debugf("dry run: would remove %s", path)
	return nil
}
