// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

//go:build !windows

package platform

import (
	"os"

	"golang.org/x/term"
)

// CacheDir returns a directory suitable for user- and machine-specific data
// that may or may not persist across sessions. It matches the location
// Cargo uses for its own caches.
func (r *Resolver) CacheDir() (string, error) {
	return r.resolveCargoHome()
}

// ConfigDir returns the directory for user-specific configuration. It is
// currently the same as CacheDir; callers must not rely on that.
func (r *Resolver) ConfigDir() (string, error) {
	return r.CacheDir()
}

// LegacyCacheDir returns the pre-0.2.0 cache location, $CARGO_HOME/.cargo,
// if $CARGO_HOME is set.
func (r *Resolver) LegacyCacheDir() (string, bool) {
	return r.legacyCargoHome()
}

// ForceColor reports whether Cargo should be told to colour its output,
// which is the case when our stderr is a terminal.
func ForceColor() bool {
	return term.IsTerminal(int(os.Stderr.Fd()))
}
