// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

// Package platform resolves where cargo-eval keeps its caches and
// configuration on the current platform.
//
// Resolution is never memoized: every call reads the environment provider
// again, so tests and live edits to the environment are observed
// immediately.
package platform

import (
	"path/filepath"

	"github.com/apex/log"
	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/osfs"

	"github.com/staranto/cargoeval/internal/apperr"
	"github.com/staranto/cargoeval/internal/env"
)

const (
	// ScriptCacheDir holds generated packages for scripts.
	ScriptCacheDir = "script-cache"
	// BinaryCacheDir holds the shared compiled-binary cache.
	BinaryCacheDir = "binary-cache"

	// LegacyDir is the extra level of nesting that pre-0.2.0 releases placed
	// under $CARGO_HOME.
	LegacyDir = ".cargo"
)

// CacheSubtrees lists the cache subtrees in the order they are migrated.
var CacheSubtrees = []string{ScriptCacheDir, BinaryCacheDir}

// Resolver computes cache and config directories from an environment.
type Resolver struct {
	Env env.Provider
	FS  billy.Filesystem
}

// NewResolver returns a Resolver reading the live process environment and
// the local filesystem.
func NewResolver() *Resolver {
	return &Resolver{
		Env: env.OS(),
		FS:  osfs.New("/"),
	}
}

// resolveCargoHome implements the $CARGO_HOME / $HOME lookup used on
// unix-like platforms.
func (r *Resolver) resolveCargoHome() (string, error) {
	if home, ok := env.Get(r.Env, "CARGO_HOME"); ok {
		old := filepath.Join(home, LegacyDir)
		if r.exists(old) {
			// Keep using the legacy directory until it no longer holds a cache.
			for _, sub := range CacheSubtrees {
				if r.exists(filepath.Join(old, sub)) {
					log.Debugf("using legacy cache directory %s", old)
					return old, nil
				}
			}
		}
		return home, nil
	}

	if home, ok := env.Get(r.Env, "HOME"); ok {
		return filepath.Join(home, LegacyDir), nil
	}

	return "", apperr.Humanf("neither $CARGO_HOME nor $HOME is defined")
}

// legacyCargoHome returns $CARGO_HOME/.cargo when $CARGO_HOME is set. It does
// not check whether the directory exists.
func (r *Resolver) legacyCargoHome() (string, bool) {
	home, ok := env.Get(r.Env, "CARGO_HOME")
	if !ok {
		return "", false
	}
	return filepath.Join(home, LegacyDir), true
}

func (r *Resolver) exists(path string) bool {
	_, err := r.FS.Stat(path)
	return err == nil
}
