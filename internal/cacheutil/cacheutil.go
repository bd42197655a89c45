// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package cacheutil

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/apex/log"
	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/util"

	"github.com/staranto/cargoeval/internal/freshness"
	"github.com/staranto/cargoeval/internal/platform"
)

// ScriptCache returns the script package cache beneath root.
func ScriptCache(root string) string {
	return filepath.Join(root, platform.ScriptCacheDir)
}

// BinaryCache returns the shared binary cache beneath root.
func BinaryCache(root string) string {
	return filepath.Join(root, platform.BinaryCacheDir)
}

// EnsureBaseDir creates the cache root and its subtrees.
func EnsureBaseDir(fsys billy.Dir, root string) error {
	for _, dir := range []string{ScriptCache(root), BinaryCache(root)} {
		if err := fsys.MkdirAll(dir, 0o755); err != nil { //nolint:mnd
			return fmt.Errorf("failed to create cache directory: %w", err)
		}
	}
	return nil
}

// ClearResult reports what Clear removed.
type ClearResult struct {
	Entries int
	Bytes   int64
}

// Clear removes every entry of the script cache under root. A missing cache
// is already clear.
func Clear(fsys billy.Filesystem, root string) (ClearResult, error) {
	var res ClearResult
	dir := ScriptCache(root)

	entries, err := fsys.ReadDir(dir)
	if errors.Is(err, fs.ErrNotExist) {
		return res, nil
	}
	if err != nil {
		return res, fmt.Errorf("failed to read script cache: %w", err)
	}

	for _, e := range entries {
		p := filepath.Join(dir, e.Name())
		size, err := diskUsage(fsys, p)
		if err != nil {
			return res, err
		}
		if err := util.RemoveAll(fsys, p); err != nil {
			return res, fmt.Errorf("failed to remove cache entry %s: %w", p, err)
		}
		log.Debugf("removed cache entry %s", p)
		res.Entries++
		res.Bytes += size
	}
	return res, nil
}

// Purge removes entries of dir last modified more than hours ago, measured
// from now. An entry's modification time is the newest of anything beneath
// it. If hours <= 0 it is a no-op. It returns the number of entries removed;
// entries that cannot be measured or removed are logged and skipped.
func Purge(fsys billy.Filesystem, dir string, hours int, now freshness.Timestamp) (int, error) {
	if hours <= 0 {
		log.Debug("cache purging disabled")
		return 0, nil
	}

	entries, err := fsys.ReadDir(dir)
	if errors.Is(err, fs.ErrNotExist) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("failed to purge cache: %w", err)
	}

	maxAge := uint64((time.Duration(hours) * time.Hour).Milliseconds())
	removed := 0
	for _, e := range entries {
		p := filepath.Join(dir, e.Name())
		mod, err := lastModified(fsys, p)
		if err != nil {
			log.WithError(err).Warnf("not purging cache entry %s", p)
			continue
		}
		if mod > now || uint64(now-mod) <= maxAge {
			continue
		}
		if err := util.RemoveAll(fsys, p); err != nil {
			log.WithError(err).Warnf("failed to remove cache entry %s", p)
			continue
		}
		log.Debugf("purged cache entry %s", p)
		removed++
	}
	return removed, nil
}

// lastModified returns the newest modification time of root and everything
// beneath it.
func lastModified(fsys billy.Filesystem, root string) (freshness.Timestamp, error) {
	var newest freshness.Timestamp
	err := util.Walk(fsys, root, func(_ string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if mod := freshness.FromTime(info.ModTime()); mod > newest {
			newest = mod
		}
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("failed to stat %s: %w", root, err)
	}
	return newest, nil
}

func diskUsage(fsys billy.Filesystem, root string) (int64, error) {
	var total int64
	err := util.Walk(fsys, root, func(_ string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if !info.IsDir() {
			total += info.Size()
		}
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("failed to measure %s: %w", root, err)
	}
	return total, nil
}
