// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package cacheutil

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/go-git/go-billy/v5/memfs"
	"github.com/go-git/go-billy/v5/osfs"
	"github.com/go-git/go-billy/v5/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/staranto/cargoeval/internal/freshness"
)

func TestLayout(t *testing.T) {
	assert.Equal(t, filepath.Join("root", "script-cache"), ScriptCache("root"))
	assert.Equal(t, filepath.Join("root", "binary-cache"), BinaryCache("root"))
}

func TestEnsureBaseDir(t *testing.T) {
	fs := memfs.New()
	require.NoError(t, EnsureBaseDir(fs, "/cache"))

	for _, d := range []string{"/cache/script-cache", "/cache/binary-cache"} {
		info, err := fs.Stat(d)
		require.NoError(t, err)
		assert.True(t, info.IsDir())
	}
}

func TestClear(t *testing.T) {
	fs := memfs.New()
	require.NoError(t, util.WriteFile(fs, "/cache/script-cache/aaa/main.rs", []byte("12345"), 0o600))
	require.NoError(t, util.WriteFile(fs, "/cache/script-cache/aaa/Cargo.toml", []byte("123"), 0o600))
	require.NoError(t, util.WriteFile(fs, "/cache/script-cache/bbb/main.rs", []byte("12"), 0o600))
	require.NoError(t, util.WriteFile(fs, "/cache/binary-cache/keep", []byte("bin"), 0o600))

	res, err := Clear(fs, "/cache")
	require.NoError(t, err)
	assert.Equal(t, ClearResult{Entries: 2, Bytes: 10}, res)

	entries, err := fs.ReadDir("/cache/script-cache")
	require.NoError(t, err)
	assert.Empty(t, entries)

	_, err = fs.Stat("/cache/binary-cache/keep")
	assert.NoError(t, err, "binary cache is left alone")
}

func TestClear_MissingCache(t *testing.T) {
	res, err := Clear(memfs.New(), "/nowhere")
	require.NoError(t, err)
	assert.Zero(t, res)
}

func TestPurge(t *testing.T) {
	dir := t.TempDir()
	fs := osfs.New("/")

	oldEntry := filepath.Join(dir, "old")
	newEntry := filepath.Join(dir, "new")
	require.NoError(t, os.MkdirAll(oldEntry, 0o755))
	require.NoError(t, os.MkdirAll(newEntry, 0o755))

	now := time.Now()
	require.NoError(t, os.Chtimes(oldEntry, now.Add(-48*time.Hour), now.Add(-48*time.Hour)))
	require.NoError(t, os.Chtimes(newEntry, now.Add(-time.Hour), now.Add(-time.Hour)))

	n, err := Purge(fs, dir, 0, freshness.FromTime(now))
	require.NoError(t, err)
	assert.Zero(t, n, "hours <= 0 disables purging")

	n, err = Purge(fs, dir, 24, freshness.FromTime(now))
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	assert.NoDirExists(t, oldEntry)
	assert.DirExists(t, newEntry)
}

func TestPurge_FreshFileInOldEntry(t *testing.T) {
	root := t.TempDir()
	fs := osfs.New("/")

	entry := filepath.Join(ScriptCache(root), "abc")
	stale := filepath.Join(BinaryCache(root), "release")
	require.NoError(t, os.MkdirAll(filepath.Join(entry, "src"), 0o755))
	require.NoError(t, os.MkdirAll(filepath.Join(stale, "deps"), 0o755))
	meta := filepath.Join(entry, "metadata.yaml")
	require.NoError(t, os.WriteFile(meta, []byte("build_time: 1\n"), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(stale, "deps", "x.rlib"), []byte("x"), 0o600))

	now := time.Now()
	old := now.Add(-10 * 24 * time.Hour)
	for _, p := range []string{
		filepath.Join(entry, "src"), entry,
		filepath.Join(stale, "deps", "x.rlib"), filepath.Join(stale, "deps"), stale,
	} {
		require.NoError(t, os.Chtimes(p, old, old))
	}
	require.NoError(t, os.Chtimes(meta, now.Add(-time.Minute), now.Add(-time.Minute)))

	n, err := Purge(fs, ScriptCache(root), 24, freshness.FromTime(now))
	require.NoError(t, err)
	assert.Zero(t, n)
	assert.FileExists(t, meta)

	n, err = Purge(fs, BinaryCache(root), 24, freshness.FromTime(now))
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	assert.NoDirExists(t, stale)
}

func TestLastModified(t *testing.T) {
	fs := memfs.New()
	require.NoError(t, util.WriteFile(fs, "/c/a/b/f", []byte("x"), 0o644))

	mod, err := lastModified(fs, "/c/a")
	require.NoError(t, err)
	assert.NotZero(t, mod)

	_, err = lastModified(fs, "/c/missing")
	assert.Error(t, err)
}

func TestPurge_MissingDir(t *testing.T) {
	n, err := Purge(memfs.New(), "/nowhere", 1, freshness.Now())
	require.NoError(t, err)
	assert.Zero(t, n)
}
