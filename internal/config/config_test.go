// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/staranto/cargoeval/internal/env"
)

func load(t *testing.T, testdataFile string) Type {
	t.Helper()
	cfg, err := Load(filepath.Join("testdata", testdataFile))
	require.NoError(t, err)
	return cfg
}

func TestLocate(t *testing.T) {
	abs, err := filepath.Abs(filepath.Join("testdata", "simple.yaml"))
	require.NoError(t, err)

	got, err := Locate(env.Map{"CARGO_EVAL_CFG": abs}, "/ignored")
	require.NoError(t, err)
	assert.Equal(t, abs, got)

	_, err = Locate(env.Map{"CARGO_EVAL_CFG": "/nonexistent/cargo-eval.yaml"}, "")
	assert.ErrorIs(t, err, ErrNoConfig)

	_, err = Locate(env.Map{"CARGO_EVAL_CFG": "testdata"}, "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "points to a directory")
}

func TestLocate_ConfigDir(t *testing.T) {
	dir := t.TempDir()
	_, err := Locate(env.Map{}, dir)
	assert.ErrorIs(t, err, ErrNoConfig)

	_, err = Locate(env.Map{}, "")
	assert.ErrorIs(t, err, ErrNoConfig)

	file := filepath.Join(dir, FileName)
	require.NoError(t, os.WriteFile(file, []byte("color: false\n"), 0o600))
	got, err := Locate(env.Map{}, dir)
	require.NoError(t, err)
	assert.Equal(t, file, got)
}

func TestLoad(t *testing.T) {
	tests := []struct {
		name      string
		testFile  string
		checkFunc func(*testing.T, Type)
	}{
		{
			name:     "simple values",
			testFile: "simple.yaml",
			checkFunc: func(t *testing.T, cfg Type) {
				assert.NotEmpty(t, cfg.Source)
				assert.Equal(t, true, cfg.Data["color"])
				assert.Equal(t, "expr", cfg.Data["template"])
			},
		},
		{
			name:     "nested structure",
			testFile: "nested.yaml",
			checkFunc: func(t *testing.T, cfg Type) {
				purge, ok := cfg.Data["purge"].(map[string]interface{})
				assert.True(t, ok, "purge should be a map")
				assert.Equal(t, 72, purge["hours"])
			},
		},
		{
			name:     "empty file",
			testFile: "empty.yaml",
			checkFunc: func(t *testing.T, cfg Type) {
				// Empty YAML unmarshals to nil map, which is acceptable
				assert.NotEmpty(t, cfg.Source, "should have a source path")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.checkFunc(t, load(t, tt.testFile))
		})
	}
}

func TestLoad_Errors(t *testing.T) {
	_, err := Load("/nonexistent/cargo-eval.yaml")
	assert.Error(t, err)

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("a: [unclosed\n"), 0o600))
	_, err = Load(bad)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse")
}

func TestGetters(t *testing.T) {
	nested := load(t, "nested.yaml")
	mixed := load(t, "mixed-types.yaml")

	auto, err := nested.GetBool("migrate.auto", true)
	require.NoError(t, err)
	assert.False(t, auto)

	auto, err = Type{}.GetBool("migrate.auto", true)
	require.NoError(t, err)
	assert.True(t, auto, "missing key falls back to default")

	_, err = mixed.GetBool("enabled")
	assert.Error(t, err, "strings are not bools")

	hours, err := nested.GetInt("purge.hours")
	require.NoError(t, err)
	assert.Equal(t, 72, hours)

	timeout, err := mixed.GetInt("timeout")
	require.NoError(t, err)
	assert.Equal(t, 30, timeout)

	_, err = mixed.GetInt("name")
	assert.Error(t, err)

	hours, err = Type{}.GetInt("purge.hours", 24)
	require.NoError(t, err)
	assert.Equal(t, 24, hours)

	_, err = Type{}.GetInt("purge.hours")
	assert.Error(t, err)
}

func TestGet_WithNamespace(t *testing.T) {
	cfg := load(t, "nested.yaml")
	cfg.Namespace = "clear-cache"

	hours, err := cfg.GetInt("purge.hours")
	require.NoError(t, err)
	assert.Equal(t, 6, hours, "namespaced value wins")

	auto, err := cfg.GetBool("migrate.auto")
	require.NoError(t, err)
	assert.False(t, auto, "falls back to the global key")
}
