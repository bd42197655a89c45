// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"

	"github.com/apex/log"
	"github.com/urfave/cli/v3"

	"github.com/staranto/cargoeval/internal/meta"
)

// DirsCommandAction prints the resolved cache and config directories, plus
// the legacy cache directory when one is configured.
func DirsCommandAction(ctx context.Context, cmd *cli.Command) error {
	r := resolver(cmd)

	cacheDir, err := r.CacheDir()
	if err != nil {
		return err
	}
	configDir, err := r.ConfigDir()
	if err != nil {
		return err
	}
	log.Debugf("cache=%s config=%s", cacheDir, configDir)

	emit(cmd, okStyle, "cache:  %s", cacheDir)
	emit(cmd, okStyle, "config: %s", configDir)
	if legacy, ok := r.LegacyCacheDir(); ok {
		state := "absent"
		if _, err := r.FS.Stat(legacy); err == nil {
			state = "present"
		}
		emit(cmd, dimStyle, "legacy: %s (%s)", legacy, state)
	}
	return nil
}

// DirsCommandBuilder constructs the cli.Command for "dirs".
func DirsCommandBuilder(cmd *cli.Command, meta meta.Meta) *cli.Command {
	return &cli.Command{
		Name:      "dirs",
		Usage:     "show cache and config directories",
		UsageText: `cargo-eval dirs`,
		Metadata: map[string]any{
			"meta": meta,
		},
		Action: DirsCommandAction,
	}
}
