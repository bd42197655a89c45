// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/staranto/cargoeval/internal/cacheutil"
	"github.com/staranto/cargoeval/internal/freshness"
	"github.com/staranto/cargoeval/internal/meta"
)

// PurgeCommandAction removes script and binary cache entries that have not
// been modified for --hours hours.
func PurgeCommandAction(ctx context.Context, cmd *cli.Command) error {
	r := resolver(cmd)
	root, err := r.CacheDir()
	if err != nil {
		return err
	}

	hours := int(cmd.Int("hours"))
	now := freshness.Now()
	total := 0
	for _, dir := range []string{cacheutil.ScriptCache(root), cacheutil.BinaryCache(root)} {
		n, err := cacheutil.Purge(r.FS, dir, hours, now)
		if err != nil {
			return err
		}
		total += n
	}

	emit(cmd, okStyle, "Purged %d cache %s older than %d hours.", total, plural(total, "entry", "entries"), hours)
	return nil
}

// PurgeCommandBuilder constructs the cli.Command for "purge".
func PurgeCommandBuilder(cmd *cli.Command, meta meta.Meta) *cli.Command {
	return &cli.Command{
		Name:      "purge",
		Usage:     "remove cache entries older than a given age",
		UsageText: `cargo-eval purge --hours N`,
		Metadata: map[string]any{
			"meta": meta,
		},
		Flags: []cli.Flag{
			newHoursFlag(meta),
		},
		Action: PurgeCommandAction,
	}
}
