// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"

	"github.com/dustin/go-humanize"
	"github.com/urfave/cli/v3"

	"github.com/staranto/cargoeval/internal/cacheutil"
	"github.com/staranto/cargoeval/internal/meta"
)

// ClearCacheCommandAction empties the script cache.
func ClearCacheCommandAction(ctx context.Context, cmd *cli.Command) error {
	r := resolver(cmd)
	root, err := r.CacheDir()
	if err != nil {
		return err
	}

	res, err := cacheutil.Clear(r.FS, root)
	if err != nil {
		return err
	}
	emit(cmd, okStyle, "Removed %d cached %s (%s).",
		res.Entries, plural(res.Entries, "script", "scripts"), humanize.Bytes(uint64(res.Bytes)))
	return nil
}

// ClearCacheCommandBuilder constructs the cli.Command for "clear-cache".
func ClearCacheCommandBuilder(cmd *cli.Command, meta meta.Meta) *cli.Command {
	return &cli.Command{
		Name:      "clear-cache",
		Usage:     "clear out the script cache",
		UsageText: `cargo-eval clear-cache`,
		Metadata: map[string]any{
			"meta": meta,
		},
		Action: ClearCacheCommandAction,
	}
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
