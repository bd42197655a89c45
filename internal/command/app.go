// Copyright © 2025 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT
package command

import (
	"context"
	"sort"

	"github.com/urfave/cli/v3"

	"github.com/staranto/cargoeval/internal/meta"
	"github.com/staranto/cargoeval/internal/version"
)

func InitApp(ctx context.Context, m meta.Meta) (*cli.Command, error) {
	m.Context = ctx

	app := &cli.Command{
		Name:    "cargo-eval",
		Usage:   "Cargoified Rust scripts: cache maintenance",
		Version: version.Version,
		Flags:   NewGlobalFlags(m),
	}

	app.Commands = append(app.Commands,
		ClearCacheCommandBuilder(app, m),
		DirsCommandBuilder(app, m),
		MigrateCommandBuilder(app, m),
		PurgeCommandBuilder(app, m),
	)

	// Make sure flags are sorted for the --help text.
	for _, cmd := range app.Commands {
		sort.Slice(cmd.Flags, func(i, j int) bool {
			return cmd.Flags[i].Names()[0] < cmd.Flags[j].Names()[0]
		})
	}

	return app, nil
}
