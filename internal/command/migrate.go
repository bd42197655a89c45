// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"

	"github.com/apex/log"
	"github.com/urfave/cli/v3"

	"github.com/staranto/cargoeval/internal/meta"
	"github.com/staranto/cargoeval/internal/migrate"
)

// MigrateCommandAction moves caches out of the pre-0.2.0 layout, or with
// --dry-run reports what it would move.
func MigrateCommandAction(ctx context.Context, cmd *cli.Command) error {
	mode := migrate.ForReal
	if cmd.Bool("dry-run") {
		mode = migrate.DryRun
	}
	log.Debugf("migrating (%s)", mode)

	entries, err := migrate.New(resolver(cmd)).Run(mode)
	PrintMigrationLog(cmd, entries)
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		emit(cmd, dimStyle, "Nothing to migrate.")
	}
	return nil
}

// PrintMigrationLog writes each migration log line to the command's output.
func PrintMigrationLog(cmd *cli.Command, entries migrate.Log) {
	for _, line := range entries {
		emit(cmd, warnStyle, "%s", line)
	}
}

// MigrateCommandBuilder constructs the cli.Command for "migrate".
func MigrateCommandBuilder(cmd *cli.Command, meta meta.Meta) *cli.Command {
	return &cli.Command{
		Name:      "migrate",
		Usage:     "move caches out of the legacy layout",
		UsageText: `cargo-eval migrate [--dry-run]`,
		Metadata: map[string]any{
			"meta": meta,
		},
		Flags: []cli.Flag{
			newDryRunFlag(),
		},
		Action: MigrateCommandAction,
	}
}
