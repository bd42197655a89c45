// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/apex/log"

	"github.com/staranto/cargoeval/internal/apperr"
	"github.com/staranto/cargoeval/internal/command"
	"github.com/staranto/cargoeval/internal/config"
	mylog "github.com/staranto/cargoeval/internal/log"
	"github.com/staranto/cargoeval/internal/meta"
	"github.com/staranto/cargoeval/internal/migrate"
	"github.com/staranto/cargoeval/internal/platform"
	"github.com/staranto/cargoeval/internal/version"
)

var ctx = context.Background()

func main() {
	os.Exit(realMain(os.Args, os.Stderr))
}

func realMain(args []string, stderr io.Writer) int {
	mylog.InitLogger()

	if len(args) < 2 {
		fmt.Fprintln(stderr, "No command specified.")
		args = append(args, "--help")
	}

	// Short-circuit --version/-v.
	for _, a := range args[1:] {
		if a == "--version" || a == "-v" {
			fmt.Println(version.Version)
			return 0
		}
	}

	r := platform.NewResolver()
	cfg := loadConfig(r)

	// The migrate command reports for itself, so don't pre-empt a dry run.
	if auto, _ := cfg.GetBool("migrate.auto", true); auto && !wantsMigrate(args) {
		entries, err := migrate.New(r).Run(migrate.ForReal)
		for _, line := range entries {
			fmt.Fprintln(stderr, line)
		}
		if err != nil {
			report(stderr, fmt.Errorf("cache migration failed: %w", err))
			return 1
		}
	}

	app, err := command.InitApp(ctx, meta.Meta{
		Args:     args,
		Config:   cfg,
		Resolver: r,
	})
	if err != nil {
		report(stderr, err)
		return 1
	}

	if err := app.Run(ctx, args); err != nil {
		report(stderr, err)
		return 2
	}

	return 0
}

// loadConfig returns the user's config, or an empty one if there is none.
func loadConfig(r *platform.Resolver) config.Type {
	dir, err := r.ConfigDir()
	if err != nil {
		log.WithError(err).Debug("no config directory")
	}
	path, err := config.Locate(r.Env, dir)
	if err != nil {
		if !errors.Is(err, config.ErrNoConfig) {
			log.WithError(err).Warn("ignoring config")
		}
		return config.Type{}
	}
	cfg, err := config.Load(path)
	if err != nil {
		log.WithError(err).Warn("ignoring config")
		return config.Type{}
	}
	return cfg
}

// wantsMigrate reports whether the command named by args is migrate. The
// global flags are all booleans, so the first non-flag argument is the
// command.
func wantsMigrate(args []string) bool {
	for _, a := range args[1:] {
		if strings.HasPrefix(a, "-") {
			continue
		}
		return a == "migrate"
	}
	return false
}

func report(w io.Writer, err error) {
	if apperr.BlameOf(err) == apperr.Human {
		fmt.Fprintf(w, "error: %v\n", err)
		return
	}
	fmt.Fprintf(w, "internal error: %v\n", err)
}
