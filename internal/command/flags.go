// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"github.com/apex/log"
	altsrc "github.com/urfave/cli-altsrc/v3"
	yaml "github.com/urfave/cli-altsrc/v3/yaml"
	"github.com/urfave/cli/v3"

	"github.com/staranto/cargoeval/internal/meta"
	"github.com/staranto/cargoeval/internal/platform"
)

func NewGlobalFlags(m meta.Meta) []cli.Flag {
	return []cli.Flag{
		&cli.BoolWithInverseFlag{
			Name:    "color",
			Aliases: []string{"c"},
			Usage:   "enable colored text output",
			Sources: cli.NewValueSourceChain(
				cli.EnvVar("CARGO_EVAL_COLOR"),
				yaml.YAML("color", altsrc.StringSourcer(m.Config.Source)),
			),
			Value: platform.ForceColor(),
		},
	}
}

func newDryRunFlag() *cli.BoolFlag {
	return &cli.BoolFlag{
		Name:    "dry-run",
		Aliases: []string{"n"},
		Usage:   "report what would be done without changing anything",
	}
}

func newHoursFlag(m meta.Meta) *cli.IntFlag {
	// A malformed purge.hours leaves purging off.
	hours, err := m.Config.GetInt("purge.hours", 0)
	if err != nil {
		log.WithError(err).Warn("ignoring purge.hours")
	}

	return &cli.IntFlag{
		Name:  "hours",
		Usage: "remove entries not modified for this many hours (0 disables)",
		Sources: cli.NewValueSourceChain(
			yaml.YAML("purge.hours", altsrc.StringSourcer(m.Config.Source)),
		),
		Value: hours,
		Validator: func(value int) error {
			return FlagValidators(value, NonNegativeValidator)
		},
	}
}
