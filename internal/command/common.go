// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/urfave/cli/v3"

	"github.com/staranto/cargoeval/internal/meta"
	"github.com/staranto/cargoeval/internal/platform"
)

var (
	okStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	warnStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("3")).Bold(true)
	dimStyle  = lipgloss.NewStyle().Faint(true)
)

// GetMeta returns the meta.Meta stored in the command's Metadata. If missing
// or of an unexpected type, it returns the zero value.
func GetMeta(cmd *cli.Command) meta.Meta {
	if cmd == nil || cmd.Metadata == nil {
		return meta.Meta{}
	}
	if m, ok := cmd.Metadata["meta"].(meta.Meta); ok {
		return m
	}
	return meta.Meta{}
}

// resolver returns the Resolver carried in the command's meta, or a live one.
func resolver(cmd *cli.Command) *platform.Resolver {
	if r := GetMeta(cmd).Resolver; r != nil {
		return r
	}
	return platform.NewResolver()
}

func out(cmd *cli.Command) io.Writer {
	if w := cmd.Root().Writer; w != nil {
		return w
	}
	return os.Stdout
}

// paint renders s in style when --color is on.
func paint(cmd *cli.Command, style lipgloss.Style, s string) string {
	if cmd.Bool("color") {
		return style.Render(s)
	}
	return s
}

func emit(cmd *cli.Command, style lipgloss.Style, format string, args ...any) {
	fmt.Fprintln(out(cmd), paint(cmd, style, fmt.Sprintf(format, args...)))
}
