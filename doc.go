// Copyright © 2025 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT

// cargoeval is the main package for the cargo-eval cache maintenance tool. It
// reconciles any legacy cache layout on start, then hands off to the
// commands in internal/command.
package main
