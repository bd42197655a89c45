// Copyright © 2025 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT

// Package command defines the maintenance commands of cargo-eval: showing
// the resolved directories, migrating the legacy cache layout, and clearing
// or purging caches.
package command
