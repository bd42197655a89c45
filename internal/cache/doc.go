// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

// Package cache persists per-script cache records: where the script came
// from and when its artifact was built.
package cache
