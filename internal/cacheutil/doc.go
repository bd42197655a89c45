// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

// Package cacheutil knows the layout of the cache root and performs
// whole-cache maintenance: creating it, clearing the script cache, and
// purging old entries.
package cacheutil
