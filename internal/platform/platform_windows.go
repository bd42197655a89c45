// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

//go:build windows

package platform

import (
	"fmt"
	"path/filepath"

	"golang.org/x/sys/windows"
)

// CacheDir returns %LOCALAPPDATA%\Cargo. This deliberately does not follow
// Cargo, which keeps its caches under the roaming profile.
func (r *Resolver) CacheDir() (string, error) {
	return knownFolder(windows.FOLDERID_LocalAppData)
}

// ConfigDir returns %APPDATA%\Cargo.
func (r *Resolver) ConfigDir() (string, error) {
	return knownFolder(windows.FOLDERID_RoamingAppData)
}

// LegacyCacheDir always reports false: Windows never had the nested layout.
func (r *Resolver) LegacyCacheDir() (string, bool) {
	return "", false
}

// ForceColor is always false on Windows, where the console colour is
// communicated out of band.
func ForceColor() bool {
	return false
}

func knownFolder(id *windows.KNOWNFOLDERID) (string, error) {
	dir, err := windows.KnownFolderPath(id, 0)
	if err != nil {
		return "", fmt.Errorf("failed to look up known folder: %w", err)
	}
	return filepath.Join(dir, "Cargo"), nil
}
