// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

// Package env abstracts environment variable lookups so directory resolution
// can be driven by a fake environment in tests.
package env

import "os"

// Provider looks up a named environment variable.
type Provider interface {
	LookupEnv(name string) (string, bool)
}

type osProvider struct{}

func (osProvider) LookupEnv(name string) (string, bool) {
	return os.LookupEnv(name)
}

// OS returns a Provider backed by the live process environment. Every lookup
// reads the environment afresh.
func OS() Provider {
	return osProvider{}
}

// Map is a fixed environment, mostly useful in tests.
type Map map[string]string

func (m Map) LookupEnv(name string) (string, bool) {
	v, ok := m[name]
	return v, ok
}

// Get returns the value of name if it is set and non-empty.
func Get(p Provider, name string) (string, bool) {
	v, ok := p.LookupEnv(name)
	if !ok || v == "" {
		return "", false
	}
	return v, true
}
