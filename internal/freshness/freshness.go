// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

// Package freshness produces comparable timestamps for deciding whether a
// cached build is still current.
//
// Both Now and ModifiedTime return milliseconds since the Unix epoch and
// clamp anything at or before the epoch to zero. Failures are not reported:
// a file whose metadata cannot be read is reported as the epoch itself.
package freshness

import (
	"io/fs"
	"time"

	"github.com/apex/log"
)

// Timestamp is a count of milliseconds since the Unix epoch.
type Timestamp uint64

// Time converts t back to a time.Time in UTC.
func (t Timestamp) Time() time.Time {
	return time.UnixMilli(int64(t)).UTC()
}

// Clock is the source of the current time.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the system clock.
type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now() }

// Stater is anything that can report file metadata, such as *os.File.
type Stater interface {
	Stat() (fs.FileInfo, error)
}

// FromTime converts t to a Timestamp, clamping times at or before the epoch
// to zero.
func FromTime(t time.Time) Timestamp {
	ms := t.UnixMilli()
	if ms <= 0 {
		return 0
	}
	return Timestamp(ms)
}

// Now returns the current system time.
func Now() Timestamp {
	return NowFrom(SystemClock{})
}

// NowFrom returns the current time according to c.
func NowFrom(c Clock) Timestamp {
	return FromTime(c.Now())
}

// ModifiedTime returns the last-modified time of f, or zero when its
// metadata is unavailable.
func ModifiedTime(f Stater) Timestamp {
	info, err := f.Stat()
	if err != nil {
		log.WithError(err).Debug("file metadata unavailable; using epoch")
		return 0
	}
	return FromTime(info.ModTime())
}
