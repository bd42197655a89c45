// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

//go:build !windows

package pathcodec

// Native is the codec for paths on this platform.
var Native Codec = Bytes{}
