// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

// Package pathcodec turns filesystem paths into bytes for cache records and
// back again.
//
// Encoded paths carry no framing: whatever stores them must track where a
// record ends. Encodings are only meaningful on the platform family that
// produced them.
package pathcodec

import (
	"errors"
	"fmt"
	"io"
)

// ErrCorrupt is returned when an encoded path cannot be decoded.
var ErrCorrupt = errors.New("corrupt encoded path")

// Codec encodes paths losslessly. Decode(Encode(p)) == p for every path the
// platform can represent.
type Codec interface {
	Encode(path string) []byte
	Decode(b []byte) (string, error)
}

// Write encodes path with c and writes it to w.
func Write(w io.Writer, c Codec, path string) error {
	if _, err := w.Write(c.Encode(path)); err != nil {
		return fmt.Errorf("failed to write path: %w", err)
	}
	return nil
}

// Read consumes r to EOF and decodes the result with c.
func Read(r io.Reader, c Codec) (string, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("failed to read path: %w", err)
	}
	return c.Decode(b)
}

// Bytes stores a path as its native byte representation. It is the codec for
// platforms where paths are arbitrary byte strings.
type Bytes struct{}

func (Bytes) Encode(path string) []byte {
	return []byte(path)
}

func (Bytes) Decode(b []byte) (string, error) {
	return string(b), nil
}
