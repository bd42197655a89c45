// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package pathcodec

import (
	"fmt"
	"unicode/utf16"
	"unicode/utf8"
)

// Wide stores a path as a sequence of 16-bit code units, low byte first.
//
// A Go string holding a wide path is treated as WTF-8: UTF-8 in which
// unpaired surrogates appear as their three-byte encodings. This is the only
// way such paths survive as strings, and it makes FromUnits and Units exact
// inverses.
type Wide struct{}

func (Wide) Encode(path string) []byte {
	return EncodeUnits(Units(path))
}

func (Wide) Decode(b []byte) (string, error) {
	units, err := DecodeUnits(b)
	if err != nil {
		return "", err
	}
	return FromUnits(units), nil
}

// EncodeUnits writes each unit as two bytes, low byte first.
func EncodeUnits(units []uint16) []byte {
	out := make([]byte, 0, len(units)*2)
	for _, u := range units {
		out = append(out, byte(u), byte(u>>8))
	}
	return out
}

// DecodeUnits is the inverse of EncodeUnits. Odd-length input is corrupt.
func DecodeUnits(b []byte) ([]uint16, error) {
	if len(b)%2 != 0 {
		return nil, fmt.Errorf("%w: odd length %d", ErrCorrupt, len(b))
	}
	units := make([]uint16, 0, len(b)/2)
	for i := 0; i < len(b); i += 2 {
		units = append(units, uint16(b[i])|uint16(b[i+1])<<8)
	}
	return units, nil
}

// Units converts a WTF-8 string to 16-bit code units. Surrogate pairs are
// produced for supplementary code points and encoded surrogates come through
// as lone units. Bytes that are not WTF-8 become U+FFFD.
func Units(s string) []uint16 {
	units := make([]uint16, 0, len(s))
	for i := 0; i < len(s); {
		if u, ok := decodeSurrogate(s[i:]); ok {
			units = append(units, u)
			i += 3
			continue
		}
		r, size := utf8.DecodeRuneInString(s[i:])
		i += size
		if r >= 0x10000 {
			hi, lo := utf16.EncodeRune(r)
			units = append(units, uint16(hi), uint16(lo))
			continue
		}
		units = append(units, uint16(r))
	}
	return units
}

// FromUnits converts 16-bit code units to a WTF-8 string. Well-formed pairs
// become a single code point; anything else keeps its surrogate value.
func FromUnits(units []uint16) string {
	buf := make([]byte, 0, len(units))
	for i := 0; i < len(units); i++ {
		u := rune(units[i])
		if utf16.IsSurrogate(u) && i+1 < len(units) {
			if r := utf16.DecodeRune(u, rune(units[i+1])); r != utf8.RuneError {
				buf = utf8.AppendRune(buf, r)
				i++
				continue
			}
		}
		if utf16.IsSurrogate(u) {
			buf = appendSurrogate(buf, units[i])
			continue
		}
		buf = utf8.AppendRune(buf, u)
	}
	return string(buf)
}

// decodeSurrogate reads the three-byte WTF-8 form of a surrogate unit
// (U+D800..U+DFFF) at the front of s.
func decodeSurrogate(s string) (uint16, bool) {
	if len(s) < 3 || s[0] != 0xED || s[1] < 0xA0 || s[1] > 0xBF || s[2]&0xC0 != 0x80 {
		return 0, false
	}
	return uint16(s[0]&0x0F)<<12 | uint16(s[1]&0x3F)<<6 | uint16(s[2]&0x3F), true
}

func appendSurrogate(buf []byte, u uint16) []byte {
	return append(buf, 0xE0|byte(u>>12), 0x80|byte(u>>6)&0x3F, 0x80|byte(u)&0x3F)
}
