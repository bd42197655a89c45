// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package pathcodec

import (
	"bytes"
	"errors"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBytes_RoundTrip(t *testing.T) {
	paths := []string{
		"",
		"/home/user/.cargo/script-cache/foo",
		"relative/dir/file.rs",
		"/tmp/\xff\xfe not utf-8 \x80",
		"/tmp/caf\u00e9/\U0001F980.rs",
		"\x00embedded nul",
	}

	for _, p := range paths {
		enc := Bytes{}.Encode(p)
		assert.Equal(t, []byte(p), enc, "byte codec must not transform %q", p)

		got, err := Bytes{}.Decode(enc)
		require.NoError(t, err)
		assert.Equal(t, p, got)
	}
}

func TestWide_EncodeLayout(t *testing.T) {
	// 'C' = 0x0043, U+00E9 = 0x00E9, U+1F980 = D83E DD80.
	enc := Wide{}.Encode("C\u00e9\U0001F980")
	assert.Equal(t, []byte{0x43, 0x00, 0xE9, 0x00, 0x3E, 0xD8, 0x80, 0xDD}, enc)
}

func TestWide_RoundTripUnits(t *testing.T) {
	tests := []struct {
		name  string
		units []uint16
	}{
		{name: "empty", units: []uint16{}},
		{name: "ascii", units: []uint16{'C', ':', '\\', 'x'}},
		{name: "pair", units: []uint16{0xD83E, 0xDD80}},
		{name: "lone high surrogate", units: []uint16{'a', 0xD800, 'b'}},
		{name: "lone low surrogate", units: []uint16{0xDC00}},
		{name: "reversed pair", units: []uint16{0xDC00, 0xD800}},
		{name: "trailing high surrogate", units: []uint16{'x', 0xDBFF}},
		{name: "replacement char", units: []uint16{0xFFFD}},
		{name: "max unit", units: []uint16{0xFFFF, 0x0000}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := FromUnits(tt.units)
			enc := Wide{}.Encode(path)
			assert.Equal(t, EncodeUnits(tt.units), enc)

			got, err := Wide{}.Decode(enc)
			require.NoError(t, err)
			assert.Equal(t, path, got)
			assert.Equal(t, tt.units, Units(got))
		})
	}
}

func TestWide_RoundTripStrings(t *testing.T) {
	paths := []string{
		`C:\Users\me\AppData\Local\Cargo`,
		"caf\u00e9 \U0001F980",
		"lone \xed\xa0\x80 high",
		"lone \xed\xbf\xbf low",
	}
	for _, p := range paths {
		got, err := Wide{}.Decode(Wide{}.Encode(p))
		require.NoError(t, err)
		assert.Equal(t, p, got)
	}
}

func TestWide_DecodeOddLength(t *testing.T) {
	_, err := Wide{}.Decode([]byte{0x41, 0x00, 0x42})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrCorrupt))
}

func TestWide_InvalidBytesBecomeReplacement(t *testing.T) {
	assert.Equal(t, []uint16{'a', 0xFFFD, 'b'}, Units("a\xffb"))
}

func TestWriteRead(t *testing.T) {
	for _, c := range []Codec{Bytes{}, Wide{}} {
		var buf bytes.Buffer
		require.NoError(t, Write(&buf, c, "/srv/scripts/hello.rs"))
		got, err := Read(&buf, c)
		require.NoError(t, err)
		assert.Equal(t, "/srv/scripts/hello.rs", got)
	}
}

func TestRead_PropagatesReaderError(t *testing.T) {
	_, err := Read(iotest.ErrReader(errors.New("disk gone")), Native)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk gone")
}
