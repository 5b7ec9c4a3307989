// go-magstripe
// Copyright (c) 2025 The Magstripe Project Contributors.
// SPDX-License-Identifier: LGPL-3.0-or-later
//
// This file is part of go-magstripe.
//
// go-magstripe is free software; you can redistribute it and/or
// modify it under the terms of the GNU Lesser General Public
// License as published by the Free Software Foundation; either
// version 3 of the License, or (at your option) any later version.
//
// go-magstripe is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the GNU
// Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with go-magstripe; if not, write to the Free Software Foundation,
// Inc., 51 Franklin Street, Fifth Floor, Boston, MA  02110-1301, USA.

package magstripe_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	magstripe "github.com/MagstripeProject/go-magstripe"
	testutil "github.com/MagstripeProject/go-magstripe/internal/testing"
)

const (
	exampleTrack1 = "%B1234567890123456^DOE/JOHN^99011200000000000000000?"
	exampleTrack2 = ";1234567890123456=99011200000000000000?"
)

func TestEncodeRoundTrip(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		format magstripe.Format
		track  string
	}{
		{name: "track1", format: magstripe.Track1, track: exampleTrack1},
		{name: "track2", format: magstripe.Track2, track: exampleTrack2},
		{name: "track2 short", format: magstripe.Track2, track: ";123=456?"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			require.NoError(t, magstripe.ValidateTrack(tt.format, tt.track))

			rec := testutil.NewBitRecorder()
			enc := magstripe.NewEncoder(tt.format, "", 25)
			require.NoError(t, enc.Encode(rec, tt.track))

			decoded, err := testutil.DecodeBits(tt.format, rec.Bits)
			require.NoError(t, err)
			assert.Equal(t, tt.track, decoded)
		})
	}
}

// TestEncodeTrack2ExampleStructure pins the frame of the example vector:
// 25 padding zeros, 39 track characters plus the LRC at 5 bits each, 25
// trailing zeros.
func TestEncodeTrack2ExampleStructure(t *testing.T) {
	t.Parallel()

	rec := testutil.NewBitRecorder()
	enc := magstripe.NewEncoder(magstripe.Track2, "", 25)
	require.NoError(t, enc.Encode(rec, exampleTrack2))

	const (
		padding = 25
		chars   = len(exampleTrack2) + 1 // track characters plus LRC
		width   = 5
	)
	require.Len(t, rec.Bits, padding+chars*width+padding)

	for i := 0; i < padding; i++ {
		assert.Equal(t, byte(0), rec.Bits[i], "leading padding bit %d", i)
		assert.Equal(t, byte(0), rec.Bits[len(rec.Bits)-1-i], "trailing padding bit %d", i)
	}

	// First character after padding is the start sentinel ';' = 0x0B,
	// LSB first: 1 1 0 1, parity 0.
	assert.Equal(t, []byte{1, 1, 0, 1, 0}, rec.Bits[padding:padding+width])
}

func TestServiceCodeSubstitution(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		format magstripe.Format
		track  string
		want   string
	}{
		{
			// The three service-code digits sit right after the four
			// expiry digits: the 5th through 7th characters past the
			// final separator, and nothing else changes.
			name:   "track2",
			format: magstripe.Track2,
			track:  ";1234567890123456=99011200000000000000?",
			want:   ";1234567890123456=99011010000000000000?",
		},
		{
			name:   "track1 counts from second separator",
			format: magstripe.Track1,
			track:  "%B1234567890123456^DOE/JOHN^99011200000000000000000?",
			want:   "%B1234567890123456^DOE/JOHN^99011010000000000000000?",
		},
		{
			// Window is positional: a track too short to reach it is
			// untouched.
			name:   "track2 short",
			format: magstripe.Track2,
			track:  ";123=456?",
			want:   ";123=456?",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			rec := testutil.NewBitRecorder()
			enc := magstripe.NewEncoder(tt.format, "101", 25)
			require.NoError(t, enc.Encode(rec, tt.track))

			decoded, err := testutil.DecodeBits(tt.format, rec.Bits)
			require.NoError(t, err)
			assert.Equal(t, tt.want, decoded)
		})
	}
}

func TestEncodeNoPadding(t *testing.T) {
	t.Parallel()

	rec := testutil.NewBitRecorder()
	enc := magstripe.NewEncoder(magstripe.Track2, "", 0)
	require.NoError(t, enc.Encode(rec, ";123=456?"))

	// 9 characters plus LRC, no padding on either side.
	require.Len(t, rec.Bits, 10*5)
	assert.Equal(t, byte(1), rec.Bits[0], "stream must open with the start sentinel's LSB")
}

func TestEncodeWriteError(t *testing.T) {
	t.Parallel()

	rec := testutil.NewBitRecorder()
	rec.FailAfter = 30
	rec.Err = assert.AnError

	enc := magstripe.NewEncoder(magstripe.Track2, "", 25)
	err := enc.Encode(rec, exampleTrack2)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}
