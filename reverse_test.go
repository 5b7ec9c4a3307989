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

// TestReverseIsTimeReversalOfForward is the central reverse-playback
// property: same track, same checksum and parity bits, opposite bit and
// character order, padding included.
func TestReverseIsTimeReversalOfForward(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		format      magstripe.Format
		track       string
		serviceCode string
	}{
		{name: "track1", format: magstripe.Track1, track: exampleTrack1},
		{name: "track2", format: magstripe.Track2, track: exampleTrack2},
		{name: "track2 with substitution", format: magstripe.Track2, track: exampleTrack2, serviceCode: "101"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			enc := magstripe.NewEncoder(tt.format, tt.serviceCode, 25)

			forward := testutil.NewBitRecorder()
			require.NoError(t, enc.Encode(forward, tt.track))

			reverse := testutil.NewBitRecorder()
			cache := enc.BuildReverseCache(tt.track)
			require.NoError(t, enc.PlayReverse(reverse, cache))

			assert.Equal(t, testutil.ReverseBits(forward.Bits), reverse.Bits)
		})
	}
}

func TestBuildReverseCachePacking(t *testing.T) {
	t.Parallel()

	enc := magstripe.NewEncoder(magstripe.Track2, "", 0)
	cache := enc.BuildReverseCache(";0?")

	// ';' = 0x0B parity 0, '0' = 0x00 parity 1, '?' = 0x0F parity 1,
	// LRC = 0x0B^0x00^0x0F = 0x04 parity 0. Parity sits at bit 4.
	want := []byte{0x0B, 0x10, 0x1F, 0x04, 0xFF}
	assert.Equal(t, want, cache)
}

func TestPlayReverseRejectsBadCache(t *testing.T) {
	t.Parallel()

	enc := magstripe.NewEncoder(magstripe.Track2, "", 0)
	rec := testutil.NewBitRecorder()

	err := enc.PlayReverse(rec, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, magstripe.ErrStaleCache)

	// A cache missing its terminator never came from BuildReverseCache.
	err = enc.PlayReverse(rec, []byte{0x0B, 0x10})
	require.Error(t, err)
	assert.ErrorIs(t, err, magstripe.ErrStaleCache)
}
