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

package magstripe

import (
	"math/bits"
	"testing"
)

func TestParityBitOddRule(t *testing.T) {
	t.Parallel()

	// For every possible 6-bit value, data bits plus the parity bit must
	// have an odd population count.
	for value := 0; value < 64; value++ {
		p := newParity()
		v := value
		for j := 0; j < 6; j++ {
			p = p.fold(byte(v & 1))
			v >>= 1
		}
		total := bits.OnesCount(uint(value)) + int(p.bit())
		if total%2 != 1 {
			t.Errorf("value %#02x: %d set bits including parity, want odd", value, total)
		}
	}
}

func TestParityBitEmptySeed(t *testing.T) {
	t.Parallel()
	// Zero data bits folded: parity must still be 1 to keep the count odd.
	if got := newParity().bit(); got != 1 {
		t.Errorf("fresh parity bit = %d, want 1", got)
	}
}

func TestLRCColumnXOR(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name   string
		values []byte
		want   byte
	}{
		{name: "empty", values: nil, want: 0x00},
		{name: "single", values: []byte{0x0B}, want: 0x0B},
		{name: "self cancel", values: []byte{0x0B, 0x0B}, want: 0x00},
		{name: "columns", values: []byte{0x01, 0x02, 0x04, 0x08}, want: 0x0F},
		{name: "mixed", values: []byte{0x0B, 0x01, 0x0D}, want: 0x07},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			lrc := lrcAccum(0)
			for _, value := range tt.values {
				for j := 0; j < 4; j++ {
					lrc = lrc.fold((value>>j)&1, j)
				}
			}
			if got := lrc.value(); got != tt.want {
				t.Errorf("lrc = %#02x, want %#02x", got, tt.want)
			}
		})
	}
}

// TestAllZeroTrackGolden pins the hand-computable stream for a synthetic
// track of all-zero data values: every character is five bits 00001
// (four zero data bits then parity 1), and the LRC character is the same.
func TestAllZeroTrackGolden(t *testing.T) {
	t.Parallel()

	const n = 4 // characters of '0' (data value 0) on track 2
	enc := NewEncoder(Track2, "", 0)

	var rec recordedBits
	if err := enc.Encode(&rec, "0000"); err != nil {
		t.Fatalf("Encode() error = %v", err)
	}

	want := make([]byte, 0, (n+1)*5)
	for i := 0; i < n+1; i++ { // n characters plus the LRC character
		want = append(want, 0, 0, 0, 0, 1)
	}

	if len(rec) != len(want) {
		t.Fatalf("bit count = %d, want %d", len(rec), len(want))
	}
	for i := range want {
		if rec[i] != want[i] {
			t.Fatalf("bit %d = %d, want %d", i, rec[i], want[i])
		}
	}
}

// recordedBits is a minimal in-package bit sink.
type recordedBits []byte

func (r *recordedBits) WriteBit(bit byte) error {
	*r = append(*r, bit&1)
	return nil
}
