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

// parityBit is the running odd-parity register for one character. It is
// seeded to 1, so a character with no set data bits still carries parity 1
// and the emitted bit count stays odd.
type parityBit byte

// newParity returns a fresh odd-parity register.
func newParity() parityBit {
	return 1
}

// fold XORs one data bit into the register.
func (p parityBit) fold(bit byte) parityBit {
	return p ^ parityBit(bit&1)
}

// bit returns the parity bit to emit after the character's data bits.
func (p parityBit) bit() byte {
	return byte(p) & 1
}

// lrcAccum is the longitudinal redundancy check register for one track:
// the column-wise XOR of every data bit, at its bit position, across all
// characters. It is reset (zero value) at the start of a track encode and
// finalized as one extra synthetic character after the track's natural end.
type lrcAccum byte

// fold XORs one data bit into the accumulator at bit position pos.
func (l lrcAccum) fold(bit byte, pos int) lrcAccum {
	return l ^ lrcAccum((bit&1)<<pos)
}

// value returns the finalized checksum character data value. Its own odd
// parity bit is computed the same way as any other character's.
func (l lrcAccum) value() byte {
	return byte(l)
}
