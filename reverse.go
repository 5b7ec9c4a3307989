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

import "fmt"

// cacheTerminator marks the end of a reverse cache. A packed character can
// never collide with it: the widest format uses 7 of the 8 bits.
const cacheTerminator = 0xFF

// BuildReverseCache precomputes the packed form of a track so reverse
// playback needs no live arithmetic: one byte per character with the data
// bits from bit 0 and the parity bit at bit position DataBits, the LRC
// character packed the same way as the final entry, then the terminator.
// Character, parity, LRC and substitution semantics are identical to
// Encode; the two must never drift apart, since the reader sees the same
// track either way.
func (e *Encoder) BuildReverseCache(track string) []byte {
	dataBits := e.format.DataBits()
	cache := make([]byte, 0, len(track)+2)

	lrc := lrcAccum(0)
	pos := 0
	for i := 0; i < len(track); i++ {
		stored := track[i]
		value, _ := e.format.encodeChar(e.pickChar(pos, stored))
		pos = e.format.subAdvance(pos, stored)

		var packed byte
		parity := newParity()
		for j := 0; j < dataBits; j++ {
			bit := value & 1
			packed |= bit << j
			parity = parity.fold(bit)
			lrc = lrc.fold(bit, j)
			value >>= 1
		}
		packed |= parity.bit() << dataBits
		cache = append(cache, packed)
	}

	// Checksum character, packed like any other.
	value := lrc.value()
	var packed byte
	parity := newParity()
	for j := 0; j < dataBits; j++ {
		bit := value & 1
		packed |= bit << j
		parity = parity.fold(bit)
		value >>= 1
	}
	packed |= parity.bit() << dataBits

	return append(cache, packed, cacheTerminator)
}

// PlayReverse streams the time-reversed track waveform from a cache built
// by BuildReverseCache: characters from the terminator backward, each
// entry's bits from the parity bit down to data bit 0. Combined, that is
// the exact bit-for-bit reversal of the forward stream, padding included.
func (e *Encoder) PlayReverse(w BitWriter, cache []byte) error {
	if len(cache) == 0 || cache[len(cache)-1] != cacheTerminator {
		return fmt.Errorf("%s reverse playback: %w", e.format, ErrStaleCache)
	}

	if err := writePadding(w, e.padding); err != nil {
		return fmt.Errorf("leading padding: %w", err)
	}

	top := e.format.DataBits() // parity bit position
	for i := len(cache) - 2; i >= 0; i-- {
		for j := top; j >= 0; j-- {
			if err := w.WriteBit((cache[i] >> j) & 1); err != nil {
				return fmt.Errorf("%s reverse character %d: %w", e.format, i, err)
			}
		}
	}

	if err := writePadding(w, e.padding); err != nil {
		return fmt.Errorf("trailing padding: %w", err)
	}
	return nil
}
