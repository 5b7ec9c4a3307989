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

// BitWriter consumes encoded bits in playback order. The Emitter is the
// production implementation; tests substitute capture sinks.
type BitWriter interface {
	WriteBit(bit byte) error
}

// Substitution window counter constants. The counter starts at 0 and each
// field separator adds its format weight; reaching subThreshold arms the
// window (counter flips to -1) and every following character decrements it.
// The service code is overwritten while the counter sits strictly between
// subWindowLow and subWindowHigh, which is the 5th through 7th character
// after the final separator: the three service-code digits right after the
// four expiry digits. These bounds encode observed reader behavior; do not
// tune them.
const (
	subThreshold  = 2
	subWindowHigh = -4
	subWindowLow  = -8
)

// subAdvance returns the substitution counter after consuming one stored
// track character. The counter is a plain value threaded through the
// encode loop; nothing about a traversal outlives it.
func (f Format) subAdvance(pos int, c byte) int {
	if c == f.Separator() {
		pos += f.attrs().sepWeight
		if pos == subThreshold {
			pos = -1
		}
		return pos
	}
	if pos < 0 {
		pos--
	}
	return pos
}

// subIndex maps an armed counter value to an index into the replacement
// service code, reporting whether the window is active at this position.
func subIndex(pos int) (int, bool) {
	if pos > subWindowLow && pos < subWindowHigh {
		return -pos - 5, true
	}
	return 0, false
}

// Encoder turns one track string into the self-clocking bit stream for one
// format: leading padding zeros, every character as LSB-first data bits
// followed by odd parity, the LRC character, trailing padding zeros.
type Encoder struct {
	serviceCode string
	format      Format
	padding     int
}

// NewEncoder returns an encoder for the given format. serviceCode, when
// non-empty, replaces the three service-code characters of every encoded
// track; empty disables the substitution. padding is the number of zero
// bits emitted before and after the track body.
func NewEncoder(format Format, serviceCode string, padding int) *Encoder {
	return &Encoder{
		format:      format,
		serviceCode: serviceCode,
		padding:     padding,
	}
}

// pickChar resolves the character to encode at the current window position:
// the stored track character, or its service-code replacement when the
// window is active. Window position is purely positional; the stored
// character's content only matters for separator detection in subAdvance.
func (e *Encoder) pickChar(pos int, stored byte) byte {
	if e.serviceCode == "" {
		return stored
	}
	idx, active := subIndex(pos)
	if !active || idx >= len(e.serviceCode) {
		return stored
	}
	return e.serviceCode[idx]
}

// writeChar emits one character's data bits LSB first, folding each into
// the parity register and the LRC accumulator, then the parity bit.
func writeChar(w BitWriter, value byte, dataBits int, lrc lrcAccum) (lrcAccum, error) {
	parity := newParity()
	for j := 0; j < dataBits; j++ {
		bit := value & 1
		if err := w.WriteBit(bit); err != nil {
			return lrc, err
		}
		parity = parity.fold(bit)
		lrc = lrc.fold(bit, j)
		value >>= 1
	}
	return lrc, w.WriteBit(parity.bit())
}

// writeLRC emits the finalized checksum character. The LRC's bits are not
// folded back into any accumulator; it is the last character of the track.
func writeLRC(w BitWriter, lrc lrcAccum, dataBits int) error {
	value := lrc.value()
	parity := newParity()
	for j := 0; j < dataBits; j++ {
		bit := value & 1
		if err := w.WriteBit(bit); err != nil {
			return err
		}
		parity = parity.fold(bit)
		value >>= 1
	}
	return w.WriteBit(parity.bit())
}

func writePadding(w BitWriter, n int) error {
	for i := 0; i < n; i++ {
		if err := w.WriteBit(0); err != nil {
			return err
		}
	}
	return nil
}

// Encode streams the track's full bit sequence to w in original character
// order. The track string is assumed well formed (see Card validation);
// malformed input yields a waveform no reader will decode, nothing more.
// With a real-time BitWriter this call blocks for the whole waveform
// duration and cannot be interrupted mid-track.
func (e *Encoder) Encode(w BitWriter, track string) error {
	if err := writePadding(w, e.padding); err != nil {
		return fmt.Errorf("leading padding: %w", err)
	}

	dataBits := e.format.DataBits()
	lrc := lrcAccum(0)
	pos := 0
	for i := 0; i < len(track); i++ {
		stored := track[i]
		value, _ := e.format.encodeChar(e.pickChar(pos, stored))
		pos = e.format.subAdvance(pos, stored)

		var err error
		lrc, err = writeChar(w, value, dataBits, lrc)
		if err != nil {
			return fmt.Errorf("%s character %d: %w", e.format, i, err)
		}
	}

	if err := writeLRC(w, lrc, dataBits); err != nil {
		return fmt.Errorf("%s checksum: %w", e.format, err)
	}
	if err := writePadding(w, e.padding); err != nil {
		return fmt.Errorf("trailing padding: %w", err)
	}
	return nil
}
