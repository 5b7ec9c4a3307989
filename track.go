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

// Format identifies one of the two supported ISO/IEC 7811 track layouts.
type Format int

const (
	// Track1 is the IATA alphanumeric track: 6 data bits plus parity per
	// character, offset from 0x20, sentinels '%' and '?', separator '^'.
	Track1 Format = iota
	// Track2 is the ABA numeric track: 4 data bits plus parity per
	// character, offset from 0x30, sentinels ';' and '?', separator '='.
	Track2
)

// formatCount is the number of supported track formats.
const formatCount = 2

// trackAttrs holds the fixed per-format encoding attributes.
type trackAttrs struct {
	name      string
	dataBits  int  // data bits per character, excluding parity
	offset    byte // subtracted from the character code to get the data value
	start     byte // start sentinel
	end       byte // end sentinel
	separator byte // field separator
	charMin   byte // lowest legal character
	charMax   byte // highest legal character
	sepWeight int  // contribution of one separator to the substitution counter
}

var trackAttrTable = [formatCount]trackAttrs{
	Track1: {
		name:      "track1",
		dataBits:  6,
		offset:    0x20,
		start:     '%',
		end:       '?',
		separator: '^',
		charMin:   0x20,
		charMax:   0x5F,
		sepWeight: 1,
	},
	Track2: {
		name:      "track2",
		dataBits:  4,
		offset:    0x30,
		start:     ';',
		end:       '?',
		separator: '=',
		charMin:   0x30,
		charMax:   0x3F,
		sepWeight: 2,
	},
}

// Formats returns the supported track formats in playback order.
func Formats() [formatCount]Format {
	return [formatCount]Format{Track1, Track2}
}

func (f Format) attrs() *trackAttrs {
	return &trackAttrTable[f]
}

// String returns the format name.
func (f Format) String() string {
	if f < 0 || int(f) >= formatCount {
		return "unknown"
	}
	return f.attrs().name
}

// DataBits returns the number of data bits per character, excluding parity.
func (f Format) DataBits() int {
	return f.attrs().dataBits
}

// BitWidth returns the full encoded width of one character: data bits plus
// the parity bit.
func (f Format) BitWidth() int {
	return f.attrs().dataBits + 1
}

// Offset returns the value subtracted from a character code to get its
// data value.
func (f Format) Offset() byte {
	return f.attrs().offset
}

// StartSentinel returns the character that opens a track of this format.
func (f Format) StartSentinel() byte {
	return f.attrs().start
}

// EndSentinel returns the character that closes a track of this format.
func (f Format) EndSentinel() byte {
	return f.attrs().end
}

// Separator returns the field separator character for this format.
func (f Format) Separator() byte {
	return f.attrs().separator
}

// encodeChar maps a track character to its raw data value and total encoded
// bit width. It is pure and allocation free. Characters outside the format's
// legal range are not detected here; feeding one produces a garbage value,
// which is the documented precondition violation. Validation happens once,
// at Card construction time.
func (f Format) encodeChar(c byte) (value byte, width int) {
	a := f.attrs()
	return c - a.offset, a.dataBits + 1
}
