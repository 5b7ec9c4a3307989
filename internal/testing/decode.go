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

package testing

import (
	"errors"
	"fmt"

	magstripe "github.com/MagstripeProject/go-magstripe"
)

// DecodeBits runs the read side of the encoding over a forward bit
// stream: skip the leading zeros, split into BitWidth-sized characters,
// check odd parity on each, collect characters through the end sentinel,
// then verify the LRC character and require only zeros afterward. It
// returns the recovered track string.
func DecodeBits(f magstripe.Format, bits []byte) (string, error) {
	width := f.BitWidth()
	dataBits := f.DataBits()
	endValue := f.EndSentinel() - f.Offset()

	i := 0
	for i < len(bits) && bits[i] == 0 {
		i++
	}
	if i == len(bits) {
		return "", errors.New("no data bits in stream")
	}

	var out []byte
	var lrc byte
	sawEnd := false
	checkedLRC := false

	for !checkedLRC {
		if i+width > len(bits) {
			return "", fmt.Errorf("truncated character at bit %d", i)
		}

		var value byte
		ones := 0
		for j := 0; j < dataBits; j++ {
			b := bits[i+j]
			value |= b << j
			if b == 1 {
				ones++
			}
		}
		parity := bits[i+dataBits]
		if (ones+int(parity))%2 != 1 {
			return "", fmt.Errorf("even parity on character %d", len(out))
		}
		i += width

		if sawEnd {
			if value != lrc {
				return "", fmt.Errorf("LRC mismatch: got %#02x, want %#02x", value, lrc)
			}
			checkedLRC = true
			continue
		}

		out = append(out, value+f.Offset())
		lrc ^= value
		if value == endValue {
			sawEnd = true
		}
	}

	for ; i < len(bits); i++ {
		if bits[i] != 0 {
			return "", fmt.Errorf("non-zero bit %d after LRC", i)
		}
	}
	return string(out), nil
}

// ReverseBits returns the time-reversal of a bit stream.
func ReverseBits(bits []byte) []byte {
	out := make([]byte, len(bits))
	for i, b := range bits {
		out[len(bits)-1-i] = b
	}
	return out
}
