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

// ValidateTrack checks a track string against the format's layout rules:
// sentinels at both ends, every character inside the legal printable
// range, and the exact separator count (two for track 1, one for track 2).
// An empty string is accepted and means the card carries no data for this
// track. This is the only validation in the library; the encoding path
// assumes its input passed here.
func ValidateTrack(f Format, track string) error {
	if track == "" {
		return nil
	}

	a := f.attrs()
	if len(track) < 3 {
		return &ValidationError{Format: f, Reason: "too short to hold sentinels and data"}
	}
	if track[0] != a.start {
		return &ValidationError{Format: f, Reason: fmt.Sprintf("missing start sentinel %q", a.start)}
	}
	if track[len(track)-1] != a.end {
		return &ValidationError{Format: f, Reason: fmt.Sprintf("missing end sentinel %q", a.end)}
	}

	separators := 0
	for i := 0; i < len(track); i++ {
		c := track[i]
		if c < a.charMin || c > a.charMax {
			return &ValidationError{
				Format: f,
				Reason: fmt.Sprintf("character %q at %d outside range [%#02x, %#02x]", c, i, a.charMin, a.charMax),
			}
		}
		if c == a.separator {
			separators++
		}
	}

	// Two separators delimit PAN / name / discretionary data on track 1;
	// track 2 has a single PAN / discretionary split.
	want := 2
	if f == Track2 {
		want = 1
	}
	if separators != want {
		return &ValidationError{
			Format: f,
			Reason: fmt.Sprintf("expected %d field separator(s), found %d", want, separators),
		}
	}
	return nil
}
