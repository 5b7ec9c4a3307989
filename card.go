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

// Card is one entry of the read-only card library: a name and one track
// string per supported format. A track string may be empty when the card
// has no data on that track; at least one track must be present.
type Card struct {
	Name   string
	Track1 string
	Track2 string
}

// Track returns the card's stored string for the given format.
func (c *Card) Track(f Format) string {
	if f == Track1 {
		return c.Track1
	}
	return c.Track2
}

// Validate rejects malformed cards. This is the single point where a bad
// track string is reportable; past here the encoding path trusts its
// input.
func (c *Card) Validate() error {
	if c.Track1 == "" && c.Track2 == "" {
		return &ValidationError{Format: Track1, Reason: "card has no track data"}
	}
	if err := ValidateTrack(Track1, c.Track1); err != nil {
		return err
	}
	return ValidateTrack(Track2, c.Track2)
}
