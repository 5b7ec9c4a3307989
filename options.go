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
	"fmt"
	"time"
)

// Option is a functional option for configuring a Player.
type Option func(*Player) error

// WithClockPeriod sets the F2F half-bit period. Readers care about
// transition ratios, not absolute speed, but most decode reliably only in
// a narrow band around the default 200µs.
func WithClockPeriod(period time.Duration) Option {
	return func(p *Player) error {
		if period <= 0 {
			return fmt.Errorf("clock period %v: %w", period, ErrInvalidConfig)
		}
		p.config.ClockPeriod = period
		return nil
	}
}

// WithPadding sets the number of leading and trailing zero bits per track.
// The zeros give the reader's clock recovery something to lock onto before
// the start sentinel arrives.
func WithPadding(bits int) Option {
	return func(p *Player) error {
		if bits < 0 {
			return fmt.Errorf("padding %d: %w", bits, ErrInvalidConfig)
		}
		p.config.Padding = bits
		return nil
	}
}

// WithServiceCode enables service-code substitution with the given
// three-character replacement, applied positionally to every played track.
func WithServiceCode(code string) Option {
	return func(p *Player) error {
		if len(code) != 3 {
			return fmt.Errorf("service code %q must be 3 characters: %w", code, ErrInvalidConfig)
		}
		for i := 0; i < len(code); i++ {
			if code[i] < '0' || code[i] > '9' {
				return fmt.Errorf("service code %q must be numeric: %w", code, ErrInvalidConfig)
			}
		}
		p.config.ServiceCode = code
		return nil
	}
}

// WithTrackGap sets the idle time between the two track bursts of one
// activation.
func WithTrackGap(gap time.Duration) Option {
	return func(p *Player) error {
		if gap < 0 {
			return fmt.Errorf("track gap %v: %w", gap, ErrInvalidConfig)
		}
		p.config.TrackGap = gap
		return nil
	}
}

// WithCard selects the initially active card instead of card 0.
func WithCard(index int) Option {
	return func(p *Player) error {
		if index < 0 || index >= len(p.cards) {
			return fmt.Errorf("index %d of %d cards: %w", index, len(p.cards), ErrNoSuchCard)
		}
		p.active = index
		return nil
	}
}
