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

// Package trigger runs the idle/wake lifecycle around playback: the
// system sits idle until a wake source fires, plays exactly one
// activation, and returns to idle. A wake that arrives during playback is
// not queued; playback is synchronous and the source is not watched while
// it runs.
package trigger

import (
	"context"
	"errors"
)

// Source is an edge-triggered wake signal. Wait blocks until one trigger
// arrives or the context ends.
type Source interface {
	Wait(ctx context.Context) error
	Close() error
}

// Player is the playback surface the runner drives; *magstripe.Player
// satisfies it.
type Player interface {
	Play() error
}

// Runner loops idle → wake → one playback activation.
type Runner struct {
	player Player
	source Source
}

// NewRunner wires a wake source to a player.
func NewRunner(player Player, source Source) (*Runner, error) {
	if player == nil {
		return nil, errors.New("nil player")
	}
	if source == nil {
		return nil, errors.New("nil wake source")
	}
	return &Runner{player: player, source: source}, nil
}

// Run services wake triggers until the context ends. A playback error
// stops the loop; an activation that made it to the coil cannot be
// retried anyway, the reader saw whatever it saw.
func (r *Runner) Run(ctx context.Context) error {
	for {
		if err := r.source.Wait(ctx); err != nil {
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				return nil
			}
			return err
		}
		if err := r.player.Play(); err != nil {
			return err
		}
	}
}
