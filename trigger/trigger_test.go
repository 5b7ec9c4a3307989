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

package trigger

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeSource fires a fixed number of triggers, then reports the context
// ending.
type fakeSource struct {
	remaining int
	closed    bool
}

func (s *fakeSource) Wait(ctx context.Context) error {
	if s.remaining == 0 {
		return context.Canceled
	}
	s.remaining--
	return ctx.Err()
}

func (s *fakeSource) Close() error {
	s.closed = true
	return nil
}

type fakePlayer struct {
	plays int
	err   error
}

func (p *fakePlayer) Play() error {
	p.plays++
	return p.err
}

func TestNewRunnerValidation(t *testing.T) {
	t.Parallel()

	_, err := NewRunner(nil, &fakeSource{})
	require.Error(t, err)

	_, err = NewRunner(&fakePlayer{}, nil)
	require.Error(t, err)

	r, err := NewRunner(&fakePlayer{}, &fakeSource{})
	require.NoError(t, err)
	require.NotNil(t, r)
}

func TestRunOnePlayPerTrigger(t *testing.T) {
	t.Parallel()

	player := &fakePlayer{}
	source := &fakeSource{remaining: 3}
	r, err := NewRunner(player, source)
	require.NoError(t, err)

	require.NoError(t, r.Run(context.Background()))
	assert.Equal(t, 3, player.plays)
}

func TestRunStopsOnContextEnd(t *testing.T) {
	t.Parallel()

	player := &fakePlayer{}
	source := &fakeSource{remaining: 100}
	r, err := NewRunner(player, source)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	// A cancelled context surfaces through Wait and ends the loop
	// cleanly; playback never starts.
	require.NoError(t, r.Run(ctx))
	assert.Zero(t, player.plays)
}

func TestRunPropagatesPlayError(t *testing.T) {
	t.Parallel()

	player := &fakePlayer{err: assert.AnError}
	source := &fakeSource{remaining: 5}
	r, err := NewRunner(player, source)
	require.NoError(t, err)

	err = r.Run(context.Background())
	require.ErrorIs(t, err, assert.AnError)
	assert.Equal(t, 1, player.plays)
}
