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

package magstripe_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	magstripe "github.com/MagstripeProject/go-magstripe"
	testutil "github.com/MagstripeProject/go-magstripe/internal/testing"
)

// TestEmitterF2F pins the modulation contract: a 0 bit is one transition
// per period, a 1 bit is two.
func TestEmitterF2F(t *testing.T) {
	t.Parallel()

	drv := testutil.NewCaptureDriver()
	em := magstripe.NewEmitter(drv, time.Nanosecond)

	require.NoError(t, em.WriteBit(0))
	assert.Equal(t, 1, drv.CoilToggles(), "0 bit must be a single transition")

	drv.Reset()
	require.NoError(t, em.WriteBit(1))
	assert.Equal(t, 2, drv.CoilToggles(), "1 bit must be two transitions")
}

func TestEmitterPhaseAlternates(t *testing.T) {
	t.Parallel()

	drv := testutil.NewCaptureDriver()
	em := magstripe.NewEmitter(drv, time.Nanosecond)

	for _, bit := range []byte{0, 1, 1, 0, 1} {
		require.NoError(t, em.WriteBit(bit))
	}

	// Every recorded coil event must flip the phase of the one before it;
	// readers ride the transitions, a repeated level is a dropout.
	var last *bool
	for i, e := range drv.Events {
		if e.Kind != testutil.EventCoil {
			continue
		}
		on := e.On
		if last != nil {
			require.NotEqual(t, *last, on, "event %d repeats the phase", i)
		}
		last = &on
	}
}

func TestEmitterDriverError(t *testing.T) {
	t.Parallel()

	drv := testutil.NewCaptureDriver()
	drv.FailCoil = assert.AnError
	em := magstripe.NewEmitter(drv, time.Nanosecond)

	err := em.WriteBit(0)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}
