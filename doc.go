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

/*
Package magstripe generates the electromagnetic waveform a magnetic-stripe
card reader expects to see during a swipe, from plain ISO/IEC 7811 track
strings.

Track 1 and track 2 strings are encoded character by character into a
self-clocking F2F (Aiken biphase) bit stream with per-character odd parity
and a trailing LRC character, then played through a two-phase coil driver.
Playback can run forward (live, straight from the track string) or in
reverse (from a precomputed per-character cache), and successive
activations rotate through the four forward/reverse combinations of the
two tracks to cover readers that expect either swipe direction.

Basic Usage:

	import (
	    "github.com/MagstripeProject/go-magstripe"
	    "github.com/MagstripeProject/go-magstripe/driver/gpio"
	)

	// Create a GPIO coil driver (pin A, pin !A, enable)
	drv, err := gpio.New("GPIO23", "GPIO24", "GPIO25")
	if err != nil {
	    log.Fatal(err)
	}
	defer drv.Close()

	cards := []magstripe.Card{{
	    Name:   "test",
	    Track1: "%B1234567890123456^DOE/JOHN^99011200000000000000000?",
	    Track2: ";1234567890123456=99011200000000000000?",
	}}

	player, err := magstripe.NewPlayer(drv, cards,
	    magstripe.WithClockPeriod(200*time.Microsecond),
	)
	if err != nil {
	    log.Fatal(err)
	}

	// One activation: plays both tracks in the current mode,
	// then advances the mode rotation.
	if err := player.Play(); err != nil {
	    log.Fatal(err)
	}

Driver Selection:

The hardware boundary is the Driver interface; backends live under driver/:

  - gpio: periph.io pins driving an H-bridge around the coil
  - uart: serial bridge forwarding pin states to an external MCU
  - stub: no hardware, for dry runs

Error Handling:

Track strings are validated only when a Card is constructed or loaded;
the encoding path itself assumes well-formed input and produces garbage
for anything else. Playback is open loop: there is no feedback channel
from the reader, so a bad swipe surfaces nowhere.

Thread Safety:

Player operations are not thread-safe. Playback is synchronous and must
not be interleaved with card switches; readers decode transition timing,
and an interrupted track is an unreadable track.
*/
package magstripe
