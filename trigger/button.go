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
	"fmt"
	"time"

	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpioreg"
	"periph.io/x/host/v3"
)

// edgePoll bounds how long one WaitForEdge call blocks, so context
// cancellation is noticed between polls.
const edgePoll = 100 * time.Millisecond

// defaultDebounce swallows contact bounce after a press.
const defaultDebounce = 50 * time.Millisecond

// Button is a GPIO wake source: a momentary switch to ground on a
// pulled-up pin, firing on the falling edge.
type Button struct {
	pin      gpio.PinIO
	debounce time.Duration
}

// NewButton configures the named pin as a pulled-up falling-edge input.
// debounce <= 0 selects the default window.
func NewButton(pinName string, debounce time.Duration) (*Button, error) {
	if _, err := host.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize periph host: %w", err)
	}

	pin := gpioreg.ByName(pinName)
	if pin == nil {
		return nil, fmt.Errorf("no GPIO pin named %q", pinName)
	}
	if err := pin.In(gpio.PullUp, gpio.FallingEdge); err != nil {
		return nil, fmt.Errorf("failed to configure pin %q as input: %w", pinName, err)
	}

	if debounce <= 0 {
		debounce = defaultDebounce
	}
	return &Button{pin: pin, debounce: debounce}, nil
}

// Wait blocks until a debounced press arrives or the context ends.
func (b *Button) Wait(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		if !b.pin.WaitForEdge(edgePoll) {
			continue
		}

		// Swallow bounce, then drain any edges it produced so the next
		// Wait doesn't fire on a stale one.
		time.Sleep(b.debounce)
		for b.pin.WaitForEdge(0) {
		}
		return nil
	}
}

// Close releases the pin.
func (b *Button) Close() error {
	if err := b.pin.Halt(); err != nil {
		return fmt.Errorf("failed to halt pin %s: %w", b.pin.Name(), err)
	}
	return nil
}
