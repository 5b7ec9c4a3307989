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

// Driver is the hardware boundary: a two-phase complementary coil drive
// plus an enable line. Implementations turn phase flips into coil current;
// backends live under driver/.
type Driver interface {
	// SetCoil drives the coil phase: phaseA true drives (A, !A) high/low,
	// false the opposite. Implementations must present both pins
	// complementary at all times.
	SetCoil(phaseA bool) error

	// SetEnable asserts or drops the driver enable line. Enable is held
	// for the whole of one track, padding included.
	SetEnable(on bool) error

	// Close releases the underlying hardware.
	Close() error

	// Type returns the driver backend type.
	Type() DriverType
}

// DriverType identifies a Driver backend.
type DriverType string

const (
	// DriverGPIO drives an H-bridge through periph.io GPIO pins.
	DriverGPIO DriverType = "gpio"
	// DriverUART forwards pin states over a serial bridge.
	DriverUART DriverType = "uart"
	// DriverStub performs no I/O.
	DriverStub DriverType = "stub"
	// DriverMock is a capturing driver for testing.
	DriverMock DriverType = "mock"
)

// Emitter converts encoded bits into F2F (Aiken biphase) phase
// transitions with fixed timing: every bit period starts with a
// transition, and a 1 bit adds a second transition mid-period. It is the
// single funnel between encoded bits and physical signal, and the only
// place real time is expressed.
type Emitter struct {
	driver Driver
	period time.Duration // half-bit period
	phase  bool
}

// NewEmitter wraps a driver with the given half-bit period. Player builds
// one internally; direct construction is for waveform-level tooling.
func NewEmitter(driver Driver, period time.Duration) *Emitter {
	return &Emitter{driver: driver, period: period}
}

// WriteBit plays one bit: toggle, hold a half-period, toggle again for a
// 1 bit, hold the second half-period. Readers decode the ratio between
// transition intervals, so both holds must be equal and steady.
func (e *Emitter) WriteBit(bit byte) error {
	if err := e.toggle(); err != nil {
		return err
	}
	e.hold()
	if bit&1 == 1 {
		if err := e.toggle(); err != nil {
			return err
		}
	}
	e.hold()
	return nil
}

func (e *Emitter) toggle() error {
	e.phase = !e.phase
	if err := e.driver.SetCoil(e.phase); err != nil {
		return fmt.Errorf("coil toggle: %w", err)
	}
	return nil
}

// hold waits one half-bit period. Timer sleep alone overshoots by tens of
// microseconds at this scale, so the tail of the period is spun.
func (e *Emitter) hold() {
	if e.period <= 0 {
		return
	}
	deadline := time.Now().Add(e.period)
	if slack := e.period - 50*time.Microsecond; slack > 0 {
		time.Sleep(slack)
	}
	for time.Now().Before(deadline) {
	}
}
