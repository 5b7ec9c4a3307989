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

// Package gpio provides a periph.io coil driver: two complementary phase
// pins into an H-bridge around the emulation coil, plus an enable pin.
package gpio

import (
	"fmt"

	magstripe "github.com/MagstripeProject/go-magstripe"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpioreg"
	"periph.io/x/host/v3"
)

// Driver implements the magstripe.Driver interface over three GPIO pins.
type Driver struct {
	pinA   gpio.PinIO
	pinB   gpio.PinIO
	enable gpio.PinIO
}

// New creates a GPIO coil driver from pin names as understood by
// periph.io's registry (e.g. "GPIO23"). All three pins are driven low
// before the driver is handed out.
func New(pinA, pinB, enable string) (*Driver, error) {
	if _, err := host.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize periph host: %w", err)
	}

	d := &Driver{}
	for _, p := range []struct {
		dst  *gpio.PinIO
		name string
	}{
		{&d.pinA, pinA},
		{&d.pinB, pinB},
		{&d.enable, enable},
	} {
		pin := gpioreg.ByName(p.name)
		if pin == nil {
			return nil, fmt.Errorf("no GPIO pin named %q", p.name)
		}
		if err := pin.Out(gpio.Low); err != nil {
			return nil, fmt.Errorf("failed to drive pin %q low: %w", p.name, err)
		}
		*p.dst = pin
	}
	return d, nil
}

// SetCoil drives the phase pins complementary: (A, !A).
func (d *Driver) SetCoil(phaseA bool) error {
	if err := d.pinA.Out(gpio.Level(phaseA)); err != nil {
		return fmt.Errorf("failed to set pin A: %w", err)
	}
	if err := d.pinB.Out(gpio.Level(!phaseA)); err != nil {
		return fmt.Errorf("failed to set pin B: %w", err)
	}
	return nil
}

// SetEnable asserts or drops the H-bridge enable pin.
func (d *Driver) SetEnable(on bool) error {
	if err := d.enable.Out(gpio.Level(on)); err != nil {
		return fmt.Errorf("failed to set enable pin: %w", err)
	}
	return nil
}

// Close drops all three pins low. An enabled bridge with a floating phase
// pair would heat the coil.
func (d *Driver) Close() error {
	var firstErr error
	for _, pin := range []gpio.PinIO{d.enable, d.pinA, d.pinB} {
		if err := pin.Out(gpio.Low); err != nil && firstErr == nil {
			firstErr = fmt.Errorf("failed to park pin %s: %w", pin.Name(), err)
		}
	}
	return firstErr
}

// Type returns the GPIO driver type.
func (*Driver) Type() magstripe.DriverType {
	return magstripe.DriverGPIO
}
