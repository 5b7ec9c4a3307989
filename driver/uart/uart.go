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

// Package uart provides a serial bridge coil driver: every pin change is
// forwarded as one status byte to whatever sits on the other end of the
// port, typically an MCU bridge mirroring the states onto real pins, or a
// host-side capture tool inspecting the waveform.
package uart

import (
	"fmt"

	magstripe "github.com/MagstripeProject/go-magstripe"
	"go.bug.st/serial"
)

// Status byte layout. The marker bit keeps state bytes distinguishable
// from line noise on the receiving side.
const (
	bitPhase  = 0x01
	bitEnable = 0x02
	marker    = 0x80
)

const defaultBaudRate = 115200

// Driver implements the magstripe.Driver interface over a serial port.
//
// Serial latency dominates the F2F half-period on most adapters; pair
// this driver with a bridge that retimes transitions, or use it purely
// for waveform capture.
type Driver struct {
	port     serial.Port
	portName string
	phase    bool
	enable   bool
}

// New opens the named serial port at 115200 8N1.
func New(portName string) (*Driver, error) {
	return NewWithBaudRate(portName, defaultBaudRate)
}

// NewWithBaudRate opens the named serial port at the given baud rate.
func NewWithBaudRate(portName string, baudRate int) (*Driver, error) {
	if portName == "" {
		return nil, fmt.Errorf("empty port name")
	}

	mode := &serial.Mode{
		BaudRate: baudRate,
		DataBits: 8,
		Parity:   serial.NoParity,
		StopBits: serial.OneStopBit,
	}
	port, err := serial.Open(portName, mode)
	if err != nil {
		return nil, fmt.Errorf("failed to open serial port %s: %w", portName, err)
	}

	d := &Driver{port: port, portName: portName}
	if err := d.flush(); err != nil {
		_ = port.Close()
		return nil, err
	}
	return d, nil
}

// flush writes the current pin state as one status byte.
func (d *Driver) flush() error {
	var b byte = marker
	if d.phase {
		b |= bitPhase
	}
	if d.enable {
		b |= bitEnable
	}
	if _, err := d.port.Write([]byte{b}); err != nil {
		return fmt.Errorf("failed to write to %s: %w", d.portName, err)
	}
	return nil
}

// SetCoil forwards the phase state. The bridge derives !A itself.
func (d *Driver) SetCoil(phaseA bool) error {
	d.phase = phaseA
	return d.flush()
}

// SetEnable forwards the enable state.
func (d *Driver) SetEnable(on bool) error {
	d.enable = on
	return d.flush()
}

// Close parks the bridge (everything off) and closes the port.
func (d *Driver) Close() error {
	d.phase = false
	d.enable = false
	flushErr := d.flush()
	if err := d.port.Close(); err != nil {
		return fmt.Errorf("failed to close serial port %s: %w", d.portName, err)
	}
	return flushErr
}

// Type returns the UART driver type.
func (*Driver) Type() magstripe.DriverType {
	return magstripe.DriverUART
}

// Port returns the serial port name the driver was opened with.
func (d *Driver) Port() string {
	return d.portName
}
