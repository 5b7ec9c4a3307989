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

// Package stub provides a no-hardware coil driver for dry runs: playback
// runs with real timing but the pin states go nowhere.
package stub

import magstripe "github.com/MagstripeProject/go-magstripe"

// Driver implements the magstripe.Driver interface with no I/O.
type Driver struct {
	toggles uint64
}

// New returns a stub driver.
func New() *Driver {
	return &Driver{}
}

// SetCoil counts the toggle and discards it.
func (d *Driver) SetCoil(bool) error {
	d.toggles++
	return nil
}

// SetEnable discards the enable edge.
func (*Driver) SetEnable(bool) error {
	return nil
}

// Close is a no-op.
func (*Driver) Close() error {
	return nil
}

// Type returns the stub driver type.
func (*Driver) Type() magstripe.DriverType {
	return magstripe.DriverStub
}

// Toggles returns the number of phase changes seen, a quick sanity figure
// for dry runs.
func (d *Driver) Toggles() uint64 {
	return d.toggles
}
