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

// Package uart lists serial ports that may carry a coil-driver bridge.
// Detection is passive: nothing is opened or probed, the bridge protocol
// is write-only and has no handshake to probe with.
package uart

// Port describes one candidate serial port.
type Port struct {
	// Path is the value to hand to the uart driver (e.g. "/dev/ttyUSB0",
	// "COM3").
	Path string
	// Name is a human-readable label, where the platform provides one.
	Name string
}

// Ports returns the candidate serial ports on this system.
func Ports() ([]Port, error) {
	return listPorts()
}
