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

//go:build darwin

package uart

import (
	"path/filepath"
	"strings"
)

// listPorts globs callout devices. cu.* is preferred over tty.* on macOS
// for exclusive write access, which is all the bridge protocol does.
func listPorts() ([]Port, error) {
	matches, err := filepath.Glob("/dev/cu.*")
	if err != nil {
		return nil, err
	}

	ports := make([]Port, 0, len(matches))
	for _, path := range matches {
		name := filepath.Base(path)
		if strings.HasPrefix(name, "cu.Bluetooth") {
			continue
		}
		ports = append(ports, Port{Path: path, Name: name})
	}
	return ports, nil
}
