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

// magswipe plays magnetic-stripe card emulations from a TOML card library
// through a coil driver.
package main

import (
	"os"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"

	magstripe "github.com/MagstripeProject/go-magstripe"
)

var logger hclog.Logger

func newRootCmd() *cobra.Command {
	var debug bool

	root := &cobra.Command{
		Use:          "magswipe",
		Short:        "Magnetic-stripe card emulator",
		Long:         "magswipe encodes ISO 7811 track strings and plays them as a swipe waveform through a coil driver.",
		SilenceUsage: true,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			level := hclog.Info
			if debug {
				level = hclog.Debug
				magstripe.SetDebugEnabled(true)
			}
			logger = hclog.New(&hclog.LoggerOptions{
				Name:  "magswipe",
				Level: level,
			})
		},
	}
	root.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug output")

	root.AddCommand(newPlayCmd())
	root.AddCommand(newListCmd())
	root.AddCommand(newPortsCmd())
	return root
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
