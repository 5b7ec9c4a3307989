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

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/MagstripeProject/go-magstripe/cardstore"
	"github.com/MagstripeProject/go-magstripe/detection/uart"
)

func newListCmd() *cobra.Command {
	var cardsPath string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the cards in a card library file",
		RunE: func(_ *cobra.Command, _ []string) error {
			cards, err := cardstore.Load(cardsPath)
			if err != nil {
				return err
			}
			for i, card := range cards {
				tracks := ""
				if card.Track1 != "" {
					tracks += "1"
				}
				if card.Track2 != "" {
					tracks += "2"
				}
				fmt.Printf("%3d  %-20s tracks %s\n", i, card.Name, tracks)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&cardsPath, "cards", "cards.toml", "TOML card library file")
	return cmd
}

func newPortsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ports",
		Short: "List serial ports that may carry a coil-driver bridge",
		RunE: func(_ *cobra.Command, _ []string) error {
			ports, err := uart.Ports()
			if err != nil {
				return err
			}
			if len(ports) == 0 {
				fmt.Println("no serial ports found")
				return nil
			}
			for _, port := range ports {
				if port.Name != "" && port.Name != port.Path {
					fmt.Printf("%-24s %s\n", port.Path, port.Name)
				} else {
					fmt.Println(port.Path)
				}
			}
			return nil
		},
	}
}
