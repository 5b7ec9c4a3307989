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

// Package cardstore loads the read-only card library from a TOML file.
// Loading is the one place malformed track strings can be rejected with a
// real error; everything downstream trusts the library.
//
// File format:
//
//	[[card]]
//	name = "test"
//	track1 = "%B1234567890123456^DOE/JOHN^99011200000000000000000?"
//	track2 = ";1234567890123456=99011200000000000000?"
package cardstore

import (
	"errors"
	"fmt"
	"io"

	"github.com/BurntSushi/toml"

	magstripe "github.com/MagstripeProject/go-magstripe"
)

// ErrEmptyLibrary is returned for a file with no card entries.
var ErrEmptyLibrary = errors.New("card library is empty")

type cardEntry struct {
	Name   string `toml:"name"`
	Track1 string `toml:"track1"`
	Track2 string `toml:"track2"`
}

type cardFile struct {
	Cards []cardEntry `toml:"card"`
}

// Load reads and validates a card library file.
func Load(path string) ([]magstripe.Card, error) {
	var file cardFile
	if _, err := toml.DecodeFile(path, &file); err != nil {
		return nil, fmt.Errorf("failed to parse card file %s: %w", path, err)
	}
	return buildLibrary(&file)
}

// Parse reads and validates a card library from a reader.
func Parse(r io.Reader) ([]magstripe.Card, error) {
	var file cardFile
	if _, err := toml.NewDecoder(r).Decode(&file); err != nil {
		return nil, fmt.Errorf("failed to parse card data: %w", err)
	}
	return buildLibrary(&file)
}

func buildLibrary(file *cardFile) ([]magstripe.Card, error) {
	if len(file.Cards) == 0 {
		return nil, ErrEmptyLibrary
	}

	cards := make([]magstripe.Card, 0, len(file.Cards))
	for i, entry := range file.Cards {
		card := magstripe.Card{
			Name:   entry.Name,
			Track1: entry.Track1,
			Track2: entry.Track2,
		}
		if card.Name == "" {
			card.Name = fmt.Sprintf("card%d", i)
		}
		if err := card.Validate(); err != nil {
			return nil, fmt.Errorf("card %d (%s): %w", i, card.Name, err)
		}
		cards = append(cards, card)
	}
	return cards, nil
}
