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

package cardstore

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	magstripe "github.com/MagstripeProject/go-magstripe"
)

const validLibrary = `
[[card]]
name = "test"
track1 = "%B1234567890123456^DOE/JOHN^99011200000000000000000?"
track2 = ";1234567890123456=99011200000000000000?"

[[card]]
track2 = ";999=0502101?"
`

func TestParse(t *testing.T) {
	t.Parallel()

	cards, err := Parse(strings.NewReader(validLibrary))
	require.NoError(t, err)
	require.Len(t, cards, 2)

	assert.Equal(t, "test", cards[0].Name)
	assert.Equal(t, ";1234567890123456=99011200000000000000?", cards[0].Track2)

	// Unnamed entries get a positional name.
	assert.Equal(t, "card1", cards[1].Name)
	assert.Empty(t, cards[1].Track1)
}

func TestParseRejectsBadTrack(t *testing.T) {
	t.Parallel()

	const bad = `
[[card]]
name = "broken"
track2 = "1234=5678?"
`
	_, err := Parse(strings.NewReader(bad))
	require.Error(t, err)
	assert.ErrorIs(t, err, magstripe.ErrInvalidTrack)
	assert.Contains(t, err.Error(), "broken")
}

func TestParseEmptyLibrary(t *testing.T) {
	t.Parallel()

	_, err := Parse(strings.NewReader("# no cards here\n"))
	require.ErrorIs(t, err, ErrEmptyLibrary)
}

func TestParseMalformedTOML(t *testing.T) {
	t.Parallel()

	_, err := Parse(strings.NewReader("[[card]\nname = oops"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse")
}

func TestLoad(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "cards.toml")
	require.NoError(t, os.WriteFile(path, []byte(validLibrary), 0o600))

	cards, err := Load(path)
	require.NoError(t, err)
	assert.Len(t, cards, 2)

	_, err = Load(filepath.Join(t.TempDir(), "missing.toml"))
	require.Error(t, err)
}
