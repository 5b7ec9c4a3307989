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
	"errors"
	"fmt"
)

// Configuration-time errors. Encoding itself never fails on content: a
// malformed track that slips past validation just produces an unreadable
// swipe, which is invisible to this side of the air gap.
var (
	// ErrNilDriver is returned when a Player is built without a driver.
	ErrNilDriver = errors.New("nil driver")
	// ErrNoCards is returned when a Player is built with an empty card list.
	ErrNoCards = errors.New("no cards configured")
	// ErrNoSuchCard is returned for an out-of-range card index.
	ErrNoSuchCard = errors.New("no such card")
	// ErrInvalidTrack is wrapped by ValidationError for malformed track strings.
	ErrInvalidTrack = errors.New("invalid track string")
	// ErrInvalidConfig is returned for unusable option values.
	ErrInvalidConfig = errors.New("invalid configuration")
	// ErrStaleCache is returned when reverse playback is attempted on a
	// cache without its terminator, i.e. one not produced by a rebuild.
	ErrStaleCache = errors.New("stale or corrupt reverse cache")
)

// ValidationError describes why a track string was rejected at
// configuration time. It wraps ErrInvalidTrack for errors.Is checks.
type ValidationError struct {
	Reason string
	Format Format
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Format, e.Reason)
}

func (*ValidationError) Unwrap() error {
	return ErrInvalidTrack
}
