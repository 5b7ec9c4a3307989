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
	"fmt"
	"time"
)

// PlayMode is one cell of the four-mode activation rotation. Different
// reader models expect different physical swipe directions per track;
// cycling all four combinations maximizes the odds of a decode with no
// feedback channel to tell which one landed. The order is fixed; do not
// reorder it.
type PlayMode int

const (
	// ModeFwdRev plays track 1 forward and track 2 in reverse.
	ModeFwdRev PlayMode = iota
	// ModeFwdFwd plays both tracks forward.
	ModeFwdFwd
	// ModeRevFwd plays track 1 in reverse and track 2 forward.
	ModeRevFwd
	// ModeRevRev plays both tracks in reverse.
	ModeRevRev

	playModeCount
)

// String returns the mode as "track1dir/track2dir".
func (m PlayMode) String() string {
	switch m {
	case ModeFwdRev:
		return "forward/reverse"
	case ModeFwdFwd:
		return "forward/forward"
	case ModeRevFwd:
		return "reverse/forward"
	case ModeRevRev:
		return "reverse/reverse"
	default:
		return "unknown"
	}
}

// reversed reports whether the given track plays backward in this mode.
func (m PlayMode) reversed(f Format) bool {
	if f == Track1 {
		return m == ModeRevFwd || m == ModeRevRev
	}
	return m == ModeFwdRev || m == ModeRevRev
}

// Config holds the playback tuning knobs.
type Config struct {
	// ServiceCode, when non-empty, replaces the three service-code
	// characters of every played track (PIN/chip-requirement bypass).
	ServiceCode string
	// ClockPeriod is the F2F half-bit period.
	ClockPeriod time.Duration
	// TrackGap is the idle time between the two track bursts of one
	// activation.
	TrackGap time.Duration
	// Padding is the number of zero bits before and after each track.
	Padding int
}

// DefaultConfig returns the timing and framing defaults: 200µs half-bit
// clock, 25 padding zeros, no service-code substitution.
func DefaultConfig() *Config {
	return &Config{
		ClockPeriod: 200 * time.Microsecond,
		Padding:     25,
		ServiceCode: "",
		TrackGap:    0,
	}
}

// Player owns the active track set and sequences playback activations.
//
// Thread Safety: Player is NOT thread-safe. Playback runs synchronously to
// completion and must never overlap a card switch; the active track set
// and reverse caches are only ever mutated between activations.
type Player struct {
	driver     Driver
	config     *Config
	emitter    *Emitter
	cards      []Card
	tracks     [formatCount]string
	caches     [formatCount][]byte
	active     int
	activation uint
}

// NewPlayer builds a Player over a coil driver and a card library. The
// library is validated up front and treated as immutable afterward; card 0
// becomes active and both reverse caches are built before the first
// activation can run.
func NewPlayer(driver Driver, cards []Card, opts ...Option) (*Player, error) {
	if driver == nil {
		return nil, ErrNilDriver
	}
	if len(cards) == 0 {
		return nil, ErrNoCards
	}

	p := &Player{
		driver: driver,
		config: DefaultConfig(),
		cards:  append([]Card(nil), cards...),
	}
	for i := range p.cards {
		if err := p.cards[i].Validate(); err != nil {
			return nil, fmt.Errorf("card %d (%s): %w", i, p.cards[i].Name, err)
		}
	}

	for _, opt := range opts {
		if err := opt(p); err != nil {
			return nil, err
		}
	}

	p.emitter = NewEmitter(driver, p.config.ClockPeriod)
	if err := p.SelectCard(p.active); err != nil {
		return nil, err
	}
	return p, nil
}

// Driver returns the underlying coil driver.
func (p *Player) Driver() Driver {
	return p.driver
}

// Cards returns a copy of the card library.
func (p *Player) Cards() []Card {
	return append([]Card(nil), p.cards...)
}

// ActiveCard returns the index of the active card.
func (p *Player) ActiveCard() int {
	return p.active
}

// Mode returns the mode the next activation will play.
func (p *Player) Mode() PlayMode {
	return PlayMode(p.activation % uint(playModeCount))
}

// encoderFor builds the per-track encoder from the current config.
func (p *Player) encoderFor(f Format) *Encoder {
	return NewEncoder(f, p.config.ServiceCode, p.config.Padding)
}

// SelectCard makes the card at index the active one, overwriting the
// active track set and rebuilding both reverse caches. A stale cache must
// never survive a card switch: reverse playback after this call always
// walks bytes derived from the new card.
func (p *Player) SelectCard(index int) error {
	if index < 0 || index >= len(p.cards) {
		return fmt.Errorf("index %d of %d cards: %w", index, len(p.cards), ErrNoSuchCard)
	}

	card := &p.cards[index]
	for _, f := range Formats() {
		p.tracks[f] = card.Track(f)
		if p.tracks[f] == "" {
			p.caches[f] = nil
			continue
		}
		p.caches[f] = p.encoderFor(f).BuildReverseCache(p.tracks[f])
	}
	p.active = index
	debugf("card %d (%s) active, reverse caches rebuilt", index, card.Name)
	return nil
}

// Play runs one activation: both tracks in the current mode's directions,
// then advances the rotation. Enable is asserted before the first bit of
// each track and dropped after its trailing padding. The call blocks for
// the full waveform duration and is not interruptible; a half-played
// track is garbage to the reader, so there is nothing useful to abort to.
func (p *Player) Play() error {
	mode := p.Mode()
	debugf("activation %d: mode %s", p.activation, mode)

	first := true
	for _, f := range Formats() {
		if p.tracks[f] == "" {
			continue
		}
		if !first && p.config.TrackGap > 0 {
			time.Sleep(p.config.TrackGap)
		}
		first = false

		if err := p.playTrack(f, mode.reversed(f)); err != nil {
			return err
		}
	}

	p.activation++
	return nil
}

func (p *Player) playTrack(f Format, reverse bool) error {
	if err := p.driver.SetEnable(true); err != nil {
		return fmt.Errorf("%s enable: %w", f, err)
	}

	enc := p.encoderFor(f)
	var err error
	if reverse {
		err = enc.PlayReverse(p.emitter, p.caches[f])
	} else {
		err = enc.Encode(p.emitter, p.tracks[f])
	}

	if disableErr := p.driver.SetEnable(false); disableErr != nil && err == nil {
		err = fmt.Errorf("%s disable: %w", f, disableErr)
	}
	return err
}
