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

// Package testing provides capture fixtures and read-side decoding helpers
// for exercising the encoding and playback paths without hardware.
package testing

import (
	magstripe "github.com/MagstripeProject/go-magstripe"
)

// EventKind distinguishes the driver calls a CaptureDriver records.
type EventKind int

const (
	// EventCoil is a SetCoil call.
	EventCoil EventKind = iota
	// EventEnable is a SetEnable call.
	EventEnable
)

// Event is one recorded driver call.
type Event struct {
	Kind EventKind
	On   bool // phase for EventCoil, asserted for EventEnable
}

// CaptureDriver implements magstripe.Driver and records every call in
// order. It performs no I/O and no delays.
type CaptureDriver struct {
	Events []Event
	// FailCoil, when set, is returned from the next SetCoil call.
	FailCoil error
	closed   bool
}

// NewCaptureDriver returns an empty capture driver.
func NewCaptureDriver() *CaptureDriver {
	return &CaptureDriver{}
}

// SetCoil records the phase change.
func (d *CaptureDriver) SetCoil(phaseA bool) error {
	if d.FailCoil != nil {
		err := d.FailCoil
		d.FailCoil = nil
		return err
	}
	d.Events = append(d.Events, Event{Kind: EventCoil, On: phaseA})
	return nil
}

// SetEnable records the enable edge.
func (d *CaptureDriver) SetEnable(on bool) error {
	d.Events = append(d.Events, Event{Kind: EventEnable, On: on})
	return nil
}

// Close marks the driver closed.
func (d *CaptureDriver) Close() error {
	d.closed = true
	return nil
}

// Closed reports whether Close was called.
func (d *CaptureDriver) Closed() bool {
	return d.closed
}

// Type returns the mock driver type.
func (*CaptureDriver) Type() magstripe.DriverType {
	return magstripe.DriverMock
}

// Reset discards all recorded events.
func (d *CaptureDriver) Reset() {
	d.Events = d.Events[:0]
}

// CoilToggles returns the number of recorded phase changes.
func (d *CaptureDriver) CoilToggles() int {
	n := 0
	for _, e := range d.Events {
		if e.Kind == EventCoil {
			n++
		}
	}
	return n
}

// EnableSpans returns, for each enable-on..enable-off span, the number of
// coil toggles recorded inside it. Playback of one track must produce
// exactly one span covering every toggle of that track.
func (d *CaptureDriver) EnableSpans() []int {
	var spans []int
	open := false
	count := 0
	for _, e := range d.Events {
		switch e.Kind {
		case EventEnable:
			if e.On {
				open = true
				count = 0
			} else if open {
				spans = append(spans, count)
				open = false
			}
		case EventCoil:
			if open {
				count++
			}
		}
	}
	return spans
}

// BitRecorder implements magstripe.BitWriter and stores the raw encoded
// bit stream, bypassing the waveform layer entirely.
type BitRecorder struct {
	Bits []byte
	// FailAfter, when non-negative, makes the write at that index fail.
	FailAfter int
	Err       error
}

// NewBitRecorder returns an empty recorder that never fails.
func NewBitRecorder() *BitRecorder {
	return &BitRecorder{FailAfter: -1}
}

// WriteBit appends one bit.
func (r *BitRecorder) WriteBit(bit byte) error {
	if r.FailAfter >= 0 && len(r.Bits) >= r.FailAfter {
		return r.Err
	}
	r.Bits = append(r.Bits, bit&1)
	return nil
}
