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
	"context"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	magstripe "github.com/MagstripeProject/go-magstripe"
	"github.com/MagstripeProject/go-magstripe/cardstore"
	"github.com/MagstripeProject/go-magstripe/driver/gpio"
	"github.com/MagstripeProject/go-magstripe/driver/stub"
	"github.com/MagstripeProject/go-magstripe/driver/uart"
	"github.com/MagstripeProject/go-magstripe/trigger"
)

type playFlags struct {
	cardsPath   string
	driverKind  string
	pinA        string
	pinB        string
	pinEnable   string
	port        string
	buttonPin   string
	serviceCode string
	cardIndex   int
	baudRate    int
	count       int
	padding     int
	clock       time.Duration
	trackGap    time.Duration
	interval    time.Duration
}

func newPlayCmd() *cobra.Command {
	flags := &playFlags{}

	cmd := &cobra.Command{
		Use:   "play",
		Short: "Play card activations through a coil driver",
		RunE: func(_ *cobra.Command, _ []string) error {
			return runPlay(flags)
		},
	}

	f := cmd.Flags()
	f.StringVar(&flags.cardsPath, "cards", "cards.toml", "TOML card library file")
	f.IntVar(&flags.cardIndex, "card", 0, "index of the card to play")
	f.StringVar(&flags.driverKind, "driver", "gpio", "coil driver backend: gpio, uart or stub")
	f.StringVar(&flags.pinA, "pin-a", "GPIO23", "coil phase A pin (gpio driver)")
	f.StringVar(&flags.pinB, "pin-b", "GPIO24", "coil phase !A pin (gpio driver)")
	f.StringVar(&flags.pinEnable, "pin-enable", "GPIO25", "driver enable pin (gpio driver)")
	f.StringVar(&flags.port, "port", "", "serial port (uart driver)")
	f.IntVar(&flags.baudRate, "baud", 115200, "serial baud rate (uart driver)")
	f.StringVar(&flags.buttonPin, "button", "",
		"GPIO pin of a trigger button; when set, play on presses until interrupted")
	f.IntVar(&flags.count, "count", 4, "number of activations (ignored with --button)")
	f.DurationVar(&flags.interval, "interval", 500*time.Millisecond, "pause between activations")
	f.DurationVar(&flags.clock, "clock", 200*time.Microsecond, "F2F half-bit period")
	f.IntVar(&flags.padding, "padding", 25, "leading/trailing zero bits per track")
	f.StringVar(&flags.serviceCode, "service-code", "", "3-digit service code substitution (empty disables)")
	f.DurationVar(&flags.trackGap, "track-gap", 0, "pause between the two tracks of one activation")
	return cmd
}

func newDriver(flags *playFlags) (magstripe.Driver, error) {
	switch flags.driverKind {
	case "gpio":
		return gpio.New(flags.pinA, flags.pinB, flags.pinEnable)
	case "uart":
		if flags.port == "" {
			return nil, fmt.Errorf("uart driver needs --port (try 'magswipe ports')")
		}
		return uart.NewWithBaudRate(flags.port, flags.baudRate)
	case "stub":
		return stub.New(), nil
	default:
		return nil, fmt.Errorf("unknown driver %q", flags.driverKind)
	}
}

func playerOptions(flags *playFlags) []magstripe.Option {
	opts := []magstripe.Option{
		magstripe.WithClockPeriod(flags.clock),
		magstripe.WithPadding(flags.padding),
		magstripe.WithTrackGap(flags.trackGap),
		magstripe.WithCard(flags.cardIndex),
	}
	if flags.serviceCode != "" {
		opts = append(opts, magstripe.WithServiceCode(flags.serviceCode))
	}
	return opts
}

func runPlay(flags *playFlags) error {
	cards, err := cardstore.Load(flags.cardsPath)
	if err != nil {
		return err
	}

	driver, err := newDriver(flags)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := driver.Close(); closeErr != nil {
			logger.Warn("driver close failed", "error", closeErr)
		}
	}()

	player, err := magstripe.NewPlayer(driver, cards, playerOptions(flags)...)
	if err != nil {
		return err
	}

	card := cards[flags.cardIndex]
	logger.Info("playing card", "index", flags.cardIndex, "name", card.Name,
		"driver", driver.Type())

	if flags.buttonPin != "" {
		return runTriggered(player, flags.buttonPin)
	}

	for i := 0; i < flags.count; i++ {
		if i > 0 {
			time.Sleep(flags.interval)
		}
		logger.Info("activation", "n", i+1, "mode", player.Mode().String())
		if err := player.Play(); err != nil {
			return fmt.Errorf("activation %d: %w", i+1, err)
		}
	}
	return nil
}

// runTriggered plays one activation per button press until interrupted.
func runTriggered(player *magstripe.Player, buttonPin string) error {
	button, err := trigger.NewButton(buttonPin, 0)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := button.Close(); closeErr != nil {
			logger.Warn("button close failed", "error", closeErr)
		}
	}()

	runner, err := trigger.NewRunner(player, button)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	logger.Info("waiting for button presses", "pin", buttonPin)
	return runner.Run(ctx)
}
