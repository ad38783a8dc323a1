// Copyright 2025 Google LLC. All Rights Reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package ltdc computes the register fields of the display timing generator.
package ltdc

import (
	"fmt"

	"github.com/n6preview/firmware/display/timing"
)

// Polarity of a timing generator signal.
type Polarity int

const (
	// ActiveLow asserts the signal by driving it low.
	ActiveLow Polarity = iota
	// ActiveHigh asserts the signal by driving it high.
	ActiveHigh
)

// ClockPolarity selects the pixel clock edge data is driven on.
type ClockPolarity int

const (
	// ClockNormal drives data on the rising edge of the pixel clock.
	ClockNormal ClockPolarity = iota
	// ClockInverted drives data on the falling edge of the pixel clock.
	ClockInverted
)

// Color is the background colour shown outside the layers.
type Color struct {
	R, G, B uint8
}

// Config holds the timing generator fields. Accumulated values count from
// the start of the sync pulse and, like the hardware, are one less than the
// pixel or line count they describe.
type Config struct {
	HorizontalSync     int
	VerticalSync       int
	AccumulatedHBP     int
	AccumulatedVBP     int
	AccumulatedActiveW int
	AccumulatedActiveH int
	TotalWidth         int
	TotalHeight        int

	HSPolarity Polarity
	VSPolarity Polarity
	DEPolarity Polarity
	PCPolarity ClockPolarity

	Backcolor Color
}

// Compute returns the timing generator fields for p when the encoder drives
// the output. Without the encoder the built-in panel's own timing is used
// and p is ignored.
func Compute(p timing.Preset, external bool) Config {
	src := timing.PanelRK050HR18
	if external {
		src = p
	}
	return Config{
		HorizontalSync:     src.HSync - 1,
		VerticalSync:       src.VSync - 1,
		AccumulatedHBP:     src.HSync + src.HBP - 1,
		AccumulatedVBP:     src.VSync + src.VBP - 1,
		AccumulatedActiveW: src.Width + src.HSync + src.HBP - 1,
		AccumulatedActiveH: src.Height + src.VSync + src.VBP - 1,
		TotalWidth:         src.Width + src.HSync + src.HBP + src.HFP - 1,
		TotalHeight:        src.Height + src.VSync + src.VBP + src.VFP - 1,

		HSPolarity: ActiveLow,
		VSPolarity: ActiveLow,
		DEPolarity: ActiveLow,
		PCPolarity: ClockInverted,
	}
}

// ActiveArea returns the visible width and height described by c.
func (c Config) ActiveArea() (w, h int) {
	return c.AccumulatedActiveW - c.AccumulatedHBP, c.AccumulatedActiveH - c.AccumulatedVBP
}

// ClockSource selects the reference of the display clock.
type ClockSource string

// PLL4 is the only source used, with the divider taken from the preset.
const PLL4 ClockSource = "pll4"

// Clock describes the display pixel clock setup.
type Clock struct {
	Source  ClockSource
	Divider int
}

// Hz returns the resulting pixel clock.
func (c Clock) Hz() int {
	return timing.IC16SourceHz / c.Divider
}

func (c Clock) String() string {
	return fmt.Sprintf("%s/%d (%.2fMHz)", c.Source, c.Divider, float64(c.Hz())/1e6)
}

// ClockConfig returns the pixel clock for p when the encoder drives the
// output, or the panel's 25MHz clock otherwise.
func ClockConfig(p timing.Preset, external bool) Clock {
	if external {
		return Clock{Source: PLL4, Divider: p.ClockDivider}
	}
	return Clock{Source: PLL4, Divider: timing.PanelRK050HR18.ClockDivider}
}

// Controller is the display timing generator.
type Controller interface {
	// ConfigureClock sets up the pixel clock. It must be called before Init.
	ConfigureClock(Clock) error
	// Init programs the timing generator and enables it.
	Init(Config) error
}

// Program configures ctrl for p. The choice between encoder and panel timing
// is made here once.
func Program(ctrl Controller, p timing.Preset, external bool) (Config, error) {
	clk := ClockConfig(p, external)
	if err := ctrl.ConfigureClock(clk); err != nil {
		return Config{}, fmt.Errorf("failed to configure pixel clock %v: %w", clk, err)
	}
	cfg := Compute(p, external)
	if err := ctrl.Init(cfg); err != nil {
		return Config{}, fmt.Errorf("failed to initialise timing generator: %w", err)
	}
	return cfg, nil
}
