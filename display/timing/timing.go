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

// Package timing holds the video mode presets the firmware can be built for.
//
// Exactly one preset, Active, is compiled in. It is picked with one of the
// build tags timing_square480, timing_vga640 or timing_hd720; without a tag
// the panel-native WVGA800 mode is used.
package timing

import (
	"fmt"
	"sort"
)

// IC16SourceHz is the PLL4 output feeding the pixel clock divider.
const IC16SourceHz = 600_000_000

// Preset describes a video mode. Porch and sync values are in pixels for the
// horizontal direction and lines for the vertical direction.
type Preset struct {
	Name   string
	Width  int
	Height int

	HFP   int
	HSync int
	HBP   int
	VFP   int
	VSync int
	VBP   int

	// ClockDivider divides IC16SourceHz down to the pixel clock.
	ClockDivider int
}

// Validate checks every field of the preset is positive.
func (p Preset) Validate() error {
	for _, f := range []struct {
		name string
		v    int
	}{
		{"width", p.Width},
		{"height", p.Height},
		{"hfp", p.HFP},
		{"hsync", p.HSync},
		{"hbp", p.HBP},
		{"vfp", p.VFP},
		{"vsync", p.VSync},
		{"vbp", p.VBP},
		{"clock divider", p.ClockDivider},
	} {
		if f.v <= 0 {
			return fmt.Errorf("preset %q: %s must be > 0, got %d", p.Name, f.name, f.v)
		}
	}
	return nil
}

// PixelClockHz returns the pixel clock produced by the preset's divider.
func (p Preset) PixelClockHz() int {
	return IC16SourceHz / p.ClockDivider
}

func (p Preset) String() string {
	return fmt.Sprintf("%s %dx%d", p.Name, p.Width, p.Height)
}

// Modes selectable for the HDMI output. Timings from
// https://tomverbeure.github.io/video_timings_calculator
var (
	// Square480 is 480x480 @ 50Hz 1:1, 14.63MHz for a nominal 14.5MHz.
	Square480 = Preset{
		Name: "square480", Width: 480, Height: 480,
		HFP: 16, HSync: 40, HBP: 56,
		VFP: 3, VSync: 10, VBP: 6,
		ClockDivider: 41,
	}
	// VGA640 is 640x480 @ 50Hz 4:3, 20MHz for a nominal 19.75MHz.
	VGA640 = Preset{
		Name: "vga640", Width: 640, Height: 480,
		HFP: 16, HSync: 64, HBP: 80,
		VFP: 3, VSync: 4, VBP: 10,
		ClockDivider: 30,
	}
	// HD720 is 1280x720 16:9 at 66.67MHz. A divider of 8 (75MHz) is closer
	// to the nominal 74.25MHz but shows pixel noise on unshielded cables.
	// It is larger than the built-in panel and only usable over HDMI.
	HD720 = Preset{
		Name: "hd720", Width: 1280, Height: 720,
		HFP: 110, HSync: 40, HBP: 220,
		VFP: 5, VSync: 5, VBP: 20,
		ClockDivider: 9,
	}
	// WVGA800 is 800x480 @ 50Hz 15:9 CVT, the built-in panel's resolution.
	WVGA800 = Preset{
		Name: "wvga800", Width: 800, Height: 480,
		HFP: 24, HSync: 72, HBP: 96,
		VFP: 3, VSync: 7, VBP: 7,
		ClockDivider: 24,
	}
)

// PanelRK050HR18 is the timing of the board's built-in 5" panel. It is used
// whenever no encoder is present, whatever Active is.
var PanelRK050HR18 = Preset{
	Name: "rk050hr18", Width: 800, Height: 480,
	HFP: 8, HSync: 4, HBP: 8,
	VFP: 8, VSync: 4, VBP: 8,
	ClockDivider: 24,
}

var byName = map[string]Preset{
	Square480.Name: Square480,
	VGA640.Name:    VGA640,
	HD720.Name:     HD720,
	WVGA800.Name:   WVGA800,
}

// Lookup returns the HDMI preset with the given name.
func Lookup(name string) (Preset, error) {
	p, ok := byName[name]
	if !ok {
		return Preset{}, fmt.Errorf("unknown timing preset %q, want one of %v", name, Names())
	}
	return p, nil
}

// Names lists the HDMI presets in sorted order.
func Names() []string {
	ns := make([]string, 0, len(byName))
	for n := range byName {
		ns = append(ns, n)
	}
	sort.Strings(ns)
	return ns
}
