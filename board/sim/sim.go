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

// Package sim provides host side stand-ins for the board collaborators: the
// system setup, the pins and the display controller.
package sim

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"sort"
	"sync"

	"github.com/golang/glog"
	"github.com/n6preview/firmware/board"
	"github.com/n6preview/firmware/display/layer"
	"github.com/n6preview/firmware/display/ltdc"
	"github.com/n6preview/firmware/display/overlay"
)

// Hardware records the system setup calls.
type Hardware struct {
	mu       sync.Mutex
	Calls    []string
	Clocks   board.ClockPlan
	Security []board.RIFAttribute
}

func (h *Hardware) record(s string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.Calls = append(h.Calls, s)
	glog.V(1).Infof("sim hardware: %s", s)
}

// EnableCaches implements board.Hardware.
func (h *Hardware) EnableCaches() error {
	h.record("caches")
	return nil
}

// ConfigureClocks implements board.Hardware.
func (h *Hardware) ConfigureClocks(p board.ClockPlan) error {
	h.record("clocks")
	h.Clocks = p
	return nil
}

// InitExternalRAM implements board.Hardware.
func (h *Hardware) InitExternalRAM() error {
	h.record("xspi ram")
	return nil
}

// SetSecurity implements board.Hardware.
func (h *Hardware) SetSecurity(a []board.RIFAttribute) error {
	h.record("rif")
	h.Security = append([]board.RIFAttribute(nil), a...)
	return nil
}

// Pins records whether the data enable pin was rerouted.
type Pins struct {
	DataEnableFixed bool
}

// FixDataEnable implements board.Pins.
func (p *Pins) FixDataEnable() error {
	p.DataEnableFixed = true
	return nil
}

// ErrNotEnabled is returned by Frame before the timing generator is set up.
var ErrNotEnabled = errors.New("display not enabled")

// Display is a display controller which composes its layers into an image
// on demand.
type Display struct {
	mu     sync.Mutex
	clock  *ltdc.Clock
	config *ltdc.Config
	layers map[layer.Index]layer.Descriptor
}

// NewDisplay returns a disabled display.
func NewDisplay() *Display {
	return &Display{layers: make(map[layer.Index]layer.Descriptor)}
}

// ConfigureClock implements ltdc.Controller.
func (d *Display) ConfigureClock(c ltdc.Clock) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.clock = &c
	glog.V(1).Infof("sim display: pixel clock %v", c)
	return nil
}

// Init implements ltdc.Controller.
func (d *Display) Init(c ltdc.Config) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.clock == nil {
		return errors.New("pixel clock not configured")
	}
	d.config = &c
	return nil
}

// ConfigLayer implements layer.Configurer.
func (d *Display) ConfigLayer(l layer.Descriptor) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.config == nil {
		return ErrNotEnabled
	}
	d.layers[l.Index] = l
	return nil
}

// Clock returns the configured pixel clock.
func (d *Display) Clock() (ltdc.Clock, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.clock == nil {
		return ltdc.Clock{}, false
	}
	return *d.clock, true
}

// Frame composes the current content of all layers, lowest index first.
func (d *Display) Frame() (*image.NRGBA, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.config == nil {
		return nil, ErrNotEnabled
	}
	w, h := d.config.ActiveArea()
	out := image.NewNRGBA(image.Rect(0, 0, w, h))
	draw.Draw(out, out.Bounds(), image.NewUniform(color.Black), image.Point{}, draw.Src)

	idx := make([]int, 0, len(d.layers))
	for i := range d.layers {
		idx = append(idx, int(i))
	}
	sort.Ints(idx)
	for _, i := range idx {
		l := d.layers[layer.Index(i)]
		src, err := decode(l)
		if err != nil {
			return nil, err
		}
		draw.Draw(out, image.Rect(l.X0, l.Y0, l.X1(), l.Y1()), src, image.Point{}, draw.Over)
	}
	return out, nil
}

func decode(l layer.Descriptor) (image.Image, error) {
	switch l.Format {
	case layer.ARGB4444:
		return overlay.NewARGB4444(l.Buffer, l.Width, l.Height), nil
	case layer.RGB565:
		img := image.NewNRGBA(image.Rect(0, 0, l.Width, l.Height))
		for y := 0; y < l.Height; y++ {
			for x := 0; x < l.Width; x++ {
				o := y*l.Pitch() + x*2
				img.SetNRGBA(x, y, RGB565(uint16(l.Buffer[o])|uint16(l.Buffer[o+1])<<8))
			}
		}
		return img, nil
	}
	return nil, fmt.Errorf("%v: unsupported format", l)
}

// RGB565 expands a 16-bit pixel.
func RGB565(v uint16) color.NRGBA {
	r, g, b := uint8(v>>11&0x1f), uint8(v>>5&0x3f), uint8(v&0x1f)
	return color.NRGBA{R: r<<3 | r>>2, G: g<<2 | g>>4, B: b<<3 | b>>2, A: 0xff}
}
