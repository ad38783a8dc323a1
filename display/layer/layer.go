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

// Package layer describes the two display layers: the camera preview in the
// background and a status overlay in the foreground.
//
// Layer geometry, pixel format and frame buffer are fixed when the layer is
// created. Only the buffer contents change afterwards, written by the camera
// pipe and read by the display scanout without any synchronisation; tearing
// is accepted.
package layer

import (
	"errors"
	"fmt"

	"github.com/n6preview/firmware/display/timing"
)

// PixelFormat of a layer's frame buffer.
type PixelFormat int

const (
	RGB565 PixelFormat = iota
	ARGB4444
)

// BytesPerPixel returns the storage size of one pixel.
func (f PixelFormat) BytesPerPixel() int {
	return 2
}

func (f PixelFormat) String() string {
	switch f {
	case RGB565:
		return "RGB565"
	case ARGB4444:
		return "ARGB4444"
	}
	return fmt.Sprintf("PixelFormat(%d)", int(f))
}

// Index selects a hardware layer.
type Index int

const (
	Background Index = 1
	Foreground Index = 2
)

const (
	// ForegroundWidth and ForegroundHeight size the status overlay.
	ForegroundWidth  = 320
	ForegroundHeight = 50
)

// ErrOutsideActiveArea indicates a layer which does not fit on the output.
var ErrOutsideActiveArea = errors.New("layer outside active display area")

// Descriptor is the configuration of one layer.
type Descriptor struct {
	Index  Index
	X0, Y0 int
	Width  int
	Height int
	Format PixelFormat
	// Buffer is the frame buffer scanned out for the layer.
	Buffer []byte
}

// X1 returns the first column right of the layer.
func (d Descriptor) X1() int { return d.X0 + d.Width }

// Y1 returns the first line below the layer.
func (d Descriptor) Y1() int { return d.Y0 + d.Height }

// Pitch returns the length of one line in bytes.
func (d Descriptor) Pitch() int {
	return d.Width * d.Format.BytesPerPixel()
}

func (d Descriptor) String() string {
	return fmt.Sprintf("layer %d: (%d,%d)-(%d,%d) %v", d.Index, d.X0, d.Y0, d.X1(), d.Y1(), d.Format)
}

func newDescriptor(i Index, w, h int, f PixelFormat) Descriptor {
	return Descriptor{
		Index:  i,
		Width:  w,
		Height: h,
		Format: f,
		Buffer: make([]byte, w*h*f.BytesPerPixel()),
	}
}

// NewBackground returns the camera preview layer, sized to p.
func NewBackground(p timing.Preset) Descriptor {
	return newDescriptor(Background, p.Width, p.Height, RGB565)
}

// NewForeground returns the status overlay layer.
func NewForeground() Descriptor {
	return newDescriptor(Foreground, ForegroundWidth, ForegroundHeight, ARGB4444)
}

// ValidateLayout checks the background matches the preset the frame buffer
// was sized for and that every layer fits into the active area w x h.
func ValidateLayout(p timing.Preset, w, h int, layers ...Descriptor) error {
	for _, l := range layers {
		if len(l.Buffer) != l.Pitch()*l.Height {
			return fmt.Errorf("%v: buffer is %d bytes, want %d", l, len(l.Buffer), l.Pitch()*l.Height)
		}
		if l.Index == Background && (l.Width != p.Width || l.Height != p.Height) {
			return fmt.Errorf("%v: size differs from %v", l, p)
		}
		if l.X0 < 0 || l.Y0 < 0 || l.X1() > w || l.Y1() > h {
			return fmt.Errorf("%v on %dx%d output: %w", l, w, h, ErrOutsideActiveArea)
		}
	}
	return nil
}

// Configurer is the display controller's layer interface.
type Configurer interface {
	ConfigLayer(Descriptor) error
}

// Configure hands every layer to c in order.
func Configure(c Configurer, layers ...Descriptor) error {
	for _, l := range layers {
		if err := c.ConfigLayer(l); err != nil {
			return fmt.Errorf("failed to configure %v: %w", l, err)
		}
	}
	return nil
}
