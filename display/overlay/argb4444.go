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

package overlay

import (
	"image"
	"image/color"
	"image/draw"
)

// ARGB4444 is an image stored in a little-endian 16 bit ARGB4444 frame
// buffer, the layout the display controller scans out.
type ARGB4444 struct {
	Pix    []byte
	Stride int
	Rect   image.Rectangle
}

var _ draw.Image = &ARGB4444{}

// NewARGB4444 wraps buf as a w x h image. buf must hold at least w*h*2 bytes.
func NewARGB4444(buf []byte, w, h int) *ARGB4444 {
	return &ARGB4444{Pix: buf, Stride: w * 2, Rect: image.Rect(0, 0, w, h)}
}

// ColorModel implements image.Image.
func (p *ARGB4444) ColorModel() color.Model {
	return color.NRGBAModel
}

// Bounds implements image.Image.
func (p *ARGB4444) Bounds() image.Rectangle {
	return p.Rect
}

func (p *ARGB4444) offset(x, y int) int {
	return (y-p.Rect.Min.Y)*p.Stride + (x-p.Rect.Min.X)*2
}

// At implements image.Image.
func (p *ARGB4444) At(x, y int) color.Color {
	if !(image.Point{x, y}.In(p.Rect)) {
		return color.NRGBA{}
	}
	i := p.offset(x, y)
	v := uint16(p.Pix[i]) | uint16(p.Pix[i+1])<<8
	return color.NRGBA{
		A: uint8(v>>12&0xf) * 0x11,
		R: uint8(v>>8&0xf) * 0x11,
		G: uint8(v>>4&0xf) * 0x11,
		B: uint8(v&0xf) * 0x11,
	}
}

// Set implements draw.Image.
func (p *ARGB4444) Set(x, y int, c color.Color) {
	if !(image.Point{x, y}.In(p.Rect)) {
		return
	}
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	v := uint16(n.A>>4)<<12 | uint16(n.R>>4)<<8 | uint16(n.G>>4)<<4 | uint16(n.B>>4)
	i := p.offset(x, y)
	p.Pix[i] = byte(v)
	p.Pix[i+1] = byte(v >> 8)
}
