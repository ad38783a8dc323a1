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

// Package overlay draws the status text shown on top of the camera preview.
package overlay

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"

	"github.com/n6preview/firmware/display/layer"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// ARGB converts a 0xAARRGGBB value.
func ARGB(v uint32) color.NRGBA {
	return color.NRGBA{A: uint8(v >> 24), R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v)}
}

var (
	// Transparent clears the overlay.
	Transparent = ARGB(0x00000000)
	// Shade is the 50% dark gray behind the status lines.
	Shade = ARGB(0x80202020)
	// White is the text colour.
	White = ARGB(0xffffffff)
)

// Overlay draws text into a foreground layer.
type Overlay struct {
	img  *ARGB4444
	face font.Face
	fg   color.Color
	bg   color.Color
}

// New returns an overlay drawing into d, which must be an ARGB4444 layer.
func New(d layer.Descriptor) (*Overlay, error) {
	if d.Format != layer.ARGB4444 {
		return nil, fmt.Errorf("overlay needs an ARGB4444 layer, got %v", d.Format)
	}
	return &Overlay{
		img:  NewARGB4444(d.Buffer, d.Width, d.Height),
		face: basicfont.Face7x13,
		fg:   White,
		bg:   Transparent,
	}, nil
}

// Image returns the image backing the overlay.
func (o *Overlay) Image() *ARGB4444 {
	return o.img
}

// LineHeight returns the height of a text line in pixels.
func (o *Overlay) LineHeight() int {
	return o.face.Metrics().Height.Ceil()
}

// Line returns the y coordinate of the top of text line n.
func (o *Overlay) Line(n int) int {
	return n * o.LineHeight()
}

// SetTextColor sets the colour used by PrintAtLine.
func (o *Overlay) SetTextColor(c color.Color) {
	o.fg = c
}

// SetBackColor sets the colour filled behind each printed line.
func (o *Overlay) SetBackColor(c color.Color) {
	o.bg = c
}

// Clear fills the whole overlay with c.
func (o *Overlay) Clear(c color.Color) {
	draw.Draw(o.img, o.img.Bounds(), image.NewUniform(c), image.Point{}, draw.Src)
}

// FillRect fills r with c, replacing what was there.
func (o *Overlay) FillRect(r image.Rectangle, c color.Color) {
	draw.Draw(o.img, r.Intersect(o.img.Bounds()), image.NewUniform(c), image.Point{}, draw.Src)
}

// PrintAtLine prints a formatted line of text at line n, replacing the
// previous content of that line.
func (o *Overlay) PrintAtLine(n int, format string, args ...interface{}) {
	top := o.Line(n)
	o.FillRect(image.Rect(0, top, o.img.Bounds().Dx(), top+o.LineHeight()), o.bg)
	d := font.Drawer{
		Dst:  o.img,
		Src:  image.NewUniform(o.fg),
		Face: o.face,
		Dot:  fixed.P(0, top+o.face.Metrics().Ascent.Ceil()),
	}
	d.DrawString(fmt.Sprintf(format, args...))
}

// ShowStatus draws the two status lines: whether the encoder was detected
// and the preview resolution.
func (o *Overlay) ShowStatus(detected bool, w, h int) {
	o.Clear(Transparent)
	o.SetTextColor(White)
	o.FillRect(image.Rect(0, 0, o.img.Bounds().Dx(), o.Line(2)), Shade)
	o.SetBackColor(Shade)
	d := 0
	if detected {
		d = 1
	}
	o.PrintAtLine(0, "HDMI detected = %d", d)
	o.PrintAtLine(1, "%dx%d", w, h)
}
