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

// Package sim provides a synthetic camera which renders moving colour bars.
package sim

import (
	"errors"
	"fmt"
	"sync"

	"github.com/golang/glog"
	"github.com/n6preview/firmware/camera"
)

// ErrNotStarted is returned by Run before a pipe has been started.
var ErrNotStarted = errors.New("no pipe started")

// Bars are the RGB565 colours of the test pattern, left to right.
var Bars = []uint16{
	0xffff, // white
	0xffe0, // yellow
	0x07ff, // cyan
	0x07e0, // green
	0xf81f, // magenta
	0xf800, // red
	0x001f, // blue
	0x0000, // black
}

// Camera is a camera.Camera producing a test pattern. The pattern shifts
// one pixel to the left on every frame.
type Camera struct {
	mu     sync.Mutex
	sensor *camera.SensorConfig
	pipes  map[camera.Pipe]camera.PipeConfig
	pipe   camera.Pipe
	buf    []byte
	mode   camera.Mode
	frames uint64
	// InitErr, if set, is returned by Init.
	InitErr error
}

// New returns an uninitialised camera.
func New() *Camera {
	return &Camera{pipes: make(map[camera.Pipe]camera.PipeConfig)}
}

// Init implements camera.Camera.
func (c *Camera) Init(cfg camera.SensorConfig) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.InitErr != nil {
		return c.InitErr
	}
	c.sensor = &cfg
	glog.V(1).Infof("sim camera: sensor %+v", cfg)
	return nil
}

// SetPipeConfig implements camera.Camera.
func (c *Camera) SetPipeConfig(p camera.Pipe, pc camera.PipeConfig) (int, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.sensor == nil {
		return 0, errors.New("sensor not initialised")
	}
	if pc.Format != camera.RGB565 || pc.BytesPerPixel != 2 {
		return 0, fmt.Errorf("unsupported output format %d with %d bytes per pixel", pc.Format, pc.BytesPerPixel)
	}
	if pc.Width <= 0 || pc.Height <= 0 {
		return 0, fmt.Errorf("invalid output size %dx%d", pc.Width, pc.Height)
	}
	c.pipes[p] = pc
	return pc.Width * pc.BytesPerPixel, nil
}

// Start implements camera.Camera.
func (c *Camera) Start(p camera.Pipe, buf []byte, m camera.Mode) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	pc, ok := c.pipes[p]
	if !ok {
		return fmt.Errorf("pipe %d not configured", p)
	}
	if want := pc.Width * pc.Height * pc.BytesPerPixel; len(buf) < want {
		return fmt.Errorf("buffer is %d bytes, pipe %d needs %d", len(buf), p, want)
	}
	c.pipe, c.buf, c.mode = p, buf, m
	return nil
}

// Run implements camera.Camera. It renders one frame; in snapshot mode only
// the first call renders.
func (c *Camera) Run() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.buf == nil {
		return ErrNotStarted
	}
	if c.mode == camera.Snapshot && c.frames > 0 {
		return nil
	}
	pc := c.pipes[c.pipe]
	Render(c.buf, pc.Width, pc.Height, int(c.frames))
	c.frames++
	return nil
}

// Frames returns the number of frames rendered so far.
func (c *Camera) Frames() uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.frames
}

// Render writes the colour bar pattern for frame n into buf, a w x h
// little-endian RGB565 image.
func Render(buf []byte, w, h, n int) {
	barWidth := w / len(Bars)
	if barWidth == 0 {
		barWidth = 1
	}
	for x := 0; x < w; x++ {
		px := Bars[((x+n)%w)/barWidth%len(Bars)]
		lo, hi := byte(px), byte(px>>8)
		for y := 0; y < h; y++ {
			o := (y*w + x) * 2
			buf[o], buf[o+1] = lo, hi
		}
	}
}
