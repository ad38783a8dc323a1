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

// Package camera configures the camera capture pipe which feeds the preview
// layer.
package camera

import (
	"fmt"

	"github.com/n6preview/firmware/display/timing"
)

// Pipe identifies a capture pipe of the camera interface.
type Pipe int

const (
	Pipe0 Pipe = iota
	Pipe1
	Pipe2
)

// Mode is the capture mode passed to Start.
type Mode int

const (
	Continuous Mode = iota
	Snapshot
)

// MirrorFlip controls sensor readout orientation.
type MirrorFlip int

const (
	MirrorFlipNone MirrorFlip = iota
	Flip
	Mirror
	MirrorFlipBoth
)

// SensorConfig configures the sensor. Zero width and height leave the
// resolution to the sensor driver.
type SensorConfig struct {
	Width       int
	Height      int
	FPS         int
	PixelFormat int
	AntiFlicker int
	MirrorFlip  MirrorFlip
}

// DefaultSensor is the configuration used for the preview.
var DefaultSensor = SensorConfig{
	FPS:        30,
	MirrorFlip: MirrorFlipNone,
}

// Format of the pipe output.
type Format int

const (
	RGB565 Format = iota + 1
)

// Scaling selects how the sensor image is fitted to the output size.
type Scaling int

const (
	AspectRatioCrop Scaling = iota
	AspectRatioFit
	FullScreen
)

// PipeConfig configures the pipe output.
type PipeConfig struct {
	Width         int
	Height        int
	Format        Format
	BytesPerPixel int
	Scaling       Scaling
	Swap          bool
	// GammaConversion is not supported by the pipe driver yet and must
	// stay off.
	GammaConversion bool
}

// PreviewPipe is the pipe writing into the background layer.
const PreviewPipe = Pipe1

// PipeFor returns the pipe configuration which fills a p sized RGB565 frame
// buffer, cropping the sensor image to the output aspect ratio.
func PipeFor(p timing.Preset) PipeConfig {
	return PipeConfig{
		Width:         p.Width,
		Height:        p.Height,
		Format:        RGB565,
		BytesPerPixel: 2,
		Scaling:       AspectRatioCrop,
	}
}

// Camera is the camera middleware.
type Camera interface {
	// Init initialises the sensor.
	Init(SensorConfig) error
	// SetPipeConfig configures a pipe and returns the output line pitch in
	// bytes.
	SetPipeConfig(Pipe, PipeConfig) (int, error)
	// Start begins capturing into buf.
	Start(Pipe, []byte, Mode) error
	// Run advances the capture and image processing; it must be called
	// continuously.
	Run() error
}

// Configure initialises the sensor and the preview pipe for p.
func Configure(c Camera, p timing.Preset) error {
	if err := c.Init(DefaultSensor); err != nil {
		return fmt.Errorf("failed to initialise camera sensor: %w", err)
	}
	pc := PipeFor(p)
	pitch, err := c.SetPipeConfig(PreviewPipe, pc)
	if err != nil {
		return fmt.Errorf("failed to configure pipe %d: %w", PreviewPipe, err)
	}
	if want := pc.Width * pc.BytesPerPixel; pitch != want {
		return fmt.Errorf("pipe %d pitch is %d bytes, want %d", PreviewPipe, pitch, want)
	}
	return nil
}
