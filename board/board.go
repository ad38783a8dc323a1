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

// Package board brings up the camera preview: system setup, optional HDMI
// encoder, display timing, layers and the capture pipe.
package board

import (
	"context"
	"fmt"

	"github.com/golang/glog"
	"github.com/n6preview/firmware/camera"
	"github.com/n6preview/firmware/display/layer"
	"github.com/n6preview/firmware/display/ltdc"
	"github.com/n6preview/firmware/display/overlay"
	"github.com/n6preview/firmware/display/timing"
)

// Hardware is the system level setup done before any peripheral is used.
type Hardware interface {
	EnableCaches() error
	ConfigureClocks(ClockPlan) error
	InitExternalRAM() error
	SetSecurity([]RIFAttribute) error
}

// Pins configures board pins.
type Pins interface {
	// FixDataEnable routes the data enable signal to the encoder.
	FixDataEnable() error
}

// Encoder is the external HDMI encoder.
type Encoder interface {
	// Detect returns nil if the encoder is present. It never waits.
	Detect() error
	// Init configures the encoder. It blocks until a cable is plugged.
	Init(ctx context.Context) error
}

// Board holds the collaborators of the preview.
type Board struct {
	Hardware Hardware
	Pins     Pins
	Encoder  Encoder
	LTDC     ltdc.Controller
	Layers   layer.Configurer
	Camera   camera.Camera
	// Preset is the output timing used when the encoder is present. It
	// also sizes the camera frame.
	Preset timing.Preset
}

// Display describes the output after a successful BringUp.
type Display struct {
	// External is true when the HDMI encoder drives the output.
	External   bool
	Preset     timing.Preset
	Config     ltdc.Config
	Background layer.Descriptor
	Foreground layer.Descriptor
	Overlay    *overlay.Overlay
}

// BringUp runs the start-up sequence and starts capturing into the
// background layer. A missing encoder is not an error: the output falls
// back to the built-in panel. Errors returned are not recoverable.
func (b *Board) BringUp(ctx context.Context) (*Display, error) {
	if err := b.Preset.Validate(); err != nil {
		return nil, err
	}
	if err := b.initHardware(); err != nil {
		return nil, err
	}
	if err := camera.Configure(b.Camera, b.Preset); err != nil {
		return nil, err
	}

	d := &Display{Preset: b.Preset}
	if err := b.Encoder.Detect(); err != nil {
		glog.Warningf("HDMI encoder not found, using panel: %v", err)
	} else {
		d.External = true
		if err := b.Encoder.Init(ctx); err != nil {
			return nil, fmt.Errorf("failed to initialise HDMI encoder: %w", err)
		}
	}
	glog.Infof("Output: external=%t timing=%v", d.External, b.Preset)

	if err := b.initDisplay(d); err != nil {
		return nil, err
	}

	if err := b.Camera.Start(camera.PreviewPipe, d.Background.Buffer, camera.Continuous); err != nil {
		return nil, fmt.Errorf("failed to start camera: %w", err)
	}
	return d, nil
}

func (b *Board) initHardware() error {
	if err := b.Hardware.EnableCaches(); err != nil {
		return fmt.Errorf("failed to enable caches: %w", err)
	}
	if err := DefaultClockPlan.Validate(); err != nil {
		return err
	}
	if err := b.Hardware.ConfigureClocks(DefaultClockPlan); err != nil {
		return fmt.Errorf("failed to configure clocks: %w", err)
	}
	if err := b.Hardware.InitExternalRAM(); err != nil {
		return fmt.Errorf("failed to initialise external RAM: %w", err)
	}
	if err := b.Hardware.SetSecurity(SecureAttributes); err != nil {
		return fmt.Errorf("failed to set security attributes: %w", err)
	}
	return nil
}

func (b *Board) initDisplay(d *Display) error {
	d.Background = layer.NewBackground(b.Preset)
	d.Foreground = layer.NewForeground()
	w, h := ltdc.Compute(b.Preset, d.External).ActiveArea()
	if err := layer.ValidateLayout(b.Preset, w, h, d.Background, d.Foreground); err != nil {
		return err
	}

	cfg, err := ltdc.Program(b.LTDC, b.Preset, d.External)
	if err != nil {
		return err
	}
	d.Config = cfg
	if d.External {
		if err := b.Pins.FixDataEnable(); err != nil {
			return fmt.Errorf("failed to configure data enable pin: %w", err)
		}
	}
	if err := layer.Configure(b.Layers, d.Background, d.Foreground); err != nil {
		return err
	}

	o, err := overlay.New(d.Foreground)
	if err != nil {
		return err
	}
	o.ShowStatus(d.External, b.Preset.Width, b.Preset.Height)
	d.Overlay = o
	return nil
}

// Preview drives the camera until ctx is done, the camera fails, or frames
// frames have been processed. Zero frames means no limit.
func (b *Board) Preview(ctx context.Context, frames uint64) error {
	for n := uint64(0); frames == 0 || n < frames; n++ {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		if err := b.Camera.Run(); err != nil {
			return fmt.Errorf("camera failed after %d frames: %w", n, err)
		}
	}
	return nil
}
