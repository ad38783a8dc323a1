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

// Package impl is the implementation of the preview simulator.
package impl

import (
	"context"
	"errors"
	"fmt"
	"image"
	"image/png"
	"os"
	"os/signal"
	"syscall"

	"github.com/golang/glog"
	"github.com/n6preview/firmware/board"
	"github.com/n6preview/firmware/internal/simboard"
	"golang.org/x/sync/errgroup"
)

// PreviewOpts encapsulates preview simulator parameters.
type PreviewOpts struct {
	ProfilePath string
	Timing      string
	Frames      uint64
	DumpPNG     string
}

var errInterrupted = errors.New("interrupted")

// Main brings up the simulated board and runs the preview until opts.Frames
// have been shown or the process is interrupted.
func Main(ctx context.Context, opts PreviewOpts) error {
	prof, err := simboard.Load(opts.ProfilePath)
	if err != nil {
		return err
	}
	if opts.Timing != "" {
		prof.Timing = opts.Timing
	}
	preset, err := prof.Preset()
	if err != nil {
		return err
	}
	s := prof.New(preset)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	// This error group runs the preview and the signal watcher. The
	// preview finishing stops the watcher.
	g, ctx := errgroup.WithContext(ctx)
	var d *board.Display
	g.Go(func() error {
		defer cancel()
		var err error
		if d, err = s.Board.BringUp(ctx); err != nil {
			return err
		}
		glog.Infof("Preview running on %s output", output(d))
		return s.Board.Preview(ctx, opts.Frames)
	})
	g.Go(func() error {
		sigs := make(chan os.Signal, 1)
		signal.Notify(sigs, os.Interrupt, syscall.SIGTERM)
		defer signal.Stop(sigs)
		select {
		case sig := <-sigs:
			glog.Infof("Got %v, stopping", sig)
			return errInterrupted
		case <-ctx.Done():
			return nil
		}
	})
	if err := g.Wait(); err != nil && !errors.Is(err, errInterrupted) {
		return err
	}
	glog.Infof("Previewed %d frames, encoder state %+v", s.Camera.Frames(), s.Encoder.State())

	if opts.DumpPNG != "" && d != nil {
		return dump(s.Display, opts.DumpPNG)
	}
	return nil
}

func output(d *board.Display) string {
	if d.External {
		return fmt.Sprintf("HDMI %v", d.Preset)
	}
	return "panel"
}

type framer interface {
	Frame() (*image.NRGBA, error)
}

func dump(f framer, path string) error {
	img, err := f.Frame()
	if err != nil {
		return fmt.Errorf("failed to compose frame: %w", err)
	}
	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %q: %w", path, err)
	}
	if err := png.Encode(out, img); err != nil {
		out.Close()
		return fmt.Errorf("failed to encode frame: %w", err)
	}
	glog.Infof("Wrote frame to %q", path)
	return out.Close()
}
