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

// preview_sim runs the camera preview bring-up against a simulated board.
//
// Usage:
//
//	go run ./cmd/preview_sim --logtostderr --frames=30 --dump_png=/tmp/frame.png
//
// The board is described by a yaml profile; without --profile a board with an
// HDMI encoder and a cable plugged in shortly after power on is used.
package main

import (
	"context"
	"flag"

	"github.com/golang/glog"
	"github.com/n6preview/firmware/cmd/preview_sim/impl"
)

var (
	profile = flag.String("profile", "", "Path to a yaml board profile, uses the built in profile if unset")
	timing  = flag.String("timing", "", "Output timing preset, overrides the profile")
	frames  = flag.Uint64("frames", 0, "Number of frames to preview, 0 runs until interrupted")
	dumpPNG = flag.String("dump_png", "", "File to write the last displayed frame to")
)

func main() {
	flag.Parse()

	if err := impl.Main(context.Background(), impl.PreviewOpts{
		ProfilePath: *profile,
		Timing:      *timing,
		Frames:      *frames,
		DumpPNG:     *dumpPNG,
	}); err != nil {
		glog.Exit(err.Error())
	}
}
