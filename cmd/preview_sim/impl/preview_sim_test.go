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

package impl

import (
	"context"
	"errors"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/n6preview/firmware/encoder/adv7513"
)

func writeProfile(t *testing.T, yaml string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "profile.yaml")
	if err := os.WriteFile(p, []byte(yaml), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	return p
}

func TestMainDumpsFrame(t *testing.T) {
	out := filepath.Join(t.TempDir(), "frame.png")
	if err := Main(context.Background(), PreviewOpts{Timing: "vga640", Frames: 3, DumpPNG: out}); err != nil {
		t.Fatalf("Main: %v", err)
	}
	f, err := os.Open(out)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if got := img.Bounds().Size(); got.X != 640 || got.Y != 480 {
		t.Errorf("frame is %v, want 640x480", got)
	}
}

func TestMainWithoutEncoder(t *testing.T) {
	p := writeProfile(t, "Encoder:\n  Present: false\n")
	out := filepath.Join(t.TempDir(), "frame.png")
	if err := Main(context.Background(), PreviewOpts{ProfilePath: p, Frames: 1, DumpPNG: out}); err != nil {
		t.Fatalf("Main: %v", err)
	}
	f, err := os.Open(out)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer f.Close()
	cfg, err := png.DecodeConfig(f)
	if err != nil {
		t.Fatalf("DecodeConfig: %v", err)
	}
	if cfg.Width != 800 || cfg.Height != 480 {
		t.Errorf("panel frame is %dx%d, want 800x480", cfg.Width, cfg.Height)
	}
}

func TestMainErrors(t *testing.T) {
	for _, test := range []struct {
		desc      string
		opts      PreviewOpts
		wantFatal bool
	}{
		{
			desc: "unknown timing",
			opts: PreviewOpts{Timing: "ntsc"},
		}, {
			desc: "missing profile",
			opts: PreviewOpts{ProfilePath: filepath.Join(t.TempDir(), "missing.yaml")},
		}, {
			desc:      "encoder write failure",
			opts:      PreviewOpts{ProfilePath: writeProfile(t, "VirtualTime: true\nEncoder:\n  Present: true\n  ChipRevision: 0x13\n  CableAfterPolls: 1\n  FailWrites: [0x98]\n"), Frames: 1},
			wantFatal: true,
		},
	} {
		t.Run(test.desc, func(t *testing.T) {
			err := Main(context.Background(), test.opts)
			if err == nil {
				t.Fatal("Main succeeded")
			}
			if got := errors.Is(err, adv7513.ErrFatal); got != test.wantFatal {
				t.Errorf("Main: %v, fatal = %t, want %t", err, got, test.wantFatal)
			}
		})
	}
}
