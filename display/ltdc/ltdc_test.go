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

package ltdc

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/n6preview/firmware/display/timing"
)

func TestComputeExternal(t *testing.T) {
	p := timing.Preset{
		Name: "test", Width: 800, Height: 480,
		HFP: 24, HSync: 72, HBP: 96,
		VFP: 3, VSync: 7, VBP: 7,
		ClockDivider: 24,
	}
	want := Config{
		HorizontalSync:     71,
		AccumulatedHBP:     167,
		AccumulatedActiveW: 967,
		TotalWidth:         991,
		VerticalSync:       6,
		AccumulatedVBP:     13,
		AccumulatedActiveH: 493,
		TotalHeight:        496,
		HSPolarity:         ActiveLow,
		VSPolarity:         ActiveLow,
		DEPolarity:         ActiveLow,
		PCPolarity:         ClockInverted,
	}
	if diff := cmp.Diff(want, Compute(p, true)); diff != "" {
		t.Errorf("Compute diff (-want +got):\n%s", diff)
	}
}

func TestComputePanel(t *testing.T) {
	want := Config{
		HorizontalSync:     3,
		AccumulatedHBP:     11,
		AccumulatedActiveW: 811,
		TotalWidth:         819,
		VerticalSync:       3,
		AccumulatedVBP:     11,
		AccumulatedActiveH: 491,
		TotalHeight:        499,
		HSPolarity:         ActiveLow,
		VSPolarity:         ActiveLow,
		DEPolarity:         ActiveLow,
		PCPolarity:         ClockInverted,
	}
	for _, p := range []timing.Preset{timing.Square480, timing.VGA640, timing.HD720, timing.WVGA800} {
		if diff := cmp.Diff(want, Compute(p, false)); diff != "" {
			t.Errorf("Compute(%v, false) diff (-want +got):\n%s", p, diff)
		}
	}
}

// Switching between encoder and panel must swap every timing field, never
// leave a mix of the two.
func TestComputePathsDisjoint(t *testing.T) {
	p := timing.HD720
	ext, panel := Compute(p, true), Compute(p, false)
	for _, f := range []struct {
		name       string
		ext, panel int
	}{
		{"HorizontalSync", ext.HorizontalSync, panel.HorizontalSync},
		{"VerticalSync", ext.VerticalSync, panel.VerticalSync},
		{"AccumulatedHBP", ext.AccumulatedHBP, panel.AccumulatedHBP},
		{"AccumulatedVBP", ext.AccumulatedVBP, panel.AccumulatedVBP},
		{"AccumulatedActiveW", ext.AccumulatedActiveW, panel.AccumulatedActiveW},
		{"AccumulatedActiveH", ext.AccumulatedActiveH, panel.AccumulatedActiveH},
		{"TotalWidth", ext.TotalWidth, panel.TotalWidth},
		{"TotalHeight", ext.TotalHeight, panel.TotalHeight},
	} {
		if f.ext == f.panel {
			t.Errorf("%s is %d on both paths", f.name, f.ext)
		}
	}
	if diff := cmp.Diff(Compute(timing.PanelRK050HR18, true), panel); diff != "" {
		t.Errorf("panel path is not the panel preset (-want +got):\n%s", diff)
	}
	if ext.HSPolarity != panel.HSPolarity || ext.PCPolarity != panel.PCPolarity {
		t.Error("polarities differ between paths")
	}
}

func TestActiveArea(t *testing.T) {
	for _, p := range []timing.Preset{timing.Square480, timing.VGA640, timing.HD720, timing.WVGA800} {
		w, h := Compute(p, true).ActiveArea()
		if w != p.Width || h != p.Height {
			t.Errorf("%v: ActiveArea = %dx%d", p, w, h)
		}
	}
}

func TestClockConfig(t *testing.T) {
	for _, test := range []struct {
		p        timing.Preset
		external bool
		want     Clock
	}{
		{timing.HD720, true, Clock{Source: PLL4, Divider: 9}},
		{timing.Square480, true, Clock{Source: PLL4, Divider: 41}},
		{timing.HD720, false, Clock{Source: PLL4, Divider: 24}},
	} {
		if diff := cmp.Diff(test.want, ClockConfig(test.p, test.external)); diff != "" {
			t.Errorf("ClockConfig(%v, %t) diff (-want +got):\n%s", test.p, test.external, diff)
		}
	}
}

type fakeController struct {
	calls    []string
	clock    Clock
	cfg      Config
	clockErr error
}

func (f *fakeController) ConfigureClock(c Clock) error {
	f.calls = append(f.calls, "clock")
	f.clock = c
	return f.clockErr
}

func (f *fakeController) Init(c Config) error {
	f.calls = append(f.calls, "init")
	f.cfg = c
	return nil
}

func TestProgram(t *testing.T) {
	f := &fakeController{}
	cfg, err := Program(f, timing.VGA640, true)
	if err != nil {
		t.Fatalf("Program: %v", err)
	}
	if diff := cmp.Diff([]string{"clock", "init"}, f.calls); diff != "" {
		t.Errorf("call order diff (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(cfg, f.cfg); diff != "" {
		t.Errorf("programmed config differs from returned (-want +got):\n%s", diff)
	}

	f = &fakeController{clockErr: errors.New("pll unlocked")}
	if _, err := Program(f, timing.VGA640, true); err == nil {
		t.Error("Program succeeded with a clock failure")
	}
	if len(f.calls) != 1 {
		t.Errorf("timing generator initialised after clock failure: %v", f.calls)
	}
}
