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

// Package simboard builds simulated boards from a yaml profile.
package simboard

import (
	_ "embed"
	"fmt"
	"os"

	"github.com/golang/glog"
	"github.com/n6preview/firmware/board"
	boardsim "github.com/n6preview/firmware/board/sim"
	"github.com/n6preview/firmware/bus/sim"
	camsim "github.com/n6preview/firmware/camera/sim"
	"github.com/n6preview/firmware/display/timing"
	"github.com/n6preview/firmware/encoder/adv7513"
	"github.com/n6preview/firmware/internal/simclock"
	"gopkg.in/yaml.v2"
)

// DefaultProfile is a board with an encoder and a cable plugged in after a
// few polls.
//
//go:embed profile.yaml
var DefaultProfile []byte

// Profile describes a simulated board.
type Profile struct {
	// Timing names the output preset. Empty uses the preset built in.
	Timing string `yaml:"Timing"`
	// VirtualTime skips the encoder's real delays.
	VirtualTime bool `yaml:"VirtualTime"`
	// Encoder is the simulated HDMI encoder.
	Encoder Encoder `yaml:"Encoder"`
}

// Encoder describes the simulated encoder and its bus.
type Encoder struct {
	Present      bool `yaml:"Present"`
	ChipRevision int  `yaml:"ChipRevision"`
	// CableAfterPolls is the hot plug read which first sees the cable.
	// Zero never plugs it.
	CableAfterPolls int `yaml:"CableAfterPolls"`
	// FailReads and FailWrites list registers whose transfers fail.
	FailReads  []int `yaml:"FailReads"`
	FailWrites []int `yaml:"FailWrites"`
}

// Parse decodes a yaml profile.
func Parse(b []byte) (Profile, error) {
	p := Profile{}
	if err := yaml.UnmarshalStrict(b, &p); err != nil {
		return Profile{}, fmt.Errorf("failed to unmarshal profile: %w", err)
	}
	if r := p.Encoder.ChipRevision; r < 0 || r > 0xff {
		return Profile{}, fmt.Errorf("chip revision %#x is not a byte", r)
	}
	for _, r := range append(append([]int(nil), p.Encoder.FailReads...), p.Encoder.FailWrites...) {
		if r < 0 || r > 0xff {
			return Profile{}, fmt.Errorf("register %#x is not a byte", r)
		}
	}
	return p, nil
}

// Load reads the profile at path, or the default profile if path is empty.
func Load(path string) (Profile, error) {
	if path == "" {
		return Parse(DefaultProfile)
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return Profile{}, fmt.Errorf("failed to read profile: %w", err)
	}
	return Parse(b)
}

// Preset returns the output preset the profile asks for.
func (p Profile) Preset() (timing.Preset, error) {
	if p.Timing == "" {
		return timing.Active, nil
	}
	return timing.Lookup(p.Timing)
}

// NewBus returns a bus carrying the encoder described by e.
func NewBus(e Encoder) *sim.Bus {
	b := sim.New()
	if !e.Present {
		return b
	}
	regs := b.Attach(adv7513.Addr)
	regs[adv7513.RegChipRevision] = byte(e.ChipRevision)
	regs[adv7513.RegPower] = adv7513.PowerDownBit
	b.OnRead(adv7513.Addr, func(regs *[256]byte, reg uint16, n int) {
		if reg == adv7513.RegHPD && e.CableAfterPolls > 0 && n >= e.CableAfterPolls {
			if regs[adv7513.RegHPD]&adv7513.HPDBit == 0 {
				glog.Infof("sim: cable plugged after %d polls", n)
			}
			regs[adv7513.RegHPD] |= adv7513.HPDBit
		}
	})
	for _, r := range e.FailReads {
		b.FailRead(adv7513.Addr, uint16(r))
	}
	for _, r := range e.FailWrites {
		b.FailWrite(adv7513.Addr, uint16(r))
	}
	return b
}

// NewEncoder returns the encoder driver on b, using virtual time if asked.
func (p Profile) NewEncoder(b *sim.Bus) *adv7513.Device {
	if p.VirtualTime {
		return adv7513.NewWithTimer(b, simclock.New())
	}
	return adv7513.New(b)
}

// Sim is a simulated board and handles on its collaborators.
type Sim struct {
	Board    *board.Board
	Bus      *sim.Bus
	Encoder  *adv7513.Device
	Hardware *boardsim.Hardware
	Pins     *boardsim.Pins
	Display  *boardsim.Display
	Camera   *camsim.Camera
}

// New builds a simulated board for preset.
func (p Profile) New(preset timing.Preset) *Sim {
	s := &Sim{
		Bus:      NewBus(p.Encoder),
		Hardware: &boardsim.Hardware{},
		Pins:     &boardsim.Pins{},
		Display:  boardsim.NewDisplay(),
		Camera:   camsim.New(),
	}
	s.Encoder = p.NewEncoder(s.Bus)
	s.Board = &board.Board{
		Hardware: s.Hardware,
		Pins:     s.Pins,
		Encoder:  s.Encoder,
		LTDC:     s.Display,
		Layers:   s.Display,
		Camera:   s.Camera,
		Preset:   preset,
	}
	return s
}
