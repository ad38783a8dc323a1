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

// Package impl is the implementation of the encoder detection tool.
package impl

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/golang/glog"
	"github.com/n6preview/firmware/bus"
	"github.com/n6preview/firmware/encoder/adv7513"
	"github.com/n6preview/firmware/internal/simboard"
)

// DetectOpts encapsulates detection parameters.
type DetectOpts struct {
	Bus         string
	I2CBus      string
	ProfilePath string
	Init        bool
}

// Opener returns the bus selected by opts together with the encoder
// driver for it.
type Opener func(opts DetectOpts) (*adv7513.Device, error)

var buses = map[string]Opener{
	"sim": func(opts DetectOpts) (*adv7513.Device, error) {
		prof, err := simboard.Load(opts.ProfilePath)
		if err != nil {
			return nil, err
		}
		return prof.NewEncoder(simboard.NewBus(prof.Encoder)), nil
	},
}

// register makes a bus driver available; drivers needing a special
// toolchain register themselves from build tagged files.
func register(name string, b func() bus.Bus) {
	buses[name] = func(DetectOpts) (*adv7513.Device, error) {
		return adv7513.New(b()), nil
	}
}

// Buses returns the names of the available bus drivers.
func Buses() []string {
	r := make([]string, 0, len(buses))
	for n := range buses {
		r = append(r, n)
	}
	sort.Strings(r)
	return r
}

// Main detects the encoder and, if asked, initialises it. The returned
// state is valid even when an error is returned.
func Main(ctx context.Context, opts DetectOpts) (adv7513.State, error) {
	open, ok := buses[opts.Bus]
	if !ok {
		return adv7513.State{}, fmt.Errorf("bus must be one of %v", Buses())
	}
	dev, err := open(opts)
	if err != nil {
		return adv7513.State{}, err
	}

	if err := dev.Detect(); err != nil {
		if errors.Is(err, adv7513.ErrNotPresent) {
			glog.Warningf("No encoder: %v", err)
			return dev.State(), nil
		}
		return dev.State(), err
	}
	glog.Info("Encoder detected")
	if !opts.Init {
		return dev.State(), nil
	}
	if err := dev.Init(ctx); err != nil {
		return dev.State(), fmt.Errorf("failed to initialise encoder: %w", err)
	}
	glog.Infof("Encoder ready: %t", dev.State().Ready())
	return dev.State(), nil
}
