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

// Package adv7513 brings up an ADV7513 HDMI transmitter fed with parallel
// RGB from the display controller.
//
// Bring-up is two calls: Detect reads the chip revision without side
// effects, and Init runs the power-up sequence once a sink is connected.
// Absence of the chip is reported as ErrNotPresent, any failure once the chip
// is assumed present as a *FatalError.
package adv7513

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/golang/glog"
	"github.com/n6preview/firmware/bus"
)

var errNoCable = errors.New("hot-plug detect not asserted")

// State tracks progress through Init. Flags only ever go from false to true.
type State struct {
	IdentityVerified bool
	CablePresent     bool
	PoweredUp        bool
	InputConfigured  bool
	OutputConfigured bool
}

// Ready reports whether the encoder is fully configured.
func (s State) Ready() bool {
	return s.IdentityVerified && s.CablePresent && s.PoweredUp && s.InputConfigured && s.OutputConfigured
}

// Device is an encoder attached to a bus.
type Device struct {
	bus   bus.Bus
	timer backoff.Timer
	state State
}

// New returns a device on b which waits using wall-clock time.
func New(b bus.Bus) *Device {
	return NewWithTimer(b, &wallTimer{})
}

// NewWithTimer returns a device on b which uses t for all waits.
func NewWithTimer(b bus.Bus, t backoff.Timer) *Device {
	return &Device{bus: b, timer: t}
}

// State returns the current initialisation state.
func (d *Device) State() State {
	return d.state
}

// Detect reads the chip revision register once. It returns nil if a
// supported encoder answered, and an error matching ErrNotPresent otherwise.
// The bus is closed again before returning.
func (d *Device) Detect() error {
	if err := d.bus.Open(); err != nil {
		return fmt.Errorf("%w: %v", ErrNotPresent, err)
	}
	defer func() {
		if cerr := d.bus.Close(); cerr != nil {
			glog.Warningf("adv7513: failed to close bus: %v", cerr)
		}
	}()

	rev, err := d.read(RegChipRevision)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrNotPresent, err)
	}
	if rev != ChipRevision {
		return fmt.Errorf("%w: chip revision %#02x", ErrNotPresent, rev)
	}
	return nil
}

// Init powers up and configures the encoder. It blocks until a sink asserts
// hot-plug detect; there is no timeout, only cancellation through ctx.
//
// Every returned error is a *FatalError.
func (d *Device) Init(ctx context.Context) error {
	if err := d.bus.Open(); err != nil {
		return fatal(StepVerifyIdentity, err)
	}
	defer func() {
		if err := d.bus.Close(); err != nil {
			glog.Warningf("adv7513: failed to close bus: %v", err)
		}
	}()

	rev, err := d.read(RegChipRevision)
	if err != nil {
		return fatal(StepVerifyIdentity, err)
	}
	if rev != ChipRevision {
		return fatal(StepVerifyIdentity, fmt.Errorf("%w %#02x, want %#02x", ErrIdentityMismatch, rev, ChipRevision))
	}
	d.state.IdentityVerified = true

	glog.Info("Plug hdmi cable to monitor")
	if err := d.awaitCable(ctx); err != nil {
		return fatal(StepAwaitCable, err)
	}
	d.state.CablePresent = true
	glog.Info("Cable plugged detected")

	if err := d.wait(ctx, SettleDelay); err != nil {
		return fatal(StepSettle, err)
	}

	for _, s := range []struct {
		step Step
		seq  []FieldUpdate
		done *bool
	}{
		{StepPowerUp, PowerUp, &d.state.PoweredUp},
		{StepFixedRegisters, FixedRegisters, nil},
		{StepInputFormat, InputFormat, &d.state.InputConfigured},
		{StepOutputFormat, OutputFormat, &d.state.OutputConfigured},
	} {
		if err := ApplyAll(d.bus, s.seq); err != nil {
			return fatal(s.step, err)
		}
		if s.done != nil {
			*s.done = true
		}
		glog.V(1).Infof("adv7513: %v done", s.step)
	}
	return nil
}

// awaitCable polls the HPD bit, waiting PollInterval before every read.
func (d *Device) awaitCable(ctx context.Context) error {
	if err := d.wait(ctx, PollInterval); err != nil {
		return err
	}
	op := func() error {
		v, err := d.read(RegHPD)
		if err != nil {
			return backoff.Permanent(err)
		}
		if v&HPDBit == 0 {
			return errNoCable
		}
		return nil
	}
	b := backoff.WithContext(backoff.NewConstantBackOff(PollInterval), ctx)
	notify := func(err error, next time.Duration) {
		glog.V(2).Infof("adv7513: %v, polling again in %v", err, next)
	}
	return backoff.RetryNotifyWithTimer(op, b, notify, d.timer)
}

func (d *Device) wait(ctx context.Context, dur time.Duration) error {
	d.timer.Start(dur)
	defer d.timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-d.timer.C():
		return nil
	}
}

func (d *Device) read(reg uint16) (byte, error) {
	v := make([]byte, 1)
	if err := d.bus.ReadReg(Addr, reg, v); err != nil {
		return 0, fmt.Errorf("read %#02x: %w", reg, err)
	}
	return v[0], nil
}

// wallTimer is a backoff.Timer on top of time.Timer.
type wallTimer struct {
	t *time.Timer
}

func (w *wallTimer) Start(d time.Duration) {
	if w.t == nil {
		w.t = time.NewTimer(d)
		return
	}
	w.t.Stop()
	w.t.Reset(d)
}

func (w *wallTimer) Stop() {
	if w.t != nil {
		w.t.Stop()
	}
}

func (w *wallTimer) C() <-chan time.Time {
	return w.t.C
}
