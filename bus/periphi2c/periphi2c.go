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

// Package periphi2c binds bus.Bus to a Linux host I2C adapter using periph.io.
package periphi2c

import (
	"errors"
	"fmt"

	"github.com/golang/glog"
	"github.com/n6preview/firmware/bus"
	"periph.io/x/conn/v3/i2c"
	"periph.io/x/conn/v3/i2c/i2creg"
	"periph.io/x/host/v3"
)

// Opener opens a named I2C bus. It is i2creg.Open unless replaced in tests.
type Opener func(name string) (i2c.BusCloser, error)

// Bus is a bus.Bus backed by a periph.io I2C bus.
type Bus struct {
	// Name is the periph bus name, e.g. "/dev/i2c-1" or "1". Empty picks
	// the first registered bus.
	Name string

	open Opener
	bc   i2c.BusCloser
}

var _ bus.Bus = &Bus{}

// New returns a bus which will open the named host adapter.
func New(name string) *Bus {
	return &Bus{Name: name, open: hostOpen}
}

// NewWithOpener is like New but uses o to open the adapter.
func NewWithOpener(name string, o Opener) *Bus {
	return &Bus{Name: name, open: o}
}

func hostOpen(name string) (i2c.BusCloser, error) {
	if _, err := host.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialise periph host drivers: %w", err)
	}
	return i2creg.Open(name)
}

// Open implements bus.Bus.
func (b *Bus) Open() error {
	if b.bc != nil {
		return nil
	}
	bc, err := b.open(b.Name)
	if err != nil {
		return fmt.Errorf("failed to open i2c bus %q: %w", b.Name, err)
	}
	glog.V(1).Infof("opened i2c bus %s", bc)
	b.bc = bc
	return nil
}

// Close implements bus.Bus.
func (b *Bus) Close() error {
	if b.bc == nil {
		return nil
	}
	err := b.bc.Close()
	b.bc = nil
	return err
}

func (b *Bus) dev(dev uint16) (*i2c.Dev, error) {
	if b.bc == nil {
		return nil, errors.New("periphi2c: bus not open")
	}
	return &i2c.Dev{Bus: b.bc, Addr: bus.SevenBit(dev)}, nil
}

// ReadReg implements bus.Bus.
func (b *Bus) ReadReg(dev, reg uint16, d []byte) error {
	id, err := b.dev(dev)
	if err != nil {
		return err
	}
	return id.Tx([]byte{byte(reg)}, d)
}

// WriteReg implements bus.Bus.
func (b *Bus) WriteReg(dev, reg uint16, d []byte) error {
	id, err := b.dev(dev)
	if err != nil {
		return err
	}
	w := make([]byte, 0, len(d)+1)
	w = append(w, byte(reg))
	w = append(w, d...)
	return id.Tx(w, nil)
}
