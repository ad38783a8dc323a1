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

// Package tinygoi2c binds bus.Bus to a TinyGo I2C peripheral.
package tinygoi2c

import (
	"github.com/n6preview/firmware/bus"
	"tinygo.org/x/drivers"
)

// Bus adapts a drivers.I2C (e.g. *machine.I2C) to bus.Bus.
type Bus struct {
	i2c drivers.I2C
	// Configure, if set, is run by Open; it typically calls
	// machine.I2C.Configure with the board's pins and frequency.
	Configure func() error
}

var _ bus.Bus = &Bus{}

// New returns a bus driving i2c.
func New(i2c drivers.I2C) *Bus {
	return &Bus{i2c: i2c}
}

// Open implements bus.Bus.
func (b *Bus) Open() error {
	if b.Configure != nil {
		return b.Configure()
	}
	return nil
}

// Close implements bus.Bus. TinyGo peripherals have no release step.
func (b *Bus) Close() error {
	return nil
}

// ReadReg implements bus.Bus.
func (b *Bus) ReadReg(dev, reg uint16, d []byte) error {
	return b.i2c.Tx(bus.SevenBit(dev), []byte{byte(reg)}, d)
}

// WriteReg implements bus.Bus.
func (b *Bus) WriteReg(dev, reg uint16, d []byte) error {
	w := append([]byte{byte(reg)}, d...)
	return b.i2c.Tx(bus.SevenBit(dev), w, nil)
}
