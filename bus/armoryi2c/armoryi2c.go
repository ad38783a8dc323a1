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

//go:build tamago
// +build tamago

// Package armoryi2c binds bus.Bus to an i.MX6UL I2C controller, for driving
// the encoder from a USB armory running a tamago unikernel.
package armoryi2c

import (
	"github.com/n6preview/firmware/bus"
	"github.com/usbarmory/tamago/soc/nxp/i2c"
	"github.com/usbarmory/tamago/soc/nxp/imx6ul"
)

// Register addresses on the encoder are a single byte.
const addrLen = 1

// Bus drives one of the SoC I2C controllers.
type Bus struct {
	Ctrl *i2c.I2C
}

var _ bus.Bus = &Bus{}

// Default returns a bus on the I2C1 controller.
func Default() *Bus {
	return &Bus{Ctrl: imx6ul.I2C1}
}

// Open implements bus.Bus.
func (b *Bus) Open() error {
	b.Ctrl.Init()
	return nil
}

// Close implements bus.Bus.
func (b *Bus) Close() error {
	return nil
}

// ReadReg implements bus.Bus.
func (b *Bus) ReadReg(dev, reg uint16, d []byte) error {
	buf, err := b.Ctrl.Read(uint8(bus.SevenBit(dev)), uint32(reg), addrLen, len(d))
	if err != nil {
		return err
	}
	copy(d, buf)
	return nil
}

// WriteReg implements bus.Bus.
func (b *Bus) WriteReg(dev, reg uint16, d []byte) error {
	return b.Ctrl.Write(d, uint8(bus.SevenBit(dev)), uint32(reg), addrLen)
}
