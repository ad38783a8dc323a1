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

package adv7513

import "time"

const (
	// Addr is the 8-bit bus address of the encoder's main register map.
	Addr uint16 = 0x7a

	// RegChipRevision holds the silicon revision; ChipRevision is the only
	// revision this driver supports.
	RegChipRevision uint16 = 0x00
	ChipRevision    byte   = 0x13

	// RegHPD reports the hot-plug detect state in bit 6.
	RegHPD uint16 = 0x42
	HPDBit byte   = 1 << 6

	// RegPower holds the active-low power-down control in bit 6.
	RegPower     uint16 = 0x41
	PowerDownBit byte   = 1 << 6

	// PollInterval is the delay before each read of the HPD state.
	PollInterval = 100 * time.Millisecond
	// SettleDelay is the dead time after HPD before the sink is usable.
	SettleDelay = time.Second
)

// PowerUp clears the power-down bit.
var PowerUp = []FieldUpdate{
	Clear(RegPower, PowerDownBit),
}

// FixedRegisters must be written after every power-up. The values and their
// order come from the vendor programming guide and are opaque; 0x9D[1:0]
// selects the input clock divider.
var FixedRegisters = []FieldUpdate{
	Write(0x98, 0x03),
	Set(0x9a, 7<<5),
	Write(0x9c, 0x30),
	{Reg: 0x9d, Value: 0x01, Mask: 0x03},
	Write(0xa2, 0xa4),
	Write(0xa3, 0xa4),
	Write(0xe0, 0xd0),
	Write(0xf9, 0x00),
}

// InputFormat configures 24 bit RGB 4:4:4 input with separate syncs, 8 bit
// colour depth and a 4:3 aspect ratio.
//
// TODO(n6): 16:9 aspect ratio is not supported yet; 0x17[1] stays clear
// even for widescreen timings.
var InputFormat = []FieldUpdate{
	Write(0x15, 0x00),
	{Reg: 0x16, Value: 3 << 4, Mask: 3 << 4},
	{Reg: 0x17, Value: 0 << 1, Mask: 1 << 1},
}

// OutputFormat selects 4:4:4 output, bypasses the colour space converter
// and selects DVI (no HDCP/infoframes) mode.
var OutputFormat = []FieldUpdate{
	{Reg: 0x16, Value: 0 << 6, Mask: 3 << 6},
	{Reg: 0x18, Value: 0 << 7, Mask: 1 << 7},
	{Reg: 0xaf, Value: 0 << 1, Mask: 1 << 1},
}
