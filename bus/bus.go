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

// Package bus defines the 2-wire register access channel used to talk to
// peripherals on the board.
//
// Drivers for individual bus controllers are bound to the Bus interface,
// which lets the encoder code run unchanged against real hardware or the
// in-memory simulator.
package bus

// Bus represents a register-addressed 2-wire bus.
//
// Device addresses are given in their 8-bit form, as printed in board
// schematics (e.g. 0x7A); drivers shift them as their controller requires.
type Bus interface {
	// Open prepares the bus controller for transactions.
	Open() error
	// Close releases the bus controller.
	Close() error
	// ReadReg reads len(b) bytes starting at register reg of device dev.
	ReadReg(dev uint16, reg uint16, b []byte) error
	// WriteReg writes b starting at register reg of device dev.
	WriteReg(dev uint16, reg uint16, b []byte) error
}

// SevenBit converts an 8-bit bus address into the 7-bit form used by most
// I2C host APIs.
func SevenBit(dev uint16) uint16 {
	return dev >> 1
}
