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

import (
	"fmt"

	"github.com/n6preview/firmware/bus"
)

// FieldUpdate sets the bits selected by Mask in register Reg to the
// corresponding bits of Value.
type FieldUpdate struct {
	Reg   uint16
	Value byte
	Mask  byte
}

// Write returns an update replacing the whole register.
func Write(reg uint16, v byte) FieldUpdate {
	return FieldUpdate{Reg: reg, Value: v, Mask: 0xff}
}

// Set returns an update setting bits.
func Set(reg uint16, bits byte) FieldUpdate {
	return FieldUpdate{Reg: reg, Value: bits, Mask: bits}
}

// Clear returns an update clearing bits.
func Clear(reg uint16, bits byte) FieldUpdate {
	return FieldUpdate{Reg: reg, Value: 0, Mask: bits}
}

// Valid reports whether the update only carries bits inside its mask.
func (u FieldUpdate) Valid() bool {
	return u.Value&^u.Mask == 0
}

// Whole reports whether the update replaces the entire register, so no read
// of the old value is needed.
func (u FieldUpdate) Whole() bool {
	return u.Mask == 0xff
}

func (u FieldUpdate) String() string {
	return fmt.Sprintf("[%#02x] = %#02x/%#02x", u.Reg, u.Value, u.Mask)
}

// Merge returns old with the masked bits replaced by those of data.
func Merge(old, data, mask byte) byte {
	return (old &^ mask) | (data & mask)
}

// ReadModifyWrite reads reg on the encoder, replaces the bits selected by
// mask with those of data and writes the result back. Exactly one read and
// one write transaction are issued.
func ReadModifyWrite(b bus.Bus, reg uint16, data, mask byte) error {
	v := make([]byte, 1)
	if err := b.ReadReg(Addr, reg, v); err != nil {
		return fmt.Errorf("read %#02x: %w", reg, err)
	}
	v[0] = Merge(v[0], data, mask)
	if err := b.WriteReg(Addr, reg, v); err != nil {
		return fmt.Errorf("write %#02x: %w", reg, err)
	}
	return nil
}

// ClearBits clears bits in reg.
func ClearBits(b bus.Bus, reg uint16, bits byte) error {
	return ReadModifyWrite(b, reg, 0, bits)
}

// SetBits sets bits in reg.
func SetBits(b bus.Bus, reg uint16, bits byte) error {
	return ReadModifyWrite(b, reg, bits, bits)
}

// Apply performs u against the encoder. Whole-register updates are a single
// write; everything else goes through ReadModifyWrite. An update that is not
// Valid is rejected with ErrInvalidUpdate before the bus is touched.
func Apply(b bus.Bus, u FieldUpdate) error {
	if !u.Valid() {
		return fmt.Errorf("%v: %w", u, ErrInvalidUpdate)
	}
	if !u.Whole() {
		return ReadModifyWrite(b, u.Reg, u.Value, u.Mask)
	}
	if err := b.WriteReg(Addr, u.Reg, []byte{u.Value}); err != nil {
		return fmt.Errorf("write %#02x: %w", u.Reg, err)
	}
	return nil
}

// ApplyAll performs the updates in order, stopping at the first failure.
func ApplyAll(b bus.Bus, us []FieldUpdate) error {
	for _, u := range us {
		if err := Apply(b, u); err != nil {
			return err
		}
	}
	return nil
}
