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

// Package sim provides an in-memory register bus.
//
// Each device address present on the bus owns a 256 byte register file.
// Transactions to absent devices fail, as would an unacknowledged address
// on a real bus. Failures can be injected per register, and a hook may
// mutate registers before each read so tests can script hardware events
// such as a cable being plugged in.
package sim

import (
	"errors"
	"fmt"
	"sync"

	"github.com/n6preview/firmware/bus"
)

// ErrNack is returned for transactions with absent devices or with
// registers which have an injected failure.
var ErrNack = errors.New("sim: no acknowledge")

// Op identifies the direction of a transaction.
type Op int

const (
	Read Op = iota
	Write
)

func (o Op) String() string {
	if o == Read {
		return "R"
	}
	return "W"
}

// Tx records a single completed or failed transaction.
type Tx struct {
	Op    Op
	Dev   uint16
	Reg   uint16
	Data  []byte
	Error bool
}

func (t Tx) String() string {
	return fmt.Sprintf("%v %#02x[%#02x] % x err=%t", t.Op, t.Dev, t.Reg, t.Data, t.Error)
}

// ReadHook is called before a register read is served. n is the number of
// reads of reg seen so far, including this one.
type ReadHook func(regs *[256]byte, reg uint16, n int)

// Bus is an in-memory implementation of bus.Bus.
type Bus struct {
	mu        sync.Mutex
	devs      map[uint16]*[256]byte
	hooks     map[uint16]ReadHook
	readFail  map[uint16]map[uint16]bool
	writeFail map[uint16]map[uint16]bool
	reads     map[uint16]map[uint16]int
	open      bool
	opens     int
	closes    int
	log       []Tx
}

var _ bus.Bus = &Bus{}

// New creates an empty bus with no devices attached.
func New() *Bus {
	return &Bus{
		devs:      make(map[uint16]*[256]byte),
		hooks:     make(map[uint16]ReadHook),
		readFail:  make(map[uint16]map[uint16]bool),
		writeFail: make(map[uint16]map[uint16]bool),
		reads:     make(map[uint16]map[uint16]int),
	}
}

// Attach adds a device with a zeroed register file at address dev and
// returns the register file for direct inspection.
func (b *Bus) Attach(dev uint16) *[256]byte {
	b.mu.Lock()
	defer b.mu.Unlock()
	r := &[256]byte{}
	b.devs[dev] = r
	return r
}

// Regs returns the register file of dev, or nil if no such device exists.
func (b *Bus) Regs(dev uint16) *[256]byte {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.devs[dev]
}

// OnRead installs a hook for reads on device dev.
func (b *Bus) OnRead(dev uint16, h ReadHook) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.hooks[dev] = h
}

// FailRead makes every read of reg on dev fail.
func (b *Bus) FailRead(dev, reg uint16) {
	b.mu.Lock()
	defer b.mu.Unlock()
	setFlag(b.readFail, dev, reg)
}

// FailWrite makes every write of reg on dev fail.
func (b *Bus) FailWrite(dev, reg uint16) {
	b.mu.Lock()
	defer b.mu.Unlock()
	setFlag(b.writeFail, dev, reg)
}

func setFlag(m map[uint16]map[uint16]bool, dev, reg uint16) {
	if m[dev] == nil {
		m[dev] = make(map[uint16]bool)
	}
	m[dev][reg] = true
}

// Reads returns the number of read transactions issued against reg on dev.
func (b *Bus) Reads(dev, reg uint16) int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.reads[dev][reg]
}

// Log returns a copy of the transaction log.
func (b *Bus) Log() []Tx {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]Tx(nil), b.log...)
}

// IsOpen reports whether the bus is currently open.
func (b *Bus) IsOpen() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.open
}

// Lifecycle returns the number of Open and Close calls seen.
func (b *Bus) Lifecycle() (opens, closes int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.opens, b.closes
}

// Open implements bus.Bus.
func (b *Bus) Open() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.open = true
	b.opens++
	return nil
}

// Close implements bus.Bus.
func (b *Bus) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.open = false
	b.closes++
	return nil
}

// ReadReg implements bus.Bus.
func (b *Bus) ReadReg(dev, reg uint16, d []byte) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if !b.open {
		return errors.New("sim: bus not open")
	}
	if b.reads[dev] == nil {
		b.reads[dev] = make(map[uint16]int)
	}
	b.reads[dev][reg]++
	regs, ok := b.devs[dev]
	if !ok || b.readFail[dev][reg] || int(reg)+len(d) > len(regs) {
		b.log = append(b.log, Tx{Op: Read, Dev: dev, Reg: reg, Error: true})
		return fmt.Errorf("read %#02x[%#02x]: %w", dev, reg, ErrNack)
	}
	if h := b.hooks[dev]; h != nil {
		h(regs, reg, b.reads[dev][reg])
	}
	copy(d, regs[reg:])
	b.log = append(b.log, Tx{Op: Read, Dev: dev, Reg: reg, Data: append([]byte(nil), d...)})
	return nil
}

// WriteReg implements bus.Bus.
func (b *Bus) WriteReg(dev, reg uint16, d []byte) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if !b.open {
		return errors.New("sim: bus not open")
	}
	regs, ok := b.devs[dev]
	if !ok || b.writeFail[dev][reg] || int(reg)+len(d) > len(regs) {
		b.log = append(b.log, Tx{Op: Write, Dev: dev, Reg: reg, Data: append([]byte(nil), d...), Error: true})
		return fmt.Errorf("write %#02x[%#02x]: %w", dev, reg, ErrNack)
	}
	copy(regs[reg:], d)
	b.log = append(b.log, Tx{Op: Write, Dev: dev, Reg: reg, Data: append([]byte(nil), d...)})
	return nil
}
