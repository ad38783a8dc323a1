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

package board

import (
	"fmt"

	"github.com/n6preview/firmware/display/timing"
)

// Oscillator is a PLL reference.
type Oscillator int

const (
	// HSI is the 64MHz internal oscillator.
	HSI Oscillator = iota
	// HSE is the 48MHz external clock, used in bypass mode.
	HSE
)

// Hz returns the oscillator frequency.
func (o Oscillator) Hz() uint64 {
	if o == HSE {
		return 48_000_000
	}
	return 64_000_000
}

func (o Oscillator) String() string {
	if o == HSE {
		return "hse"
	}
	return "hsi"
}

// PLL is the setup of one PLL: output = ref * N / M / (P1 * P2).
type PLL struct {
	Source Oscillator
	M      int
	N      int
	P1     int
	P2     int
}

// OutputHz returns the PLL output frequency.
func (p PLL) OutputHz() uint64 {
	return p.Source.Hz() * uint64(p.N) / uint64(p.M) / uint64(p.P1*p.P2)
}

func (p PLL) String() string {
	return fmt.Sprintf("%v*%d/%d/%d/%d=%dMHz", p.Source, p.N, p.M, p.P1, p.P2, p.OutputHz()/1_000_000)
}

// ClockPlan is the system clock tree.
type ClockPlan struct {
	// PLL1 feeds the CPU and AXI.
	PLL1 PLL
	// PLL2 feeds the NPU.
	PLL2 PLL
	// PLL3 feeds the AXI SRAMs.
	PLL3 PLL
	// PLL4 is the display clock source.
	PLL4 PLL
}

// DefaultClockPlan runs the CPU at 800MHz and gives the display a 600MHz
// reference.
var DefaultClockPlan = ClockPlan{
	PLL1: PLL{Source: HSI, M: 2, N: 25, P1: 1, P2: 1},
	PLL2: PLL{Source: HSI, M: 8, N: 125, P1: 1, P2: 1},
	PLL3: PLL{Source: HSI, M: 8, N: 225, P1: 1, P2: 2},
	PLL4: PLL{Source: HSE, M: 8, N: 200, P1: 2, P2: 1},
}

// Validate checks the plan gives the display the reference its clock
// dividers were computed for.
func (c ClockPlan) Validate() error {
	for _, p := range []PLL{c.PLL1, c.PLL2, c.PLL3, c.PLL4} {
		if p.M <= 0 || p.N <= 0 || p.P1 <= 0 || p.P2 <= 0 {
			return fmt.Errorf("invalid PLL %+v", p)
		}
	}
	if got := c.PLL4.OutputHz(); got != timing.IC16SourceHz {
		return fmt.Errorf("display reference is %dHz, want %dHz", got, timing.IC16SourceHz)
	}
	return nil
}
