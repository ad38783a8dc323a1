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

import "testing"

func TestDefaultClockPlan(t *testing.T) {
	for _, test := range []struct {
		name string
		pll  PLL
		want uint64
	}{
		{name: "pll1", pll: DefaultClockPlan.PLL1, want: 800_000_000},
		{name: "pll2", pll: DefaultClockPlan.PLL2, want: 1_000_000_000},
		{name: "pll3", pll: DefaultClockPlan.PLL3, want: 900_000_000},
		{name: "pll4", pll: DefaultClockPlan.PLL4, want: 600_000_000},
	} {
		t.Run(test.name, func(t *testing.T) {
			if got := test.pll.OutputHz(); got != test.want {
				t.Errorf("%v: OutputHz = %d, want %d", test.pll, got, test.want)
			}
		})
	}
	if err := DefaultClockPlan.Validate(); err != nil {
		t.Errorf("Validate: %v", err)
	}
}

func TestClockPlanValidate(t *testing.T) {
	p := DefaultClockPlan
	p.PLL4.N = 150
	if err := p.Validate(); err == nil {
		t.Error("Validate accepted a 450MHz display reference")
	}
	p = DefaultClockPlan
	p.PLL2.M = 0
	if err := p.Validate(); err == nil {
		t.Error("Validate accepted a zero divider")
	}
}

func TestSecureAttributes(t *testing.T) {
	var masters, periphs int
	for _, a := range SecureAttributes {
		if !a.Secure || !a.Privileged {
			t.Errorf("%v is not secure and privileged", a)
		}
		switch a.Kind {
		case RIFMaster:
			masters++
			if a.CID != 1 {
				t.Errorf("%v: CID %d, want 1", a, a.CID)
			}
		case RIFPeripheral:
			periphs++
		}
	}
	if masters != 4 || periphs != 6 {
		t.Errorf("got %d masters and %d peripherals, want 4 and 6", masters, periphs)
	}
}
