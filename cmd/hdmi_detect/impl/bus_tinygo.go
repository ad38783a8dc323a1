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

//go:build tinygo
// +build tinygo

package impl

import (
	"machine"

	"github.com/n6preview/firmware/bus"
	"github.com/n6preview/firmware/bus/tinygoi2c"
)

func init() {
	register("tinygo", func() bus.Bus {
		b := tinygoi2c.New(machine.I2C0)
		b.Configure = func() error {
			return machine.I2C0.Configure(machine.I2CConfig{Frequency: 100 * machine.KHz})
		}
		return b
	})
}
