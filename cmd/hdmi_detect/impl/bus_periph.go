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

//go:build !tinygo
// +build !tinygo

package impl

import (
	"github.com/n6preview/firmware/bus/periphi2c"
	"github.com/n6preview/firmware/encoder/adv7513"
)

// periph.io needs a host OS, so the driver is left out of tinygo builds.
func init() {
	buses["periph"] = func(opts DetectOpts) (*adv7513.Device, error) {
		return adv7513.New(periphi2c.New(opts.I2CBus)), nil
	}
}
