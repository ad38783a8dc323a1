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

// hdmi_detect checks for the HDMI encoder on an I2C bus and optionally runs
// its initialisation sequence.
//
// Usage:
//
//	go run ./cmd/hdmi_detect --logtostderr --bus=periph --i2c_bus=/dev/i2c-1 --init
package main

import (
	"context"
	"flag"
	"fmt"

	"github.com/golang/glog"
	"github.com/n6preview/firmware/cmd/hdmi_detect/impl"
)

var (
	busName = flag.String("bus", "periph", fmt.Sprintf("Bus driver, one of %v", impl.Buses()))
	i2cBus  = flag.String("i2c_bus", "", "Name of the I2C bus for the periph driver, empty picks the first one")
	profile = flag.String("profile", "", "Board profile for the sim driver, uses the built in profile if unset")
	doInit  = flag.Bool("init", false, "Initialise the encoder after detecting it")
)

func main() {
	flag.Parse()

	state, err := impl.Main(context.Background(), impl.DetectOpts{
		Bus:         *busName,
		I2CBus:      *i2cBus,
		ProfilePath: *profile,
		Init:        *doInit,
	})
	if err != nil {
		glog.Exit(err.Error())
	}
	fmt.Printf("%+v\n", state)
}
