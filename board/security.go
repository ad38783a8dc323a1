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

import "fmt"

// RIFKind tells bus masters from peripherals.
type RIFKind int

const (
	// RIFMaster is the bus master side of an IP such as the DCMIPP.
	RIFMaster RIFKind = iota
	// RIFPeripheral is the register interface of an IP such as the CSI.
	RIFPeripheral
)

// RIFAttribute is the isolation setting of one master or peripheral.
type RIFAttribute struct {
	Kind       RIFKind
	Name       string
	CID        int
	Secure     bool
	Privileged bool
}

func (a RIFAttribute) String() string {
	k := "periph"
	if a.Kind == RIFMaster {
		k = fmt.Sprintf("master cid%d", a.CID)
	}
	return fmt.Sprintf("%s %s sec=%t priv=%t", k, a.Name, a.Secure, a.Privileged)
}

func master(name string) RIFAttribute {
	return RIFAttribute{Kind: RIFMaster, Name: name, CID: 1, Secure: true, Privileged: true}
}

func peripheral(name string) RIFAttribute {
	return RIFAttribute{Kind: RIFPeripheral, Name: name, Secure: true, Privileged: true}
}

// SecureAttributes makes every IP taking part in the preview secure and
// privileged.
var SecureAttributes = []RIFAttribute{
	master("DMA2D"),
	master("DCMIPP"),
	master("LTDC1"),
	master("LTDC2"),
	peripheral("DMA2D"),
	peripheral("CSI"),
	peripheral("DCMIPP"),
	peripheral("LTDC"),
	peripheral("LTDCL1"),
	peripheral("LTDCL2"),
}
