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

package periphi2c

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"periph.io/x/conn/v3/i2c"
	"periph.io/x/conn/v3/i2c/i2ctest"
)

func TestReadWrite(t *testing.T) {
	pb := &i2ctest.Playback{
		Ops: []i2ctest.IO{
			{Addr: 0x3d, W: []byte{0x00}, R: []byte{0x13}},
			{Addr: 0x3d, W: []byte{0x41, 0x10}},
		},
	}
	b := NewWithOpener("test", func(string) (i2c.BusCloser, error) {
		return pb, nil
	})
	if err := b.ReadReg(0x7a, 0, make([]byte, 1)); err == nil {
		t.Fatal("ReadReg before Open succeeded")
	}
	if err := b.Open(); err != nil {
		t.Fatalf("Open: %v", err)
	}
	got := make([]byte, 1)
	if err := b.ReadReg(0x7a, 0x00, got); err != nil {
		t.Fatalf("ReadReg: %v", err)
	}
	if diff := cmp.Diff([]byte{0x13}, got); diff != "" {
		t.Errorf("ReadReg diff (-want +got):\n%s", diff)
	}
	if err := b.WriteReg(0x7a, 0x41, []byte{0x10}); err != nil {
		t.Fatalf("WriteReg: %v", err)
	}
	// Playback.Close reports unconsumed operations.
	if err := b.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
}
