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
	"errors"
	"fmt"
)

var (
	// ErrNotPresent indicates that no supported encoder answered on the bus.
	// This is an expected outcome on boards without the encoder fitted.
	ErrNotPresent = errors.New("adv7513: encoder not present")

	// ErrFatal is matched by every error returned from Init. The encoder is
	// left in an unknown state and the caller should halt.
	ErrFatal = errors.New("adv7513: bring-up failed")

	// ErrIdentityMismatch indicates the chip revision register did not hold
	// ChipRevision.
	ErrIdentityMismatch = errors.New("unexpected chip revision")

	// ErrInvalidUpdate is returned by Apply for an update whose value has
	// bits set outside its mask.
	ErrInvalidUpdate = errors.New("adv7513: value outside mask")
)

// Step identifies a stage of the initialisation sequence.
type Step int

const (
	// StepVerifyIdentity reads the chip revision register.
	StepVerifyIdentity Step = iota + 1
	// StepAwaitCable polls the hot plug detect bit.
	StepAwaitCable
	// StepSettle waits for the encoder to settle after the cable appears.
	StepSettle
	// StepPowerUp clears the power down bit.
	StepPowerUp
	// StepFixedRegisters writes the registers that must hold fixed values.
	StepFixedRegisters
	// StepInputFormat configures the RGB input side.
	StepInputFormat
	// StepOutputFormat configures the HDMI output side.
	StepOutputFormat
)

func (s Step) String() string {
	switch s {
	case StepVerifyIdentity:
		return "verify identity"
	case StepAwaitCable:
		return "await cable"
	case StepSettle:
		return "settle"
	case StepPowerUp:
		return "power up"
	case StepFixedRegisters:
		return "fixed registers"
	case StepInputFormat:
		return "input format"
	case StepOutputFormat:
		return "output format"
	}
	return fmt.Sprintf("Step(%d)", int(s))
}

// FatalError reports the step at which initialisation failed.
type FatalError struct {
	Step Step
	Err  error
}

func (e *FatalError) Error() string {
	return fmt.Sprintf("adv7513: %v: %v", e.Step, e.Err)
}

func (e *FatalError) Unwrap() error {
	return e.Err
}

// Is makes every FatalError match ErrFatal.
func (e *FatalError) Is(target error) bool {
	return target == ErrFatal
}

func fatal(s Step, err error) error {
	return &FatalError{Step: s, Err: err}
}
