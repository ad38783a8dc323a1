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

// Package simclock provides a backoff.Timer which fires immediately and
// accounts for the simulated time instead of sleeping.
package simclock

import (
	"sync"
	"time"

	"github.com/cenkalti/backoff/v4"
)

// Timer fires as soon as it is started, advancing a virtual clock by the
// requested duration.
type Timer struct {
	mu      sync.Mutex
	c       chan time.Time
	now     time.Time
	waits   []time.Duration
	elapsed time.Duration
}

var _ backoff.Timer = &Timer{}

// New returns a timer whose virtual clock starts at the zero time.
func New() *Timer {
	return &Timer{c: make(chan time.Time, 1)}
}

// Start implements backoff.Timer.
func (t *Timer) Start(d time.Duration) {
	t.mu.Lock()
	t.waits = append(t.waits, d)
	t.elapsed += d
	t.now = t.now.Add(d)
	now := t.now
	t.mu.Unlock()
	select {
	case t.c <- now:
	default:
	}
}

// Stop implements backoff.Timer.
func (t *Timer) Stop() {
	select {
	case <-t.c:
	default:
	}
}

// C implements backoff.Timer.
func (t *Timer) C() <-chan time.Time {
	return t.c
}

// Waits returns every duration the timer has been started with.
func (t *Timer) Waits() []time.Duration {
	t.mu.Lock()
	defer t.mu.Unlock()
	return append([]time.Duration(nil), t.waits...)
}

// Elapsed returns the total simulated time.
func (t *Timer) Elapsed() time.Duration {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.elapsed
}
