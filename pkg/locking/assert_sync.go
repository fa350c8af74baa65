// Copyright 2025 The lock-hierarchy-go Authors.
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

//go:build !deadlock
// +build !deadlock

package locking

import (
	"github.com/trailofbits/go-mutexasserts"
)

// AssertHeld panics if m is not locked. Functions that require their
// callers to hold a particular lock may use this to enforce the
// requirement directly. Note that the lock is not required to be held by
// any particular goroutine, just that some goroutine holds it.
func (m *Mutex[T]) AssertHeld() {
	mutexasserts.AssertMutexLocked(&m.mu)
}

// AssertHeld panics if m is not locked for writing.
func (m *RWMutex[T]) AssertHeld() {
	mutexasserts.AssertRWMutexLocked(&m.mu)
}

// AssertRHeld panics if m is not locked for reading. A lock held for
// writing also counts as held for reading.
func (m *RWMutex[T]) AssertRHeld() {
	mutexasserts.AssertRWMutexRLocked(&m.mu)
}
