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

package locking

import (
	"errors"
	"sync/atomic"
)

// ErrPoisoned is returned by acquisition methods when a previous holder
// panicked while holding the lock. The guard is still returned alongside
// the error: bookkeeping stays consistent either way and the caller
// decides whether to use the possibly inconsistent value or escalate.
// There is deliberately no acquisition path that skips the hierarchy
// check or the held-level bookkeeping on a poisoned lock.
var ErrPoisoned = errors.New("lock poisoned: a previous holder panicked while holding it")

// poison is the poison flag shared by Mutex and RWMutex. It is set when a
// closure-scoped holder panics and stays set until explicitly cleared.
type poison struct {
	flag atomic.Bool
}

func (p *poison) set() {
	p.flag.Store(true)
}

func (p *poison) clear() {
	p.flag.Store(false)
}

// check returns ErrPoisoned if the flag is set, nil otherwise.
func (p *poison) check() error {
	if p.flag.Load() {
		return ErrPoisoned
	}
	return nil
}
