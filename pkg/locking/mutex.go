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
	"fmt"
)

// Mutex is a mutual exclusion lock that owns the value it protects and
// has an assigned level in the lock hierarchy. Locks with higher levels
// must be acquired before locks with lower levels if they are to be held
// simultaneously; in checked builds any other order panics at the
// acquisition point.
//
// The zero value is an unlocked Mutex protecting the zero value of T at
// level 0. A Mutex must not be copied after first use.
type Mutex[T any] struct {
	mu     innerMutex
	level  Level
	poison poison
	data   T
}

// NewMutex creates a Mutex with level 0. Use this constructor if
// acquiring any other lock while holding this one should be reported as a
// violation.
func NewMutex[T any](data T) *Mutex[T] {
	return NewMutexWithLevel(data, 0)
}

// NewMutexWithLevel creates a Mutex and assigns it a level in the lock
// hierarchy.
func NewMutexWithLevel[T any](data T, level uint32) *Mutex[T] {
	return &Mutex[T]{level: NewLevel(level), data: data}
}

// Lock blocks until the lock is available and returns a guard granting
// exclusive access to the protected value. In checked builds the level is
// validated against the calling goroutine's held levels and recorded
// before the underlying lock is taken, so locking a Mutex twice on one
// goroutine panics instead of deadlocking.
//
// If a previous holder panicked while holding the lock, the guard is
// returned together with ErrPoisoned.
func (m *Mutex[T]) Lock() (*MutexGuard[T], error) {
	level := m.level.Acquire()
	m.mu.Lock()
	return &MutexGuard[T]{m: m, level: level}, m.poison.check()
}

// Do locks m, runs f with the protected value and unlocks again on every
// exit path. If f panics, the lock is poisoned before it is released and
// the panic resumes. The returned error is ErrPoisoned if the lock was
// already poisoned when Do acquired it.
func (m *Mutex[T]) Do(f func(data *T)) error {
	g, err := m.Lock()
	defer g.Unlock()
	completed := false
	defer func() {
		if !completed {
			m.poison.set()
		}
	}()
	f(&m.data)
	completed = true
	return err
}

// GetMut returns the protected value directly, bypassing both the lock
// and the hierarchy check. The caller must guarantee that no other
// goroutine can access the Mutex for the duration of the returned
// pointer's use, typically because the Mutex has not been shared yet or
// is about to be dropped.
func (m *Mutex[T]) GetMut() *T {
	return &m.data
}

// ClearPoison removes the poison state, after the caller has restored the
// protected value to a consistent state.
func (m *Mutex[T]) ClearPoison() {
	m.poison.clear()
}

// MutexGuard grants exclusive access to a Mutex's protected value until
// Unlock is called.
type MutexGuard[T any] struct {
	m     *Mutex[T]
	level LevelGuard
}

// Get returns the protected value. The pointer is valid until Unlock.
func (g *MutexGuard[T]) Get() *T {
	return &g.m.data
}

// Unlock removes the held-level entry recorded at acquisition and then
// releases the underlying lock.
func (g *MutexGuard[T]) Unlock() {
	g.level.Release()
	g.m.mu.Unlock()
}

// String formats the protected value.
func (g *MutexGuard[T]) String() string {
	return fmt.Sprint(g.m.data)
}
