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

// RWMutex is a reader/writer lock that owns the value it protects and has
// an assigned level in the lock hierarchy. Shared and exclusive
// acquisitions are each validated against the calling goroutine's held
// levels, exactly like Mutex. Multiple goroutines may hold read guards on
// the same instance concurrently; each acquisition only consults its own
// goroutine's state, so readers never contend on the bookkeeping.
//
// The zero value is an unlocked RWMutex protecting the zero value of T
// at level 0. An RWMutex must not be copied after first use.
type RWMutex[T any] struct {
	mu     innerRWMutex
	level  Level
	poison poison
	data   T
}

// NewRWMutex creates an RWMutex with level 0.
func NewRWMutex[T any](data T) *RWMutex[T] {
	return NewRWMutexWithLevel(data, 0)
}

// NewRWMutexWithLevel creates an RWMutex and assigns it a level in the
// lock hierarchy.
func NewRWMutexWithLevel[T any](data T, level uint32) *RWMutex[T] {
	return &RWMutex[T]{level: NewLevel(level), data: data}
}

// RLock blocks until a shared lock is obtainable and returns a guard
// granting read access to the protected value. The level is validated and
// recorded before the underlying lock is taken, so acquiring the same
// RWMutex again on one goroutine panics instead of risking an unchecked
// deadlock against a blocked writer.
//
// If a previous holder panicked while holding the exclusive lock, the
// guard is returned together with ErrPoisoned.
func (m *RWMutex[T]) RLock() (*ReadGuard[T], error) {
	level := m.level.Acquire()
	m.mu.RLock()
	return &ReadGuard[T]{m: m, level: level}, m.poison.check()
}

// Lock blocks until the exclusive lock is obtainable and returns a guard
// granting write access to the protected value. Validation is the same as
// for RLock.
func (m *RWMutex[T]) Lock() (*WriteGuard[T], error) {
	level := m.level.Acquire()
	m.mu.Lock()
	return &WriteGuard[T]{m: m, level: level}, m.poison.check()
}

// RDo acquires a shared lock, runs f with the protected value and
// releases again on every exit path. f must not modify the value. A panic
// in f does not poison the lock; only a panicking writer does.
func (m *RWMutex[T]) RDo(f func(data *T)) error {
	g, err := m.RLock()
	defer g.Unlock()
	f(&m.data)
	return err
}

// Do acquires the exclusive lock, runs f with the protected value and
// releases again on every exit path. If f panics, the lock is poisoned
// before it is released and the panic resumes.
func (m *RWMutex[T]) Do(f func(data *T)) error {
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
// goroutine can access the RWMutex for the duration of the returned
// pointer's use.
func (m *RWMutex[T]) GetMut() *T {
	return &m.data
}

// ClearPoison removes the poison state, after the caller has restored the
// protected value to a consistent state.
func (m *RWMutex[T]) ClearPoison() {
	m.poison.clear()
}

// ReadGuard grants shared access to an RWMutex's protected value until
// Unlock is called.
type ReadGuard[T any] struct {
	m     *RWMutex[T]
	level LevelGuard
}

// Get returns the protected value. The pointer is valid until Unlock and
// must not be used to modify the value.
func (g *ReadGuard[T]) Get() *T {
	return &g.m.data
}

// Unlock removes the held-level entry recorded at acquisition and then
// releases the underlying shared lock.
func (g *ReadGuard[T]) Unlock() {
	g.level.Release()
	g.m.mu.RUnlock()
}

// String formats the protected value.
func (g *ReadGuard[T]) String() string {
	return fmt.Sprint(g.m.data)
}

// WriteGuard grants exclusive access to an RWMutex's protected value
// until Unlock is called.
type WriteGuard[T any] struct {
	m     *RWMutex[T]
	level LevelGuard
}

// Get returns the protected value. The pointer is valid until Unlock.
func (g *WriteGuard[T]) Get() *T {
	return &g.m.data
}

// Unlock removes the held-level entry recorded at acquisition and then
// releases the underlying exclusive lock.
func (g *WriteGuard[T]) Unlock() {
	g.level.Release()
	g.m.mu.Unlock()
}

// String formats the protected value.
func (g *WriteGuard[T]) String() string {
	return fmt.Sprint(g.m.data)
}
