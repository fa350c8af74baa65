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
	"testing"
)

func TestOnceAliases(t *testing.T) {
	var once Once
	calls := 0
	for i := 0; i < 3; i++ {
		once.Do(func() { calls++ })
	}
	if calls != 1 {
		t.Errorf("Once.Do calls: got %d, wanted 1", calls)
	}

	f := OnceFunc(func() { calls++ })
	f()
	f()
	if calls != 2 {
		t.Errorf("OnceFunc calls: got %d, wanted 2", calls)
	}

	next := 0
	value := OnceValue(func() int {
		next++
		return next
	})
	if got := value(); got != 1 {
		t.Errorf("OnceValue: got %d, wanted 1", got)
	}
	if got := value(); got != 1 {
		t.Errorf("OnceValue second call: got %d, wanted 1", got)
	}
}

func TestCondAlias(t *testing.T) {
	l := new(innerMutex)
	c := NewCond(l)
	ready := false
	go func() {
		l.Lock()
		ready = true
		c.Signal()
		l.Unlock()
	}()
	l.Lock()
	for !ready {
		c.Wait()
	}
	l.Unlock()
}

func TestPoolAlias(t *testing.T) {
	p := Pool{New: func() any { return new(int) }}
	v := p.Get().(*int)
	*v = 42
	p.Put(v)
	if got := p.Get().(*int); *got != 42 && *got != 0 {
		t.Errorf("Pool.Get: got %d, wanted 42 or a fresh 0", *got)
	}
}

func TestMapAlias(t *testing.T) {
	var m Map
	m.Store("answer", 42)
	v, ok := m.Load("answer")
	if !ok || v.(int) != 42 {
		t.Errorf("Map.Load: got %v, %t, wanted 42, true", v, ok)
	}
	var l Locker = new(innerMutex)
	l.Lock()
	l.Unlock()
}
