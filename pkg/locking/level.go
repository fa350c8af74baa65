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

//go:build lockcheck
// +build lockcheck

package locking

import (
	"fmt"

	"github.com/petermattis/goid"
	"github.com/puzpuzpuz/xsync/v3"
)

// CheckEnabled is true if hierarchy checking is enabled.
const CheckEnabled = true

// heldStack records the levels currently held by one goroutine, most
// recent last. Pushes are strictly decreasing, so the slice is always
// sorted in descending order and its last element is the minimum held
// level. Removing an element anywhere preserves that order, which keeps
// the invariant intact even when locks are released out of acquisition
// order.
type heldStack struct {
	levels []uint32
}

// held maps goroutine ids to their stacks. Only the owning goroutine
// reads or writes its own stack; the map itself handles the concurrent
// insertion and deletion of entries. An entry is created on a goroutine's
// first acquisition and deleted again when its stack empties, so a
// goroutine that holds no locks costs nothing.
var held = xsync.NewMapOf[int64, *heldStack]()

// Level is a lock's position in the lock hierarchy. Locks with higher
// levels must be acquired before locks with lower levels if they are to
// be held simultaneously. The zero value is level 0.
//
// Level is the building block underneath Mutex and RWMutex. It can also
// be used on its own to add hierarchy checking to any other blocking
// primitive: call Acquire before blocking and Release on the returned
// guard when the primitive is released.
type Level struct {
	level uint32
}

// NewLevel returns a Level with the given position in the hierarchy.
func NewLevel(level uint32) Level {
	return Level{level: level}
}

// Acquire validates the level against the calling goroutine's currently
// held levels and records it. It panics if a lock with an equal or lower
// level is already held.
//
// Acquire must be called before the underlying primitive blocks. That way
// a second acquisition of the same lock on one goroutine panics instead
// of deadlocking silently.
func (l Level) Acquire() LevelGuard {
	gid := goid.Get()
	st, _ := held.LoadOrCompute(gid, func() *heldStack { return &heldStack{} })
	if n := len(st.levels); n > 0 {
		if lowest := st.levels[n-1]; lowest <= l.level {
			panic(fmt.Sprintf("lock hierarchy violation: tried to acquire a lock with level %d while already holding a lock with level %d; levels of simultaneously held locks must be strictly decreasing", l.level, lowest))
		}
	}
	st.levels = append(st.levels, l.level)
	return LevelGuard{gid: gid, level: l.level}
}

// LevelGuard undoes the record made by the matching Level.Acquire call.
type LevelGuard struct {
	gid   int64
	level uint32
}

// Release removes the held-level entry recorded by the Acquire that
// produced this guard. It must run on the goroutine that acquired; a
// guard cannot be handed to another goroutine for release.
func (g LevelGuard) Release() {
	gid := goid.Get()
	if gid != g.gid {
		panic(fmt.Sprintf("lock with level %d acquired on goroutine %d but released on goroutine %d", g.level, g.gid, gid))
	}
	st, ok := held.Load(gid)
	if !ok {
		panic(fmt.Sprintf("released a lock with level %d on a goroutine that holds no locks", g.level))
	}
	// Remove the most recent entry equal to our level. It must exist,
	// because Acquire inserted it.
	i := len(st.levels) - 1
	for i >= 0 && st.levels[i] != g.level {
		i--
	}
	if i < 0 {
		panic(fmt.Sprintf("released a lock with level %d that is not recorded as held", g.level))
	}
	st.levels = append(st.levels[:i], st.levels[i+1:]...)
	if len(st.levels) == 0 {
		held.Delete(gid)
	}
}
