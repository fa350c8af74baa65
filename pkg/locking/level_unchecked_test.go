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

//go:build !lockcheck
// +build !lockcheck

package locking

import (
	"testing"
	"unsafe"
)

func TestNoCheckingByDefault(t *testing.T) {
	a := NewMutex(5)  // level 0
	b := NewMutex(42) // also level 0

	// A hierarchy violation, but without the lockcheck tag nothing is
	// tracked and nothing panics.
	ga, _ := a.Lock()
	gb, _ := b.Lock()
	gb.Unlock()
	ga.Unlock()
}

func TestAscendingLevelsAllowed(t *testing.T) {
	a := NewMutex(struct{}{})
	b := NewMutexWithLevel(struct{}{}, 1)

	ga, _ := a.Lock()
	gb, _ := b.Lock()
	gb.Unlock()
	ga.Unlock()
}

func TestCheckDisabled(t *testing.T) {
	if CheckEnabled {
		t.Error("CheckEnabled: got true, wanted false without the lockcheck tag")
	}
}

func TestLevelCarriesNoState(t *testing.T) {
	if size := unsafe.Sizeof(NewLevel(7)); size != 0 {
		t.Errorf("Level size: got %d bytes, wanted 0", size)
	}
	if size := unsafe.Sizeof(LevelGuard{}); size != 0 {
		t.Errorf("LevelGuard size: got %d bytes, wanted 0", size)
	}
}
