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

// CheckEnabled is true if hierarchy checking is enabled.
const CheckEnabled = false

// Level is a lock's position in the lock hierarchy. Without the
// "lockcheck" build tag it carries no state and all its methods are
// no-ops.
type Level struct{}

// NewLevel returns a Level with the given position in the hierarchy.
func NewLevel(level uint32) Level {
	_ = level
	return Level{}
}

// Acquire validates and records the level in checked builds. It is a
// no-op here.
func (Level) Acquire() LevelGuard {
	return LevelGuard{}
}

// LevelGuard undoes the record made by the matching Level.Acquire call.
type LevelGuard struct{}

// Release is a no-op without the "lockcheck" build tag.
func (LevelGuard) Release() {}
