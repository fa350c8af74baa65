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

// Package locking implements lock primitives with a lock hierarchy
// validator.
//
// Every lock is assigned a numeric level at construction. A goroutine may
// only acquire a lock whose level is strictly lower than the level of every
// lock it currently holds. Acquiring in any other order is a hierarchy
// violation and panics at the acquisition point. Violating the hierarchy
// does not itself deadlock, but it is a necessary precondition for the
// classic two-goroutines-two-locks deadlock, so surfacing it early during
// development catches the bug before it ever hangs.
//
// The validator is implemented in a very straightforward way. Each
// goroutine has a stack of the levels it currently holds, kept in a
// process-wide map keyed by goroutine id. Since pushes are strictly
// decreasing, the top of the stack is always the minimum held level, and
// every lock method only has to compare the candidate level against the
// top. Only the owning goroutine ever touches its own stack, so the stack
// itself needs no synchronization.
//
// Checking is enabled by the "lockcheck" build tag. Without it, levels are
// not stored, no per-goroutine state is maintained and all checks compile
// to nothing; the wrapped primitives run at native cost. The public API is
// identical in both modes.
//
// The "deadlock" build tag additionally swaps the wrapped primitives for
// github.com/sasha-s/go-deadlock equivalents, adding wait-based deadlock
// detection at runtime. The two tags are independent.
package locking
