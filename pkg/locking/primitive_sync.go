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
	"sync"
)

// DeadlockEnabled is true if the wait-based deadlock detector is enabled.
const DeadlockEnabled = false

// The underlying blocking primitives. Standard library locks by default;
// the "deadlock" build tag swaps in go-deadlock equivalents.
type (
	innerMutex   = sync.Mutex
	innerRWMutex = sync.RWMutex
)
