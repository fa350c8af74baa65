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

//go:build deadlock
// +build deadlock

package locking

// AssertHeld is a no-op in deadlock builds; go-deadlock's internal state
// is not inspectable.
func (m *Mutex[T]) AssertHeld() {}

// AssertHeld is a no-op in deadlock builds.
func (m *RWMutex[T]) AssertHeld() {}

// AssertRHeld is a no-op in deadlock builds.
func (m *RWMutex[T]) AssertRHeld() {}
