// Copyright 2025 go-hypersort Authors
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

package hsort

import (
	"github.com/samber/lo"
	"golang.org/x/sys/cpu"

	"github.com/ajroetker/go-hypersort/hsort/contrib/sort"
)

// Integer is the set of element types the engine sorts.
type Integer = sort.Integer

// slot owns one segment buffer. Slots are written by different workers in
// the same phase, so each is padded to its own cache line.
type slot[T Integer] struct {
	buf []T
	_   cpu.CacheLinePad
}

// table maps segment index to the buffer currently owning that index.
//
// There is no lock. Within a phase a worker touches only the indices it was
// handed, and phases are separated by pool barriers. A buffer leaves the
// table through take and is handed back to the budget exactly once, through
// free or releaseAll.
type table[T Integer] struct {
	slots  []slot[T]
	budget *Budget
}

func newTable[T Integer](p int, budget *Budget) *table[T] {
	return &table[T]{
		slots:  make([]slot[T], p),
		budget: budget,
	}
}

func (t *table[T]) len() int {
	return len(t.slots)
}

// get returns the buffer at i. The table keeps ownership.
func (t *table[T]) get(i int) []T {
	return t.slots[i].buf
}

// install stores buf at i. The slot must be empty.
func (t *table[T]) install(i int, buf []T) {
	if t.slots[i].buf != nil {
		panic("hsort: install over a live segment")
	}
	t.slots[i].buf = buf
}

// take removes and returns the buffer at i; the caller now owns it.
func (t *table[T]) take(i int) []T {
	buf := t.slots[i].buf
	t.slots[i].buf = nil
	return buf
}

// free returns a buffer the caller owns to the budget.
func (t *table[T]) free(buf []T) {
	free(t.budget, buf)
}

// sizes returns the length of every segment in index order.
func (t *table[T]) sizes() []int {
	return lo.Map(t.slots, func(s slot[T], _ int) int {
		return len(s.buf)
	})
}

// releaseAll frees every buffer still in the table.
func (t *table[T]) releaseAll() {
	for i := range t.slots {
		t.free(t.take(i))
	}
}
