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
	"fmt"
	"sync/atomic"
	"unsafe"
)

// Budget accounts the bytes held in engine buffers and refuses allocations
// that would exceed its limit. A Budget is safe for concurrent use.
type Budget struct {
	limit int64
	used  atomic.Int64
	peak  atomic.Int64
}

// NewBudget returns a budget of limit bytes. Zero or negative is unlimited.
func NewBudget(limit int64) *Budget {
	return &Budget{limit: limit}
}

// Limit returns the configured limit in bytes, or zero if unlimited.
func (b *Budget) Limit() int64 {
	if b.limit <= 0 {
		return 0
	}
	return b.limit
}

// Used returns the bytes currently reserved.
func (b *Budget) Used() int64 {
	return b.used.Load()
}

// Peak returns the largest number of bytes reserved at any one time.
func (b *Budget) Peak() int64 {
	return b.peak.Load()
}

func (b *Budget) reserve(bytes int64) error {
	used := b.used.Add(bytes)
	if b.limit > 0 && used > b.limit {
		b.used.Add(-bytes)
		return fmt.Errorf("%w: %d bytes requested, %d of %d in use",
			ErrAllocation, bytes, used-bytes, b.limit)
	}
	for {
		peak := b.peak.Load()
		if used <= peak || b.peak.CompareAndSwap(peak, used) {
			return nil
		}
	}
}

func (b *Budget) release(bytes int64) {
	b.used.Add(-bytes)
}

func sizeOf[T Integer](n int) int64 {
	var zero T
	return int64(n) * int64(unsafe.Sizeof(zero))
}

// allocate returns a buffer of n elements charged to b.
func allocate[T Integer](b *Budget, n int) ([]T, error) {
	bytes := sizeOf[T](n)
	if err := b.reserve(bytes); err != nil {
		return nil, err
	}
	buf, err := makeBuffer[T](n)
	if err != nil {
		b.release(bytes)
		return nil, err
	}
	return buf, nil
}

// free returns the bytes of buf to b. buf must not be used afterwards.
func free[T Integer](b *Budget, buf []T) {
	if buf != nil {
		b.release(sizeOf[T](len(buf)))
	}
}

// makeBuffer converts the runtime's makeslice panic into ErrAllocation.
func makeBuffer[T Integer](n int) (buf []T, err error) {
	defer func() {
		if r := recover(); r != nil {
			buf, err = nil, fmt.Errorf("%w: %d elements: %v", ErrAllocation, n, r)
		}
	}()
	return make([]T, n), nil
}
