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

package sort

import "unsafe"

// RadixSort sorts data in place using LSD radix sort, one byte per pass.
// scratch must hold at least len(data) elements; a shorter (or nil) scratch
// is replaced by a fresh allocation.
func RadixSort[T Integer](data, scratch []T) {
	n := len(data)
	if n <= 1 {
		return
	}
	if len(scratch) < n {
		scratch = make([]T, n)
	}

	var zero T
	width := int(unsafe.Sizeof(zero))

	src, dst := data, scratch[:n]
	for b := range width {
		shift := b * 8
		var moved bool
		if b == width-1 {
			moved = radixPassSigned(src, dst, shift)
		} else {
			moved = radixPass(src, dst, shift)
		}
		if moved {
			src, dst = dst, src
		}
	}

	// An odd number of effective passes leaves the result in scratch.
	if &src[0] != &data[0] {
		copy(data, src)
	}
}

// digit extracts byte shift/8 of v. Works for negative values: the
// arithmetic shift keeps two's complement bits and the mask drops the rest.
func digit[T Integer](v T, shift int) int {
	return int(v>>shift) & 0xFF
}

// radixPass performs one pass of LSD radix sort on the byte at shift.
// It returns false, leaving dst untouched, when every element has the same
// digit and the pass would be the identity.
func radixPass[T Integer](src, dst []T, shift int) bool {
	var count [256]int
	for _, v := range src {
		count[digit(v, shift)]++
	}
	if count[digit(src[0], shift)] == len(src) {
		return false
	}

	// Compute prefix sum to get bucket offsets
	offset := 0
	for b := 0; b < 256; b++ {
		c := count[b]
		count[b] = offset
		offset += c
	}

	scatter(src, dst, shift, &count)
	return true
}

// radixPassSigned performs the final pass for signed integers.
// The MSB byte contains the sign bit, so negative numbers (128-255) come
// before positive (0-127).
func radixPassSigned[T Integer](src, dst []T, shift int) bool {
	var count [256]int
	for _, v := range src {
		count[digit(v, shift)]++
	}
	if count[digit(src[0], shift)] == len(src) {
		return false
	}

	offset := 0
	for b := 128; b < 256; b++ {
		c := count[b]
		count[b] = offset
		offset += c
	}
	for b := 0; b < 128; b++ {
		c := count[b]
		count[b] = offset
		offset += c
	}

	scatter(src, dst, shift, &count)
	return true
}

func scatter[T Integer](src, dst []T, shift int, offsets *[256]int) {
	for _, v := range src {
		d := digit(v, shift)
		dst[offsets[d]] = v
		offsets[d]++
	}
}
