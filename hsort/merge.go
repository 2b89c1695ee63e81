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

// Merge merges the ascending runs first and second into dst, which must have
// length len(first)+len(second) and must not overlap either run.
//
// The head of first is taken only when it is strictly less than the head of
// second; on ties the element comes from second.
func Merge[T Integer](dst, first, second []T) {
	i, j, k := 0, 0, 0
	for i < len(first) && j < len(second) {
		if first[i] < second[j] {
			dst[k] = first[i]
			i++
		} else {
			dst[k] = second[j]
			j++
		}
		k++
	}
	k += copy(dst[k:], first[i:])
	copy(dst[k:], second[j:])
}
