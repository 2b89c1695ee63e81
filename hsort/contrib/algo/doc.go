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

// Package algo provides the small slice algorithms the sort engine builds on:
// prefix sums for turning segment sizes into gather offsets, and ordered
// searches for locating split points inside sorted segments.
//
// # Example Usage
//
//	import "github.com/ajroetker/go-hypersort/hsort/contrib/algo"
//
//	sizes := []int{3, 0, 5, 2}
//	offsets, total := algo.ExclusivePrefixSum(sizes)
//	// offsets = [0, 3, 3, 8], total = 10
//
//	split := algo.UpperBound([]int64{1, 2, 2, 5}, 2)
//	// split = 3
package algo
