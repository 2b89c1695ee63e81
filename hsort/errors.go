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

import "errors"

var (
	// ErrAllocation is returned, wrapped, when a segment or merge buffer
	// cannot be allocated within the engine's memory budget. The caller's
	// slice is left unmodified.
	ErrAllocation = errors.New("hsort: allocation failed")

	// ErrInvalidSize is returned by SortN when size is negative or larger
	// than the slice.
	ErrInvalidSize = errors.New("hsort: invalid size")
)
