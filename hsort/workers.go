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
	"math/bits"
)

// DiagnosticKind classifies how a requested worker count was adjusted.
type DiagnosticKind int

const (
	// DiagnosticNone means the requested count was used as is.
	DiagnosticNone DiagnosticKind = iota

	// InvalidWorkerCount means fewer than one worker was requested; one is used.
	InvalidWorkerCount

	// NonPowerOfTwoWorkerCount means the request was rounded down to a power of two.
	NonPowerOfTwoWorkerCount
)

// String returns a human-readable name for the diagnostic kind.
func (k DiagnosticKind) String() string {
	switch k {
	case DiagnosticNone:
		return "none"
	case InvalidWorkerCount:
		return "invalid_worker_count"
	case NonPowerOfTwoWorkerCount:
		return "non_power_of_two_worker_count"
	default:
		return "unknown"
	}
}

// Diagnostic describes a worker count normalization. It is advisory only.
type Diagnostic struct {
	Kind      DiagnosticKind
	Requested int
	Workers   int
}

// String renders the diagnostic the way it is logged.
func (d Diagnostic) String() string {
	switch d.Kind {
	case InvalidWorkerCount:
		return fmt.Sprintf("invalid worker count %d < 1, using %d", d.Requested, d.Workers)
	case NonPowerOfTwoWorkerCount:
		return fmt.Sprintf("worker count %d is not a power of two, using %d", d.Requested, d.Workers)
	default:
		return fmt.Sprintf("using %d workers", d.Workers)
	}
}

// NormalizeWorkers maps a requested worker count to the power of two the
// engine will use: counts below one become one, other counts are rounded
// down to the nearest power of two.
func NormalizeWorkers(requested int) (int, Diagnostic) {
	if requested < 1 {
		return 1, Diagnostic{Kind: InvalidWorkerCount, Requested: requested, Workers: 1}
	}
	p := 1 << (bits.Len(uint(requested)) - 1)
	if p != requested {
		return p, Diagnostic{Kind: NonPowerOfTwoWorkerCount, Requested: requested, Workers: p}
	}
	return p, Diagnostic{Kind: DiagnosticNone, Requested: requested, Workers: p}
}
