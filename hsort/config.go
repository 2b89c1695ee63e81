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
	"os"
	"strconv"

	"go.uber.org/zap"

	"github.com/ajroetker/go-hypersort/hsort/contrib/sort"
)

// Environment variables read by New. Options passed to New take precedence.
const (
	// EnvNoParallel forces a single pool worker when set to a true value.
	// The hypercube levels still run with the normalized segment count.
	EnvNoParallel = "HSORT_NO_PARALLEL"

	// EnvLocalSort names the per-segment sort: introsort, radix or std.
	EnvLocalSort = "HSORT_LOCAL_SORT"

	// EnvMemoryLimit caps the bytes an engine may hold in segment buffers.
	EnvMemoryLimit = "HSORT_MEMORY_LIMIT"
)

type config struct {
	logger      *zap.Logger
	localSort   sort.Strategy
	memoryLimit int64
	budget      *Budget
	noParallel  bool
}

// Option configures an Engine.
type Option func(*config)

// WithLogger sets the logger used for normalization diagnostics and
// per-level debug output. The default is zap.L().
func WithLogger(logger *zap.Logger) Option {
	return func(c *config) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithLocalSort selects the algorithm used to sort each segment.
func WithLocalSort(s sort.Strategy) Option {
	return func(c *config) {
		c.localSort = s
	}
}

// WithMemoryLimit caps the number of bytes the engine may hold in segment,
// merge and scratch buffers at any time. Zero or negative means unlimited.
func WithMemoryLimit(bytes int64) Option {
	return func(c *config) {
		c.memoryLimit = bytes
	}
}

// WithBudget makes the engine account its buffers against b, which may be
// shared between engines. It overrides WithMemoryLimit.
func WithBudget(b *Budget) Option {
	return func(c *config) {
		c.budget = b
	}
}

// WithSequential runs every parallel phase on a single pool worker.
func WithSequential(sequential bool) Option {
	return func(c *config) {
		c.noParallel = sequential
	}
}

// NoParallelEnv checks if the HSORT_NO_PARALLEL environment variable is set.
// Any non-empty value is true unless it parses as a false boolean.
func NoParallelEnv() bool {
	val := os.Getenv(EnvNoParallel)
	if val == "" {
		return false
	}
	if b, err := strconv.ParseBool(val); err == nil {
		return b
	}
	return true
}

// newConfig builds the defaults from the environment and applies opts.
func newConfig(opts []Option) config {
	c := config{
		logger:     zap.L(),
		noParallel: NoParallelEnv(),
	}

	var envErrs []zap.Field
	if val := os.Getenv(EnvLocalSort); val != "" {
		s, err := sort.ParseStrategy(val)
		if err != nil {
			envErrs = append(envErrs, zap.NamedError(EnvLocalSort, err))
		}
		c.localSort = s
	}
	if val := os.Getenv(EnvMemoryLimit); val != "" {
		limit, err := strconv.ParseInt(val, 10, 64)
		if err != nil {
			envErrs = append(envErrs, zap.NamedError(EnvMemoryLimit, err))
		} else {
			c.memoryLimit = limit
		}
	}

	for _, opt := range opts {
		opt(&c)
	}

	if c.budget == nil {
		c.budget = NewBudget(c.memoryLimit)
	}
	if len(envErrs) > 0 {
		c.logger.Warn("ignoring invalid environment settings", envErrs...)
	}
	return c
}
