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
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/ajroetker/go-hypersort/hsort/contrib/sort"
)

func TestNoParallelEnv(t *testing.T) {
	tests := []struct {
		value string
		want  bool
	}{
		{"", false},
		{"1", true},
		{"true", true},
		{"false", false},
		{"0", false},
		{"yes", true},
	}
	for _, tt := range tests {
		t.Setenv(EnvNoParallel, tt.value)
		if got := NoParallelEnv(); got != tt.want {
			t.Errorf("NoParallelEnv() with %q = %v, want %v", tt.value, got, tt.want)
		}
	}
}

func TestConfigFromEnv(t *testing.T) {
	t.Setenv(EnvNoParallel, "1")
	t.Setenv(EnvLocalSort, "radix")
	t.Setenv(EnvMemoryLimit, "4096")

	c := newConfig(nil)
	assert.True(t, c.noParallel)
	assert.Equal(t, sort.StrategyRadix, c.localSort)
	assert.EqualValues(t, 4096, c.budget.Limit())

	e := New[int64](8)
	defer e.Close()
	assert.Equal(t, 8, e.Workers())
	assert.Equal(t, 1, e.pool.NumWorkers())
	assert.Equal(t, sort.StrategyRadix, e.LocalSort())
	assert.EqualValues(t, 4096, e.Budget().Limit())
}

func TestOptionsOverrideEnv(t *testing.T) {
	t.Setenv(EnvLocalSort, "radix")
	t.Setenv(EnvMemoryLimit, "4096")

	shared := NewBudget(1 << 20)
	c := newConfig([]Option{
		WithLocalSort(sort.StrategyStd),
		WithBudget(shared),
		WithSequential(true),
	})
	assert.Equal(t, sort.StrategyStd, c.localSort)
	assert.Same(t, shared, c.budget)
	assert.True(t, c.noParallel)
}

func TestConfigInvalidEnvLogged(t *testing.T) {
	t.Setenv(EnvLocalSort, "bogo")
	t.Setenv(EnvMemoryLimit, "lots")

	core, logs := observer.New(zapcore.WarnLevel)
	c := newConfig([]Option{WithLogger(zap.New(core))})

	assert.Equal(t, sort.StrategyIntrosort, c.localSort)
	assert.Zero(t, c.budget.Limit())
	if assert.Equal(t, 1, logs.Len()) {
		fields := logs.All()[0].ContextMap()
		assert.Contains(t, fields, EnvLocalSort)
		assert.Contains(t, fields, EnvMemoryLimit)
	}
}
