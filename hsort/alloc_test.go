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
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBudgetLimit(t *testing.T) {
	b := NewBudget(64)

	buf, err := allocate[int64](b, 6)
	require.NoError(t, err)
	assert.Len(t, buf, 6)
	assert.EqualValues(t, 48, b.Used())

	_, err = allocate[int64](b, 3)
	require.ErrorIs(t, err, ErrAllocation)
	assert.EqualValues(t, 48, b.Used(), "failed reservation must be rolled back")

	small, err := allocate[int32](b, 4)
	require.NoError(t, err)
	assert.EqualValues(t, 64, b.Used())

	free(b, buf)
	free(b, small)
	free[int64](b, nil)
	assert.Zero(t, b.Used())
	assert.EqualValues(t, 64, b.Peak())
	assert.EqualValues(t, 64, b.Limit())
}

func TestBudgetUnlimited(t *testing.T) {
	b := NewBudget(0)
	assert.Zero(t, b.Limit())

	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 100 {
				buf, err := allocate[int64](b, 128)
				if err != nil {
					t.Error(err)
					return
				}
				free(b, buf)
			}
		}()
	}
	wg.Wait()
	assert.Zero(t, b.Used())
	assert.LessOrEqual(t, b.Peak(), int64(8*128*8))
}

func TestMakeBufferRecoversPanic(t *testing.T) {
	_, err := makeBuffer[int64](-1)
	require.ErrorIs(t, err, ErrAllocation)

	buf, err := makeBuffer[int64](3)
	require.NoError(t, err)
	assert.Len(t, buf, 3)
}
