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

package main

import (
	"fmt"
	"io"
	"math/rand"
	"strings"
	"time"

	"github.com/samber/lo"
	"go.uber.org/zap"

	"github.com/ajroetker/go-hypersort/hsort"
	"github.com/ajroetker/go-hypersort/hsort/contrib/algo"
	"github.com/ajroetker/go-hypersort/hsort/contrib/sort"
)

// runDemo generates the array described by s, sorts it and reports to w.
func runDemo(w io.Writer, s settings) error {
	strategy, err := sort.ParseStrategy(s.LocalSort)
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "\nStarting demonstration of parallel quicksort ...\n")
	fmt.Fprintf(w, "nthreads = %d\n", s.Workers)
	fmt.Fprintf(w, "arrsize = %d\n", s.Size)

	fmt.Fprintf(w, "\nCreating arrRandom ...\n")
	data := randomArray(s.Size, s.Seed, s.MaxValue)
	fmt.Fprintf(w, "... arrRandom created\n")

	printSample(w, data)
	checkSorted(w, data)

	fmt.Fprintf(w, "\nCalling hsort.Sort(arrRandom, %d) ...\n", s.Workers)
	start := time.Now()
	err = hsort.Sort(data, s.Workers,
		hsort.WithLogger(logger),
		hsort.WithLocalSort(strategy),
		hsort.WithMemoryLimit(s.MemoryLimit),
	)
	elapsed := time.Since(start)
	if err != nil {
		return fmt.Errorf("sort failed: %w", err)
	}
	fmt.Fprintf(w, "... it took %f seconds\n", elapsed.Seconds())
	logger.Info("sorted",
		zap.Int("size", s.Size),
		zap.Int("workers", s.Workers),
		zap.Stringer("local_sort", strategy),
		zap.Duration("elapsed", elapsed),
	)

	printSample(w, data)
	if !checkSorted(w, data) {
		return fmt.Errorf("array of %d elements is not sorted", len(data))
	}
	return nil
}

func randomArray(n int, seed, maxValue int64) []int64 {
	rng := rand.New(rand.NewSource(seed))
	data := make([]int64, n)
	for i := range data {
		data[i] = rng.Int63n(maxValue)
	}
	return data
}

// sampleIndices returns every n/10-th index followed by the last index.
func sampleIndices(n int) []int {
	if n == 0 {
		return nil
	}
	step := max(n/10, 1)
	return append(lo.RangeWithSteps(0, n, step), n-1)
}

func printSample(w io.Writer, data []int64) {
	fmt.Fprintf(w, "\nPrinting sample ...\n")
	values := lo.Map(sampleIndices(len(data)), func(i int, _ int) string {
		return fmt.Sprint(data[i])
	})
	fmt.Fprintln(w, strings.Join(values, " "))
}

// checkSorted reports the first descent in data, if any.
func checkSorted(w io.Writer, data []int64) bool {
	fmt.Fprintf(w, "\nChecking if sorted ...\n")
	if algo.IsSorted(data) {
		fmt.Fprintf(w, "... success: is sorted\n")
		return true
	}
	for i := 0; i < len(data)-1; i++ {
		if data[i] > data[i+1] {
			fmt.Fprintf(w, "... arr[%d] = %d > arr[%d] = %d\n", i, data[i], i+1, data[i+1])
			break
		}
	}
	fmt.Fprintf(w, "... NOT SORTED!\n")
	return false
}
