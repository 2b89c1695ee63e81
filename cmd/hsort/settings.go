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
	"errors"
	"fmt"
	"os"
	"runtime"
	"strconv"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

const (
	defaultSeed     = 100
	defaultMaxValue = 1000
)

// settings is everything one demo run needs. The YAML tags define the
// --config file format. Workers defaults to GOMAXPROCS when neither the file
// nor the arguments give it.
type settings struct {
	Size        int    `yaml:"size"`
	Workers     int    `yaml:"workers"`
	Seed        int64  `yaml:"seed"`
	MaxValue    int64  `yaml:"max_value"`
	LocalSort   string `yaml:"local_sort"`
	MemoryLimit int64  `yaml:"memory_limit"`
}

func defaultSettings() settings {
	return settings{
		Size:     -1,
		Workers:  runtime.GOMAXPROCS(0),
		Seed:     defaultSeed,
		MaxValue: defaultMaxValue,
	}
}

// loadSettings overlays the YAML file at path onto base.
func loadSettings(path string, base settings) (settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return base, fmt.Errorf("failed to read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &base); err != nil {
		return base, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return base, nil
}

// resolveSettings merges defaults, the config file, changed flags and the
// positional arguments, in increasing order of precedence.
func resolveSettings(cmd *cobra.Command, fromFlags settings, path string, args []string) (settings, error) {
	s := defaultSettings()
	if path != "" {
		var err error
		if s, err = loadSettings(path, s); err != nil {
			return s, err
		}
	}

	flags := cmd.Flags()
	if flags.Changed("max-value") {
		s.MaxValue = fromFlags.MaxValue
	}
	if flags.Changed("local-sort") {
		s.LocalSort = fromFlags.LocalSort
	}
	if flags.Changed("memory-limit") {
		s.MemoryLimit = fromFlags.MemoryLimit
	}

	for i, arg := range args {
		v, err := strconv.ParseInt(arg, 10, 64)
		if err != nil {
			return s, fmt.Errorf("argument %d (%q): %w", i+1, arg, err)
		}
		switch i {
		case 0:
			s.Size = int(v)
		case 1:
			s.Workers = int(v)
		case 2:
			s.Seed = v
		}
	}

	if s.Size < 0 {
		return s, errors.New("expected input: hsort arrsize nthreads [seed]")
	}
	if s.MaxValue <= 0 {
		return s, fmt.Errorf("max-value must be positive, got %d", s.MaxValue)
	}
	return s, nil
}
