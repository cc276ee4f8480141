// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
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

package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilterIn(t *testing.T) {
	env := map[string]string{
		"PATH":     "/usr/bin",
		"LANG":     "en_US.UTF-8",
		"LC_TIME":  "C",
		"GH_TOKEN": "secret",
		"HOME":     "/home/me",
	}

	got := FilterIn(env, []string{"LANG", "LC_*"})
	assert.Equal(t, map[string]string{"LANG": "en_US.UTF-8", "LC_TIME": "C"}, got)
}

func TestFilterOut(t *testing.T) {
	values := map[string]Value{
		"GH_TOKEN":       Str("x"),
		"AWS_SECRET_KEY": Str("y"),
		"SHELL":          Str("/bin/bash"),
	}

	got := FilterOut(values, []string{"*TOKEN*", "*SECRET*"})
	assert.Equal(t, map[string]Value{"SHELL": Str("/bin/bash")}, got)
}

func TestMatchesPattern(t *testing.T) {
	tests := []struct {
		key     string
		pattern string
		want    bool
	}{
		{"PATH", "PATH", true},
		{"PATH", "PAT", false},
		{"LC_ALL", "LC_*", true},
		{"XLC_ALL", "LC_*", false},
		{"MY_TOKEN", "*TOKEN", true},
		{"MY_TOKEN_2", "*TOKEN", false},
		{"A_SECRET_B", "*SECRET*", true},
		{"aXbYc", "a*b*c", true},
		{"aXcYb", "a*b*c", false},
		{"a", "a*b", false},
		{"anything", "*", true},
	}

	for _, tt := range tests {
		t.Run(tt.key+"~"+tt.pattern, func(t *testing.T) {
			assert.Equal(t, tt.want, matchesPattern(tt.key, tt.pattern))
		})
	}
}
