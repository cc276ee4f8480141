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

//go:build unix

package privilege

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type call struct {
	name string
	args []string
}

func newTestBroker(results ...int) (*unixBroker, *[]call) {
	calls := make([]call, 0)
	i := 0
	b := &unixBroker{
		args:       []string{"--debug"},
		geteuid:    func() int { return 1000 },
		getenv:     func(string) string { return "" },
		lookPath:   func(string) (string, error) { return "/usr/bin/sudo", nil },
		isTerminal: func() bool { return true },
		executable: func() (string, error) { return "/opt/hostreport", nil },
		run: func(_ context.Context, name string, args ...string) (int, error) {
			calls = append(calls, call{name: name, args: args})
			code := 0
			if i < len(results) {
				code = results[i]
			}
			i++
			return code, nil
		},
	}
	return b, &calls
}

func TestUnixBroker_CurrentLevel(t *testing.T) {
	b, _ := newTestBroker()
	assert.Equal(t, Standard, b.CurrentLevel())

	b.geteuid = func() int { return 0 }
	assert.Equal(t, Elevated, b.CurrentLevel())
}

func TestUnixBroker_RelaunchStarted(t *testing.T) {
	b, calls := newTestBroker(0, 3)

	r, err := b.RequestElevatedRelaunch(context.Background())
	require.NoError(t, err)
	require.NotNil(t, r)
	assert.Equal(t, 3, r.ExitCode)
	assert.False(t, r.Detached)

	require.Len(t, *calls, 2)
	assert.Equal(t, []string{"-v"}, (*calls)[0].args)
	assert.Equal(t, "/usr/bin/sudo", (*calls)[1].name)
	assert.Equal(t, []string{"env", RelaunchMarkerEnv + "=1", "/opt/hostreport", "--debug"}, (*calls)[1].args)
}

func TestUnixBroker_RelaunchDeclined(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(b *unixBroker)
		results   []int
		wantCalls int
	}{
		{
			name:   "already relaunched",
			mutate: func(b *unixBroker) { b.getenv = func(string) string { return "1" } },
		},
		{
			name:   "no sudo",
			mutate: func(b *unixBroker) { b.lookPath = func(string) (string, error) { return "", errors.New("not found") } },
		},
		{
			name:   "not a terminal",
			mutate: func(b *unixBroker) { b.isTerminal = func() bool { return false } },
		},
		{
			name:   "no executable",
			mutate: func(b *unixBroker) { b.executable = func() (string, error) { return "", errors.New("gone") } },
		},
		{
			name:      "credential validation fails",
			mutate:    func(*unixBroker) {},
			results:   []int{1},
			wantCalls: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, calls := newTestBroker(tt.results...)
			tt.mutate(b)

			r, err := b.RequestElevatedRelaunch(context.Background())
			assert.Nil(t, r)
			assert.True(t, IsDeclined(err))
			assert.Len(t, *calls, tt.wantCalls)
		})
	}
}

func TestUnixBroker_RelaunchCannotStart(t *testing.T) {
	b, _ := newTestBroker()
	n := 0
	b.run = func(context.Context, string, ...string) (int, error) {
		n++
		if n == 2 {
			return -1, errors.New("exec format error")
		}
		return 0, nil
	}

	_, err := b.RequestElevatedRelaunch(context.Background())
	assert.True(t, IsDeclined(err))
}

func TestRunAttached_ExitCode(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping process test in short mode")
	}

	code, err := runAttached(context.Background(), "sh", "-c", "exit 7")
	require.NoError(t, err)
	assert.Equal(t, 7, code)

	_, err = runAttached(context.Background(), "/nonexistent/hostreport-test-binary")
	assert.Error(t, err)
}
