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

package local

import (
	"context"
	"net"
	"runtime"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NVIDIA/hostreport/pkg/defaults"
	"github.com/NVIDIA/hostreport/pkg/errors"
)

func TestNew_Options(t *testing.T) {
	p := New()
	assert.Equal(t, defaults.CPUSampleInterval, p.cpuSample)

	p = New(WithCPUSampleInterval(50*time.Millisecond), WithCPUSampleInterval(0))
	assert.Equal(t, 50*time.Millisecond, p.cpuSample)
}

func TestRequireRoot(t *testing.T) {
	p := New(WithRootCheck(func() bool { return true }))
	assert.NoError(t, requireRoot(p, "x"))

	p = New(WithRootCheck(func() bool { return false }))
	err := requireRoot(p, "firmware identity")
	assert.True(t, errors.IsCode(err, errors.ErrCodePermissionDenied))
}

func TestUnavailable(t *testing.T) {
	assert.NoError(t, unavailable("x", nil))
	assert.Equal(t, errors.ErrCodeSourceUnavailable, errors.CodeOf(unavailable("x", assert.AnError)))

	coded := errors.New(errors.ErrCodeNotSupported, "nope")
	assert.Equal(t, errors.ErrCodeNotSupported, errors.CodeOf(unavailable("x", coded)))
}

func TestHostAddresses(t *testing.T) {
	all, primary := hostAddresses([]net.IPAddr{
		{IP: net.ParseIP("::1")},
		{IP: net.ParseIP("127.0.1.1")},
		{IP: net.ParseIP("10.0.0.5")},
	})
	assert.Equal(t, []string{"10.0.0.5", "127.0.1.1", "::1"}, all)
	assert.Equal(t, "10.0.0.5", primary)

	_, primary = hostAddresses([]net.IPAddr{{IP: net.ParseIP("::1")}})
	assert.Equal(t, "::1", primary)

	all, primary = hostAddresses(nil)
	assert.Empty(t, all)
	assert.Empty(t, primary)
}

func TestRuntime(t *testing.T) {
	info, err := New().Runtime(context.Background())
	require.NoError(t, err)
	assert.Equal(t, runtime.Version(), info.GoVersion)
	assert.Equal(t, runtime.GOOS, info.OS)
	assert.Positive(t, info.CPUs)
	assert.Positive(t, info.MaxProcs)
}

func TestRound2(t *testing.T) {
	assert.Equal(t, 12.35, round2(12.3456))
	assert.Equal(t, 0.0, round2(0.001))
}

// The tests below read the real host.

func TestProvider_HostQueries(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping host integration test in short mode")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	p := New(WithCPUSampleInterval(100 * time.Millisecond))

	sys, err := p.System(ctx)
	require.NoError(t, err)
	assert.NotEmpty(t, sys.OS)

	hw, err := p.Hardware(ctx)
	require.NoError(t, err)
	assert.Positive(t, hw.MemoryTotal)

	perf, err := p.Performance(ctx)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, perf.MemoryPercent, 0.0)

	nw, err := p.Network(ctx)
	require.NoError(t, err)
	assert.NotEmpty(t, nw.Adapters)

	usr, err := p.User(ctx)
	require.NoError(t, err)
	assert.NotEmpty(t, usr.Username)
}
