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

package collector

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NVIDIA/hostreport/pkg/telemetry/telemetrytest"
)

func TestNewDefaultRegistry(t *testing.T) {
	r, err := NewDefaultRegistry(NewDefaultFactory(telemetrytest.NewHost()))
	require.NoError(t, err)

	assert.Equal(t, []string{
		"System", "Hardware", "Network", "Security", "Performance",
		"Services", "User", "Environment", "Runtime", "Firmware",
	}, r.Names())

	for _, s := range r.Specs() {
		assert.NotNil(t, s.Collector, s.Name)
		assert.Equal(t, s.Name == CategoryFirmware, s.RequiresElevation, s.Name)
	}
}

func TestNewDefaultFactory_Options(t *testing.T) {
	f := NewDefaultFactory(nil)
	assert.Equal(t, DefaultEnvironmentExclude, f.EnvironmentExclude)
	assert.Empty(t, f.EnvironmentInclude)

	f = NewDefaultFactory(nil,
		WithEnvironmentInclude([]string{"LANG", "LC_*"}),
		WithEnvironmentExclude(nil),
	)
	assert.Equal(t, []string{"LANG", "LC_*"}, f.EnvironmentInclude)
	assert.Nil(t, f.EnvironmentExclude)

	env, ok := f.CreateEnvironmentCollector().(*EnvironmentCollector)
	require.True(t, ok)
	assert.Equal(t, []string{"LANG", "LC_*"}, env.Include)
}
