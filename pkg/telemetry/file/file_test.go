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

package file

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NVIDIA/hostreport/pkg/errors"
)

func fixture() fstest.MapFS {
	return fstest.MapFS{
		"etc/os-release": {Data: []byte(`# comment
NAME="Ubuntu"
ID=ubuntu
VERSION_ID="22.04"
PRETTY_NAME='Ubuntu 22.04.4 LTS'
EMPTY=
BROKEN
`)},
		"sys/kernel/security/lsm":            {Data: []byte("lockdown,capability,apparmor\n")},
		"proc/sys/kernel/randomize_va_space": {Data: []byte("2\n")},
		"proc/empty":                         {Data: []byte("\n\n")},
		"bad/utf8":                           {Data: []byte{0xff, 0xfe}},
		"big/file":                           {Data: make([]byte, 64)},
	}
}

func TestParser_GetMap(t *testing.T) {
	tests := []struct {
		name string
		opts []Option
		want map[string]string
	}{
		{
			name: "trim quotes and skip empty",
			opts: []Option{WithVTrimChars(`"'`), WithSkipEmptyValues(true)},
			want: map[string]string{
				"NAME":        "Ubuntu",
				"ID":          "ubuntu",
				"VERSION_ID":  "22.04",
				"PRETTY_NAME": "Ubuntu 22.04.4 LTS",
			},
		},
		{
			name: "defaults keep empty and key-only entries",
			opts: []Option{WithVDefault("N/A")},
			want: map[string]string{
				"NAME":        `"Ubuntu"`,
				"ID":          "ubuntu",
				"VERSION_ID":  `"22.04"`,
				"PRETTY_NAME": `'Ubuntu 22.04.4 LTS'`,
				"EMPTY":       "",
				"BROKEN":      "N/A",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewParser(append([]Option{WithFS(fixture())}, tt.opts...)...)
			got, err := p.GetMap("/etc/os-release")
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParser_GetLines(t *testing.T) {
	p := NewParser(WithFS(fixture()), WithDelimiter(","))
	got, err := p.GetLines("/sys/kernel/security/lsm")
	require.NoError(t, err)
	assert.Equal(t, []string{"lockdown", "capability", "apparmor"}, got)

	withComments := NewParser(WithFS(fixture()), WithSkipComments(false))
	lines, err := withComments.GetLines("/etc/os-release")
	require.NoError(t, err)
	assert.Equal(t, "# comment", lines[0])
}

func TestParser_GetValue(t *testing.T) {
	p := NewParser(WithFS(fixture()))

	v, err := p.GetValue("/proc/sys/kernel/randomize_va_space")
	require.NoError(t, err)
	assert.Equal(t, "2", v)

	_, err = p.GetValue("/proc/empty")
	assert.True(t, errors.IsCode(err, errors.ErrCodeSourceUnavailable))
}

func TestParser_Errors(t *testing.T) {
	tests := []struct {
		name string
		opts []Option
		path string
		code errors.ErrorCode
	}{
		{"missing file", nil, "/etc/missing", errors.ErrCodeNotSupported},
		{"empty path", nil, "", errors.ErrCodeInvalidRequest},
		{"dot-dot path", nil, "/etc/../etc/os-release", errors.ErrCodeInvalidRequest},
		{"invalid utf8", nil, "/bad/utf8", errors.ErrCodeSourceUnavailable},
		{"too large", []Option{WithMaxSize(10)}, "/big/file", errors.ErrCodeSourceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewParser(append([]Option{WithFS(fixture())}, tt.opts...)...)
			_, err := p.GetLines(tt.path)
			require.Error(t, err)
			assert.Equal(t, tt.code, errors.CodeOf(err))
		})
	}
}

func TestParser_Exists(t *testing.T) {
	p := NewParser(WithFS(fixture()))
	assert.True(t, p.Exists("/etc/os-release"))
	assert.False(t, p.Exists("/etc/missing"))
	assert.False(t, p.Exists(""))
}

func TestParser_HostRoot(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping host filesystem test in short mode")
	}
	p := NewParser()
	if !p.Exists("/etc/os-release") {
		t.Skip("no /etc/os-release on this host")
	}
	m, err := p.GetMap("/etc/os-release")
	require.NoError(t, err)
	assert.NotEmpty(t, m)
}

func TestParser_DirectoryHelpers(t *testing.T) {
	fsys := fstest.MapFS{
		"sys/class/drm/card0/device/uevent":     {Data: []byte("DRIVER=amdgpu\nPCI_ID=1002:744A\n")},
		"sys/class/drm/card0-DP-1/status":       {Data: []byte("connected\n")},
		"sys/class/drm/renderD128/dev":          {Data: []byte("226:128\n")},
		"sys/firmware/efi/efivars/SecureBoot-x": {Data: []byte{6, 0, 0, 0, 1}},
	}
	p := NewParser(WithFS(fsys))

	names, err := p.ReadDir("/sys/class/drm")
	require.NoError(t, err)
	assert.Equal(t, []string{"card0", "card0-DP-1", "renderD128"}, names)

	matches, err := p.Glob("/sys/class/drm/card*/device/uevent")
	require.NoError(t, err)
	assert.Equal(t, []string{"/sys/class/drm/card0/device/uevent"}, matches)

	b, err := p.GetBytes("/sys/firmware/efi/efivars/SecureBoot-x")
	require.NoError(t, err)
	assert.Equal(t, []byte{6, 0, 0, 0, 1}, b)

	_, err = p.ReadDir("/sys/class/missing")
	assert.True(t, errors.IsCode(err, errors.ErrCodeNotSupported))

	_, err = p.Glob("/sys/[")
	assert.Error(t, err)
}
