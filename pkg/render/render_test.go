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

package render

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/NVIDIA/hostreport/pkg/header"
	"github.com/NVIDIA/hostreport/pkg/report"
)

func sampleReport() *report.Report {
	rep := report.New(
		header.WithMetadata(header.MetadataPrivilege, "Standard"),
		header.WithMetadata(header.MetadataVersion, "v1.0.0"),
	)
	rep.Append(report.NewCategory("System").
		SetString("Hostname", "ws-01").
		SetFloat64("CPU usage", 12.5).
		Set("Per-core", report.Floats([]float64{10, 12.5})).
		Set("Partitions", report.List{
			report.Map{"Device": report.Str("/dev/a"), "Mount point": report.Str("/")},
		}).
		Set("Empty list", report.List{}).
		Set("Empty map", report.Map{}).
		SetUnavailable("Note", "").
		Build())
	rep.Append(report.UnavailableCategory("Firmware", report.ReasonRequiresElevation))
	return rep
}

func TestRender_Layout(t *testing.T) {
	want := "hostreport-version: v1.0.0\n" +
		"privilege: Standard\n" +
		"\n" +
		"■ System\n" +
		"CPU usage: 12.5\n" +
		"Empty list: []\n" +
		"Empty map: {}\n" +
		"Hostname: ws-01\n" +
		"Note: Unavailable\n" +
		"Partitions:\n" +
		"  - Device: /dev/a\n" +
		"    Mount point: /\n" +
		"Per-core: [10, 12.5]\n" +
		"\n" +
		"■ Firmware\n" +
		"Firmware: Unavailable (requires elevated privilege)\n"

	assert.Equal(t, want, Render(sampleReport()))
}

func TestRender_Deterministic(t *testing.T) {
	rep := sampleReport()
	first := Render(rep)
	for range 20 {
		assert.Equal(t, first, Render(rep))
	}
}

func TestRender_CategoryOrderIsReportOrder(t *testing.T) {
	rep := &report.Report{}
	for _, n := range []string{"Zulu", "Alpha"} {
		rep.Append(report.NewCategory(n).SetInt("Count", 1).Build())
	}
	assert.Equal(t, "■ Zulu\nCount: 1\n\n■ Alpha\nCount: 1\n", Render(rep))
}

func TestRender_Values(t *testing.T) {
	tests := []struct {
		name  string
		value report.Value
		want  string
	}{
		{"string", report.Str("x"), "V: x\n"},
		{"int", report.Int(-3), "V: -3\n"},
		{"uint64", report.Uint64(18446744073709551615), "V: 18446744073709551615\n"},
		{"bool", report.Bool(true), "V: true\n"},
		{"large float", report.Float64(1e21), "V: 1000000000000000000000\n"},
		{"unavailable with reason", report.NewUnavailable("WMI service is not running"), "V: Unavailable (WMI service is not running)\n"},
		{"list of scalars", report.Strings([]string{"a", "b"}), "V: [a, b]\n"},
		{"list with unavailable", report.List{report.Str("a"), report.NewUnavailable("")}, "V: [a, Unavailable]\n"},
		{"invalid utf8", report.Str("bad\xffbyte"), "V: bad\uFFFDbyte\n"},
		{
			name: "nested map",
			value: report.Map{
				"Disks":     report.List{},
				"Baseboard": report.Map{"Product": report.Str("0DXP1F")},
			},
			want: "V:\n  Baseboard:\n    Product: 0DXP1F\n  Disks: []\n",
		},
		{
			name:  "list of lists",
			value: report.List{report.Strings([]string{"a", "b"}), report.List{}},
			want:  "V:\n  - [a, b]\n  - []\n",
		},
		{
			name: "list of maps with nested list",
			value: report.List{
				report.Map{"Name": report.Str("eth0"), "Addresses": report.List{report.Map{"IP": report.Str("10.0.0.2")}}},
			},
			want: "V:\n  - Addresses:\n      - IP: 10.0.0.2\n    Name: eth0\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rep := &report.Report{}
			rep.Append(report.NewCategory("C").Set("V", tt.value).Build())
			assert.Equal(t, "■ C\n"+tt.want, Render(rep))
		})
	}
}

func TestRender_Nil(t *testing.T) {
	assert.Empty(t, Render(nil))
}

func TestSanitize(t *testing.T) {
	assert.Equal(t, "ok", sanitize("ok"))
	assert.Equal(t, "\uFFFD", sanitize("\xc3"))
	assert.Equal(t, "Intel\uFFFD(R)", sanitize("Intel\xae(R)"))
}
