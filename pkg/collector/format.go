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
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/NVIDIA/hostreport/pkg/report"
)

const reasonNotReported = "not reported"

// bytesValue renders a byte count in binary units ("15 GiB").
func bytesValue(n uint64) report.Value {
	return report.Str(humanize.IBytes(n))
}

// percentValue renders a percentage. Providers round before reporting.
func percentValue(v float64) report.Value {
	return report.Str(strconv.FormatFloat(v, 'f', -1, 64) + "%")
}

// timeValue renders t in RFC 3339, or Unavailable for the zero time.
func timeValue(t time.Time) report.Value {
	if t.IsZero() {
		return report.NewUnavailable(reasonNotReported)
	}
	return report.Str(t.UTC().Format(time.RFC3339))
}

// textValue returns s, or Unavailable when the source reported nothing.
func textValue(s string) report.Value {
	s = strings.TrimSpace(s)
	if s == "" {
		return report.NewUnavailable(reasonNotReported)
	}
	return report.Str(s)
}

// uptimeValue renders d as "3d 4h 5m".
func uptimeValue(d time.Duration) report.Value {
	if d <= 0 {
		return report.NewUnavailable(reasonNotReported)
	}
	d = d.Round(time.Minute)
	days := d / (24 * time.Hour)
	d -= days * 24 * time.Hour
	hours := d / time.Hour
	d -= hours * time.Hour
	minutes := d / time.Minute

	if days > 0 {
		return report.Str(fmt.Sprintf("%dd %dh %dm", days, hours, minutes))
	}
	return report.Str(fmt.Sprintf("%dh %dm", hours, minutes))
}

// offsetValue renders a UTC offset as "+02:00".
func offsetValue(d time.Duration) report.Value {
	sign := "+"
	if d < 0 {
		sign = "-"
		d = -d
	}
	h := d / time.Hour
	m := (d % time.Hour) / time.Minute
	return report.Str(fmt.Sprintf("%s%02d:%02d", sign, h, m))
}
