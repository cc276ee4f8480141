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
	"github.com/NVIDIA/hostreport/pkg/header"
)

// Report is the ordered sequence of categories produced by one run.
// Category order is the collector registration order.
type Report struct {
	header.Header `json:",inline" yaml:",inline"`

	Categories []*Category `json:"categories" yaml:"categories"`
}

// New creates a Report with an initialized HostReport header.
func New(opts ...header.Option) *Report {
	base := []header.Option{
		header.WithKind(header.KindHostReport),
		header.WithAPIVersion(header.APIVersionV1),
	}
	return &Report{
		Header:     *header.New(append(base, opts...)...),
		Categories: make([]*Category, 0),
	}
}

// Append adds a category at the end of the report.
func (r *Report) Append(c *Category) {
	r.Categories = append(r.Categories, c)
}

// Category returns the first category with the given name, or nil.
func (r *Report) Category(name string) *Category {
	for _, c := range r.Categories {
		if c.Name == name {
			return c
		}
	}
	return nil
}

// Names returns the category names in report order.
func (r *Report) Names() []string {
	names := make([]string, len(r.Categories))
	for i, c := range r.Categories {
		names[i] = c.Name
	}
	return names
}

// DegradedCount returns the number of categories with at least one Unavailable field.
func (r *Report) DegradedCount() int {
	n := 0
	for _, c := range r.Categories {
		if c.Degraded() {
			n++
		}
	}
	return n
}
