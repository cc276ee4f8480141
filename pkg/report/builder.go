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
	"github.com/NVIDIA/hostreport/pkg/errors"
)

// CategoryBuilder provides a fluent API for building Category instances.
type CategoryBuilder struct {
	name string
	data map[string]Value
}

// NewCategory creates a new CategoryBuilder with the given name.
func NewCategory(name string) *CategoryBuilder {
	return &CategoryBuilder{
		name: name,
		data: make(map[string]Value),
	}
}

// Set adds or updates a field.
func (b *CategoryBuilder) Set(key string, value Value) *CategoryBuilder {
	b.data[key] = value
	return b
}

// SetString is a convenience method for adding string values.
func (b *CategoryBuilder) SetString(key, value string) *CategoryBuilder {
	b.data[key] = Str(value)
	return b
}

// SetInt is a convenience method for adding int values.
func (b *CategoryBuilder) SetInt(key string, value int) *CategoryBuilder {
	b.data[key] = Int(value)
	return b
}

// SetUint64 is a convenience method for adding uint64 values.
func (b *CategoryBuilder) SetUint64(key string, value uint64) *CategoryBuilder {
	b.data[key] = Uint64(value)
	return b
}

// SetFloat64 is a convenience method for adding float64 values.
func (b *CategoryBuilder) SetFloat64(key string, value float64) *CategoryBuilder {
	b.data[key] = Float64(value)
	return b
}

// SetBool is a convenience method for adding bool values.
func (b *CategoryBuilder) SetBool(key string, value bool) *CategoryBuilder {
	b.data[key] = Bool(value)
	return b
}

// SetUnavailable records that a field could not be obtained.
func (b *CategoryBuilder) SetUnavailable(key, reason string) *CategoryBuilder {
	b.data[key] = NewUnavailable(reason)
	return b
}

// SetResult stores value unless err is non-nil, in which case the field is
// Unavailable with a reason derived from err. Permission errors use
// ReasonRequiresElevation so that every privilege gap reads the same.
func (b *CategoryBuilder) SetResult(key string, value Value, err error) *CategoryBuilder {
	if err != nil {
		b.data[key] = NewUnavailable(ReasonFor(err))
		return b
	}
	if value == nil {
		b.data[key] = NewUnavailable("")
		return b
	}
	b.data[key] = value
	return b
}

// Build constructs and returns the Category.
func (b *CategoryBuilder) Build() *Category {
	return &Category{
		Name:   b.name,
		Fields: b.data,
	}
}

// ReasonFor converts an error into the reason text of an Unavailable value.
func ReasonFor(err error) string {
	if err == nil {
		return ""
	}
	if errors.IsCode(err, errors.ErrCodePermissionDenied) {
		return ReasonRequiresElevation
	}
	return errors.Summarize(err)
}
