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
	"errors"
	"fmt"
)

// Category is a named group of related fields, one per telemetry domain.
// Fields are kept in a map; ordering is a presentation concern and Keys
// returns them lexicographically.
type Category struct {
	Name   string           `json:"name" yaml:"name"`
	Fields map[string]Value `json:"fields" yaml:"fields"`
}

// NewCategoryWithFields creates a Category that owns the given fields map.
func NewCategoryWithFields(name string, fields map[string]Value) *Category {
	if fields == nil {
		fields = make(map[string]Value)
	}
	return &Category{Name: name, Fields: fields}
}

// UnavailableCategory returns a Category holding a single field, named after
// the category itself, whose value is Unavailable(reason).
func UnavailableCategory(name, reason string) *Category {
	return &Category{
		Name: name,
		Fields: map[string]Value{
			name: NewUnavailable(reason),
		},
	}
}

// Validate checks if the category is properly formed.
func (c *Category) Validate() error {
	if c.Name == "" {
		return errors.New("category name cannot be empty")
	}
	for k, v := range c.Fields {
		if k == "" {
			return fmt.Errorf("category %q: field name cannot be empty", c.Name)
		}
		if v == nil {
			return fmt.Errorf("category %q: field %q has no value", c.Name, k)
		}
	}
	return nil
}

// Keys returns all field names in lexicographic order.
func (c *Category) Keys() []string {
	return sortedKeys(c.Fields)
}

// Len returns the number of fields.
func (c *Category) Len() int {
	return len(c.Fields)
}

// Has checks if a field exists.
func (c *Category) Has(key string) bool {
	_, exists := c.Fields[key]
	return exists
}

// Get retrieves a field value by name, returning nil if not found.
func (c *Category) Get(key string) Value {
	return c.Fields[key]
}

// Set adds or replaces a field value.
func (c *Category) Set(key string, value Value) {
	if c.Fields == nil {
		c.Fields = make(map[string]Value)
	}
	c.Fields[key] = value
}

// GetString attempts to retrieve a string value, returning an error if not found or wrong type.
func (c *Category) GetString(key string) (string, error) {
	v := c.Fields[key]
	if v == nil {
		return "", fmt.Errorf("key %q not found", key)
	}
	s, ok := v.Any().(string)
	if !ok {
		return "", fmt.Errorf("key %q is not a string", key)
	}
	return s, nil
}

// UnavailableKeys returns the names of fields holding Unavailable values, sorted.
func (c *Category) UnavailableKeys() []string {
	keys := make([]string, 0)
	for _, k := range c.Keys() {
		if IsUnavailable(c.Fields[k]) {
			keys = append(keys, k)
		}
	}
	return keys
}

// Degraded reports whether any field of the category is Unavailable.
func (c *Category) Degraded() bool {
	for _, v := range c.Fields {
		if IsUnavailable(v) {
			return true
		}
	}
	return false
}
