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
	"fmt"
	"sort"
	"strings"
)

// ReasonRequiresElevation is the reason recorded for data that was not
// collected because the process runs without elevated privilege.
const ReasonRequiresElevation = "requires elevated privilege"

// AllowedScalar is a constraint (compile-time) for what we allow as scalar values.
type AllowedScalar interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64 |
		~bool |
		~string
}

// Value is a field value. The set of implementations is closed: Scalar,
// List, Map and Unavailable.
type Value interface {
	isValue()
	Any() any
	String() string
}

// Scalar wraps an allowed scalar type.
// This is how we keep compile-time constraints while still using a runtime interface.
type Scalar[T AllowedScalar] struct {
	V T
}

func (Scalar[T]) isValue() {}

// Any returns the underlying scalar.
func (s Scalar[T]) Any() any { return s.V }

// String returns the string representation of the underlying scalar value.
func (s Scalar[T]) String() string {
	return fmt.Sprintf("%v", s.V)
}

// List is an ordered sequence of values.
type List []Value

func (List) isValue() {}

// Any returns the list as []any.
func (l List) Any() any {
	out := make([]any, len(l))
	for i, v := range l {
		out[i] = v.Any()
	}
	return out
}

// String returns a compact single-line form of the list.
func (l List) String() string {
	parts := make([]string, len(l))
	for i, v := range l {
		parts[i] = v.String()
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// Map is a nested mapping of name to value.
type Map map[string]Value

func (Map) isValue() {}

// Any returns the map as map[string]any.
func (m Map) Any() any {
	out := make(map[string]any, len(m))
	for k, v := range m {
		out[k] = v.Any()
	}
	return out
}

// Keys returns the map keys in lexicographic order.
func (m Map) Keys() []string {
	return sortedKeys(m)
}

// String returns a compact single-line form of the map with sorted keys.
func (m Map) String() string {
	keys := m.Keys()
	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = k + ": " + m[k].String()
	}
	return "{" + strings.Join(parts, ", ") + "}"
}

// Unavailable marks a value that could not be obtained.
type Unavailable struct {
	Reason string
}

func (Unavailable) isValue() {}

// Any returns nil; there is no underlying value.
func (Unavailable) Any() any { return nil }

// String returns "Unavailable" followed by the reason in parentheses, if any.
func (u Unavailable) String() string {
	if u.Reason == "" {
		return "Unavailable"
	}
	return "Unavailable (" + u.Reason + ")"
}

// NewUnavailable creates an Unavailable value with the given reason.
func NewUnavailable(reason string) Value {
	return Unavailable{Reason: reason}
}

// IsUnavailable reports whether v is an Unavailable value.
func IsUnavailable(v Value) bool {
	_, ok := v.(Unavailable)
	return ok
}

// Convenience constructors for each allowed scalar type.
func Int(v int) Value         { return Scalar[int]{V: v} }
func Int64(v int64) Value     { return Scalar[int64]{V: v} }
func Uint64(v uint64) Value   { return Scalar[uint64]{V: v} }
func Float64(v float64) Value { return Scalar[float64]{V: v} }
func Bool(v bool) Value       { return Scalar[bool]{V: v} }
func Str(v string) Value      { return Scalar[string]{V: v} }

// Strings converts a string slice into a List.
func Strings(values []string) List {
	out := make(List, len(values))
	for i, v := range values {
		out[i] = Str(v)
	}
	return out
}

// Floats converts a float slice into a List.
func Floats(values []float64) List {
	out := make(List, len(values))
	for i, v := range values {
		out[i] = Float64(v)
	}
	return out
}

// ToValue creates a Value from scalars, slices and maps of supported types.
// Nested slices and maps are converted recursively. Values that are already a
// Value are returned unchanged. Anything else falls back to its fmt representation.
func ToValue(v any) Value {
	switch val := v.(type) {
	case nil:
		return NewUnavailable("")
	case Value:
		return val
	case int:
		return Int(val)
	case int32:
		return Int64(int64(val))
	case int64:
		return Int64(val)
	case uint:
		return Uint64(uint64(val))
	case uint32:
		return Uint64(uint64(val))
	case uint64:
		return Uint64(val)
	case float32:
		return Float64(float64(val))
	case float64:
		return Float64(val)
	case bool:
		return Bool(val)
	case string:
		return Str(val)
	case []string:
		return Strings(val)
	case []float64:
		return Floats(val)
	case []any:
		out := make(List, len(val))
		for i, e := range val {
			out[i] = ToValue(e)
		}
		return out
	case []map[string]any:
		out := make(List, len(val))
		for i, e := range val {
			out[i] = ToValue(e)
		}
		return out
	case map[string]string:
		out := make(Map, len(val))
		for k, e := range val {
			out[k] = Str(e)
		}
		return out
	case map[string]any:
		out := make(Map, len(val))
		for k, e := range val {
			out[k] = ToValue(e)
		}
		return out
	case map[string]uint64:
		out := make(Map, len(val))
		for k, e := range val {
			out[k] = Uint64(e)
		}
		return out
	case error:
		return NewUnavailable(val.Error())
	default:
		return Str(fmt.Sprintf("%v", val))
	}
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
