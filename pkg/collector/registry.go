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
	"github.com/NVIDIA/hostreport/pkg/errors"
)

// Registry holds collector specs in registration order. It is populated at
// startup and read-only afterwards.
type Registry struct {
	specs []Spec
	names map[string]struct{}
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{names: make(map[string]struct{})}
}

// Register appends spec. Empty names, nil collectors and duplicate names are
// rejected.
func (r *Registry) Register(spec Spec) error {
	if spec.Name == "" {
		return errors.New(errors.ErrCodeInvalidRequest, "collector name cannot be empty")
	}
	if spec.Collector == nil {
		return errors.NewWithContext(errors.ErrCodeInvalidRequest, "collector cannot be nil",
			map[string]any{"name": spec.Name})
	}
	if r.names == nil {
		r.names = make(map[string]struct{})
	}
	if _, dup := r.names[spec.Name]; dup {
		return errors.NewWithContext(errors.ErrCodeInvalidRequest, "collector already registered",
			map[string]any{"name": spec.Name})
	}
	r.names[spec.Name] = struct{}{}
	r.specs = append(r.specs, spec)
	return nil
}

// MustRegister is Register that panics on error. For static registration only.
func (r *Registry) MustRegister(spec Spec) {
	if err := r.Register(spec); err != nil {
		panic(err)
	}
}

// Specs returns a copy of the registered specs in registration order.
func (r *Registry) Specs() []Spec {
	if r == nil {
		return nil
	}
	out := make([]Spec, len(r.specs))
	copy(out, r.specs)
	return out
}

// Names returns the registered category names in order.
func (r *Registry) Names() []string {
	if r == nil {
		return nil
	}
	names := make([]string, len(r.specs))
	for i, s := range r.specs {
		names[i] = s.Name
	}
	return names
}

// Len returns the number of registered specs.
func (r *Registry) Len() int {
	if r == nil {
		return 0
	}
	return len(r.specs)
}
