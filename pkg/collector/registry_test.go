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
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NVIDIA/hostreport/pkg/errors"
	"github.com/NVIDIA/hostreport/pkg/report"
)

func stub(name string) Collector {
	return CollectorFunc(func(context.Context) (*report.Category, error) {
		return report.NewCategory(name).Build(), nil
	})
}

func TestRegistry_Register(t *testing.T) {
	tests := []struct {
		name    string
		spec    Spec
		wantErr bool
	}{
		{"valid", Spec{Name: "A", Collector: stub("A")}, false},
		{"empty name", Spec{Collector: stub("")}, true},
		{"nil collector", Spec{Name: "B"}, true},
		{"duplicate", Spec{Name: "A", Collector: stub("A")}, true},
	}

	r := NewRegistry()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := r.Register(tt.spec)
			if tt.wantErr {
				require.Error(t, err)
				assert.Equal(t, errors.ErrCodeInvalidRequest, errors.CodeOf(err))
				return
			}
			require.NoError(t, err)
		})
	}
	assert.Equal(t, 1, r.Len())
}

func TestRegistry_OrderAndCopy(t *testing.T) {
	var r Registry
	for _, n := range []string{"C", "A", "B"} {
		require.NoError(t, r.Register(Spec{Name: n, Collector: stub(n)}))
	}
	assert.Equal(t, []string{"C", "A", "B"}, r.Names())

	specs := r.Specs()
	specs[0].Name = "mutated"
	assert.Equal(t, "C", r.Specs()[0].Name)
}

func TestRegistry_Nil(t *testing.T) {
	var r *Registry
	assert.Equal(t, 0, r.Len())
	assert.Nil(t, r.Specs())
	assert.Nil(t, r.Names())
}

func TestRegistry_MustRegisterPanicsOnDuplicate(t *testing.T) {
	r := NewRegistry()
	r.MustRegister(Spec{Name: "A", Collector: stub("A")})
	assert.Panics(t, func() { r.MustRegister(Spec{Name: "A", Collector: stub("A")}) })
}

func TestCollectorFunc(t *testing.T) {
	c, err := stub("X").Collect(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "X", c.Name)
}
