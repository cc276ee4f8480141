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

package header

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew_AppliesOptions(t *testing.T) {
	h := New(
		WithKind(KindHostReport),
		WithAPIVersion(APIVersionV1),
		WithMetadata(MetadataPrivilege, "Standard"),
	)

	assert.Equal(t, KindHostReport, h.Kind)
	assert.Equal(t, APIVersionV1, h.APIVersion)
	assert.Equal(t, "Standard", h.GetMetadata()[MetadataPrivilege])
}

func TestWithMetadata_NilMap(t *testing.T) {
	h := &Header{}
	WithMetadata("k", "v")(h)
	assert.Equal(t, map[string]string{"k": "v"}, h.Metadata)
}

func TestKind_String(t *testing.T) {
	assert.Equal(t, "HostReport", KindHostReport.String())
}
