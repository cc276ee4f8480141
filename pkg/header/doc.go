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

// Package header provides the document header embedded in a HostReport.
//
// A header names the document kind, its schema version and run metadata
// such as the report ID, generation time and the privilege level the
// collectors ran under:
//
//	h := header.New(
//	    header.WithKind(header.KindHostReport),
//	    header.WithAPIVersion(header.APIVersionV1),
//	    header.WithMetadata(header.MetadataPrivilege, "Elevated"),
//	)
package header
