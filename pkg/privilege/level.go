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

package privilege

// Level is the privilege level of the running process.
type Level int

const (
	// Standard is a normal, unprivileged process. It is the zero value.
	Standard Level = iota
	// Elevated is a process holding administrative rights (root, or an
	// elevated Windows token).
	Elevated
)

// String returns the display name of the level.
func (l Level) String() string {
	switch l {
	case Elevated:
		return "Elevated"
	default:
		return "Standard"
	}
}

// IsElevated reports whether l is Elevated.
func (l Level) IsElevated() bool {
	return l == Elevated
}
