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

package telemetry

// Partial maps a result field name to the error that prevented reading it.
// A nil Partial means every field was read.
type Partial map[string]error

// Fail records err for field. A nil err is ignored.
func (p *Partial) Fail(field string, err error) {
	if err == nil {
		return
	}
	if *p == nil {
		*p = make(Partial)
	}
	(*p)[field] = err
}

// Err returns the error recorded for field, or nil.
func (p Partial) Err(field string) error {
	return p[field]
}

// Failed reports whether any field failed.
func (p Partial) Failed() bool {
	return len(p) > 0
}
