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

// Package telemetry defines the data-source boundary of hostreport.
//
// A Provider answers one query per telemetry domain. Each query returns either
// an error, when the whole domain could not be read, or a result struct whose
// embedded Partial records the fields that failed individually. Collectors
// turn both into report values; nothing below a collector decides how a
// failure is displayed.
//
// The production implementation lives in pkg/telemetry/local.
package telemetry
