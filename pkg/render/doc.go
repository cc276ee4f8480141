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

// Package render turns a report into the human-readable text printed by the
// hostreport command.
//
// The output is deterministic: the metadata preamble and the fields of every
// category are sorted by name, and categories keep report order. Each
// category starts after a blank line with a "■ <Name>" header:
//
//	privilege: Standard
//
//	■ System
//	Hostname: ws-01
//	OS: ubuntu
//
//	■ Firmware
//	Firmware: Unavailable (requires elevated privilege)
//
// Scalars and lists of scalars print on the field line. Maps, and lists
// that contain maps or lists, print as an indented block below it. Invalid
// UTF-8 is replaced with U+FFFD.
//
// Render returns plain text. Writer adds color when the destination is a
// terminal and NO_COLOR is not set.
package render
