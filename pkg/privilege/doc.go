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

// Package privilege determines the privilege level of the running process and
// requests an elevated relaunch of the same program when the platform offers one.
//
// The level is read once at startup and passed by value afterwards:
//
//	b := privilege.NewBroker(os.Args[1:])
//	level := b.CurrentLevel()
//	if level == privilege.Standard {
//	    r, err := b.RequestElevatedRelaunch(ctx)
//	    if privilege.IsDeclined(err) {
//	        // continue at Standard
//	    }
//	    _ = r // an elevated instance ran; exit with r.ExitCode
//	}
//
// Platform behavior:
//
//   - Unix: effective UID 0 is Elevated. Elevation re-executes the binary
//     through sudo after validating credentials on the controlling terminal.
//   - Windows: the process token elevation flag decides the level. Elevation
//     asks the shell for the "runas" verb, which shows the consent prompt and
//     starts a detached instance.
//   - Anything else has no elevation concept and always declines.
package privilege
