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

//go:build !unix && !windows

package privilege

import "context"

type noElevationBroker struct{}

func newPlatformBroker(_ []string) Broker {
	return noElevationBroker{}
}

// CurrentLevel always returns Standard.
func (noElevationBroker) CurrentLevel() Level {
	return Standard
}

// RequestElevatedRelaunch always declines.
func (noElevationBroker) RequestElevatedRelaunch(_ context.Context) (*Relaunch, error) {
	return nil, declined("platform has no elevation concept")
}
