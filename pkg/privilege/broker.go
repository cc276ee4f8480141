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

import (
	"context"
	stderrors "errors"

	"github.com/NVIDIA/hostreport/pkg/errors"
)

// RelaunchMarkerEnv is set in the environment of an instance started by
// RequestElevatedRelaunch. An instance that sees it never asks again.
const RelaunchMarkerEnv = "HOSTREPORT_RELAUNCHED"

// ErrDeclined is the errors.Is target for every refused elevation, whether the
// platform lacks the concept or the user said no.
var ErrDeclined = stderrors.New("elevation declined")

// Broker reports the current privilege level and starts elevated instances.
type Broker interface {
	// CurrentLevel never fails. Any failure to query the platform yields Standard.
	CurrentLevel() Level

	// RequestElevatedRelaunch starts a new instance of the program with the
	// same arguments and elevated privilege. A nil error means the instance
	// was started and the caller should not produce a report of its own.
	RequestElevatedRelaunch(ctx context.Context) (*Relaunch, error)
}

// Relaunch describes an elevated instance that was started.
type Relaunch struct {
	// ExitCode is the exit status of the elevated instance when the broker
	// waited for it.
	ExitCode int
	// Detached is true when the instance runs independently and no exit
	// status is available.
	Detached bool
}

// NewBroker returns the broker for the current platform. args are the
// command-line arguments (without the program name) passed to a relaunch.
func NewBroker(args []string) Broker {
	return newPlatformBroker(args)
}

// IsDeclined reports whether err is a declined elevation.
func IsDeclined(err error) bool {
	return stderrors.Is(err, ErrDeclined) || errors.IsCode(err, errors.ErrCodeElevationDeclined)
}

func declined(reason string) error {
	return errors.Wrap(errors.ErrCodeElevationDeclined, reason, ErrDeclined)
}

func declinedWithCause(reason string, cause error) error {
	return errors.WrapWithContext(errors.ErrCodeElevationDeclined, reason, ErrDeclined,
		map[string]any{"cause": cause.Error()})
}
