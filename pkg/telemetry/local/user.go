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

package local

import (
	"context"
	"os/user"
	"time"

	"github.com/shirou/gopsutil/v4/host"

	"github.com/NVIDIA/hostreport/pkg/errors"
	"github.com/NVIDIA/hostreport/pkg/telemetry"
)

// User reads the account running the process and the logged-in sessions.
func (p *Provider) User(ctx context.Context) (*telemetry.UserInfo, error) {
	if err := ctxErr(ctx); err != nil {
		return nil, err
	}

	u, err := user.Current()
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeSourceUnavailable, "failed to look up current user", err)
	}

	info := &telemetry.UserInfo{
		Username: u.Username,
		UID:      u.Uid,
		GID:      u.Gid,
		HomeDir:  u.HomeDir,
	}
	if info.HomeDir == "" {
		info.Fail(telemetry.FieldHome, errors.New(errors.ErrCodeSourceUnavailable, "home directory is not set"))
	}

	term, err := p.terminal()
	info.Terminal = term
	info.Fail(telemetry.FieldTerminal, err)

	sessions, err := host.UsersWithContext(ctx)
	if err != nil {
		info.Fail(telemetry.FieldSessions, unavailable("logged-in sessions", err))
	}
	for _, s := range sessions {
		info.Sessions = append(info.Sessions, telemetry.Session{
			User:     s.User,
			Terminal: s.Terminal,
			Host:     s.Host,
			Started:  time.Unix(int64(s.Started), 0).UTC(),
		})
	}

	return info, nil
}
