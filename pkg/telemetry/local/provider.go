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
	"os"
	"time"

	"github.com/NVIDIA/hostreport/pkg/defaults"
	"github.com/NVIDIA/hostreport/pkg/errors"
	"github.com/NVIDIA/hostreport/pkg/telemetry"
	"github.com/NVIDIA/hostreport/pkg/telemetry/file"
)

// Provider reads telemetry from the local host.
type Provider struct {
	cpuSample time.Duration
	files     *file.Parser
	isRoot    func() bool
	hostname  func() (string, error)
	getenv    func(string) string
	environ   func() []string
}

var _ telemetry.Provider = (*Provider)(nil)

// Option configures a Provider.
type Option func(*Provider)

// WithCPUSampleInterval sets how long CPU utilization is sampled.
func WithCPUSampleInterval(d time.Duration) Option {
	return func(p *Provider) {
		if d > 0 {
			p.cpuSample = d
		}
	}
}

// WithFileParser sets the parser used for sysfs, procfs and /etc files.
func WithFileParser(fp *file.Parser) Option {
	return func(p *Provider) {
		if fp != nil {
			p.files = fp
		}
	}
}

// WithRootCheck overrides how the provider decides whether it may read
// root-only sources.
func WithRootCheck(isRoot func() bool) Option {
	return func(p *Provider) {
		if isRoot != nil {
			p.isRoot = isRoot
		}
	}
}

// WithEnvironment overrides the process environment lookups.
func WithEnvironment(getenv func(string) string, environ func() []string) Option {
	return func(p *Provider) {
		if getenv != nil {
			p.getenv = getenv
		}
		if environ != nil {
			p.environ = environ
		}
	}
}

// New creates a Provider for the local host.
func New(opts ...Option) *Provider {
	p := &Provider{
		cpuSample: defaults.CPUSampleInterval,
		files:     file.NewParser(),
		isRoot:    processIsRoot,
		hostname:  os.Hostname,
		getenv:    os.Getenv,
		environ:   os.Environ,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

func requireRoot(p *Provider, what string) error {
	if p.isRoot() {
		return nil
	}
	return errors.New(errors.ErrCodePermissionDenied, what+" requires elevated privilege")
}

func notSupported(what string) error {
	return errors.New(errors.ErrCodeNotSupported, what+" is not available on this platform")
}

func unavailable(what string, err error) error {
	if err == nil {
		return nil
	}
	if errors.CodeOf(err) != "" {
		return err
	}
	return errors.Wrap(errors.ErrCodeSourceUnavailable, "failed to read "+what, err)
}

func ctxErr(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return errors.Wrap(errors.ErrCodeTimeout, "query canceled", err)
	}
	return nil
}
