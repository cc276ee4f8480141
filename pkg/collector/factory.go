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

package collector

import (
	"github.com/NVIDIA/hostreport/pkg/telemetry"
)

// Factory creates the collectors of the default registry.
type Factory interface {
	CreateSystemCollector() Collector
	CreateHardwareCollector() Collector
	CreateNetworkCollector() Collector
	CreateSecurityCollector() Collector
	CreatePerformanceCollector() Collector
	CreateServicesCollector() Collector
	CreateUserCollector() Collector
	CreateEnvironmentCollector() Collector
	CreateRuntimeCollector() Collector
	CreateFirmwareCollector() Collector
}

// DefaultEnvironmentExclude hides variables that commonly hold credentials.
var DefaultEnvironmentExclude = []string{
	"*TOKEN*",
	"*SECRET*",
	"*PASSWORD*",
	"*PASSWD*",
	"*CREDENTIAL*",
	"*API_KEY*",
	"*PRIVATE_KEY*",
}

// Option is a functional option for configuring DefaultFactory instances.
type Option func(*DefaultFactory)

// WithEnvironmentInclude limits reported environment variables to those
// matching one of patterns. An empty list reports all.
func WithEnvironmentInclude(patterns []string) Option {
	return func(f *DefaultFactory) {
		f.EnvironmentInclude = patterns
	}
}

// WithEnvironmentExclude drops environment variables matching any of patterns.
func WithEnvironmentExclude(patterns []string) Option {
	return func(f *DefaultFactory) {
		f.EnvironmentExclude = patterns
	}
}

// DefaultFactory creates collectors backed by a telemetry provider.
type DefaultFactory struct {
	Provider           telemetry.Provider
	EnvironmentInclude []string
	EnvironmentExclude []string
}

// NewDefaultFactory creates a factory for provider with the given options.
func NewDefaultFactory(provider telemetry.Provider, opts ...Option) *DefaultFactory {
	f := &DefaultFactory{
		Provider:           provider,
		EnvironmentExclude: DefaultEnvironmentExclude,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// CreateSystemCollector creates the System collector.
func (f *DefaultFactory) CreateSystemCollector() Collector {
	return &SystemCollector{Provider: f.Provider}
}

// CreateHardwareCollector creates the Hardware collector.
func (f *DefaultFactory) CreateHardwareCollector() Collector {
	return &HardwareCollector{Provider: f.Provider}
}

// CreateNetworkCollector creates the Network collector.
func (f *DefaultFactory) CreateNetworkCollector() Collector {
	return &NetworkCollector{Provider: f.Provider}
}

// CreateSecurityCollector creates the Security collector.
func (f *DefaultFactory) CreateSecurityCollector() Collector {
	return &SecurityCollector{Provider: f.Provider}
}

// CreatePerformanceCollector creates the Performance collector.
func (f *DefaultFactory) CreatePerformanceCollector() Collector {
	return &PerformanceCollector{Provider: f.Provider}
}

// CreateServicesCollector creates the Services collector.
func (f *DefaultFactory) CreateServicesCollector() Collector {
	return &ServicesCollector{Provider: f.Provider}
}

// CreateUserCollector creates the User collector.
func (f *DefaultFactory) CreateUserCollector() Collector {
	return &UserCollector{Provider: f.Provider}
}

// CreateEnvironmentCollector creates the Environment collector.
func (f *DefaultFactory) CreateEnvironmentCollector() Collector {
	return &EnvironmentCollector{
		Provider: f.Provider,
		Include:  f.EnvironmentInclude,
		Exclude:  f.EnvironmentExclude,
	}
}

// CreateRuntimeCollector creates the Runtime collector.
func (f *DefaultFactory) CreateRuntimeCollector() Collector {
	return &RuntimeCollector{Provider: f.Provider}
}

// CreateFirmwareCollector creates the Firmware collector.
func (f *DefaultFactory) CreateFirmwareCollector() Collector {
	return &FirmwareCollector{Provider: f.Provider}
}

// NewDefaultRegistry registers the ten standard collectors in canonical
// order. Only Firmware requires elevated privilege.
func NewDefaultRegistry(f Factory) (*Registry, error) {
	specs := []Spec{
		{Name: CategorySystem, Collector: f.CreateSystemCollector()},
		{Name: CategoryHardware, Collector: f.CreateHardwareCollector()},
		{Name: CategoryNetwork, Collector: f.CreateNetworkCollector()},
		{Name: CategorySecurity, Collector: f.CreateSecurityCollector()},
		{Name: CategoryPerformance, Collector: f.CreatePerformanceCollector()},
		{Name: CategoryServices, Collector: f.CreateServicesCollector()},
		{Name: CategoryUser, Collector: f.CreateUserCollector()},
		{Name: CategoryEnvironment, Collector: f.CreateEnvironmentCollector()},
		{Name: CategoryRuntime, Collector: f.CreateRuntimeCollector()},
		{Name: CategoryFirmware, RequiresElevation: true, Collector: f.CreateFirmwareCollector()},
	}

	r := NewRegistry()
	for _, s := range specs {
		if err := r.Register(s); err != nil {
			return nil, err
		}
	}
	return r, nil
}
