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

package aggregator

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/NVIDIA/hostreport/pkg/collector"
	"github.com/NVIDIA/hostreport/pkg/defaults"
	"github.com/NVIDIA/hostreport/pkg/errors"
	"github.com/NVIDIA/hostreport/pkg/header"
	"github.com/NVIDIA/hostreport/pkg/privilege"
	"github.com/NVIDIA/hostreport/pkg/report"
)

// Aggregator builds reports from the collectors of a registry.
type Aggregator struct {
	// Registry holds the collectors to run. It must not be empty.
	Registry *collector.Registry

	// Timeout bounds each collector. Zero uses defaults.CollectorTimeout.
	Timeout time.Duration

	// Version is recorded in the report metadata.
	Version string

	// Now returns the report timestamp. Nil uses time.Now.
	Now func() time.Time

	// Gatherer supplies the metrics logged after each build. Nil uses
	// prometheus.DefaultGatherer.
	Gatherer prometheus.Gatherer
}

// result is what a single collector run produced.
type result struct {
	category *report.Category
	err      error
}

// BuildReport runs every registered collector in order at the given privilege
// level and returns the assembled report. The only error is FATAL_STARTUP for
// a nil or empty registry.
func (a *Aggregator) BuildReport(ctx context.Context, level privilege.Level) (*report.Report, error) {
	if a.Registry.Len() == 0 {
		return nil, errors.New(errors.ErrCodeFatalStartup, "no collectors registered")
	}

	start := time.Now()
	defer func() {
		reportBuildDuration.Observe(time.Since(start).Seconds())

		g := a.Gatherer
		if g == nil {
			g = prometheus.DefaultGatherer
		}
		logMetrics(ctx, g)
	}()

	now := time.Now
	if a.Now != nil {
		now = a.Now
	}

	rep := report.New(
		header.WithMetadata(header.MetadataReportID, uuid.NewString()),
		header.WithMetadata(header.MetadataGeneratedAt, now().UTC().Format(time.RFC3339)),
		header.WithMetadata(header.MetadataPrivilege, level.String()),
	)
	if a.Version != "" {
		rep.Metadata[header.MetadataVersion] = a.Version
	}

	slog.Debug("building report",
		slog.String("privilege", level.String()),
		slog.Int("collectors", a.Registry.Len()))

	for _, spec := range a.Registry.Specs() {
		rep.Append(a.collect(ctx, spec, level))
	}

	reportCategories.Set(float64(len(rep.Categories)))

	slog.Debug("report complete",
		slog.Int("categories", len(rep.Categories)),
		slog.Int("degraded", rep.DegradedCount()))

	return rep, nil
}

// collect produces the category for spec. It never fails: every problem is
// folded into an Unavailable category named after the collector.
func (a *Aggregator) collect(ctx context.Context, spec collector.Spec, level privilege.Level) *report.Category {
	if spec.RequiresElevation && !level.IsElevated() {
		slog.Debug("skipping collector that requires elevation", slog.String("collector", spec.Name))
		collectorTotal.WithLabelValues(spec.Name, outcomeGated).Inc()
		return report.UnavailableCategory(spec.Name, report.ReasonRequiresElevation)
	}

	start := time.Now()
	defer func() {
		collectorDuration.WithLabelValues(spec.Name).Observe(time.Since(start).Seconds())
	}()

	timeout := a.Timeout
	if timeout <= 0 {
		timeout = defaults.CollectorTimeout
	}

	cat, err := run(ctx, spec, timeout)
	if err != nil {
		outcome := outcomeFailed
		if errors.IsCode(err, errors.ErrCodeTimeout) {
			outcome = outcomeTimeout
		}
		slog.Warn("collector unavailable",
			slog.String("collector", spec.Name),
			slog.String("outcome", outcome),
			slog.String("error", err.Error()))
		collectorTotal.WithLabelValues(spec.Name, outcome).Inc()
		return report.UnavailableCategory(spec.Name, report.ReasonFor(err))
	}

	cat.Name = spec.Name
	collectorTotal.WithLabelValues(spec.Name, outcomeOK).Inc()
	slog.Debug("collector complete",
		slog.String("collector", spec.Name),
		slog.Int("fields", cat.Len()),
		slog.Duration("took", time.Since(start)))
	return cat
}

// run invokes the collector in its own goroutine and waits for it or for the
// deadline, whichever comes first. A collector that ignores its context keeps
// running in the background until it returns; its result is discarded.
func run(ctx context.Context, spec collector.Spec, timeout time.Duration) (*report.Category, error) {
	cctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	done := make(chan result, 1)
	go func() {
		defer func() {
			if r := recover(); r != nil {
				done <- result{err: errors.NewWithContext(errors.ErrCodeInternal,
					fmt.Sprintf("collector panicked: %v", r),
					map[string]any{"collector": spec.Name})}
			}
		}()
		cat, err := spec.Collector.Collect(cctx)
		done <- result{category: cat, err: err}
	}()

	select {
	case res := <-done:
		if res.err != nil {
			return nil, res.err
		}
		if res.category == nil {
			return nil, errors.New(errors.ErrCodeInternal, "collector returned no data")
		}
		return res.category, nil
	case <-cctx.Done():
		if ctx.Err() != nil {
			return nil, errors.Wrap(errors.ErrCodeSourceUnavailable, "collection canceled", ctx.Err())
		}
		return nil, errors.NewWithContext(errors.ErrCodeTimeout,
			fmt.Sprintf("timed out after %s", timeout),
			map[string]any{"collector": spec.Name})
	}
}
