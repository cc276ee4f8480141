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
	"sort"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	dto "github.com/prometheus/client_model/go"
)

const metricPrefix = "hostreport_"

// Collector outcomes.
const (
	outcomeOK      = "ok"
	outcomeGated   = "gated"
	outcomeFailed  = "failed"
	outcomeTimeout = "timeout"
)

var (
	collectorDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "hostreport_collector_duration_seconds",
			Help:    "Time taken by individual collectors",
			Buckets: []float64{0.01, 0.1, 0.5, 1, 5, 10, 30},
		},
		[]string{"collector"},
	)

	collectorTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "hostreport_collector_total",
			Help: "Total number of collector runs by outcome",
		},
		[]string{"collector", "outcome"}, // ok, gated, failed or timeout
	)

	reportCategories = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "hostreport_report_categories",
			Help: "Number of categories in the last built report",
		},
	)

	reportBuildDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "hostreport_report_build_duration_seconds",
			Help:    "Time taken to build a complete report",
			Buckets: []float64{0.5, 1, 5, 10, 30, 60, 120},
		},
	)
)

// logMetrics writes the hostreport series gathered from g at debug level.
func logMetrics(ctx context.Context, g prometheus.Gatherer) {
	if !slog.Default().Enabled(ctx, slog.LevelDebug) {
		return
	}

	families, err := g.Gather()
	if err != nil {
		slog.Warn("failed to gather metrics", slog.String("error", err.Error()))
		return
	}

	series := summarizeMetrics(families)
	names := make([]string, 0, len(series))
	for name := range series {
		names = append(names, name)
	}
	sort.Strings(names)

	attrs := make([]any, 0, len(names))
	for _, name := range names {
		attrs = append(attrs, slog.Float64(name, series[name]))
	}
	slog.DebugContext(ctx, "report metrics", attrs...)
}

// summarizeMetrics flattens the hostreport families into series keyed by
// name and labels. Histograms contribute their _count and _sum.
func summarizeMetrics(families []*dto.MetricFamily) map[string]float64 {
	out := make(map[string]float64)
	for _, mf := range families {
		name := mf.GetName()
		if !strings.HasPrefix(name, metricPrefix) {
			continue
		}
		for _, m := range mf.GetMetric() {
			labels := seriesLabels(m.GetLabel())
			switch mf.GetType() {
			case dto.MetricType_COUNTER:
				out[name+labels] = m.GetCounter().GetValue()
			case dto.MetricType_GAUGE:
				out[name+labels] = m.GetGauge().GetValue()
			case dto.MetricType_HISTOGRAM:
				out[name+"_count"+labels] = float64(m.GetHistogram().GetSampleCount())
				out[name+"_sum"+labels] = m.GetHistogram().GetSampleSum()
			}
		}
	}
	return out
}

func seriesLabels(pairs []*dto.LabelPair) string {
	if len(pairs) == 0 {
		return ""
	}
	parts := make([]string, 0, len(pairs))
	for _, lp := range pairs {
		parts = append(parts, fmt.Sprintf("%s=%q", lp.GetName(), lp.GetValue()))
	}
	return "{" + strings.Join(parts, ",") + "}"
}
