/*
Copyright 2025 The Job-Spooler Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

// Package metrics provides the Prometheus instrumentation for the spooling system.
package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/atharv894/Job-Spooler-code/pkg/spool/types"
)

const (
	// SpoolSubsystem is the Prometheus subsystem shared by all spool metrics.
	SpoolSubsystem = "spool"

	// --- Rejection reason label values ---
	ReasonValidation = "validation"
	ReasonCapacity   = "capacity"
)

var (
	// PolicyLabels is the label set for per-policy metrics.
	PolicyLabels = []string{"policy"}

	jobsSubmittedTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Subsystem: SpoolSubsystem,
			Name:      "jobs_submitted_total",
			Help:      "Counter of print jobs accepted into the queue.",
		},
	)

	jobsRejectedTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Subsystem: SpoolSubsystem,
			Name:      "jobs_rejected_total",
			Help:      "Counter of rejected print job submissions broken out by rejection reason.",
		},
		[]string{"reason"},
	)

	queueDepth = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Subsystem: SpoolSubsystem,
			Name:      "queue_depth",
			Help:      "Current number of jobs pending in the print queue.",
		},
	)

	simulationsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Subsystem: SpoolSubsystem,
			Name:      "simulations_total",
			Help:      "Counter of completed simulation runs broken out by ordering policy.",
		},
		PolicyLabels,
	)

	simulationAvgWaitTime = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Subsystem: SpoolSubsystem,
			Name:      "simulation_avg_wait_time",
			Help:      "Average wait time (in page-units) of the most recent simulation run per ordering policy.",
		},
		PolicyLabels,
	)

	simulationAvgTurnaroundTime = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Subsystem: SpoolSubsystem,
			Name:      "simulation_avg_turnaround_time",
			Help:      "Average turnaround time (in page-units) of the most recent simulation run per ordering policy.",
		},
		PolicyLabels,
	)
)

var registerMetrics sync.Once

// Register registers all spool metrics with the given registerer, at most once per process.
func Register(registerer prometheus.Registerer) {
	registerMetrics.Do(func() {
		registerer.MustRegister(jobsSubmittedTotal)
		registerer.MustRegister(jobsRejectedTotal)
		registerer.MustRegister(queueDepth)
		registerer.MustRegister(simulationsTotal)
		registerer.MustRegister(simulationAvgWaitTime)
		registerer.MustRegister(simulationAvgTurnaroundTime)
	})
}

// RecordJobSubmitted counts one accepted submission.
func RecordJobSubmitted() {
	jobsSubmittedTotal.Inc()
}

// RecordJobRejected counts one rejected submission under the given reason
// (`ReasonValidation` or `ReasonCapacity`).
func RecordJobRejected(reason string) {
	jobsRejectedTotal.WithLabelValues(reason).Inc()
}

// SetQueueDepth records the current number of pending jobs.
func SetQueueDepth(depth int) {
	queueDepth.Set(float64(depth))
}

// RecordSimulation counts one completed simulation run and records its aggregate outcomes.
func RecordSimulation(report *types.MetricsReport) {
	simulationsTotal.WithLabelValues(report.Policy).Inc()
	simulationAvgWaitTime.WithLabelValues(report.Policy).Set(report.AvgWaitTime)
	simulationAvgTurnaroundTime.WithLabelValues(report.Policy).Set(report.AvgTurnaroundTime)
}
