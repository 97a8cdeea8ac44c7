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

package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/atharv894/Job-Spooler-code/pkg/spool/types"
)

func TestRegister_IsIdempotent(t *testing.T) {
	registry := prometheus.NewRegistry()
	Register(registry)
	// A second call must be a no-op rather than a MustRegister panic.
	assert.NotPanics(t, func() { Register(registry) })
	assert.NotPanics(t, func() { Register(prometheus.NewRegistry()) })
}

func TestRecorders(t *testing.T) {
	Register(prometheus.NewRegistry())

	submittedBefore := testutil.ToFloat64(jobsSubmittedTotal)
	RecordJobSubmitted()
	assert.Equal(t, submittedBefore+1, testutil.ToFloat64(jobsSubmittedTotal))

	validationBefore := testutil.ToFloat64(jobsRejectedTotal.WithLabelValues(ReasonValidation))
	capacityBefore := testutil.ToFloat64(jobsRejectedTotal.WithLabelValues(ReasonCapacity))
	RecordJobRejected(ReasonValidation)
	RecordJobRejected(ReasonCapacity)
	assert.Equal(t, validationBefore+1, testutil.ToFloat64(jobsRejectedTotal.WithLabelValues(ReasonValidation)))
	assert.Equal(t, capacityBefore+1, testutil.ToFloat64(jobsRejectedTotal.WithLabelValues(ReasonCapacity)))

	SetQueueDepth(7)
	assert.Equal(t, 7.0, testutil.ToFloat64(queueDepth))

	report := &types.MetricsReport{
		Policy:            "fcfs",
		AvgWaitTime:       25.0 / 3.0,
		AvgTurnaroundTime: 20.0,
	}
	simulationsBefore := testutil.ToFloat64(simulationsTotal.WithLabelValues("fcfs"))
	RecordSimulation(report)
	require.Equal(t, simulationsBefore+1, testutil.ToFloat64(simulationsTotal.WithLabelValues("fcfs")))
	assert.InDelta(t, 25.0/3.0, testutil.ToFloat64(simulationAvgWaitTime.WithLabelValues("fcfs")), 1e-9)
	assert.InDelta(t, 20.0, testutil.ToFloat64(simulationAvgTurnaroundTime.WithLabelValues("fcfs")), 1e-9)
}
