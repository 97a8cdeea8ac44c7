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

// Package simulator derives timing metrics from an ordered job sequence by replaying it against a single printer.
//
// The simulator is the metrics engine of the system and deliberately knows nothing about policies: ordering is decided
// entirely upstream (see `framework.Order`), and the simulator treats its input order as final.
package simulator

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/atharv894/Job-Spooler-code/pkg/spool/types"
)

// Run replays the given jobs, in the given order, against a single printer that becomes available at time 0, and
// returns the resulting `types.MetricsReport` tagged with the policy name that produced the order.
//
// The timeline is a single O(n) pass over an integer clock: each job waits exactly as long as the total pages of every
// job before it (all submissions are modeled at time 0), its turnaround is that wait plus its own pages, and the clock
// then advances past it. Averages are the exact arithmetic means of the per-job values.
//
// Run is a pure function of its input: it never reorders or mutates the jobs, and the same ordered sequence always
// yields the same report (modulo the fresh RunID).
//
// An empty sequence yields no report and an error wrapping `types.ErrEmptyQueue`.
func Run(policy string, ordered []types.Job) (*types.MetricsReport, error) {
	if len(ordered) == 0 {
		return nil, fmt.Errorf("cannot simulate %q over zero jobs: %w", policy, types.ErrEmptyQueue)
	}

	report := &types.MetricsReport{
		RunID:  uuid.New(),
		Policy: policy,
		Jobs:   make([]types.JobMetrics, 0, len(ordered)),
	}

	var clock int
	var totalWait, totalTurnaround int
	for _, job := range ordered {
		wait := clock
		turnaround := wait + job.Pages
		clock += job.Pages

		totalWait += wait
		totalTurnaround += turnaround
		report.Jobs = append(report.Jobs, types.JobMetrics{
			Job:            job,
			WaitTime:       wait,
			TurnaroundTime: turnaround,
		})
	}

	n := float64(len(ordered))
	report.AvgWaitTime = float64(totalWait) / n
	report.AvgTurnaroundTime = float64(totalTurnaround) / n
	report.Makespan = clock
	return report, nil
}
