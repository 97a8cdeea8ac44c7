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

package types

import "github.com/google/uuid"

// Job represents a single print job pending service.
//
// A `Job` is a value type: once minted by a successful `registry.JobRegistry.Submit()`, it is never mutated. All
// "arrivals" are modeled at time 0, so a `Job` carries no arrival timestamp; its `ID` doubles as the submission-order
// key and the universal tie-breaker for ordering policies.
type Job struct {
	// ID is the unique, strictly increasing submission sequence number, starting at 1.
	// IDs are assigned only to accepted submissions and are never reused.
	ID uint64

	// Pages is the job's service demand in pages, the analogue of CPU burst time.
	// Invariant: Pages > 0 for every accepted job (enforced at submission, assumed everywhere else).
	Pages int

	// Priority is the job's precedence class. Lower values are served first.
	// Invariant: Priority > 0 for every accepted job.
	Priority int
}

// JobMetrics is the simulated timing outcome for a single job under one policy ordering.
type JobMetrics struct {
	Job

	// WaitTime is the time the job sat in the queue before service started, measured in page-units from time 0.
	// It equals the total pages of every job served before it.
	WaitTime int

	// TurnaroundTime is the time from submission (time 0) to completion: WaitTime + Pages.
	TurnaroundTime int
}

// MetricsReport is the full outcome of one simulation run.
//
// A report is ephemeral: it is created fresh by each `simulator.Run()` call, handed to the rendering collaborator, and
// never persisted. The same ordered input always yields an identical report (modulo RunID).
type MetricsReport struct {
	// RunID uniquely identifies this simulation run for log and metric correlation.
	RunID uuid.UUID

	// Policy is the registered name of the ordering policy that produced the service order.
	Policy string

	// Jobs holds the per-job outcomes in service order.
	Jobs []JobMetrics

	// AvgWaitTime is the arithmetic mean of the per-job wait times.
	AvgWaitTime float64

	// AvgTurnaroundTime is the arithmetic mean of the per-job turnaround times.
	AvgTurnaroundTime float64

	// Makespan is the clock value after the last job finishes. Because the printer never idles, it equals the page sum
	// of the input and is invariant across policies over the same job set.
	Makespan int
}

// Len returns the number of jobs covered by the report.
func (r *MetricsReport) Len() int {
	return len(r.Jobs)
}
