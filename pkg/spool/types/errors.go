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

import (
	"errors"
)

// --- High-Level Outcome Errors ---

var (
	// ErrRejected is a sentinel error indicating a submission was refused by the `registry.JobRegistry` *before* any
	// state change. Errors returned by `JobRegistry.Submit()` that signify rejection wrap this error; a rejected
	// submission never consumes a job ID and never alters the job set.
	//
	// Callers should use `errors.Is(err, ErrRejected)` to check for this general class of failure.
	ErrRejected = errors.New("job submission rejected")
)

// --- Submission Rejection Errors ---

// The following errors identify the concrete reason a submission was refused. When returned by
// `JobRegistry.Submit()`, these are wrapped by `ErrRejected`.
var (
	// ErrInvalidJob indicates that a submission carried a non-positive page count or priority.
	ErrInvalidJob = errors.New("invalid job parameters")

	// ErrQueueAtCapacity indicates that a submission could not be accepted because the registry's configured capacity
	// was met.
	ErrQueueAtCapacity = errors.New("print queue at capacity")
)

// --- Simulation Errors ---

var (
	// ErrEmptyQueue indicates that a simulation was requested over zero jobs. No report is produced; callers are
	// expected to check emptiness first or treat the failure as "nothing to simulate".
	ErrEmptyQueue = errors.New("print queue is empty")
)
