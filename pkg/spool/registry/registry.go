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

// Package registry provides the stateful side of the spooling system: the `JobRegistry`, which owns the pending job
// set and the submission sequence counter.
//
// The registry is the only mutable state in the system. Everything downstream (policies, the simulator) operates on
// immutable snapshots it hands out.
package registry

import (
	"fmt"
	"sync"

	"github.com/go-logr/logr"

	"github.com/atharv894/Job-Spooler-code/pkg/spool/types"
	logutil "github.com/atharv894/Job-Spooler-code/pkg/spool/util/logging"
)

// JobRegistry owns the set of submitted print jobs and assigns submission sequence numbers.
//
// # Consistency
//
// A single mutex guards the job set and the ID counter, so `Submit` is atomic: either a valid job is appended and an
// ID consumed, or nothing happens. Rejected submissions never increment the counter, keeping accepted IDs gapless.
//
// `Snapshot` returns a copy, so a caller's snapshot→order→simulate pipeline observes one consistent set regardless of
// concurrent submissions. Jobs are never mutated or deleted after acceptance; there is no cancellation.
type JobRegistry struct {
	logger logr.Logger

	mu       sync.Mutex
	jobs     []types.Job
	nextID   uint64
	capacity int
}

// NewJobRegistry creates a `JobRegistry` from the given config, which is validated and defaulted first.
func NewJobRegistry(config Config, logger logr.Logger) (*JobRegistry, error) {
	cfg, err := config.ValidateAndApplyDefaults()
	if err != nil {
		return nil, fmt.Errorf("invalid registry config: %w", err)
	}
	return &JobRegistry{
		logger:   logger.WithName("job-registry"),
		jobs:     make([]types.Job, 0, cfg.Capacity),
		nextID:   1,
		capacity: cfg.Capacity,
	}, nil
}

// Submit validates and appends a new job, assigning it the next submission sequence number.
//
// It returns the accepted job, or an error wrapping `types.ErrRejected`:
//   - wrapping `types.ErrInvalidJob` when pages or priority is not positive;
//   - wrapping `types.ErrQueueAtCapacity` when the registry is full.
//
// A rejected submission consumes no ID and leaves the job set untouched.
func (r *JobRegistry) Submit(pages, priority int) (types.Job, error) {
	if pages <= 0 {
		return types.Job{}, fmt.Errorf("page count must be positive, got %d: %w: %w",
			pages, types.ErrInvalidJob, types.ErrRejected)
	}
	if priority <= 0 {
		return types.Job{}, fmt.Errorf("priority must be positive, got %d: %w: %w",
			priority, types.ErrInvalidJob, types.ErrRejected)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if len(r.jobs) >= r.capacity {
		return types.Job{}, fmt.Errorf("capacity of %d jobs reached: %w: %w",
			r.capacity, types.ErrQueueAtCapacity, types.ErrRejected)
	}

	job := types.Job{
		ID:       r.nextID,
		Pages:    pages,
		Priority: priority,
	}
	r.nextID++
	r.jobs = append(r.jobs, job)

	r.logger.V(logutil.DEBUG).Info("Job accepted", "jobID", job.ID, "pages", job.Pages, "priority", job.Priority)
	return job, nil
}

// Snapshot returns a copy of the pending jobs in submission order.
// The caller owns the returned slice; mutating it has no effect on the registry.
func (r *JobRegistry) Snapshot() []types.Job {
	r.mu.Lock()
	defer r.mu.Unlock()

	snapshot := make([]types.Job, len(r.jobs))
	copy(snapshot, r.jobs)
	return snapshot
}

// Len returns the number of pending jobs.
func (r *JobRegistry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.jobs)
}

// Capacity returns the configured upper bound on outstanding jobs.
func (r *JobRegistry) Capacity() int {
	return r.capacity
}
