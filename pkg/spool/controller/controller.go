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

// Package controller provides the `SpoolController`, the single entry point collaborators (CLI, tests, service
// handlers) use to drive the spooling system.
//
// The controller composes the three engine layers — the job registry, the ordering policy framework, and the timeline
// simulator — behind the operations the system exposes: submit a job, list the pending jobs, and run a simulation
// under a named policy. It owns no scheduling logic of its own.
package controller

import (
	"errors"
	"fmt"

	"github.com/go-logr/logr"

	"github.com/atharv894/Job-Spooler-code/pkg/spool/framework"
	_ "github.com/atharv894/Job-Spooler-code/pkg/spool/framework/plugins/ordering" // register the built-in policies
	"github.com/atharv894/Job-Spooler-code/pkg/spool/metrics"
	"github.com/atharv894/Job-Spooler-code/pkg/spool/registry"
	"github.com/atharv894/Job-Spooler-code/pkg/spool/simulator"
	"github.com/atharv894/Job-Spooler-code/pkg/spool/types"
	logutil "github.com/atharv894/Job-Spooler-code/pkg/spool/util/logging"
)

// SpoolController exposes the spooling engine's external operations over a single job registry.
//
// All methods are goroutine-safe because the registry is; a `RunSimulation` call observes one consistent snapshot of
// the job set for its whole snapshot→order→simulate pipeline.
type SpoolController struct {
	registry *registry.JobRegistry
	logger   logr.Logger
}

// NewSpoolController creates a controller over a fresh `registry.JobRegistry` built from the given config.
func NewSpoolController(config registry.Config, logger logr.Logger) (*SpoolController, error) {
	reg, err := registry.NewJobRegistry(config, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize job registry: %w", err)
	}
	return &SpoolController{
		registry: reg,
		logger:   logger.WithName("spool-controller"),
	}, nil
}

// SubmitJob submits a new print job with the given page count and priority.
//
// On rejection the returned error wraps `types.ErrRejected`; `errors.Is` against `types.ErrInvalidJob` or
// `types.ErrQueueAtCapacity` identifies the concrete reason.
func (c *SpoolController) SubmitJob(pages, priority int) (types.Job, error) {
	job, err := c.registry.Submit(pages, priority)
	if err != nil {
		switch {
		case errors.Is(err, types.ErrInvalidJob):
			metrics.RecordJobRejected(metrics.ReasonValidation)
		case errors.Is(err, types.ErrQueueAtCapacity):
			metrics.RecordJobRejected(metrics.ReasonCapacity)
		}
		c.logger.V(logutil.DEBUG).Info("Job submission rejected", "pages", pages, "priority", priority, "reason", err)
		return types.Job{}, err
	}

	metrics.RecordJobSubmitted()
	metrics.SetQueueDepth(c.registry.Len())
	return job, nil
}

// ListJobs returns the pending jobs in submission order, for display. The caller owns the returned slice.
func (c *SpoolController) ListJobs() []types.Job {
	return c.registry.Snapshot()
}

// QueueCapacity returns the registry's configured job bound.
func (c *SpoolController) QueueCapacity() int {
	return c.registry.Capacity()
}

// RunSimulation evaluates the named ordering policy against the current job set and returns its metrics report.
//
// The registry is never reordered: the policy produces a new ordered view of a snapshot, and the simulator replays
// that view. An unknown policy name is an error; an empty queue yields an error wrapping `types.ErrEmptyQueue`.
func (c *SpoolController) RunSimulation(policyName string) (*types.MetricsReport, error) {
	policy, err := framework.NewPolicyFromName(framework.RegisteredPolicyName(policyName))
	if err != nil {
		return nil, fmt.Errorf("cannot run simulation: %w", err)
	}

	ordered := framework.Order(c.registry.Snapshot(), policy)
	report, err := simulator.Run(policy.Name(), ordered)
	if err != nil {
		return nil, err
	}

	metrics.RecordSimulation(report)
	c.logger.V(logutil.VERBOSE).Info("Simulation completed",
		"runID", report.RunID,
		"policy", report.Policy,
		"jobs", report.Len(),
		"avgWaitTime", report.AvgWaitTime,
		"avgTurnaroundTime", report.AvgTurnaroundTime,
		"makespan", report.Makespan,
	)
	return report, nil
}
