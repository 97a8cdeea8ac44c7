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

package ordering

import (
	"github.com/atharv894/Job-Spooler-code/pkg/spool/framework"
	"github.com/atharv894/Job-Spooler-code/pkg/spool/types"
)

// SJFPolicyName represents an ordering policy that implements a non-preemptive Shortest Job First strategy.
//
// It serves the job with the smallest page count first, minimizing average wait time over the pending set. Jobs with
// equal page counts are served in submission order. The order is fixed before simulation begins and never revised
// mid-run: with all arrivals at time 0, no shorter job can "arrive" while a longer one is printing.
const SJFPolicyName = "sjf"

// SJFScoreType describes the comparison domain of the SJF comparator.
const SJFScoreType = "page_count_asc"

func init() {
	framework.MustRegisterPolicy(framework.RegisteredPolicyName(SJFPolicyName),
		func() (framework.OrderingPolicy, error) {
			return newSJF(), nil
		})
}

// sjf is the internal implementation of the SJF policy.
// See the documentation for the exported `SJFPolicyName` constant for user-facing behavior.
type sjf struct {
	comparator framework.JobComparator
}

var _ framework.OrderingPolicy = &sjf{}

// newSJF creates a new `sjf` policy instance.
func newSJF() *sjf {
	return &sjf{comparator: &pageCountComparator{}}
}

// Name returns the name of the policy.
func (p *sjf) Name() string {
	return SJFPolicyName
}

// Comparator returns a `framework.JobComparator` based on page count.
func (p *sjf) Comparator() framework.JobComparator {
	return p.comparator
}

// --- pageCountComparator ---

// pageCountComparator implements `framework.JobComparator` for SJF logic.
// It prioritizes jobs with fewer pages, breaking ties by submission order.
type pageCountComparator struct{}

// Func returns the comparison logic.
// SJF orders by page count (fewest first), using submission order as the tie-breaker.
func (c *pageCountComparator) Func() framework.JobComparatorFunc {
	return func(a, b types.Job) bool {
		if a.Pages != b.Pages {
			return a.Pages < b.Pages
		}
		// Same page count: First-Come, First-Served.
		return a.ID < b.ID
	}
}

// ScoreType returns a string descriptor for the comparison logic.
func (c *pageCountComparator) ScoreType() string {
	return SJFScoreType
}
