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

// FCFSPolicyName represents an ordering policy that implements a First-Come, First-Served strategy.
//
// It serves jobs strictly in submission order. Because every job is modeled as arriving at time 0, "first come" is
// defined by the submission sequence number (`types.Job.ID`), which the registry assigns in strictly increasing order.
// Applying this policy to a registry snapshot is therefore the identity permutation.
const FCFSPolicyName = "fcfs"

// FCFSScoreType describes the comparison domain of the FCFS comparator.
const FCFSScoreType = "submission_id_asc"

func init() {
	framework.MustRegisterPolicy(framework.RegisteredPolicyName(FCFSPolicyName),
		func() (framework.OrderingPolicy, error) {
			return newFCFS(), nil
		})
}

// fcfs is the internal implementation of the FCFS policy.
// See the documentation for the exported `FCFSPolicyName` constant for user-facing behavior.
type fcfs struct {
	comparator framework.JobComparator
}

var _ framework.OrderingPolicy = &fcfs{}

// newFCFS creates a new `fcfs` policy instance.
func newFCFS() *fcfs {
	return &fcfs{comparator: &submissionOrderComparator{}}
}

// Name returns the name of the policy.
func (p *fcfs) Name() string {
	return FCFSPolicyName
}

// Comparator returns a `framework.JobComparator` based on submission order.
func (p *fcfs) Comparator() framework.JobComparator {
	return p.comparator
}

// --- submissionOrderComparator ---

// submissionOrderComparator implements `framework.JobComparator` for FCFS logic.
// It prioritizes jobs with lower submission sequence numbers.
type submissionOrderComparator struct{}

// Func returns the comparison logic.
// FCFS orders by submission sequence number (lowest ID first).
func (c *submissionOrderComparator) Func() framework.JobComparatorFunc {
	return func(a, b types.Job) bool {
		return a.ID < b.ID
	}
}

// ScoreType returns a string descriptor for the comparison logic.
func (c *submissionOrderComparator) ScoreType() string {
	return FCFSScoreType
}
