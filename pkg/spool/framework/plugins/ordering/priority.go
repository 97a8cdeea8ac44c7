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

// PriorityPolicyName represents an ordering policy that implements non-preemptive Priority scheduling.
//
// It serves the job with the lowest priority value first (lower value = higher precedence, e.g. 1=Faculty, 2=Student,
// 3=Guest). Jobs within the same priority class are served in submission order, so the policy is starvation-prone only
// across classes, never within one.
const PriorityPolicyName = "priority"

// PriorityScoreType describes the comparison domain of the Priority comparator.
const PriorityScoreType = "priority_value_asc"

func init() {
	framework.MustRegisterPolicy(framework.RegisteredPolicyName(PriorityPolicyName),
		func() (framework.OrderingPolicy, error) {
			return newPriority(), nil
		})
}

// priority is the internal implementation of the Priority policy.
// See the documentation for the exported `PriorityPolicyName` constant for user-facing behavior.
type priority struct {
	comparator framework.JobComparator
}

var _ framework.OrderingPolicy = &priority{}

// newPriority creates a new `priority` policy instance.
func newPriority() *priority {
	return &priority{comparator: &priorityValueComparator{}}
}

// Name returns the name of the policy.
func (p *priority) Name() string {
	return PriorityPolicyName
}

// Comparator returns a `framework.JobComparator` based on priority value.
func (p *priority) Comparator() framework.JobComparator {
	return p.comparator
}

// --- priorityValueComparator ---

// priorityValueComparator implements `framework.JobComparator` for Priority logic.
// It prioritizes jobs with lower priority values, breaking ties by submission order.
type priorityValueComparator struct{}

// Func returns the comparison logic.
// Priority orders by priority value (lowest first), using submission order as the tie-breaker.
func (c *priorityValueComparator) Func() framework.JobComparatorFunc {
	return func(a, b types.Job) bool {
		if a.Priority != b.Priority {
			return a.Priority < b.Priority
		}
		// Same priority class: First-Come, First-Served.
		return a.ID < b.ID
	}
}

// ScoreType returns a string descriptor for the comparison logic.
func (c *priorityValueComparator) ScoreType() string {
	return PriorityScoreType
}
