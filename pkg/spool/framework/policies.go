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

package framework

import "github.com/atharv894/Job-Spooler-code/pkg/spool/types"

// JobComparatorFunc defines the function signature for comparing two `types.Job` values to determine their relative
// service order.
//
// An implementation of this function determines if job 'a' should be served before job 'b'. It returns true if 'a' is
// of higher precedence, and false otherwise. The specific criteria for "higher precedence" (e.g., fewer pages, lower
// priority value) are defined by the `OrderingPolicy` that vends this function via a `JobComparator`.
type JobComparatorFunc func(a, b types.Job) bool

// JobComparator encapsulates the comparison logic of one ordering policy. It is the definitive source of ordering
// truth for that policy's service order.
type JobComparator interface {
	// Func returns the core comparison logic as a `JobComparatorFunc`.
	//
	// Conformance: MUST NOT return nil. The returned function MUST describe a strict weak order: irreflexive, and
	// returning false for both argument orders when two jobs rank equally.
	Func() JobComparatorFunc

	// ScoreType returns a string descriptor that defines the semantic meaning and domain of the comparison logic.
	// The string makes the ordering scheme human-readable for debugging and report rendering.
	//
	// Examples: "submission_id_asc", "page_count_asc".
	//
	// Conformance: MUST return a non-empty, meaningful string that describes the domain of comparison.
	ScoreType() string
}

// OrderingPolicy decides the order in which pending jobs are serviced by the single printer.
//
// Policies are non-preemptive and purely relational: a policy never inspects the clock and never mutates jobs; it only
// ranks them. The engine applies a policy to a snapshot of the job set via `Order` before simulation begins, and the
// resulting order is fixed for the whole run.
//
// Conformance: implementations MUST be stateless and goroutine-safe, and MUST break ties on equal keys by submission
// order (ascending `types.Job.ID`) so that every policy degrades to FCFS when its key is uniform.
type OrderingPolicy interface {
	// Name returns the registered name of the policy.
	Name() string

	// Comparator returns the `JobComparator` that defines this policy's service order.
	Comparator() JobComparator
}
