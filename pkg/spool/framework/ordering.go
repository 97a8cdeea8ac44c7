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

import (
	"sort"

	"github.com/atharv894/Job-Spooler-code/pkg/spool/types"
)

// Order returns the given jobs arranged into the service order defined by the policy's comparator.
//
// The input is never mutated: the result is a freshly allocated slice, always a permutation of the input. The sort is
// stable, so jobs that rank equally under the comparator keep their relative input order; combined with the
// submission-order tie-break every conforming policy already applies, the result is fully deterministic.
//
// An empty or nil input yields an empty slice.
func Order(jobs []types.Job, policy OrderingPolicy) []types.Job {
	ordered := make([]types.Job, len(jobs))
	copy(ordered, jobs)

	less := policy.Comparator().Func()
	sort.SliceStable(ordered, func(i, j int) bool {
		return less(ordered[i], ordered[j])
	})
	return ordered
}
