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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/atharv894/Job-Spooler-code/pkg/spool/types"
)

func TestFCFS_Name(t *testing.T) {
	t.Parallel()
	policy := newFCFS()
	assert.Equal(t, FCFSPolicyName, policy.Name())
}

func TestSubmissionOrderComparator_Func(t *testing.T) {
	t.Parallel()
	comparator := &submissionOrderComparator{}
	compareFunc := comparator.Func()
	require.NotNil(t, compareFunc)

	jobA := types.Job{ID: 1, Pages: 50, Priority: 3}
	jobB := types.Job{ID: 2, Pages: 5, Priority: 1}

	testCases := []struct {
		name     string
		job1     types.Job
		job2     types.Job
		expected bool // true if job1 is served before job2
	}{
		{"earlier submission served first", jobA, jobB, true},
		{"later submission served second", jobB, jobA, false},
		{"a job never precedes itself", jobA, jobA, false},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.expected, compareFunc(tc.job1, tc.job2))
		})
	}
}

func TestSubmissionOrderComparator_ScoreType(t *testing.T) {
	t.Parallel()
	comparator := &submissionOrderComparator{}
	assert.Equal(t, FCFSScoreType, comparator.ScoreType())
}
