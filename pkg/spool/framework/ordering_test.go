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
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/atharv894/Job-Spooler-code/pkg/spool/types"
)

// pagesPolicy orders by ascending page count without a tie-break, to expose the stability of the sort itself.
type pagesPolicy struct{}

func (p *pagesPolicy) Name() string { return "test-pages" }
func (p *pagesPolicy) Comparator() JobComparator {
	return &pagesComparator{}
}

type pagesComparator struct{}

func (c *pagesComparator) Func() JobComparatorFunc {
	return func(a, b types.Job) bool { return a.Pages < b.Pages }
}
func (c *pagesComparator) ScoreType() string { return "test_page_count_asc" }

func TestOrder_DoesNotMutateInput(t *testing.T) {
	t.Parallel()
	jobs := []types.Job{
		{ID: 1, Pages: 30, Priority: 1},
		{ID: 2, Pages: 10, Priority: 2},
		{ID: 3, Pages: 20, Priority: 3},
	}
	original := make([]types.Job, len(jobs))
	copy(original, jobs)

	ordered := Order(jobs, &pagesPolicy{})

	assert.Empty(t, cmp.Diff(original, jobs), "input slice must remain untouched")
	require.Len(t, ordered, len(jobs))
	assert.Equal(t, uint64(2), ordered[0].ID)
	assert.Equal(t, uint64(3), ordered[1].ID)
	assert.Equal(t, uint64(1), ordered[2].ID)
}

func TestOrder_StableOnEqualKeys(t *testing.T) {
	t.Parallel()
	jobs := []types.Job{
		{ID: 5, Pages: 10, Priority: 1},
		{ID: 9, Pages: 10, Priority: 2},
		{ID: 2, Pages: 10, Priority: 3},
	}

	ordered := Order(jobs, &pagesPolicy{})

	// The comparator has no tie-break, so the stable sort must keep input order.
	require.Len(t, ordered, 3)
	assert.Equal(t, []uint64{5, 9, 2}, []uint64{ordered[0].ID, ordered[1].ID, ordered[2].ID})
}

func TestOrder_EdgeCases(t *testing.T) {
	t.Parallel()

	t.Run("EmptyInput", func(t *testing.T) {
		t.Parallel()
		ordered := Order(nil, &pagesPolicy{})
		assert.NotNil(t, ordered)
		assert.Empty(t, ordered)
	})

	t.Run("SingleJob", func(t *testing.T) {
		t.Parallel()
		job := types.Job{ID: 1, Pages: 10, Priority: 1}
		ordered := Order([]types.Job{job}, &pagesPolicy{})
		require.Len(t, ordered, 1)
		assert.Equal(t, job, ordered[0])
	})
}
