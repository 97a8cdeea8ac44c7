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

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/atharv894/Job-Spooler-code/pkg/spool/types"
)

// stubPolicy is a minimal `OrderingPolicy` for exercising the registration mechanics.
type stubPolicy struct {
	name string
}

func (p *stubPolicy) Name() string { return p.name }
func (p *stubPolicy) Comparator() JobComparator {
	return &stubComparator{}
}

type stubComparator struct{}

func (c *stubComparator) Func() JobComparatorFunc {
	return func(a, b types.Job) bool { return a.ID < b.ID }
}
func (c *stubComparator) ScoreType() string { return "stub_id_asc" }

func TestMustRegisterPolicy_DuplicatePanics(t *testing.T) {
	t.Parallel()
	const name RegisteredPolicyName = "registry-test-duplicate"

	MustRegisterPolicy(name, func() (OrderingPolicy, error) {
		return &stubPolicy{name: string(name)}, nil
	})
	assert.Panics(t, func() {
		MustRegisterPolicy(name, func() (OrderingPolicy, error) {
			return &stubPolicy{name: string(name)}, nil
		})
	}, "registering the same name twice must panic")
}

func TestNewPolicyFromName(t *testing.T) {
	t.Parallel()
	const name RegisteredPolicyName = "registry-test-lookup"

	MustRegisterPolicy(name, func() (OrderingPolicy, error) {
		return &stubPolicy{name: string(name)}, nil
	})

	policy, err := NewPolicyFromName(name)
	require.NoError(t, err)
	assert.Equal(t, string(name), policy.Name())

	_, err = NewPolicyFromName("registry-test-unknown")
	require.Error(t, err, "an unregistered name must fail")
}

func TestRegisteredPolicyNames_SortedAndComplete(t *testing.T) {
	t.Parallel()
	const name RegisteredPolicyName = "registry-test-listing"

	MustRegisterPolicy(name, func() (OrderingPolicy, error) {
		return &stubPolicy{name: string(name)}, nil
	})

	names := RegisteredPolicyNames()
	assert.Contains(t, names, string(name))
	assert.IsIncreasing(t, names, "names must be listed in lexical order")
}
