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

package runner

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/go-logr/logr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/atharv894/Job-Spooler-code/pkg/spool/controller"
	"github.com/atharv894/Job-Spooler-code/pkg/spool/registry"
)

// runSession scripts a full interactive session and returns its rendered output.
func runSession(t *testing.T, script string) string {
	t.Helper()

	spool, err := controller.NewSpoolController(registry.Config{}, logr.Discard())
	require.NoError(t, err)

	var out bytes.Buffer
	r := NewRunner().WithStreams(strings.NewReader(script), &out)
	require.NoError(t, r.commandLoop(context.Background(), spool))
	return out.String()
}

func TestCommandLoop_FullSession(t *testing.T) {
	t.Parallel()

	out := runSession(t, strings.Join([]string{
		"add 10 2",
		"add 5 1",
		"add 20 3",
		"list",
		"run fcfs",
		"run sjf",
		"quit",
	}, "\n"))

	assert.Contains(t, out, "Success: added job 1 (10 pages, priority 2).")
	assert.Contains(t, out, "Success: added job 3 (20 pages, priority 3).")
	assert.Contains(t, out, "Simulation results: fcfs")
	assert.Contains(t, out, "Average waiting time:    8.33")
	assert.Contains(t, out, "Average turnaround time: 20.00")
	assert.Contains(t, out, "Simulation results: sjf")
	assert.Contains(t, out, "Average waiting time:    6.67")
	assert.Contains(t, out, "Average turnaround time: 18.33")
	assert.Contains(t, out, "Exiting simulation. Goodbye!")
}

func TestCommandLoop_RecoverableErrors(t *testing.T) {
	t.Parallel()

	out := runSession(t, strings.Join([]string{
		"add 0 1",
		"run fcfs",
		"run round-robin",
		"bogus",
		"quit",
	}, "\n"))

	assert.Contains(t, out, "Error:", "invalid submission must be reported")
	assert.Contains(t, out, "Cannot run simulation:", "empty queue must be reported")
	assert.Contains(t, out, "Unknown command")
	assert.Contains(t, out, "Goodbye")
}

func TestCommandLoop_EndOfInputExitsCleanly(t *testing.T) {
	t.Parallel()

	out := runSession(t, "add 10 1\nlist\n")
	assert.Contains(t, out, "Success: added job 1")
	assert.NotContains(t, out, "Goodbye")
}

func TestCommandLoop_PoliciesListing(t *testing.T) {
	t.Parallel()

	out := runSession(t, "policies\nquit\n")
	assert.Contains(t, out, "fcfs")
	assert.Contains(t, out, "sjf")
	assert.Contains(t, out, "priority")
}
