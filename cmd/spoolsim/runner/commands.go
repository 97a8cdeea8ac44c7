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
	"bufio"
	"context"
	"fmt"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/atharv894/Job-Spooler-code/pkg/spool/controller"
	"github.com/atharv894/Job-Spooler-code/pkg/spool/framework"
	"github.com/atharv894/Job-Spooler-code/pkg/spool/types"
)

const helpText = `Commands:
  add <pages> <priority>   submit a print job (lower priority value = served first)
  list                     show the pending queue in submission order
  run <policy>             simulate the queue under an ordering policy
  policies                 list the available ordering policies
  help                     show this help
  quit                     exit`

// commandLoop reads commands line by line until `quit`, end of input, or context cancellation.
//
// Engine errors are rendered and the loop continues: every rejection the engine produces is recoverable at this
// boundary.
func (r *Runner) commandLoop(ctx context.Context, spool *controller.SpoolController) error {
	fmt.Fprintf(r.out, "Print job spooler simulation (capacity %d jobs). Type 'help' for commands.\n",
		spool.QueueCapacity())

	scanner := bufio.NewScanner(r.in)
	for scanner.Scan() {
		if ctx.Err() != nil {
			return nil
		}

		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}

		switch cmd, args := fields[0], fields[1:]; cmd {
		case "add":
			r.handleAdd(spool, args)
		case "list":
			r.handleList(spool)
		case "run":
			r.handleRun(spool, args)
		case "policies":
			fmt.Fprintln(r.out, strings.Join(framework.RegisteredPolicyNames(), "\n"))
		case "help":
			fmt.Fprintln(r.out, helpText)
		case "quit", "exit":
			fmt.Fprintln(r.out, "Exiting simulation. Goodbye!")
			return nil
		default:
			fmt.Fprintf(r.out, "Unknown command %q. Type 'help' for commands.\n", cmd)
		}
	}
	return scanner.Err()
}

func (r *Runner) handleAdd(spool *controller.SpoolController, args []string) {
	if len(args) != 2 {
		fmt.Fprintln(r.out, "Usage: add <pages> <priority>")
		return
	}
	pages, err := strconv.Atoi(args[0])
	if err != nil {
		fmt.Fprintf(r.out, "Invalid page count %q.\n", args[0])
		return
	}
	priority, err := strconv.Atoi(args[1])
	if err != nil {
		fmt.Fprintf(r.out, "Invalid priority %q.\n", args[1])
		return
	}

	job, err := spool.SubmitJob(pages, priority)
	if err != nil {
		fmt.Fprintf(r.out, "Error: %v\n", err)
		return
	}
	fmt.Fprintf(r.out, "Success: added job %d (%d pages, priority %d).\n", job.ID, job.Pages, job.Priority)
}

func (r *Runner) handleList(spool *controller.SpoolController) {
	jobs := spool.ListJobs()
	if len(jobs) == 0 {
		fmt.Fprintln(r.out, "The print queue is currently empty.")
		return
	}

	tw := tabwriter.NewWriter(r.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "JOB ID\tPAGES\tPRIORITY")
	for _, job := range jobs {
		fmt.Fprintf(tw, "%d\t%d\t%d\n", job.ID, job.Pages, job.Priority)
	}
	tw.Flush()
}

func (r *Runner) handleRun(spool *controller.SpoolController, args []string) {
	if len(args) != 1 {
		fmt.Fprintf(r.out, "Usage: run <%s>\n", strings.Join(framework.RegisteredPolicyNames(), "|"))
		return
	}

	report, err := spool.RunSimulation(args[0])
	if err != nil {
		fmt.Fprintf(r.out, "Cannot run simulation: %v\n", err)
		return
	}
	r.renderReport(report)
}

func (r *Runner) renderReport(report *types.MetricsReport) {
	fmt.Fprintf(r.out, "Simulation results: %s (run %s)\n", report.Policy, report.RunID)

	tw := tabwriter.NewWriter(r.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "JOB ID\tPAGES\tPRIORITY\tWAIT TIME\tTURNAROUND TIME")
	for _, jm := range report.Jobs {
		fmt.Fprintf(tw, "%d\t%d\t%d\t%d\t%d\n", jm.ID, jm.Pages, jm.Priority, jm.WaitTime, jm.TurnaroundTime)
	}
	tw.Flush()

	fmt.Fprintf(r.out, "Average waiting time:    %.2f\n", report.AvgWaitTime)
	fmt.Fprintf(r.out, "Average turnaround time: %.2f\n", report.AvgTurnaroundTime)
	fmt.Fprintf(r.out, "Makespan:                %d\n", report.Makespan)
}
