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

// Package ordering provides the concrete `framework.OrderingPolicy` implementations: First-Come-First-Served, Shortest
// Job First, and Priority scheduling, all non-preemptive.
//
// Each policy registers itself with the framework in its `init()` function, so importing this package (even blank)
// makes every policy resolvable by name through `framework.NewPolicyFromName`.
//
// All three policies share the same structure: a stateless policy struct vending a comparator whose `Less` function
// ranks two jobs. Ties on the primary key always fall back to submission order (ascending job ID), so any policy over
// a uniform key degrades to FCFS.
package ordering
