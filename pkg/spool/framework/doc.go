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

// Package framework defines the extension points of the scheduling engine: the `OrderingPolicy` contract, the
// `JobComparator` it vends, the registration mechanism that lets policies be instantiated by name, and the `Order`
// helper that applies a policy to a job sequence.
//
// Concrete policies live in `framework/plugins/ordering` and register themselves in their `init()` functions.
package framework
