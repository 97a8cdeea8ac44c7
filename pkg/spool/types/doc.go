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

// Package types defines the core data types and service contracts shared by every layer of the spooling system:
// the immutable `Job`, the per-run `MetricsReport`, and the sentinel errors that make up the system's error taxonomy.
//
// This package deliberately has no dependencies on other spool packages so that policies, the simulator, and the
// registry can all depend on it without cycles.
package types
