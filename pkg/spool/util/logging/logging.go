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

// Package logging defines the shared log verbosity tiers used across the spooling system.
package logging

// Log verbosity tiers, passed to `logr.Logger.V()`.
const (
	// DEFAULT is the verbosity for messages that should always be visible.
	DEFAULT = 1
	// VERBOSE is the verbosity for messages useful when observing normal operation closely.
	VERBOSE = 2
	// DEBUG is the verbosity for messages useful when debugging engine behavior.
	DEBUG = 3
	// TRACE is the verbosity for per-job messages on hot paths.
	TRACE = 4
)
