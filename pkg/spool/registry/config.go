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

package registry

import (
	"fmt"

	"go.uber.org/multierr"
)

// --- Defaults ---

const (
	// defaultCapacity is the default upper bound on outstanding jobs if not explicitly configured.
	defaultCapacity = 100
)

// Config holds the configuration for a `JobRegistry`.
type Config struct {
	// Capacity defines the upper bound on the number of outstanding jobs. Submissions beyond the bound are rejected
	// with `types.ErrQueueAtCapacity` and leave the registry untouched.
	// Optional: Defaults to 100.
	Capacity int
}

// ValidateAndApplyDefaults checks the configuration for faults and fills in defaults for unset fields.
// It returns a new, normalized config, leaving the receiver unmodified. All faults are reported together.
func (c *Config) ValidateAndApplyDefaults() (*Config, error) {
	cfg := *c
	var errs error
	if cfg.Capacity < 0 {
		errs = multierr.Append(errs, fmt.Errorf("capacity must not be negative, got %d", cfg.Capacity))
	}
	if cfg.Capacity == 0 {
		cfg.Capacity = defaultCapacity
	}
	if errs != nil {
		return nil, errs
	}
	return &cfg, nil
}
