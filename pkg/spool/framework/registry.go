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
	"fmt"
	"sort"
	"sync"
)

// RegisteredPolicyName is the unique name under which an `OrderingPolicy` is registered.
type RegisteredPolicyName string

// PolicyConstructor defines the function signature for creating an `OrderingPolicy`.
type PolicyConstructor func() (OrderingPolicy, error)

var (
	// mu guards the registration map.
	mu sync.RWMutex
	// registeredPolicies stores the constructors for all registered policies.
	registeredPolicies = make(map[RegisteredPolicyName]PolicyConstructor)
)

// MustRegisterPolicy registers a policy constructor, and panics if the name is already registered.
// This is intended to be called from the `init()` function of a policy implementation.
func MustRegisterPolicy(name RegisteredPolicyName, constructor PolicyConstructor) {
	mu.Lock()
	defer mu.Unlock()
	if _, ok := registeredPolicies[name]; ok {
		panic(fmt.Sprintf("OrderingPolicy already registered with name %q", name))
	}
	registeredPolicies[name] = constructor
}

// NewPolicyFromName creates a new `OrderingPolicy` given its registered name.
// This is called by the `controller.SpoolController` when resolving a simulation request.
func NewPolicyFromName(name RegisteredPolicyName) (OrderingPolicy, error) {
	mu.RLock()
	defer mu.RUnlock()
	constructor, ok := registeredPolicies[name]
	if !ok {
		return nil, fmt.Errorf("no OrderingPolicy registered with name %q", name)
	}
	return constructor()
}

// RegisteredPolicyNames returns the names of all registered policies in lexical order.
// It exists for collaborator surfaces (CLI help, validation messages); the engine itself resolves policies only
// through `NewPolicyFromName`.
func RegisteredPolicyNames() []string {
	mu.RLock()
	defer mu.RUnlock()
	names := make([]string, 0, len(registeredPolicies))
	for name := range registeredPolicies {
		names = append(names, string(name))
	}
	sort.Strings(names)
	return names
}
