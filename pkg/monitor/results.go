// SPDX-FileCopyrightText: 2025 Deutsche Telekom IT GmbH
//
// SPDX-License-Identifier: Apache-2.0

package monitor

import (
	"sync"

	"github.com/telekom/sparrow-ping/pkg/checks"
)

// results keeps the latest result of every check in memory
type results struct {
	mu   sync.RWMutex
	data map[string]checks.Result
}

func newResults() *results {
	return &results{data: map[string]checks.Result{}}
}

// Save replaces the result of the check
func (r *results) Save(res checks.ResultDTO) {
	if res.Result == nil {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.data[res.Name] = *res.Result
}

// Get returns the latest result of the check
func (r *results) Get(name string) (checks.Result, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	res, ok := r.data[name]
	return res, ok
}
