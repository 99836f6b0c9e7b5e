// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package cache provides the concurrent memoization behind unit, kind and
// type metadata lookups.
//
// A Cache maps a comparable key to a value computed once by a factory. It is
// safe for concurrent use. Two goroutines that miss on the same key at the
// same time may both run the factory; the first stored result wins and both
// callers observe it, so factories must be pure.
//
// Factory errors are returned to the caller and never cached.
package cache

import (
	"sync"
	"sync/atomic"

	"github.com/prometheus/client_golang/prometheus"
)

// Cache is a concurrent map from K to lazily computed V.
type Cache[K comparable, V any] struct {
	name   string
	items  sync.Map
	size   atomic.Int64
	hits   prometheus.Counter
	misses prometheus.Counter
}

// New returns an empty cache. The name labels the cache's hit and miss metrics.
func New[K comparable, V any](name string) *Cache[K, V] {
	return &Cache[K, V]{
		name:   name,
		hits:   cacheHits.WithLabelValues(name),
		misses: cacheMisses.WithLabelValues(name),
	}
}

// Name returns the cache name.
func (c *Cache[K, V]) Name() string {
	return c.name
}

// TryGet returns the cached value for key.
func (c *Cache[K, V]) TryGet(key K) (V, bool) {
	v, ok := c.items.Load(key)
	if !ok {
		var zero V
		return zero, false
	}
	return v.(V), true
}

// GetOrAdd returns the cached value for key, computing and storing it with
// factory on a miss.
func (c *Cache[K, V]) GetOrAdd(key K, factory func(K) (V, error)) (V, error) {
	if v, ok := c.items.Load(key); ok {
		c.hits.Inc()
		return v.(V), nil
	}
	c.misses.Inc()

	v, err := factory(key)
	if err != nil {
		var zero V
		return zero, err
	}

	actual, loaded := c.items.LoadOrStore(key, v)
	if !loaded {
		c.size.Add(1)
	}
	return actual.(V), nil
}

// Add stores value under key unless a value is already present, and returns
// the value that ends up cached.
func (c *Cache[K, V]) Add(key K, value V) V {
	actual, loaded := c.items.LoadOrStore(key, value)
	if !loaded {
		c.size.Add(1)
	}
	return actual.(V)
}

// Len returns the number of cached entries.
func (c *Cache[K, V]) Len() int {
	return int(c.size.Load())
}

// Reset drops every cached entry.
func (c *Cache[K, V]) Reset() {
	c.items.Range(func(key, _ any) bool {
		if _, deleted := c.items.LoadAndDelete(key); deleted {
			c.size.Add(-1)
		}
		return true
	})
}
