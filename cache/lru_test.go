// Copyright 2025 The Rivaas Authors
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

package cache

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLRUGetMissIncrementsMisses(t *testing.T) {
	t.Parallel()

	l := NewLRU[string, int](2)
	_, ok := l.Get("x")
	assert.False(t, ok)
	assert.Equal(t, uint64(1), l.Stats().Misses)
}

func TestLRUPutThenGetHits(t *testing.T) {
	t.Parallel()

	l := NewLRU[string, int](2)
	l.Put("a", 1)
	v, ok := l.Get("a")
	assert.True(t, ok)
	assert.Equal(t, 1, v)
	assert.Equal(t, uint64(1), l.Stats().Hits)
}

func TestLRUEvictsLeastRecentlyUsed(t *testing.T) {
	t.Parallel()

	l := NewLRU[string, int](2)
	l.Put("a", 1)
	l.Put("b", 2)
	l.Get("a") // a is now most recent; b is least recent
	l.Put("c", 3)

	_, ok := l.Get("b")
	assert.False(t, ok, "b should have been evicted")

	_, ok = l.Get("a")
	assert.True(t, ok)
	_, ok = l.Get("c")
	assert.True(t, ok)
}

func TestLRUPutUpdatesExistingKeyWithoutEviction(t *testing.T) {
	t.Parallel()

	l := NewLRU[string, int](2)
	l.Put("a", 1)
	l.Put("b", 2)
	l.Put("a", 100)

	v, ok := l.Get("a")
	assert.True(t, ok)
	assert.Equal(t, 100, v)
	assert.Equal(t, 2, l.Len())
}

func TestLRUNonPositiveCapacityTreatedAsOne(t *testing.T) {
	t.Parallel()

	l := NewLRU[string, int](0)
	l.Put("a", 1)
	l.Put("b", 2)

	assert.Equal(t, 1, l.Len())
	_, ok := l.Get("a")
	assert.False(t, ok)
}

func TestLRUClearResetsEntriesAndCounters(t *testing.T) {
	t.Parallel()

	l := NewLRU[string, int](2)
	l.Put("a", 1)
	l.Get("a")
	l.Get("missing")

	l.Clear()

	assert.Equal(t, 0, l.Len())
	stats := l.Stats()
	assert.Equal(t, uint64(0), stats.Hits)
	assert.Equal(t, uint64(0), stats.Misses)
}

func TestLRUClearCountersKeepsEntries(t *testing.T) {
	t.Parallel()

	l := NewLRU[string, int](2)
	l.Put("a", 1)
	l.Get("a")

	l.ClearCounters()

	assert.Equal(t, 1, l.Len())
	assert.Equal(t, uint64(0), l.Stats().Hits)
}

func TestLRUStatsHitRate(t *testing.T) {
	t.Parallel()

	l := NewLRU[string, int](2)
	l.Put("a", 1)
	l.Get("a")
	l.Get("a")
	l.Get("missing")

	stats := l.Stats()
	assert.InDelta(t, 2.0/3.0, stats.HitRate, 0.0001)
}
