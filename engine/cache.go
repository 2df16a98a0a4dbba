// Copyright 2014-2016 The Zurichess Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// cache.go implements the transposition table consulted by alpha-beta.
// Every hit is verified against the full position and depth before
// being trusted: a Zobrist hash match alone is never enough to key a
// cache entry, since two different positions can share a hash.

package engine

// CacheEntry is a memoized alpha-beta result: the move that produced it
// and the (lower, upper) bound the search narrowed the true score to.
type CacheEntry struct {
	BestMove     Move
	Lower, Upper int
}

type cacheKey struct {
	pos   Position
	depth int
}

type cacheSlot struct {
	key   cacheKey
	entry CacheEntry
}

// TranspositionTable memoizes alpha-beta results keyed by (position,
// remaining depth), bucketed by Zobrist hash. On overflow the entire
// table is cleared — no per-entry replacement policy, matching the
// source engine's own chosen eviction policy.
type TranspositionTable struct {
	capacity int
	size     int
	buckets  map[uint64][]cacheSlot
}

// NewTranspositionTable returns an empty table that holds at most
// capacity entries before a full clear.
func NewTranspositionTable(capacity int) *TranspositionTable {
	return &TranspositionTable{
		capacity: capacity,
		buckets:  make(map[uint64][]cacheSlot),
	}
}

// Clear empties the table.
func (tt *TranspositionTable) Clear() {
	tt.buckets = make(map[uint64][]cacheSlot)
	tt.size = 0
}

// Get returns the entry for (pos, depth), verifying the candidate bucket
// entries structurally rather than trusting the hash alone.
func (tt *TranspositionTable) Get(pos *Position, depth int) (CacheEntry, bool) {
	h := zobristHash(pos, depth)
	for _, slot := range tt.buckets[h] {
		if slot.key.depth == depth && slot.key.pos == *pos {
			return slot.entry, true
		}
	}
	return CacheEntry{}, false
}

// Put stores entry for (pos, depth), clearing the whole table first if
// it has reached capacity.
func (tt *TranspositionTable) Put(pos *Position, depth int, entry CacheEntry) {
	if tt.size >= tt.capacity {
		tt.Clear()
	}
	h := zobristHash(pos, depth)
	bucket := tt.buckets[h]
	for i, slot := range bucket {
		if slot.key.depth == depth && slot.key.pos == *pos {
			bucket[i].entry = entry
			return
		}
	}
	tt.buckets[h] = append(bucket, cacheSlot{key: cacheKey{pos: *pos, depth: depth}, entry: entry})
	tt.size++
}
