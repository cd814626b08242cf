package linhash

import "go.uber.org/zap"

// shouldSplitLocked reports whether num_elem/len(buckets) exceeds
// maxLoadFactor. Callers must hold t.mu (shared or exclusive).
func (t *Table[K, V]) shouldSplitLocked() bool {
	if len(t.buckets) == 0 {
		return false
	}
	load := float64(t.numElem.Load()) / float64(len(t.buckets))
	return load > t.maxLoadFactor
}

// splitOnce executes a single split step. Caller must hold t.mu
// exclusively.
//
// Steps (spec.md §4.3): append one fresh bucket; move every entry of
// table[splitPtr] whose newly-significant bit is set into the fresh
// bucket, keeping the rest in place; advance splitPtr; wrap depth when
// splitPtr reaches the pre-expansion size L.
//
// hiBit is computed as L = init_size<<depth *before* splitPtr advances,
// matching the ordering in original_source/src/linear_hash.h (computed
// from the pre-split state, not the post-increment one).
func (t *Table[K, V]) splitOnce() {
	hiBit := t.initSize << t.depth

	src := t.buckets[t.splitPtr]
	dst := newBucket[K, V]()
	t.buckets = append(t.buckets, dst)

	retained := src.entries[:0:0]
	for _, e := range src.entries {
		if t.hash(e.Key)&hiBit != 0 {
			dst.entries = append(dst.entries, e)
		} else {
			retained = append(retained, e)
		}
	}
	src.entries = retained

	t.logger.Debug("linhash: split",
		zap.Uint64("depth", t.depth),
		zap.Uint64("split_ptr_before", t.splitPtr),
		zap.Uint64("buckets", uint64(len(t.buckets))),
	)

	t.splitPtr++
	if t.splitPtr == hiBit {
		t.splitPtr = 0
		t.depth++
	}
}
