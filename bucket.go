package linhash

import "sync"

// bucket holds an unordered sequence of entries with unique keys within
// the bucket, plus its own reader/writer lock. Bucket order is never
// observed by a caller, which is why removal may swap-and-pop.
//
// Grounded on this codebase's BucketMap/Node.go, which also pairs each
// bucket's storage with its own *sync.RWMutex; unlike that bucket, which
// chains nodes with CAS-linked pointers to stay lock-free on reads, this
// one holds entries in a plain slice guarded entirely by mu, per the
// spec's simpler two-tier locking design.
type bucket[K comparable, V any] struct {
	mu      sync.RWMutex
	entries []Entry[K, V]
}

func newBucket[K comparable, V any]() *bucket[K, V] {
	return &bucket[K, V]{}
}

// find returns the index of the entry with the given key, or -1.
// Callers must hold mu (read or write).
func (b *bucket[K, V]) find(k K) int {
	for i := range b.entries {
		if b.entries[i].Key == k {
			return i
		}
	}
	return -1
}

// get looks up k under a read lock.
func (b *bucket[K, V]) get(k K) (V, bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	if i := b.find(k); i >= 0 {
		return b.entries[i].Value, true
	}
	var zero V
	return zero, false
}

// contains checks presence of k under a read lock.
func (b *bucket[K, V]) contains(k K) bool {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.find(k) >= 0
}

// upsert inserts k/v, or overwrites the value if k is already present.
// Returns true if a new entry was appended (i.e. this was not an
// overwrite), so the caller can decide whether to count it and check the
// load factor.
func (b *bucket[K, V]) upsert(k K, v V) (inserted bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if i := b.find(k); i >= 0 {
		b.entries[i].Value = v
		return false
	}
	b.entries = append(b.entries, Entry[K, V]{Key: k, Value: v})
	return true
}

// remove deletes k via swap-and-pop. Returns true if k was present.
func (b *bucket[K, V]) remove(k K) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	i := b.find(k)
	if i < 0 {
		return false
	}
	last := len(b.entries) - 1
	b.entries[i] = b.entries[last]
	b.entries = b.entries[:last]
	return true
}

// len reports the current entry count. Callers must hold mu.
func (b *bucket[K, V]) len() int {
	return len(b.entries)
}
