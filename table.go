package linhash

import (
	"fmt"
	"io"
	"sync"

	"go.uber.org/zap"
)

// Table is a concurrent linear-hashing associative container. The zero
// value is not usable; construct one with New.
//
// mu is the global table lock (C3): it guards table length, depth and
// splitPtr. Every keyed operation (Insert, Get, Contains, Remove) takes a
// shared hold on mu, resolves a bucket index with addr, and then takes the
// appropriate hold on that bucket's own lock (bucket.mu). Growth (split)
// and the debugging Dump are the only operations that take mu
// exclusively; a split does so only after releasing any bucket lock --
// see Insert in ops.go.
//
// buckets is append-only: growth never relocates an existing *bucket, so
// a reference obtained under a shared hold on mu stays valid for the
// caller's whole critical section even if another goroutine is
// concurrently appending to the slice header under an exclusive hold.
type Table[K comparable, V any] struct {
	mu sync.RWMutex

	buckets  []*bucket[K, V]
	depth    uint64
	splitPtr uint64

	initSize      uint64
	maxLoadFactor float64

	numElem elemCounter

	hash   Hasher[K]
	logger *zap.Logger
}

// config accumulates Option values before New constructs a Table.
type config[K comparable, V any] struct {
	initSize      uint64
	maxLoadFactor float64
	hasher        Hasher[K]
	logger        *zap.Logger
}

// Option configures a Table at construction time, in the functional-
// options shape used by this codebase's map configuration elsewhere in
// the pack (llxisdsh-synx's map_config.go: WithCapacity, WithKeyHasher,
// ...). It changes nothing about the spec's construction preconditions --
// only how they're expressed.
type Option[K comparable, V any] func(*config[K, V])

// WithInitSize overrides the default initial bucket count (2). It must
// be a positive power of two or New returns ErrInvalidInitSize.
func WithInitSize[K comparable, V any](n uint64) Option[K, V] {
	return func(c *config[K, V]) { c.initSize = n }
}

// WithMaxLoadFactor overrides the default max load factor (0.75). It
// must be strictly positive or New returns ErrInvalidLoadFactor.
func WithMaxLoadFactor[K comparable, V any](f float64) Option[K, V] {
	return func(c *config[K, V]) { c.maxLoadFactor = f }
}

// WithHasher overrides the default maphash-based hasher.
func WithHasher[K comparable, V any](h Hasher[K]) Option[K, V] {
	return func(c *config[K, V]) { c.hasher = h }
}

// WithLogger attaches a *zap.Logger used to emit one Debug record per
// split step (see split.go). The default is a no-op logger, so leaving
// this unset costs nothing on the hot path.
func WithLogger[K comparable, V any](l *zap.Logger) Option[K, V] {
	return func(c *config[K, V]) { c.logger = l }
}

// New constructs a Table. Defaults match spec.md: init size 2, max load
// factor 0.75.
func New[K comparable, V any](opts ...Option[K, V]) (*Table[K, V], error) {
	cfg := config[K, V]{
		initSize:      2,
		maxLoadFactor: 0.75,
	}
	for _, o := range opts {
		o(&cfg)
	}

	if cfg.initSize == 0 || cfg.initSize&(cfg.initSize-1) != 0 {
		return nil, ErrInvalidInitSize
	}
	if cfg.maxLoadFactor <= 0 {
		return nil, ErrInvalidLoadFactor
	}

	if cfg.hasher == nil {
		cfg.hasher = newDefaultHasher[K]()
	}
	if cfg.logger == nil {
		cfg.logger = zap.NewNop()
	}

	t := &Table[K, V]{
		initSize:      cfg.initSize,
		maxLoadFactor: cfg.maxLoadFactor,
		hash:          cfg.hasher,
		logger:        cfg.logger,
		buckets:       make([]*bucket[K, V], cfg.initSize),
	}
	for i := range t.buckets {
		t.buckets[i] = newBucket[K, V]()
	}
	return t, nil
}

// Size returns num_elem. Unsynchronized: an instantaneous snapshot, per
// spec.md §4.4.
func (t *Table[K, V]) Size() uint64 {
	return t.numElem.Load()
}

// Capacity returns the current bucket count, read under a brief shared
// hold on the table lock: a snapshot that may be stale by the time the
// caller uses it.
func (t *Table[K, V]) Capacity() uint64 {
	t.mu.RLock()
	n := uint64(len(t.buckets))
	t.mu.RUnlock()
	return n
}

// SplitPtr returns the current split pointer, read under a brief shared
// hold on the table lock like Capacity: a snapshot with no causal
// relationship to other observations unless the caller externally
// serializes.
func (t *Table[K, V]) SplitPtr() uint64 {
	t.mu.RLock()
	p := t.splitPtr
	t.mu.RUnlock()
	return p
}

// addrLocked resolves the bucket for key k. Callers must hold t.mu
// (shared or exclusive) for the duration of their use of the returned
// bucket pointer and index, per the addressing-invariance note in
// spec.md §9: depth and splitPtr must be read under the same hold used
// to acquire the bucket lock.
func (t *Table[K, V]) addrLocked(k K) (uint64, *bucket[K, V]) {
	h := t.hash(k)
	i := addr(h, t.initSize, t.depth, t.splitPtr)
	return i, t.buckets[i]
}

// Dump writes one line per bucket in the form "Bucket i: [k:v][k:v]...",
// for debugging only. It takes the table lock exclusively -- not merely
// shared -- because, unlike every other operation, it walks every bucket
// without acquiring any individual bucket lock; per original_source's
// print() (a unique_lock in the original C++), the stronger hold is what
// keeps the walk consistent with a table that might otherwise be
// mid-split.
func (t *Table[K, V]) Dump(w io.Writer) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	for i, b := range t.buckets {
		if _, err := fmt.Fprintf(w, "Bucket %d: ", i); err != nil {
			return err
		}
		for _, e := range b.entries {
			if _, err := fmt.Fprintf(w, "[%v:%v]", e.Key, e.Value); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(w); err != nil {
			return err
		}
	}
	return nil
}
