package linhash

import "sync/atomic"

// elemCounter is num_elem: a uint64 mutated only through atomic
// instructions, incremented on successful insert-of-new-key and
// decremented on successful remove. Reads require no lock, matching the
// spec's "unsynchronized reads of atomics" accessor contract.
//
// Adapted from this codebase's AtomicUint (uintptr-backed); num_elem is
// fixed at uint64 here since the spec recommends a hash width of at least
// 64 bits and a matching element count.
type elemCounter struct {
	v atomic.Uint64
}

func (c *elemCounter) Load() uint64 {
	return c.v.Load()
}

func (c *elemCounter) Add(delta uint64) uint64 {
	return c.v.Add(delta)
}

func (c *elemCounter) Dec() uint64 {
	return c.v.Add(^uint64(0))
}
