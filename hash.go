package linhash

import "hash/maphash"

// Hasher maps a key to an unsigned integer hash. Table's addressing
// function depends only on the output of a Hasher, never on how it was
// produced, so the host is free to supply any well-distributed function;
// it does not need cryptographic properties.
type Hasher[K comparable] func(K) uint64

// newDefaultHasher builds a Hasher for any comparable key type from a
// fresh maphash seed made on each call, so each Table gets its own seed.
//
// This mirrors the seeded hash/maphash usage already in this codebase's
// ConcHashMap (a maphash.Seed field hashed per call); maphash.Comparable
// removes the need to first serialize the key to a byte slice.
func newDefaultHasher[K comparable]() Hasher[K] {
	seed := maphash.MakeSeed()
	return func(k K) uint64 {
		return maphash.Comparable(seed, k)
	}
}
