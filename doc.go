/*
Package linhash implements a concurrent linear-hashing associative
container: a mapping from keys to values that grows incrementally, one
bucket at a time, rather than rehashing the whole table in a single step.

# Concurrency

Table holds a global reader/writer lock that guards the bucket index
(table length, split pointer, depth) and a per-bucket reader/writer lock
that guards each bucket's entries. Readers (Get, Contains) and writers on
disjoint buckets (Insert, Remove) proceed in parallel; only a split, which
is rare and touches at most two buckets, and the debugging Dump take the
table lock exclusively.

Growth never relocates an existing bucket: the table holds a slice of
bucket pointers, and growth only appends. A reader holding a bucket
pointer under a shared table hold therefore never sees it invalidated.

# Iteration

Begin/End produce a forward-only iterator that holds no lock. Iterating
while another goroutine mutates the table is undefined behavior; callers
must externally quiesce the table first.
*/
package linhash
