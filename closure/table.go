/*
Package closure implements the closure verification table of the CHARM
family of miners.

Every candidate closed itemset is checked against the itemsets accepted so
far. A candidate is rejected when an accepted itemset with the same support
contains all of its items. Two itemsets with the same support, one being a
superset of the other, cover exactly the same transactions, so the table is
keyed by a hash of the cover and only one bucket has to be scanned.
*/
package closure

import (
	"fmt"

	"github.com/bits-and-blooms/bitset"
	"github.com/kwertop/gocharm/tidset"
)

// DefaultSize is the bucket count used when none is configured
const DefaultSize = 1000

// Table is the hash table of accepted closed itemsets.
// _buckets_ is allocated lazily, slot by slot
// _length_ is the number of accepted itemsets
type Table struct {
	buckets []*bucket
	length  int
}

// New creates a Table with _size_ buckets
func New(size int) (*Table, error) {
	if size <= 0 {
		return nil, fmt.Errorf("gocharm: hash table size should be greater than 0, got %d", size)
	}
	return &Table{make([]*bucket, size), 0}, nil
}

// Size returns the number of buckets
func (t *Table) Size() int {
	return len(t.buckets)
}

// Len returns the number of accepted itemsets
func (t *Table) Len() int {
	return t.length
}

// Used returns the number of non-empty buckets
func (t *Table) Used() int {
	used := 0
	for _, b := range t.buckets {
		if b != nil {
			used++
		}
	}
	return used
}

// Hash returns the slot of _cover_
func (t *Table) Hash(cover *bitset.BitSet) int {
	return tidset.Hash(cover, len(t.buckets))
}

// ContainsSupersetOf returns true if slot _hash_ holds an itemset with the
// same _support_ containing every item of the sorted _items_
func (t *Table) ContainsSupersetOf(items []int, support int, hash int) bool {
	b := t.buckets[hash]
	return b != nil && b.containsSupersetOf(items, support)
}

// Put stores _items_ with _support_ in slot _hash_
func (t *Table) Put(items []int, support int, hash int) {
	b := t.buckets[hash]
	if b == nil {
		b = &bucket{}
		t.buckets[hash] = b
	}
	b.add(items, support)
	t.length++
}

// TryEmit accepts the candidate made of the sorted _items_, covering the
// transactions of _cover_, unless an accepted itemset subsumes it.
// Returns true when the candidate was accepted and stored.
func (t *Table) TryEmit(items []int, support int, cover *bitset.BitSet) bool {
	hash := t.Hash(cover)
	if t.ContainsSupersetOf(items, support, hash) {
		return false
	}
	t.Put(items, support, hash)
	return true
}
