package closure

import (
	"github.com/kwertop/gocharm/itemset"
)

// entry is a closed itemset stored in a bucket
type entry struct {
	items   []int
	support int
}

// bucket holds the entries whose covers hashed to the same slot.
// Unlike the fixed-size buckets of a cuckoo filter it grows without bound:
// collisions are resolved by scanning every entry.
type bucket struct {
	entries []entry
}

// add appends a copy of _items_ with _support_
func (b *bucket) add(items []int, support int) {
	stored := make([]int, len(items))
	copy(stored, items)
	b.entries = append(b.entries, entry{stored, support})
}

// containsSupersetOf returns true if an entry with the same _support_ holds
// every item of _items_
func (b *bucket) containsSupersetOf(items []int, support int) bool {
	for _, e := range b.entries {
		if e.support == support && itemset.ContainsAll(e.items, items) {
			return true
		}
	}
	return false
}
