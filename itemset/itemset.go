/*
Package itemset holds the values produced by the closed itemset miners.

An Itemset is a duplicate-free list of item identifiers, kept sorted in
ascending order, together with its absolute support (the number of
transactions containing every item). Itemsets collects the results of a run
grouped by itemset size.
*/
package itemset

import (
	"encoding/binary"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/dgryski/go-metro"
)

const fingerprintSeed = 1373

// Itemset is a set of items with its absolute support.
// _Items_ is sorted in ascending order
// _Support_ is the number of transactions containing all of _Items_
type Itemset struct {
	Items   []int `json:"i"`
	Support int   `json:"s"`
}

// New creates an Itemset from a copy of _items_, sorted ascending
func New(items []int, support int) Itemset {
	sorted := make([]int, len(items))
	copy(sorted, items)
	sort.Ints(sorted)
	return Itemset{sorted, support}
}

// Size returns the number of items in the itemset
func (i Itemset) Size() int {
	return len(i.Items)
}

// Contains reports whether _item_ is part of the itemset
func (i Itemset) Contains(item int) bool {
	k := sort.SearchInts(i.Items, item)
	return k < len(i.Items) && i.Items[k] == item
}

// ContainsAll reports whether every item of _other_ is part of the itemset.
// Both item lists must be sorted.
func (i Itemset) ContainsAll(other []int) bool {
	return ContainsAll(i.Items, other)
}

// Equals checks if two itemsets hold the same items and support
func (i Itemset) Equals(other Itemset) bool {
	if i.Support != other.Support || len(i.Items) != len(other.Items) {
		return false
	}
	for k := range i.Items {
		if i.Items[k] != other.Items[k] {
			return false
		}
	}
	return true
}

// Key returns the space separated items, e.g. "1 2 3"
func (i Itemset) Key() string {
	var b strings.Builder
	for k, item := range i.Items {
		if k > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(strconv.Itoa(item))
	}
	return b.String()
}

// String returns the itemset in the SPMF output format, e.g. "1 2 3 #SUP: 2"
func (i Itemset) String() string {
	return fmt.Sprintf("%s #SUP: %d", i.Key(), i.Support)
}

// Fingerprint returns a 128 bit metro hash of the items as a hex string.
// The support is not part of the fingerprint.
func (i Itemset) Fingerprint() string {
	buf := make([]byte, 8*len(i.Items))
	for k, item := range i.Items {
		binary.LittleEndian.PutUint64(buf[8*k:], uint64(item))
	}
	h1, h2 := metro.Hash128(buf, fingerprintSeed)
	return fmt.Sprintf("%016x%016x", h1, h2)
}

// ContainsAll reports whether the sorted slice _super_ holds every element
// of the sorted slice _sub_
func ContainsAll(super, sub []int) bool {
	if len(sub) > len(super) {
		return false
	}
	k := 0
	for _, item := range sub {
		for k < len(super) && super[k] < item {
			k++
		}
		if k == len(super) || super[k] != item {
			return false
		}
		k++
	}
	return true
}

// Less orders itemsets by size, then item by item
func Less(a, b Itemset) bool {
	if len(a.Items) != len(b.Items) {
		return len(a.Items) < len(b.Items)
	}
	for k := range a.Items {
		if a.Items[k] != b.Items[k] {
			return a.Items[k] < b.Items[k]
		}
	}
	return a.Support < b.Support
}
