package tidset

import (
	"github.com/bits-and-blooms/bitset"
)

// Diffset is the vertical representation used by dCHARM.
// _bits_ holds the transactions of the receiver's cover that don't contain
// the itemset. A diffset built by the scan has no receiver and its bits are
// all the transactions not containing the item.
// _support_ is counted during the scan and derived by subtraction afterwards
// _base_ is the receiver of the join which produced this diffset, nil for
// single items
// _size_ is the number of transactions in the database
type Diffset struct {
	bits    *bitset.BitSet
	support int
	base    *Diffset
	size    uint
}

// NewDiffset creates the diffset of an item found in no transaction yet:
// every one of the _size_ transactions is set
func NewDiffset(size uint) *Diffset {
	return &Diffset{bitset.New(size).Complement(), 0, nil, size}
}

// Add clears the bit of transaction _tid_, which contains the item
func (d *Diffset) Add(tid uint) {
	if d.bits.Test(tid) {
		d.bits.Clear(tid)
		d.support++
	}
}

// Support returns the number of transactions covered
func (d *Diffset) Support() int {
	return d.support
}

// Join computes diffset(other) AND-NOT diffset(d). The support is the
// receiver's support minus the size of the new diffset.
func (d *Diffset) Join(other TidsetLike) TidsetLike {
	o, ok := other.(*Diffset)
	if !ok {
		panic(mismatch(d, other))
	}
	bits := o.bits.Difference(d.bits)
	return &Diffset{bits, d.support - int(bits.Count()), d, d.size}
}

// Diff returns the stored difference bits
func (d *Diffset) Diff() *bitset.BitSet {
	return d.bits
}

// Cover materializes the covering transaction set by walking back through
// the receivers: cover(d) = cover(base) \ bits, and the cover of a single
// item is the complement of its diffset.
func (d *Diffset) Cover() *bitset.BitSet {
	if d.base == nil {
		return d.bits.Complement()
	}
	return d.base.Cover().Difference(d.bits)
}
