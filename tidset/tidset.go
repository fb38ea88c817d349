package tidset

import (
	"github.com/bits-and-blooms/bitset"
)

// Tidset is the plain vertical representation used by CHARM.
// _bits_ has bit t set when transaction t contains the itemset
// _support_ caches the number of set bits
type Tidset struct {
	bits    *bitset.BitSet
	support int
}

// NewTidset creates an empty Tidset over _size_ transactions
func NewTidset(size uint) *Tidset {
	return &Tidset{bitset.New(size), 0}
}

// FromTids creates a Tidset over _size_ transactions with the bits of
// _tids_ set
func FromTids(size uint, tids ...uint) *Tidset {
	t := NewTidset(size)
	for _, tid := range tids {
		t.Add(tid)
	}
	return t
}

// Add sets the bit of transaction _tid_
func (t *Tidset) Add(tid uint) {
	if !t.bits.Test(tid) {
		t.bits.Set(tid)
		t.support++
	}
}

// Has checks if the bit of transaction _tid_ is set
func (t *Tidset) Has(tid uint) bool {
	return t.bits.Test(tid)
}

// Support returns the number of transactions in the tidset
func (t *Tidset) Support() int {
	return t.support
}

// Join intersects both tidsets
func (t *Tidset) Join(other TidsetLike) TidsetLike {
	o, ok := other.(*Tidset)
	if !ok {
		panic(mismatch(t, other))
	}
	bits := t.bits.Intersection(o.bits)
	return &Tidset{bits, int(bits.Count())}
}

// Cover returns the tidset bits
func (t *Tidset) Cover() *bitset.BitSet {
	return t.bits
}

// Equals checks if two tidsets cover the same transactions
func (t *Tidset) Equals(other *Tidset) bool {
	return t.support == other.support && t.bits.Equal(other.bits)
}

func (t *Tidset) String() string {
	return t.bits.String()
}
