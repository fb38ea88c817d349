/*
Package tidset implements the vertical representations of itemsets used by
the closed itemset miners, both backed by https://github.com/bits-and-blooms/bitset.

 1. Tidset: the set of transactions containing an itemset. The support is
    the number of set bits.
 2. Diffset: the set of transactions containing the receiver of a join but
    not the joined itemset. The support is derived from the receiver's
    support minus the number of set bits.

Both satisfy TidsetLike, so the miners never look at the bits themselves.
*/
package tidset

import (
	"fmt"

	"github.com/bits-and-blooms/bitset"
)

type TidsetLike interface {
	// Support returns the number of transactions covered
	Support() int

	// Join returns the representation of the union of both itemsets.
	// _other_ must be of the same concrete type as the receiver.
	Join(other TidsetLike) TidsetLike

	// Cover returns the covering transaction set. Equal covers are equal
	// bitsets whatever the representation. The result must not be modified.
	Cover() *bitset.BitSet
}

// Vector is a TidsetLike which can still be filled, one transaction at a
// time, during the database scan
type Vector interface {
	TidsetLike

	// Add records that transaction _tid_ contains the itemset
	Add(tid uint)
}

// Hash returns the sum of the positions of the set bits of _cover_ modulo
// _size_
func Hash(cover *bitset.BitSet, size int) int {
	var sum uint64
	for i, ok := cover.NextSet(0); ok; i, ok = cover.NextSet(i + 1) {
		sum += uint64(i)
	}
	return int(sum % uint64(size))
}

func mismatch(a, b TidsetLike) string {
	return fmt.Sprintf("gocharm: cannot join %T with %T", a, b)
}
