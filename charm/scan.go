package charm

import (
	"sort"

	"github.com/kwertop/gocharm/database"
	"github.com/kwertop/gocharm/matrix"
	"github.com/kwertop/gocharm/tidset"
)

// scan builds the vertical representation of every item in one pass over
// _db_. The vectors are indexed by item; items absent from _db_ have a zero
// support.
func scan(db *database.Database, representation Representation) []tidset.Vector {
	size := uint(db.Size())
	vectors := make([]tidset.Vector, db.MaxItem()+1)
	for tid, transaction := range db.Transactions() {
		for _, item := range transaction {
			v := vectors[item]
			if v == nil {
				v = newVector(representation, size)
				vectors[item] = v
			}
			v.Add(uint(tid))
		}
	}
	return vectors
}

func newVector(representation Representation, size uint) tidset.Vector {
	if representation == Diffsets {
		return tidset.NewDiffset(size)
	}
	return tidset.NewTidset(size)
}

// frequentMembers returns the top level class: one member per item with a
// support of at least _minsup_, by ascending support then ascending item
func frequentMembers(vectors []tidset.Vector, minsup int) []*member {
	var members []*member
	for item, v := range vectors {
		if v == nil || v.Support() < minsup {
			continue
		}
		members = append(members, &member{items: []int{item}, tids: v})
	}
	sort.SliceStable(members, func(i, j int) bool {
		si, sj := members[i].tids.Support(), members[j].tids.Support()
		if si != sj {
			return si < sj
		}
		return members[i].items[0] < members[j].items[0]
	})
	return members
}

// countPairs builds the co-occurrence matrix of every item of _db_
func countPairs(db *database.Database) (*matrix.TriangularMatrix, error) {
	return matrix.FromTransactions(db.MaxItem()+1, db.Transactions())
}
