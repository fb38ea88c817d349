/*
Package database implements the read-only transaction database consumed by
the miners, and a loader for the SPMF text format.

Every transaction is stored as a sorted, duplicate-free list of non-negative
item identifiers. Transaction identifiers (tids) are the positions of the
transactions in the database, starting at 0.
*/
package database

import (
	"fmt"
	"sort"
)

// Database is an in-memory transaction database.
// _transactions_ holds the normalized transactions
// _maxItem_ is the largest item identifier seen, -1 for an empty database
type Database struct {
	transactions [][]int
	maxItem      int
}

// New creates a Database from _transactions_. Each transaction is copied,
// sorted and deduplicated. Negative items are rejected.
func New(transactions [][]int) (*Database, error) {
	db := &Database{make([][]int, 0, len(transactions)), -1}
	for tid, transaction := range transactions {
		if err := db.add(tid, transaction); err != nil {
			return nil, err
		}
	}
	return db, nil
}

func (db *Database) add(tid int, transaction []int) error {
	normalized := make([]int, len(transaction))
	copy(normalized, transaction)
	sort.Ints(normalized)
	k := 0
	for i, item := range normalized {
		if item < 0 {
			return fmt.Errorf("gocharm: negative item %d in transaction %d", item, tid)
		}
		if i > 0 && item == normalized[k-1] {
			continue
		}
		normalized[k] = item
		k++
	}
	normalized = normalized[:k]
	if k > 0 && normalized[k-1] > db.maxItem {
		db.maxItem = normalized[k-1]
	}
	db.transactions = append(db.transactions, normalized)
	return nil
}

// Size returns the number of transactions
func (db *Database) Size() int {
	return len(db.transactions)
}

// Transactions returns every transaction, indexed by tid.
// The returned slices must not be modified.
func (db *Database) Transactions() [][]int {
	return db.transactions
}

// Transaction returns the transaction at _tid_
func (db *Database) Transaction(tid int) []int {
	return db.transactions[tid]
}

// MaxItem returns the largest item identifier, or -1 when the database has
// no items
func (db *Database) MaxItem() int {
	return db.maxItem
}

// Items returns the number of distinct items
func (db *Database) Items() int {
	seen := make(map[int]struct{})
	for _, transaction := range db.transactions {
		for _, item := range transaction {
			seen[item] = struct{}{}
		}
	}
	return len(seen)
}
