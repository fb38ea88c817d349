/*
Package matrix implements a triangular matrix of item pair co-occurrence
counts. The count of a pair (i, j) is the number of transactions containing
both items; it equals the support of the 2-itemset {i, j}, which lets the
miners skip the bit-vector join of infrequent pairs.
*/
package matrix

import (
	"encoding/json"
	"fmt"
)

// TriangularMatrix stores one counter per unordered pair of distinct items.
// _size_ is the number of items covered, items are in [0, size)
// _counts_ holds row j (pairs (i, j) with i < j) at offset j*(j-1)/2
type TriangularMatrix struct {
	size   int
	counts []int
}

// New creates a TriangularMatrix for items 0 to _size_-1
func New(size int) (*TriangularMatrix, error) {
	if size < 0 {
		return nil, fmt.Errorf("gocharm: matrix size should be positive, got %d", size)
	}
	return &TriangularMatrix{size, make([]int, size*(size-1)/2+1)}, nil
}

// FromTransactions creates a TriangularMatrix for items 0 to _size_-1 and
// counts every pair of items co-occurring in _transactions_
func FromTransactions(size int, transactions [][]int) (*TriangularMatrix, error) {
	m, err := New(size)
	if err != nil {
		return nil, err
	}
	for _, transaction := range transactions {
		for i := range transaction {
			for j := i + 1; j < len(transaction); j++ {
				m.Increment(transaction[i], transaction[j])
			}
		}
	}
	return m, nil
}

// Size returns the number of items covered by the matrix
func (m *TriangularMatrix) Size() int {
	return m.size
}

func (m *TriangularMatrix) index(i, j int) int {
	if i > j {
		i, j = j, i
	}
	return j*(j-1)/2 + i
}

// Increment adds one to the count of the pair (_i_, _j_). Pairs of an item
// with itself are ignored.
func (m *TriangularMatrix) Increment(i, j int) {
	if i == j {
		return
	}
	m.counts[m.index(i, j)]++
}

// Support returns the count of the pair (_i_, _j_), in any order
func (m *TriangularMatrix) Support(i, j int) int {
	if i == j {
		return 0
	}
	return m.counts[m.index(i, j)]
}

// internal type used to marshal/unmarshal the matrix
type triangularMatrixJSON struct {
	Size   int   `json:"n"`
	Counts []int `json:"c"`
}

// Export JSON marshals the matrix
func (m *TriangularMatrix) Export() ([]byte, error) {
	return json.Marshal(triangularMatrixJSON{m.size, m.counts})
}

// Import JSON unmarshals _data_ into the matrix
func (m *TriangularMatrix) Import(data []byte) error {
	var t triangularMatrixJSON
	if err := json.Unmarshal(data, &t); err != nil {
		return err
	}
	if t.Size < 0 || len(t.Counts) != t.Size*(t.Size-1)/2+1 {
		return fmt.Errorf("gocharm: invalid matrix of size %d with %d counts", t.Size, len(t.Counts))
	}
	m.size = t.Size
	m.counts = t.Counts
	return nil
}

func (m *TriangularMatrix) String() string {
	s := ""
	for j := 1; j < m.size; j++ {
		s += fmt.Sprintf("%d:", j)
		for i := 0; i < j; i++ {
			s += fmt.Sprintf(" %d", m.counts[m.index(i, j)])
		}
		s += "\n"
	}
	return s
}
