package itemset

import (
	"fmt"
	"sort"
	"strings"
)

// Itemsets is a collection of itemsets grouped by size.
// _levels_ holds at index k the itemsets made of k items
// _count_ is the total number of itemsets
type Itemsets struct {
	name   string
	levels [][]Itemset
	count  int
}

// NewItemsets creates an empty collection named _name_
func NewItemsets(name string) *Itemsets {
	return &Itemsets{name: name, levels: make([][]Itemset, 1)}
}

// Name returns the name of the collection
func (s *Itemsets) Name() string {
	return s.name
}

// Add appends _itemset_ to the level matching its size
func (s *Itemsets) Add(itemset Itemset) {
	for len(s.levels) <= itemset.Size() {
		s.levels = append(s.levels, nil)
	}
	s.levels[itemset.Size()] = append(s.levels[itemset.Size()], itemset)
	s.count++
}

// Levels returns the itemsets grouped by size. Level 0 is always empty.
func (s *Itemsets) Levels() [][]Itemset {
	return s.levels
}

// Level returns the itemsets made of _size_ items
func (s *Itemsets) Level(size int) []Itemset {
	if size < 0 || size >= len(s.levels) {
		return nil
	}
	return s.levels[size]
}

// Count returns the number of itemsets in the collection
func (s *Itemsets) Count() int {
	return s.count
}

// Sorted returns every itemset ordered by size, then item by item
func (s *Itemsets) Sorted() []Itemset {
	all := make([]Itemset, 0, s.count)
	for _, level := range s.levels {
		all = append(all, level...)
	}
	sort.Slice(all, func(i, j int) bool { return Less(all[i], all[j]) })
	return all
}

// String prints the collection level by level
func (s *Itemsets) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, " ------- %s -------\n", s.name)
	for size, level := range s.levels {
		if len(level) == 0 {
			continue
		}
		fmt.Fprintf(&b, "  L%d\n", size)
		for k, itemset := range level {
			fmt.Fprintf(&b, "  pattern %d:  %s\n", k, itemset)
		}
	}
	fmt.Fprintf(&b, " --------------------------------\n")
	return b.String()
}
