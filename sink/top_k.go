package sink

import (
	"container/heap"
	"fmt"
	"sort"

	"github.com/kwertop/gocharm/itemset"
)

// minHeap keeps the weakest retained itemset at the root: lowest support
// first, then the one ordering last
type minHeap []itemset.Itemset

func (h minHeap) Len() int {
	return len(h)
}

func (h minHeap) Less(i, j int) bool {
	return weaker(h[i], h[j])
}

func (h minHeap) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
}

func (h *minHeap) Push(x any) {
	*h = append(*h, x.(itemset.Itemset))
}

func (h *minHeap) Pop() any {
	old := *h
	n := len(old)
	x := old[n-1]
	*h = old[0 : n-1]
	return x
}

func weaker(a, b itemset.Itemset) bool {
	if a.Support != b.Support {
		return a.Support < b.Support
	}
	return itemset.Less(b, a)
}

// TopK retains the _k_ closed itemsets with the highest support.
// Ties are broken in favour of smaller itemsets, then lower items.
type TopK struct {
	k    int
	heap minHeap
}

// NewTopK creates a TopK retaining _k_ itemsets
func NewTopK(k int) (*TopK, error) {
	if k <= 0 {
		return nil, fmt.Errorf("gocharm: k should be greater than 0, got %d", k)
	}
	return &TopK{k, make(minHeap, 0, k)}, nil
}

// Emit retains _is_ if it ranks among the top k seen so far
func (t *TopK) Emit(is itemset.Itemset) error {
	if len(t.heap) < t.k {
		heap.Push(&t.heap, is)
		return nil
	}
	if weaker(t.heap[0], is) {
		t.heap[0] = is
		heap.Fix(&t.heap, 0)
	}
	return nil
}

// MinSupport returns the lowest support retained, 0 while fewer than k
// itemsets were seen
func (t *TopK) MinSupport() int {
	if len(t.heap) < t.k {
		return 0
	}
	return t.heap[0].Support
}

// Values returns the retained itemsets, highest support first
func (t *TopK) Values() []itemset.Itemset {
	values := make([]itemset.Itemset, len(t.heap))
	copy(values, t.heap)
	sort.Slice(values, func(i, j int) bool { return weaker(values[j], values[i]) })
	return values
}
