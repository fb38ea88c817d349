/*
Package sink implements the destinations of the closed itemsets found by the
miners.

 1. Collector: keeps every itemset in memory, grouped by size.
 2. Writer: streams itemsets in the SPMF text format to an io.Writer.
 3. Redis: persists itemsets in Redis, see LoadRedis to read them back.
 4. TopK: keeps the k itemsets with the highest support.
 5. Chain: forwards every itemset to several sinks.

The miners call Emit sequentially; none of the sinks is safe for concurrent
use.
*/
package sink

import (
	"github.com/kwertop/gocharm/itemset"
)

type Sink interface {
	// Emit receives an accepted closed itemset. An error aborts the mining.
	Emit(is itemset.Itemset) error
}

// Func adapts a function to the Sink interface
type Func func(is itemset.Itemset) error

// Emit calls f(is)
func (f Func) Emit(is itemset.Itemset) error {
	return f(is)
}

// Collector accumulates itemsets grouped by size
type Collector struct {
	itemsets *itemset.Itemsets
}

// NewCollector creates a Collector whose itemsets are named _name_
func NewCollector(name string) *Collector {
	return &Collector{itemset.NewItemsets(name)}
}

// Emit adds _is_ to the collected itemsets
func (c *Collector) Emit(is itemset.Itemset) error {
	c.itemsets.Add(is)
	return nil
}

// Itemsets returns the collected itemsets
func (c *Collector) Itemsets() *itemset.Itemsets {
	return c.itemsets
}

// Chain forwards every itemset to each of its sinks, in order
type Chain []Sink

// NewChain creates a Chain of _sinks_
func NewChain(sinks ...Sink) Chain {
	return Chain(sinks)
}

// Emit forwards _is_ to every sink and stops at the first error
func (c Chain) Emit(is itemset.Itemset) error {
	for _, s := range c {
		if err := s.Emit(is); err != nil {
			return err
		}
	}
	return nil
}
