package charm

import (
	"context"
	"fmt"
	"math/rand"
	"sort"
	"testing"

	"github.com/kwertop/gocharm/database"
	"github.com/kwertop/gocharm/itemset"
	"github.com/kwertop/gocharm/sink"
	"github.com/kwertop/gocharm/stats"
	"github.com/kwertop/gocharm/tidset"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDatabase(t *testing.T, transactions ...[]int) *database.Database {
	db, err := database.New(transactions)
	require.NoError(t, err)
	return db
}

func mine(t *testing.T, db *database.Database, config Config) []string {
	itemsets, err := Mine(db, config)
	require.NoError(t, err)
	return keys(itemsets.Sorted())
}

func keys(itemsets []itemset.Itemset) []string {
	out := make([]string, 0, len(itemsets))
	for _, is := range itemsets {
		out = append(out, is.String())
	}
	sort.Strings(out)
	return out
}

// configs returns every combination of representation and matrix usage
func configs(minsup float64) map[string]Config {
	out := make(map[string]Config)
	for _, representation := range []Representation{Tidsets, Diffsets} {
		for _, useMatrix := range []bool{false, true} {
			config := DefaultConfig()
			config.Minsup = minsup
			config.Representation = representation
			config.UseTriangularMatrix = useMatrix
			out[fmt.Sprintf("%v/matrix=%v", representation, useMatrix)] = config
		}
	}
	return out
}

func TestScenario(t *testing.T) {
	db := newDatabase(t, []int{1, 2, 3}, []int{1, 2}, []int{1, 3}, []int{2, 3})
	expected := []string{
		"1 #SUP: 3", "1 2 #SUP: 2", "1 3 #SUP: 2",
		"2 #SUP: 3", "2 3 #SUP: 2", "3 #SUP: 3",
	}
	for name, config := range configs(0.5) {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, expected, mine(t, db, config))
		})
	}
}

func TestPasquier(t *testing.T) {
	db := newDatabase(t,
		[]int{1, 3, 4},
		[]int{2, 3, 5},
		[]int{1, 2, 3, 5},
		[]int{2, 5},
		[]int{1, 2, 3, 5},
	)
	expected := []string{
		"1 2 3 5 #SUP: 2", "1 3 #SUP: 3", "1 3 4 #SUP: 1",
		"2 3 5 #SUP: 3", "2 5 #SUP: 4", "3 #SUP: 4",
	}
	for name, config := range configs(0.2) {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, expected, mine(t, db, config))
		})
	}
}

func TestSingleTransaction(t *testing.T) {
	db := newDatabase(t, []int{4, 2, 9})
	for name, config := range configs(1.0) {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, []string{"2 4 9 #SUP: 1"}, mine(t, db, config))
		})
	}
}

func TestFullSupport(t *testing.T) {
	db := newDatabase(t, []int{1, 2, 5}, []int{1, 2, 3}, []int{1, 2, 4, 5})
	for name, config := range configs(1.0) {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, []string{"1 2 #SUP: 3"}, mine(t, db, config))
		})
	}
	disjoint := newDatabase(t, []int{1}, []int{2})
	for name, config := range configs(1.0) {
		t.Run("disjoint/"+name, func(t *testing.T) {
			assert.Empty(t, mine(t, disjoint, config))
		})
	}
}

func TestEmptyDatabase(t *testing.T) {
	db := newDatabase(t)
	for name, config := range configs(0.5) {
		t.Run(name, func(t *testing.T) {
			assert.Empty(t, mine(t, db, config))
		})
	}
}

func TestNoFrequentItem(t *testing.T) {
	db := newDatabase(t, []int{1}, []int{2}, []int{3}, []int{4})
	assert.Empty(t, mine(t, db, configs(0.5)["tidsets/matrix=true"]))
}

// bruteForce enumerates every itemset over the items of _db_ and keeps the
// frequent ones without a superset of equal support
func bruteForce(db *database.Database, minsup int) []string {
	var items []int
	for item := 0; item <= db.MaxItem(); item++ {
		items = append(items, item)
	}
	support := func(set []int) int {
		count := 0
		for _, transaction := range db.Transactions() {
			if itemset.ContainsAll(transaction, set) {
				count++
			}
		}
		return count
	}
	var closed []itemset.Itemset
	for mask := 1; mask < 1<<len(items); mask++ {
		var set []int
		for k, item := range items {
			if mask&(1<<k) != 0 {
				set = append(set, item)
			}
		}
		s := support(set)
		if s < minsup {
			continue
		}
		isClosed := true
		for k, item := range items {
			if mask&(1<<k) != 0 {
				continue
			}
			superset := append(append([]int{}, set...), item)
			sort.Ints(superset)
			if support(superset) == s {
				isClosed = false
				break
			}
		}
		if isClosed {
			closed = append(closed, itemset.New(set, s))
		}
	}
	return keys(closed)
}

func randomDatabase(t *testing.T, r *rand.Rand, items, transactions int, density float64) *database.Database {
	txs := make([][]int, transactions)
	for tid := range txs {
		for item := 0; item < items; item++ {
			if r.Float64() < density {
				txs[tid] = append(txs[tid], item)
			}
		}
	}
	return newDatabase(t, txs...)
}

func TestAgainstBruteForce(t *testing.T) {
	r := rand.New(rand.NewSource(1373))
	for round := 0; round < 40; round++ {
		db := randomDatabase(t, r, 4+r.Intn(7), 5+r.Intn(20), 0.2+0.5*r.Float64())
		for _, minsup := range []float64{0.05, 0.2, 0.35, 0.6} {
			expected := bruteForce(db, MinsupRelative(minsup, db.Size()))
			for name, config := range configs(minsup) {
				got := mine(t, db, config)
				require.Equal(t, expected, got, "round %d minsup %v %s", round, minsup, name)
			}
		}
	}
}

func TestDeterminism(t *testing.T) {
	r := rand.New(rand.NewSource(42))
	db := randomDatabase(t, r, 12, 60, 0.4)
	config := configs(0.1)["diffsets/matrix=true"]
	first := mine(t, db, config)
	for k := 0; k < 3; k++ {
		assert.Equal(t, first, mine(t, db, config))
	}
}

func TestSmallHashTable(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	db := randomDatabase(t, r, 9, 30, 0.5)
	config := configs(0.1)["tidsets/matrix=false"]
	expected := mine(t, db, config)
	config.HashTableSize = 1
	assert.Equal(t, expected, mine(t, db, config))
}

func TestRunSummary(t *testing.T) {
	db := newDatabase(t, []int{1, 2, 3}, []int{1, 2}, []int{1, 3}, []int{2, 3}, []int{4})
	config := configs(0.4)["tidsets/matrix=true"]
	collector := sink.NewCollector("closed")
	reporter := stats.NewLogReporter(nil)
	m, err := NewMiner(config, collector, WithReporter(reporter))
	require.NoError(t, err)
	summary, err := m.Run(context.Background(), db)
	require.NoError(t, err)
	assert.Equal(t, "tidsets", summary.Representation)
	assert.Equal(t, 5, summary.Transactions)
	assert.Equal(t, 2, summary.MinsupRelative)
	assert.Equal(t, 3, summary.FrequentItems)
	assert.Equal(t, 6, summary.Closed)
	assert.Equal(t, 6, collector.Itemsets().Count())
	assert.Equal(t, 4, summary.Joins)
	assert.Zero(t, summary.MatrixPruned)
	assert.NotZero(t, summary.PeakMemory)
}

func TestMatrixPrunes(t *testing.T) {
	db := newDatabase(t, []int{1, 2}, []int{1, 2}, []int{3, 4}, []int{3, 4}, []int{1, 3})
	for _, useMatrix := range []bool{false, true} {
		config := configs(0.4)["tidsets/matrix=false"]
		config.UseTriangularMatrix = useMatrix
		m, err := NewMiner(config, sink.NewCollector("closed"))
		require.NoError(t, err)
		summary, err := m.Run(context.Background(), db)
		require.NoError(t, err)
		if useMatrix {
			assert.Equal(t, 4, summary.MatrixPruned)
		} else {
			assert.Zero(t, summary.MatrixPruned)
		}
		assert.Equal(t, 4, summary.Closed)
	}
}

func TestSinkError(t *testing.T) {
	db := newDatabase(t, []int{1, 2, 3}, []int{1, 2}, []int{1, 3}, []int{2, 3})
	emitted := 0
	failing := sink.Func(func(is itemset.Itemset) error {
		emitted++
		if emitted == 2 {
			return fmt.Errorf("disk full")
		}
		return nil
	})
	m, err := NewMiner(configs(0.5)["tidsets/matrix=false"], failing)
	require.NoError(t, err)
	_, err = m.Run(context.Background(), db)
	assert.EqualError(t, err, "disk full")
	assert.Equal(t, 2, emitted)
}

func TestCancelledContext(t *testing.T) {
	db := newDatabase(t, []int{1, 2, 3}, []int{1, 2}, []int{1, 3}, []int{2, 3})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	collector := sink.NewCollector("closed")
	m, err := NewMiner(configs(0.5)["tidsets/matrix=false"], collector)
	require.NoError(t, err)
	_, err = m.Run(ctx, db)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Zero(t, collector.Itemsets().Count())
}

func TestDiffsetsReachClosureTable(t *testing.T) {
	db := newDatabase(t, []int{1, 2, 3}, []int{1, 2}, []int{1, 3}, []int{2, 3})
	members := frequentMembers(scan(db, Diffsets), 2)
	require.Len(t, members, 3)
	for _, m := range members {
		assert.IsType(t, &tidset.Diffset{}, m.tids)
	}
	u := members[0].tids.Join(members[1].tids)
	assert.IsType(t, &tidset.Diffset{}, u)
	assert.Equal(t, 2, u.Support())
	assert.Equal(t, uint(2), u.Cover().Count())
}

func TestFrequentMembersOrder(t *testing.T) {
	db := newDatabase(t, []int{5, 1}, []int{5, 2}, []int{5, 1, 2, 7}, []int{7, 2})
	members := frequentMembers(scan(db, Tidsets), 2)
	var order []int
	for _, m := range members {
		order = append(order, m.items[0])
	}
	assert.Equal(t, []int{1, 7, 2, 5}, order)
}
