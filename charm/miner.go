/*
Package charm mines the frequent closed itemsets of a transaction database
with the CHARM algorithm of Zaki and Hsiao, or its dCHARM variant when the
configured representation is Diffsets.

Items are ordered by ascending support. Every equivalence class is extended
depth first; pairs of members are joined and compared with four properties
to merge, drop or defer them. Each candidate goes through a closure table
which rejects itemsets subsumed by an accepted superset of equal support,
then through the sink.

	db, _ := database.LoadFile("contextPasquier99.txt")
	itemsets, err := charm.Mine(db, charm.DefaultConfig())
*/
package charm

import (
	"context"
	"time"

	"github.com/kwertop/gocharm/closure"
	"github.com/kwertop/gocharm/database"
	"github.com/kwertop/gocharm/itemset"
	"github.com/kwertop/gocharm/sink"
	"github.com/kwertop/gocharm/stats"
	log "github.com/sirupsen/logrus"
)

// Miner runs CHARM with a fixed Config and forwards the closed itemsets to
// a Sink
type Miner struct {
	config   Config
	sink     sink.Sink
	reporter stats.Reporter
}

type Option func(*Miner)

// WithReporter sets the Reporter notified of every phase and run
func WithReporter(reporter stats.Reporter) Option {
	return func(m *Miner) {
		m.reporter = reporter
	}
}

// NewMiner creates a Miner emitting to _s_. The config is validated.
func NewMiner(config Config, s sink.Sink, opts ...Option) (*Miner, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	m := &Miner{config, s, stats.Nop{}}
	for _, opt := range opts {
		opt(m)
	}
	return m, nil
}

// Config returns the configuration of the miner
func (m *Miner) Config() Config {
	return m.config
}

// Run mines _db_. The context is checked between the items of the top
// level class; a cancelled run returns the context error and the itemsets
// already emitted stay in the sink. An error from the sink aborts the run.
func (m *Miner) Run(ctx context.Context, db *database.Database) (stats.Summary, error) {
	start := time.Now()
	var memory stats.MemorySampler
	memory.Sample()
	summary := stats.Summary{
		Representation: m.config.Representation.String(),
		Transactions:   db.Size(),
		MinsupRelative: MinsupRelative(m.config.Minsup, db.Size()),
	}
	table, err := closure.New(m.config.HashTableSize)
	if err != nil {
		return summary, err
	}
	e := &extender{minsup: summary.MinsupRelative, table: table, sink: m.sink}

	phase := time.Now()
	vectors := scan(db, m.config.Representation)
	members := frequentMembers(vectors, summary.MinsupRelative)
	summary.FrequentItems = len(members)
	memory.Sample()
	m.reporter.PhaseDone(stats.PhaseScan, time.Since(phase))
	log.Debugf("scanned %d transactions, %d frequent items at support %d",
		db.Size(), len(members), summary.MinsupRelative)

	if m.config.UseTriangularMatrix && len(members) > 2 {
		phase = time.Now()
		e.matrix, err = countPairs(db)
		if err != nil {
			return summary, err
		}
		memory.Sample()
		m.reporter.PhaseDone(stats.PhaseMatrix, time.Since(phase))
	}

	phase = time.Now()
	err = e.extend(ctx, nil, members)
	memory.Sample()
	m.reporter.PhaseDone(stats.PhaseMine, time.Since(phase))

	summary.Closed = e.closed
	summary.Joins = e.joins
	summary.MatrixPruned = e.pruned
	summary.Elapsed = time.Since(start)
	summary.PeakMemory = memory.Peak()
	if err != nil {
		return summary, err
	}
	log.Debugf("closure table holds %d itemsets in %d of %d buckets", table.Len(), table.Used(), table.Size())
	m.reporter.RunDone(summary)
	return summary, nil
}

// Mine runs CHARM on _db_ with _config_ and collects the closed itemsets
func Mine(db *database.Database, config Config) (*itemset.Itemsets, error) {
	collector := sink.NewCollector("closed itemsets")
	m, err := NewMiner(config, collector)
	if err != nil {
		return nil, err
	}
	if _, err := m.Run(context.Background(), db); err != nil {
		return nil, err
	}
	return collector.Itemsets(), nil
}
