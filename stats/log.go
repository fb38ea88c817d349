package stats

import (
	"time"

	"github.com/dustin/go-humanize"
	"github.com/sirupsen/logrus"
)

// LogReporter writes phases at debug level and the summary at info level
type LogReporter struct {
	logger logrus.FieldLogger
}

// NewLogReporter creates a LogReporter on _logger_, the standard logrus
// logger when nil
func NewLogReporter(logger logrus.FieldLogger) *LogReporter {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &LogReporter{logger}
}

func (l *LogReporter) PhaseDone(phase string, d time.Duration) {
	l.logger.WithField("phase", phase).Debugf("phase done in %v", d)
}

func (l *LogReporter) RunDone(summary Summary) {
	l.logger.WithFields(logrus.Fields{
		"representation": summary.Representation,
		"transactions":   summary.Transactions,
		"minsup":         summary.MinsupRelative,
		"frequent_items": summary.FrequentItems,
		"joins":          summary.Joins,
		"matrix_pruned":  summary.MatrixPruned,
		"elapsed":        summary.Elapsed,
		"peak_memory":    humanize.IBytes(summary.PeakMemory),
	}).Infof("found %s closed itemsets", humanize.Comma(int64(summary.Closed)))
}
