package stats

import (
	"runtime"

	"github.com/dustin/go-humanize"
)

// MemorySampler records the highest heap usage seen across calls to Sample
type MemorySampler struct {
	peak uint64
}

// Sample reads the current heap usage and updates the peak
func (m *MemorySampler) Sample() uint64 {
	var ms runtime.MemStats
	runtime.ReadMemStats(&ms)
	if ms.HeapAlloc > m.peak {
		m.peak = ms.HeapAlloc
	}
	return ms.HeapAlloc
}

// Peak returns the highest heap usage sampled
func (m *MemorySampler) Peak() uint64 {
	return m.peak
}

func (m *MemorySampler) String() string {
	return humanize.IBytes(m.peak)
}
