// Package analyzer - Rolling statistics over per-frame object counts.
//
// The SurveillanceAnalyzer consumes one object count per processed frame and
// maintains a bounded chronological history of the most recent counts. It is
// deliberately independent of how the counts were produced: the detector hands
// over len(boxes) and nothing else.
package analyzer

import (
	"sync"

	"gonum.org/v1/gonum/stat"
)

// HistoryCapacity is the fixed number of per-frame counts retained. Once the
// history is full, each new count evicts the oldest one.
const HistoryCapacity = 100

// Stats is a point-in-time snapshot derived from the count history. All
// fields are zero when the history is empty.
type Stats struct {
	// Current is the most recently recorded count.
	Current int
	// Average is the arithmetic mean over the retained history.
	Average float64
	// Max is the largest retained count.
	Max int
	// Min is the smallest retained count.
	Min int
}

// SurveillanceAnalyzer accumulates per-frame object counts in a
// fixed-capacity ring buffer and serves live statistics over them.
//
// A single writer calls Update once per frame, in frame order. Stats and
// History may be called concurrently with the writer; each Update is a
// critical section, so readers observe either the pre- or post-update
// history, never a partial one.
type SurveillanceAnalyzer struct {
	counts [HistoryCapacity]int
	head   int // index of the oldest entry
	size   int
	mu     sync.RWMutex
}

// NewSurveillanceAnalyzer creates an analyzer with an empty history.
//
// Returns:
//   - *SurveillanceAnalyzer: The initialized analyzer.
//
// @example
// analyzer := NewSurveillanceAnalyzer()
// analyzer.Update(len(result.Boxes))
// fmt.Printf("avg objects: %.1f\n", analyzer.Stats().Average)
func NewSurveillanceAnalyzer() *SurveillanceAnalyzer {
	return &SurveillanceAnalyzer{}
}

// Update appends one frame's object count to the history, evicting the
// oldest count once the capacity is reached. Push and eviction are O(1);
// the ring buffer makes the capacity bound structural rather than checked.
//
// Arguments:
//   - count: Number of objects detected in the current frame.
func (sa *SurveillanceAnalyzer) Update(count int) {
	sa.mu.Lock()
	defer sa.mu.Unlock()

	if sa.size < HistoryCapacity {
		sa.counts[(sa.head+sa.size)%HistoryCapacity] = count
		sa.size++
		return
	}
	// Full: overwrite the oldest slot and advance the head.
	sa.counts[sa.head] = count
	sa.head = (sa.head + 1) % HistoryCapacity
}

// Stats computes statistics over the current history.
//
// Returns:
//   - Stats: Current/average/max/min over the retained counts; all zero
//     when no counts have been recorded.
func (sa *SurveillanceAnalyzer) Stats() Stats {
	sa.mu.RLock()
	defer sa.mu.RUnlock()

	if sa.size == 0 {
		return Stats{}
	}

	values := make([]float64, sa.size)
	max := sa.at(0)
	min := max
	for i := 0; i < sa.size; i++ {
		c := sa.at(i)
		values[i] = float64(c)
		if c > max {
			max = c
		}
		if c < min {
			min = c
		}
	}

	return Stats{
		Current: sa.at(sa.size - 1),
		Average: stat.Mean(values, nil),
		Max:     max,
		Min:     min,
	}
}

// History returns a copy of the retained counts in chronological order,
// oldest first. Mutating the returned slice does not affect the analyzer.
//
// Returns:
//   - []int: Snapshot of the count history; empty slice when no counts
//     have been recorded.
func (sa *SurveillanceAnalyzer) History() []int {
	sa.mu.RLock()
	defer sa.mu.RUnlock()

	history := make([]int, sa.size)
	for i := 0; i < sa.size; i++ {
		history[i] = sa.at(i)
	}
	return history
}

// Reset clears the history. Safe to call at any time, including on an
// already-empty analyzer.
func (sa *SurveillanceAnalyzer) Reset() {
	sa.mu.Lock()
	defer sa.mu.Unlock()
	sa.head = 0
	sa.size = 0
}

// at returns the i-th oldest count. Callers must hold the lock.
func (sa *SurveillanceAnalyzer) at(i int) int {
	return sa.counts[(sa.head+i)%HistoryCapacity]
}
