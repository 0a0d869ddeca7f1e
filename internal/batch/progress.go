package batch

import (
	"sync"
	"time"
)

// percentMultiplier converts a ratio to a percentage.
const percentMultiplier = 100

// Progress tracks a running batch. It is safe for concurrent use.
type Progress struct {
	totalItems     int
	processedItems int
	failedItems    int
	startTime      time.Time
	lastUpdateTime time.Time

	mu sync.RWMutex
}

// NewProgress creates a tracker for totalItems items.
func NewProgress(totalItems int) *Progress {
	now := time.Now()
	return &Progress{
		totalItems:     totalItems,
		startTime:      now,
		lastUpdateTime: now,
	}
}

// AddProcessed records one finished item.
func (p *Progress) AddProcessed(ok bool) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.processedItems++
	if !ok {
		p.failedItems++
	}
	p.lastUpdateTime = time.Now()
}

// Snapshot returns a copy of the current state.
func (p *Progress) Snapshot() ProgressSnapshot {
	p.mu.RLock()
	defer p.mu.RUnlock()

	return ProgressSnapshot{
		TotalItems:         p.totalItems,
		ProcessedItems:     p.processedItems,
		FailedItems:        p.failedItems,
		PercentComplete:    p.percentCompleteUnsafe(),
		ElapsedTime:        p.lastUpdateTime.Sub(p.startTime),
		EstimatedRemaining: p.remainingUnsafe(),
	}
}

// ProgressSnapshot is an immutable view of a Progress.
type ProgressSnapshot struct {
	TotalItems      int
	ProcessedItems  int
	FailedItems     int
	PercentComplete float64
	// ElapsedTime runs from the start to the last finished item.
	ElapsedTime time.Duration
	// EstimatedRemaining extrapolates from the average time per finished
	// item. It is 0 before the first item finishes and once all are done.
	EstimatedRemaining time.Duration
}

// Complete reports whether every item has finished.
func (s ProgressSnapshot) Complete() bool {
	return s.ProcessedItems >= s.TotalItems
}

// percentCompleteUnsafe must be called with the lock held.
func (p *Progress) percentCompleteUnsafe() float64 {
	if p.totalItems == 0 {
		return 0
	}
	return float64(p.processedItems) / float64(p.totalItems) * percentMultiplier
}

// remainingUnsafe must be called with the lock held.
func (p *Progress) remainingUnsafe() time.Duration {
	if p.processedItems == 0 || p.processedItems >= p.totalItems {
		return 0
	}
	perItem := p.lastUpdateTime.Sub(p.startTime) / time.Duration(p.processedItems)
	return perItem * time.Duration(p.totalItems-p.processedItems)
}
