package handler

import (
	"sync/atomic"

	"github.com/gauravjuvekar/coloredlogs/core"
)

// OverflowPolicy defines how to handle full async queues
type OverflowPolicy int

const (
	// DropNewest drops the newest log record when queue is full
	DropNewest OverflowPolicy = iota
	// DropOldest drops the oldest log record when queue is full
	DropOldest
	// Block blocks the caller until space is available (with timeout)
	Block
)

// String returns the string representation of the policy
func (p OverflowPolicy) String() string {
	switch p {
	case DropNewest:
		return "DropNewest"
	case DropOldest:
		return "DropOldest"
	case Block:
		return "Block"
	default:
		return "Unknown"
	}
}

// DefaultLevelPolicy returns the default level-based overflow policies.
// Low-severity records are expendable under pressure; warnings and
// above must survive a full queue.
func DefaultLevelPolicy() map[core.Level]OverflowPolicy {
	return map[core.Level]OverflowPolicy{
		core.DebugLevel:    DropNewest,
		core.VerboseLevel:  DropNewest,
		core.InfoLevel:     DropNewest,
		core.NoticeLevel:   DropNewest,
		core.WarningLevel:  DropOldest,
		core.ErrorLevel:    Block,
		core.CriticalLevel: Block,
	}
}

// Stats tracks handler statistics
type Stats struct {
	// dropped counts dropped records per defined level; droppedOther
	// catches custom levels outside the defined range.
	dropped      [core.LevelCount]uint64
	droppedOther uint64
	// blockedTotal counts times logging blocked due to full queue
	blockedTotal uint64
	// processedTotal counts total processed logs
	processedTotal uint64
}

// NewStats creates a new Stats instance
func NewStats() *Stats {
	return &Stats{}
}

// IncrementDropped atomically increments the dropped counter for a level
func (s *Stats) IncrementDropped(level core.Level) {
	if level.Defined() {
		atomic.AddUint64(&s.dropped[level], 1)
		return
	}
	atomic.AddUint64(&s.droppedOther, 1)
}

// IncrementBlocked atomically increments the blocked counter
func (s *Stats) IncrementBlocked() {
	atomic.AddUint64(&s.blockedTotal, 1)
}

// IncrementProcessed atomically increments the processed counter
func (s *Stats) IncrementProcessed() {
	atomic.AddUint64(&s.processedTotal, 1)
}

// GetDropped returns the dropped count for a level
func (s *Stats) GetDropped(level core.Level) uint64 {
	if level.Defined() {
		return atomic.LoadUint64(&s.dropped[level])
	}
	return atomic.LoadUint64(&s.droppedOther)
}

// GetBlocked returns the blocked count
func (s *Stats) GetBlocked() uint64 {
	return atomic.LoadUint64(&s.blockedTotal)
}

// GetProcessed returns the processed count
func (s *Stats) GetProcessed() uint64 {
	return atomic.LoadUint64(&s.processedTotal)
}

// GetTotalDropped returns the total dropped across all levels
func (s *Stats) GetTotalDropped() uint64 {
	var total uint64
	for l := range s.dropped {
		total += atomic.LoadUint64(&s.dropped[l])
	}
	return total + atomic.LoadUint64(&s.droppedOther)
}

// Reset resets all counters to zero
func (s *Stats) Reset() {
	for l := range s.dropped {
		atomic.StoreUint64(&s.dropped[l], 0)
	}
	atomic.StoreUint64(&s.droppedOther, 0)
	atomic.StoreUint64(&s.blockedTotal, 0)
	atomic.StoreUint64(&s.processedTotal, 0)
}

// Snapshot returns a snapshot of current stats
type Snapshot struct {
	DroppedTotal   map[core.Level]uint64
	BlockedTotal   uint64
	ProcessedTotal uint64
}

// GetSnapshot returns a snapshot of current statistics
func (s *Stats) GetSnapshot() Snapshot {
	dropped := make(map[core.Level]uint64, core.LevelCount)
	for l := core.DebugLevel; l <= core.CriticalLevel; l++ {
		dropped[l] = s.GetDropped(l)
	}
	return Snapshot{
		DroppedTotal:   dropped,
		BlockedTotal:   s.GetBlocked(),
		ProcessedTotal: s.GetProcessed(),
	}
}
