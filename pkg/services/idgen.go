package services

import (
	"sync/atomic"
	"time"
)

// IDGenerator issues identifiers derived from wall-clock milliseconds.
// Ids are strictly increasing for the process lifetime even when several
// requests land in the same millisecond or the clock steps backwards.
type IDGenerator struct {
	last atomic.Int64
	now  func() time.Time
}

func NewIDGenerator(now func() time.Time) *IDGenerator {
	if now == nil {
		now = time.Now
	}
	return &IDGenerator{now: now}
}

// Next returns the next identifier
func (g *IDGenerator) Next() int64 {
	for {
		prev := g.last.Load()
		next := g.now().UnixMilli()
		if next <= prev {
			next = prev + 1
		}
		if g.last.CompareAndSwap(prev, next) {
			return next
		}
	}
}
