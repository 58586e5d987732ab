package manager

import (
	"sync/atomic"
	"time"

	"github.com/toaddb/toaddb/internal/util/syncutil"
)

// Stats holds counters and timestamps about Manager usage.
type Stats struct {
	TablesCreated int64
	RowsInserted  int64
	FetchQueries  int64
	StartedAt     time.Time
	LastOperation time.Time
}

type managerStats struct {
	tablesCreated int64
	rowsInserted  int64
	fetchQueries  int64
	startedAt     time.Time
	lastOperation syncutil.Atomic[time.Time]
}

func (s *managerStats) start() {
	now := time.Now()
	s.startedAt = now
	s.lastOperation.Store(now)
}

func (s *managerStats) tableCreated() {
	atomic.AddInt64(&s.tablesCreated, 1)
	s.lastOperation.Store(time.Now())
}

func (s *managerStats) rowInserted() {
	atomic.AddInt64(&s.rowsInserted, 1)
	s.lastOperation.Store(time.Now())
}

func (s *managerStats) fetchRan() {
	atomic.AddInt64(&s.fetchQueries, 1)
	s.lastOperation.Store(time.Now())
}

func (s *managerStats) snapshot() Stats {
	return Stats{
		TablesCreated: atomic.LoadInt64(&s.tablesCreated),
		RowsInserted:  atomic.LoadInt64(&s.rowsInserted),
		FetchQueries:  atomic.LoadInt64(&s.fetchQueries),
		StartedAt:     s.startedAt,
		LastOperation: s.lastOperation.Load(),
	}
}
