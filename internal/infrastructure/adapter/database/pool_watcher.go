package database

import (
	"database/sql"
	"sync"
	"sync/atomic"
	"time"

	coreport "github.com/amirhossein-jamali/loan-cob-lock/internal/domain/port/core"
)

const (
	poolSampleInterval = 30 * time.Second
	// share of MaxOpenConnections in use above which a warning is logged
	poolSaturation = 0.8
)

// PoolStatsObserver receives connection pool snapshots
type PoolStatsObserver interface {
	ObservePoolStats(stats sql.DBStats)
}

// poolWatcher samples pool statistics on an interval and hands them to an observer
type poolWatcher struct {
	sqlDB    *sql.DB
	log      coreport.Logger
	observer PoolStatsObserver
	last     atomic.Pointer[sql.DBStats]
	done     chan struct{}
	stopOnce sync.Once
}

func newPoolWatcher(sqlDB *sql.DB, log coreport.Logger, observer PoolStatsObserver) *poolWatcher {
	return &poolWatcher{
		sqlDB:    sqlDB,
		log:      log,
		observer: observer,
		done:     make(chan struct{}),
	}
}

// start takes a first sample synchronously, then keeps sampling until stop
func (w *poolWatcher) start(interval time.Duration) {
	w.sample()

	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				w.sample()
			case <-w.done:
				return
			}
		}
	}()
}

func (w *poolWatcher) stop() {
	w.stopOnce.Do(func() { close(w.done) })
}

// stats returns the latest sample
func (w *poolWatcher) stats() sql.DBStats {
	if s := w.last.Load(); s != nil {
		return *s
	}
	return sql.DBStats{}
}

func (w *poolWatcher) sample() {
	s := w.sqlDB.Stats()
	w.last.Store(&s)
	if w.observer != nil {
		w.observer.ObservePoolStats(s)
	}

	if s.MaxOpenConnections > 0 && float64(s.InUse) > float64(s.MaxOpenConnections)*poolSaturation {
		w.log.Warn("Database connection pool nearly exhausted", map[string]any{
			"in_use":     s.InUse,
			"max_open":   s.MaxOpenConnections,
			"idle":       s.Idle,
			"wait_count": s.WaitCount,
			"wait_time":  s.WaitDuration.String(),
		})
	}
}
