package database

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/amirhossein-jamali/loan-cob-lock/internal/infrastructure/adapter/logger"
	coremocks "github.com/amirhossein-jamali/loan-cob-lock/mocks/port/core"
)

func TestPoolWatcher_WarnsWhenSaturated(t *testing.T) {
	db := NewTestDB(t, logger.NewNoopLogger())
	sqlDB, err := db.DB()
	require.NoError(t, err)

	conn, err := sqlDB.Conn(context.Background())
	require.NoError(t, err)
	defer func() { _ = conn.Close() }()

	log := coremocks.NewMockLogger(t)
	var fields map[string]any
	log.EXPECT().Warn("Database connection pool nearly exhausted", mock.Anything).Run(func(_ string, f map[string]any) {
		fields = f
	}).Once()

	observer := &recordingPoolObserver{}
	watcher := newPoolWatcher(sqlDB, log, observer)
	watcher.sample()

	assert.Equal(t, 1, observer.count())
	assert.Equal(t, 1, watcher.stats().InUse)
	assert.Equal(t, 1, fields["in_use"])
	assert.Equal(t, 1, fields["max_open"])
}

func TestPoolWatcher_StartStop(t *testing.T) {
	db := NewTestDB(t, logger.NewNoopLogger())
	sqlDB, err := db.DB()
	require.NoError(t, err)

	watcher := newPoolWatcher(sqlDB, logger.NewNoopLogger(), nil)
	assert.Zero(t, watcher.stats())

	watcher.start(time.Hour)
	assert.Equal(t, 1, watcher.stats().MaxOpenConnections)

	watcher.stop()
	watcher.stop()
}
