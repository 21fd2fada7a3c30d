package repository

import (
	"testing"

	"wallet/internal/infrastructure/adapter/logger"
	timeProvider "wallet/internal/infrastructure/adapter/time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// newDryRunDB opens a GORM session that builds SQL without touching a
// database, so tests can assert the statements the repository generates.
func newDryRunDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN: "host=localhost user=wallet dbname=wallet",
	}), &gorm.Config{
		DryRun:               true,
		DisableAutomaticPing: true,
		Logger:               gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	return db
}

func TestLockUser_GeneratesRowLock(t *testing.T) {
	db := newDryRunDB(t)

	var captured string
	err := db.Callback().Query().After("gorm:query").Register("test:capture_sql", func(tx *gorm.DB) {
		captured = tx.Statement.SQL.String()
	})
	require.NoError(t, err)

	repo := NewLedgerRepository(db, timeProvider.NewRealTimeProvider(), logger.NewNoopLogger())

	_, err = repo.lockUser(db, 42)
	require.NoError(t, err)

	// Without FOR UPDATE the read-modify-write cycle in Credit, Debit,
	// Transfer and Purchase would be racy under READ COMMITTED.
	require.Contains(t, captured, "FOR UPDATE")
	require.Contains(t, captured, `"users"`)
}

func TestLockOrder_Ascending(t *testing.T) {
	require.Equal(t, [2]uint64{3, 7}, lockOrder(7, 3))
	require.Equal(t, [2]uint64{3, 7}, lockOrder(3, 7))
}
