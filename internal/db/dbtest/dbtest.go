// Package dbtest opens migrated in-memory sqlite databases for tests.
package dbtest

import (
	"fmt"
	"testing"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/slot-exchange/internal/db"
)

// New returns a private, migrated database that lives until the test ends.
// A single connection keeps the in-memory database alive and serializes
// access, so code running inside a transaction must only use its tx.
func New(t testing.TB) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:slotx_%s?mode=memory&cache=shared", uuid.NewString())
	gdb, err := db.Open(dsn)
	if err != nil {
		t.Fatalf("failed to open sqlite db: %v", err)
	}

	sqlDB, err := gdb.DB()
	if err != nil {
		t.Fatalf("failed to get sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := db.Migrate(gdb); err != nil {
		t.Fatalf("failed to migrate db: %v", err)
	}

	t.Cleanup(func() { _ = sqlDB.Close() })
	return gdb
}
