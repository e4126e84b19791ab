package testutils

import (
	"testing"

	"github.com/visaquest/visaquest-go/internal/domain/form"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// SetupSQLite opens an isolated in-memory database, migrated and ready for
// handler-level tests that do not need real postgres.
func SetupSQLite(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("unwrap sqlite: %v", err)
	}
	// A single connection keeps every session on the same in-memory database.
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	if err := db.AutoMigrate(&form.Application{}); err != nil {
		t.Fatalf("migrate sqlite: %v", err)
	}
	return db
}
