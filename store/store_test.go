package store

import (
	"testing"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// newTestStores opens a fresh in-memory database with the schema applied and
// returns the accessor bundle over it.
func newTestStores(t *testing.T) *Stores {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("Failed to get database instance: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := Migrate(db); err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}

	return New(db)
}

// waitFor reads emissions from a live view until one satisfies pred, failing
// the test after two seconds.
func waitFor[T any](t *testing.T, ch <-chan []T, pred func([]T) bool) []T {
	t.Helper()

	deadline := time.After(2 * time.Second)
	for {
		select {
		case rows, ok := <-ch:
			if !ok {
				t.Fatal("live view closed before the expected emission")
			}
			if pred(rows) {
				return rows
			}
		case <-deadline:
			t.Fatal("timed out waiting for live view emission")
		}
	}
}
