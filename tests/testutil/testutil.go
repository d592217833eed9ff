// Package testutil provides shared helpers for integration and acceptance
// tests.
package testutil

import (
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/rcastillo/bodega-api/repository"
	"github.com/rcastillo/bodega-api/state"
	"github.com/rcastillo/bodega-api/store"
)

// OpenTestDB opens an isolated in-memory SQLite database with the full
// schema applied. Each call returns a fresh database.
func OpenTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("Failed to get database instance: %v", err)
	}
	// One connection keeps every query on the same in-memory database
	sqlDB.SetMaxOpenConns(1)

	if err := store.Migrate(db); err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}

	return db
}

// App is a fully wired application core over a test database.
type App struct {
	DB     *gorm.DB
	Stores *store.Stores
	Repo   *repository.Repository
	State  *state.ViewState
}

// NewApp wires accessors, repository, and view state over a fresh in-memory
// database. The view state is torn down when the test finishes.
func NewApp(t *testing.T) *App {
	t.Helper()

	db := OpenTestDB(t)
	stores := store.New(db)
	repo := repository.New(stores)
	viewState := state.New(repo)
	t.Cleanup(viewState.Close)

	return &App{
		DB:     db,
		Stores: stores,
		Repo:   repo,
		State:  viewState,
	}
}
