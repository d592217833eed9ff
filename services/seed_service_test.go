package services

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rcastillo/bodega-api/models"
)

func TestLoadFallsBackToDefaults(t *testing.T) {
	svc := &FileSeedService{dir: filepath.Join(t.TempDir(), "missing")}

	data := svc.Load()

	assert.Len(t, data.Categories, 6)
	assert.Len(t, data.Products, 24)
	assert.Len(t, data.Customers, 5)

	assert.Equal(t, "Bebidas", data.Categories[0].Name)
	assert.Equal(t, "Coca Cola 1.5L", data.Products[0].Name)
	assert.Equal(t, "juan.perez@email.com", data.Customers[0].Email)
}

func TestLoadReadsSeedFiles(t *testing.T) {
	dir := t.TempDir()
	writeSeedFile(t, dir, "categories.json", `[{"name":"Ferretería"}]`)
	writeSeedFile(t, dir, "products.json", `[{"name":"Martillo","price":25.0,"categoryId":1}]`)
	writeSeedFile(t, dir, "customers.json", `[{"firstName":"Pedro","lastName":"Suárez","email":"pedro@email.com"}]`)

	svc := &FileSeedService{dir: dir}
	data := svc.Load()

	require.Len(t, data.Categories, 1)
	assert.Equal(t, "Ferretería", data.Categories[0].Name)

	require.Len(t, data.Products, 1)
	assert.Equal(t, models.Product{Name: "Martillo", Price: 25.0, CategoryID: 1}, data.Products[0])

	require.Len(t, data.Customers, 1)
	assert.Equal(t, "pedro@email.com", data.Customers[0].Email)
}

func TestLoadFallsBackPerList(t *testing.T) {
	dir := t.TempDir()
	writeSeedFile(t, dir, "categories.json", `[{"name":"Ferretería"}]`)
	writeSeedFile(t, dir, "products.json", `{not json`)

	svc := &FileSeedService{dir: dir}
	data := svc.Load()

	// A malformed or missing file only affects its own list
	require.Len(t, data.Categories, 1)
	assert.Len(t, data.Products, 24)
	assert.Len(t, data.Customers, 5)
}

func TestSeedFilesNeverCarryIDs(t *testing.T) {
	dir := t.TempDir()
	writeSeedFile(t, dir, "categories.json", `[{"categoryId":99,"name":"Ferretería"}]`)

	svc := &FileSeedService{dir: dir}
	data := svc.Load()

	require.Len(t, data.Categories, 1)
	assert.Zero(t, data.Categories[0].CategoryID, "seed IDs come from the database, not the file")
}

func TestSeedServiceInstance(t *testing.T) {
	original := GetSeedService()
	defer SetSeedService(original)

	svc := InitSeedService(t.TempDir())
	assert.Same(t, svc, GetSeedService())

	stub := &stubSeedService{}
	SetSeedService(stub)
	assert.Same(t, SeedService(stub), GetSeedService())
}

type stubSeedService struct{}

func (s *stubSeedService) Load() SeedData { return SeedData{} }

func writeSeedFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}
