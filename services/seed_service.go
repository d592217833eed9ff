package services

import (
	"log"
	"path/filepath"

	"github.com/rcastillo/bodega-api/models"
	"github.com/rcastillo/bodega-api/utils"
)

// SeedData is the one-shot triple fed into the initial bulk load.
type SeedData struct {
	Categories []models.Category
	Products   []models.Product
	Customers  []models.Customer
}

// SeedService supplies the first-run seed data
type SeedService interface {
	// Load returns the seed lists, falling back to built-in defaults for any
	// list whose file is absent or malformed
	Load() SeedData
}

// FileSeedService implements SeedService from JSON files in a directory
type FileSeedService struct {
	dir string
}

var seedServiceInstance SeedService

// InitSeedService initializes the seed service reading from dir
func InitSeedService(dir string) SeedService {
	seedServiceInstance = &FileSeedService{dir: dir}
	return seedServiceInstance
}

// GetSeedService returns the initialized seed service instance
func GetSeedService() SeedService {
	return seedServiceInstance
}

// SetSeedService sets the seed service instance (primarily for testing)
func SetSeedService(service SeedService) {
	seedServiceInstance = service
}

// Wire shapes of the bundled seed files. IDs are never read from disk, the
// database assigns them on insert.
type seedCategory struct {
	Name string `json:"name"`
}

type seedProduct struct {
	Name       string  `json:"name"`
	Price      float64 `json:"price"`
	CategoryID uint    `json:"categoryId"`
}

type seedCustomer struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
}

// Load reads categories.json, products.json and customers.json from the
// service directory. Each list falls back to the built-in bodega catalog
// independently when its file is missing or malformed.
func (s *FileSeedService) Load() SeedData {
	return SeedData{
		Categories: s.loadCategories(),
		Products:   s.loadProducts(),
		Customers:  s.loadCustomers(),
	}
}

func (s *FileSeedService) loadCategories() []models.Category {
	var rows []seedCategory
	path := filepath.Join(s.dir, "categories.json")
	if err := utils.ReadJSONFile(path, &rows); err != nil {
		log.Printf("Using default categories: %v", err)
		return defaultCategories()
	}
	categories := make([]models.Category, len(rows))
	for i, row := range rows {
		categories[i] = models.Category{Name: row.Name}
	}
	return categories
}

func (s *FileSeedService) loadProducts() []models.Product {
	var rows []seedProduct
	path := filepath.Join(s.dir, "products.json")
	if err := utils.ReadJSONFile(path, &rows); err != nil {
		log.Printf("Using default products: %v", err)
		return defaultProducts()
	}
	products := make([]models.Product, len(rows))
	for i, row := range rows {
		products[i] = models.Product{Name: row.Name, Price: row.Price, CategoryID: row.CategoryID}
	}
	return products
}

func (s *FileSeedService) loadCustomers() []models.Customer {
	var rows []seedCustomer
	path := filepath.Join(s.dir, "customers.json")
	if err := utils.ReadJSONFile(path, &rows); err != nil {
		log.Printf("Using default customers: %v", err)
		return defaultCustomers()
	}
	customers := make([]models.Customer, len(rows))
	for i, row := range rows {
		customers[i] = models.Customer{FirstName: row.FirstName, LastName: row.LastName, Email: row.Email}
	}
	return customers
}

// Built-in catalog for a typical bodega, used when no seed files ship with
// the binary.

func defaultCategories() []models.Category {
	return []models.Category{
		{Name: "Bebidas"},
		{Name: "Abarrotes"},
		{Name: "Lácteos"},
		{Name: "Snacks"},
		{Name: "Limpieza"},
		{Name: "Panadería"},
	}
}

func defaultProducts() []models.Product {
	return []models.Product{
		// Bebidas
		{Name: "Coca Cola 1.5L", Price: 4.50, CategoryID: 1},
		{Name: "Inca Kola 2L", Price: 5.00, CategoryID: 1},
		{Name: "Agua San Luis 625ml", Price: 1.50, CategoryID: 1},
		{Name: "Cerveza Pilsen 330ml", Price: 3.50, CategoryID: 1},

		// Abarrotes
		{Name: "Arroz Costeño 1kg", Price: 4.20, CategoryID: 2},
		{Name: "Azúcar Blanca 1kg", Price: 3.80, CategoryID: 2},
		{Name: "Aceite Primor 1L", Price: 8.50, CategoryID: 2},
		{Name: "Fideo Don Vittorio 250g", Price: 2.00, CategoryID: 2},

		// Lácteos
		{Name: "Leche Gloria 1L", Price: 4.50, CategoryID: 3},
		{Name: "Yogurt Gloria 1L", Price: 6.00, CategoryID: 3},
		{Name: "Queso Fresco 500g", Price: 12.00, CategoryID: 3},
		{Name: "Mantequilla Gloria 200g", Price: 7.50, CategoryID: 3},

		// Snacks
		{Name: "Papas Lays 150g", Price: 5.50, CategoryID: 4},
		{Name: "Doritos 140g", Price: 5.00, CategoryID: 4},
		{Name: "Galletas Oreo 432g", Price: 8.90, CategoryID: 4},
		{Name: "Chocolate Sublime 30g", Price: 2.00, CategoryID: 4},

		// Limpieza
		{Name: "Detergente Ariel 900g", Price: 12.50, CategoryID: 5},
		{Name: "Lejía Clorox 1L", Price: 4.50, CategoryID: 5},
		{Name: "Papel Higiénico Elite 4un", Price: 6.50, CategoryID: 5},
		{Name: "Jabón Bolívar 3un", Price: 3.00, CategoryID: 5},

		// Panadería
		{Name: "Pan Francés", Price: 0.30, CategoryID: 6},
		{Name: "Pan Integral", Price: 0.50, CategoryID: 6},
		{Name: "Tostadas Bimbo", Price: 5.50, CategoryID: 6},
		{Name: "Pan de Molde Bimbo", Price: 6.00, CategoryID: 6},
	}
}

func defaultCustomers() []models.Customer {
	return []models.Customer{
		{FirstName: "Juan", LastName: "Pérez", Email: "juan.perez@email.com"},
		{FirstName: "María", LastName: "García", Email: "maria.garcia@email.com"},
		{FirstName: "Carlos", LastName: "López", Email: "carlos.lopez@email.com"},
		{FirstName: "Ana", LastName: "Martínez", Email: "ana.martinez@email.com"},
		{FirstName: "Luis", LastName: "Rodríguez", Email: "luis.rodriguez@email.com"},
	}
}
