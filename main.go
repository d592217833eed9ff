package main

import (
	"context"
	"log"
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/rcastillo/bodega-api/config"
	"github.com/rcastillo/bodega-api/controllers"
	"github.com/rcastillo/bodega-api/middleware"
	"github.com/rcastillo/bodega-api/repository"
	"github.com/rcastillo/bodega-api/services"
	"github.com/rcastillo/bodega-api/state"
	"github.com/rcastillo/bodega-api/store"
)

func main() {
	// Basic logging
	log.Println("Starting Bodega Inventory API server...")

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Connect to database
	if err := config.ConnectDatabase(); err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Auto-migrate database models
	db := config.GetDB()
	if err := store.Migrate(db); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}
	log.Println("Database migration completed successfully")

	// Wire the core: accessors -> repository -> view state
	stores := store.New(db)
	repo := repository.New(stores)
	viewState := state.New(repo)
	defer viewState.Close()

	// Seed the catalog on first run only
	services.InitSeedService(cfg.SeedDir)
	if err := seedFirstRun(repo, viewState); err != nil {
		log.Fatalf("Failed to seed initial data: %v", err)
	}

	env := controllers.NewEnv(repo, viewState)
	router := setupRouter(env)

	// Start server
	port := ":" + cfg.Port
	log.Printf("Server is running on http://localhost%s", port)
	if err := router.Run(port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

// setupRouter builds the Gin engine with middleware and every API route.
func setupRouter(env *controllers.Env) *gin.Engine {
	router := gin.Default()
	router.Use(cors.Default())
	router.Use(middleware.RequestID())

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		// Health check endpoint
		v1.GET("/health", healthCheck)

		// Database status endpoint
		v1.GET("/database/status", databaseStatus)

		v1.GET("/categories", env.ListCategories)
		v1.GET("/categories/:id", env.GetCategory)
		v1.POST("/categories", env.CreateCategory)
		v1.PUT("/categories/:id", env.UpdateCategory)
		v1.DELETE("/categories/:id", env.DeleteCategory)

		v1.GET("/products", env.ListProducts)
		v1.GET("/products/:id", env.GetProduct)
		v1.POST("/products", env.CreateProduct)
		v1.PUT("/products/:id", env.UpdateProduct)
		v1.DELETE("/products/:id", env.DeleteProduct)

		v1.GET("/customers", env.ListCustomers)
		v1.GET("/customers/:id", env.GetCustomer)
		v1.POST("/customers", env.CreateCustomer)
		v1.PUT("/customers/:id", env.UpdateCustomer)
		v1.DELETE("/customers/:id", env.DeleteCustomer)

		v1.GET("/orders", env.ListOrders)
		v1.GET("/orders/:id", env.GetOrder)
		v1.POST("/orders", env.CreateOrder)
		v1.PUT("/orders/:id", env.UpdateOrder)
		v1.DELETE("/orders/:id", env.DeleteOrder)

		v1.GET("/orders/:id/details", env.ListOrderDetails)
		v1.GET("/orders/:id/details/:productId", env.GetOrderDetail)
		v1.POST("/orders/:id/details", env.CreateOrderDetail)
		v1.PUT("/orders/:id/details/:productId", env.UpdateOrderDetail)
		v1.DELETE("/orders/:id/details/:productId", env.DeleteOrderDetail)
		v1.DELETE("/orders/:id/details", env.ClearOrderDetails)

		v1.GET("/state", env.GetState)
		v1.GET("/live/state", env.LiveState)
		v1.PUT("/selections/category", env.SelectCategory)
		v1.PUT("/selections/order", env.SelectOrder)
	}

	return router
}

// seedFirstRun loads the initial catalog once per database lifetime, guarded
// by the persisted first-run flag.
func seedFirstRun(repo *repository.Repository, viewState *state.ViewState) error {
	ctx := context.Background()

	_, done, err := repo.GetSetting(ctx, store.FirstRunKey)
	if err != nil {
		return err
	}
	if done {
		log.Println("Seed data already loaded, skipping")
		return nil
	}

	data := services.GetSeedService().Load()
	if err := <-viewState.LoadInitialData(data.Categories, data.Products, data.Customers); err != nil {
		return err
	}
	if err := repo.SetSetting(ctx, store.FirstRunKey, "true"); err != nil {
		return err
	}

	log.Printf("Seed data loaded: %d categories, %d products, %d customers",
		len(data.Categories), len(data.Products), len(data.Customers))
	return nil
}

// healthCheck handles the health check endpoint
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Bodega Inventory API is running",
	})
}

// databaseStatus checks database connectivity and returns table information
func databaseStatus(c *gin.Context) {
	db := config.GetDB()

	// Get the underlying SQL database to check connection
	sqlDB, err := db.DB()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "DATABASE_ERROR",
				"message": "Failed to get database instance",
			},
		})
		return
	}

	// Ping the database to verify connection
	if err := sqlDB.Ping(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "DATABASE_CONNECTION_ERROR",
				"message": "Database connection failed",
			},
		})
		return
	}

	// List tables through the migrator so both backends are covered
	tables, err := db.Migrator().GetTables()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "DATABASE_QUERY_ERROR",
				"message": "Failed to query tables",
			},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Database connected",
		"tables":  tables,
	})
}
