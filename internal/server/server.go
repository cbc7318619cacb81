package server

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	_ "github.com/joho/godotenv/autoload"
	"github.com/redis/go-redis/v9"

	"backoffice/internal/config"
	"backoffice/internal/database"
	"backoffice/internal/handlers"
	"backoffice/internal/messaging"
	"backoffice/internal/repositories"
	"backoffice/internal/routes"
	"backoffice/internal/services"
)

func NewServer() *http.Server {
	cfg := config.Load()

	if err := database.EnsureDatabaseExists(); err != nil {
		log.Fatalf("failed to ensure database exists: %v", err)
	}

	pool, err := database.Connect()
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	if err := database.RunMigrations(pool); err != nil {
		log.Fatalf("failed to run migrations: %v", err)
	}

	orm, err := database.OpenORM()
	if err != nil {
		log.Fatalf("failed to open ORM session: %v", err)
	}

	// Redis is optional; without it product lookups skip the cache
	var rdb *redis.Client
	if cfg.RedisAddr != "" {
		rdb = redis.NewClient(&redis.Options{
			Addr: cfg.RedisAddr,
		})

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := rdb.Ping(ctx).Err(); err != nil {
			log.Fatalf("failed to connect to Redis at %s: %v", cfg.RedisAddr, err)
		}
		log.Println("Connected to Redis successfully")
	}

	producer := messaging.NewOrderEventProducer(cfg.KafkaBroker, cfg.KafkaTopic)

	// Dependency injection
	customerRepo := repositories.NewCustomerRepository(pool)
	employeeRepo := repositories.NewEmployeeRepository(pool)
	productRepo := repositories.NewProductRepository(pool)
	orderRepo := repositories.NewOrderRepository(pool)
	projectRepo := repositories.NewProjectRepository(orm)
	cacheRepo := repositories.NewCacheRepository(rdb)

	directoryService := services.NewDirectoryService(customerRepo, employeeRepo)
	catalogService := services.NewCatalogService(productRepo, cacheRepo)
	orderService := services.NewOrderService(orderRepo, customerRepo, employeeRepo, producer)
	projectService := services.NewProjectService(projectRepo, customerRepo, employeeRepo)

	customerHandler := handlers.NewCustomerHandler(directoryService)
	employeeHandler := handlers.NewEmployeeHandler(directoryService)
	productHandler := handlers.NewProductHandler(catalogService)
	orderHandler := handlers.NewOrderHandler(orderService)
	projectHandler := handlers.NewProjectHandler(projectService)

	router := gin.Default()
	router.Use(cors.Default())
	routes.RegisterRoutes(router, cfg.APIKey, customerHandler, employeeHandler, productHandler, orderHandler, projectHandler)

	return &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      router,
		IdleTimeout:  time.Minute,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}
}
