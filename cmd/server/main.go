package main

import (
	"log"
	"net/http"

	_ "cookingapp/docs" // swagger docs

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"cookingapp/internal/cache"
	"cookingapp/internal/config"
	"cookingapp/internal/db"
	"cookingapp/internal/handler"
	"cookingapp/internal/model"
	"cookingapp/internal/repository"
	"cookingapp/internal/router"
	"cookingapp/internal/service"
)

// @title Cooking App API
// @version 1.0
// @description REST backend for the cooking application: users and pantries.
// @host localhost:5000
// @BasePath /api/v1
// @schemes http
func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()
	cfg := config.Load()

	e := echo.New()
	e.Use(middleware.RequestID())

	gormDB, err := db.NewPostgres(cfg.PostgresDSN)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}

	if err := db.InitSchema(gormDB); err != nil {
		log.Fatalf("schema init: %v", err)
	}

	// The pantries table is provisioned out of band, never auto-created
	// here. Surface the missing precondition loudly instead of guessing.
	if !gormDB.Migrator().HasTable(&model.Pantry{}) {
		log.Println("WARNING: pantries table not found; pantry endpoints will fail until it is created (run cmd/migrate)")
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)

	// Initialize repositories
	userRepo := repository.NewUserRepository(gormDB)
	pantryRepo := repository.NewPantryRepository(gormDB)

	// Initialize services
	userService := service.NewUserService(userRepo, cacheClient)
	pantryService := service.NewPantryService(pantryRepo, cacheClient)

	// Initialize handlers
	userHandler := handler.NewUserHandler(userService)
	pantryHandler := handler.NewPantryHandler(pantryService)

	// Register routes
	router.Register(e, userHandler, pantryHandler)

	log.Printf("API docs available at: http://localhost:%s/api-docs/index.html", cfg.ServerPort)

	addr := ":" + cfg.ServerPort
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server start: %v", err)
	}
}
