// Command migrate provisions the parts of the schema the server does not
// create on boot. Today that is the pantries table; it also reruns the
// idempotent users schema initialization so a fresh database can be
// prepared with a single invocation.
package main

import (
	"log"

	"github.com/joho/godotenv"

	"cookingapp/internal/config"
	"cookingapp/internal/db"
	"cookingapp/internal/model"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	gormDB, err := db.NewPostgres(cfg.PostgresDSN)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}

	if err := db.InitSchema(gormDB); err != nil {
		log.Fatalf("schema init: %v", err)
	}

	if err := gormDB.AutoMigrate(&model.Pantry{}); err != nil {
		log.Fatalf("migrate pantries: %v", err)
	}

	log.Println("migrations applied")
}
