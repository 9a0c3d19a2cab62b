package main

import (
	"flag"
	"log"

	"github.com/joho/godotenv"
	"github.com/stellarsoil/marketplace/internal/infrastructure/database"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("warning: no .env file found: %v", err)
	}

	path := flag.String("path", "migrations", "directory containing migration files")
	flag.Parse()

	if err := database.RunMigrations(*path); err != nil {
		log.Fatalf("migration failed: %v", err)
	}

	log.Println("migrations applied successfully")
}
