package main

import (
	"log"

	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("warning: no .env file found: %v", err)
	}

	app, err := NewApp()
	if err != nil {
		log.Fatalf("failed to initialize application: %v", err)
	}
	defer app.Close()

	app.SetupRoutes("/api/v1")

	if err := app.Start(); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}
