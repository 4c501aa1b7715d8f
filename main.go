package main

import (
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/example/engmemory/internal/cli"
)

func main() {
	// A .env in the working directory is optional and mostly useful
	// during development.
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("failed to load .env: %v", err)
	}

	if err := cli.Execute(); err != nil {
		log.Fatalf("Error: %v", err)
	}
}
