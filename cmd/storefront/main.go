package main

import (
	"log"

	"github.com/joho/godotenv"

	"github.com/yaralane/storefront/internal/cmd"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("INFO: no .env file found, relying on system environment")
	}
	cmd.Execute()
}
