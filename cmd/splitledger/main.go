package main

import (
	"os"

	"github.com/joho/godotenv"

	"github.com/splitledger/splitledger/internal/commands"
)

func main() {
	// Optional .env in the working directory, e.g. LOG_LEVEL=debug.
	_ = godotenv.Load()

	if err := commands.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
