package main

import (
	"mediascribe/cmd"

	"github.com/joho/godotenv"
)

func main() {
	// Load .env if present so the OpenAI engine can pick up its API key.
	// A missing file is not an error.
	_ = godotenv.Load()

	cmd.Execute()
}
