package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/jmsone/JeopardyTrainer-sub000/cmd"
)

func main() {
	// Load .env if present so API keys can live alongside the binary.
	_ = godotenv.Load()

	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
