// Package main is the entry point for the putr CLI tool, which ingests
// poker session ledgers and tracks cumulative per-player statistics.
package main

import (
	"github.com/joho/godotenv"

	"github.com/putr/putr/cmd"
)

func main() {
	_ = godotenv.Load() // optional .env; absence is fine
	cmd.Execute()
}
