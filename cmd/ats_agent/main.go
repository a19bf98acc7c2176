// Package main provides the entry point for the ATS scoring HTTP API server and CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "ats_agent",
	Short: "ATS compatibility scoring server",
	Long:  "ATS Agent scores resumes against job descriptions the way applicant tracking systems do, combining experience constraints, skill coverage, and keyword overlap into a single 0-100 score, via REST API or one-shot CLI runs.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
