// Package main provides the entry point for the portfolio assistant server.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "portfolio_assistant",
	Short: "Portfolio AI assistant server",
	Long:  "Portfolio assistant answers visitor questions about the portfolio owner and generates resume content from portfolio data via REST API.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
