package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/soruj/portfolio-assistant/internal/server"
)

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the assistant API server",
	Long:  `Start an HTTP server exposing the chat and resume-generation endpoints.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 8080, "Port to listen on")
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	// GEMINI_API_KEY and DATABASE_URL are both optional: without the key the
	// chat endpoint answers with configuration guidance and resume
	// generation relies on the local engine alone; without the database the
	// content store falls back to the bundled dataset and documents.
	cfg := server.Config{
		Port:        servePort,
		DatabaseURL: os.Getenv("DATABASE_URL"),
		APIKey:      os.Getenv("GEMINI_API_KEY"),
		GeminiModel: os.Getenv("GEMINI_MODEL"),
		DocsDir:     os.Getenv("DOCS_DIR"),
		OllamaURL:   os.Getenv("OLLAMA_URL"),
		OllamaModel: os.Getenv("OLLAMA_MODEL"),
	}

	srv, err := server.New(context.Background(), cfg)
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	return srv.Start()
}
