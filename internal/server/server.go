// Package server provides the HTTP surface for the portfolio assistant.
package server

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/soruj/portfolio-assistant/internal/chat"
	"github.com/soruj/portfolio-assistant/internal/content"
	"github.com/soruj/portfolio-assistant/internal/llm"
	"github.com/soruj/portfolio-assistant/internal/resume"
	"github.com/soruj/portfolio-assistant/internal/server/ratelimit"
)

// Config holds server configuration.
type Config struct {
	Port        int
	DatabaseURL string // optional; empty disables the database content source
	APIKey      string // optional; empty disables the cloud tier
	GeminiModel string
	DocsDir     string
	OllamaURL   string
	OllamaModel string
}

// Server represents the HTTP server.
type Server struct {
	httpServer  *http.Server
	db          *content.DB
	gemini      *llm.GeminiClient
	chat        *chat.Engine
	resume      *resume.Generator
	rateLimiter *ratelimit.Limiter
	validate    *validator.Validate
}

// New creates a server instance and wires the engine. The database and the
// cloud credential are both optional: a missing database degrades the content
// store to its other sources, and a missing credential switches chat to the
// configuration-guidance reply and drops the cloud résumé tier.
func New(ctx context.Context, cfg Config) (*Server, error) {
	s := &Server{
		rateLimiter: ratelimit.NewLimiter(ratelimit.LoadConfig()),
		validate:    validator.New(),
	}

	if cfg.DatabaseURL != "" {
		db, err := content.Connect(ctx, cfg.DatabaseURL)
		if err != nil {
			log.Printf("[server] database unavailable, continuing without it: %v", err)
		} else {
			s.db = db
		}
	}
	store := content.NewStore(s.db, cfg.DocsDir)

	var cloudProvider llm.Provider
	gemini, err := llm.NewGeminiClient(ctx, cfg.APIKey, cfg.GeminiModel)
	if err != nil {
		log.Printf("[server] cloud provider disabled: %v", err)
	} else {
		s.gemini = gemini
		cloudProvider = gemini
	}

	// Résumé tiers in priority order: the local engine first, the cloud
	// engine only as fallback and only when a credential is configured.
	tiers := []llm.Provider{llm.NewOllamaClient(cfg.OllamaURL, cfg.OllamaModel)}
	if cloudProvider != nil {
		tiers = append(tiers, cloudProvider)
	}

	s.chat = chat.NewEngine(store, cloudProvider)
	s.resume = resume.NewGenerator(store, llm.NewController(tiers...))

	mux := http.NewServeMux()
	mux.HandleFunc("POST /chat", s.handleChat)
	mux.HandleFunc("POST /resume/generate", s.handleGenerateResume)
	mux.HandleFunc("GET /health", s.handleHealth)

	s.httpServer = &http.Server{
		Addr:        fmt.Sprintf(":%d", cfg.Port),
		Handler:     s.withRateLimit(s.withLogging(s.withCORS(mux))),
		ReadTimeout: 30 * time.Second,
		IdleTimeout: 60 * time.Second,
		// No WriteTimeout: chat responses stream for as long as the model
		// talks and are bounded by client disconnect instead.
	}

	return s, nil
}

// Start begins listening and blocks until shutdown.
func (s *Server) Start() error {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		log.Printf("Server starting on %s", s.httpServer.Addr)
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	}()

	<-stop
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	s.rateLimiter.Stop()
	if s.gemini != nil {
		_ = s.gemini.Close()
	}
	if s.db != nil {
		s.db.Close()
	}
	log.Println("Server stopped")
	return nil
}

// withCORS adds CORS headers for the public site.
func (s *Server) withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// withRateLimit rejects clients that exceed the request budget.
func (s *Server) withRateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !s.rateLimiter.Allow(clientID(r)) {
			s.errorResponse(w, http.StatusTooManyRequests, "Rate limit exceeded. Please try again later.")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// withLogging logs each request with a request-scoped ID.
func (s *Server) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := uuid.New().String()[:8]
		start := time.Now()
		log.Printf("[%s] %s %s %s", requestID, r.Method, r.URL.Path, r.RemoteAddr)
		next.ServeHTTP(w, r)
		log.Printf("[%s] %s %s completed in %v", requestID, r.Method, r.URL.Path, time.Since(start))
	})
}

// clientID identifies a client by IP for rate limiting.
func clientID(r *http.Request) string {
	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return ip
}

// jsonResponse writes a JSON response.
func (s *Server) jsonResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("Error encoding JSON response: %v", err)
	}
}

// errorResponse writes an error JSON response.
func (s *Server) errorResponse(w http.ResponseWriter, status int, message string) {
	s.jsonResponse(w, status, map[string]string{"error": message})
}
