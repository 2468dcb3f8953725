package server

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/soruj/portfolio-assistant/internal/prompt"
	"github.com/soruj/portfolio-assistant/internal/types"
)

// ChatRequest is the request body for POST /chat.
type ChatRequest struct {
	Message string                   `json:"message" validate:"required"`
	History []types.ConversationTurn `json:"history,omitempty"`
}

// ResumeResponse is the response body for POST /resume/generate.
type ResumeResponse struct {
	Success bool                 `json:"success"`
	Data    *types.ResumePayload `json:"data,omitempty"`
	Error   string               `json:"error,omitempty"`
}

// handleChat streams the assistant's reply as plain text. The chat path never
// returns a bare 500 to a visitor: every outcome is either a 400 for a
// malformed body or a 200 with renderable text.
func (s *Server) handleChat(w http.ResponseWriter, r *http.Request) {
	var req ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if err := s.validate.Struct(req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "message is required")
		return
	}

	writer, err := NewChunkWriter(w)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}

	// r.Context() is canceled when the visitor disconnects, which stops
	// provider consumption promptly instead of draining undeliverable tokens.
	for chunk := range s.chat.Respond(r.Context(), req.Message, req.History) {
		if chunk.Err != nil {
			log.Printf("[chat] stream failed: %v", chunk.Err)
			if !writer.Wrote() {
				_ = writer.Write(prompt.ApologyMessage())
				return
			}
			// Mid-stream failure: abort the response so the client sees a
			// broken stream, not a clean end-of-answer.
			panic(http.ErrAbortHandler)
		}
		if err := writer.Write(chunk.Text); err != nil {
			log.Printf("[chat] client write failed: %v", err)
			return
		}
	}
}

// handleGenerateResume produces the structured résumé payload. Unlike chat,
// this administrative endpoint is allowed to fail with a 500 and a readable
// error when every inference tier is exhausted.
func (s *Server) handleGenerateResume(w http.ResponseWriter, r *http.Request) {
	payload, err := s.resume.Generate(r.Context())
	if err != nil {
		log.Printf("[resume] generation failed: %v", err)
		s.jsonResponse(w, http.StatusInternalServerError, ResumeResponse{
			Success: false,
			Error:   "Resume generation failed. Check that an inference provider is reachable.",
		})
		return
	}
	s.jsonResponse(w, http.StatusOK, ResumeResponse{Success: true, Data: payload})
}

// handleHealth returns server health status.
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}
