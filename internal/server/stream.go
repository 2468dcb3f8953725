package server

import (
	"fmt"
	"net/http"
)

// ChunkWriter forwards streamed reply chunks to the HTTP response as they
// arrive, flushing after each so the client sees tokens incrementally. It
// buffers nothing beyond the encoding layer; backpressure on a slow client
// propagates to the producer through the unbuffered chunk channel.
type ChunkWriter struct {
	w       http.ResponseWriter
	flusher http.Flusher
	wrote   bool
}

// NewChunkWriter prepares a plain-text streaming response.
func NewChunkWriter(w http.ResponseWriter) (*ChunkWriter, error) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		return nil, fmt.Errorf("streaming not supported")
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("X-Accel-Buffering", "no")

	return &ChunkWriter{w: w, flusher: flusher}, nil
}

// Write sends one chunk and flushes it.
func (c *ChunkWriter) Write(text string) error {
	if text == "" {
		return nil
	}
	if _, err := c.w.Write([]byte(text)); err != nil {
		return err
	}
	c.wrote = true
	c.flusher.Flush()
	return nil
}

// Wrote reports whether any chunk reached the client yet.
func (c *ChunkWriter) Wrote() bool {
	return c.wrote
}
