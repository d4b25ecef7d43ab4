// Package server is the shape-fetch backend: a small HTTP JSON API that
// hands out generated polytopes and applies transforms server-side. The
// viewer treats it as an opaque shape source.
package server

import (
	"encoding/json"
	"math"
	"net/http"
	"strconv"

	"go.uber.org/zap"

	"tessera/engine"
	"tessera/internal/buildinfo"
)

type Server struct {
	log *zap.Logger
	// allowOrigin is sent back as Access-Control-Allow-Origin so a browser
	// frontend on another port can talk to us. Empty disables CORS headers.
	allowOrigin string
}

func New(log *zap.Logger, allowOrigin string) *Server {
	if log == nil {
		log = zap.NewNop()
	}
	return &Server{log: log, allowOrigin: allowOrigin}
}

// Handler returns the full route table.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/", s.handleRoot)
	mux.HandleFunc("/health", s.handleHealth)
	mux.HandleFunc("/shapes/cube", s.handleCube)
	mux.HandleFunc("/shapes/transform", s.handleTransform)
	return s.wrap(mux)
}

func (s *Server) wrap(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if s.allowOrigin != "" {
			w.Header().Set("Access-Control-Allow-Origin", s.allowOrigin)
			w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		}
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		s.log.Info("request", zap.String("method", r.Method), zap.String("path", r.URL.Path))
		next.ServeHTTP(w, r)
	})
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.log.Error("encode response", zap.Error(err))
	}
}

func (s *Server) handleRoot(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	s.writeJSON(w, http.StatusOK, map[string]string{
		"name":    "tessera shape server",
		"version": buildinfo.Short(),
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
}

func (s *Server) handleCube(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	size := 1.0
	if q := r.URL.Query().Get("size"); q != "" {
		v, err := strconv.ParseFloat(q, 64)
		if err != nil || v <= 0 || math.IsNaN(v) || math.IsInf(v, 0) {
			http.Error(w, "invalid size", http.StatusBadRequest)
			return
		}
		size = v
	}
	s.writeJSON(w, http.StatusOK, engine.NewTesseract(size))
}

type transformRequest struct {
	Shape     engine.Shape4D     `json:"shape"`
	Transform engine.Transform4D `json:"transform"`
}

func (s *Server) handleTransform(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	var req transformRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body: "+err.Error(), http.StatusBadRequest)
		return
	}
	if err := req.Shape.Validate(); err != nil {
		http.Error(w, "invalid shape: "+err.Error(), http.StatusBadRequest)
		return
	}
	s.writeJSON(w, http.StatusOK, engine.TransformShape(&req.Shape, req.Transform))
}
