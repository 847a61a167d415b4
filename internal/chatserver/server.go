// Package chatserver exposes the assistant over HTTP: one request/response
// exchange per turn, free text in, free text out. Thread ids let a client
// keep a conversation going across requests.
package chatserver

import (
	"encoding/json"
	"io"
	"log"
	"net/http"

	"github.com/google/uuid"

	"github.com/foodiespot/foodiebot/internal/core"
	"github.com/foodiespot/foodiebot/internal/gateway"
	"github.com/foodiespot/foodiebot/internal/health"
)

type chatRequest struct {
	SenderID string `json:"sender_id"`
	ThreadID string `json:"thread_id"`
	Message  string `json:"message"`
}

type chatResponse struct {
	Reply    string `json:"reply"`
	ThreadID string `json:"thread_id"`
}

// Server serves the chat and health endpoints.
type Server struct {
	Addr     string
	Gateway  *gateway.Gateway
	Executor core.ToolExecutor
	Health   *health.Registry
}

// Run starts the HTTP server and blocks.
func (s *Server) Run() error {
	mux := http.NewServeMux()
	mux.HandleFunc("/health", s.handleHealth)
	mux.HandleFunc("/chat", s.handleChat)
	mux.HandleFunc("/tools", s.handleTools)

	log.Printf("[CHAT] listening on %s", s.Addr)
	return http.ListenAndServe(s.Addr, mux)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	report := s.Health.Check()
	w.Header().Set("Content-Type", "application/json")
	if report.Status != health.StatusOK {
		w.WriteHeader(http.StatusServiceUnavailable)
	}
	json.NewEncoder(w).Encode(report)
}

// handleTools lists the available actions: the same registry the dispatcher
// executes from, so introspection can't go stale.
func (s *Server) handleTools(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(s.Executor.Definitions())
}

func (s *Server) handleChat(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	body, err := io.ReadAll(io.LimitReader(r.Body, 1<<20))
	if err != nil {
		http.Error(w, "read body", http.StatusBadRequest)
		return
	}
	var req chatRequest
	if err := json.Unmarshal(body, &req); err != nil || req.Message == "" {
		http.Error(w, `expected {"message": "..."}`, http.StatusBadRequest)
		return
	}
	if req.SenderID == "" {
		req.SenderID = "http"
	}
	if req.ThreadID == "" {
		req.ThreadID = uuid.NewString()
	}

	reply, err := s.Gateway.Handle(r.Context(), gateway.Message{
		SenderID: req.SenderID,
		Content:  req.Message,
		Channel:  "http",
		ThreadID: req.ThreadID,
	})
	if err != nil {
		log.Printf("[CHAT] turn failed: %v", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(chatResponse{Reply: reply, ThreadID: req.ThreadID})
}
