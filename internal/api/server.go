package api

import (
	"encoding/json"
	"net/http"

	"brainrot-value-bot/internal/commands"
	"brainrot-value-bot/internal/logger"
)

// Server is the HTTP stand-in for the chat-platform dispatch front end:
// it receives already-parsed command invocations and returns the response
// to display. It carries no core logic.
type Server struct {
	handler *commands.Handler
	addr    string
}

func NewServer(handler *commands.Handler, addr string) *Server {
	return &Server{handler: handler, addr: addr}
}

// Router returns the HTTP mux for the command surface.
func (s *Server) Router() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/command", s.handleCommand)
	mux.HandleFunc("GET /api/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	return mux
}

// ListenAndServe blocks serving the command API.
func (s *Server) ListenAndServe() error {
	return http.ListenAndServe(s.addr, s.Router())
}

func (s *Server) handleCommand(w http.ResponseWriter, r *http.Request) {
	var req commands.Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	resp := s.handler.Dispatch(r.Context(), req)

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		logger.Warn(r.Context(), "Failed to write command response", "error", err)
	}
}
