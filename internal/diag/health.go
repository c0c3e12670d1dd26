package diag

import (
	"encoding/json"
	"net/http"
)

type healthResponse struct {
	Status   string `json:"status"`
	Isolates int    `json:"isolates"`
	Threads  int    `json:"threads"`
}

func (s *Server) handleHealthz(w http.ResponseWriter, r *http.Request) {
	isolates, threads := s.isolates.Len()

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	resp := healthResponse{Status: "ok", Isolates: isolates, Threads: threads}
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		s.logger.Error("encode healthz response", "error", err)
	}
}

func (s *Server) handleListIsolates(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(s.isolates.List()); err != nil {
		s.logger.Error("encode isolates response", "error", err)
	}
}
