package web

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/ehrlich-b/rubik/internal/cube"
)

type solveRequest struct {
	Scramble string `json:"scramble"`
}

type solveResponse struct {
	Solution string `json:"solution"`
	Moves    int    `json:"moves"`
	TimeMs   int64  `json:"time_ms"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

func (s *Server) handleSolve(w http.ResponseWriter, r *http.Request) {
	if s.tables == nil {
		writeJSON(w, http.StatusServiceUnavailable, errorResponse{Error: "pruning tables not loaded"})
		return
	}

	var req solveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid JSON body"})
		return
	}

	moves, err := cube.ParseScramble(req.Scramble)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}

	scrambled := cube.ApplySequence(cube.Solved, moves)

	start := time.Now()
	solution := cube.Solve(scrambled, s.tables)
	elapsed := time.Since(start)

	parts := make([]string, len(solution))
	for i, m := range solution {
		parts[i] = m.String()
	}

	writeJSON(w, http.StatusOK, solveResponse{
		Solution: strings.Join(parts, " "),
		Moves:    len(solution),
		TimeMs:   elapsed.Milliseconds(),
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	status := "ok"
	if s.tables == nil {
		status = "tables_unavailable"
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": status})
}
