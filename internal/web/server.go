// Package web exposes the cube solver over HTTP: POST /api/solve and
// GET /health, routed with gorilla/mux (spec SPEC_FULL.md §7).
package web

import (
	"net/http"

	"github.com/ehrlich-b/rubik/internal/cube"
	"github.com/gorilla/mux"
	"github.com/rs/zerolog"
)

// Server holds the pruning tables (nil if they failed to load, in which
// case /api/solve reports 503 rather than crashing the process) and the
// mux.Router wired up to the handlers.
type Server struct {
	router *mux.Router
	log    zerolog.Logger
	tables *cube.PruningTables
}

// NewServer loads pruning tables from dir and wires up routes. A load
// failure is logged but not fatal: the server still starts so /health can
// report the degraded state instead of the process refusing to boot.
func NewServer(dir string, log zerolog.Logger) *Server {
	s := &Server{log: log}

	tables, err := cube.LoadTables(dir)
	if err != nil {
		s.log.Warn().Err(err).Str("dir", dir).Msg("pruning tables unavailable; /api/solve will report 503")
	} else {
		s.tables = tables
	}

	s.router = mux.NewRouter()
	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	api := s.router.PathPrefix("/api").Subrouter()
	api.HandleFunc("/solve", s.handleSolve).Methods("POST")

	s.router.HandleFunc("/health", s.handleHealth).Methods("GET")
}

func (s *Server) Start(addr string) error {
	return http.ListenAndServe(addr, s.router)
}
