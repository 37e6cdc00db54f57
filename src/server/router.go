package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (s *Server) Router() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)

	if s.metrics != nil {
		r.Handle("/metrics", s.metrics.Handler())
	}
	r.Get("/api/health", s.handleHealth)
	r.Get("/api/types", s.handleTypes)

	r.Route("/api/pokemon", func(r chi.Router) {
		r.Get("/", s.handleList)
		r.Get("/{nameOrId}", s.handleDetail)
	})

	return r
}
