package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.requestLogger)
	router.Use(h.tenant)

	router.Route("/api/vc", func(r chi.Router) {
		r.Post("/versions", h.submitCreate)
		r.Get("/versions", h.listVersions)
		r.Get("/versions/{requestID}/status", h.createStatus)

		r.Post("/load", h.submitLoad)
		r.Get("/load/{requestID}/status", h.loadStatus)

		r.Get("/branches", h.listBranches)
		r.Get("/entities", h.listEntities)
		r.Post("/diff", h.diff)
	})

	return router
}
