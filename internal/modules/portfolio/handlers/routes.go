package handlers

import (
	"github.com/go-chi/chi/v5"
)

// RegisterRoutes registers all portfolio routes
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/portfolios", func(r chi.Router) {
		r.Get("/", h.HandleListPortfolios)   // Registered snapshot ids
		r.Post("/", h.HandleCreatePortfolio) // Aggregate and register
		r.Get("/{id}", h.HandleGetPortfolio) // Snapshot view
	})

	r.Post("/comparisons", h.HandleCompare)

	r.Get("/funds/{name}", h.HandleGetFund)
}
