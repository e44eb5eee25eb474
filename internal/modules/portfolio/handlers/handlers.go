// Package handlers provides HTTP handlers for portfolio aggregation and comparison.
package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/aristath/fundfolio/internal/domain"
	"github.com/aristath/fundfolio/internal/modules/aggregation"
	"github.com/aristath/fundfolio/internal/modules/portfolio"
	"github.com/aristath/fundfolio/internal/utils"
	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
)

// Handler handles portfolio HTTP requests
type Handler struct {
	service *portfolio.Service
	lookup  domain.FundLookup
	log     zerolog.Logger
}

// NewHandler creates a new portfolio handler
func NewHandler(service *portfolio.Service, lookup domain.FundLookup, log zerolog.Logger) *Handler {
	return &Handler{
		service: service,
		lookup:  lookup,
		log:     log.With().Str("handler", "portfolio").Logger(),
	}
}

// SelectedFundRequest is one fund of a create request.
type SelectedFundRequest struct {
	Name    string   `json:"name"`
	Aliases []string `json:"aliases,omitempty"`
	Weight  float64  `json:"weight"`
}

// CreatePortfolioRequest is the body of POST /api/portfolios.
type CreatePortfolioRequest struct {
	Name  string                `json:"name"`
	Funds []SelectedFundRequest `json:"funds"`
}

// CreatePortfolioResponse is returned after a successful aggregation.
type CreatePortfolioResponse struct {
	ID       string                   `json:"id"`
	Snapshot aggregation.SnapshotView `json:"snapshot"`
}

// CompareRequest is the body of POST /api/comparisons.
type CompareRequest struct {
	A     string `json:"a"`
	B     string `json:"b"`
	Limit int    `json:"limit,omitempty"`
}

// HandleCreatePortfolio aggregates and registers a portfolio
func (h *Handler) HandleCreatePortfolio(w http.ResponseWriter, r *http.Request) {
	var req CreatePortfolioRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	selected := make([]domain.SelectedFund, len(req.Funds))
	for i, f := range req.Funds {
		selected[i] = domain.SelectedFund{Name: f.Name, Aliases: f.Aliases, Weight: f.Weight}
	}

	id, snap, err := h.service.Create(r.Context(), req.Name, selected)
	if err != nil {
		h.log.Warn().Err(err).Str("portfolio", req.Name).Msg("Failed to aggregate portfolio")
		h.writeError(w, statusFor(err), err.Error())
		return
	}

	h.writeJSON(w, http.StatusCreated, CreatePortfolioResponse{ID: id, Snapshot: snap.ToView()})
}

// HandleListPortfolios returns the ids of all registered portfolios
func (h *Handler) HandleListPortfolios(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, map[string]interface{}{
		"ids": h.service.List(),
	})
}

// HandleGetPortfolio returns a registered portfolio snapshot
func (h *Handler) HandleGetPortfolio(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	snap, err := h.service.Get(id)
	if err != nil {
		h.writeError(w, statusFor(err), err.Error())
		return
	}

	h.writeJSON(w, http.StatusOK, snap.ToView())
}

// HandleCompare compares two registered portfolios
func (h *Handler) HandleCompare(w http.ResponseWriter, r *http.Request) {
	var req CompareRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.A == "" || req.B == "" {
		h.writeError(w, http.StatusBadRequest, "Both a and b are required")
		return
	}

	bundle, err := h.service.Compare(req.A, req.B, req.Limit)
	if err != nil {
		h.writeError(w, statusFor(err), err.Error())
		return
	}

	h.writeJSON(w, http.StatusOK, bundle)
}

// HandleGetFund returns a fund record from the catalog. Extra aliases can be
// passed as a comma-separated "aliases" query parameter.
func (h *Handler) HandleGetFund(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")

	aliases := utils.SplitList(r.URL.Query().Get("aliases"))

	record, err := h.lookup.LookupFund(r.Context(), name, aliases)
	if err != nil {
		h.writeError(w, statusFor(err), err.Error())
		return
	}

	h.writeJSON(w, http.StatusOK, record)
}

// statusFor maps domain errors to HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrInvalidPortfolio):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrFundNotFound), errors.Is(err, portfolio.ErrSnapshotNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrUnknownCountry):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.log.Error().Err(err).Msg("Failed to encode JSON response")
	}
}

func (h *Handler) writeError(w http.ResponseWriter, status int, message string) {
	h.writeJSON(w, status, map[string]string{"error": message})
}
