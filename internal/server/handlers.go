package server

import (
	"encoding/json"
	"net/http"
)

// handleHealth handles health check requests
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	status := http.StatusOK
	response := map[string]interface{}{
		"status":  "healthy",
		"version": "1.0.0",
		"service": "fundfolio",
	}

	if s.container != nil && s.container.CatalogDB != nil {
		if err := s.container.CatalogDB.HealthCheck(r.Context()); err != nil {
			s.log.Error().Err(err).Msg("Catalog database health check failed")
			status = http.StatusServiceUnavailable
			response["status"] = "degraded"
			response["error"] = err.Error()
		}
	}
	if s.container != nil && s.container.Geography != nil {
		response["countries"] = s.container.Geography.Size()
	}
	if s.container != nil && s.container.PortfolioRegistry != nil {
		response["portfolios"] = s.container.PortfolioRegistry.Len()
	}

	s.writeJSON(w, status, response)
}

// writeJSON writes a JSON response
func (s *Server) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		s.log.Error().Err(err).Msg("Failed to encode JSON response")
	}
}
