// Package api - Thin, deterministic HTTP layer
// The API is only responsible for input ingestion, engine invocation and
// output serialization. It never performs cost logic.
package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"vendor-tco/core/catalog"
	"vendor-tco/core/engine"
	"vendor-tco/core/types"
	apperrors "vendor-tco/internal/errors"
	"vendor-tco/internal/logging"
)

// Server is the HTTP API server
type Server struct {
	router       chi.Router
	engine       *engine.Engine
	orchestrator *engine.Orchestrator
	catalog      catalog.Catalog
	version      string
}

// NewServer creates an API server over an engine and catalog
func NewServer(eng *engine.Engine, orch *engine.Orchestrator, cat catalog.Catalog, version string, allowedOrigins []string) *Server {
	s := &Server{
		engine:       eng,
		orchestrator: orch,
		catalog:      cat,
		version:      version,
	}

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(requestID)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
	}))

	r.Route("/api", func(r chi.Router) {
		r.Post("/compare", s.handleCompare)
		r.Post("/calculate", s.handleCalculate)
		r.Get("/vendors", s.handleVendors)
		r.Get("/health", s.handleHealth)
		r.Get("/version", s.handleVersion)
	})

	s.router = r
	return s
}

// ServeHTTP implements http.Handler
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// requestID tags every request with a UUID for log correlation
func requestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := uuid.NewString()
		w.Header().Set("X-Request-ID", id)
		next.ServeHTTP(w, r)
	})
}

func (s *Server) handleCompare(w http.ResponseWriter, r *http.Request) {
	var req CompareRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, "INVALID_JSON", err.Error(), http.StatusBadRequest)
		return
	}

	rtf := types.RealTimeFactors{}
	if req.RealTimeFactors != nil {
		rtf = *req.RealTimeFactors
	}

	report, err := s.orchestrator.Compare(r.Context(), req.VendorIDs, &req.Configuration, rtf)
	if err != nil {
		s.writeDomainError(w, err)
		return
	}

	s.writeJSON(w, http.StatusOK, CompareResponse{Report: report})
}

func (s *Server) handleCalculate(w http.ResponseWriter, r *http.Request) {
	var req CalculateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, "INVALID_JSON", err.Error(), http.StatusBadRequest)
		return
	}

	rtf := types.RealTimeFactors{}
	if req.RealTimeFactors != nil {
		rtf = *req.RealTimeFactors
	}

	result, err := s.engine.Calculate(r.Context(), req.VendorID, &req.Configuration, rtf)
	if err != nil {
		s.writeDomainError(w, err)
		return
	}

	s.writeJSON(w, http.StatusOK, CalculateResponse{
		Result:      result,
		ContentHash: types.ContentHash(req.VendorID, &req.Configuration),
	})
}

func (s *Server) handleVendors(w http.ResponseWriter, r *http.Request) {
	ids := s.catalog.IDs()
	summaries := make([]VendorSummary, 0, len(ids))
	for _, id := range ids {
		v, err := s.catalog.Vendor(id)
		if err != nil {
			continue
		}
		summaries = append(summaries, VendorSummary{
			ID:       v.ID,
			Name:     v.Name,
			Model:    v.Pricing.Model.String(),
			Category: string(v.Market.Category),
		})
	}
	s.writeJSON(w, http.StatusOK, summaries)
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleVersion(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"version": s.version})
}

// writeDomainError maps typed domain errors onto HTTP statuses
func (s *Server) writeDomainError(w http.ResponseWriter, err error) {
	switch {
	case apperrors.IsType(err, apperrors.TypeValidation):
		s.writeError(w, string(apperrors.TypeValidation), err.Error(), http.StatusBadRequest)
	case apperrors.IsType(err, apperrors.TypeNotFound):
		s.writeError(w, string(apperrors.TypeNotFound), err.Error(), http.StatusNotFound)
	default:
		logging.Error("internal error", zap.Error(err))
		s.writeError(w, string(apperrors.TypeInternal), "internal error", http.StatusInternalServerError)
	}
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func (s *Server) writeError(w http.ResponseWriter, code, message string, status int) {
	s.writeJSON(w, status, ErrorResponse{Code: code, Message: message})
}
