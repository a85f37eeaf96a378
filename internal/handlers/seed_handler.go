package handlers

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/fluentfocus/backend/internal/models"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// SeedService is the interface that wraps the seeding entry point.
type SeedService interface {
	// Method Seed runs ingestion when the word store is empty.
	//
	// A non-empty store yields a skipped result. A concurrent run yields models.ErrSeedInProgress.
	Seed(ctx context.Context) (*models.SeedResult, error)
}

// SeedResponse is the body of a finished or skipped seed
type SeedResponse struct {
	Success    bool                    `json:"success"`
	Message    string                  `json:"message"`
	SkipReason string                  `json:"skipReason,omitempty"`
	Details    *models.IngestionReport `json:"details,omitempty"`
}

// SeedErrorResponse is the body of a failed seed
type SeedErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// SeedHandler handles HTTP requests that populate the word store
type SeedHandler struct {
	BaseHandler
	service SeedService
	// guard wraps the route, e.g. with an API key check; nil leaves it open
	guard func(http.Handler) http.Handler
}

// NewSeedHandler creates a new seed handler
func NewSeedHandler(svc SeedService, guard func(http.Handler) http.Handler, logger *zap.Logger) *SeedHandler {
	return &SeedHandler{
		service:     svc,
		guard:       guard,
		BaseHandler: BaseHandler{logger: logger},
	}
}

// RegisterRoutes registers all seed handler routes
func (h *SeedHandler) RegisterRoutes(r chi.Router) {
	r.Group(func(r chi.Router) {
		if h.guard != nil {
			r.Use(h.guard)
		}
		r.Get("/api/seed", h.Seed)
	})
}

// Seed handles GET /api/seed
// @Summary Seed the word store
// @Description Fetch IELTS and TOEFL word lists, enrich them through the dictionary API and store them. Does nothing when words already exist.
// @Tags seed
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} SeedResponse
// @Failure 401 {object} ErrorResponse
// @Failure 409 {object} SeedErrorResponse
// @Failure 500 {object} SeedErrorResponse
// @Router /api/seed [get]
func (h *SeedHandler) Seed(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.Seed(r.Context())
	if err != nil {
		if errors.Is(err, models.ErrSeedInProgress) {
			h.respondJSON(w, http.StatusConflict, SeedErrorResponse{
				Success: false,
				Error:   "Seeding already in progress",
			})
			return
		}
		h.logger.Error("failed to seed database", zap.Error(err))
		h.respondJSON(w, http.StatusInternalServerError, SeedErrorResponse{
			Success: false,
			Error:   "Failed to seed database",
			Details: err.Error(),
		})
		return
	}

	if result.Skipped {
		h.respondJSON(w, http.StatusOK, SeedResponse{
			Success:    false,
			Message:    fmt.Sprintf("Database already seeded with %d words", result.ExistingWords),
			SkipReason: "Words already exist in database",
		})
		return
	}

	h.respondJSON(w, http.StatusOK, SeedResponse{
		Success: true,
		Message: fmt.Sprintf("Database seeded successfully with %d words", result.Report.Enriched),
		Details: result.Report,
	})
}
