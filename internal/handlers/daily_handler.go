package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/fluentfocus/backend/internal/models"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// DailyService is the interface that wraps methods for daily word selection.
type DailyService interface {
	// Method GetDailyWords retrieve the practice batch of a user.
	//
	// If the user does not exist, models.ErrUserNotFound is returned together with "nil" value.
	GetDailyWords(ctx context.Context, userID string) (*models.DailySelection, error)
	// Method GetDemoWords retrieve a fixed batch for anonymous callers.
	//
	// If the word store is empty, models.ErrNoWords is returned together with "nil" value.
	GetDemoWords(ctx context.Context) (*models.DailySelection, error)
}

// DailyResponse is the body of a successful daily selection
type DailyResponse struct {
	Success bool              `json:"success"`
	Data    models.DailyWords `json:"data"`
	Meta    models.DailyMeta  `json:"meta"`
}

// DailyHandler handles HTTP requests for daily word batches
type DailyHandler struct {
	BaseHandler
	service DailyService
}

// NewDailyHandler creates a new daily handler
func NewDailyHandler(svc DailyService, logger *zap.Logger) *DailyHandler {
	return &DailyHandler{
		service:     svc,
		BaseHandler: BaseHandler{logger: logger},
	}
}

// RegisterRoutes registers all daily handler routes
func (h *DailyHandler) RegisterRoutes(r chi.Router) {
	r.Get("/api/daily", h.GetDaily)
}

// GetDaily handles GET /api/daily
// @Summary Get daily words
// @Description Get the daily practice batch of a user, split into new and review words. Without userId a demo batch is returned.
// @Tags daily
// @Produce json
// @Param userId query string false "User identifier"
// @Success 200 {object} DailyResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/daily [get]
func (h *DailyHandler) GetDaily(w http.ResponseWriter, r *http.Request) {
	userID := r.URL.Query().Get("userId")

	var (
		selection *models.DailySelection
		err       error
	)
	if userID == "" {
		selection, err = h.service.GetDemoWords(r.Context())
	} else {
		selection, err = h.service.GetDailyWords(r.Context(), userID)
	}

	if err != nil {
		switch {
		case errors.Is(err, models.ErrUserNotFound):
			h.respondError(w, http.StatusNotFound, "User not found")
		case errors.Is(err, models.ErrNoWords):
			h.respondError(w, http.StatusNotFound, "No words in database. Please run the seeding script.")
		default:
			h.logger.Error("failed to get daily words", zap.String("user_id", userID), zap.Error(err))
			h.respondErrorDetails(w, http.StatusInternalServerError, "Internal server error", err)
		}
		return
	}

	h.respondJSON(w, http.StatusOK, DailyResponse{
		Success: true,
		Data:    selection.Words,
		Meta:    selection.Meta,
	})
}
