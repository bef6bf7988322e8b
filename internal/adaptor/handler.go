package adaptor

import (
	"errors"
	"net/http"

	"artisanverse/internal/ai"
	"artisanverse/internal/cache"
	"artisanverse/internal/data/store"
	"artisanverse/internal/usecase"
	"artisanverse/pkg/utils"

	"go.uber.org/zap"
)

// Handler groups all HTTP handlers for wiring.
type Handler struct {
	Auth      *AuthHandler
	Artisan   *ArtisanHandler
	Product   *ProductHandler
	Flow      *FlowHandler
	Dashboard *DashboardHandler
}

func NewHandler(service *usecase.Service, pages *cache.Pages, config *utils.Config, log *zap.Logger) *Handler {
	return &Handler{
		Auth:      NewAuthHandler(service.Auth, config, log),
		Artisan:   NewArtisanHandler(service.Artisan, pages, log),
		Product:   NewProductHandler(service.Product, service.Profile, pages, log),
		Flow:      NewFlowHandler(service.Flow, log),
		Dashboard: NewDashboardHandler(service.Artisan, service.Customer, log),
	}
}

// handleServiceError maps service errors onto the response contract. Raw
// internal detail never reaches the caller; unexpected errors are logged and
// answered with a generic 500.
func handleServiceError(w http.ResponseWriter, log *zap.Logger, err error, operation string) {
	var validationErr *usecase.ValidationError
	var generationErr *ai.GenerationError

	switch {
	case errors.As(err, &validationErr):
		log.Warn(operation+" validation failed", zap.Any("errors", validationErr.Fields))
		utils.ResponseBadRequest(w, "Invalid form data.", validationErr.Fields)

	case errors.Is(err, store.ErrConflict):
		log.Warn(operation+" failed - conflict", zap.Error(err))
		utils.ResponseConflict(w, "An account with this email already exists.")

	case errors.Is(err, usecase.ErrInvalidCredentials):
		log.Warn(operation + " failed - invalid credentials")
		utils.ResponseUnauthorized(w, "Invalid credentials.")

	case errors.Is(err, usecase.ErrUnauthorized):
		log.Warn(operation + " failed - no valid session")
		utils.ResponseUnauthorized(w, "Authentication required. Please log in.")

	case errors.Is(err, store.ErrNotFound):
		log.Warn(operation+" failed - not found", zap.Error(err))
		utils.ResponseNotFound(w, "Not found.")

	case errors.As(err, &generationErr):
		log.Error("Failed to "+operation, zap.Error(err), zap.String("flow", generationErr.Flow))
		utils.ResponseBadGateway(w, "An error occurred while generating. Please try again.")

	default:
		log.Error("Failed to "+operation, zap.Error(err), zap.String("operation", operation))
		utils.ResponseInternalError(w, "An unexpected error occurred.")
	}
}
