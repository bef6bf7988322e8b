package usecase

import (
	"errors"

	"artisanverse/internal/ai"
	"artisanverse/internal/cache"
	"artisanverse/internal/data/store"
	"artisanverse/pkg/utils"

	"go.uber.org/zap"
)

var (
	// ErrInvalidCredentials covers both unknown email and wrong password so
	// the response cannot be used for account enumeration.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrUnauthorized marks a mutation attempted without a valid session.
	ErrUnauthorized = errors.New("authentication required")
)

// ValidationError carries one message per invalid input field.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	return "validation failed: " + utils.FormatValidationErrors(e.Fields)
}

// Service groups all business services behind one wiring point.
type Service struct {
	Auth     AuthService
	Artisan  ArtisanService
	Product  ProductService
	Profile  ProfileService
	Customer CustomerService
	Flow     FlowService
}

func NewService(
	st *store.Store,
	gen ai.Generator,
	pages *cache.Pages,
	log *zap.Logger,
) *Service {
	return &Service{
		Auth:     NewAuthService(st, log),
		Artisan:  NewArtisanService(st, log),
		Product:  NewProductService(st, pages, log),
		Profile:  NewProfileService(st, pages, log),
		Customer: NewCustomerService(st, log),
		Flow:     NewFlowService(gen, log),
	}
}
