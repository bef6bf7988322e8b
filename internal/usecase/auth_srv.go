package usecase

import (
	"context"
	"fmt"

	"artisanverse/internal/data/entity"
	"artisanverse/internal/data/store"
	"artisanverse/internal/dto/request"
	"artisanverse/internal/dto/response"
	"artisanverse/pkg/utils"

	"go.uber.org/zap"
)

type AuthService interface {
	SignupArtisan(ctx context.Context, req *request.SignupRequest) (*response.AuthResponse, error)
	SignupCustomer(ctx context.Context, req *request.SignupRequest) (*response.AuthResponse, error)
	LoginArtisan(ctx context.Context, req *request.LoginRequest) (*response.AuthResponse, error)
	LoginCustomer(ctx context.Context, req *request.LoginRequest) (*response.AuthResponse, error)
}

type authService struct {
	store *store.Store
	log   *zap.Logger
}

func NewAuthService(st *store.Store, log *zap.Logger) AuthService {
	return &authService{
		store: st,
		log:   log,
	}
}

func (s *authService) SignupArtisan(ctx context.Context, req *request.SignupRequest) (*response.AuthResponse, error) {
	// 1. Validate input
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Artisan signup validation failed", zap.Any("errors", errs))
		return nil, &ValidationError{Fields: errs}
	}

	// 2. Check email before hashing to avoid wasted work; Append re-checks
	// under the store mutex.
	existing, err := s.store.Artisan.FindByEmail(ctx, req.Email)
	if err != nil {
		s.log.Error("Failed to check artisan email", zap.Error(err), zap.String("email", req.Email))
		return nil, fmt.Errorf("check artisan email: %w", err)
	}
	if existing != nil {
		return nil, fmt.Errorf("artisan email %s: %w", req.Email, store.ErrConflict)
	}

	// 3. Hash password
	hashed, err := utils.HashPassword(req.Password)
	if err != nil {
		s.log.Error("Failed to hash password", zap.Error(err))
		return nil, fmt.Errorf("process password: %w", err)
	}

	// 4. Append record
	artisan := &entity.Artisan{
		ID:           utils.GenerateArtisanID(),
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: hashed,
		Role:         entity.RoleArtisan,
	}
	if err := s.store.Artisan.Append(ctx, artisan); err != nil {
		return nil, err
	}

	s.log.Info("Artisan signed up",
		zap.String("artisan_id", artisan.ID),
		zap.String("email", artisan.Email))

	return &response.AuthResponse{
		UserID: artisan.ID,
		Name:   artisan.Name,
		Email:  artisan.Email,
		Role:   artisan.Role,
	}, nil
}

func (s *authService) SignupCustomer(ctx context.Context, req *request.SignupRequest) (*response.AuthResponse, error) {
	// 1. Validate input
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Customer signup validation failed", zap.Any("errors", errs))
		return nil, &ValidationError{Fields: errs}
	}

	// 2. Check email
	existing, err := s.store.Customer.FindByEmail(ctx, req.Email)
	if err != nil {
		s.log.Error("Failed to check customer email", zap.Error(err), zap.String("email", req.Email))
		return nil, fmt.Errorf("check customer email: %w", err)
	}
	if existing != nil {
		return nil, fmt.Errorf("customer email %s: %w", req.Email, store.ErrConflict)
	}

	// 3. Hash password
	hashed, err := utils.HashPassword(req.Password)
	if err != nil {
		s.log.Error("Failed to hash password", zap.Error(err))
		return nil, fmt.Errorf("process password: %w", err)
	}

	// 4. Append record
	customer := &entity.Customer{
		ID:           utils.GenerateCustomerID(),
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: hashed,
		Role:         entity.RoleCustomer,
	}
	if err := s.store.Customer.Append(ctx, customer); err != nil {
		return nil, err
	}

	s.log.Info("Customer signed up",
		zap.String("customer_id", customer.ID),
		zap.String("email", customer.Email))

	return &response.AuthResponse{
		UserID: customer.ID,
		Name:   customer.Name,
		Email:  customer.Email,
		Role:   customer.Role,
	}, nil
}

func (s *authService) LoginArtisan(ctx context.Context, req *request.LoginRequest) (*response.AuthResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Artisan login validation failed", zap.Any("errors", errs))
		return nil, &ValidationError{Fields: errs}
	}

	artisan, err := s.store.Artisan.FindByEmail(ctx, req.Email)
	if err != nil {
		s.log.Error("Failed to find artisan by email", zap.Error(err), zap.String("email", req.Email))
		return nil, fmt.Errorf("find artisan: %w", err)
	}

	// Unknown email and wrong password yield the same error
	if artisan == nil {
		s.log.Warn("Artisan not found for login", zap.String("email", req.Email))
		return nil, ErrInvalidCredentials
	}
	if !utils.CheckPasswordHash(req.Password, artisan.PasswordHash) {
		s.log.Warn("Invalid artisan password", zap.String("artisan_id", artisan.ID))
		return nil, ErrInvalidCredentials
	}

	s.log.Info("Artisan logged in", zap.String("artisan_id", artisan.ID))

	return &response.AuthResponse{
		UserID: artisan.ID,
		Name:   artisan.Name,
		Email:  artisan.Email,
		Role:   entity.RoleArtisan,
	}, nil
}

func (s *authService) LoginCustomer(ctx context.Context, req *request.LoginRequest) (*response.AuthResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Customer login validation failed", zap.Any("errors", errs))
		return nil, &ValidationError{Fields: errs}
	}

	customer, err := s.store.Customer.FindByEmail(ctx, req.Email)
	if err != nil {
		s.log.Error("Failed to find customer by email", zap.Error(err), zap.String("email", req.Email))
		return nil, fmt.Errorf("find customer: %w", err)
	}

	if customer == nil {
		s.log.Warn("Customer not found for login", zap.String("email", req.Email))
		return nil, ErrInvalidCredentials
	}
	if !utils.CheckPasswordHash(req.Password, customer.PasswordHash) {
		s.log.Warn("Invalid customer password", zap.String("customer_id", customer.ID))
		return nil, ErrInvalidCredentials
	}

	s.log.Info("Customer logged in", zap.String("customer_id", customer.ID))

	return &response.AuthResponse{
		UserID: customer.ID,
		Name:   customer.Name,
		Email:  customer.Email,
		Role:   entity.RoleCustomer,
	}, nil
}
