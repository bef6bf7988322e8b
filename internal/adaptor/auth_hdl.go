package adaptor

import (
	"context"
	"encoding/json"
	"net/http"

	"artisanverse/internal/dto/request"
	"artisanverse/internal/dto/response"
	"artisanverse/internal/usecase"
	"artisanverse/pkg/session"
	"artisanverse/pkg/utils"

	"go.uber.org/zap"
)

type AuthHandler struct {
	service usecase.AuthService
	secure  bool
	log     *zap.Logger
}

func NewAuthHandler(service usecase.AuthService, config *utils.Config, log *zap.Logger) *AuthHandler {
	return &AuthHandler{
		service: service,
		secure:  config.IsProduction(),
		log:     log,
	}
}

// SignupArtisan handles POST /api/signup-artisan
func (h *AuthHandler) SignupArtisan(w http.ResponseWriter, r *http.Request) {
	h.signup(w, r, h.service.SignupArtisan)
}

// SignupCustomer handles POST /api/signup-customer
func (h *AuthHandler) SignupCustomer(w http.ResponseWriter, r *http.Request) {
	h.signup(w, r, h.service.SignupCustomer)
}

// LoginArtisan handles POST /api/login-artisan
func (h *AuthHandler) LoginArtisan(w http.ResponseWriter, r *http.Request) {
	h.login(w, r, h.service.LoginArtisan)
}

// LoginCustomer handles POST /api/login-customer
func (h *AuthHandler) LoginCustomer(w http.ResponseWriter, r *http.Request) {
	h.login(w, r, h.service.LoginCustomer)
}

// Logout handles POST /api/logout. There is no server-side session state; the
// cookie is simply cleared.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	session.ClearCookie(w, h.secure)
	utils.ResponseSuccess(w, "Logout successful", nil)
}

func (h *AuthHandler) signup(
	w http.ResponseWriter,
	r *http.Request,
	call func(ctx context.Context, req *request.SignupRequest) (*response.AuthResponse, error),
) {
	var req request.SignupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Invalid form data.", validationErrors)
		return
	}

	resp, err := call(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "signup")
		return
	}

	utils.ResponseCreated(w, "Signup successful! You can now log in.", resp)
}

// login decodes the credentials, delegates, and issues the session cookie on
// success.
func (h *AuthHandler) login(
	w http.ResponseWriter,
	r *http.Request,
	call func(ctx context.Context, req *request.LoginRequest) (*response.AuthResponse, error),
) {
	var req request.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Invalid email or password format.", validationErrors)
		return
	}

	resp, err := call(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "login")
		return
	}

	session.SetCookie(w, session.Session{Role: resp.Role, UserID: resp.UserID}, h.secure)
	utils.ResponseSuccess(w, "Login successful", resp)
}
