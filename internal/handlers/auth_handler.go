package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/libraryservice/backend/internal/models"
	"go.uber.org/zap"
)

// AuthService is the interface that wraps methods for authentication business logic.
type AuthService interface {
	// Method Login checks username and password and returns the user together with a fresh access token.
	//
	// Unknown users, soft-deleted users and wrong passwords all return services.ErrInvalidCredentials.
	Login(ctx context.Context, username, password string) (*models.LoginResponse, error)
	// Method Signup validates the request, creates a new account and returns it together with a fresh access token.
	//
	// If an active user already holds the username, a models.ErrConflict error is returned.
	// If the request is malformed, a models.ErrInvalidInput error is returned.
	Signup(ctx context.Context, req *models.SignupRequest) (*models.LoginResponse, error)
	// Method DeleteMyAccount soft-deletes the calling user.
	//
	// "user" parameter is the identity established by the access gate, never a client supplied ID.
	DeleteMyAccount(ctx context.Context, user *models.User) error
}

// AuthHandler handles authentication-related HTTP requests
type AuthHandler struct {
	BaseHandler
	authService AuthService
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authService AuthService, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{
		BaseHandler: BaseHandler{logger: logger},
		authService: authService,
	}
}

// RegisterRoutes registers all auth handler routes.
// "selfMember" guards the self-service routes, "loginLimiter" throttles login attempts.
func (h *AuthHandler) RegisterRoutes(r chi.Router, selfMember, loginLimiter Middleware) {
	r.With(loginLimiter).Post("/login", h.Login)
	r.Post("/signup", h.Signup)
	r.With(selfMember).Delete("/members/delete-my-account", h.DeleteMyAccount)
}

// Login handles POST /login
// @Summary Login
// @Description Authenticate with username and password sent as form fields. Returns a bearer access token.
// @Tags auth
// @Accept x-www-form-urlencoded
// @Produce json
// @Param username formData string true "Username"
// @Param password formData string true "Password"
// @Success 200 {object} models.LoginResponse
// @Failure 400 {object} map[string]string "Incorrect username or password"
// @Failure 429 {object} map[string]string "Too many requests"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /login [post]
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid form body")
		return
	}

	username := r.PostFormValue("username")
	password := r.PostFormValue("password")
	if username == "" || password == "" {
		h.respondError(w, http.StatusBadRequest, "username and password are required")
		return
	}

	resp, err := h.authService.Login(r.Context(), username, password)
	if err != nil {
		h.respondServiceError(w, err, "failed to login")
		return
	}

	h.respondJSON(w, http.StatusOK, resp)
}

// Signup handles POST /signup
// @Summary Sign up
// @Description Create a new account and return a bearer access token for it
// @Tags auth
// @Accept json
// @Produce json
// @Param request body models.SignupRequest true "New account"
// @Success 201 {object} models.LoginResponse
// @Failure 400 {object} map[string]string "Invalid request or username already exist"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /signup [post]
func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var req models.SignupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	resp, err := h.authService.Signup(r.Context(), &req)
	if err != nil {
		h.respondServiceError(w, err, "failed to sign up")
		return
	}

	h.respondJSON(w, http.StatusCreated, resp)
}

// DeleteMyAccount handles DELETE /members/delete-my-account
// @Summary Delete own account
// @Description Soft-delete the calling member. The access token stops working immediately.
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]string "Account deleted successfully"
// @Failure 401 {object} map[string]string "Could not validate credentials"
// @Failure 403 {object} map[string]string "User not allowed to perform this action."
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /members/delete-my-account [delete]
func (h *AuthHandler) DeleteMyAccount(w http.ResponseWriter, r *http.Request) {
	user, ok := h.currentUser(w, r)
	if !ok {
		return
	}

	if err := h.authService.DeleteMyAccount(r.Context(), user); err != nil {
		h.respondServiceError(w, err, "failed to delete account")
		return
	}

	h.respondMessage(w, http.StatusOK, "Account deleted successfully")
}
