package controllers

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"attorneycrm/internal/delivery/http/helpers"
	"attorneycrm/internal/delivery/http/middleware"
	"attorneycrm/internal/domain"
)

type AuthController struct {
	Logger  *slog.Logger
	Service domain.AuthService
}

func NewAuthController(logger *slog.Logger, svc domain.AuthService) *AuthController {
	return &AuthController{Logger: logger, Service: svc}
}

// LoginRequest is the request body for POST /auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Validate implements helpers.Validator.
func (r *LoginRequest) Validate() []string {
	var errs []string
	if strings.TrimSpace(r.Email) == "" {
		errs = append(errs, "email is required")
	}
	if r.Password == "" {
		errs = append(errs, "password is required")
	}
	return errs
}

// LoginResponse is the data payload for a successful login.
// swagger:model LoginResponse
type LoginResponse struct {
	Token string           `json:"token"`
	User  *domain.Attorney `json:"user"`
}

// Login godoc
// @Summary Log in as an attorney
// @Description Validates email and password against the attorney records and returns a signed session token.
// @Tags auth
// @Accept json
// @Produce json
// @Param body body controllers.LoginRequest true "Credentials"
// @Success 200 {object} helpers.APIResponse "data contains token and user"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /auth/login [post]
func (c *AuthController) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}

	token, attorney, err := c.Service.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "invalid credentials")
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}

	helpers.WriteJSONSuccess(w, http.StatusOK, LoginResponse{Token: token, User: attorney})
}

// VerifyResponse is the data payload for GET /auth/verify.
type VerifyResponse struct {
	AttorneyID string    `json:"attorneyId"`
	Timestamp  time.Time `json:"timestamp"`
}

// Verify godoc
// @Summary Verify the current session token
// @Description Confirms the Bearer token is valid and returns the attorney it identifies.
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} helpers.APIResponse "data contains attorneyId and timestamp"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Router /auth/verify [get]
func (c *AuthController) Verify(w http.ResponseWriter, r *http.Request) {
	attorneyID, ok := middleware.AttorneyIDFromContext(r.Context())
	if !ok {
		helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "unauthorized")
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, VerifyResponse{
		AttorneyID: attorneyID,
		Timestamp:  time.Now().UTC(),
	})
}
