package controllers

import (
	"errors"
	"log/slog"
	"net/http"

	"eventhub/internal/delivery/http/helpers"
	"eventhub/internal/domain"
	"eventhub/internal/metrics"
)

// RegisterRequest is the request body for POST /users/register.
type RegisterRequest struct {
	Name     string `json:"name" validate:"required,max=100"`
	Email    string `json:"email" validate:"required,email,max=254"`
	Password string `json:"password" validate:"required,min=8,maxbytes=72"`
}

// LoginRequest is the request body for POST /users/login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse is the response body for a successful login.
type LoginResponse struct {
	Token string       `json:"token"`
	User  *domain.User `json:"user"`
}

type UserController struct {
	Logger  *slog.Logger
	Service domain.UserService
}

func NewUserController(logger *slog.Logger, svc domain.UserService) *UserController {
	return &UserController{
		Logger:  logger,
		Service: svc,
	}
}

// Register godoc
// @Summary Register a new user
// @Description Creates an account. The password is stored as a bcrypt hash.
// @Tags users
// @Accept json
// @Produce json
// @Param body body RegisterRequest true "Name, email and password"
// @Success 201 {object} helpers.MessageResponse "User registered successfully"
// @Failure 400 {object} helpers.APIError "code: bad_request"
// @Failure 409 {object} helpers.APIError "code: conflict (email already registered)"
// @Failure 429 {object} helpers.APIError "code: too_many_requests"
// @Failure 500 {object} helpers.APIError "code: internal_error"
// @Router /users/register [post]
func (c *UserController) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	if _, err := c.Service.Register(r.Context(), req.Name, req.Email, req.Password); err != nil {
		if errors.Is(err, domain.ErrDuplicateEmail) {
			helpers.WriteJSONError(w, http.StatusConflict, helpers.ErrCodeConflict, "Email already registered")
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, "Error registering user")
		return
	}
	metrics.UsersRegisteredTotal.Inc()
	helpers.WriteMessage(w, http.StatusCreated, "User registered successfully")
}

// Login godoc
// @Summary Log in
// @Description Verifies credentials and returns a signed token valid for 24 hours along with the user.
// @Tags users
// @Accept json
// @Produce json
// @Param body body LoginRequest true "Email and password"
// @Success 200 {object} controllers.LoginResponse
// @Failure 400 {object} helpers.APIError "code: bad_request (Invalid credentials)"
// @Failure 429 {object} helpers.APIError "code: too_many_requests"
// @Failure 500 {object} helpers.APIError "code: internal_error"
// @Router /users/login [post]
func (c *UserController) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	token, user, err := c.Service.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			metrics.LoginsTotal.WithLabelValues("invalid").Inc()
			helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "Invalid credentials")
			return
		}
		metrics.LoginsTotal.WithLabelValues("error").Inc()
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, "Error logging in")
		return
	}
	metrics.LoginsTotal.WithLabelValues("success").Inc()
	helpers.WriteJSON(w, http.StatusOK, LoginResponse{Token: token, User: user})
}
