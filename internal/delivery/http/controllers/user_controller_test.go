package controllers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"eventhub/internal/delivery/http/helpers"
	"eventhub/internal/domain"
)

// fakeUserService implements domain.UserService for handler tests.
type fakeUserService struct {
	registerErr  error
	lastName     string
	lastEmail    string
	lastPassword string
	loginToken   string
	loginUser    *domain.User
	loginErr     error
}

func (f *fakeUserService) Register(ctx context.Context, name, email, password string) (*domain.User, error) {
	f.lastName, f.lastEmail, f.lastPassword = name, email, password
	if f.registerErr != nil {
		return nil, f.registerErr
	}
	return &domain.User{ID: "user-1", Name: name, Email: email}, nil
}

func (f *fakeUserService) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	if f.loginErr != nil {
		return "", nil, f.loginErr
	}
	return f.loginToken, f.loginUser, nil
}

func TestUserController_Register(t *testing.T) {
	tests := []struct {
		name        string
		body        string
		svc         *fakeUserService
		wantStatus  int
		wantCode    string
		wantMessage string
	}{
		{
			name:        "success",
			body:        `{"name":"Ana","email":"ana@example.com","password":"password123"}`,
			svc:         &fakeUserService{},
			wantStatus:  http.StatusCreated,
			wantMessage: "User registered successfully",
		},
		{
			name:        "duplicate email",
			body:        `{"name":"Ana","email":"ana@example.com","password":"password123"}`,
			svc:         &fakeUserService{registerErr: domain.ErrDuplicateEmail},
			wantStatus:  http.StatusConflict,
			wantCode:    helpers.ErrCodeConflict,
			wantMessage: "Email already registered",
		},
		{
			name:        "store error is sanitized",
			body:        `{"name":"Ana","email":"ana@example.com","password":"password123"}`,
			svc:         &fakeUserService{registerErr: errors.New("pq: connection refused")},
			wantStatus:  http.StatusInternalServerError,
			wantCode:    helpers.ErrCodeInternalError,
			wantMessage: "Error registering user",
		},
		{
			name:       "missing password",
			body:       `{"name":"Ana","email":"ana@example.com"}`,
			svc:        &fakeUserService{},
			wantStatus: http.StatusBadRequest,
			wantCode:   helpers.ErrCodeBadRequest,
		},
		{
			name:       "invalid email",
			body:       `{"name":"Ana","email":"not-an-email","password":"password123"}`,
			svc:        &fakeUserService{},
			wantStatus: http.StatusBadRequest,
			wantCode:   helpers.ErrCodeBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewUserController(testLogger, tt.svc)
			req := httptest.NewRequest(http.MethodPost, "/users/register", strings.NewReader(tt.body))
			rr := httptest.NewRecorder()

			c.Register(rr, req)

			require.Equal(t, tt.wantStatus, rr.Code)
			if tt.wantCode == "" {
				assert.Equal(t, tt.wantMessage, decodeMessage(t, rr))
				assert.Equal(t, "password123", tt.svc.lastPassword)
				return
			}
			body := decodeError(t, rr)
			assert.Equal(t, tt.wantCode, body.Code)
			if tt.wantMessage != "" {
				assert.Equal(t, tt.wantMessage, body.Message)
			}
		})
	}
}

func TestUserController_Login(t *testing.T) {
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	user := &domain.User{ID: "user-1", Name: "Ana", Email: "ana@example.com", PasswordHash: "$2a$10$secret", CreatedAt: now, UpdatedAt: now}

	t.Run("success returns token and safe user", func(t *testing.T) {
		c := NewUserController(testLogger, &fakeUserService{loginToken: "jwt-token", loginUser: user})
		req := httptest.NewRequest(http.MethodPost, "/users/login", strings.NewReader(`{"email":"ana@example.com","password":"password123"}`))
		rr := httptest.NewRecorder()

		c.Login(rr, req)

		require.Equal(t, http.StatusOK, rr.Code)
		assert.NotContains(t, rr.Body.String(), "secret")
		assert.NotContains(t, rr.Body.String(), "password")
		var body map[string]any
		require.NoError(t, json.NewDecoder(rr.Body).Decode(&body))
		assert.Equal(t, "jwt-token", body["token"])
		u, ok := body["user"].(map[string]any)
		require.True(t, ok)
		assert.Equal(t, "user-1", u["id"])
		assert.Equal(t, "Ana", u["name"])
		assert.Equal(t, "ana@example.com", u["email"])
	})

	t.Run("invalid credentials", func(t *testing.T) {
		c := NewUserController(testLogger, &fakeUserService{loginErr: domain.ErrInvalidCredentials})
		req := httptest.NewRequest(http.MethodPost, "/users/login", strings.NewReader(`{"email":"ana@example.com","password":"wrong"}`))
		rr := httptest.NewRecorder()

		c.Login(rr, req)

		require.Equal(t, http.StatusBadRequest, rr.Code)
		body := decodeError(t, rr)
		assert.Equal(t, helpers.ErrCodeBadRequest, body.Code)
		assert.Equal(t, "Invalid credentials", body.Message)
	})

	t.Run("store error", func(t *testing.T) {
		c := NewUserController(testLogger, &fakeUserService{loginErr: errors.New("db down")})
		req := httptest.NewRequest(http.MethodPost, "/users/login", strings.NewReader(`{"email":"ana@example.com","password":"x"}`))
		rr := httptest.NewRecorder()

		c.Login(rr, req)

		require.Equal(t, http.StatusInternalServerError, rr.Code)
		assert.Equal(t, "Error logging in", decodeError(t, rr).Message)
	})
}
