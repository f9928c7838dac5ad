package auth

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/smdental/dentismo/internal/domain"
	"github.com/smdental/dentismo/internal/dto"
	"github.com/smdental/dentismo/internal/service/authservice"
	pkgauth "github.com/smdental/dentismo/pkg/auth"
	"github.com/smdental/dentismo/pkg/utils"
)

func NewMock(t *testing.T) (*AuthHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)
	defer ctrl.Finish()
	return handler, service
}

func TestRegisterHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name          string
		body          string
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name: "Successful registration",
			body: `{"name":"Dr. Smith","username":"drsmith","password":"password123"}`,
			prepareMock: func() {
				service.EXPECT().Register(context.Background(), "Dr. Smith", "drsmith", "password123").Return(&domain.User{
					ID:       1,
					Name:     "Dr. Smith",
					Username: "drsmith",
				}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Username already exists",
			body: `{"name":"Dr. Smith","username":"drsmith","password":"password123"}`,
			prepareMock: func() {
				service.EXPECT().Register(context.Background(), "Dr. Smith", "drsmith", "password123").Return(nil, authservice.ErrUsernameTaken)
			},
			expectedCode:  http.StatusConflict,
			expectedError: "Username already exists",
		},
		{
			name:          "Invalid request body",
			body:          `{invalid json`,
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Invalid request body",
		},
		{
			name:          "Missing fields",
			body:          `{"username":"drsmith"}`,
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Name, username and password are required",
		},
		{
			name: "Server error",
			body: `{"name":"Dr. Smith","username":"drsmith","password":"password123"}`,
			prepareMock: func() {
				service.EXPECT().Register(context.Background(), "Dr. Smith", "drsmith", "password123").Return(nil, errors.New("database error"))
			},
			expectedCode:  http.StatusInternalServerError,
			expectedError: "Registration failed due to server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			req := httptest.NewRequest(http.MethodPost, "/api/auth/register", bytes.NewBufferString(tt.body))
			rec := httptest.NewRecorder()

			handler.Register(rec, req)

			assert.Equal(t, tt.expectedCode, rec.Code)
			if tt.expectedError != "" {
				var resp utils.Response
				err := json.NewDecoder(rec.Body).Decode(&resp)
				assert.NoError(t, err)
				assert.False(t, resp.Success)
				assert.Equal(t, tt.expectedError, resp.Message)
			} else {
				var resp dto.RegisterResponseDTO
				err := json.NewDecoder(rec.Body).Decode(&resp)
				assert.NoError(t, err)
				assert.True(t, resp.Success)
			}
		})
	}
}

func TestLoginHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name          string
		body          string
		prepareMock   func()
		expectedCode  int
		expectedError string
		expectedToken string
	}{
		{
			name: "Successful login",
			body: `{"username":"drsmith","password":"password123"}`,
			prepareMock: func() {
				service.EXPECT().Authenticate(context.Background(), "drsmith", "password123").Return(&domain.User{
					ID:       1,
					Username: "drsmith",
				}, nil)
				service.EXPECT().GenerateToken("drsmith").Return("some-jwt-token", nil)
			},
			expectedCode:  http.StatusOK,
			expectedToken: "some-jwt-token",
		},
		{
			name: "Unknown user",
			body: `{"username":"nobody","password":"password123"}`,
			prepareMock: func() {
				service.EXPECT().Authenticate(context.Background(), "nobody", "password123").Return(nil, authservice.ErrUserNotFound)
			},
			expectedCode:  http.StatusUnauthorized,
			expectedError: "User not found",
		},
		{
			name: "Wrong password",
			body: `{"username":"drsmith","password":"wrong"}`,
			prepareMock: func() {
				service.EXPECT().Authenticate(context.Background(), "drsmith", "wrong").Return(nil, authservice.ErrInvalidCredentials)
			},
			expectedCode:  http.StatusUnauthorized,
			expectedError: "Invalid credentials",
		},
		{
			name:          "Invalid request body",
			body:          `{invalid json`,
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Invalid request body",
		},
		{
			name: "Token generation failure",
			body: `{"username":"drsmith","password":"password123"}`,
			prepareMock: func() {
				service.EXPECT().Authenticate(context.Background(), "drsmith", "password123").Return(&domain.User{
					ID:       1,
					Username: "drsmith",
				}, nil)
				service.EXPECT().GenerateToken("drsmith").Return("", errors.New("signing error"))
			},
			expectedCode:  http.StatusInternalServerError,
			expectedError: "Authentication failed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			req := httptest.NewRequest(http.MethodPost, "/api/auth/login", bytes.NewBufferString(tt.body))
			rec := httptest.NewRecorder()

			handler.Login(rec, req)

			assert.Equal(t, tt.expectedCode, rec.Code)
			if tt.expectedError != "" {
				var resp utils.Response
				err := json.NewDecoder(rec.Body).Decode(&resp)
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedError, resp.Message)
			} else {
				var resp dto.LoginResponseDTO
				err := json.NewDecoder(rec.Body).Decode(&resp)
				assert.NoError(t, err)
				assert.True(t, resp.Success)
				assert.Equal(t, tt.expectedToken, resp.Token)
				assert.Equal(t, "drsmith", resp.Username)
				assert.Equal(t, "Login successful", resp.Message)
				assert.Equal(t, "Bearer "+tt.expectedToken, rec.Header().Get("Authorization"))
			}
		})
	}
}

func TestVerifyHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name          string
		body          string
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name: "Valid token",
			body: `{"token":"good-token"}`,
			prepareMock: func() {
				service.EXPECT().VerifyToken("good-token").Return("drsmith", nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Expired token",
			body: `{"token":"old-token"}`,
			prepareMock: func() {
				service.EXPECT().VerifyToken("old-token").Return("", pkgauth.ErrTokenExpired)
			},
			expectedCode:  http.StatusUnauthorized,
			expectedError: "Token expired",
		},
		{
			name: "Invalid token",
			body: `{"token":"bad-token"}`,
			prepareMock: func() {
				service.EXPECT().VerifyToken("bad-token").Return("", pkgauth.ErrTokenInvalid)
			},
			expectedCode:  http.StatusUnauthorized,
			expectedError: "Invalid token",
		},
		{
			name:          "Invalid request body",
			body:          `{invalid json`,
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Invalid request body",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			req := httptest.NewRequest(http.MethodPost, "/api/auth/verify", bytes.NewBufferString(tt.body))
			rec := httptest.NewRecorder()

			handler.Verify(rec, req)

			assert.Equal(t, tt.expectedCode, rec.Code)
			if tt.expectedError != "" {
				var resp utils.Response
				err := json.NewDecoder(rec.Body).Decode(&resp)
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedError, resp.Message)
			} else {
				var resp dto.VerifyTokenResponseDTO
				err := json.NewDecoder(rec.Body).Decode(&resp)
				assert.NoError(t, err)
				assert.True(t, resp.Success)
				assert.Equal(t, "drsmith", resp.Username)
			}
		})
	}
}

func TestMeHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name          string
		authHeader    string
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name:       "Valid token",
			authHeader: "Bearer good-token",
			prepareMock: func() {
				service.EXPECT().UserInfo(context.Background(), "good-token").Return("Dr. Smith", nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:          "Missing header",
			authHeader:    "",
			prepareMock:   func() {},
			expectedCode:  http.StatusUnauthorized,
			expectedError: "Invalid token",
		},
		{
			name:       "Expired token",
			authHeader: "Bearer old-token",
			prepareMock: func() {
				service.EXPECT().UserInfo(context.Background(), "old-token").Return("", pkgauth.ErrTokenExpired)
			},
			expectedCode:  http.StatusUnauthorized,
			expectedError: "Token expired",
		},
		{
			name:       "Token holder gone",
			authHeader: "Bearer good-token",
			prepareMock: func() {
				service.EXPECT().UserInfo(context.Background(), "good-token").Return("", authservice.ErrUserNotFound)
			},
			expectedCode:  http.StatusNotFound,
			expectedError: "User not found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
			if tt.authHeader != "" {
				req.Header.Set("Authorization", tt.authHeader)
			}
			rec := httptest.NewRecorder()

			handler.Me(rec, req)

			assert.Equal(t, tt.expectedCode, rec.Code)
			if tt.expectedError != "" {
				var resp utils.Response
				err := json.NewDecoder(rec.Body).Decode(&resp)
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedError, resp.Message)
			} else {
				var resp dto.UserInfoResponseDTO
				err := json.NewDecoder(rec.Body).Decode(&resp)
				assert.NoError(t, err)
				assert.True(t, resp.Success)
				assert.Equal(t, "Dr. Smith", resp.Name)
			}
		})
	}
}
