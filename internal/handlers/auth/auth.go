package auth

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/smdental/dentismo/internal/domain"
	"github.com/smdental/dentismo/internal/dto"
	"github.com/smdental/dentismo/internal/service/authservice"
	"github.com/smdental/dentismo/pkg/auth"
	"github.com/smdental/dentismo/pkg/utils"
)

type Service interface {
	Register(ctx context.Context, name, username, password string) (*domain.User, error)
	Authenticate(ctx context.Context, username, password string) (*domain.User, error)
	GenerateToken(username string) (string, error)
	VerifyToken(token string) (string, error)
	UserInfo(ctx context.Context, token string) (string, error)
}

type AuthHandler struct {
	authService Service
}

func New(authService Service) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

// Register godoc
//
//	@Summary		Register a new user
//	@Description	Create a new user account with name, username and password
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.RegisterRequestDTO	true	"Register request body"
//	@Success		200		{object}	dto.RegisterResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		409		{object}	utils.Response	"Username already exists"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/auth/register [post]
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req dto.RegisterRequestDTO
	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Name == "" || req.Username == "" || req.Password == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Name, username and password are required")
		return
	}
	_, err = h.authService.Register(r.Context(), req.Name, req.Username, req.Password)
	if err != nil {
		if errors.Is(err, authservice.ErrUsernameTaken) {
			utils.RespondWithError(w, http.StatusConflict, "Username already exists")
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Registration failed due to server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.RegisterResponseDTO{
		Success: true,
	})
}

// Login godoc
//
//	@Summary		Authenticate user
//	@Description	Log in with username and password and get a session token
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.LoginRequestDTO	true	"Login request body"
//	@Success		200		{object}	dto.LoginResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		401		{object}	utils.Response	"Invalid credentials"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/auth/login [post]
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequestDTO
	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	user, err := h.authService.Authenticate(r.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, authservice.ErrUserNotFound) {
			utils.RespondWithError(w, http.StatusUnauthorized, "User not found")
			return
		}
		if errors.Is(err, authservice.ErrInvalidCredentials) {
			utils.RespondWithError(w, http.StatusUnauthorized, "Invalid credentials")
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Authentication failed")
		return
	}
	token, err := h.authService.GenerateToken(user.Username)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Authentication failed")
		return
	}
	w.Header().Set("Authorization", "Bearer "+token)
	utils.RespondWithJSON(w, http.StatusOK, dto.LoginResponseDTO{
		Success:  true,
		Token:    token,
		Username: user.Username,
		Message:  "Login successful",
	})
}

// Verify godoc
//
//	@Summary		Verify a session token
//	@Description	Check signature and expiry of a token and return its username
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.VerifyTokenRequestDTO	true	"Token to verify"
//	@Success		200		{object}	dto.VerifyTokenResponseDTO
//	@Failure		401		{object}	utils.Response	"Token expired or invalid"
//	@Router			/api/auth/verify [post]
func (h *AuthHandler) Verify(w http.ResponseWriter, r *http.Request) {
	var req dto.VerifyTokenRequestDTO
	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	username, err := h.authService.VerifyToken(req.Token)
	if err != nil {
		if errors.Is(err, auth.ErrTokenExpired) {
			utils.RespondWithError(w, http.StatusUnauthorized, "Token expired")
			return
		}
		utils.RespondWithError(w, http.StatusUnauthorized, "Invalid token")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.VerifyTokenResponseDTO{
		Success:  true,
		Username: username,
	})
}

// Me godoc
//
//	@Summary		Current user info
//	@Description	Verify the bearer token and return the holder's display name
//	@Tags			Auth
//	@Produce		json
//	@Success		200	{object}	dto.UserInfoResponseDTO
//	@Failure		401	{object}	utils.Response	"Token expired or invalid"
//	@Router			/api/auth/me [get]
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
		utils.RespondWithError(w, http.StatusUnauthorized, "Invalid token")
		return
	}
	token := strings.TrimPrefix(authHeader, "Bearer ")
	name, err := h.authService.UserInfo(r.Context(), token)
	if err != nil {
		switch {
		case errors.Is(err, auth.ErrTokenExpired):
			utils.RespondWithError(w, http.StatusUnauthorized, "Token expired")
		case errors.Is(err, authservice.ErrUserNotFound):
			utils.RespondWithError(w, http.StatusNotFound, "User not found")
		default:
			utils.RespondWithError(w, http.StatusUnauthorized, "Invalid token")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.UserInfoResponseDTO{
		Success: true,
		Name:    name,
	})
}
