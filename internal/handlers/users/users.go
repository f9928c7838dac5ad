package users

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/smdental/dentismo/internal/domain"
	"github.com/smdental/dentismo/internal/dto"
	"github.com/smdental/dentismo/internal/service/authservice"
	"github.com/smdental/dentismo/pkg/auth"
	"github.com/smdental/dentismo/pkg/utils"
)

type Service interface {
	GetProfile(ctx context.Context, username string) (*domain.User, error)
	UpdateProfile(ctx context.Context, currentUsername, name, username, password string) (bool, error)
	DeleteAccount(ctx context.Context, username string) error
}

type UserHandler struct {
	userService Service
}

func New(userService Service) *UserHandler {
	return &UserHandler{
		userService: userService,
	}
}

// GetProfile godoc
//
//	@Summary		Get the authenticated user's profile
//	@Tags			Users
//	@Produce		json
//	@Success		200	{object}	dto.GetProfileResponseDTO
//	@Failure		404	{object}	dto.GetProfileResponseDTO	"User not found"
//	@Security		BearerAuth
//	@Router			/api/users/profile [get]
func (h *UserHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	username, ok := auth.UsernameFromContext(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Invalid token")
		return
	}
	user, err := h.userService.GetProfile(r.Context(), username)
	if err != nil {
		if errors.Is(err, authservice.ErrUserNotFound) {
			utils.RespondWithJSON(w, http.StatusNotFound, dto.GetProfileResponseDTO{
				Success: false,
				Error:   "User not found",
			})
			return
		}
		utils.RespondWithJSON(w, http.StatusInternalServerError, dto.GetProfileResponseDTO{
			Success: false,
			Error:   "Database error. Try again.",
		})
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.GetProfileResponseDTO{
		Success: true,
		User: &dto.UserDTO{
			ID:       user.ID,
			Name:     user.Name,
			Username: user.Username,
		},
	})
}

// UpdateProfile godoc
//
//	@Summary		Update name, username and optionally the password
//	@Description	Fields are replaced wholesale; an empty password keeps the current one
//	@Tags			Users
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.UpdateProfileRequestDTO	true	"Profile update body"
//	@Success		200		{object}	dto.ProfileMutationResponseDTO
//	@Failure		400		{object}	dto.ProfileMutationResponseDTO	"Invalid request body"
//	@Failure		409		{object}	dto.ProfileMutationResponseDTO	"Username already exists"
//	@Security		BearerAuth
//	@Router			/api/users/profile [put]
func (h *UserHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	var req dto.UpdateProfileRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithJSON(w, http.StatusBadRequest, dto.ProfileMutationResponseDTO{
			Success: false,
			Error:   "Invalid request body",
		})
		return
	}
	if req.Name == "" || req.Username == "" || req.CurrentUsername == "" {
		utils.RespondWithJSON(w, http.StatusBadRequest, dto.ProfileMutationResponseDTO{
			Success: false,
			Error:   "Name and username are required",
		})
		return
	}
	updated, err := h.userService.UpdateProfile(r.Context(), req.CurrentUsername, req.Name, req.Username, req.Password)
	if err != nil {
		if errors.Is(err, authservice.ErrUsernameTaken) {
			utils.RespondWithJSON(w, http.StatusConflict, dto.ProfileMutationResponseDTO{
				Success: false,
				Error:   "Username already exists",
			})
			return
		}
		utils.RespondWithJSON(w, http.StatusInternalServerError, dto.ProfileMutationResponseDTO{
			Success: false,
			Error:   "Database error. Try again.",
		})
		return
	}
	if !updated {
		utils.RespondWithJSON(w, http.StatusOK, dto.ProfileMutationResponseDTO{
			Success: false,
			Error:   "Update failed. Try again.",
		})
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.ProfileMutationResponseDTO{Success: true})
}

// DeleteAccount godoc
//
//	@Summary		Delete the authenticated user's account
//	@Tags			Users
//	@Produce		json
//	@Success		200	{object}	dto.ProfileMutationResponseDTO
//	@Security		BearerAuth
//	@Router			/api/users/profile [delete]
func (h *UserHandler) DeleteAccount(w http.ResponseWriter, r *http.Request) {
	username, ok := auth.UsernameFromContext(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Invalid token")
		return
	}
	if err := h.userService.DeleteAccount(r.Context(), username); err != nil {
		utils.RespondWithJSON(w, http.StatusInternalServerError, dto.ProfileMutationResponseDTO{
			Success: false,
			Error:   "Delete failed",
		})
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.ProfileMutationResponseDTO{Success: true})
}
