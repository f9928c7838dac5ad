package dto

type UserDTO struct {
	ID       int    `json:"id" example:"1"`
	Name     string `json:"name" example:"Sara"`
	Username string `json:"username" example:"sara.m"`
}

type GetProfileResponseDTO struct {
	Success bool     `json:"success"`
	User    *UserDTO `json:"user,omitempty"`
	Error   string   `json:"error,omitempty"`
}

type UpdateProfileRequestDTO struct {
	Name            string `json:"name" validate:"required"`
	Username        string `json:"username" validate:"required,min=3,max=50"`
	Password        string `json:"password"`
	CurrentUsername string `json:"currentUsername" validate:"required"`
}

type ProfileMutationResponseDTO struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}
