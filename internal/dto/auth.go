package dto

type RegisterRequestDTO struct {
	Name     string `json:"name" validate:"required"`
	Username string `json:"username" validate:"required,min=3,max=50"`
	Password string `json:"password" validate:"required,min=8"`
}

type RegisterResponseDTO struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

type LoginRequestDTO struct {
	Username string `json:"username" validate:"required,min=3,max=50"`
	Password string `json:"password" validate:"required,min=8"`
}

type LoginResponseDTO struct {
	Success  bool   `json:"success"`
	Token    string `json:"token,omitempty"`
	Username string `json:"username,omitempty"`
	Message  string `json:"message,omitempty"`
}

type VerifyTokenRequestDTO struct {
	Token string `json:"token"`
}

type VerifyTokenResponseDTO struct {
	Success  bool   `json:"success"`
	Username string `json:"username,omitempty"`
	Message  string `json:"message,omitempty"`
}

type UserInfoResponseDTO struct {
	Success bool   `json:"success"`
	Name    string `json:"name,omitempty"`
	Message string `json:"message,omitempty"`
}
