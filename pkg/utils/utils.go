package utils

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"
)

// Response is the failure envelope every endpoint shares.
type Response struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

func RespondWithJSON(w http.ResponseWriter, code int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if payload == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		zap.L().Error("can't encode response", zap.Error(err))
	}
}

func RespondWithError(w http.ResponseWriter, code int, message string) {
	RespondWithJSON(w, code, Response{Success: false, Message: message})
}
