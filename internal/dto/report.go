package dto

import (
	"github.com/smdental/dentismo/internal/domain"
)

type ReportOverviewResponseDTO struct {
	Success    bool               `json:"success"`
	Treatments []domain.Treatment `json:"treatments"`
	Payments   []domain.Payment   `json:"payments"`
}
