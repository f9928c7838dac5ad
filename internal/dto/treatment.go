package dto

import (
	"github.com/smdental/dentismo/internal/domain"
)

type TreatmentRequestDTO struct {
	Name        string  `json:"name" validate:"required"`
	Description *string `json:"description,omitempty"`
	Date        string  `json:"date,omitempty" example:"2024-01-01"`
	Price       float64 `json:"price" example:"250"`
	PatientID   int     `json:"patient_id" validate:"required"`
}

func (d *TreatmentRequestDTO) ToDomain() (*domain.Treatment, error) {
	date, err := ParseDateRef(d.Date)
	if err != nil {
		return nil, err
	}
	return &domain.Treatment{
		Name:        d.Name,
		Description: d.Description,
		Date:        date,
		Price:       d.Price,
		PatientID:   d.PatientID,
	}, nil
}

type GetTreatmentsResponseDTO struct {
	Success    bool               `json:"success"`
	Treatments []domain.Treatment `json:"treatments"`
}

type AddTreatmentResponseDTO struct {
	Success     bool   `json:"success"`
	TreatmentID int    `json:"treatmentId,omitempty"`
	Error       string `json:"error,omitempty"`
}
