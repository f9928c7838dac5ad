package dto

import (
	"github.com/smdental/dentismo/internal/domain"
)

type PatientRequestDTO struct {
	Name            string  `json:"name" validate:"required"`
	LastName        string  `json:"last_name" validate:"required"`
	Age             *int    `json:"age,omitempty" example:"30"`
	CaseDescription *string `json:"case_description,omitempty" example:"orthodontic follow-up"`
	Date            string  `json:"date,omitempty" example:"2024-01-01"`
}

// ToDomain converts the request body into a tagged patient record. An empty
// date stays the zero time so the store can default it to now.
func (d *PatientRequestDTO) ToDomain() (*domain.Patient, error) {
	date, err := ParseDate(d.Date)
	if err != nil {
		return nil, err
	}
	return &domain.Patient{
		Name:            d.Name,
		LastName:        d.LastName,
		Age:             d.Age,
		CaseDescription: d.CaseDescription,
		Date:            date,
	}, nil
}

type GetPatientsResponseDTO struct {
	Success  bool             `json:"success"`
	Patients []domain.Patient `json:"patients"`
}

type AddPatientResponseDTO struct {
	Success   bool   `json:"success"`
	PatientID int    `json:"patientId,omitempty"`
	Error     string `json:"error,omitempty"`
}

type MutationResponseDTO struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}
