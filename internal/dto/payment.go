package dto

import (
	"github.com/smdental/dentismo/internal/domain"
)

type PaymentRequestDTO struct {
	Paid        float64 `json:"paid" example:"100"`
	Date        string  `json:"date,omitempty" example:"2024-01-15"`
	Act         *string `json:"act,omitempty" example:"scaling"`
	TreatmentID int     `json:"treatment_id" validate:"required"`
}

func (d *PaymentRequestDTO) ToDomain() (*domain.Payment, error) {
	date, err := ParseDate(d.Date)
	if err != nil {
		return nil, err
	}
	return &domain.Payment{
		Paid:        d.Paid,
		Date:        date,
		Act:         d.Act,
		TreatmentID: d.TreatmentID,
	}, nil
}

type GetPaymentsResponseDTO struct {
	Success  bool             `json:"success"`
	Payments []domain.Payment `json:"payments"`
}

type AddPaymentResponseDTO struct {
	Success   bool   `json:"success"`
	PaymentID int    `json:"paymentId,omitempty"`
	Error     string `json:"error,omitempty"`
}
