package payments

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/smdental/dentismo/internal/domain"
	"github.com/smdental/dentismo/internal/dto"
	"github.com/smdental/dentismo/internal/service/paymentservice"
	"github.com/smdental/dentismo/pkg/utils"
)

type Service interface {
	Add(ctx context.Context, payment *domain.Payment) (*domain.Payment, error)
	Update(ctx context.Context, id int, payment *domain.Payment) error
	Delete(ctx context.Context, id int) error
	ListForTreatment(ctx context.Context, treatmentID int) ([]domain.Payment, error)
	ListAll(ctx context.Context) ([]domain.Payment, error)
}

type PaymentHandler struct {
	paymentService Service
}

func New(paymentService Service) *PaymentHandler {
	return &PaymentHandler{
		paymentService: paymentService,
	}
}

// List godoc
//
//	@Summary		List all payments with their parent treatment summary
//	@Tags			Payments
//	@Produce		json
//	@Success		200	{object}	dto.GetPaymentsResponseDTO
//	@Security		BearerAuth
//	@Router			/api/payments [get]
func (h *PaymentHandler) List(w http.ResponseWriter, r *http.Request) {
	payments, err := h.paymentService.ListAll(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Database error. Try again.")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.GetPaymentsResponseDTO{
		Success:  true,
		Payments: payments,
	})
}

// ListForTreatment godoc
//
//	@Summary		List the payments recorded against a treatment
//	@Tags			Payments
//	@Produce		json
//	@Param			id	path		int	true	"Treatment id"
//	@Success		200	{object}	dto.GetPaymentsResponseDTO
//	@Security		BearerAuth
//	@Router			/api/treatments/{id}/payments [get]
func (h *PaymentHandler) ListForTreatment(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	payments, err := h.paymentService.ListForTreatment(r.Context(), id)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Database error. Try again.")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.GetPaymentsResponseDTO{
		Success:  true,
		Payments: payments,
	})
}

// Add godoc
//
//	@Summary		Record a payment against an existing treatment
//	@Tags			Payments
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.PaymentRequestDTO	true	"Payment body"
//	@Success		200		{object}	dto.AddPaymentResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body or unknown treatment"
//	@Security		BearerAuth
//	@Router			/api/payments [post]
func (h *PaymentHandler) Add(w http.ResponseWriter, r *http.Request) {
	payment, ok := decodePayment(w, r, true)
	if !ok {
		return
	}
	created, err := h.paymentService.Add(r.Context(), payment)
	if err != nil {
		if errors.Is(err, paymentservice.ErrTreatmentNotFound) {
			utils.RespondWithJSON(w, http.StatusBadRequest, dto.AddPaymentResponseDTO{
				Success: false,
				Error:   "Foreign key constraint failed. Please ensure the treatment ID is valid.",
			})
			return
		}
		utils.RespondWithJSON(w, http.StatusInternalServerError, dto.AddPaymentResponseDTO{
			Success: false,
			Error:   "Database error. Try again.",
		})
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.AddPaymentResponseDTO{
		Success:   true,
		PaymentID: created.ID,
	})
}

// Update godoc
//
//	@Summary		Update a payment record
//	@Tags			Payments
//	@Accept			json
//	@Produce		json
//	@Param			id		path		int						true	"Payment id"
//	@Param			request	body		dto.PaymentRequestDTO	true	"Payment body"
//	@Success		200		{object}	dto.MutationResponseDTO
//	@Security		BearerAuth
//	@Router			/api/payments/{id} [put]
func (h *PaymentHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	payment, ok := decodePayment(w, r, false)
	if !ok {
		return
	}
	if err := h.paymentService.Update(r.Context(), id, payment); err != nil {
		utils.RespondWithJSON(w, http.StatusInternalServerError, dto.MutationResponseDTO{
			Success: false,
			Error:   "Database error. Try again.",
		})
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.MutationResponseDTO{Success: true})
}

// Delete godoc
//
//	@Summary		Delete a payment
//	@Tags			Payments
//	@Produce		json
//	@Param			id	path		int	true	"Payment id"
//	@Success		200	{object}	dto.MutationResponseDTO
//	@Security		BearerAuth
//	@Router			/api/payments/{id} [delete]
func (h *PaymentHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	if err := h.paymentService.Delete(r.Context(), id); err != nil {
		utils.RespondWithJSON(w, http.StatusInternalServerError, dto.MutationResponseDTO{
			Success: false,
			Error:   "Database error. Try again.",
		})
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.MutationResponseDTO{Success: true})
}

func decodePayment(w http.ResponseWriter, r *http.Request, requireTreatment bool) (*domain.Payment, bool) {
	var req dto.PaymentRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return nil, false
	}
	if req.Paid < 0 {
		utils.RespondWithError(w, http.StatusBadRequest, "Paid amount cannot be negative")
		return nil, false
	}
	if requireTreatment && req.TreatmentID <= 0 {
		utils.RespondWithError(w, http.StatusBadRequest, "Treatment id is required")
		return nil, false
	}
	payment, err := req.ToDomain()
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid date format")
		return nil, false
	}
	return payment, true
}

func pathID(w http.ResponseWriter, r *http.Request) (int, bool) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil || id <= 0 {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid id")
		return 0, false
	}
	return id, true
}
