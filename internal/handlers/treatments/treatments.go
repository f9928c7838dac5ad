package treatments

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/smdental/dentismo/internal/domain"
	"github.com/smdental/dentismo/internal/dto"
	"github.com/smdental/dentismo/internal/service/treatmentservice"
	"github.com/smdental/dentismo/pkg/utils"
)

type Service interface {
	Add(ctx context.Context, treatment *domain.Treatment) (*domain.Treatment, error)
	Update(ctx context.Context, id int, treatment *domain.Treatment) error
	Delete(ctx context.Context, id int) error
	ListForPatient(ctx context.Context, patientID int) ([]domain.Treatment, error)
	ListAll(ctx context.Context) ([]domain.Treatment, error)
}

type TreatmentHandler struct {
	treatmentService Service
}

func New(treatmentService Service) *TreatmentHandler {
	return &TreatmentHandler{
		treatmentService: treatmentService,
	}
}

// List godoc
//
//	@Summary		List all treatments across patients
//	@Tags			Treatments
//	@Produce		json
//	@Success		200	{object}	dto.GetTreatmentsResponseDTO
//	@Security		BearerAuth
//	@Router			/api/treatments [get]
func (h *TreatmentHandler) List(w http.ResponseWriter, r *http.Request) {
	treatments, err := h.treatmentService.ListAll(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Database error. Try again.")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.GetTreatmentsResponseDTO{
		Success:    true,
		Treatments: treatments,
	})
}

// ListForPatient godoc
//
//	@Summary		List a patient's treatments with payments
//	@Tags			Treatments
//	@Produce		json
//	@Param			id	path		int	true	"Patient id"
//	@Success		200	{object}	dto.GetTreatmentsResponseDTO
//	@Security		BearerAuth
//	@Router			/api/patients/{id}/treatments [get]
func (h *TreatmentHandler) ListForPatient(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	treatments, err := h.treatmentService.ListForPatient(r.Context(), id)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Database error. Try again.")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.GetTreatmentsResponseDTO{
		Success:    true,
		Treatments: treatments,
	})
}

// Add godoc
//
//	@Summary		Add a treatment for an existing patient
//	@Tags			Treatments
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.TreatmentRequestDTO	true	"Treatment body"
//	@Success		200		{object}	dto.AddTreatmentResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body or unknown patient"
//	@Security		BearerAuth
//	@Router			/api/treatments [post]
func (h *TreatmentHandler) Add(w http.ResponseWriter, r *http.Request) {
	treatment, ok := decodeTreatment(w, r, true)
	if !ok {
		return
	}
	created, err := h.treatmentService.Add(r.Context(), treatment)
	if err != nil {
		if errors.Is(err, treatmentservice.ErrPatientNotFound) {
			utils.RespondWithJSON(w, http.StatusBadRequest, dto.AddTreatmentResponseDTO{
				Success: false,
				Error:   "Foreign key constraint failed. Please ensure the patient ID is valid.",
			})
			return
		}
		utils.RespondWithJSON(w, http.StatusInternalServerError, dto.AddTreatmentResponseDTO{
			Success: false,
			Error:   "Database error. Try again.",
		})
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.AddTreatmentResponseDTO{
		Success:     true,
		TreatmentID: created.ID,
	})
}

// Update godoc
//
//	@Summary		Update a treatment
//	@Tags			Treatments
//	@Accept			json
//	@Produce		json
//	@Param			id		path		int						true	"Treatment id"
//	@Param			request	body		dto.TreatmentRequestDTO	true	"Treatment body"
//	@Success		200		{object}	dto.MutationResponseDTO
//	@Security		BearerAuth
//	@Router			/api/treatments/{id} [put]
func (h *TreatmentHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	treatment, ok := decodeTreatment(w, r, false)
	if !ok {
		return
	}
	if err := h.treatmentService.Update(r.Context(), id, treatment); err != nil {
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
//	@Summary		Delete a treatment and, through cascade, its payments
//	@Tags			Treatments
//	@Produce		json
//	@Param			id	path		int	true	"Treatment id"
//	@Success		200	{object}	dto.MutationResponseDTO
//	@Security		BearerAuth
//	@Router			/api/treatments/{id} [delete]
func (h *TreatmentHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	if err := h.treatmentService.Delete(r.Context(), id); err != nil {
		utils.RespondWithJSON(w, http.StatusInternalServerError, dto.MutationResponseDTO{
			Success: false,
			Error:   "Database error. Try again.",
		})
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.MutationResponseDTO{Success: true})
}

func decodeTreatment(w http.ResponseWriter, r *http.Request, requirePatient bool) (*domain.Treatment, bool) {
	var req dto.TreatmentRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return nil, false
	}
	if req.Name == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Treatment name is required")
		return nil, false
	}
	if req.Price < 0 {
		utils.RespondWithError(w, http.StatusBadRequest, "Price cannot be negative")
		return nil, false
	}
	if requirePatient && req.PatientID <= 0 {
		utils.RespondWithError(w, http.StatusBadRequest, "Patient id is required")
		return nil, false
	}
	treatment, err := req.ToDomain()
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid date format")
		return nil, false
	}
	return treatment, true
}

func pathID(w http.ResponseWriter, r *http.Request) (int, bool) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil || id <= 0 {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid id")
		return 0, false
	}
	return id, true
}
