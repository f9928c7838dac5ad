package patients

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/smdental/dentismo/internal/domain"
	"github.com/smdental/dentismo/internal/dto"
	"github.com/smdental/dentismo/pkg/utils"
)

type Service interface {
	List(ctx context.Context) ([]domain.Patient, error)
	Add(ctx context.Context, patient *domain.Patient) (*domain.Patient, error)
	Update(ctx context.Context, id int, patient *domain.Patient) error
	Delete(ctx context.Context, id int) error
}

type PatientHandler struct {
	patientService Service
}

func New(patientService Service) *PatientHandler {
	return &PatientHandler{
		patientService: patientService,
	}
}

// List godoc
//
//	@Summary		List all patients with nested treatments and payments
//	@Tags			Patients
//	@Produce		json
//	@Success		200	{object}	dto.GetPatientsResponseDTO
//	@Security		BearerAuth
//	@Router			/api/patients [get]
func (h *PatientHandler) List(w http.ResponseWriter, r *http.Request) {
	patients, err := h.patientService.List(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Database error. Try again.")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.GetPatientsResponseDTO{
		Success:  true,
		Patients: patients,
	})
}

// Add godoc
//
//	@Summary		Add a patient
//	@Tags			Patients
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.PatientRequestDTO	true	"Patient body"
//	@Success		200		{object}	dto.AddPatientResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Security		BearerAuth
//	@Router			/api/patients [post]
func (h *PatientHandler) Add(w http.ResponseWriter, r *http.Request) {
	patient, ok := decodePatient(w, r)
	if !ok {
		return
	}
	created, err := h.patientService.Add(r.Context(), patient)
	if err != nil {
		utils.RespondWithJSON(w, http.StatusInternalServerError, dto.AddPatientResponseDTO{
			Success: false,
			Error:   "Database error. Try again.",
		})
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.AddPatientResponseDTO{
		Success:   true,
		PatientID: created.ID,
	})
}

// Update godoc
//
//	@Summary		Update a patient
//	@Tags			Patients
//	@Accept			json
//	@Produce		json
//	@Param			id		path		int						true	"Patient id"
//	@Param			request	body		dto.PatientRequestDTO	true	"Patient body"
//	@Success		200		{object}	dto.MutationResponseDTO
//	@Security		BearerAuth
//	@Router			/api/patients/{id} [put]
func (h *PatientHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	patient, ok := decodePatient(w, r)
	if !ok {
		return
	}
	if err := h.patientService.Update(r.Context(), id, patient); err != nil {
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
//	@Summary		Delete a patient and, through cascade, its treatments and payments
//	@Tags			Patients
//	@Produce		json
//	@Param			id	path		int	true	"Patient id"
//	@Success		200	{object}	dto.MutationResponseDTO
//	@Security		BearerAuth
//	@Router			/api/patients/{id} [delete]
func (h *PatientHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	if err := h.patientService.Delete(r.Context(), id); err != nil {
		utils.RespondWithJSON(w, http.StatusInternalServerError, dto.MutationResponseDTO{
			Success: false,
			Error:   "Database error. Try again.",
		})
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.MutationResponseDTO{Success: true})
}

func decodePatient(w http.ResponseWriter, r *http.Request) (*domain.Patient, bool) {
	var req dto.PatientRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return nil, false
	}
	if req.Name == "" || req.LastName == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Name and last name are required")
		return nil, false
	}
	if req.Age != nil && *req.Age < 0 {
		utils.RespondWithError(w, http.StatusBadRequest, "Age cannot be negative")
		return nil, false
	}
	patient, err := req.ToDomain()
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid date format")
		return nil, false
	}
	return patient, true
}

func pathID(w http.ResponseWriter, r *http.Request) (int, bool) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil || id <= 0 {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid id")
		return 0, false
	}
	return id, true
}
