package reports

import (
	"context"
	"net/http"

	"github.com/smdental/dentismo/internal/domain"
	"github.com/smdental/dentismo/internal/dto"
	"github.com/smdental/dentismo/pkg/utils"
)

type Service interface {
	Overview(ctx context.Context) ([]domain.Treatment, []domain.Payment, error)
}

type ReportHandler struct {
	reportService Service
}

func New(reportService Service) *ReportHandler {
	return &ReportHandler{
		reportService: reportService,
	}
}

// Overview godoc
//
//	@Summary		Combined reporting view of all treatments and payments
//	@Tags			Reports
//	@Produce		json
//	@Success		200	{object}	dto.ReportOverviewResponseDTO
//	@Security		BearerAuth
//	@Router			/api/reports [get]
func (h *ReportHandler) Overview(w http.ResponseWriter, r *http.Request) {
	treatments, payments, err := h.reportService.Overview(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Database error. Try again.")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.ReportOverviewResponseDTO{
		Success:    true,
		Treatments: treatments,
		Payments:   payments,
	})
}
