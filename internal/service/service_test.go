package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/smdental/dentismo/internal/repo"
	"github.com/smdental/dentismo/internal/service/authservice"
	"github.com/smdental/dentismo/internal/service/patientservice"
	"github.com/smdental/dentismo/internal/service/paymentservice"
	"github.com/smdental/dentismo/internal/service/treatmentservice"
	"github.com/smdental/dentismo/pkg/auth"
)

func TestNew(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUserRepo := authservice.NewMockUserRepo(ctrl)
	mockPatientRepo := patientservice.NewMockRepo(ctrl)
	mockTreatmentRepo := treatmentservice.NewMockRepo(ctrl)
	mockPaymentRepo := paymentservice.NewMockRepo(ctrl)
	mockJWTService := auth.NewMockJWTServiceInterface(ctrl)

	repos := &repo.Repositories{
		UserRepo:      mockUserRepo,
		PatientRepo:   mockPatientRepo,
		TreatmentRepo: mockTreatmentRepo,
		PaymentRepo:   mockPaymentRepo,
	}

	services := New(repos, mockJWTService)

	assert.NotNil(t, services.AuthService)
	assert.NotNil(t, services.UserService)
	assert.NotNil(t, services.PatientService)
	assert.NotNil(t, services.TreatmentService)
	assert.NotNil(t, services.PaymentService)
	assert.NotNil(t, services.ReportService)
}
