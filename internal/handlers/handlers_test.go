package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	_ "github.com/smdental/dentismo/docs"
	authhandlers "github.com/smdental/dentismo/internal/handlers/auth"
	patienthandlers "github.com/smdental/dentismo/internal/handlers/patients"
	paymenthandlers "github.com/smdental/dentismo/internal/handlers/payments"
	reporthandlers "github.com/smdental/dentismo/internal/handlers/reports"
	treatmenthandlers "github.com/smdental/dentismo/internal/handlers/treatments"
	usershandlers "github.com/smdental/dentismo/internal/handlers/users"
	"github.com/smdental/dentismo/internal/service"
	"github.com/smdental/dentismo/pkg/auth"
)

func TestNew(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	services := &service.Services{
		AuthService:      authhandlers.NewMockService(ctrl),
		UserService:      usershandlers.NewMockService(ctrl),
		PatientService:   patienthandlers.NewMockService(ctrl),
		TreatmentService: treatmenthandlers.NewMockService(ctrl),
		PaymentService:   paymenthandlers.NewMockService(ctrl),
		ReportService:    reporthandlers.NewMockService(ctrl),
	}

	h := New(services, auth.NewMockJWTServiceInterface(ctrl))
	assert.NotNil(t, h, "Handlers should not be nil")
}

func TestInitRoutes(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAuthHandler := NewMockAuthHandler(ctrl)
	mockUserHandler := NewMockUserHandler(ctrl)
	mockPatientHandler := NewMockPatientHandler(ctrl)
	mockTreatmentHandler := NewMockTreatmentHandler(ctrl)
	mockPaymentHandler := NewMockPaymentHandler(ctrl)
	mockReportHandler := NewMockReportHandler(ctrl)

	mockAuthHandler.EXPECT().Register(gomock.Any(), gomock.Any()).AnyTimes()
	mockAuthHandler.EXPECT().Login(gomock.Any(), gomock.Any()).AnyTimes()
	mockAuthHandler.EXPECT().Verify(gomock.Any(), gomock.Any()).AnyTimes()
	mockAuthHandler.EXPECT().Me(gomock.Any(), gomock.Any()).AnyTimes()
	mockUserHandler.EXPECT().GetProfile(gomock.Any(), gomock.Any()).AnyTimes()
	mockPatientHandler.EXPECT().List(gomock.Any(), gomock.Any()).AnyTimes()
	mockTreatmentHandler.EXPECT().List(gomock.Any(), gomock.Any()).AnyTimes()
	mockPaymentHandler.EXPECT().List(gomock.Any(), gomock.Any()).AnyTimes()
	mockReportHandler.EXPECT().Overview(gomock.Any(), gomock.Any()).AnyTimes()

	h := &Handlers{
		AuthHandler:      mockAuthHandler,
		UserHandler:      mockUserHandler,
		PatientHandler:   mockPatientHandler,
		TreatmentHandler: mockTreatmentHandler,
		PaymentHandler:   mockPaymentHandler,
		ReportHandler:    mockReportHandler,
		jwtService:       auth.NewMockJWTServiceInterface(ctrl),
	}

	router := chi.NewRouter()
	h.InitRoutes(router)

	tests := []struct {
		method string
		url    string
		status int
	}{
		{"POST", "/api/auth/register", http.StatusOK},
		{"POST", "/api/auth/login", http.StatusOK},
		{"POST", "/api/auth/verify", http.StatusOK},
		{"GET", "/api/auth/me", http.StatusOK},
		{"GET", "/api/users/profile/", http.StatusUnauthorized},
		{"PUT", "/api/users/profile/", http.StatusUnauthorized},
		{"DELETE", "/api/users/profile/", http.StatusUnauthorized},
		{"GET", "/api/patients/", http.StatusUnauthorized},
		{"POST", "/api/patients/", http.StatusUnauthorized},
		{"PUT", "/api/patients/1", http.StatusUnauthorized},
		{"DELETE", "/api/patients/1", http.StatusUnauthorized},
		{"GET", "/api/patients/1/treatments", http.StatusUnauthorized},
		{"GET", "/api/treatments/", http.StatusUnauthorized},
		{"POST", "/api/treatments/", http.StatusUnauthorized},
		{"GET", "/api/treatments/1/payments", http.StatusUnauthorized},
		{"GET", "/api/payments/", http.StatusUnauthorized},
		{"POST", "/api/payments/", http.StatusUnauthorized},
		{"GET", "/api/reports", http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.url, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.url, nil)
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.status, rec.Code)
		})
	}
}
