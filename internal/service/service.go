package service

import (
	authhandlers "github.com/smdental/dentismo/internal/handlers/auth"
	patienthandlers "github.com/smdental/dentismo/internal/handlers/patients"
	paymenthandlers "github.com/smdental/dentismo/internal/handlers/payments"
	reporthandlers "github.com/smdental/dentismo/internal/handlers/reports"
	treatmenthandlers "github.com/smdental/dentismo/internal/handlers/treatments"
	usershandlers "github.com/smdental/dentismo/internal/handlers/users"

	pkgauth "github.com/smdental/dentismo/pkg/auth"

	"github.com/smdental/dentismo/internal/repo"
	"github.com/smdental/dentismo/internal/service/authservice"
	"github.com/smdental/dentismo/internal/service/patientservice"
	"github.com/smdental/dentismo/internal/service/paymentservice"
	"github.com/smdental/dentismo/internal/service/reportservice"
	"github.com/smdental/dentismo/internal/service/treatmentservice"
)

type Services struct {
	AuthService      authhandlers.Service
	UserService      usershandlers.Service
	PatientService   patienthandlers.Service
	TreatmentService treatmenthandlers.Service
	PaymentService   paymenthandlers.Service
	ReportService    reporthandlers.Service
}

func New(repo *repo.Repositories, jwtService pkgauth.JWTServiceInterface) *Services {
	authService := authservice.New(repo.UserRepo, &pkgauth.HashService{}, jwtService)
	patientService := patientservice.New(repo.PatientRepo)
	treatmentService := treatmentservice.New(repo.TreatmentRepo)
	paymentService := paymentservice.New(repo.PaymentRepo)
	reportService := reportservice.New(repo.TreatmentRepo, repo.PaymentRepo)

	return &Services{
		AuthService:      authService,
		UserService:      authService,
		PatientService:   patientService,
		TreatmentService: treatmentService,
		PaymentService:   paymentService,
		ReportService:    reportService,
	}
}
