package repo

import (
	"github.com/smdental/dentismo/internal/pg"
	patientrepo "github.com/smdental/dentismo/internal/repo/patient-repo"
	paymentrepo "github.com/smdental/dentismo/internal/repo/payment-repo"
	treatmentrepo "github.com/smdental/dentismo/internal/repo/treatment-repo"
	userrepo "github.com/smdental/dentismo/internal/repo/user-repo"
	"github.com/smdental/dentismo/internal/service/authservice"
	"github.com/smdental/dentismo/internal/service/patientservice"
	"github.com/smdental/dentismo/internal/service/paymentservice"
	"github.com/smdental/dentismo/internal/service/treatmentservice"
)

type Repositories struct {
	UserRepo      authservice.UserRepo
	PatientRepo   patientservice.Repo
	TreatmentRepo treatmentservice.Repo
	PaymentRepo   paymentservice.Repo
}

func New(conn pg.Database, txManager pg.TXManager) *Repositories {
	userRepo := userrepo.New(conn)
	patientRepo := patientrepo.New(conn, txManager)
	treatmentRepo := treatmentrepo.New(conn, txManager)
	paymentRepo := paymentrepo.New(conn, txManager)

	return &Repositories{
		UserRepo:      userRepo,
		PatientRepo:   patientRepo,
		TreatmentRepo: treatmentRepo,
		PaymentRepo:   paymentRepo,
	}
}
