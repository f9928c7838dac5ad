package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

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

type AuthHandler interface {
	Register(w http.ResponseWriter, r *http.Request)
	Login(w http.ResponseWriter, r *http.Request)
	Verify(w http.ResponseWriter, r *http.Request)
	Me(w http.ResponseWriter, r *http.Request)
}

type UserHandler interface {
	GetProfile(w http.ResponseWriter, r *http.Request)
	UpdateProfile(w http.ResponseWriter, r *http.Request)
	DeleteAccount(w http.ResponseWriter, r *http.Request)
}

type PatientHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Add(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type TreatmentHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	ListForPatient(w http.ResponseWriter, r *http.Request)
	Add(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type PaymentHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	ListForTreatment(w http.ResponseWriter, r *http.Request)
	Add(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type ReportHandler interface {
	Overview(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	AuthHandler      AuthHandler
	UserHandler      UserHandler
	PatientHandler   PatientHandler
	TreatmentHandler TreatmentHandler
	PaymentHandler   PaymentHandler
	ReportHandler    ReportHandler

	jwtService auth.JWTServiceInterface
}

func New(s *service.Services, jwtService auth.JWTServiceInterface) *Handlers {
	return &Handlers{
		AuthHandler:      authhandlers.New(s.AuthService),
		UserHandler:      usershandlers.New(s.UserService),
		PatientHandler:   patienthandlers.New(s.PatientService),
		TreatmentHandler: treatmenthandlers.New(s.TreatmentService),
		PaymentHandler:   paymenthandlers.New(s.PaymentService),
		ReportHandler:    reporthandlers.New(s.ReportService),
		jwtService:       jwtService,
	}
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
	)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))
	r.Route("/api", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", h.AuthHandler.Register)
			r.Post("/login", h.AuthHandler.Login)
			r.Post("/verify", h.AuthHandler.Verify)
			r.Get("/me", h.AuthHandler.Me)
		})

		r.Group(func(r chi.Router) {
			r.Use(auth.AuthMiddleware(h.jwtService))
			r.Route("/users/profile", func(r chi.Router) {
				r.Get("/", h.UserHandler.GetProfile)
				r.Put("/", h.UserHandler.UpdateProfile)
				r.Delete("/", h.UserHandler.DeleteAccount)
			})
			r.Route("/patients", func(r chi.Router) {
				r.Get("/", h.PatientHandler.List)
				r.Post("/", h.PatientHandler.Add)
				r.Put("/{id}", h.PatientHandler.Update)
				r.Delete("/{id}", h.PatientHandler.Delete)
				r.Get("/{id}/treatments", h.TreatmentHandler.ListForPatient)
			})
			r.Route("/treatments", func(r chi.Router) {
				r.Get("/", h.TreatmentHandler.List)
				r.Post("/", h.TreatmentHandler.Add)
				r.Put("/{id}", h.TreatmentHandler.Update)
				r.Delete("/{id}", h.TreatmentHandler.Delete)
				r.Get("/{id}/payments", h.PaymentHandler.ListForTreatment)
			})
			r.Route("/payments", func(r chi.Router) {
				r.Get("/", h.PaymentHandler.List)
				r.Post("/", h.PaymentHandler.Add)
				r.Put("/{id}", h.PaymentHandler.Update)
				r.Delete("/{id}", h.PaymentHandler.Delete)
			})
			r.Get("/reports", h.ReportHandler.Overview)
		})
	})

	return r
}
