package patientservice

import (
	"context"

	"github.com/smdental/dentismo/internal/domain"
	"go.uber.org/zap"
)

type Repo interface {
	Create(ctx context.Context, patient *domain.Patient) (*domain.Patient, error)
	Update(ctx context.Context, id int, patient *domain.Patient) error
	Delete(ctx context.Context, id int) error
	ListWithTreatments(ctx context.Context) ([]domain.Patient, error)
}

type Service struct {
	patientRepo Repo
}

func New(repo Repo) *Service {
	return &Service{
		patientRepo: repo,
	}
}

func (s *Service) Add(ctx context.Context, patient *domain.Patient) (*domain.Patient, error) {
	created, err := s.patientRepo.Create(ctx, patient)
	if err != nil {
		zap.L().Error("can't add patient: ", zap.Error(err))
		return nil, err
	}
	zap.L().Info("patient added", zap.Int("id", created.ID))
	return created, nil
}

func (s *Service) Update(ctx context.Context, id int, patient *domain.Patient) error {
	if err := s.patientRepo.Update(ctx, id, patient); err != nil {
		zap.L().Error("can't update patient: ", zap.Error(err))
		return err
	}
	return nil
}

func (s *Service) Delete(ctx context.Context, id int) error {
	if err := s.patientRepo.Delete(ctx, id); err != nil {
		zap.L().Error("can't delete patient: ", zap.Error(err))
		return err
	}
	zap.L().Info("patient deleted", zap.Int("id", id))
	return nil
}

// List returns every patient with the full treatment and payment tree. A
// patient without treatments carries an empty list, never null.
func (s *Service) List(ctx context.Context) ([]domain.Patient, error) {
	patients, err := s.patientRepo.ListWithTreatments(ctx)
	if err != nil {
		zap.L().Error("can't list patients: ", zap.Error(err))
		return nil, err
	}
	if patients == nil {
		patients = []domain.Patient{}
	}
	return patients, nil
}
