package treatmentservice

import (
	"context"
	"errors"

	"github.com/smdental/dentismo/internal/domain"
	"github.com/smdental/dentismo/internal/pg"
	"go.uber.org/zap"
)

var ErrPatientNotFound = errors.New("patient does not exist")

type Repo interface {
	Create(ctx context.Context, treatment *domain.Treatment) (*domain.Treatment, error)
	Update(ctx context.Context, id int, treatment *domain.Treatment) error
	Delete(ctx context.Context, id int) error
	ListForPatient(ctx context.Context, patientID int) ([]domain.Treatment, error)
	ListAll(ctx context.Context) ([]domain.Treatment, error)
}

type Service struct {
	treatmentRepo Repo
}

func New(repo Repo) *Service {
	return &Service{
		treatmentRepo: repo,
	}
}

func (s *Service) Add(ctx context.Context, treatment *domain.Treatment) (*domain.Treatment, error) {
	created, err := s.treatmentRepo.Create(ctx, treatment)
	if err != nil {
		if errors.Is(err, pg.ErrForeignKeyViolation) {
			return nil, ErrPatientNotFound
		}
		zap.L().Error("can't add treatment: ", zap.Error(err))
		return nil, err
	}
	zap.L().Info("treatment added", zap.Int("id", created.ID), zap.Int("patient_id", created.PatientID))
	return created, nil
}

func (s *Service) Update(ctx context.Context, id int, treatment *domain.Treatment) error {
	if err := s.treatmentRepo.Update(ctx, id, treatment); err != nil {
		zap.L().Error("can't update treatment: ", zap.Error(err))
		return err
	}
	return nil
}

func (s *Service) Delete(ctx context.Context, id int) error {
	if err := s.treatmentRepo.Delete(ctx, id); err != nil {
		zap.L().Error("can't delete treatment: ", zap.Error(err))
		return err
	}
	zap.L().Info("treatment deleted", zap.Int("id", id))
	return nil
}

func (s *Service) ListForPatient(ctx context.Context, patientID int) ([]domain.Treatment, error) {
	treatments, err := s.treatmentRepo.ListForPatient(ctx, patientID)
	if err != nil {
		zap.L().Error("can't list patient treatments: ", zap.Error(err))
		return nil, err
	}
	return treatments, nil
}

func (s *Service) ListAll(ctx context.Context) ([]domain.Treatment, error) {
	treatments, err := s.treatmentRepo.ListAll(ctx)
	if err != nil {
		zap.L().Error("can't list treatments: ", zap.Error(err))
		return nil, err
	}
	return treatments, nil
}
