package paymentservice

import (
	"context"
	"errors"

	"github.com/smdental/dentismo/internal/domain"
	"github.com/smdental/dentismo/internal/pg"
	"go.uber.org/zap"
)

var ErrTreatmentNotFound = errors.New("treatment does not exist")

type Repo interface {
	Create(ctx context.Context, payment *domain.Payment) (*domain.Payment, error)
	Update(ctx context.Context, id int, payment *domain.Payment) error
	Delete(ctx context.Context, id int) error
	ListForTreatment(ctx context.Context, treatmentID int) ([]domain.Payment, error)
	ListAllWithTreatment(ctx context.Context) ([]domain.Payment, error)
}

type Service struct {
	paymentRepo Repo
}

func New(repo Repo) *Service {
	return &Service{
		paymentRepo: repo,
	}
}

// Add records a payment. Overpayment is not rejected; the read side reports
// the signed remainder instead.
func (s *Service) Add(ctx context.Context, payment *domain.Payment) (*domain.Payment, error) {
	created, err := s.paymentRepo.Create(ctx, payment)
	if err != nil {
		if errors.Is(err, pg.ErrForeignKeyViolation) {
			return nil, ErrTreatmentNotFound
		}
		zap.L().Error("can't add payment: ", zap.Error(err))
		return nil, err
	}
	zap.L().Info("payment added", zap.Int("id", created.ID), zap.Int("treatment_id", created.TreatmentID))
	return created, nil
}

func (s *Service) Update(ctx context.Context, id int, payment *domain.Payment) error {
	if err := s.paymentRepo.Update(ctx, id, payment); err != nil {
		zap.L().Error("can't update payment: ", zap.Error(err))
		return err
	}
	return nil
}

func (s *Service) Delete(ctx context.Context, id int) error {
	if err := s.paymentRepo.Delete(ctx, id); err != nil {
		zap.L().Error("can't delete payment: ", zap.Error(err))
		return err
	}
	zap.L().Info("payment deleted", zap.Int("id", id))
	return nil
}

func (s *Service) ListForTreatment(ctx context.Context, treatmentID int) ([]domain.Payment, error) {
	payments, err := s.paymentRepo.ListForTreatment(ctx, treatmentID)
	if err != nil {
		zap.L().Error("can't list treatment payments: ", zap.Error(err))
		return nil, err
	}
	return payments, nil
}

func (s *Service) ListAll(ctx context.Context) ([]domain.Payment, error) {
	payments, err := s.paymentRepo.ListAllWithTreatment(ctx)
	if err != nil {
		zap.L().Error("can't list payments: ", zap.Error(err))
		return nil, err
	}
	return payments, nil
}
