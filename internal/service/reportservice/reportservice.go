package reportservice

import (
	"context"

	"github.com/smdental/dentismo/internal/domain"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

type TreatmentRepo interface {
	ListAll(ctx context.Context) ([]domain.Treatment, error)
}

type PaymentRepo interface {
	ListAllWithTreatment(ctx context.Context) ([]domain.Payment, error)
}

type Service struct {
	treatmentRepo TreatmentRepo
	paymentRepo   PaymentRepo
}

func New(treatmentRepo TreatmentRepo, paymentRepo PaymentRepo) *Service {
	return &Service{
		treatmentRepo: treatmentRepo,
		paymentRepo:   paymentRepo,
	}
}

// Overview assembles the combined reporting view: every treatment and every
// payment with its parent treatment summary, fetched concurrently.
func (s *Service) Overview(ctx context.Context) ([]domain.Treatment, []domain.Payment, error) {
	var (
		treatments []domain.Treatment
		payments   []domain.Payment
	)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		treatments, err = s.treatmentRepo.ListAll(ctx)
		return err
	})
	g.Go(func() error {
		var err error
		payments, err = s.paymentRepo.ListAllWithTreatment(ctx)
		return err
	})
	if err := g.Wait(); err != nil {
		zap.L().Error("can't build report overview: ", zap.Error(err))
		return nil, nil, err
	}
	return treatments, payments, nil
}
