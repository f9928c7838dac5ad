package paymentrepo

import (
	"context"
	"encoding/json"
	"time"

	"github.com/smdental/dentismo/internal/domain"
	"github.com/smdental/dentismo/internal/pg"
	"go.uber.org/zap"
)

type Repository struct {
	db        pg.Database
	txManager pg.TXManager
}

func New(db pg.Database, txManager pg.TXManager) *Repository {
	return &Repository{
		db:        db,
		txManager: txManager,
	}
}

// Create inserts a payment against an existing treatment. A missing treatment
// surfaces as pg.ErrForeignKeyViolation and no row is written.
func (r *Repository) Create(ctx context.Context, payment *domain.Payment) (*domain.Payment, error) {
	if payment.Date.IsZero() {
		payment.Date = time.Now()
	}
	query := `
        INSERT INTO payments (paid, date, act, treatment_id)
        VALUES ($1, $2, $3, $4)
        RETURNING id
    `
	err := r.db.QueryRow(ctx, query,
		payment.Paid, payment.Date, payment.Act, payment.TreatmentID).
		Scan(&payment.ID)
	if err != nil {
		zap.L().Error("can't save payment", zap.Error(err))
		return nil, pg.ClassifyError(err)
	}
	return payment, nil
}

func (r *Repository) Update(ctx context.Context, id int, payment *domain.Payment) error {
	query := `
        UPDATE payments
        SET paid = $1, date = $2, act = $3
        WHERE id = $4
    `
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		_, err := r.db.Exec(ctx, query, payment.Paid, payment.Date, payment.Act, id)
		if err != nil {
			zap.L().Error("can't update payment", zap.Error(err))
			return pg.ClassifyError(err)
		}
		return nil
	})
	if err != nil {
		return err
	}
	return nil
}

func (r *Repository) Delete(ctx context.Context, id int) error {
	_, err := r.db.Exec(ctx, "DELETE FROM payments WHERE id = $1", id)
	if err != nil {
		zap.L().Error("can't delete payment", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) ListForTreatment(ctx context.Context, treatmentID int) ([]domain.Payment, error) {
	query := `
        SELECT id, paid, date, act, treatment_id
        FROM payments
        WHERE treatment_id = $1
        ORDER BY id
    `
	rows, err := r.db.Query(ctx, query, treatmentID)
	if err != nil {
		zap.L().Error("can't get treatment payments", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	payments := make([]domain.Payment, 0)
	for rows.Next() {
		var payment domain.Payment
		err := rows.Scan(&payment.ID, &payment.Paid, &payment.Date, &payment.Act, &payment.TreatmentID)
		if err != nil {
			zap.L().Error("can't scan payment row", zap.Error(err))
			return nil, err
		}
		payments = append(payments, payment)
	}
	return payments, nil
}

// ListAllWithTreatment is the reporting read: every payment joined with a
// summary of its parent treatment.
func (r *Repository) ListAllWithTreatment(ctx context.Context) ([]domain.Payment, error) {
	query := `
        SELECT pm.id, pm.paid, pm.date, pm.act, pm.treatment_id,
               json_build_object(
                   'id', t.id,
                   'name', t.name,
                   'description', t.description,
                   'date', t.date,
                   'price', t.price
               ) AS treatment
        FROM payments pm
        LEFT JOIN treatments t ON pm.treatment_id = t.id
        ORDER BY pm.id
    `
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		zap.L().Error("can't get payments", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	payments := make([]domain.Payment, 0)
	for rows.Next() {
		var payment domain.Payment
		var rawTreatment []byte
		err := rows.Scan(&payment.ID, &payment.Paid, &payment.Date, &payment.Act,
			&payment.TreatmentID, &rawTreatment)
		if err != nil {
			zap.L().Error("can't scan payment row", zap.Error(err))
			return nil, err
		}
		var summary domain.TreatmentSummary
		if err := json.Unmarshal(rawTreatment, &summary); err != nil {
			zap.L().Error("can't decode payment treatment", zap.Error(err))
			return nil, err
		}
		if summary.ID != 0 {
			payment.Treatment = &summary
		}
		payments = append(payments, payment)
	}
	return payments, nil
}
