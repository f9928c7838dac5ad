package treatmentrepo

import (
	"context"
	"encoding/json"

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

// Create inserts a treatment for an existing patient. A missing patient
// surfaces as pg.ErrForeignKeyViolation and no row is written.
func (r *Repository) Create(ctx context.Context, treatment *domain.Treatment) (*domain.Treatment, error) {
	query := `
        INSERT INTO treatments (name, description, date, price, patient_id)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING id
    `
	err := r.db.QueryRow(ctx, query,
		treatment.Name, treatment.Description, treatment.Date, treatment.Price, treatment.PatientID).
		Scan(&treatment.ID)
	if err != nil {
		zap.L().Error("can't save treatment", zap.Error(err))
		return nil, pg.ClassifyError(err)
	}
	return treatment, nil
}

func (r *Repository) Update(ctx context.Context, id int, treatment *domain.Treatment) error {
	query := `
        UPDATE treatments
        SET name = $1, description = $2, date = $3, price = $4
        WHERE id = $5
    `
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		_, err := r.db.Exec(ctx, query,
			treatment.Name, treatment.Description, treatment.Date, treatment.Price, id)
		if err != nil {
			zap.L().Error("can't update treatment", zap.Error(err))
			return pg.ClassifyError(err)
		}
		return nil
	})
	if err != nil {
		return err
	}
	return nil
}

// Delete removes the treatment; its payments follow through ON DELETE CASCADE.
func (r *Repository) Delete(ctx context.Context, id int) error {
	_, err := r.db.Exec(ctx, "DELETE FROM treatments WHERE id = $1", id)
	if err != nil {
		zap.L().Error("can't delete treatment", zap.Error(err))
		return err
	}
	return nil
}

// ListForPatient returns the patient's treatments with payments folded in by
// json_agg over the LEFT JOIN. The placeholder payment row the join emits for
// a treatment without any is dropped during decoding.
func (r *Repository) ListForPatient(ctx context.Context, patientID int) ([]domain.Treatment, error) {
	query := `
        SELECT t.id, t.name, t.description, t.date, t.price, t.patient_id,
               COALESCE(json_agg(
                   json_build_object(
                       'id', pm.id,
                       'paid', pm.paid,
                       'date', pm.date,
                       'act', pm.act,
                       'treatment_id', pm.treatment_id
                   )
               ), '[]'::json) AS payments
        FROM treatments t
        LEFT JOIN payments pm ON pm.treatment_id = t.id
        WHERE t.patient_id = $1
        GROUP BY t.id
        ORDER BY t.id
    `
	rows, err := r.db.Query(ctx, query, patientID)
	if err != nil {
		zap.L().Error("can't get patient treatments", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	treatments := make([]domain.Treatment, 0)
	for rows.Next() {
		var treatment domain.Treatment
		var rawPayments []byte
		err := rows.Scan(&treatment.ID, &treatment.Name, &treatment.Description,
			&treatment.Date, &treatment.Price, &treatment.PatientID, &rawPayments)
		if err != nil {
			zap.L().Error("can't scan treatment row", zap.Error(err))
			return nil, err
		}
		treatment.Payments, err = paymentsFromJSON(rawPayments)
		if err != nil {
			zap.L().Error("can't decode treatment payments", zap.Error(err))
			return nil, err
		}
		var paid float64
		for _, payment := range treatment.Payments {
			paid += payment.Paid
		}
		treatment.Remaining = treatment.Price - paid
		treatments = append(treatments, treatment)
	}
	return treatments, nil
}

// ListAll is the flat reporting read, independent of any single patient.
func (r *Repository) ListAll(ctx context.Context) ([]domain.Treatment, error) {
	query := `
        SELECT id, name, description, date, price, patient_id
        FROM treatments
        ORDER BY id
    `
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		zap.L().Error("can't get treatments", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	treatments := make([]domain.Treatment, 0)
	for rows.Next() {
		var treatment domain.Treatment
		err := rows.Scan(&treatment.ID, &treatment.Name, &treatment.Description,
			&treatment.Date, &treatment.Price, &treatment.PatientID)
		if err != nil {
			zap.L().Error("can't scan treatment row", zap.Error(err))
			return nil, err
		}
		treatment.Payments = []domain.Payment{}
		treatments = append(treatments, treatment)
	}
	return treatments, nil
}

// paymentsFromJSON converts the aggregated array into tagged records,
// suppressing the synthetic null entry for treatments with no payments.
func paymentsFromJSON(raw []byte) ([]domain.Payment, error) {
	var decoded []domain.Payment
	if err := json.Unmarshal(raw, &decoded); err != nil {
		return nil, err
	}
	payments := make([]domain.Payment, 0, len(decoded))
	for _, payment := range decoded {
		if payment.ID == 0 {
			continue
		}
		payments = append(payments, payment)
	}
	return payments, nil
}
