package patientrepo

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

func (r *Repository) Create(ctx context.Context, patient *domain.Patient) (*domain.Patient, error) {
	if patient.Date.IsZero() {
		patient.Date = time.Now()
	}
	query := `
        INSERT INTO patients (name, last_name, age, case_description, date)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING id
    `
	err := r.db.QueryRow(ctx, query,
		patient.Name, patient.LastName, patient.Age, patient.CaseDescription, patient.Date).
		Scan(&patient.ID)
	if err != nil {
		zap.L().Error("can't save patient", zap.Error(err))
		return nil, pg.ClassifyError(err)
	}
	return patient, nil
}

func (r *Repository) Update(ctx context.Context, id int, patient *domain.Patient) error {
	query := `
        UPDATE patients
        SET name = $1, last_name = $2, age = $3, case_description = $4, date = $5
        WHERE id = $6
    `
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		_, err := r.db.Exec(ctx, query,
			patient.Name, patient.LastName, patient.Age, patient.CaseDescription, patient.Date, id)
		if err != nil {
			zap.L().Error("can't update patient", zap.Error(err))
			return pg.ClassifyError(err)
		}
		return nil
	})
	if err != nil {
		return err
	}
	return nil
}

// Delete removes the patient row; treatments and their payments go with it
// through the ON DELETE CASCADE chain, not through application loops.
func (r *Repository) Delete(ctx context.Context, id int) error {
	_, err := r.db.Exec(ctx, "DELETE FROM patients WHERE id = $1", id)
	if err != nil {
		zap.L().Error("can't delete patient", zap.Error(err))
		return err
	}
	return nil
}

// ListWithTreatments builds the whole patient tree in one query: treatments
// are folded per patient by json_agg over the LEFT JOIN, and each treatment
// carries its payments from a correlated aggregate. The join emits one
// placeholder treatment for a patient without any; the decode step drops it.
func (r *Repository) ListWithTreatments(ctx context.Context) ([]domain.Patient, error) {
	query := `
        SELECT p.id, p.name, p.last_name, p.age, p.case_description, p.date,
               json_agg(
                   json_build_object(
                       'id', t.id,
                       'name', t.name,
                       'description', t.description,
                       'date', t.date,
                       'price', t.price,
                       'patient_id', t.patient_id,
                       'payments', (
                           SELECT COALESCE(json_agg(
                               json_build_object(
                                   'id', pm.id,
                                   'paid', pm.paid,
                                   'date', pm.date,
                                   'act', pm.act,
                                   'treatment_id', pm.treatment_id
                               )
                           ), '[]'::json)
                           FROM payments pm
                           WHERE pm.treatment_id = t.id
                       )
                   )
               ) AS treatments
        FROM patients p
        LEFT JOIN treatments t ON t.patient_id = p.id
        GROUP BY p.id
        ORDER BY p.id
    `
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		zap.L().Error("can't get patients", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var patients []domain.Patient
	for rows.Next() {
		var patient domain.Patient
		var rawTreatments []byte
		err := rows.Scan(&patient.ID, &patient.Name, &patient.LastName,
			&patient.Age, &patient.CaseDescription, &patient.Date, &rawTreatments)
		if err != nil {
			zap.L().Error("can't scan patient row", zap.Error(err))
			return nil, err
		}
		patient.Treatments, err = treatmentsFromJSON(rawTreatments)
		if err != nil {
			zap.L().Error("can't decode patient treatments", zap.Error(err))
			return nil, err
		}
		patients = append(patients, patient)
	}
	return patients, nil
}

// treatmentsFromJSON converts the aggregated array into tagged records,
// suppressing the synthetic null entry for childless patients and
// normalizing missing payment lists to empty slices.
func treatmentsFromJSON(raw []byte) ([]domain.Treatment, error) {
	var decoded []domain.Treatment
	if err := json.Unmarshal(raw, &decoded); err != nil {
		return nil, err
	}
	treatments := make([]domain.Treatment, 0, len(decoded))
	for _, treatment := range decoded {
		if treatment.ID == 0 {
			continue
		}
		if treatment.Payments == nil {
			treatment.Payments = []domain.Payment{}
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
