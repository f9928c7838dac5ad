package domain

import "time"

type User struct {
	ID           int    `db:"id" json:"id"`
	Name         string `db:"name" json:"name"`
	Username     string `db:"username" json:"username"`
	PasswordHash string `db:"password_hash" json:"-"`
}

type Patient struct {
	ID              int         `db:"id" json:"id"`
	Name            string      `db:"name" json:"name"`
	LastName        string      `db:"last_name" json:"last_name"`
	Age             *int        `db:"age" json:"age,omitempty"`
	CaseDescription *string     `db:"case_description" json:"case_description,omitempty"`
	Date            time.Time   `db:"date" json:"date"`
	Treatments      []Treatment `json:"treatments"`
}

type Treatment struct {
	ID          int        `db:"id" json:"id"`
	Name        string     `db:"name" json:"name"`
	Description *string    `db:"description" json:"description,omitempty"`
	Date        *time.Time `db:"date" json:"date,omitempty"`
	Price       float64    `db:"price" json:"price"`
	PatientID   int        `db:"patient_id" json:"patient_id"`
	Payments    []Payment  `json:"payments"`
	// Remaining is price minus the sum of payments. It is filled on read
	// paths that carry payments and may be negative when the treatment is
	// overpaid.
	Remaining float64 `json:"remaining"`
}

type Payment struct {
	ID          int       `db:"id" json:"id"`
	Paid        float64   `db:"paid" json:"paid"`
	Date        time.Time `db:"date" json:"date"`
	Act         *string   `db:"act" json:"act,omitempty"`
	TreatmentID int       `db:"treatment_id" json:"treatment_id"`
	// Treatment is the parent summary attached by the reporting reads.
	Treatment *TreatmentSummary `json:"treatment,omitempty"`
}

type TreatmentSummary struct {
	ID          int        `json:"id"`
	Name        string     `json:"name"`
	Description *string    `json:"description,omitempty"`
	Date        *time.Time `json:"date,omitempty"`
	Price       float64    `json:"price"`
}
