package models

import "time"

// Counterparty is a row of the counterparties table (sources of income and expense categories).
type Counterparty struct {
	CounterpartyID string  `db:"counterparty_id"`
	OwnerID        string  `db:"owner_id"`
	Kind           string  `db:"kind"`
	Name           string  `db:"name"`
	Description    *string `db:"description"`
	AuditFields
	DeletedAt *time.Time `db:"deleted_at"`
}
