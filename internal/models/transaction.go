package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction is a row of the transactions table. Incomes and expenses share it, split by Kind.
// The recurrence columns are either all NULL or all set.
type Transaction struct {
	TransactionID    string          `db:"transaction_id"`
	OwnerID          string          `db:"owner_id"`
	Kind             string          `db:"kind"`
	CounterpartyID   *string         `db:"counterparty_id"`
	BankAccountID    string          `db:"bank_account_id"`
	Amount           decimal.Decimal `db:"amount"`
	EffectiveDate    time.Time       `db:"effective_date"`
	IsSettled        bool            `db:"is_settled"`
	SettlementDate   *time.Time      `db:"settlement_date"`
	RecurrenceType   *string         `db:"recurrence_type"`
	RecurrenceDay    *int            `db:"recurrence_day"`
	RecurUntil       *time.Time      `db:"recur_until"`
	RecurringGroupID *string         `db:"recurring_group_id"`
	Remarks          *string         `db:"remarks"`
	AuditFields
	DeletedAt *time.Time `db:"deleted_at"`
}
