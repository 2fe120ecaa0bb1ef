package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// BankAccount is a row of the bank_accounts table.
type BankAccount struct {
	BankAccountID string          `db:"bank_account_id"`
	OwnerID       string          `db:"owner_id"`
	Name          string          `db:"name"`
	AccountNumber *string         `db:"account_number"`
	Balance       decimal.Decimal `db:"balance"`
	AuditFields
	DeletedAt *time.Time `db:"deleted_at"`
}
