package domain

import "github.com/shopspring/decimal"

// BankAccount is the single shared balance that settlements mutate.
type BankAccount struct {
	BankAccountID string          `json:"bankAccountID"`
	OwnerID       string          `json:"ownerID"`
	Name          string          `json:"name"`
	AccountNumber *string         `json:"accountNumber,omitempty"`
	Balance       decimal.Decimal `json:"balance"` // opening balance plus settled deltas
	AuditFields
}

// Counterparty is a source of income (Kind INCOME) or an expense category (Kind EXPENSE).
type Counterparty struct {
	CounterpartyID string          `json:"counterpartyID"`
	OwnerID        string          `json:"ownerID"`
	Kind           TransactionKind `json:"kind"`
	Name           string          `json:"name"`
	Description    *string         `json:"description,omitempty"`
	AuditFields
}
