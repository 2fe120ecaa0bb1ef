package dto

import (
	"time"

	"github.com/SscSPs/money_tracker/internal/core/domain"
	"github.com/shopspring/decimal"
)

// RecurrenceRequest describes a recurring series. Day is required for SPECIFIC_DAY.
type RecurrenceRequest struct {
	Type  domain.RecurrenceType `json:"type" binding:"required,oneof=START_OF_MONTH END_OF_MONTH SPECIFIC_DAY"`
	Day   *int                  `json:"day" binding:"omitempty,min=1,max=31"`
	Until string                `json:"until" binding:"required,datetime=2006-01-02"`
}

// CreateTransactionRequest creates an income or an expense, optionally as a recurring series.
type CreateTransactionRequest struct {
	BankAccountID  string             `json:"bankAccountID" binding:"required"`
	CounterpartyID *string            `json:"counterpartyID"` // source of income (required) or expense category (optional)
	Amount         *decimal.Decimal   `json:"amount" binding:"required"`
	EffectiveDate  string             `json:"effectiveDate" binding:"required,datetime=2006-01-02"`
	Remarks        *string            `json:"remarks" binding:"omitempty,max=500"`
	Recurrence     *RecurrenceRequest `json:"recurrence"`

	// Settle marks every generated record as received/paid on creation.
	Settle         bool    `json:"settle"`
	SettlementDate *string `json:"settlementDate" binding:"omitempty,datetime=2006-01-02"`
}

// UpdateTransactionRequest edits a pending transaction. Nil fields are left unchanged.
type UpdateTransactionRequest struct {
	BankAccountID  *string          `json:"bankAccountID"`
	CounterpartyID *string          `json:"counterpartyID"` // "" clears an expense category
	Amount         *decimal.Decimal `json:"amount"`
	EffectiveDate  *string          `json:"effectiveDate" binding:"omitempty,datetime=2006-01-02"`
	Remarks        *string          `json:"remarks" binding:"omitempty,max=500"`

	// ApplyToFuture cascades the edit to later pending members of the recurrence group.
	ApplyToFuture  bool    `json:"applyToFuture"`
	Settle         bool    `json:"settle"`
	SettlementDate *string `json:"settlementDate" binding:"omitempty,datetime=2006-01-02"`
}

// SettleTransactionRequest is the optional body of mark-as-received / mark-as-paid.
type SettleTransactionRequest struct {
	SettlementDate *string `json:"settlementDate" binding:"omitempty,datetime=2006-01-02"`
}

// ListTransactionsParams defines query parameters for listing incomes or expenses.
type ListTransactionsParams struct {
	Limit          int     `form:"limit,default=20" binding:"min=1,max=100"`
	NextToken      *string `form:"nextToken"`
	BankAccountID  *string `form:"bankAccountID"`
	CounterpartyID *string `form:"counterpartyID"`
	Settled        *bool   `form:"settled"`
	From           *string `form:"from" binding:"omitempty,datetime=2006-01-02"`
	To             *string `form:"to" binding:"omitempty,datetime=2006-01-02"`
	Search         *string `form:"search" binding:"omitempty,max=100"`
	Recurring      *bool   `form:"recurring"`
}

// RecurrenceResponse mirrors domain.Recurrence.
type RecurrenceResponse struct {
	Type    domain.RecurrenceType `json:"type"`
	Day     *int                  `json:"day,omitempty"`
	Until   string                `json:"until"`
	GroupID string                `json:"groupID"`
}

// TransactionResponse defines the data returned for an income or expense.
type TransactionResponse struct {
	TransactionID  string                 `json:"transactionID"`
	Kind           domain.TransactionKind `json:"kind"`
	BankAccountID  string                 `json:"bankAccountID"`
	CounterpartyID *string                `json:"counterpartyID,omitempty"`
	Amount         decimal.Decimal        `json:"amount"`
	EffectiveDate  string                 `json:"effectiveDate"`
	Settled        bool                   `json:"settled"`
	SettlementDate *string                `json:"settlementDate,omitempty"`
	Remarks        *string                `json:"remarks,omitempty"`
	Recurrence     *RecurrenceResponse    `json:"recurrence,omitempty"`
	CreatedAt      time.Time              `json:"createdAt"`
	CreatedBy      string                 `json:"createdBy"`
	LastUpdatedAt  time.Time              `json:"lastUpdatedAt"`
	LastUpdatedBy  string                 `json:"lastUpdatedBy"`
}

// CreateTransactionResponse returns the earliest generated record and how many were generated.
type CreateTransactionResponse struct {
	Transaction    TransactionResponse `json:"transaction"`
	GeneratedCount int                 `json:"generatedCount"`
}

// ListTransactionsResponse defines the paginated response for listing transactions.
type ListTransactionsResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
	NextToken    *string               `json:"nextToken,omitempty"`
}

// ToTransactionResponse converts a domain.Transaction to TransactionResponse DTO
func ToTransactionResponse(t *domain.Transaction) TransactionResponse {
	resp := TransactionResponse{
		TransactionID:  t.TransactionID,
		Kind:           t.Kind,
		BankAccountID:  t.BankAccountID,
		CounterpartyID: t.CounterpartyID,
		Amount:         t.Amount,
		EffectiveDate:  t.EffectiveDate.Format(domain.DateLayout),
		Settled:        t.Settled,
		Remarks:        t.Remarks,
		CreatedAt:      t.CreatedAt,
		CreatedBy:      t.CreatedBy,
		LastUpdatedAt:  t.LastUpdatedAt,
		LastUpdatedBy:  t.LastUpdatedBy,
	}
	if t.SettlementDate != nil {
		s := t.SettlementDate.Format(domain.DateLayout)
		resp.SettlementDate = &s
	}
	if t.Recurrence != nil {
		resp.Recurrence = &RecurrenceResponse{
			Type:    t.Recurrence.Type,
			Until:   t.Recurrence.Until.Format(domain.DateLayout),
			GroupID: t.Recurrence.GroupID,
		}
		if t.Recurrence.Type == domain.RecurrenceSpecificDay {
			day := t.Recurrence.Day
			resp.Recurrence.Day = &day
		}
	}
	return resp
}

// ToTransactionResponses converts a slice of domain.Transaction.
func ToTransactionResponses(txns []domain.Transaction) []TransactionResponse {
	res := make([]TransactionResponse, len(txns))
	for i := range txns {
		res[i] = ToTransactionResponse(&txns[i])
	}
	return res
}

// DeleteTransactionParams defines query parameters for deleting an income or expense.
type DeleteTransactionParams struct {
	ApplyToFuture bool `form:"applyToFuture"`
}
