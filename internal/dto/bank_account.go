package dto

import (
	"time"

	"github.com/SscSPs/money_tracker/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateBankAccountRequest defines the data needed to create a bank account.
type CreateBankAccountRequest struct {
	Name           string           `json:"name" binding:"required,max=100"`
	AccountNumber  *string          `json:"accountNumber" binding:"omitempty,max=50"`
	OpeningBalance *decimal.Decimal `json:"openingBalance"` // defaults to zero; later changes only come from settlements
}

// UpdateBankAccountRequest defines the descriptive fields that may change.
type UpdateBankAccountRequest struct {
	Name          *string `json:"name" binding:"omitempty,min=1,max=100"`
	AccountNumber *string `json:"accountNumber" binding:"omitempty,max=50"`
}

// ListBankAccountsParams defines query parameters for listing bank accounts.
type ListBankAccountsParams struct {
	Limit  int `form:"limit,default=20" binding:"min=1,max=100"`
	Offset int `form:"offset,default=0" binding:"min=0"`
}

// BankAccountResponse defines the data returned for a bank account.
type BankAccountResponse struct {
	BankAccountID string          `json:"bankAccountID"`
	Name          string          `json:"name"`
	AccountNumber *string         `json:"accountNumber,omitempty"`
	Balance       decimal.Decimal `json:"balance"`
	CreatedAt     time.Time       `json:"createdAt"`
	CreatedBy     string          `json:"createdBy"`
	LastUpdatedAt time.Time       `json:"lastUpdatedAt"`
	LastUpdatedBy string          `json:"lastUpdatedBy"`
}

// ToBankAccountResponse converts a domain.BankAccount to BankAccountResponse DTO
func ToBankAccountResponse(acc *domain.BankAccount) BankAccountResponse {
	return BankAccountResponse{
		BankAccountID: acc.BankAccountID,
		Name:          acc.Name,
		AccountNumber: acc.AccountNumber,
		Balance:       acc.Balance,
		CreatedAt:     acc.CreatedAt,
		CreatedBy:     acc.CreatedBy,
		LastUpdatedAt: acc.LastUpdatedAt,
		LastUpdatedBy: acc.LastUpdatedBy,
	}
}

// ToListBankAccountResponse converts a slice of domain.BankAccount.
func ToListBankAccountResponse(accounts []domain.BankAccount) []BankAccountResponse {
	res := make([]BankAccountResponse, len(accounts))
	for i := range accounts {
		res[i] = ToBankAccountResponse(&accounts[i])
	}
	return res
}
