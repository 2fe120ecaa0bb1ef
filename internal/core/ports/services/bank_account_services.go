package services

import (
	"context"

	"github.com/SscSPs/money_tracker/internal/core/domain"
	"github.com/SscSPs/money_tracker/internal/dto"
)

// BankAccountReaderSvc defines read operations for bank accounts
type BankAccountReaderSvc interface {
	GetBankAccount(ctx context.Context, ownerID string, bankAccountID string) (*domain.BankAccount, error)
	ListBankAccounts(ctx context.Context, ownerID string, params dto.ListBankAccountsParams) ([]domain.BankAccount, error)
}

// BankAccountWriterSvc defines write operations for bank accounts
type BankAccountWriterSvc interface {
	CreateBankAccount(ctx context.Context, ownerID string, req dto.CreateBankAccountRequest) (*domain.BankAccount, error)
	UpdateBankAccount(ctx context.Context, ownerID string, bankAccountID string, req dto.UpdateBankAccountRequest) (*domain.BankAccount, error)
	DeleteBankAccount(ctx context.Context, ownerID string, bankAccountID string) error
}

// BankAccountSvcFacade combines all bank account service interfaces
type BankAccountSvcFacade interface {
	BankAccountReaderSvc
	BankAccountWriterSvc
}
