package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/money_tracker/internal/core/domain"
	"github.com/shopspring/decimal"
)

// BankAccountReader defines read operations for bank accounts.
type BankAccountReader interface {
	// FindBankAccountByID retrieves a live bank account.
	FindBankAccountByID(ctx context.Context, bankAccountID string) (*domain.BankAccount, error)

	// FindBankAccountsByIDs retrieves multiple live bank accounts keyed by ID. Missing IDs are omitted.
	FindBankAccountsByIDs(ctx context.Context, bankAccountIDs []string) (map[string]domain.BankAccount, error)

	// ListBankAccounts retrieves a page of the owner's bank accounts ordered by name.
	ListBankAccounts(ctx context.Context, ownerID string, limit int, offset int) ([]domain.BankAccount, error)
}

// BankAccountWriter defines write operations for bank accounts.
type BankAccountWriter interface {
	// SaveBankAccount persists a new bank account, including its opening balance.
	SaveBankAccount(ctx context.Context, account domain.BankAccount) error

	// UpdateBankAccount updates descriptive fields. The balance column is never written here.
	UpdateBankAccount(ctx context.Context, account domain.BankAccount) error

	// DeleteBankAccount soft-deletes a bank account.
	DeleteBankAccount(ctx context.Context, bankAccountID string, userID string, now time.Time) error
}

// BankAccountBalanceMutator is the only path that changes a stored balance.
type BankAccountBalanceMutator interface {
	// MutateBalance adds delta to the account balance in a single statement.
	MutateBalance(ctx context.Context, bankAccountID string, delta decimal.Decimal, userID string, now time.Time) error
}

// BankAccountRepositoryFacade combines all bank account repository interfaces.
type BankAccountRepositoryFacade interface {
	BankAccountReader
	BankAccountWriter
	BankAccountBalanceMutator
}
