package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/money_tracker/internal/core/domain"
)

// TransactionReader defines read operations for incomes and expenses.
// Soft-deleted transactions are never returned.
type TransactionReader interface {
	// FindTransactionByID retrieves a transaction by its unique identifier.
	FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error)

	// FindTransactionsByOwnerAndDateRange returns the owner's transactions of one kind whose
	// display date (settlement date, else effective date) falls in [start, end], ordered by it.
	FindTransactionsByOwnerAndDateRange(ctx context.Context, ownerID string, kind domain.TransactionKind, start, end time.Time) ([]domain.Transaction, error)

	// ListTransactions retrieves a page of the owner's transactions, newest effective date first.
	ListTransactions(ctx context.Context, ownerID string, filter domain.TransactionFilter, limit int, nextToken *string) ([]domain.Transaction, *string, error)

	// CountTransactionsByCounterparty counts live transactions referencing a source or category.
	CountTransactionsByCounterparty(ctx context.Context, counterpartyID string) (int, error)
}

// TransactionWriter defines write operations for incomes and expenses.
type TransactionWriter interface {
	// SaveTransaction inserts the transaction or overwrites the stored row with the same ID.
	// A settled row is never overwritten; that attempt fails with ErrImmutable.
	SaveTransaction(ctx context.Context, txn domain.Transaction) error

	// DeleteTransaction soft-deletes a pending transaction. Settled rows are reported as not found.
	DeleteTransaction(ctx context.Context, transactionID string, userID string, now time.Time) error
}

// TransactionLocker supports the settlement read-modify-write.
type TransactionLocker interface {
	// FindTransactionByIDForUpdate reads a transaction and locks it until the surrounding unit of work ends.
	FindTransactionByIDForUpdate(ctx context.Context, transactionID string) (*domain.Transaction, error)

	// FindTransactionsByGroupFromForUpdate returns members of a recurrence group with effective_date >= from,
	// ordered by effective date, and locks them like FindTransactionByIDForUpdate.
	FindTransactionsByGroupFromForUpdate(ctx context.Context, groupID string, from time.Time) ([]domain.Transaction, error)
}

// TransactionRepositoryFacade combines all transaction repository interfaces.
type TransactionRepositoryFacade interface {
	TransactionReader
	TransactionWriter
	TransactionLocker
}
