package services

import (
	"context"

	"github.com/SscSPs/money_tracker/internal/core/domain"
	"github.com/SscSPs/money_tracker/internal/dto"
)

// TransactionReaderSvc defines read operations for incomes and expenses.
type TransactionReaderSvc interface {
	// GetTransaction returns one of the owner's transactions of the given kind.
	GetTransaction(ctx context.Context, ownerID string, kind domain.TransactionKind, transactionID string) (*domain.Transaction, error)

	// ListTransactions returns a page of the owner's transactions of the given kind.
	ListTransactions(ctx context.Context, ownerID string, kind domain.TransactionKind, params dto.ListTransactionsParams) (*dto.ListTransactionsResponse, error)
}

// TransactionWriterSvc defines the lifecycle operations shared by incomes and expenses.
type TransactionWriterSvc interface {
	// CreateTransaction creates one record, or a whole recurring series, in a single unit of work.
	// The generated records are returned ordered by effective date.
	CreateTransaction(ctx context.Context, ownerID string, kind domain.TransactionKind, req dto.CreateTransactionRequest) ([]domain.Transaction, error)

	// UpdateTransaction edits a pending transaction and optionally its future pending group members.
	UpdateTransaction(ctx context.Context, ownerID string, kind domain.TransactionKind, transactionID string, req dto.UpdateTransactionRequest) (*domain.Transaction, error)

	// DeleteTransaction soft-deletes a pending transaction and optionally its future pending group members.
	DeleteTransaction(ctx context.Context, ownerID string, kind domain.TransactionKind, transactionID string, applyToFuture bool) error
}

// SettlementSvc drives the pending -> settled transition.
type SettlementSvc interface {
	// SettleTransaction marks a transaction received/paid and applies its balance delta once.
	// Settling an already settled transaction returns it unchanged.
	SettleTransaction(ctx context.Context, ownerID string, kind domain.TransactionKind, transactionID string, req dto.SettleTransactionRequest) (*domain.Transaction, error)
}

// TransactionSvcFacade combines all transaction-related service interfaces
type TransactionSvcFacade interface {
	TransactionReaderSvc
	TransactionWriterSvc
	SettlementSvc
}
