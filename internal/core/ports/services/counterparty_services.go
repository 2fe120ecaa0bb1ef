package services

import (
	"context"

	"github.com/SscSPs/money_tracker/internal/core/domain"
	"github.com/SscSPs/money_tracker/internal/dto"
)

// CounterpartySvcFacade manages sources of income (kind INCOME) and expense categories (kind EXPENSE).
type CounterpartySvcFacade interface {
	CreateCounterparty(ctx context.Context, ownerID string, kind domain.TransactionKind, req dto.CreateCounterpartyRequest) (*domain.Counterparty, error)
	GetCounterparty(ctx context.Context, ownerID string, kind domain.TransactionKind, counterpartyID string) (*domain.Counterparty, error)
	ListCounterparties(ctx context.Context, ownerID string, kind domain.TransactionKind) ([]domain.Counterparty, error)
	UpdateCounterparty(ctx context.Context, ownerID string, kind domain.TransactionKind, counterpartyID string, req dto.UpdateCounterpartyRequest) (*domain.Counterparty, error)
	// DeleteCounterparty fails with ErrConflict while transactions still reference it.
	DeleteCounterparty(ctx context.Context, ownerID string, kind domain.TransactionKind, counterpartyID string) error
}
