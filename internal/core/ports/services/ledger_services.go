package services

import (
	"context"

	"github.com/SscSPs/money_tracker/internal/core/domain"
	"github.com/SscSPs/money_tracker/internal/dto"
)

// LedgerSvc projects incomes and expenses into one date-ordered ledger.
type LedgerSvc interface {
	GetLedger(ctx context.Context, ownerID string, params dto.LedgerParams) (*domain.Ledger, error)
}
