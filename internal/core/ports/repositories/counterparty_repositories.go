package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/money_tracker/internal/core/domain"
)

// CounterpartyReader defines read operations for sources of income and expense categories.
type CounterpartyReader interface {
	FindCounterpartyByID(ctx context.Context, counterpartyID string) (*domain.Counterparty, error)
	FindCounterpartiesByIDs(ctx context.Context, counterpartyIDs []string) (map[string]domain.Counterparty, error)
	// ListCounterparties returns the owner's counterparties of one kind ordered by name.
	ListCounterparties(ctx context.Context, ownerID string, kind domain.TransactionKind) ([]domain.Counterparty, error)
}

// CounterpartyWriter defines write operations. Names are unique per owner and kind.
type CounterpartyWriter interface {
	SaveCounterparty(ctx context.Context, counterparty domain.Counterparty) error
	UpdateCounterparty(ctx context.Context, counterparty domain.Counterparty) error
	DeleteCounterparty(ctx context.Context, counterpartyID string, userID string, now time.Time) error
}

// CounterpartyRepositoryFacade combines all counterparty repository interfaces.
type CounterpartyRepositoryFacade interface {
	CounterpartyReader
	CounterpartyWriter
}
