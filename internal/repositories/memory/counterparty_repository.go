package memory

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/SscSPs/money_tracker/internal/apperrors"
	"github.com/SscSPs/money_tracker/internal/core/domain"
)

func cloneCounterparty(c domain.Counterparty) domain.Counterparty {
	c.Description = cloneString(c.Description)
	return c
}

// nameTaken mirrors the partial unique index on (owner_id, kind, lower(name)) for live rows.
func (s *Store) nameTaken(c domain.Counterparty) bool {
	for id, rec := range s.counterparties {
		if id == c.CounterpartyID || rec.deletedAt != nil {
			continue
		}
		other := rec.counterparty
		if other.OwnerID == c.OwnerID && other.Kind == c.Kind && strings.EqualFold(other.Name, c.Name) {
			return true
		}
	}
	return false
}

func (s *Store) SaveCounterparty(ctx context.Context, counterparty domain.Counterparty) error {
	defer s.lock(ctx)()

	if _, exists := s.counterparties[counterparty.CounterpartyID]; exists || s.nameTaken(counterparty) {
		return fmt.Errorf("%w: %q already exists", apperrors.ErrDuplicate, counterparty.Name)
	}
	s.counterparties[counterparty.CounterpartyID] = counterpartyRecord{counterparty: cloneCounterparty(counterparty)}
	return nil
}

func (s *Store) FindCounterpartyByID(ctx context.Context, counterpartyID string) (*domain.Counterparty, error) {
	defer s.rlock(ctx)()

	rec, ok := s.counterparties[counterpartyID]
	if !ok || rec.deletedAt != nil {
		return nil, apperrors.ErrNotFound
	}
	cp := cloneCounterparty(rec.counterparty)
	return &cp, nil
}

func (s *Store) FindCounterpartiesByIDs(ctx context.Context, counterpartyIDs []string) (map[string]domain.Counterparty, error) {
	defer s.rlock(ctx)()

	result := make(map[string]domain.Counterparty, len(counterpartyIDs))
	for _, id := range counterpartyIDs {
		if rec, ok := s.counterparties[id]; ok && rec.deletedAt == nil {
			result[id] = cloneCounterparty(rec.counterparty)
		}
	}
	return result, nil
}

func (s *Store) ListCounterparties(ctx context.Context, ownerID string, kind domain.TransactionKind) ([]domain.Counterparty, error) {
	defer s.rlock(ctx)()

	result := make([]domain.Counterparty, 0)
	for _, rec := range s.counterparties {
		if rec.deletedAt == nil && rec.counterparty.OwnerID == ownerID && rec.counterparty.Kind == kind {
			result = append(result, cloneCounterparty(rec.counterparty))
		}
	}
	sort.Slice(result, func(i, j int) bool {
		return strings.ToLower(result[i].Name) < strings.ToLower(result[j].Name)
	})
	return result, nil
}

func (s *Store) UpdateCounterparty(ctx context.Context, counterparty domain.Counterparty) error {
	defer s.lock(ctx)()

	rec, ok := s.counterparties[counterparty.CounterpartyID]
	if !ok || rec.deletedAt != nil {
		return apperrors.ErrNotFound
	}
	if s.nameTaken(counterparty) {
		return fmt.Errorf("%w: %q already exists", apperrors.ErrDuplicate, counterparty.Name)
	}
	rec.counterparty.Name = counterparty.Name
	rec.counterparty.Description = cloneString(counterparty.Description)
	rec.counterparty.LastUpdatedAt = counterparty.LastUpdatedAt
	rec.counterparty.LastUpdatedBy = counterparty.LastUpdatedBy
	s.counterparties[counterparty.CounterpartyID] = rec
	return nil
}

func (s *Store) DeleteCounterparty(ctx context.Context, counterpartyID string, userID string, now time.Time) error {
	defer s.lock(ctx)()

	rec, ok := s.counterparties[counterpartyID]
	if !ok || rec.deletedAt != nil {
		return apperrors.ErrNotFound
	}
	rec.deletedAt = &now
	rec.counterparty.LastUpdatedAt = now
	rec.counterparty.LastUpdatedBy = userID
	s.counterparties[counterpartyID] = rec
	return nil
}
