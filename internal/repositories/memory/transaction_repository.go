package memory

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/SscSPs/money_tracker/internal/apperrors"
	"github.com/SscSPs/money_tracker/internal/core/domain"
	"github.com/SscSPs/money_tracker/internal/utils/pagination"
)

func cloneTransaction(t domain.Transaction) domain.Transaction {
	t.CounterpartyID = cloneString(t.CounterpartyID)
	t.SettlementDate = cloneTime(t.SettlementDate)
	t.Remarks = cloneString(t.Remarks)
	if t.Recurrence != nil {
		r := *t.Recurrence
		t.Recurrence = &r
	}
	return t
}

func (s *Store) SaveTransaction(ctx context.Context, txn domain.Transaction) error {
	if txn.TransactionID == "" {
		return fmt.Errorf("%w: transaction ID is required", apperrors.ErrValidation)
	}
	defer s.lock(ctx)()

	if rec, ok := s.transactions[txn.TransactionID]; ok && rec.txn.Settled {
		return fmt.Errorf("%w: transaction %s is already settled", apperrors.ErrImmutable, txn.TransactionID)
	}
	s.transactions[txn.TransactionID] = transactionRecord{txn: cloneTransaction(txn)}
	return nil
}

func (s *Store) FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	defer s.rlock(ctx)()
	return s.findTransaction(transactionID)
}

// FindTransactionByIDForUpdate relies on the unit of work already holding the store lock.
func (s *Store) FindTransactionByIDForUpdate(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	defer s.lock(ctx)()
	return s.findTransaction(transactionID)
}

func (s *Store) findTransaction(transactionID string) (*domain.Transaction, error) {
	rec, ok := s.transactions[transactionID]
	if !ok || rec.deletedAt != nil {
		return nil, apperrors.ErrNotFound
	}
	txn := cloneTransaction(rec.txn)
	return &txn, nil
}

// FindTransactionsByGroupFromForUpdate relies on the unit of work already holding the store lock.
func (s *Store) FindTransactionsByGroupFromForUpdate(ctx context.Context, groupID string, from time.Time) ([]domain.Transaction, error) {
	defer s.lock(ctx)()

	result := s.collect(func(t *domain.Transaction) bool {
		return t.GroupID() == groupID && !t.EffectiveDate.Before(from)
	})
	sort.Slice(result, func(i, j int) bool {
		if !result[i].EffectiveDate.Equal(result[j].EffectiveDate) {
			return result[i].EffectiveDate.Before(result[j].EffectiveDate)
		}
		return result[i].TransactionID < result[j].TransactionID
	})
	return result, nil
}

func (s *Store) FindTransactionsByOwnerAndDateRange(ctx context.Context, ownerID string, kind domain.TransactionKind, start, end time.Time) ([]domain.Transaction, error) {
	defer s.rlock(ctx)()

	result := s.collect(func(t *domain.Transaction) bool {
		d := t.DisplayDate()
		return t.OwnerID == ownerID && t.Kind == kind && !d.Before(start) && !d.After(end)
	})
	sort.Slice(result, func(i, j int) bool {
		di, dj := result[i].DisplayDate(), result[j].DisplayDate()
		if !di.Equal(dj) {
			return di.Before(dj)
		}
		if !result[i].CreatedAt.Equal(result[j].CreatedAt) {
			return result[i].CreatedAt.Before(result[j].CreatedAt)
		}
		return result[i].TransactionID < result[j].TransactionID
	})
	return result, nil
}

func (s *Store) ListTransactions(ctx context.Context, ownerID string, filter domain.TransactionFilter, limit int, nextToken *string) ([]domain.Transaction, *string, error) {
	if limit <= 0 {
		limit = 20
	}
	var (
		hasCursor  bool
		cursorDate time.Time
		cursorID   string
	)
	if nextToken != nil && *nextToken != "" {
		var err error
		cursorDate, cursorID, err = pagination.DecodeToken(*nextToken)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: invalid nextToken", apperrors.ErrValidation)
		}
		hasCursor = true
	}

	defer s.rlock(ctx)()

	result := s.collect(func(t *domain.Transaction) bool {
		if t.OwnerID != ownerID || !matchesFilter(t, filter) {
			return false
		}
		return !hasCursor || pagination.After(t.EffectiveDate, t.TransactionID, cursorDate, cursorID)
	})
	sort.Slice(result, func(i, j int) bool {
		return pagination.After(result[j].EffectiveDate, result[j].TransactionID, result[i].EffectiveDate, result[i].TransactionID)
	})

	if len(result) <= limit {
		return result, nil, nil
	}
	last := result[limit-1]
	token := pagination.EncodeToken(last.EffectiveDate, last.TransactionID)
	return result[:limit], &token, nil
}

func (s *Store) CountTransactionsByCounterparty(ctx context.Context, counterpartyID string) (int, error) {
	defer s.rlock(ctx)()

	return len(s.collect(func(t *domain.Transaction) bool {
		return t.CounterpartyID != nil && *t.CounterpartyID == counterpartyID
	})), nil
}

func (s *Store) DeleteTransaction(ctx context.Context, transactionID string, userID string, now time.Time) error {
	defer s.lock(ctx)()

	rec, ok := s.transactions[transactionID]
	if !ok || rec.deletedAt != nil || rec.txn.Settled {
		return apperrors.NewNotFoundError("pending transaction " + transactionID)
	}
	rec.deletedAt = &now
	rec.txn.LastUpdatedAt = now
	rec.txn.LastUpdatedBy = userID
	s.transactions[transactionID] = rec
	return nil
}

// collect returns clones of live transactions matching keep. Callers hold the lock.
func (s *Store) collect(keep func(t *domain.Transaction) bool) []domain.Transaction {
	result := make([]domain.Transaction, 0)
	for _, rec := range s.transactions {
		if rec.deletedAt != nil || !keep(&rec.txn) {
			continue
		}
		result = append(result, cloneTransaction(rec.txn))
	}
	return result
}

func matchesFilter(t *domain.Transaction, f domain.TransactionFilter) bool {
	switch {
	case f.Kind != "" && t.Kind != f.Kind:
		return false
	case f.BankAccountID != nil && t.BankAccountID != *f.BankAccountID:
		return false
	case f.CounterpartyID != nil && (t.CounterpartyID == nil || *t.CounterpartyID != *f.CounterpartyID):
		return false
	case f.Settled != nil && t.Settled != *f.Settled:
		return false
	case f.From != nil && t.EffectiveDate.Before(*f.From):
		return false
	case f.To != nil && t.EffectiveDate.After(*f.To):
		return false
	case f.Recurring != nil && (t.GroupID() != "") != *f.Recurring:
		return false
	case f.Search != nil && (t.Remarks == nil || !strings.Contains(strings.ToLower(*t.Remarks), strings.ToLower(*f.Search))):
		return false
	}
	return true
}
