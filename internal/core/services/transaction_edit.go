package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/SscSPs/money_tracker/internal/apperrors"
	"github.com/SscSPs/money_tracker/internal/core/domain"
	"github.com/SscSPs/money_tracker/internal/dto"
	"github.com/shopspring/decimal"
)

// mutableTarget loads the transaction being edited or deleted and rejects settled ones.
func (s *TransactionService) mutableTarget(ctx context.Context, ownerID string, kind domain.TransactionKind, transactionID string) (*domain.Transaction, error) {
	target, err := s.findOwnedTransaction(ctx, ownerID, kind, transactionID, true)
	if err != nil {
		return nil, err
	}
	if !target.CanMutate() {
		return nil, fmt.Errorf("%w: %s %s is already settled", apperrors.ErrImmutable, strings.ToLower(kind.Label()), transactionID)
	}
	return target, nil
}

// withFutureMembers returns the target followed by the later pending members of its group.
// Members are locked before they are inspected, so one settled concurrently is seen as settled
// and left out without error.
func (s *TransactionService) withFutureMembers(ctx context.Context, target *domain.Transaction, applyToFuture bool) ([]*domain.Transaction, error) {
	members := []*domain.Transaction{target}
	if !applyToFuture || target.GroupID() == "" {
		return members, nil
	}

	future, err := s.txnRepo.FindTransactionsByGroupFromForUpdate(ctx, target.GroupID(), target.EffectiveDate)
	if err != nil {
		return nil, fmt.Errorf("failed to load recurrence group %s: %w", target.GroupID(), err)
	}
	for i := range future {
		m := &future[i]
		if m.TransactionID == target.TransactionID || m.OwnerID != target.OwnerID || !m.CanMutate() {
			continue
		}
		members = append(members, m)
	}
	return members, nil
}

// UpdateTransaction edits a pending transaction. With ApplyToFuture the amount, account,
// counterparty and remarks also go to later pending members; a new date applies to the target only.
func (s *TransactionService) UpdateTransaction(ctx context.Context, ownerID string, kind domain.TransactionKind, transactionID string, req dto.UpdateTransactionRequest) (*domain.Transaction, error) {
	var (
		newDate  *time.Time
		amount   *decimal.Decimal
		settleAt time.Time
	)
	if req.EffectiveDate != nil {
		d, err := domain.ParseDate(*req.EffectiveDate)
		if err != nil {
			return nil, err
		}
		newDate = &d
	}
	if req.Amount != nil {
		if err := domain.ValidateAmount(*req.Amount); err != nil {
			return nil, err
		}
		rounded := req.Amount.Round(2)
		amount = &rounded
	}
	if req.Settle {
		var err error
		if settleAt, err = s.settlementTime(req.SettlementDate); err != nil {
			return nil, err
		}
	}

	var updated *domain.Transaction
	var touched int
	err := s.txManager.RunInTx(ctx, func(ctx context.Context) error {
		target, err := s.mutableTarget(ctx, ownerID, kind, transactionID)
		if err != nil {
			return err
		}

		var accountID string
		if req.BankAccountID != nil {
			accountID = strings.TrimSpace(*req.BankAccountID)
			if err := s.checkAccount(ctx, ownerID, accountID); err != nil {
				return err
			}
		}
		var counterpartyID *string
		if req.CounterpartyID != nil {
			if counterpartyID, err = s.resolveCounterparty(ctx, ownerID, kind, req.CounterpartyID); err != nil {
				return err
			}
		}

		members, err := s.withFutureMembers(ctx, target, req.ApplyToFuture)
		if err != nil {
			return err
		}

		now := s.now()
		for _, m := range members {
			if amount != nil {
				m.Amount = *amount
			}
			if req.BankAccountID != nil {
				m.BankAccountID = accountID
			}
			if req.CounterpartyID != nil {
				m.CounterpartyID = copyString(counterpartyID)
			}
			if req.Remarks != nil {
				m.Remarks = normalizeRemarks(req.Remarks)
			}
			if m == target && newDate != nil {
				m.EffectiveDate = *newDate
			}
			m.LastUpdatedAt = now
			m.LastUpdatedBy = ownerID

			if err := s.txnRepo.SaveTransaction(ctx, *m); err != nil {
				return fmt.Errorf("failed to update transaction %s: %w", m.TransactionID, err)
			}
			if req.Settle {
				if err := s.settle(ctx, m, settleAt, ownerID); err != nil {
					return err
				}
			}
		}
		updated = target
		touched = len(members)
		return nil
	})
	if err != nil {
		s.LogFailure(ctx, err, "Failed to update transaction",
			slog.String("transaction_id", transactionID),
			slog.String("kind", string(kind)))
		return nil, err
	}

	s.LogInfo(ctx, "Transaction updated",
		slog.String("transaction_id", transactionID),
		slog.Int("members_updated", touched))
	return updated, nil
}

// DeleteTransaction soft-deletes a pending transaction and, with applyToFuture,
// the later pending members of its group.
func (s *TransactionService) DeleteTransaction(ctx context.Context, ownerID string, kind domain.TransactionKind, transactionID string, applyToFuture bool) error {
	var deleted int
	err := s.txManager.RunInTx(ctx, func(ctx context.Context) error {
		target, err := s.mutableTarget(ctx, ownerID, kind, transactionID)
		if err != nil {
			return err
		}
		members, err := s.withFutureMembers(ctx, target, applyToFuture)
		if err != nil {
			return err
		}

		now := s.now()
		for _, m := range members {
			if err := s.txnRepo.DeleteTransaction(ctx, m.TransactionID, ownerID, now); err != nil {
				return fmt.Errorf("failed to delete transaction %s: %w", m.TransactionID, err)
			}
		}
		deleted = len(members)
		return nil
	})
	if err != nil {
		s.LogFailure(ctx, err, "Failed to delete transaction",
			slog.String("transaction_id", transactionID),
			slog.String("kind", string(kind)))
		return err
	}

	s.LogInfo(ctx, "Transaction deleted",
		slog.String("transaction_id", transactionID),
		slog.Int("members_deleted", deleted))
	return nil
}

func copyString(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}
