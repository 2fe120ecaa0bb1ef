package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/money_tracker/internal/core/domain"
	"github.com/SscSPs/money_tracker/internal/dto"
)

// settle runs the pending -> settled transition and applies the balance delta.
// It must run inside a unit of work so both writes commit together.
func (s *TransactionService) settle(ctx context.Context, txn *domain.Transaction, at time.Time, userID string) error {
	delta, changed := txn.Settle(at)
	if !changed {
		return nil
	}

	now := s.now()
	txn.LastUpdatedAt = now
	txn.LastUpdatedBy = userID

	if err := s.txnRepo.SaveTransaction(ctx, *txn); err != nil {
		return fmt.Errorf("failed to persist settlement of %s: %w", txn.TransactionID, err)
	}
	if err := s.accountRepo.MutateBalance(ctx, txn.BankAccountID, delta, userID, now); err != nil {
		return fmt.Errorf("failed to apply settlement of %s to bank account %s: %w", txn.TransactionID, txn.BankAccountID, err)
	}
	return nil
}

// SettleTransaction marks an income received or an expense paid.
func (s *TransactionService) SettleTransaction(ctx context.Context, ownerID string, kind domain.TransactionKind, transactionID string, req dto.SettleTransactionRequest) (*domain.Transaction, error) {
	at, err := s.settlementTime(req.SettlementDate)
	if err != nil {
		return nil, err
	}

	var settled *domain.Transaction
	err = s.txManager.RunInTx(ctx, func(ctx context.Context) error {
		txn, err := s.findOwnedTransaction(ctx, ownerID, kind, transactionID, true)
		if err != nil {
			return err
		}
		if txn.Settled {
			s.LogDebug(ctx, "Transaction already settled", slog.String("transaction_id", transactionID))
			settled = txn
			return nil
		}
		if err := s.settle(ctx, txn, at, ownerID); err != nil {
			return err
		}
		settled = txn
		return nil
	})
	if err != nil {
		s.LogFailure(ctx, err, "Failed to settle transaction",
			slog.String("transaction_id", transactionID),
			slog.String("kind", string(kind)))
		return nil, err
	}

	s.LogInfo(ctx, "Transaction settled",
		slog.String("transaction_id", settled.TransactionID),
		slog.String("bank_account_id", settled.BankAccountID))
	return settled, nil
}
