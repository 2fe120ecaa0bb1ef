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
)

// seriesPlan is a validated creation request: the template every member copies
// and the dates to stamp it with.
type seriesPlan struct {
	template domain.Transaction
	dates    []time.Time
	rule     *domain.RecurrenceRule
	until    time.Time
	settle   bool
	settleAt time.Time
}

func (s *TransactionService) planSeries(ownerID string, kind domain.TransactionKind, req dto.CreateTransactionRequest) (*seriesPlan, error) {
	if !kind.Valid() {
		return nil, fmt.Errorf("%w: unknown transaction kind %q", apperrors.ErrValidation, kind)
	}
	if req.Amount == nil {
		return nil, fmt.Errorf("%w: amount is required", apperrors.ErrValidation)
	}
	if err := domain.ValidateAmount(*req.Amount); err != nil {
		return nil, err
	}
	if strings.TrimSpace(req.BankAccountID) == "" {
		return nil, fmt.Errorf("%w: bankAccountID is required", apperrors.ErrValidation)
	}
	anchor, err := domain.ParseDate(req.EffectiveDate)
	if err != nil {
		return nil, err
	}

	plan := &seriesPlan{
		template: domain.Transaction{
			OwnerID:       ownerID,
			Kind:          kind,
			BankAccountID: strings.TrimSpace(req.BankAccountID),
			Amount:        req.Amount.Round(2),
			Remarks:       normalizeRemarks(req.Remarks),
		},
		dates:  []time.Time{anchor},
		settle: req.Settle,
	}

	if req.Recurrence != nil {
		rule := domain.RecurrenceRule{Type: req.Recurrence.Type}
		if req.Recurrence.Day != nil {
			rule.Day = *req.Recurrence.Day
		}
		until, err := domain.ParseDate(req.Recurrence.Until)
		if err != nil {
			return nil, err
		}
		dates, err := domain.ExpandSeries(anchor, until, rule)
		if err != nil {
			return nil, err
		}
		normalized := rule.Normalized()
		plan.rule = &normalized
		plan.until = until
		plan.dates = dates
	}

	if req.Settle {
		if plan.settleAt, err = s.settlementTime(req.SettlementDate); err != nil {
			return nil, err
		}
	}
	return plan, nil
}

// CreateTransaction creates a single income/expense or a whole recurring series.
// Either every member is written (and settled, when asked) or none is.
func (s *TransactionService) CreateTransaction(ctx context.Context, ownerID string, kind domain.TransactionKind, req dto.CreateTransactionRequest) ([]domain.Transaction, error) {
	plan, err := s.planSeries(ownerID, kind, req)
	if err != nil {
		s.LogDebug(ctx, "Rejected transaction request", slog.String("error", err.Error()))
		return nil, err
	}

	created := make([]domain.Transaction, 0, len(plan.dates))
	err = s.txManager.RunInTx(ctx, func(ctx context.Context) error {
		if err := s.checkAccount(ctx, ownerID, plan.template.BankAccountID); err != nil {
			return err
		}
		counterpartyID, err := s.resolveCounterparty(ctx, ownerID, kind, req.CounterpartyID)
		if err != nil {
			return err
		}

		var groupID string
		if plan.rule != nil {
			groupID = s.newID()
		}
		now := s.now()

		for _, date := range plan.dates {
			txn := plan.template
			txn.TransactionID = s.newID()
			txn.CounterpartyID = counterpartyID
			txn.EffectiveDate = date
			txn.AuditFields = domain.AuditFields{CreatedAt: now, CreatedBy: ownerID, LastUpdatedAt: now, LastUpdatedBy: ownerID}
			if plan.rule != nil {
				txn.Recurrence = &domain.Recurrence{RecurrenceRule: *plan.rule, Until: plan.until, GroupID: groupID}
			}

			if err := s.txnRepo.SaveTransaction(ctx, txn); err != nil {
				return fmt.Errorf("failed to save transaction for %s: %w", date.Format(domain.DateLayout), err)
			}
			if plan.settle {
				if err := s.settle(ctx, &txn, plan.settleAt, ownerID); err != nil {
					return err
				}
			}
			created = append(created, txn)
		}
		return nil
	})
	if err != nil {
		s.LogFailure(ctx, err, "Failed to create transaction",
			slog.String("owner_id", ownerID),
			slog.String("kind", string(kind)))
		return nil, err
	}

	s.LogInfo(ctx, "Transactions created",
		slog.String("kind", string(kind)),
		slog.String("first_transaction_id", created[0].TransactionID),
		slog.Int("count", len(created)),
		slog.Bool("settled", plan.settle))
	return created, nil
}
