package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/money_tracker/internal/apperrors"
	"github.com/SscSPs/money_tracker/internal/core/domain"
	portsrepo "github.com/SscSPs/money_tracker/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/money_tracker/internal/core/ports/services"
	"github.com/SscSPs/money_tracker/internal/dto"
)

// LedgerService reads incomes and expenses and hands them to domain.ProjectLedger.
type LedgerService struct {
	BaseService
	txnRepo          portsrepo.TransactionReader
	accountRepo      portsrepo.BankAccountReader
	counterpartyRepo portsrepo.CounterpartyReader
}

// NewLedgerService creates a new LedgerService.
func NewLedgerService(txnRepo portsrepo.TransactionReader, accountRepo portsrepo.BankAccountReader, counterpartyRepo portsrepo.CounterpartyReader, options ...ServiceOption) *LedgerService {
	return &LedgerService{
		BaseService:      newBaseService(options...),
		txnRepo:          txnRepo,
		accountRepo:      accountRepo,
		counterpartyRepo: counterpartyRepo,
	}
}

var _ portssvc.LedgerSvc = (*LedgerService)(nil)

// window resolves the inclusive ledger window. Missing bounds fall back to
// [end - window days, today].
func (s *LedgerService) window(params dto.LedgerParams) (time.Time, time.Time, error) {
	end := domain.DateOf(s.now())
	if params.EndDate != nil {
		d, err := domain.ParseDate(*params.EndDate)
		if err != nil {
			return time.Time{}, time.Time{}, err
		}
		end = d
	}
	start := end.AddDate(0, 0, -s.ledgerWindowDays)
	if params.StartDate != nil {
		d, err := domain.ParseDate(*params.StartDate)
		if err != nil {
			return time.Time{}, time.Time{}, err
		}
		start = d
	}
	if start.After(end) {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: startDate must not be after endDate", apperrors.ErrValidation)
	}
	return start, end, nil
}

func (s *LedgerService) GetLedger(ctx context.Context, ownerID string, params dto.LedgerParams) (*domain.Ledger, error) {
	start, end, err := s.window(params)
	if err != nil {
		return nil, err
	}

	incomes, err := s.txnRepo.FindTransactionsByOwnerAndDateRange(ctx, ownerID, domain.KindIncome, start, end)
	if err != nil {
		s.LogError(ctx, err, "Failed to load incomes for ledger", slog.String("owner_id", ownerID))
		return nil, err
	}
	expenses, err := s.txnRepo.FindTransactionsByOwnerAndDateRange(ctx, ownerID, domain.KindExpense, start, end)
	if err != nil {
		s.LogError(ctx, err, "Failed to load expenses for ledger", slog.String("owner_id", ownerID))
		return nil, err
	}

	accountIDs, counterpartyIDs := referencedIDs(incomes, expenses)
	accounts, err := s.accountRepo.FindBankAccountsByIDs(ctx, accountIDs)
	if err != nil {
		s.LogError(ctx, err, "Failed to load bank accounts for ledger")
		return nil, err
	}
	counterparties, err := s.counterpartyRepo.FindCounterpartiesByIDs(ctx, counterpartyIDs)
	if err != nil {
		s.LogError(ctx, err, "Failed to load counterparties for ledger")
		return nil, err
	}

	ledger := domain.ProjectLedger(start, end, incomes, expenses, accounts, counterparties)
	s.LogDebug(ctx, "Ledger projected",
		slog.String("start", start.Format(domain.DateLayout)),
		slog.String("end", end.Format(domain.DateLayout)),
		slog.Int("entries", len(ledger.Entries)))
	return &ledger, nil
}

func referencedIDs(groups ...[]domain.Transaction) (accountIDs []string, counterpartyIDs []string) {
	seenAccount := map[string]bool{}
	seenCounterparty := map[string]bool{}
	for _, txns := range groups {
		for _, t := range txns {
			if !seenAccount[t.BankAccountID] {
				seenAccount[t.BankAccountID] = true
				accountIDs = append(accountIDs, t.BankAccountID)
			}
			if t.CounterpartyID != nil && !seenCounterparty[*t.CounterpartyID] {
				seenCounterparty[*t.CounterpartyID] = true
				counterpartyIDs = append(counterpartyIDs, *t.CounterpartyID)
			}
		}
	}
	return accountIDs, counterpartyIDs
}
