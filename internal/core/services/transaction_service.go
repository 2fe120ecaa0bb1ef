package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/SscSPs/money_tracker/internal/apperrors"
	"github.com/SscSPs/money_tracker/internal/core/domain"
	portsrepo "github.com/SscSPs/money_tracker/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/money_tracker/internal/core/ports/services"
	"github.com/SscSPs/money_tracker/internal/dto"
)

// TransactionService implements the income/expense lifecycle for both kinds.
type TransactionService struct {
	BaseService
	txnRepo          portsrepo.TransactionRepositoryFacade
	accountRepo      portsrepo.BankAccountRepositoryFacade
	counterpartyRepo portsrepo.CounterpartyReader
	txManager        portsrepo.TransactionManager
}

// NewTransactionService creates a new TransactionService.
func NewTransactionService(
	txnRepo portsrepo.TransactionRepositoryFacade,
	accountRepo portsrepo.BankAccountRepositoryFacade,
	counterpartyRepo portsrepo.CounterpartyReader,
	txManager portsrepo.TransactionManager,
	options ...ServiceOption,
) *TransactionService {
	return &TransactionService{
		BaseService:      newBaseService(options...),
		txnRepo:          txnRepo,
		accountRepo:      accountRepo,
		counterpartyRepo: counterpartyRepo,
		txManager:        txManager,
	}
}

var _ portssvc.TransactionSvcFacade = (*TransactionService)(nil)

func (s *TransactionService) GetTransaction(ctx context.Context, ownerID string, kind domain.TransactionKind, transactionID string) (*domain.Transaction, error) {
	return s.findOwnedTransaction(ctx, ownerID, kind, transactionID, false)
}

func (s *TransactionService) ListTransactions(ctx context.Context, ownerID string, kind domain.TransactionKind, params dto.ListTransactionsParams) (*dto.ListTransactionsResponse, error) {
	filter := domain.TransactionFilter{
		Kind:           kind,
		BankAccountID:  params.BankAccountID,
		CounterpartyID: params.CounterpartyID,
		Settled:        params.Settled,
		Recurring:      params.Recurring,
	}
	if params.Search != nil {
		if term := strings.TrimSpace(*params.Search); term != "" {
			filter.Search = &term
		}
	}
	if params.From != nil {
		from, err := domain.ParseDate(*params.From)
		if err != nil {
			return nil, err
		}
		filter.From = &from
	}
	if params.To != nil {
		to, err := domain.ParseDate(*params.To)
		if err != nil {
			return nil, err
		}
		filter.To = &to
	}
	if filter.From != nil && filter.To != nil && filter.From.After(*filter.To) {
		return nil, fmt.Errorf("%w: from must not be after to", apperrors.ErrValidation)
	}

	limit := params.Limit
	if limit <= 0 {
		limit = s.pageSize
	}

	txns, nextToken, err := s.txnRepo.ListTransactions(ctx, ownerID, filter, limit, params.NextToken)
	if err != nil {
		s.LogFailure(ctx, err, "Failed to list transactions",
			slog.String("owner_id", ownerID),
			slog.String("kind", string(kind)))
		return nil, err
	}

	return &dto.ListTransactionsResponse{
		Transactions: dto.ToTransactionResponses(txns),
		NextToken:    nextToken,
	}, nil
}

// findOwnedTransaction hides transactions of another owner or kind behind ErrNotFound.
func (s *TransactionService) findOwnedTransaction(ctx context.Context, ownerID string, kind domain.TransactionKind, transactionID string, forUpdate bool) (*domain.Transaction, error) {
	find := s.txnRepo.FindTransactionByID
	if forUpdate {
		find = s.txnRepo.FindTransactionByIDForUpdate
	}
	txn, err := find(ctx, transactionID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find transaction", slog.String("transaction_id", transactionID))
		}
		return nil, err
	}
	if txn.OwnerID != ownerID || txn.Kind != kind {
		s.LogDebug(ctx, "Transaction found but not visible to caller",
			slog.String("transaction_id", transactionID),
			slog.String("owner_id", ownerID),
			slog.String("kind", string(kind)))
		return nil, apperrors.NewNotFoundError(strings.ToLower(kind.Label()) + " " + transactionID)
	}
	return txn, nil
}

func (s *TransactionService) checkAccount(ctx context.Context, ownerID string, bankAccountID string) error {
	account, err := s.accountRepo.FindBankAccountByID(ctx, bankAccountID)
	if err != nil {
		return err
	}
	if account.OwnerID != ownerID {
		return apperrors.NewNotFoundError("bank account " + bankAccountID)
	}
	return nil
}

// resolveCounterparty normalizes an optional source/category reference and checks that the
// caller owns it and that it belongs to the same kind.
func (s *TransactionService) resolveCounterparty(ctx context.Context, ownerID string, kind domain.TransactionKind, counterpartyID *string) (*string, error) {
	if counterpartyID == nil || strings.TrimSpace(*counterpartyID) == "" {
		if kind.CounterpartyRequired() {
			return nil, fmt.Errorf("%w: counterpartyID (source of income) is required", apperrors.ErrValidation)
		}
		return nil, nil
	}

	id := strings.TrimSpace(*counterpartyID)
	cp, err := s.counterpartyRepo.FindCounterpartyByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if cp.OwnerID != ownerID || cp.Kind != kind {
		return nil, apperrors.NewNotFoundError("counterparty " + id)
	}
	return &id, nil
}

// settlementTime resolves the caller-supplied settlement date, defaulting to now.
func (s *TransactionService) settlementTime(raw *string) (time.Time, error) {
	if raw == nil {
		return s.now(), nil
	}
	return domain.ParseDate(*raw)
}

func normalizeRemarks(remarks *string) *string {
	if remarks == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*remarks)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
