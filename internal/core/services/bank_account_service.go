package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/SscSPs/money_tracker/internal/apperrors"
	"github.com/SscSPs/money_tracker/internal/core/domain"
	portsrepo "github.com/SscSPs/money_tracker/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/money_tracker/internal/core/ports/services"
	"github.com/SscSPs/money_tracker/internal/dto"
	"github.com/shopspring/decimal"
)

// BankAccountService manages bank accounts. It never writes a balance after creation.
type BankAccountService struct {
	BaseService
	accountRepo portsrepo.BankAccountRepositoryFacade
}

// NewBankAccountService creates a new BankAccountService.
func NewBankAccountService(accountRepo portsrepo.BankAccountRepositoryFacade, options ...ServiceOption) *BankAccountService {
	return &BankAccountService{
		BaseService: newBaseService(options...),
		accountRepo: accountRepo,
	}
}

var _ portssvc.BankAccountSvcFacade = (*BankAccountService)(nil)

func (s *BankAccountService) CreateBankAccount(ctx context.Context, ownerID string, req dto.CreateBankAccountRequest) (*domain.BankAccount, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: name is required", apperrors.ErrValidation)
	}
	balance := decimal.Zero
	if req.OpeningBalance != nil {
		if !req.OpeningBalance.Equal(req.OpeningBalance.Round(2)) {
			return nil, fmt.Errorf("%w: openingBalance has more than two decimal places", apperrors.ErrValidation)
		}
		balance = req.OpeningBalance.Round(2)
	}

	now := s.now()
	account := domain.BankAccount{
		BankAccountID: s.newID(),
		OwnerID:       ownerID,
		Name:          name,
		AccountNumber: normalizeRemarks(req.AccountNumber),
		Balance:       balance,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     ownerID,
			LastUpdatedAt: now,
			LastUpdatedBy: ownerID,
		},
	}

	if err := s.accountRepo.SaveBankAccount(ctx, account); err != nil {
		s.LogError(ctx, err, "Failed to save bank account", slog.String("owner_id", ownerID))
		return nil, err
	}

	s.LogInfo(ctx, "Bank account created", slog.String("bank_account_id", account.BankAccountID))
	return &account, nil
}

func (s *BankAccountService) GetBankAccount(ctx context.Context, ownerID string, bankAccountID string) (*domain.BankAccount, error) {
	account, err := s.accountRepo.FindBankAccountByID(ctx, bankAccountID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find bank account", slog.String("bank_account_id", bankAccountID))
		}
		return nil, err
	}
	if account.OwnerID != ownerID {
		s.LogDebug(ctx, "Bank account belongs to another owner", slog.String("bank_account_id", bankAccountID))
		return nil, apperrors.NewNotFoundError("bank account " + bankAccountID)
	}
	return account, nil
}

func (s *BankAccountService) ListBankAccounts(ctx context.Context, ownerID string, params dto.ListBankAccountsParams) ([]domain.BankAccount, error) {
	limit := params.Limit
	if limit <= 0 {
		limit = s.pageSize
	}
	accounts, err := s.accountRepo.ListBankAccounts(ctx, ownerID, limit, params.Offset)
	if err != nil {
		s.LogError(ctx, err, "Failed to list bank accounts",
			slog.String("owner_id", ownerID),
			slog.Int("limit", limit),
			slog.Int("offset", params.Offset))
		return nil, fmt.Errorf("failed to list bank accounts for owner %s: %w", ownerID, err)
	}
	if accounts == nil {
		return []domain.BankAccount{}, nil
	}
	return accounts, nil
}

func (s *BankAccountService) UpdateBankAccount(ctx context.Context, ownerID string, bankAccountID string, req dto.UpdateBankAccountRequest) (*domain.BankAccount, error) {
	account, err := s.GetBankAccount(ctx, ownerID, bankAccountID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return nil, fmt.Errorf("%w: name cannot be empty", apperrors.ErrValidation)
		}
		account.Name = name
	}
	if req.AccountNumber != nil {
		account.AccountNumber = normalizeRemarks(req.AccountNumber)
	}
	account.LastUpdatedAt = s.now()
	account.LastUpdatedBy = ownerID

	if err := s.accountRepo.UpdateBankAccount(ctx, *account); err != nil {
		s.LogFailure(ctx, err, "Failed to update bank account", slog.String("bank_account_id", bankAccountID))
		return nil, err
	}
	return account, nil
}

// DeleteBankAccount soft-deletes the account. Transactions that point at it keep
// their reference and show up in the ledger under "Unknown Account".
func (s *BankAccountService) DeleteBankAccount(ctx context.Context, ownerID string, bankAccountID string) error {
	if _, err := s.GetBankAccount(ctx, ownerID, bankAccountID); err != nil {
		return err
	}
	if err := s.accountRepo.DeleteBankAccount(ctx, bankAccountID, ownerID, s.now()); err != nil {
		s.LogFailure(ctx, err, "Failed to delete bank account", slog.String("bank_account_id", bankAccountID))
		return err
	}
	s.LogInfo(ctx, "Bank account deleted", slog.String("bank_account_id", bankAccountID))
	return nil
}
