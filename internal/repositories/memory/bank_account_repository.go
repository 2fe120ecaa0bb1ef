package memory

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/SscSPs/money_tracker/internal/apperrors"
	"github.com/SscSPs/money_tracker/internal/core/domain"
	"github.com/shopspring/decimal"
)

func cloneAccount(a domain.BankAccount) domain.BankAccount {
	a.AccountNumber = cloneString(a.AccountNumber)
	return a
}

func (s *Store) SaveBankAccount(ctx context.Context, account domain.BankAccount) error {
	defer s.lock(ctx)()

	if _, exists := s.accounts[account.BankAccountID]; exists {
		return fmt.Errorf("%w: bank account with ID %s already exists", apperrors.ErrDuplicate, account.BankAccountID)
	}
	s.accounts[account.BankAccountID] = accountRecord{account: cloneAccount(account)}
	return nil
}

func (s *Store) FindBankAccountByID(ctx context.Context, bankAccountID string) (*domain.BankAccount, error) {
	defer s.rlock(ctx)()

	rec, ok := s.accounts[bankAccountID]
	if !ok || rec.deletedAt != nil {
		return nil, apperrors.ErrNotFound
	}
	acc := cloneAccount(rec.account)
	return &acc, nil
}

func (s *Store) FindBankAccountsByIDs(ctx context.Context, bankAccountIDs []string) (map[string]domain.BankAccount, error) {
	defer s.rlock(ctx)()

	result := make(map[string]domain.BankAccount, len(bankAccountIDs))
	for _, id := range bankAccountIDs {
		if rec, ok := s.accounts[id]; ok && rec.deletedAt == nil {
			result[id] = cloneAccount(rec.account)
		}
	}
	return result, nil
}

func (s *Store) ListBankAccounts(ctx context.Context, ownerID string, limit int, offset int) ([]domain.BankAccount, error) {
	defer s.rlock(ctx)()

	result := make([]domain.BankAccount, 0)
	for _, rec := range s.accounts {
		if rec.deletedAt == nil && rec.account.OwnerID == ownerID {
			result = append(result, cloneAccount(rec.account))
		}
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].Name != result[j].Name {
			return result[i].Name < result[j].Name
		}
		return result[i].BankAccountID < result[j].BankAccountID
	})

	if offset >= len(result) {
		return []domain.BankAccount{}, nil
	}
	end := len(result)
	if limit > 0 && offset+limit < end {
		end = offset + limit
	}
	return result[offset:end], nil
}

func (s *Store) UpdateBankAccount(ctx context.Context, account domain.BankAccount) error {
	defer s.lock(ctx)()

	rec, ok := s.accounts[account.BankAccountID]
	if !ok || rec.deletedAt != nil {
		return apperrors.ErrNotFound
	}
	rec.account.Name = account.Name
	rec.account.AccountNumber = cloneString(account.AccountNumber)
	rec.account.LastUpdatedAt = account.LastUpdatedAt
	rec.account.LastUpdatedBy = account.LastUpdatedBy
	s.accounts[account.BankAccountID] = rec
	return nil
}

func (s *Store) DeleteBankAccount(ctx context.Context, bankAccountID string, userID string, now time.Time) error {
	defer s.lock(ctx)()

	rec, ok := s.accounts[bankAccountID]
	if !ok || rec.deletedAt != nil {
		return apperrors.ErrNotFound
	}
	rec.deletedAt = &now
	rec.account.LastUpdatedAt = now
	rec.account.LastUpdatedBy = userID
	s.accounts[bankAccountID] = rec
	return nil
}

func (s *Store) MutateBalance(ctx context.Context, bankAccountID string, delta decimal.Decimal, userID string, now time.Time) error {
	defer s.lock(ctx)()

	rec, ok := s.accounts[bankAccountID]
	if !ok || rec.deletedAt != nil {
		return apperrors.NewNotFoundError("bank account " + bankAccountID)
	}
	rec.account.Balance = rec.account.Balance.Add(delta)
	rec.account.LastUpdatedAt = now
	rec.account.LastUpdatedBy = userID
	s.accounts[bankAccountID] = rec
	return nil
}
