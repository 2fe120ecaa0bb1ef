package handlers_test

import (
	"context"

	"github.com/SscSPs/money_tracker/internal/core/domain"
	"github.com/SscSPs/money_tracker/internal/dto"
	"github.com/stretchr/testify/mock"
)

type MockTransactionService struct {
	mock.Mock
}

func (m *MockTransactionService) GetTransaction(ctx context.Context, ownerID string, kind domain.TransactionKind, transactionID string) (*domain.Transaction, error) {
	args := m.Called(ctx, ownerID, kind, transactionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

func (m *MockTransactionService) ListTransactions(ctx context.Context, ownerID string, kind domain.TransactionKind, params dto.ListTransactionsParams) (*dto.ListTransactionsResponse, error) {
	args := m.Called(ctx, ownerID, kind, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ListTransactionsResponse), args.Error(1)
}

func (m *MockTransactionService) CreateTransaction(ctx context.Context, ownerID string, kind domain.TransactionKind, req dto.CreateTransactionRequest) ([]domain.Transaction, error) {
	args := m.Called(ctx, ownerID, kind, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Transaction), args.Error(1)
}

func (m *MockTransactionService) UpdateTransaction(ctx context.Context, ownerID string, kind domain.TransactionKind, transactionID string, req dto.UpdateTransactionRequest) (*domain.Transaction, error) {
	args := m.Called(ctx, ownerID, kind, transactionID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

func (m *MockTransactionService) DeleteTransaction(ctx context.Context, ownerID string, kind domain.TransactionKind, transactionID string, applyToFuture bool) error {
	args := m.Called(ctx, ownerID, kind, transactionID, applyToFuture)
	return args.Error(0)
}

func (m *MockTransactionService) SettleTransaction(ctx context.Context, ownerID string, kind domain.TransactionKind, transactionID string, req dto.SettleTransactionRequest) (*domain.Transaction, error) {
	args := m.Called(ctx, ownerID, kind, transactionID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

type MockBankAccountService struct {
	mock.Mock
}

func (m *MockBankAccountService) GetBankAccount(ctx context.Context, ownerID string, bankAccountID string) (*domain.BankAccount, error) {
	args := m.Called(ctx, ownerID, bankAccountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BankAccount), args.Error(1)
}

func (m *MockBankAccountService) ListBankAccounts(ctx context.Context, ownerID string, params dto.ListBankAccountsParams) ([]domain.BankAccount, error) {
	args := m.Called(ctx, ownerID, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.BankAccount), args.Error(1)
}

func (m *MockBankAccountService) CreateBankAccount(ctx context.Context, ownerID string, req dto.CreateBankAccountRequest) (*domain.BankAccount, error) {
	args := m.Called(ctx, ownerID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BankAccount), args.Error(1)
}

func (m *MockBankAccountService) UpdateBankAccount(ctx context.Context, ownerID string, bankAccountID string, req dto.UpdateBankAccountRequest) (*domain.BankAccount, error) {
	args := m.Called(ctx, ownerID, bankAccountID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BankAccount), args.Error(1)
}

func (m *MockBankAccountService) DeleteBankAccount(ctx context.Context, ownerID string, bankAccountID string) error {
	args := m.Called(ctx, ownerID, bankAccountID)
	return args.Error(0)
}

type MockCounterpartyService struct {
	mock.Mock
}

func (m *MockCounterpartyService) CreateCounterparty(ctx context.Context, ownerID string, kind domain.TransactionKind, req dto.CreateCounterpartyRequest) (*domain.Counterparty, error) {
	args := m.Called(ctx, ownerID, kind, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Counterparty), args.Error(1)
}

func (m *MockCounterpartyService) GetCounterparty(ctx context.Context, ownerID string, kind domain.TransactionKind, counterpartyID string) (*domain.Counterparty, error) {
	args := m.Called(ctx, ownerID, kind, counterpartyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Counterparty), args.Error(1)
}

func (m *MockCounterpartyService) ListCounterparties(ctx context.Context, ownerID string, kind domain.TransactionKind) ([]domain.Counterparty, error) {
	args := m.Called(ctx, ownerID, kind)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Counterparty), args.Error(1)
}

func (m *MockCounterpartyService) UpdateCounterparty(ctx context.Context, ownerID string, kind domain.TransactionKind, counterpartyID string, req dto.UpdateCounterpartyRequest) (*domain.Counterparty, error) {
	args := m.Called(ctx, ownerID, kind, counterpartyID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Counterparty), args.Error(1)
}

func (m *MockCounterpartyService) DeleteCounterparty(ctx context.Context, ownerID string, kind domain.TransactionKind, counterpartyID string) error {
	args := m.Called(ctx, ownerID, kind, counterpartyID)
	return args.Error(0)
}

type MockLedgerService struct {
	mock.Mock
}

func (m *MockLedgerService) GetLedger(ctx context.Context, ownerID string, params dto.LedgerParams) (*domain.Ledger, error) {
	args := m.Called(ctx, ownerID, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Ledger), args.Error(1)
}
