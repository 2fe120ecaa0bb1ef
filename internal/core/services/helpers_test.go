package services_test

import (
	"context"
	"fmt"
	"time"

	"github.com/SscSPs/money_tracker/internal/core/domain"
	"github.com/SscSPs/money_tracker/internal/core/services"
	"github.com/SscSPs/money_tracker/internal/repositories/memory"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

const (
	owner      = "user-1"
	otherOwner = "user-2"
)

var fixedNow = time.Date(2025, 3, 15, 10, 30, 0, 0, time.UTC)

func day(s string) time.Time {
	d, err := time.Parse(domain.DateLayout, s)
	if err != nil {
		panic(err)
	}
	return d
}

func strPtr(s string) *string { return &s }

func intPtr(i int) *int { return &i }

func amount(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

// storeSuite runs services against a fresh in-memory store per test.
type storeSuite struct {
	suite.Suite
	ctx     context.Context
	store   *memory.Store
	options []services.ServiceOption
}

func (s *storeSuite) SetupTest() {
	s.ctx = context.Background()
	s.store = memory.NewStore()

	seq := 0
	s.options = []services.ServiceOption{
		services.WithClock(func() time.Time { return fixedNow }),
		services.WithIDGenerator(func() string {
			seq++
			return fmt.Sprintf("id-%03d", seq)
		}),
	}

	s.seedAccount("acc-1", owner, 1000)
	s.seedAccount("acc-foreign", otherOwner, 1000)
	s.seedCounterparty("src-1", owner, domain.KindIncome, "Salary")
	s.seedCounterparty("cat-1", owner, domain.KindExpense, "Groceries")
	s.seedCounterparty("cat-foreign", otherOwner, domain.KindExpense, "Travel")
}

func (s *storeSuite) seedAccount(id, ownerID string, balance int64) {
	s.Require().NoError(s.store.SaveBankAccount(s.ctx, domain.BankAccount{
		BankAccountID: id,
		OwnerID:       ownerID,
		Name:          "Account " + id,
		Balance:       decimal.NewFromInt(balance),
	}))
}

func (s *storeSuite) seedCounterparty(id, ownerID string, kind domain.TransactionKind, name string) {
	s.Require().NoError(s.store.SaveCounterparty(s.ctx, domain.Counterparty{
		CounterpartyID: id,
		OwnerID:        ownerID,
		Kind:           kind,
		Name:           name,
	}))
}

func (s *storeSuite) balance(id string) decimal.Decimal {
	acc, err := s.store.FindBankAccountByID(s.ctx, id)
	s.Require().NoError(err)
	return acc.Balance
}

func (s *storeSuite) assertBalance(id string, want int64) {
	got := s.balance(id)
	s.True(got.Equal(decimal.NewFromInt(want)), "balance of %s: want %d, got %s", id, want, got)
}
