package services_test

import (
	"testing"

	"github.com/SscSPs/money_tracker/internal/apperrors"
	"github.com/SscSPs/money_tracker/internal/core/domain"
	"github.com/SscSPs/money_tracker/internal/core/services"
	"github.com/SscSPs/money_tracker/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type LedgerServiceTestSuite struct {
	storeSuite
	txns   *services.TransactionService
	ledger *services.LedgerService
}

func (s *LedgerServiceTestSuite) SetupTest() {
	s.storeSuite.SetupTest()
	s.txns = services.NewTransactionService(s.store, s.store, s.store, s.store, s.options...)
	s.ledger = services.NewLedgerService(s.store, s.store, s.store, append(s.options, services.WithLedgerWindow(10))...)
}

func TestLedgerServiceTestSuite(t *testing.T) {
	suite.Run(t, new(LedgerServiceTestSuite))
}

func (s *LedgerServiceTestSuite) create(kind domain.TransactionKind, counterparty *string, amt, date string, settle bool) string {
	created, err := s.txns.CreateTransaction(s.ctx, owner, kind, dto.CreateTransactionRequest{
		BankAccountID:  "acc-1",
		CounterpartyID: counterparty,
		Amount:         amount(amt),
		EffectiveDate:  date,
		Settle:         settle,
		SettlementDate: strPtr(date),
	})
	s.Require().NoError(err)
	return created[0].TransactionID
}

func (s *LedgerServiceTestSuite) TestGetLedger_MixedEntries() {
	settledIncome := s.create(domain.KindIncome, strPtr("src-1"), "1000", "2025-03-01", true)
	pendingExpense := s.create(domain.KindExpense, strPtr("cat-1"), "100", "2025-03-05", false)
	settledExpense := s.create(domain.KindExpense, nil, "200", "2025-03-08", true)
	pendingIncome := s.create(domain.KindIncome, strPtr("src-1"), "500", "2025-03-12", false)
	s.create(domain.KindExpense, nil, "999", "2025-04-02", false)

	ledger, err := s.ledger.GetLedger(s.ctx, owner, dto.LedgerParams{StartDate: strPtr("2025-03-01"), EndDate: strPtr("2025-03-31")})
	s.Require().NoError(err)

	s.Require().Len(ledger.Entries, 4)
	ids := []string{}
	for _, e := range ledger.Entries {
		ids = append(ids, e.TransactionID)
	}
	s.Equal([]string{settledIncome, pendingExpense, settledExpense, pendingIncome}, ids)
	s.True(ledger.Summary.TotalCredit.Equal(decimal.NewFromInt(1500)))
	s.True(ledger.Summary.TotalDebit.Equal(decimal.NewFromInt(300)))
	s.True(ledger.Summary.NetFlow.Equal(decimal.NewFromInt(1200)))

	s.Equal("Salary", ledger.Entries[0].CategoryLabel)
	s.Equal("Account acc-1", ledger.Entries[0].AccountLabel)
	s.Equal(domain.StatusCompleted, ledger.Entries[0].Status)
	s.Equal("Groceries", ledger.Entries[1].CategoryLabel)
	s.Equal(domain.StatusPending, ledger.Entries[1].Status)
}

func (s *LedgerServiceTestSuite) TestGetLedger_PaidExpenseSurfacesAtSettlementDate() {
	created, err := s.txns.CreateTransaction(s.ctx, owner, domain.KindExpense, dto.CreateTransactionRequest{
		BankAccountID: "acc-1", Amount: amount("40"), EffectiveDate: "2025-04-10",
		Settle: true, SettlementDate: strPtr("2025-03-28"),
	})
	s.Require().NoError(err)

	march, err := s.ledger.GetLedger(s.ctx, owner, dto.LedgerParams{StartDate: strPtr("2025-03-01"), EndDate: strPtr("2025-03-31")})
	s.Require().NoError(err)
	s.Require().Len(march.Entries, 1)
	s.Equal(created[0].TransactionID, march.Entries[0].TransactionID)
	s.Equal(day("2025-03-28"), march.Entries[0].Date)

	april, err := s.ledger.GetLedger(s.ctx, owner, dto.LedgerParams{StartDate: strPtr("2025-04-01"), EndDate: strPtr("2025-04-30")})
	s.Require().NoError(err)
	s.Empty(april.Entries)
}

func (s *LedgerServiceTestSuite) TestGetLedger_DefaultWindow() {
	s.create(domain.KindExpense, nil, "10", "2025-03-05", false)
	s.create(domain.KindExpense, nil, "20", "2025-03-04", false)

	ledger, err := s.ledger.GetLedger(s.ctx, owner, dto.LedgerParams{})
	s.Require().NoError(err)

	s.Equal(day("2025-03-05"), ledger.StartDate)
	s.Equal(day("2025-03-15"), ledger.EndDate)
	s.Len(ledger.Entries, 1)
}

func (s *LedgerServiceTestSuite) TestGetLedger_StartAfterEnd() {
	_, err := s.ledger.GetLedger(s.ctx, owner, dto.LedgerParams{StartDate: strPtr("2025-03-10"), EndDate: strPtr("2025-03-01")})
	s.ErrorIs(err, apperrors.ErrValidation)
}

func (s *LedgerServiceTestSuite) TestGetLedger_DeletedAccountLabel() {
	s.create(domain.KindExpense, nil, "10", "2025-03-05", false)
	s.Require().NoError(s.store.DeleteBankAccount(s.ctx, "acc-1", owner, fixedNow))

	ledger, err := s.ledger.GetLedger(s.ctx, owner, dto.LedgerParams{StartDate: strPtr("2025-03-01")})
	s.Require().NoError(err)
	s.Require().Len(ledger.Entries, 1)
	s.Equal("Unknown Account", ledger.Entries[0].AccountLabel)
}

func (s *LedgerServiceTestSuite) TestGetLedger_OnlyOwnersEntries() {
	s.create(domain.KindExpense, nil, "10", "2025-03-05", false)

	ledger, err := s.ledger.GetLedger(s.ctx, otherOwner, dto.LedgerParams{StartDate: strPtr("2025-03-01")})
	s.Require().NoError(err)
	s.Empty(ledger.Entries)
	s.True(ledger.Summary.NetFlow.IsZero())
}
