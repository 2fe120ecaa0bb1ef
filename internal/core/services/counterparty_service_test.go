package services_test

import (
	"testing"

	"github.com/SscSPs/money_tracker/internal/apperrors"
	"github.com/SscSPs/money_tracker/internal/core/domain"
	"github.com/SscSPs/money_tracker/internal/core/services"
	"github.com/SscSPs/money_tracker/internal/dto"
	"github.com/stretchr/testify/suite"
)

type CounterpartyServiceTestSuite struct {
	storeSuite
	service *services.CounterpartyService
	txns    *services.TransactionService
}

func (s *CounterpartyServiceTestSuite) SetupTest() {
	s.storeSuite.SetupTest()
	s.service = services.NewCounterpartyService(s.store, s.store, s.options...)
	s.txns = services.NewTransactionService(s.store, s.store, s.store, s.store, s.options...)
}

func TestCounterpartyServiceTestSuite(t *testing.T) {
	suite.Run(t, new(CounterpartyServiceTestSuite))
}

func (s *CounterpartyServiceTestSuite) TestCreateAndList() {
	created, err := s.service.CreateCounterparty(s.ctx, owner, domain.KindExpense, dto.CreateCounterpartyRequest{Name: " Utilities ", Description: strPtr("power, water")})
	s.Require().NoError(err)
	s.Equal("Utilities", created.Name)
	s.Equal(domain.KindExpense, created.Kind)

	categories, err := s.service.ListCounterparties(s.ctx, owner, domain.KindExpense)
	s.Require().NoError(err)
	s.Len(categories, 2)

	sources, err := s.service.ListCounterparties(s.ctx, owner, domain.KindIncome)
	s.Require().NoError(err)
	s.Len(sources, 1)
}

func (s *CounterpartyServiceTestSuite) TestCreate_DuplicateName() {
	_, err := s.service.CreateCounterparty(s.ctx, owner, domain.KindExpense, dto.CreateCounterpartyRequest{Name: "GROCERIES"})
	s.ErrorIs(err, apperrors.ErrDuplicate)

	_, err = s.service.CreateCounterparty(s.ctx, otherOwner, domain.KindExpense, dto.CreateCounterpartyRequest{Name: "Groceries"})
	s.NoError(err)
}

func (s *CounterpartyServiceTestSuite) TestGet_WrongKindIsNotFound() {
	_, err := s.service.GetCounterparty(s.ctx, owner, domain.KindIncome, "cat-1")
	s.ErrorIs(err, apperrors.ErrNotFound)

	_, err = s.service.GetCounterparty(s.ctx, owner, domain.KindExpense, "cat-foreign")
	s.ErrorIs(err, apperrors.ErrNotFound)
}

func (s *CounterpartyServiceTestSuite) TestUpdate() {
	updated, err := s.service.UpdateCounterparty(s.ctx, owner, domain.KindIncome, "src-1", dto.UpdateCounterpartyRequest{Name: strPtr("Payroll")})
	s.Require().NoError(err)
	s.Equal("Payroll", updated.Name)
	s.Equal(fixedNow, updated.LastUpdatedAt)
}

func (s *CounterpartyServiceTestSuite) TestDelete_InUseIsConflict() {
	_, err := s.txns.CreateTransaction(s.ctx, owner, domain.KindIncome, dto.CreateTransactionRequest{
		BankAccountID: "acc-1", CounterpartyID: strPtr("src-1"), Amount: amount("10"), EffectiveDate: "2025-03-01",
	})
	s.Require().NoError(err)

	err = s.service.DeleteCounterparty(s.ctx, owner, domain.KindIncome, "src-1")
	s.ErrorIs(err, apperrors.ErrConflict)

	s.NoError(s.service.DeleteCounterparty(s.ctx, owner, domain.KindExpense, "cat-1"))
	_, err = s.service.GetCounterparty(s.ctx, owner, domain.KindExpense, "cat-1")
	s.ErrorIs(err, apperrors.ErrNotFound)
}
