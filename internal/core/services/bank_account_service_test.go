package services_test

import (
	"testing"

	"github.com/SscSPs/money_tracker/internal/apperrors"
	"github.com/SscSPs/money_tracker/internal/core/services"
	"github.com/SscSPs/money_tracker/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type BankAccountServiceTestSuite struct {
	storeSuite
	service *services.BankAccountService
}

func (s *BankAccountServiceTestSuite) SetupTest() {
	s.storeSuite.SetupTest()
	s.service = services.NewBankAccountService(s.store, s.options...)
}

func TestBankAccountServiceTestSuite(t *testing.T) {
	suite.Run(t, new(BankAccountServiceTestSuite))
}

func (s *BankAccountServiceTestSuite) TestCreateBankAccount() {
	acc, err := s.service.CreateBankAccount(s.ctx, owner, dto.CreateBankAccountRequest{
		Name:           "  Savings ",
		AccountNumber:  strPtr("  "),
		OpeningBalance: amount("250.10"),
	})
	s.Require().NoError(err)

	s.Equal("Savings", acc.Name)
	s.Nil(acc.AccountNumber)
	s.True(acc.Balance.Equal(*amount("250.1")))
	s.Equal(fixedNow, acc.CreatedAt)

	stored, err := s.service.GetBankAccount(s.ctx, owner, acc.BankAccountID)
	s.Require().NoError(err)
	s.Equal(acc.Name, stored.Name)
}

func (s *BankAccountServiceTestSuite) TestCreateBankAccount_DefaultsToZero() {
	acc, err := s.service.CreateBankAccount(s.ctx, owner, dto.CreateBankAccountRequest{Name: "Wallet"})
	s.Require().NoError(err)
	s.True(acc.Balance.Equal(decimal.Zero))
}

func (s *BankAccountServiceTestSuite) TestCreateBankAccount_Validation() {
	_, err := s.service.CreateBankAccount(s.ctx, owner, dto.CreateBankAccountRequest{Name: "X", OpeningBalance: amount("1.001")})
	s.ErrorIs(err, apperrors.ErrValidation)

	_, err = s.service.CreateBankAccount(s.ctx, owner, dto.CreateBankAccountRequest{Name: "   "})
	s.ErrorIs(err, apperrors.ErrValidation)
}

func (s *BankAccountServiceTestSuite) TestGetBankAccount_OtherOwner() {
	_, err := s.service.GetBankAccount(s.ctx, owner, "acc-foreign")
	s.ErrorIs(err, apperrors.ErrNotFound)
}

func (s *BankAccountServiceTestSuite) TestUpdateBankAccount_KeepsBalance() {
	updated, err := s.service.UpdateBankAccount(s.ctx, owner, "acc-1", dto.UpdateBankAccountRequest{Name: strPtr("Checking"), AccountNumber: strPtr("NL01")})
	s.Require().NoError(err)
	s.Equal("Checking", updated.Name)
	s.Equal("NL01", *updated.AccountNumber)
	s.assertBalance("acc-1", 1000)

	_, err = s.service.UpdateBankAccount(s.ctx, owner, "acc-1", dto.UpdateBankAccountRequest{Name: strPtr(" ")})
	s.ErrorIs(err, apperrors.ErrValidation)
}

func (s *BankAccountServiceTestSuite) TestDeleteBankAccount() {
	s.Require().NoError(s.service.DeleteBankAccount(s.ctx, owner, "acc-1"))

	_, err := s.service.GetBankAccount(s.ctx, owner, "acc-1")
	s.ErrorIs(err, apperrors.ErrNotFound)

	err = s.service.DeleteBankAccount(s.ctx, owner, "acc-foreign")
	s.ErrorIs(err, apperrors.ErrNotFound)
}

func (s *BankAccountServiceTestSuite) TestListBankAccounts() {
	s.seedAccount("acc-2", owner, 5)

	accounts, err := s.service.ListBankAccounts(s.ctx, owner, dto.ListBankAccountsParams{})
	s.Require().NoError(err)
	s.Len(accounts, 2)

	page, err := s.service.ListBankAccounts(s.ctx, owner, dto.ListBankAccountsParams{Limit: 1, Offset: 1})
	s.Require().NoError(err)
	s.Require().Len(page, 1)
	s.Equal("acc-2", page[0].BankAccountID)
}
