package handlers_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/SscSPs/money_tracker/internal/apperrors"
	"github.com/SscSPs/money_tracker/internal/core/domain"
	portssvc "github.com/SscSPs/money_tracker/internal/core/ports/services"
	"github.com/SscSPs/money_tracker/internal/dto"
	"github.com/SscSPs/money_tracker/internal/handlers"
	"github.com/SscSPs/money_tracker/internal/platform/config"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	testSecret = "handler-test-secret"
	testIssuer = "money-tracker"
	testUser   = "user-1"
)

type HandlersTestSuite struct {
	suite.Suite
	router       *gin.Engine
	transactions *MockTransactionService
	accounts     *MockBankAccountService
	counterparty *MockCounterpartyService
	ledger       *MockLedgerService
	token        string
}

func (s *HandlersTestSuite) SetupSuite() {
	gin.SetMode(gin.TestMode)
	s.Require().NoError(dto.RegisterValidators())

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   testUser,
		Issuer:    testIssuer,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}).SignedString([]byte(testSecret))
	s.Require().NoError(err)
	s.token = token
}

func (s *HandlersTestSuite) SetupTest() {
	s.transactions = new(MockTransactionService)
	s.accounts = new(MockBankAccountService)
	s.counterparty = new(MockCounterpartyService)
	s.ledger = new(MockLedgerService)

	s.router = gin.New()
	handlers.RegisterRoutes(s.router, &config.Config{JWTSecret: testSecret, JWTIssuer: testIssuer, IsProduction: true}, &portssvc.ServiceContainer{
		Transaction:  s.transactions,
		BankAccount:  s.accounts,
		Counterparty: s.counterparty,
		Ledger:       s.ledger,
	})
}

func (s *HandlersTestSuite) TearDownTest() {
	s.transactions.AssertExpectations(s.T())
	s.accounts.AssertExpectations(s.T())
	s.counterparty.AssertExpectations(s.T())
	s.ledger.AssertExpectations(s.T())
}

func TestHandlersTestSuite(t *testing.T) {
	suite.Run(t, new(HandlersTestSuite))
}

func (s *HandlersTestSuite) do(method, path string, body any) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		s.Require().NoError(err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Authorization", "Bearer "+s.token)
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func decodeBody[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func (s *HandlersTestSuite) TestHealth() {
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	s.Equal(http.StatusOK, w.Code)
	s.Equal("OK", w.Body.String())
}

func (s *HandlersTestSuite) TestRequiresToken() {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/incomes", nil)
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	s.Equal(http.StatusUnauthorized, w.Code)

	forged, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{Subject: testUser, Issuer: testIssuer}).
		SignedString([]byte("some-other-secret"))
	s.Require().NoError(err)
	req = httptest.NewRequest(http.MethodGet, "/api/v1/incomes", nil)
	req.Header.Set("Authorization", "Bearer "+forged)
	w = httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	s.Equal(http.StatusUnauthorized, w.Code)
}

func (s *HandlersTestSuite) TestCreateExpenseSeries() {
	first := domain.Transaction{
		TransactionID: "txn-1",
		OwnerID:       testUser,
		Kind:          domain.KindExpense,
		BankAccountID: "acc-1",
		Amount:        decimal.NewFromInt(100),
		EffectiveDate: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
	}
	s.transactions.On("CreateTransaction", mock.Anything, testUser, domain.KindExpense,
		mock.MatchedBy(func(req dto.CreateTransactionRequest) bool {
			return req.BankAccountID == "acc-1" && req.Amount.Equal(decimal.NewFromInt(100)) &&
				req.Recurrence != nil && req.Recurrence.Type == domain.RecurrenceStartOfMonth
		})).Return([]domain.Transaction{first, first, first}, nil).Once()

	w := s.do(http.MethodPost, "/api/v1/expenses", map[string]any{
		"bankAccountID": "acc-1",
		"amount":        "100.00",
		"effectiveDate": "2025-01-01",
		"recurrence":    map[string]any{"type": "START_OF_MONTH", "until": "2025-03-01"},
	})

	s.Require().Equal(http.StatusCreated, w.Code, w.Body.String())
	resp := decodeBody[dto.CreateTransactionResponse](s.T(), w)
	s.Equal(3, resp.GeneratedCount)
	s.Equal("txn-1", resp.Transaction.TransactionID)
	s.Equal("2025-01-01", resp.Transaction.EffectiveDate)
}

func (s *HandlersTestSuite) TestCreateRejectsBadBodies() {
	tests := []struct {
		name string
		body map[string]any
	}{
		{"missing bank account", map[string]any{"amount": "5", "effectiveDate": "2025-01-01"}},
		{"bad date", map[string]any{"bankAccountID": "acc-1", "amount": "5", "effectiveDate": "01/02/2025"}},
		{"specific day without day", map[string]any{
			"bankAccountID": "acc-1", "amount": "5", "effectiveDate": "2025-01-01",
			"recurrence": map[string]any{"type": "SPECIFIC_DAY", "until": "2025-06-01"},
		}},
		{"unknown recurrence type", map[string]any{
			"bankAccountID": "acc-1", "amount": "5", "effectiveDate": "2025-01-01",
			"recurrence": map[string]any{"type": "WEEKLY", "until": "2025-06-01"},
		}},
	}
	for _, tt := range tests {
		s.Run(tt.name, func() {
			w := s.do(http.MethodPost, "/api/v1/incomes", tt.body)
			s.Equal(http.StatusBadRequest, w.Code, w.Body.String())
		})
	}
}

func (s *HandlersTestSuite) TestServiceErrorsMapToStatus() {
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{"validation", errors.Join(apperrors.ErrValidation, errors.New("amount must be positive")), http.StatusBadRequest},
		{"settled", apperrors.ErrImmutable, http.StatusForbidden},
		{"missing", apperrors.NewNotFoundError("expense txn-9"), http.StatusNotFound},
		{"infrastructure", apperrors.NewAppError(500, "failed to begin transaction", errors.New("conn reset")), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		s.Run(tt.name, func() {
			s.transactions.On("UpdateTransaction", mock.Anything, testUser, domain.KindExpense, "txn-9", mock.Anything).
				Return(nil, tt.err).Once()

			w := s.do(http.MethodPut, "/api/v1/expenses/txn-9", map[string]any{"remarks": "x"})
			s.Equal(tt.status, w.Code)
			if tt.status == http.StatusInternalServerError {
				s.NotContains(w.Body.String(), "conn reset")
			}
		})
	}
}

func (s *HandlersTestSuite) TestMarkAsReceivedWithoutBody() {
	settledAt := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	s.transactions.On("SettleTransaction", mock.Anything, testUser, domain.KindIncome, "inc-1", dto.SettleTransactionRequest{}).
		Return(&domain.Transaction{TransactionID: "inc-1", Kind: domain.KindIncome, Settled: true, EffectiveDate: settledAt}, nil).Once()

	w := s.do(http.MethodPost, "/api/v1/incomes/inc-1/mark-as-received", nil)

	s.Require().Equal(http.StatusOK, w.Code, w.Body.String())
	resp := decodeBody[dto.TransactionResponse](s.T(), w)
	s.True(resp.Settled)
	s.Nil(resp.SettlementDate)
}

func (s *HandlersTestSuite) TestMarkAsPaidWithDate() {
	s.transactions.On("SettleTransaction", mock.Anything, testUser, domain.KindExpense, "exp-1",
		mock.MatchedBy(func(req dto.SettleTransactionRequest) bool {
			return req.SettlementDate != nil && *req.SettlementDate == "2025-03-04"
		})).Return(&domain.Transaction{TransactionID: "exp-1", Kind: domain.KindExpense, Settled: true}, nil).Once()

	w := s.do(http.MethodPost, "/api/v1/expenses/exp-1/mark-as-paid", map[string]any{"settlementDate": "2025-03-04"})
	s.Equal(http.StatusOK, w.Code, w.Body.String())

	// Income routes do not expose mark-as-paid.
	w = s.do(http.MethodPost, "/api/v1/incomes/exp-1/mark-as-paid", nil)
	s.Equal(http.StatusNotFound, w.Code)
}

func (s *HandlersTestSuite) TestDeleteCascades() {
	s.transactions.On("DeleteTransaction", mock.Anything, testUser, domain.KindExpense, "exp-1", true).Return(nil).Once()
	s.transactions.On("DeleteTransaction", mock.Anything, testUser, domain.KindExpense, "exp-2", false).Return(nil).Once()

	s.Equal(http.StatusNoContent, s.do(http.MethodDelete, "/api/v1/expenses/exp-1?applyToFuture=true", nil).Code)
	s.Equal(http.StatusNoContent, s.do(http.MethodDelete, "/api/v1/expenses/exp-2", nil).Code)
}

func (s *HandlersTestSuite) TestListTransactions() {
	next := "token-2"
	s.transactions.On("ListTransactions", mock.Anything, testUser, domain.KindIncome,
		mock.MatchedBy(func(p dto.ListTransactionsParams) bool {
			return p.Limit == 2 && p.Settled != nil && !*p.Settled
		})).Return(&dto.ListTransactionsResponse{Transactions: []dto.TransactionResponse{}, NextToken: &next}, nil).Once()

	w := s.do(http.MethodGet, "/api/v1/incomes?limit=2&settled=false", nil)
	s.Require().Equal(http.StatusOK, w.Code, w.Body.String())
	resp := decodeBody[dto.ListTransactionsResponse](s.T(), w)
	s.Require().NotNil(resp.NextToken)
	s.Equal(next, *resp.NextToken)

	s.Equal(http.StatusBadRequest, s.do(http.MethodGet, "/api/v1/incomes?limit=500", nil).Code)
}

func (s *HandlersTestSuite) TestCounterpartyRoutesCarryKind() {
	s.counterparty.On("CreateCounterparty", mock.Anything, testUser, domain.KindIncome, dto.CreateCounterpartyRequest{Name: "Salary"}).
		Return(&domain.Counterparty{CounterpartyID: "src-1", Kind: domain.KindIncome, Name: "Salary"}, nil).Once()
	s.counterparty.On("DeleteCounterparty", mock.Anything, testUser, domain.KindExpense, "cat-1").
		Return(apperrors.ErrConflict).Once()
	s.counterparty.On("CreateCounterparty", mock.Anything, testUser, domain.KindExpense, dto.CreateCounterpartyRequest{Name: "Rent"}).
		Return(nil, apperrors.ErrDuplicate).Once()

	w := s.do(http.MethodPost, "/api/v1/source-of-incomes", map[string]any{"name": "Salary"})
	s.Require().Equal(http.StatusCreated, w.Code, w.Body.String())
	s.Equal("src-1", decodeBody[dto.CounterpartyResponse](s.T(), w).ID)

	s.Equal(http.StatusUnprocessableEntity, s.do(http.MethodDelete, "/api/v1/categories/cat-1", nil).Code)
	s.Equal(http.StatusConflict, s.do(http.MethodPost, "/api/v1/categories", map[string]any{"name": "Rent"}).Code)
}

func (s *HandlersTestSuite) TestBankAccounts() {
	s.accounts.On("CreateBankAccount", mock.Anything, testUser, mock.MatchedBy(func(req dto.CreateBankAccountRequest) bool {
		return req.Name == "Checking" && req.OpeningBalance != nil && req.OpeningBalance.Equal(decimal.NewFromInt(250))
	})).Return(&domain.BankAccount{BankAccountID: "acc-1", Name: "Checking", Balance: decimal.NewFromInt(250)}, nil).Once()
	s.accounts.On("GetBankAccount", mock.Anything, testUser, "acc-404").Return(nil, apperrors.NewNotFoundError("bank account acc-404")).Once()

	w := s.do(http.MethodPost, "/api/v1/bank-accounts", map[string]any{"name": "Checking", "openingBalance": "250"})
	s.Require().Equal(http.StatusCreated, w.Code, w.Body.String())
	resp := decodeBody[dto.BankAccountResponse](s.T(), w)
	s.True(resp.Balance.Equal(decimal.NewFromInt(250)))

	s.Equal(http.StatusNotFound, s.do(http.MethodGet, "/api/v1/bank-accounts/acc-404", nil).Code)
	s.Equal(http.StatusBadRequest, s.do(http.MethodPost, "/api/v1/bank-accounts", map[string]any{}).Code)
}

func (s *HandlersTestSuite) TestLedger() {
	start := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 3, 31, 0, 0, 0, 0, time.UTC)
	ledger := domain.ProjectLedger(start, end,
		[]domain.Transaction{{TransactionID: "inc-1", Kind: domain.KindIncome, Amount: decimal.NewFromInt(1500), EffectiveDate: start, Settled: true}},
		[]domain.Transaction{{TransactionID: "exp-1", Kind: domain.KindExpense, Amount: decimal.NewFromInt(300), EffectiveDate: end}},
		nil, nil)
	s.ledger.On("GetLedger", mock.Anything, testUser, mock.MatchedBy(func(p dto.LedgerParams) bool {
		return p.StartDate != nil && *p.StartDate == "2025-03-01" && p.EndDate != nil && *p.EndDate == "2025-03-31"
	})).Return(&ledger, nil).Once()
	s.ledger.On("GetLedger", mock.Anything, testUser, dto.LedgerParams{}).
		Return(nil, errors.Join(apperrors.ErrValidation, errors.New("startDate must not be after endDate"))).Once()

	w := s.do(http.MethodGet, "/api/v1/ledger?startDate=2025-03-01&endDate=2025-03-31", nil)
	s.Require().Equal(http.StatusOK, w.Code, w.Body.String())
	resp := decodeBody[dto.LedgerResponse](s.T(), w)
	s.Len(resp.Entries, 2)
	s.True(resp.Summary.NetFlow.Equal(decimal.NewFromInt(1200)))
	s.Equal("2025-03-01", resp.Meta.StartDate)
	assert.Equal(s.T(), "inc-1", resp.Entries[0].TransactionID)

	s.Equal(http.StatusBadRequest, s.do(http.MethodGet, "/api/v1/ledger", nil).Code)
	s.Equal(http.StatusBadRequest, s.do(http.MethodGet, "/api/v1/ledger?startDate=March", nil).Code)
}
