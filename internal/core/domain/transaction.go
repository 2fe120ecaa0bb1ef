package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionKind distinguishes incomes from expenses. Both share one lifecycle
// and differ only in balance direction, labels, and whether a settlement date is kept.
type TransactionKind string

const (
	KindIncome  TransactionKind = "INCOME"
	KindExpense TransactionKind = "EXPENSE"
)

// Direction is the ledger side a transaction lands on.
type Direction string

const (
	Credit Direction = "CREDIT"
	Debit  Direction = "DEBIT"
)

func (k TransactionKind) Valid() bool {
	return k == KindIncome || k == KindExpense
}

func (k TransactionKind) Direction() Direction {
	if k == KindIncome {
		return Credit
	}
	return Debit
}

// BalanceDelta is the signed change applied to the bank account on settlement.
func (k TransactionKind) BalanceDelta(amount decimal.Decimal) decimal.Decimal {
	if k == KindIncome {
		return amount
	}
	return amount.Neg()
}

// TracksSettlementDate reports whether settlement records its own date.
// Expenses keep a payment date apart from the due date; incomes only flip the flag.
func (k TransactionKind) TracksSettlementDate() bool {
	return k == KindExpense
}

// CounterpartyRequired reports whether a source/category must be supplied.
func (k TransactionKind) CounterpartyRequired() bool {
	return k == KindIncome
}

// Label is the human name used as a description fallback.
func (k TransactionKind) Label() string {
	if k == KindIncome {
		return "Income"
	}
	return "Expense"
}

// Transaction is an income or an expense.
type Transaction struct {
	TransactionID  string          `json:"transactionID"`
	OwnerID        string          `json:"ownerID"`
	Kind           TransactionKind `json:"kind"`
	CounterpartyID *string         `json:"counterpartyID,omitempty"` // source of income or expense category
	BankAccountID  string          `json:"bankAccountID"`
	Amount         decimal.Decimal `json:"amount"`
	EffectiveDate  time.Time       `json:"effectiveDate"` // income date, or expense due date
	Settled        bool            `json:"settled"`
	SettlementDate *time.Time      `json:"settlementDate,omitempty"`
	Recurrence     *Recurrence     `json:"recurrence,omitempty"`
	Remarks        *string         `json:"remarks,omitempty"`
	AuditFields
}

// CanMutate gates edits and deletes: settled transactions are immutable.
func (t *Transaction) CanMutate() bool {
	return !t.Settled
}

// Settle moves a pending transaction to settled and returns the balance delta to apply.
// Settling twice is a no-op: changed is false and the delta is zero.
func (t *Transaction) Settle(at time.Time) (delta decimal.Decimal, changed bool) {
	if t.Settled {
		return decimal.Zero, false
	}
	t.Settled = true
	if t.Kind.TracksSettlementDate() {
		d := DateOf(at)
		t.SettlementDate = &d
	}
	return t.Kind.BalanceDelta(t.Amount), true
}

// DisplayDate is where the transaction surfaces in the ledger.
func (t *Transaction) DisplayDate() time.Time {
	if t.SettlementDate != nil {
		return *t.SettlementDate
	}
	return t.EffectiveDate
}

// GroupID returns the recurrence group, or "" for one-off transactions.
func (t *Transaction) GroupID() string {
	if t.Recurrence == nil {
		return ""
	}
	return t.Recurrence.GroupID
}

// TransactionFilter narrows a transaction listing. Nil fields are ignored.
type TransactionFilter struct {
	Kind           TransactionKind
	BankAccountID  *string
	CounterpartyID *string
	Settled        *bool
	From           *time.Time
	To             *time.Time
	// Search matches remarks case-insensitively.
	Search *string
	// Recurring keeps only series members when true, only one-offs when false.
	Recurring *bool
}
