package memory

import (
	"context"
	"maps"
	"sync"
	"time"

	"github.com/SscSPs/money_tracker/internal/core/domain"
	portsrepo "github.com/SscSPs/money_tracker/internal/core/ports/repositories"
)

// Store is an in-memory implementation of every repository port.
// It is safe for concurrent use. Data is lost on restart.
//
// A unit of work holds the store-wide lock for its whole duration and works on
// live maps; a snapshot taken at the start is restored if the unit fails.
type Store struct {
	mu             sync.RWMutex
	transactions   map[string]transactionRecord
	accounts       map[string]accountRecord
	counterparties map[string]counterpartyRecord
}

type transactionRecord struct {
	txn       domain.Transaction
	deletedAt *time.Time
}

type accountRecord struct {
	account   domain.BankAccount
	deletedAt *time.Time
}

type counterpartyRecord struct {
	counterparty domain.Counterparty
	deletedAt    *time.Time
}

type snapshot struct {
	transactions   map[string]transactionRecord
	accounts       map[string]accountRecord
	counterparties map[string]counterpartyRecord
}

type txCtxKey struct{}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{
		transactions:   make(map[string]transactionRecord),
		accounts:       make(map[string]accountRecord),
		counterparties: make(map[string]counterpartyRecord),
	}
}

// NewRepositoryProvider exposes the store through the repository ports.
func NewRepositoryProvider(store *Store) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		TransactionRepo:  store,
		BankAccountRepo:  store,
		CounterpartyRepo: store,
		TxManager:        store,
	}
}

var (
	_ portsrepo.TransactionRepositoryFacade  = (*Store)(nil)
	_ portsrepo.BankAccountRepositoryFacade  = (*Store)(nil)
	_ portsrepo.CounterpartyRepositoryFacade = (*Store)(nil)
	_ portsrepo.TransactionManager           = (*Store)(nil)
)

// RunInTx implements portsrepo.TransactionManager.
func (s *Store) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if s.inTx(ctx) {
		return fn(ctx)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	saved := snapshot{
		transactions:   maps.Clone(s.transactions),
		accounts:       maps.Clone(s.accounts),
		counterparties: maps.Clone(s.counterparties),
	}
	if err := fn(context.WithValue(ctx, txCtxKey{}, s)); err != nil {
		s.transactions = saved.transactions
		s.accounts = saved.accounts
		s.counterparties = saved.counterparties
		return err
	}
	return nil
}

func (s *Store) inTx(ctx context.Context) bool {
	owner, _ := ctx.Value(txCtxKey{}).(*Store)
	return owner == s
}

// lock takes the write lock unless ctx already runs inside this store's unit of work.
func (s *Store) lock(ctx context.Context) func() {
	if s.inTx(ctx) {
		return func() {}
	}
	s.mu.Lock()
	return s.mu.Unlock
}

func (s *Store) rlock(ctx context.Context) func() {
	if s.inTx(ctx) {
		return func() {}
	}
	s.mu.RLock()
	return s.mu.RUnlock
}

func cloneString(p *string) *string {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

func cloneTime(p *time.Time) *time.Time {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}
