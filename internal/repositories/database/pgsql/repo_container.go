package pgsql

import (
	portsrepo "github.com/SscSPs/money_tracker/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// NewRepositoryProvider wires every repository to one pool. They share a
// BaseRepository so a unit of work started by TxManager is visible to all of them.
func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	base := &BaseRepository{Pool: dbPool}

	return portsrepo.RepositoryProvider{
		TransactionRepo:  newPgxTransactionRepository(base),
		BankAccountRepo:  newPgxBankAccountRepository(base),
		CounterpartyRepo: newPgxCounterpartyRepository(base),
		TxManager:        base,
	}
}
