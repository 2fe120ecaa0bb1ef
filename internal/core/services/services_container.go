package services

import (
	portsrepo "github.com/SscSPs/money_tracker/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/money_tracker/internal/core/ports/services"
	"github.com/SscSPs/money_tracker/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies.
// Extra options (e.g. a fixed clock in tests) are applied after the config-derived ones.
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider, extra ...ServiceOption) *portssvc.ServiceContainer {
	options := []ServiceOption{
		WithPageSize(cfg.DefaultPageSize),
		WithLedgerWindow(cfg.LedgerWindowDays),
	}
	options = append(options, extra...)

	return &portssvc.ServiceContainer{
		Transaction:  NewTransactionService(repos.TransactionRepo, repos.BankAccountRepo, repos.CounterpartyRepo, repos.TxManager, options...),
		BankAccount:  NewBankAccountService(repos.BankAccountRepo, options...),
		Counterparty: NewCounterpartyService(repos.CounterpartyRepo, repos.TransactionRepo, options...),
		Ledger:       NewLedgerService(repos.TransactionRepo, repos.BankAccountRepo, repos.CounterpartyRepo, options...),
	}
}
