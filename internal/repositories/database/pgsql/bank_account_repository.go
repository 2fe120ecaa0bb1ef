package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/SscSPs/money_tracker/internal/apperrors"
	"github.com/SscSPs/money_tracker/internal/core/domain"
	portsrepo "github.com/SscSPs/money_tracker/internal/core/ports/repositories"
	"github.com/SscSPs/money_tracker/internal/models"
	"github.com/SscSPs/money_tracker/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

const bankAccountColumns = `bank_account_id, owner_id, name, account_number, balance, created_at, created_by, last_updated_at, last_updated_by`

type PgxBankAccountRepository struct {
	*BaseRepository
}

func newPgxBankAccountRepository(base *BaseRepository) portsrepo.BankAccountRepositoryFacade {
	return &PgxBankAccountRepository{BaseRepository: base}
}

var _ portsrepo.BankAccountRepositoryFacade = (*PgxBankAccountRepository)(nil)

func scanBankAccount(row pgx.Row) (models.BankAccount, error) {
	var m models.BankAccount
	err := row.Scan(&m.BankAccountID, &m.OwnerID, &m.Name, &m.AccountNumber, &m.Balance,
		&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy)
	return m, err
}

func (r *PgxBankAccountRepository) SaveBankAccount(ctx context.Context, account domain.BankAccount) error {
	m := mapping.ToModelBankAccount(account)

	query := `INSERT INTO bank_accounts (` + bankAccountColumns + `) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.db(ctx).Exec(ctx, query,
		m.BankAccountID, m.OwnerID, m.Name, m.AccountNumber, m.Balance,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: bank account with ID %s already exists", apperrors.ErrDuplicate, m.BankAccountID)
		}
		return fmt.Errorf("failed to save bank account %s: %w", m.BankAccountID, err)
	}
	return nil
}

func (r *PgxBankAccountRepository) FindBankAccountByID(ctx context.Context, bankAccountID string) (*domain.BankAccount, error) {
	query := `SELECT ` + bankAccountColumns + ` FROM bank_accounts WHERE bank_account_id = $1 AND deleted_at IS NULL`

	m, err := scanBankAccount(r.db(ctx).QueryRow(ctx, query, bankAccountID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("bank account " + bankAccountID)
		}
		return nil, fmt.Errorf("failed to find bank account %s: %w", bankAccountID, err)
	}
	account := mapping.ToDomainBankAccount(m)
	return &account, nil
}

func (r *PgxBankAccountRepository) FindBankAccountsByIDs(ctx context.Context, bankAccountIDs []string) (map[string]domain.BankAccount, error) {
	result := make(map[string]domain.BankAccount, len(bankAccountIDs))
	if len(bankAccountIDs) == 0 {
		return result, nil
	}

	query := `SELECT ` + bankAccountColumns + ` FROM bank_accounts WHERE bank_account_id = ANY($1) AND deleted_at IS NULL`
	rows, err := r.db(ctx).Query(ctx, query, bankAccountIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to query bank accounts by IDs: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		m, err := scanBankAccount(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan bank account row: %w", err)
		}
		result[m.BankAccountID] = mapping.ToDomainBankAccount(m)
	}
	return result, rows.Err()
}

func (r *PgxBankAccountRepository) ListBankAccounts(ctx context.Context, ownerID string, limit int, offset int) ([]domain.BankAccount, error) {
	query := `SELECT ` + bankAccountColumns + ` FROM bank_accounts
		WHERE owner_id = $1 AND deleted_at IS NULL
		ORDER BY name, bank_account_id
		LIMIT $2 OFFSET $3`

	rows, err := r.db(ctx).Query(ctx, query, ownerID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list bank accounts for owner %s: %w", ownerID, err)
	}
	defer rows.Close()

	accounts := []domain.BankAccount{}
	for rows.Next() {
		m, err := scanBankAccount(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan bank account row: %w", err)
		}
		accounts = append(accounts, mapping.ToDomainBankAccount(m))
	}
	return accounts, rows.Err()
}

func (r *PgxBankAccountRepository) UpdateBankAccount(ctx context.Context, account domain.BankAccount) error {
	tag, err := r.db(ctx).Exec(ctx, `
		UPDATE bank_accounts SET name = $2, account_number = $3, last_updated_at = $4, last_updated_by = $5
		WHERE bank_account_id = $1 AND deleted_at IS NULL`,
		account.BankAccountID, account.Name, account.AccountNumber, account.LastUpdatedAt, account.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update bank account %s: %w", account.BankAccountID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("bank account " + account.BankAccountID)
	}
	return nil
}

func (r *PgxBankAccountRepository) DeleteBankAccount(ctx context.Context, bankAccountID string, userID string, now time.Time) error {
	tag, err := r.db(ctx).Exec(ctx, `
		UPDATE bank_accounts SET deleted_at = $2, last_updated_at = $2, last_updated_by = $3
		WHERE bank_account_id = $1 AND deleted_at IS NULL`,
		bankAccountID, now, userID,
	)
	if err != nil {
		return fmt.Errorf("failed to delete bank account %s: %w", bankAccountID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("bank account " + bankAccountID)
	}
	return nil
}

// MutateBalance applies the delta atomically in the database.
func (r *PgxBankAccountRepository) MutateBalance(ctx context.Context, bankAccountID string, delta decimal.Decimal, userID string, now time.Time) error {
	tag, err := r.db(ctx).Exec(ctx, `
		UPDATE bank_accounts SET balance = balance + $2, last_updated_at = $3, last_updated_by = $4
		WHERE bank_account_id = $1 AND deleted_at IS NULL`,
		bankAccountID, delta, now, userID,
	)
	if err != nil {
		return fmt.Errorf("failed to update balance for bank account %s: %w", bankAccountID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("bank account " + bankAccountID)
	}
	return nil
}
