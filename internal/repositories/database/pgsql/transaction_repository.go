package pgsql

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/SscSPs/money_tracker/internal/apperrors"
	"github.com/SscSPs/money_tracker/internal/core/domain"
	portsrepo "github.com/SscSPs/money_tracker/internal/core/ports/repositories"
	"github.com/SscSPs/money_tracker/internal/models"
	"github.com/SscSPs/money_tracker/internal/utils/mapping"
	"github.com/SscSPs/money_tracker/internal/utils/pagination"
	"github.com/jackc/pgx/v5"
)

const transactionColumns = `transaction_id, owner_id, kind, counterparty_id, bank_account_id, amount, effective_date,
	is_settled, settlement_date, recurrence_type, recurrence_day, recur_until, recurring_group_id, remarks,
	created_at, created_by, last_updated_at, last_updated_by`

type PgxTransactionRepository struct {
	*BaseRepository
}

func newPgxTransactionRepository(base *BaseRepository) portsrepo.TransactionRepositoryFacade {
	return &PgxTransactionRepository{BaseRepository: base}
}

var _ portsrepo.TransactionRepositoryFacade = (*PgxTransactionRepository)(nil)

// likeEscaper makes user input literal inside a LIKE pattern.
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func scanTransaction(row pgx.Row) (models.Transaction, error) {
	var m models.Transaction
	err := row.Scan(
		&m.TransactionID, &m.OwnerID, &m.Kind, &m.CounterpartyID, &m.BankAccountID, &m.Amount, &m.EffectiveDate,
		&m.IsSettled, &m.SettlementDate, &m.RecurrenceType, &m.RecurrenceDay, &m.RecurUntil, &m.RecurringGroupID, &m.Remarks,
		&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
	)
	return m, err
}

func collectTransactions(rows pgx.Rows) ([]domain.Transaction, error) {
	defer rows.Close()

	var out []models.Transaction
	for rows.Next() {
		m, err := scanTransaction(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan transaction row: %w", err)
		}
		out = append(out, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating transaction rows: %w", err)
	}
	return mapping.ToDomainTransactionSlice(out), nil
}

// SaveTransaction upserts on transaction_id. Owner, kind and creation audit are never rewritten,
// and the conflict branch only fires while the stored row is still pending.
func (r *PgxTransactionRepository) SaveTransaction(ctx context.Context, txn domain.Transaction) error {
	m := mapping.ToModelTransaction(txn)

	query := `
		INSERT INTO transactions (` + transactionColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)
		ON CONFLICT (transaction_id) DO UPDATE SET
			counterparty_id = EXCLUDED.counterparty_id,
			bank_account_id = EXCLUDED.bank_account_id,
			amount = EXCLUDED.amount,
			effective_date = EXCLUDED.effective_date,
			is_settled = EXCLUDED.is_settled,
			settlement_date = EXCLUDED.settlement_date,
			recurrence_type = EXCLUDED.recurrence_type,
			recurrence_day = EXCLUDED.recurrence_day,
			recur_until = EXCLUDED.recur_until,
			recurring_group_id = EXCLUDED.recurring_group_id,
			remarks = EXCLUDED.remarks,
			last_updated_at = EXCLUDED.last_updated_at,
			last_updated_by = EXCLUDED.last_updated_by
		WHERE transactions.is_settled = FALSE;
	`
	tag, err := r.db(ctx).Exec(ctx, query,
		m.TransactionID, m.OwnerID, m.Kind, m.CounterpartyID, m.BankAccountID, m.Amount, m.EffectiveDate,
		m.IsSettled, m.SettlementDate, m.RecurrenceType, m.RecurrenceDay, m.RecurUntil, m.RecurringGroupID, m.Remarks,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save transaction %s: %w", m.TransactionID, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: transaction %s is already settled", apperrors.ErrImmutable, m.TransactionID)
	}
	return nil
}

func (r *PgxTransactionRepository) FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	return r.findOne(ctx, transactionID, "")
}

func (r *PgxTransactionRepository) FindTransactionByIDForUpdate(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	return r.findOne(ctx, transactionID, " FOR UPDATE")
}

func (r *PgxTransactionRepository) findOne(ctx context.Context, transactionID string, lockClause string) (*domain.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE transaction_id = $1 AND deleted_at IS NULL` + lockClause

	m, err := scanTransaction(r.db(ctx).QueryRow(ctx, query, transactionID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("transaction " + transactionID)
		}
		return nil, fmt.Errorf("failed to find transaction %s: %w", transactionID, err)
	}
	txn := mapping.ToDomainTransaction(m)
	return &txn, nil
}

// FindTransactionsByGroupFromForUpdate locks rows in (effective_date, transaction_id) order so
// concurrent cascades over one group acquire locks in the same sequence.
func (r *PgxTransactionRepository) FindTransactionsByGroupFromForUpdate(ctx context.Context, groupID string, from time.Time) ([]domain.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions
		WHERE recurring_group_id = $1 AND effective_date >= $2 AND deleted_at IS NULL
		ORDER BY effective_date, transaction_id
		FOR UPDATE`

	rows, err := r.db(ctx).Query(ctx, query, groupID, from)
	if err != nil {
		return nil, fmt.Errorf("failed to query recurrence group %s: %w", groupID, err)
	}
	return collectTransactions(rows)
}

func (r *PgxTransactionRepository) FindTransactionsByOwnerAndDateRange(ctx context.Context, ownerID string, kind domain.TransactionKind, start, end time.Time) ([]domain.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions
		WHERE owner_id = $1 AND kind = $2 AND deleted_at IS NULL
			AND COALESCE(settlement_date, effective_date) BETWEEN $3 AND $4
		ORDER BY COALESCE(settlement_date, effective_date), created_at, transaction_id`

	rows, err := r.db(ctx).Query(ctx, query, ownerID, string(kind), start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to query %s transactions for owner %s: %w", kind, ownerID, err)
	}
	return collectTransactions(rows)
}

// ListTransactions fetches one row past the limit to decide whether another page exists.
func (r *PgxTransactionRepository) ListTransactions(ctx context.Context, ownerID string, filter domain.TransactionFilter, limit int, nextToken *string) ([]domain.Transaction, *string, error) {
	if limit <= 0 {
		limit = 20
	}

	conds := []string{"owner_id = $1", "deleted_at IS NULL"}
	args := []any{ownerID}
	add := func(cond string, arg any) {
		args = append(args, arg)
		conds = append(conds, fmt.Sprintf(cond, len(args)))
	}

	if filter.Kind != "" {
		add("kind = $%d", string(filter.Kind))
	}
	if filter.BankAccountID != nil {
		add("bank_account_id = $%d", *filter.BankAccountID)
	}
	if filter.CounterpartyID != nil {
		add("counterparty_id = $%d", *filter.CounterpartyID)
	}
	if filter.Settled != nil {
		add("is_settled = $%d", *filter.Settled)
	}
	if filter.From != nil {
		add("effective_date >= $%d", *filter.From)
	}
	if filter.To != nil {
		add("effective_date <= $%d", *filter.To)
	}
	if filter.Search != nil {
		add(`remarks ILIKE $%d ESCAPE '\'`, "%"+likeEscaper.Replace(*filter.Search)+"%")
	}
	if filter.Recurring != nil {
		if *filter.Recurring {
			conds = append(conds, "recurring_group_id IS NOT NULL")
		} else {
			conds = append(conds, "recurring_group_id IS NULL")
		}
	}
	if nextToken != nil && *nextToken != "" {
		cursorDate, cursorID, err := pagination.DecodeToken(*nextToken)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: invalid nextToken: %v", apperrors.ErrValidation, err)
		}
		args = append(args, cursorDate, cursorID)
		conds = append(conds, fmt.Sprintf("(effective_date, transaction_id) < ($%d, $%d)", len(args)-1, len(args)))
	}
	args = append(args, limit+1)

	query := fmt.Sprintf(`SELECT %s FROM transactions WHERE %s
		ORDER BY effective_date DESC, transaction_id DESC
		LIMIT $%d`, transactionColumns, strings.Join(conds, " AND "), len(args))

	rows, err := r.db(ctx).Query(ctx, query, args...)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list transactions for owner %s: %w", ownerID, err)
	}
	txns, err := collectTransactions(rows)
	if err != nil {
		return nil, nil, err
	}

	if len(txns) <= limit {
		return txns, nil, nil
	}
	last := txns[limit-1]
	token := pagination.EncodeToken(last.EffectiveDate, last.TransactionID)
	return txns[:limit], &token, nil
}

func (r *PgxTransactionRepository) CountTransactionsByCounterparty(ctx context.Context, counterpartyID string) (int, error) {
	var count int
	err := r.db(ctx).QueryRow(ctx,
		`SELECT COUNT(*) FROM transactions WHERE counterparty_id = $1 AND deleted_at IS NULL`,
		counterpartyID,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count transactions for counterparty %s: %w", counterpartyID, err)
	}
	return count, nil
}

func (r *PgxTransactionRepository) DeleteTransaction(ctx context.Context, transactionID string, userID string, now time.Time) error {
	tag, err := r.db(ctx).Exec(ctx, `
		UPDATE transactions SET deleted_at = $2, last_updated_at = $2, last_updated_by = $3
		WHERE transaction_id = $1 AND deleted_at IS NULL AND is_settled = FALSE`,
		transactionID, now, userID,
	)
	if err != nil {
		return fmt.Errorf("failed to delete transaction %s: %w", transactionID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("pending transaction " + transactionID)
	}
	return nil
}
