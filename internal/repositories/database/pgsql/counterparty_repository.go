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
)

const counterpartyColumns = `counterparty_id, owner_id, kind, name, description, created_at, created_by, last_updated_at, last_updated_by`

type PgxCounterpartyRepository struct {
	*BaseRepository
}

func newPgxCounterpartyRepository(base *BaseRepository) portsrepo.CounterpartyRepositoryFacade {
	return &PgxCounterpartyRepository{BaseRepository: base}
}

var _ portsrepo.CounterpartyRepositoryFacade = (*PgxCounterpartyRepository)(nil)

func scanCounterparty(row pgx.Row) (models.Counterparty, error) {
	var m models.Counterparty
	err := row.Scan(&m.CounterpartyID, &m.OwnerID, &m.Kind, &m.Name, &m.Description,
		&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy)
	return m, err
}

func (r *PgxCounterpartyRepository) collect(rows pgx.Rows) ([]domain.Counterparty, error) {
	defer rows.Close()

	out := []domain.Counterparty{}
	for rows.Next() {
		m, err := scanCounterparty(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan counterparty row: %w", err)
		}
		out = append(out, mapping.ToDomainCounterparty(m))
	}
	return out, rows.Err()
}

// SaveCounterparty relies on the partial unique index over (owner_id, kind, lower(name)).
func (r *PgxCounterpartyRepository) SaveCounterparty(ctx context.Context, counterparty domain.Counterparty) error {
	m := mapping.ToModelCounterparty(counterparty)

	query := `INSERT INTO counterparties (` + counterpartyColumns + `) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.db(ctx).Exec(ctx, query,
		m.CounterpartyID, m.OwnerID, m.Kind, m.Name, m.Description,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: %q already exists", apperrors.ErrDuplicate, m.Name)
		}
		return fmt.Errorf("failed to save counterparty %s: %w", m.CounterpartyID, err)
	}
	return nil
}

func (r *PgxCounterpartyRepository) FindCounterpartyByID(ctx context.Context, counterpartyID string) (*domain.Counterparty, error) {
	query := `SELECT ` + counterpartyColumns + ` FROM counterparties WHERE counterparty_id = $1 AND deleted_at IS NULL`

	m, err := scanCounterparty(r.db(ctx).QueryRow(ctx, query, counterpartyID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("counterparty " + counterpartyID)
		}
		return nil, fmt.Errorf("failed to find counterparty %s: %w", counterpartyID, err)
	}
	c := mapping.ToDomainCounterparty(m)
	return &c, nil
}

func (r *PgxCounterpartyRepository) FindCounterpartiesByIDs(ctx context.Context, counterpartyIDs []string) (map[string]domain.Counterparty, error) {
	result := make(map[string]domain.Counterparty, len(counterpartyIDs))
	if len(counterpartyIDs) == 0 {
		return result, nil
	}

	query := `SELECT ` + counterpartyColumns + ` FROM counterparties WHERE counterparty_id = ANY($1) AND deleted_at IS NULL`
	rows, err := r.db(ctx).Query(ctx, query, counterpartyIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to query counterparties by IDs: %w", err)
	}
	found, err := r.collect(rows)
	if err != nil {
		return nil, err
	}
	for _, c := range found {
		result[c.CounterpartyID] = c
	}
	return result, nil
}

func (r *PgxCounterpartyRepository) ListCounterparties(ctx context.Context, ownerID string, kind domain.TransactionKind) ([]domain.Counterparty, error) {
	query := `SELECT ` + counterpartyColumns + ` FROM counterparties
		WHERE owner_id = $1 AND kind = $2 AND deleted_at IS NULL
		ORDER BY lower(name), counterparty_id`

	rows, err := r.db(ctx).Query(ctx, query, ownerID, string(kind))
	if err != nil {
		return nil, fmt.Errorf("failed to list counterparties for owner %s: %w", ownerID, err)
	}
	return r.collect(rows)
}

func (r *PgxCounterpartyRepository) UpdateCounterparty(ctx context.Context, counterparty domain.Counterparty) error {
	tag, err := r.db(ctx).Exec(ctx, `
		UPDATE counterparties SET name = $2, description = $3, last_updated_at = $4, last_updated_by = $5
		WHERE counterparty_id = $1 AND deleted_at IS NULL`,
		counterparty.CounterpartyID, counterparty.Name, counterparty.Description,
		counterparty.LastUpdatedAt, counterparty.LastUpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: %q already exists", apperrors.ErrDuplicate, counterparty.Name)
		}
		return fmt.Errorf("failed to update counterparty %s: %w", counterparty.CounterpartyID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("counterparty " + counterparty.CounterpartyID)
	}
	return nil
}

func (r *PgxCounterpartyRepository) DeleteCounterparty(ctx context.Context, counterpartyID string, userID string, now time.Time) error {
	tag, err := r.db(ctx).Exec(ctx, `
		UPDATE counterparties SET deleted_at = $2, last_updated_at = $2, last_updated_by = $3
		WHERE counterparty_id = $1 AND deleted_at IS NULL`,
		counterpartyID, now, userID,
	)
	if err != nil {
		return fmt.Errorf("failed to delete counterparty %s: %w", counterpartyID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("counterparty " + counterpartyID)
	}
	return nil
}
