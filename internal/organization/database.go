package organization

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// executor is satisfied by *pgxpool.Pool and pgx.Tx.
type executor interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

func Create(ctx context.Context, db executor, name string) (*Organization, error) {
	query := `
		INSERT INTO organizations (name)
		VALUES ($1)
		RETURNING id, name, created_at
	`
	args := []any{name}

	rows, _ := db.Query(ctx, query, args...)
	o, err := pgx.CollectExactlyOneRow(rows, rowToOrganization)
	if err != nil {
		return nil, fmt.Errorf("create organization: %w", err)
	}

	return o, nil
}

func Get(ctx context.Context, db executor, id uuid.UUID) (*Organization, error) {
	query := `
		SELECT id, name, created_at
		FROM organizations
		WHERE id = $1
	`
	args := []any{id}

	rows, _ := db.Query(ctx, query, args...)
	o, err := pgx.CollectExactlyOneRow(rows, rowToOrganization)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	} else if err != nil {
		return nil, fmt.Errorf("get organization: %w", err)
	}

	return o, nil
}

func List(ctx context.Context, db executor) ([]*Organization, error) {
	query := `
		SELECT id, name, created_at
		FROM organizations
		ORDER BY created_at, id
	`

	rows, _ := db.Query(ctx, query)
	os, err := pgx.CollectRows(rows, rowToOrganization)
	if err != nil {
		return nil, fmt.Errorf("list organizations: %w", err)
	}

	return os, nil
}

func UpdateName(ctx context.Context, db executor, id uuid.UUID, name string) (*Organization, error) {
	query := `
		UPDATE organizations
		SET name = $1
		WHERE id = $2
		RETURNING id, name, created_at
	`
	args := []any{name, id}

	rows, _ := db.Query(ctx, query, args...)
	o, err := pgx.CollectExactlyOneRow(rows, rowToOrganization)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	} else if err != nil {
		return nil, fmt.Errorf("update organization: %w", err)
	}

	return o, nil
}

func Delete(ctx context.Context, db executor, id uuid.UUID) (*Organization, error) {
	query := `
		DELETE FROM organizations
		WHERE id = $1
		RETURNING id, name, created_at
	`
	args := []any{id}

	rows, _ := db.Query(ctx, query, args...)
	o, err := pgx.CollectExactlyOneRow(rows, rowToOrganization)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	} else if err != nil {
		return nil, fmt.Errorf("delete organization: %w", err)
	}

	return o, nil
}

func rowToOrganization(collectableRow pgx.CollectableRow) (*Organization, error) {
	type row struct {
		ID        uuid.UUID `db:"id"`
		Name      string    `db:"name"`
		CreatedAt time.Time `db:"created_at"`
	}
	collectedRow, err := pgx.RowToStructByName[row](collectableRow)
	if err != nil {
		return nil, err
	}

	o := &Organization{
		ID:        collectedRow.ID,
		Name:      collectedRow.Name,
		CreatedAt: collectedRow.CreatedAt,
	}
	return o, nil
}
