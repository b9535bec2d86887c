package file

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// executor is satisfied by *pgxpool.Pool and pgx.Tx.
type executor interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type CreateParams struct {
	ID             uuid.UUID
	Name           string
	URL            string
	OrganizationID uuid.UUID
}

func Create(ctx context.Context, db executor, params *CreateParams) (*File, error) {
	query := `
		INSERT INTO files (id, name, url, organization_id)
		VALUES ($1, $2, $3, $4)
		RETURNING id, name, created_at, url, organization_id
	`
	args := []any{params.ID, params.Name, params.URL, params.OrganizationID}

	rows, _ := db.Query(ctx, query, args...)
	f, err := pgx.CollectExactlyOneRow(rows, rowToFile)
	if err != nil {
		if pgErr := (*pgconn.PgError)(nil); errors.As(err, &pgErr) && pgErr.Code == pgerrcode.ForeignKeyViolation {
			err = ErrOrganizationNotFound
		}
		return nil, fmt.Errorf("create file: %w", err)
	}

	return f, nil
}

func ListByOrganization(ctx context.Context, db executor, organizationID uuid.UUID) ([]*File, error) {
	query := `
		SELECT id, name, created_at, url, organization_id
		FROM files
		WHERE organization_id = $1
		ORDER BY created_at, id
	`
	args := []any{organizationID}

	rows, _ := db.Query(ctx, query, args...)
	fs, err := pgx.CollectRows(rows, rowToFile)
	if err != nil {
		return nil, fmt.Errorf("list files: %w", err)
	}

	return fs, nil
}

func rowToFile(collectableRow pgx.CollectableRow) (*File, error) {
	type row struct {
		ID             uuid.UUID `db:"id"`
		Name           string    `db:"name"`
		CreatedAt      time.Time `db:"created_at"`
		URL            string    `db:"url"`
		OrganizationID uuid.UUID `db:"organization_id"`
	}
	collectedRow, err := pgx.RowToStructByName[row](collectableRow)
	if err != nil {
		return nil, err
	}

	f := &File{
		ID:             collectedRow.ID,
		Name:           collectedRow.Name,
		CreatedAt:      collectedRow.CreatedAt,
		URL:            collectedRow.URL,
		OrganizationID: collectedRow.OrganizationID,
	}
	return f, nil
}
