package file

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/orgvault/orgvault/internal/organization"
	"github.com/orgvault/orgvault/internal/pgtest"
	"github.com/orgvault/orgvault/internal/pgutil"
)

func NewTestPool(tb testing.TB, ctx context.Context) *pgxpool.Pool {
	tb.Helper()

	connectionString, teardown, err := pgtest.Setup(ctx)
	if err != nil {
		tb.Fatalf("didn't want %q", err)
	}
	tb.Cleanup(func() {
		if teardownErr := teardown(); teardownErr != nil {
			tb.Errorf("didn't want %q", teardownErr)
		}
	})

	pool, err := pgutil.NewPool(ctx, connectionString)
	if err != nil {
		tb.Fatalf("didn't want %q", err)
	}
	tb.Cleanup(pool.Close)

	return pool
}

func TestDatabase(t *testing.T) {
	t.Run("creates and lists files for an organization", func(t *testing.T) {
		ctx := context.Background()
		db := NewTestPool(t, ctx)

		o, err := organization.Create(ctx, db, "acme")
		if err != nil {
			t.Fatalf("didn't want %q", err)
		}

		f1, err := Create(ctx, db, &CreateParams{
			ID:             uuid.New(),
			Name:           "a.png",
			URL:            "http://localhost:8080/fileserver/" + o.ID.String() + "/a.png",
			OrganizationID: o.ID,
		})
		if err != nil {
			t.Fatalf("didn't want %q", err)
		}
		f2, err := Create(ctx, db, &CreateParams{
			ID:             uuid.New(),
			Name:           "b.jpg",
			URL:            "http://localhost:8080/fileserver/" + o.ID.String() + "/b.jpg",
			OrganizationID: o.ID,
		})
		if err != nil {
			t.Fatalf("didn't want %q", err)
		}

		got, err := ListByOrganization(ctx, db, o.ID)
		if err != nil {
			t.Fatalf("didn't want %q", err)
		}
		if want := []*File{f1, f2}; !reflect.DeepEqual(got, want) {
			t.Fatalf("got %v, want %v", got, want)
		}
	})

	t.Run("doesn't list another organization's files", func(t *testing.T) {
		ctx := context.Background()
		db := NewTestPool(t, ctx)

		o1, err := organization.Create(ctx, db, "acme")
		if err != nil {
			t.Fatalf("didn't want %q", err)
		}
		o2, err := organization.Create(ctx, db, "globex")
		if err != nil {
			t.Fatalf("didn't want %q", err)
		}

		_, err = Create(ctx, db, &CreateParams{
			ID:             uuid.New(),
			Name:           "a.png",
			URL:            "http://localhost:8080/fileserver/" + o1.ID.String() + "/a.png",
			OrganizationID: o1.ID,
		})
		if err != nil {
			t.Fatalf("didn't want %q", err)
		}

		got, err := ListByOrganization(ctx, db, o2.ID)
		if err != nil {
			t.Fatalf("didn't want %q", err)
		}
		if len(got) != 0 {
			t.Fatalf("got %v, want no files", got)
		}
	})

	t.Run("doesn't create a file for an unknown organization", func(t *testing.T) {
		ctx := context.Background()
		db := NewTestPool(t, ctx)

		_, err := Create(ctx, db, &CreateParams{
			ID:             uuid.New(),
			Name:           "a.png",
			URL:            "http://localhost:8080/fileserver/unknown/a.png",
			OrganizationID: uuid.MustParse("cccccccc-0000-0000-0000-000000000000"),
		})
		if got, want := err, ErrOrganizationNotFound; !errors.Is(got, want) {
			t.Fatalf("got %q, want %q", got, want)
		}
	})

	t.Run("deletes files with their organization", func(t *testing.T) {
		ctx := context.Background()
		db := NewTestPool(t, ctx)

		o, err := organization.Create(ctx, db, "acme")
		if err != nil {
			t.Fatalf("didn't want %q", err)
		}
		_, err = Create(ctx, db, &CreateParams{
			ID:             uuid.New(),
			Name:           "a.png",
			URL:            "http://localhost:8080/fileserver/" + o.ID.String() + "/a.png",
			OrganizationID: o.ID,
		})
		if err != nil {
			t.Fatalf("didn't want %q", err)
		}

		_, err = organization.Delete(ctx, db, o.ID)
		if err != nil {
			t.Fatalf("didn't want %q", err)
		}

		got, err := ListByOrganization(ctx, db, o.ID)
		if err != nil {
			t.Fatalf("didn't want %q", err)
		}
		if len(got) != 0 {
			t.Fatalf("got %v, want no files", got)
		}
	})
}
