// Package upload implements the bounded multipart ingestion pipeline.
// It streams incoming parts to the local filestore and records their
// metadata in Postgres, at most one part at a time and in stream order.
package upload

import (
	"context"
	"fmt"
	"io"
	"iter"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/orgvault/orgvault/internal/file"
)

// File is one candidate part of a multipart upload.
// Name is the client-supplied filename and may be empty.
type File struct {
	Name string
	Data io.Reader
}

type Creator struct {
	DB     *pgxpool.Pool // required
	Dir    string        // required, filestore root
	Domain string        // required, host used in generated URLs

	FilesAllowed int
}

type CreatorCreateParams struct {
	OrganizationID uuid.UUID
	Files          iter.Seq2[*File, error]
}

// Create consumes parts in stream order until FilesAllowed parts were
// accepted or the stream ends, whichever comes first. A part without a
// filename or without an extension is skipped and does not count against
// FilesAllowed. Every returned record was fully written to the filestore
// and inserted before being included.
//
// A failure while draining one part discards that part and continues with
// the next. A metadata insert failure removes the just-written content from
// the filestore and ends the call; records persisted before it are still
// returned alongside the error.
func (c *Creator) Create(ctx context.Context, params *CreatorCreateParams) ([]*file.File, error) {
	orgDir := filepath.Join(c.Dir, params.OrganizationID.String())
	err := os.MkdirAll(orgDir, 0o777)
	if err != nil {
		return nil, fmt.Errorf("upload.Creator: %w", err)
	}

	files := make([]*file.File, 0)
	for f, err := range params.Files {
		if len(files) >= c.FilesAllowed {
			break
		}
		if err != nil {
			return files, fmt.Errorf("upload.Creator: %w", err)
		}

		ext := extension(f.Name)
		if ext == "" {
			continue
		}

		id := uuid.New()
		contentName := filepath.Join(orgDir, id.String()+"."+ext)

		err = writeFile(contentName, f.Data)
		if err != nil {
			slog.Warn("discarding upload part", "part", f.Name, "err", err)
			continue
		}

		created, err := file.Create(ctx, c.DB, &file.CreateParams{
			ID:             id,
			Name:           f.Name,
			URL:            FileURL(c.Domain, params.OrganizationID, id, ext),
			OrganizationID: params.OrganizationID,
		})
		if err != nil {
			if removeErr := os.Remove(contentName); removeErr != nil {
				slog.Error("orphaned file content left on filestore", "name", contentName, "err", removeErr)
			}
			return files, fmt.Errorf("upload.Creator: %w", err)
		}

		files = append(files, created)
	}

	return files, nil
}

// FileURL is a pure function of its four inputs.
// The fileserver prefix matches the static route serving the filestore root.
func FileURL(domain string, organizationID, fileID uuid.UUID, ext string) string {
	return fmt.Sprintf("http://%s/fileserver/%s/%s.%s", domain, organizationID, fileID, ext)
}

// extension returns the substring after the last dot, or "" when the name
// has no dot or ends with one.
func extension(name string) string {
	i := strings.LastIndex(name, ".")
	if i < 0 {
		return ""
	}
	return name[i+1:]
}

func writeFile(name string, data io.Reader) error {
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	_, err = io.Copy(f, data)
	if closeErr := f.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		// A partial write must never become visible through the fileserver.
		_ = os.Remove(name)
		return err
	}
	return nil
}
