package main

import (
	"errors"
	"fmt"
	"io"
	"iter"
	"net/http"

	"github.com/google/uuid"

	"github.com/orgvault/orgvault/internal/file"
	"github.com/orgvault/orgvault/internal/upload"
)

func (h *Handler) ListOrganizationFiles(w http.ResponseWriter, r *http.Request) {
	organizationID, err := uuid.Parse(r.PathValue(pathValueID))
	if err != nil {
		h.serveClientError(w, r, fmt.Errorf("%s path value: %w", pathValueID, err))
		return
	}

	fs, err := file.ListByOrganization(r.Context(), h.db, organizationID)
	if err != nil {
		h.serveServerError(w, r, err)
		return
	}

	h.serveJSON(w, r, fs)
}

func (h *Handler) UploadOrganizationFiles(w http.ResponseWriter, r *http.Request) {
	organizationID, err := uuid.Parse(r.PathValue(pathValueID))
	if err != nil {
		h.serveClientError(w, r, fmt.Errorf("%s path value: %w", pathValueID, err))
		return
	}

	mr, err := r.MultipartReader()
	if err != nil {
		h.serveClientError(w, r, fmt.Errorf("request body: %w", err))
		return
	}

	var parts iter.Seq2[*upload.File, error] = func(yield func(*upload.File, error) bool) {
		for {
			part, err := mr.NextPart()
			if err != nil {
				if errors.Is(err, io.EOF) {
					return
				}
				_ = yield(nil, err)
				return
			}
			if !yield(&upload.File{Name: part.FileName(), Data: part}, nil) {
				return
			}
		}
	}

	creator := &upload.Creator{
		DB:           h.db,
		Dir:          h.filestore.Dir,
		Domain:       h.filestore.Domain,
		FilesAllowed: h.filestore.MaxFiles,
	}
	fs, err := creator.Create(r.Context(), &upload.CreatorCreateParams{
		OrganizationID: organizationID,
		Files:          parts,
	})
	if err != nil {
		if errors.Is(err, file.ErrOrganizationNotFound) {
			h.serveNotFound(w, r, err)
		} else {
			h.serveServerError(w, r, err)
		}
		return
	}

	h.serveJSON(w, r, fs)
}
