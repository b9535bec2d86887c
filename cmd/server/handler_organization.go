package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/google/uuid"

	"github.com/orgvault/orgvault/internal/organization"
)

const pathValueID = "id"

func (h *Handler) ListOrganizations(w http.ResponseWriter, r *http.Request) {
	os, err := organization.List(r.Context(), h.db)
	if err != nil {
		h.serveServerError(w, r, err)
		return
	}

	h.serveJSON(w, r, os)
}

func (h *Handler) GetOrganization(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue(pathValueID))
	if err != nil {
		h.serveClientError(w, r, fmt.Errorf("%s path value: %w", pathValueID, err))
		return
	}

	o, err := organization.Get(r.Context(), h.db, id)
	if err != nil {
		if errors.Is(err, organization.ErrNotFound) {
			h.serveNotFound(w, r, err)
		} else {
			h.serveServerError(w, r, err)
		}
		return
	}

	h.serveJSON(w, r, o)
}

func (h *Handler) CreateOrganization(w http.ResponseWriter, r *http.Request) {
	name, err := nameFromBody(r)
	if err != nil {
		h.serveClientError(w, r, err)
		return
	}

	o, err := organization.Create(r.Context(), h.db, name)
	if err != nil {
		h.serveServerError(w, r, err)
		return
	}

	h.serveJSON(w, r, o)
}

func (h *Handler) UpdateOrganization(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue(pathValueID))
	if err != nil {
		h.serveClientError(w, r, fmt.Errorf("%s path value: %w", pathValueID, err))
		return
	}

	name, err := nameFromBody(r)
	if err != nil {
		h.serveClientError(w, r, err)
		return
	}

	o, err := organization.UpdateName(r.Context(), h.db, id, name)
	if err != nil {
		if errors.Is(err, organization.ErrNotFound) {
			h.serveNotFound(w, r, err)
		} else {
			h.serveServerError(w, r, err)
		}
		return
	}

	h.serveJSON(w, r, o)
}

func (h *Handler) DeleteOrganization(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue(pathValueID))
	if err != nil {
		h.serveClientError(w, r, fmt.Errorf("%s path value: %w", pathValueID, err))
		return
	}

	o, err := organization.Delete(r.Context(), h.db, id)
	if err != nil {
		if errors.Is(err, organization.ErrNotFound) {
			h.serveNotFound(w, r, err)
		} else {
			h.serveServerError(w, r, err)
		}
		return
	}

	h.serveJSON(w, r, o)
}

func nameFromBody(r *http.Request) (string, error) {
	type request struct {
		Name *string `json:"name"`
	}

	var req request
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		return "", fmt.Errorf("request body: %w", err)
	}
	if req.Name == nil {
		return "", errors.New("request body: missing name")
	}

	return *req.Name, nil
}
