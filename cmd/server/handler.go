package main

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/jackc/pgx/v5/pgxpool"
)

type Handler struct {
	db        *pgxpool.Pool
	filestore *filestoreConfig

	fileServer http.Handler
}

func NewHandler(db *pgxpool.Pool, filestore *filestoreConfig) *Handler {
	return &Handler{
		db:         db,
		filestore:  filestore,
		fileServer: http.StripPrefix("/fileserver/", http.FileServer(http.Dir(filestore.Dir))),
	}
}

// FileServer serves uploaded file content from the filestore root.
func (h *Handler) FileServer() http.Handler {
	return h.fileServer
}

func (h *Handler) GetHealth(w http.ResponseWriter, r *http.Request) {
	type response struct {
		Status string `json:"status"`
	}
	h.serveJSON(w, r, response{Status: "ok"})
}

func (h *Handler) serveJSON(w http.ResponseWriter, _ *http.Request, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("response write", "err", err)
	}
}

func (h *Handler) serveClientError(w http.ResponseWriter, _ *http.Request, err error) {
	slog.Warn("client error", "err", err)
	http.Error(w, err.Error(), http.StatusBadRequest)
}

func (h *Handler) serveNotFound(w http.ResponseWriter, _ *http.Request, err error) {
	slog.Warn("not found", "err", err)
	http.Error(w, err.Error(), http.StatusNotFound)
}

func (h *Handler) serveServerError(w http.ResponseWriter, _ *http.Request, err error) {
	slog.Error("server error", "err", err)
	http.Error(w, "internal server error", http.StatusInternalServerError)
}
