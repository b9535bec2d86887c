package main

import (
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/cors"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	_ "github.com/orgvault/orgvault/docs"
)

// NewServer returns a new HTTP server.
// It should be started with http.Server's ListenAndServe.
func NewServer(db *pgxpool.Pool, cfg *config) *http.Server {
	addr := net.JoinHostPort(cfg.Server.host(), strconv.Itoa(cfg.Server.port()))

	subLogger := slog.Default().With("component", "server")
	subLogLogger := slog.NewLogLogger(subLogger.Handler(), slog.LevelError)

	h := NewHandler(db, &cfg.Filestore)

	mux := &http.ServeMux{}
	mux.HandleFunc("GET /health", h.GetHealth)
	mux.HandleFunc("GET /organizations", h.ListOrganizations)
	mux.HandleFunc("POST /organizations", h.CreateOrganization)
	mux.HandleFunc("GET /organizations/{id}", h.GetOrganization)
	mux.HandleFunc("PUT /organizations/{id}", h.UpdateOrganization)
	mux.HandleFunc("DELETE /organizations/{id}", h.DeleteOrganization)
	mux.HandleFunc("GET /organizations/{id}/files", h.ListOrganizationFiles)
	mux.HandleFunc("POST /organizations/{id}/files", h.UploadOrganizationFiles)
	mux.Handle("GET /fileserver/", h.FileServer())
	if cfg.Development {
		mux.Handle("GET /swagger/", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))
	}

	corsMiddleware := cors.New(cors.Options{
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete},
	})

	return &http.Server{
		Addr:              addr,
		ErrorLog:          subLogLogger,
		Handler:           corsMiddleware.Handler(mux),
		ReadHeaderTimeout: cfg.Server.ReadHeaderTimeout,
	}
}
