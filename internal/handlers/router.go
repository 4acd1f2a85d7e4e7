package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/gorilla/mux"
	"github.com/ukaji3/dutysheet-go/internal/config"
	"github.com/ukaji3/dutysheet-go/internal/store"
	"github.com/ukaji3/dutysheet-go/pkg/dutysheet"
	"github.com/ukaji3/dutysheet-go/pkg/dutysheet/parser"
)

// errInvalidFilename is returned for names that would escape the upload dir.
var errInvalidFilename = errors.New("invalid filename")

// Router wraps the mux router and its collaborators
type Router struct {
	*mux.Router
	cfg     *config.Config
	offsets *store.OffsetStore
	log     *slog.Logger
	now     func() time.Time
}

// NewRouter creates a new HTTP router with all routes
func NewRouter(cfg *config.Config, offsets *store.OffsetStore, log *slog.Logger) *Router {
	if log == nil {
		log = slog.Default()
	}
	r := &Router{
		Router:  mux.NewRouter(),
		cfg:     cfg,
		offsets: offsets,
		log:     log,
		now:     time.Now,
	}
	r.Use(r.logRequests)

	// Health check endpoint
	r.HandleFunc("/health", r.healthCheck).Methods("GET")

	r.HandleFunc("/upload", r.upload).Methods("POST")
	r.HandleFunc("/sheets/{filename}", r.listSheets).Methods("GET")
	r.HandleFunc("/analyze", r.analyze).Methods("POST")
	r.HandleFunc("/preview/{filename}", r.preview).Methods("GET")

	r.HandleFunc("/config", r.getConfig).Methods("GET")
	r.HandleFunc("/config", r.saveConfig).Methods("POST")

	r.HandleFunc("/uploads/{filename}", r.serveUpload).Methods("GET")

	// Static frontend, if configured
	if cfg.FrontendDir != "" {
		r.PathPrefix("/").Handler(http.FileServer(http.Dir(cfg.FrontendDir)))
	}

	return r
}

// healthCheck returns the health status of the API
func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{
		"status": "ok",
	})
}

// uploadPath resolves a stored upload name inside the upload dir.
func (r *Router) uploadPath(name string) (string, error) {
	if name == "" || name != filepath.Base(name) || strings.ContainsAny(name, `/\`) || name == "." || name == ".." {
		return "", errInvalidFilename
	}
	return filepath.Join(r.cfg.UploadDir, name), nil
}

// statusFor maps extraction errors onto HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, dutysheet.ErrFileNotFound),
		errors.Is(err, dutysheet.ErrUnknownProfile),
		errors.Is(err, dutysheet.ErrInvalidOffsets),
		errors.Is(err, dutysheet.ErrUnsupportedFormat),
		errors.Is(err, parser.ErrInvalidRange),
		errors.Is(err, errInvalidFilename):
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

// respondJSON sends a JSON response
func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// respondError sends an error response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{
		"error": message,
	})
}
