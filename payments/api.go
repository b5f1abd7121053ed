package payments

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-chi/chi/v5"
	goJson "github.com/goccy/go-json"
	"github.com/google/uuid"
	"golang.org/x/exp/slog"
)

const maxBatchBytes = 10 << 20

// API is a HTTP API for submitting batches
type API struct {
	service  *Service
	spoolDir string
	logger   *slog.Logger
}

func NewAPI(logger *slog.Logger, service *Service, spoolDir string) *API {
	return &API{
		service:  service,
		spoolDir: spoolDir,
		logger:   logger,
	}
}

func (a *API) AppendRoutes(r chi.Router) {
	r.Post("/batches", a.submitBatch)
}

// submitBatch spools the request body to disk and runs it as a regular
// batch, so the spooled file ends up archived like any other input.
func (a *API) submitBatch(w http.ResponseWriter, r *http.Request) {
	batchID := uuid.New().String()

	path, err := a.spool(batchID, http.MaxBytesReader(w, r.Body, maxBatchBytes))
	if err != nil {
		a.logger.Error("spooling batch", "batch_id", batchID, "err", err)
		http.Error(w, "could not store batch", http.StatusInternalServerError)
		return
	}

	totals, err := a.service.ProcessFile(r.Context(), path)
	if err != nil {
		// a successful batch leaves nothing at path; anything else is dropped
		os.Remove(path)

		var formatErr *FormatError
		if errors.As(err, &formatErr) {
			http.Error(w, formatErr.Error(), http.StatusBadRequest)
			return
		}
		var parseErr *csv.ParseError
		if errors.As(err, &parseErr) {
			http.Error(w, parseErr.Error(), http.StatusBadRequest)
			return
		}
		a.logger.Error("processing batch", "batch_id", batchID, "err", err)
		http.Error(w, "could not process batch", http.StatusInternalServerError)
		return
	}

	w.Header().Set("X-Batch-ID", batchID)
	if strings.Contains(r.Header.Get("Accept"), "application/json") {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		goJson.NewEncoder(w).Encode(NewTotalsResponse(batchID, totals))
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	io.WriteString(w, RenderReport(totals))
}

func (a *API) spool(batchID string, body io.Reader) (string, error) {
	if err := os.MkdirAll(a.spoolDir, 0o750); err != nil {
		return "", fmt.Errorf("creating spool dir: %w", err)
	}
	path := filepath.Join(a.spoolDir, batchID+".csv")
	f, err := os.OpenFile(path, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o600)
	if err != nil {
		return "", fmt.Errorf("creating spool file: %w", err)
	}
	if _, err := io.Copy(f, body); err != nil {
		f.Close()
		os.Remove(path)
		return "", fmt.Errorf("writing spool file: %w", err)
	}
	if err := f.Close(); err != nil {
		os.Remove(path)
		return "", fmt.Errorf("closing spool file: %w", err)
	}
	return path, nil
}
