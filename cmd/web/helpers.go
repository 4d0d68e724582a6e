package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/treinapp/treinapp/internal/errors"
	"github.com/treinapp/treinapp/internal/nutrition"
	"github.com/treinapp/treinapp/internal/training"
)

// maxRequestBody bounds JSON request bodies. The largest legitimate payload
// is a full profile, which is tiny.
const maxRequestBody = 1 << 20

func (app *application) serverError(w http.ResponseWriter, r *http.Request, err error) {
	app.logger.LogAttrs(r.Context(), slog.LevelError, "server error", errors.SlogError(err))
	app.writeJSON(w, r, http.StatusInternalServerError, errorResponse{Error: "internal server error"})
}

// handleServiceError maps service failures to API responses. Generation
// aborts caused by unusable parameters are the caller's problem, missing
// documents are 404, everything else is a server error.
func (app *application) handleServiceError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, training.ErrInvalidParams):
		app.writeJSON(w, r, http.StatusUnprocessableEntity, errorResponse{Error: "could not build your plan"})
	case errors.Is(err, training.ErrNotFound), errors.Is(err, nutrition.ErrNotFound):
		app.writeJSON(w, r, http.StatusNotFound, errorResponse{Error: "not found"})
	default:
		app.serverError(w, r, err)
	}
}

func (app *application) badRequest(w http.ResponseWriter, r *http.Request, message string) {
	app.writeJSON(w, r, http.StatusBadRequest, errorResponse{Error: message})
}

type errorResponse struct {
	Error string `json:"error"`
}

func (app *application) writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		app.logger.LogAttrs(r.Context(), slog.LevelError, "encode response", slog.Any("error", err))
	}
}

func decodeJSON(r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(nil, r.Body, maxRequestBody)
	decoder := json.NewDecoder(r.Body)
	if err := decoder.Decode(dst); err != nil {
		return fmt.Errorf("decode request body: %w", err)
	}
	return nil
}

// splitOrigins parses a comma-separated origin list into its entries.
func splitOrigins(origins string) []string {
	var out []string
	for _, origin := range strings.Split(origins, ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			out = append(out, origin)
		}
	}
	return out
}
