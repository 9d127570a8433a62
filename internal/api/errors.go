package api

import (
	"errors"
	"log/slog"
	"net/http"

	errorvalues "github.com/limbo/journal/internal/error_values"
	"github.com/limbo/journal/pkg/httputil"
)

// writeServiceError logs err and answers with the status of its kind.
func writeServiceError(w http.ResponseWriter, logger *slog.Logger, op string, err error) {
	switch {
	case errors.Is(err, errorvalues.ErrValidation):
		logger.Error(op+" error: invalid input", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid input", err)
	case errors.Is(err, errorvalues.ErrDuplicateDate):
		logger.Error(op + " error: day already has an entry")
		httputil.WriteErrorResponse(w, http.StatusConflict, "an entry for this day already exists", nil)
	case errors.Is(err, errorvalues.ErrEntryNotFound):
		logger.Error(op + " error: entry not found")
		httputil.WriteErrorResponse(w, http.StatusNotFound, "entry doesn't exist", nil)
	case errors.Is(err, errorvalues.ErrReferenceNotFound):
		logger.Error(op+" error: unknown reference", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "referenced mood, category or tag doesn't exist", nil)
	default:
		logger.Error(op+" error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error", nil)
	}
}

func writeBadParam(w http.ResponseWriter, logger *slog.Logger, op string, err error) {
	logger.Error(op+" error: bad request", slog.String("error", err.Error()))
	httputil.WriteErrorResponse(w, http.StatusBadRequest, err.Error(), nil)
}
