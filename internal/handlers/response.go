package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/sbilibin2017/library-service/internal/logger"
	"github.com/sbilibin2017/library-service/internal/models"
)

var (
	errInvalidBody = errors.New("Invalid request body")
	errInvalidID   = errors.New("Invalid id")
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// writeError renders err as an ErrorResponse. Validation failures and
// conflicts are 400, missing entities 404; anything else is logged and
// rendered as a generic 500.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromContext(r.Context())

	var ve *models.ValidationError
	switch {
	case errors.As(err, &ve):
		log.Warnw("validation failed", "fields", ve.FieldNames(), "error", err)
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: ve.Error(), Fields: ve.FieldNames()})
	case errors.Is(err, models.ErrNotFound):
		writeJSON(w, http.StatusNotFound, models.ErrorResponse{Error: err.Error()})
	case errors.Is(err, models.ErrConflict):
		log.Warnw("request rejected", "error", err)
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: err.Error()})
	case errors.Is(err, errInvalidBody), errors.Is(err, errInvalidID):
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: err.Error()})
	default:
		log.Errorw("request failed", "method", r.Method, "uri", r.RequestURI, "error", err)
		writeJSON(w, http.StatusInternalServerError, models.ErrorResponse{Error: "Internal server error"})
	}
}

// decodeJSON decodes the request body into dst.
func decodeJSON(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		logger.FromContext(r.Context()).Warnw("failed to decode request body", "error", err)
		return errInvalidBody
	}
	return nil
}

// pathID parses the {id} URL parameter.
func pathID(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, errInvalidID
	}
	return id, nil
}

// queryInt64 parses an optional integer query parameter.
func queryInt64(r *http.Request, key string) (*int64, error) {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return nil, invalidQuery(key)
	}
	return &v, nil
}

// queryBool parses an optional boolean query parameter.
func queryBool(r *http.Request, key string) (*bool, error) {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return nil, invalidQuery(key)
	}
	return &v, nil
}

func invalidQuery(key string) error {
	return &models.ValidationError{Fields: []models.FieldError{{
		Field:   key,
		Reason:  models.ReasonFormat,
		Message: "invalid query parameter " + key,
	}}}
}
