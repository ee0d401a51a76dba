package api

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/phrazzld/taskhub/internal/domain"
	"github.com/phrazzld/taskhub/internal/service"
)

// Defaults for the list window when the query omits skip or limit.
const (
	DefaultSkip  = 0
	DefaultLimit = 100
)

// getPathID extracts an integer ID from the URL path parameters. Input that
// is not an integer is a bad request; a well-formed ID below 1 can never name
// a task and reports not found.
func getPathID(r *http.Request, paramName string) (int64, error) {
	pathParam := chi.URLParam(r, paramName)
	if pathParam == "" {
		return 0, domain.NewValidationError(paramName, "is required", domain.ErrInvalidID)
	}

	id, err := strconv.ParseInt(pathParam, 10, 64)
	if err != nil {
		return 0, domain.NewValidationError(paramName, "has invalid format", domain.ErrInvalidID)
	}
	if id <= 0 {
		return 0, fmt.Errorf("%w: id %d", service.ErrTaskNotFound, id)
	}

	return id, nil
}

// getQueryInt reads a non-negative integer query parameter, returning def
// when it is absent.
func getQueryInt(r *http.Request, name string, def int) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return def, nil
	}

	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: query parameter %s must be an integer", errBadRequest, name)
	}
	if v < 0 {
		return 0, fmt.Errorf("%w: query parameter %s must not be negative", errBadRequest, name)
	}

	return v, nil
}
