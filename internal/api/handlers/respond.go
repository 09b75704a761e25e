package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/dom/nba-hub/internal/domain"
	"github.com/dom/nba-hub/internal/repository"
	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
)

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}

// seasonYearParam parses the {year} route param. ok is false after the 400
// has already been written.
func seasonYearParam(w http.ResponseWriter, r *http.Request) (int, bool) {
	year, err := strconv.Atoi(chi.URLParam(r, "year"))
	if err != nil || year <= 0 {
		writeError(w, http.StatusBadRequest, "invalid season year")
		return 0, false
	}
	return year, true
}

// pageRequest reads the cursor/limit query params shared by listings.
func pageRequest(r *http.Request) repository.PageRequest {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	return repository.PageRequest{
		Cursor: r.URL.Query().Get("cursor"),
		Limit:  limit,
	}
}

// queryStatus maps a query-path error to an HTTP status. Bad cursors are the
// caller's fault; anything else from the read path is the store's.
func queryStatus(err error) int {
	if errors.Is(err, domain.ErrInvalidCursor) {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}
