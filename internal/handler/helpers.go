package handler

import (
	"encoding/json"
	"errors"
	"net"
	"net/http"
	"strconv"

	"multipoles-backend/internal/locale"
	"multipoles-backend/internal/model/requestresponse"
	"multipoles-backend/internal/repository"
	"multipoles-backend/internal/service"
	"multipoles-backend/internal/util"
)

// clientIP strips the port RemoteAddr carries; only the host part is
// persisted as provenance metadata.
func clientIP(r *http.Request) string {
	if host, _, err := net.SplitHostPort(r.RemoteAddr); err == nil && host != "" {
		return host
	}
	return r.RemoteAddr
}

// decodeJSON parses and validates a request body in one step.
func decodeJSON(r *http.Request, dst interface{ Validate() error }) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return &requestresponse.ValidationError{Fields: map[string]string{
			"body": "must be valid JSON",
		}}
	}
	return dst.Validate()
}

// respondError maps service and repository errors onto HTTP statuses.
// Unknown errors become opaque 500s, the detail stays in the log.
func respondError(w http.ResponseWriter, r *http.Request, err error) {
	loc := locale.Pick(r.Header.Get("Accept-Language"))

	var validation *requestresponse.ValidationError
	switch {
	case errors.As(err, &validation):
		util.WriteJSON(w, http.StatusBadRequest, requestresponse.ErrorResponse{
			Error:   http.StatusText(http.StatusBadRequest),
			Message: "validation failed",
			Code:    http.StatusBadRequest,
			Fields:  validation.Fields,
		})
	case errors.Is(err, service.ErrInvalidCredentials):
		util.HandleError(w, locale.T(loc, "auth", "invalidCredentials"), http.StatusUnauthorized)
	case errors.Is(err, service.ErrRefreshInvalid):
		util.HandleError(w, locale.T(loc, "auth", "refreshTokenInvalid"), http.StatusUnauthorized)
	case errors.Is(err, service.ErrEmailTaken):
		util.HandleError(w, "email already in use", http.StatusConflict)
	case errors.Is(err, repository.ErrNotFound):
		util.HandleError(w, http.StatusText(http.StatusNotFound), http.StatusNotFound)
	default:
		util.LogError("unhandled request error", err)
		util.HandleError(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
	}
}

// queryInt reads an integer query parameter, falling back on garbage.
func queryInt(r *http.Request, name string, fallback int) int {
	n, err := strconv.Atoi(r.URL.Query().Get(name))
	if err != nil {
		return fallback
	}
	return n
}

// requestLocale resolves the content language for a request: explicit
// ?locale= wins over the Accept-Language header.
func requestLocale(r *http.Request) string {
	if q := r.URL.Query().Get("locale"); q == locale.French || q == locale.English {
		return q
	}
	return locale.Pick(r.Header.Get("Accept-Language"))
}
