package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/client-portal/engine/internal/api/types"
	appErr "github.com/client-portal/engine/pkg/errors"
)

const maxBodyBytes = 1 << 20

// statusFor maps an error code onto an HTTP status.
func statusFor(err error) int {
	switch appErr.CodeOf(err) {
	case appErr.CodeInvalid:
		return http.StatusBadRequest
	case appErr.CodeNotFound:
		return http.StatusNotFound
	case appErr.CodeUnauthorized:
		return http.StatusUnauthorized
	case appErr.CodeConflict:
		return http.StatusConflict
	case appErr.CodeUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError writes the enveloped error used by the admin and dashboard routes.
func writeError(w http.ResponseWriter, err error) {
	writeJSON(w, statusFor(err), types.APIResponse{Success: false, Error: types.FromAppError(err)})
}

func writeErrorStr(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, types.APIResponse{Success: false, Error: &types.APIError{Code: string(appErr.CodeInvalid), Message: msg}})
}

// writeContractError writes the flat {error, details} body of the integration routes.
func writeContractError(w http.ResponseWriter, status int, msg string, err error) {
	body := types.ContractError{Error: msg}
	var ae *appErr.AppError
	switch {
	case errors.As(err, &ae):
		body.Details = ae.Cause()
		if body.Details == "" {
			body.Details = ae.Message
		}
	case err != nil:
		body.Details = err.Error()
	}
	writeJSON(w, status, body)
}

// decodeJSON reads a bounded JSON body into dst. An empty body leaves dst zero.
func decodeJSON(r *http.Request, dst any) error {
	dec := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes))
	if err := dec.Decode(dst); err != nil && !errors.Is(err, io.EOF) {
		return appErr.Wrap(err, appErr.CodeInvalid, "invalid json")
	}
	return nil
}
