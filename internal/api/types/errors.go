package types

import (
	"errors"

	appErr "github.com/client-portal/engine/pkg/errors"
)

func FromAppError(err error) *APIError {
	if err == nil {
		return nil
	}
	var e *appErr.AppError
	if errors.As(err, &e) {
		return &APIError{Code: string(e.Code), Message: e.Message, Details: e.Cause()}
	}
	return &APIError{Code: string(appErr.CodeUnknown), Message: err.Error()}
}
