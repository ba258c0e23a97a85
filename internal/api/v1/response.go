package v1

import (
	"net/http"
	"strings"

	"github.com/danielgtaylor/huma/v2"
)

// Envelope is the uniform success wrapper for every endpoint. Success is
// always true here; failures never carry data and are rendered by apiError.
type Envelope[T any] struct {
	Success bool         `json:"success"`
	Data    T            `json:"data"`
	Error   *ErrorDetail `json:"error"`
}

// ErrorDetail is the machine-readable failure payload.
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func envelope[T any](data T) Envelope[T] {
	return Envelope[T]{Success: true, Data: data}
}

// apiError renders failures in the same envelope shape as successes so SPA
// clients parse one format. It replaces huma's RFC 7807 problem model.
type apiError struct {
	status  int
	Success bool         `json:"success"`
	Data    any          `json:"data"`
	Detail  *ErrorDetail `json:"error"`
}

func (e *apiError) Error() string  { return e.Detail.Message }
func (e *apiError) GetStatus() int { return e.status }

func codeForStatus(status int) string {
	switch status {
	case http.StatusBadRequest:
		return "VALIDATION_ERROR"
	case http.StatusUnauthorized:
		return "AUTH_REQUIRED"
	case http.StatusForbidden:
		return "AUTH_FORBIDDEN"
	case http.StatusNotFound:
		return "NOT_FOUND"
	case http.StatusConflict:
		return "CONFLICT"
	case http.StatusTooManyRequests:
		return "RATE_LIMITED"
	default:
		return "INTERNAL_ERROR"
	}
}

func init() {
	huma.NewError = func(status int, msg string, errs ...error) huma.StatusError {
		// Schema validation failures surface as 422 by default; the portal
		// contract folds them into 400.
		if status == http.StatusUnprocessableEntity {
			status = http.StatusBadRequest
		}

		parts := make([]string, 0, len(errs)+1)
		if msg != "" {
			parts = append(parts, msg)
		}
		for _, err := range errs {
			if err != nil {
				parts = append(parts, err.Error())
			}
		}

		return &apiError{
			status:  status,
			Success: false,
			Detail: &ErrorDetail{
				Code:    codeForStatus(status),
				Message: strings.Join(parts, "; "),
			},
		}
	}
}
