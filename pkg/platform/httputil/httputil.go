// Package httputil holds JSON request/response helpers shared by HTTP handlers.
package httputil

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strings"

	dErrors "natid/pkg/domain-errors"
)

// MaxBodyBytes bounds request bodies decoded by DecodeAndPrepare.
const MaxBodyBytes = 4 << 10

// Validatable is implemented by request bodies that normalize and check
// themselves after decoding.
type Validatable interface {
	Validate() error
}

// ErrorResponse is the JSON body written for failed requests.
type ErrorResponse struct {
	Error            string `json:"error"`
	ErrorDescription string `json:"error_description,omitempty"`
}

// WriteJSON writes v with the given status.
func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// WriteError maps a coded error onto an HTTP status. Internal errors never
// expose their description.
func WriteError(w http.ResponseWriter, err error) {
	code := dErrors.CodeOf(err)
	resp := ErrorResponse{Error: string(code)}
	if code != dErrors.CodeInternal {
		resp.ErrorDescription = dErrors.MessageOf(err)
	}
	WriteJSON(w, StatusFor(code), resp)
}

// StatusFor returns the HTTP status for an error code.
func StatusFor(code dErrors.Code) int {
	switch code {
	case dErrors.CodeBadRequest, dErrors.CodeValidation, dErrors.CodeInvalidInput:
		return http.StatusBadRequest
	case dErrors.CodeNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// DecodeAndPrepare decodes a bounded JSON body into T and runs its Validate.
// On failure it writes the error response, logs at warn level with requestID
// and returns false.
func DecodeAndPrepare[T any, PT interface {
	*T
	Validatable
}](w http.ResponseWriter, r *http.Request, logger *slog.Logger, ctx context.Context, requestID string) (*T, bool) {
	req := PT(new(T))

	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, MaxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(req); err != nil {
		derr := decodeError(err)
		logger.WarnContext(ctx, "invalid request body", "request_id", requestID, "error", err)
		WriteError(w, derr)
		return nil, false
	}
	if err := req.Validate(); err != nil {
		logger.WarnContext(ctx, "request validation failed", "request_id", requestID, "error", err)
		WriteError(w, err)
		return nil, false
	}
	return (*T)(req), true
}

func decodeError(err error) error {
	var tooLarge *http.MaxBytesError
	switch {
	case errors.As(err, &tooLarge):
		return dErrors.New(dErrors.CodeBadRequest, "request body too large")
	case errors.Is(err, io.EOF):
		return dErrors.New(dErrors.CodeBadRequest, "request body is required")
	case strings.HasPrefix(err.Error(), "json: unknown field"):
		return dErrors.New(dErrors.CodeBadRequest, strings.TrimPrefix(err.Error(), "json: "))
	default:
		return dErrors.New(dErrors.CodeBadRequest, "invalid json")
	}
}
