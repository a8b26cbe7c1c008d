package httputil

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dErrors "natid/pkg/domain-errors"
)

func TestWriteError(t *testing.T) {
	t.Run("internal error omits description", func(t *testing.T) {
		w := httptest.NewRecorder()
		WriteError(w, dErrors.New(dErrors.CodeInternal, "db failed"))

		require.Equal(t, http.StatusInternalServerError, w.Code)
		var body map[string]string
		require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
		assert.Equal(t, "internal_error", body["error"])
		_, ok := body["error_description"]
		assert.False(t, ok, "expected error_description to be omitted for internal errors")
	})

	t.Run("bad request includes description", func(t *testing.T) {
		w := httptest.NewRecorder()
		WriteError(w, dErrors.New(dErrors.CodeBadRequest, "invalid input"))

		require.Equal(t, http.StatusBadRequest, w.Code)
		var body map[string]string
		require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
		assert.Equal(t, "bad_request", body["error"])
		assert.Equal(t, "invalid input", body["error_description"])
	})

	t.Run("not found", func(t *testing.T) {
		w := httptest.NewRecorder()
		WriteError(w, dErrors.New(dErrors.CodeNotFound, "missing"))
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

type sample struct {
	Name string `json:"name"`
}

func (s *sample) Validate() error {
	s.Name = strings.TrimSpace(s.Name)
	if s.Name == "" {
		return dErrors.New(dErrors.CodeValidation, "name is required")
	}
	return nil
}

func TestDecodeAndPrepare(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		wantOK     bool
		wantStatus int
		wantCode   string
	}{
		{"valid", `{"name":" natid "}`, true, http.StatusOK, ""},
		{"empty body", ``, false, http.StatusBadRequest, "bad_request"},
		{"malformed", `{"name":`, false, http.StatusBadRequest, "bad_request"},
		{"unknown field", `{"name":"a","extra":1}`, false, http.StatusBadRequest, "bad_request"},
		{"too large", `{"name":"` + strings.Repeat("a", MaxBodyBytes) + `"}`, false, http.StatusBadRequest, "bad_request"},
		{"fails validation", `{"name":"  "}`, false, http.StatusBadRequest, "validation_error"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var logs bytes.Buffer
			logger := slog.New(slog.NewTextHandler(&logs, nil))
			w := httptest.NewRecorder()
			r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(tt.body))

			got, ok := DecodeAndPrepare[sample](w, r, logger, r.Context(), "req-42")
			require.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, "natid", got.Name)
				assert.Empty(t, logs.String())
				return
			}
			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Contains(t, logs.String(), "request_id=req-42")
			var body ErrorResponse
			require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
			assert.Equal(t, tt.wantCode, body.Error)
		})
	}
}
