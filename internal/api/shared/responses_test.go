package shared

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// captureLogs redirects the default logger into a buffer for the test.
func captureLogs(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	previous := slog.Default()
	slog.SetDefault(slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	t.Cleanup(func() { slog.SetDefault(previous) })
	return &buf
}

func TestRespondWithJSON(t *testing.T) {
	tests := []struct {
		name         string
		status       int
		data         interface{}
		expectedBody string
	}{
		{
			name:         "successful response",
			status:       http.StatusOK,
			data:         map[string]interface{}{"time": "09:00:00", "hour": 9},
			expectedBody: `{"hour":9,"time":"09:00:00"}`,
		},
		{
			name:         "empty response",
			status:       http.StatusOK,
			data:         map[string]interface{}{},
			expectedBody: `{}`,
		},
		{
			name:         "nil response",
			status:       http.StatusOK,
			data:         nil,
			expectedBody: `null`,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/test", nil)
			w := httptest.NewRecorder()

			RespondWithJSON(w, req, tc.status, tc.data)

			assert.Equal(t, tc.status, w.Code)
			assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
			assert.JSONEq(t, tc.expectedBody, w.Body.String())
		})
	}
}

func TestRespondWithError(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/times/99", nil)
	req = req.WithContext(WithTraceID(req.Context(), "trace-abc"))
	w := httptest.NewRecorder()

	RespondWithError(w, req, http.StatusBadRequest, "Invalid time")

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp ErrorResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.Equal(t, "Invalid time", resp.Error)
	assert.Equal(t, "trace-abc", resp.TraceID)
	assert.Zero(t, resp.Code, "Code must not be serialized")
}

func TestRespondWithErrorAndLog(t *testing.T) {
	tests := []struct {
		name          string
		status        int
		expectedLevel string
	}{
		{name: "client error logs at debug", status: http.StatusBadRequest, expectedLevel: "DEBUG"},
		{name: "unprocessable logs at debug", status: http.StatusUnprocessableEntity, expectedLevel: "DEBUG"},
		{name: "server error logs at error", status: http.StatusInternalServerError, expectedLevel: "ERROR"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			logs := captureLogs(t)

			req := httptest.NewRequest(http.MethodPost, "/api/times/evaluate", nil)
			req = req.WithContext(WithTraceID(context.Background(), "trace-xyz"))
			w := httptest.NewRecorder()

			internalErr := errors.New("internal detail that must stay private")
			RespondWithErrorAndLog(w, req, tc.status, "Something went wrong", internalErr)

			assert.Equal(t, tc.status, w.Code)
			assert.NotContains(t, w.Body.String(), "internal detail")

			var entry map[string]interface{}
			line := strings.TrimSpace(logs.String())
			require.NoError(t, json.Unmarshal([]byte(line), &entry))
			assert.Equal(t, tc.expectedLevel, entry["level"])
			assert.Equal(t, "trace-xyz", entry["trace_id"])
			assert.Equal(t, "internal detail that must stay private", entry["error"])
			assert.Equal(t, "*errors.errorString", entry["error_type"])
		})
	}
}
