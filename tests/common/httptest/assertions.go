//go:build unit

package httptest

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// AssertSuccessResponse checks the status and, for a non-nil target, decodes
// the response body into it.
func AssertSuccessResponse(t *testing.T, w *httptest.ResponseRecorder, wantStatus int, out any) {
	t.Helper()

	require.Equal(t, wantStatus, w.Code, "unexpected status, body: %s", w.Body.String())
	if out != nil {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), out),
			"failed to decode response body: %s", w.Body.String())
	}
}

// AssertErrorResponse checks the status and that the httperr envelope's
// message contains wantMsg.
func AssertErrorResponse(t *testing.T, w *httptest.ResponseRecorder, wantStatus int, wantMsg string) {
	t.Helper()

	assert.Equal(t, wantStatus, w.Code, "unexpected status, body: %s", w.Body.String())

	var envelope struct {
		Error struct {
			Message string `json:"message"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope),
		"failed to decode error envelope: %s", w.Body.String())
	if wantMsg != "" {
		assert.Contains(t, envelope.Error.Message, wantMsg)
	}
}
