//go:build unit

package httptest

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"elibrary-borrowing/internal/pkg/identity"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

// Headers carries the gateway-forwarded identity for a test request.
type Headers struct {
	UserID string
	Email  string
	Roles  string
}

func UserHeaders(userID string) Headers {
	return Headers{UserID: userID, Email: "user@example.com", Roles: string(identity.RoleUser)}
}

func AdminHeaders(userID string) Headers {
	return Headers{UserID: userID, Email: "admin@example.com", Roles: string(identity.RoleAdmin)}
}

// PerformRequest executes an HTTP request with optional forwarded identity headers.
func PerformRequest(t *testing.T, router *gin.Engine, method, path string, body any, hdrs Headers) *httptest.ResponseRecorder {
	t.Helper()

	var reqBody *bytes.Buffer
	if body != nil {
		jsonBody, err := json.Marshal(body)
		require.NoError(t, err, "Failed to encode request body to JSON")
		reqBody = bytes.NewBuffer(jsonBody)
	} else {
		reqBody = bytes.NewBuffer(nil)
	}

	req := httptest.NewRequest(method, path, reqBody)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if hdrs.UserID != "" {
		req.Header.Set("X-User-ID", hdrs.UserID)
	}
	if hdrs.Email != "" {
		req.Header.Set("X-User-Email", hdrs.Email)
	}
	if hdrs.Roles != "" {
		req.Header.Set("X-User-Roles", hdrs.Roles)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}
