// Package remote holds the typed HTTP clients for the book and auth
// collaborator services. Clients classify every call into success, not-found,
// or failure (infra.CallError) and forward the gateway identity headers so
// the collaborators see the original caller.
package remote

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"elibrary-borrowing/internal/infra"
	"elibrary-borrowing/internal/pkg/identity"
)

const (
	headerUserID    = "X-User-ID"
	headerUserEmail = "X-User-Email"
	headerUserRoles = "X-User-Roles"
)

type httpClient struct {
	baseURL string
	client  *http.Client
}

func newHTTPClient(baseURL string, timeout time.Duration) httpClient {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return httpClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		client: &http.Client{
			Timeout: timeout,
		},
	}
}

// do performs one request and returns the raw body on 2xx. A 404 maps to the
// not-found outcome; everything else (transport error, timeout, non-2xx) is a
// failure.
func (c httpClient) do(ctx context.Context, method, path string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, nil)
	if err != nil {
		return nil, infra.WrapCallErr(infra.KindRemoteFailure, "create request", err)
	}
	req.Header.Set("Accept", "application/json")
	forwardIdentity(ctx, req)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, infra.WrapCallErr(infra.KindRemoteFailure, "send request to "+path, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, infra.WrapCallErr(infra.KindRemoteFailure, "read response from "+path, err)
	}

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, infra.WrapCallErr(infra.KindRemoteNotFound, "entity not found at "+path, nil)
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		return nil, infra.WrapCallErr(infra.KindRemoteFailure, fmt.Sprintf("unexpected status %d from %s", resp.StatusCode, path), nil)
	}
	return body, nil
}

func (c httpClient) getJSON(ctx context.Context, path string, out any) error {
	body, err := c.do(ctx, http.MethodGet, path)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(body, out); err != nil {
		return infra.WrapCallErr(infra.KindRemoteFailure, "decode response from "+path, err)
	}
	return nil
}

// forwardIdentity mirrors the gateway headers onto outbound calls, the same
// way the edge forwards them to us.
func forwardIdentity(ctx context.Context, req *http.Request) {
	id, ok := identity.FromContext(ctx)
	if !ok {
		return
	}
	req.Header.Set(headerUserID, id.UserID.String())
	if id.Email != "" {
		req.Header.Set(headerUserEmail, id.Email)
	}
	if len(id.Roles) > 0 {
		roles := make([]string, len(id.Roles))
		for i, r := range id.Roles {
			roles[i] = string(r)
		}
		req.Header.Set(headerUserRoles, strings.Join(roles, ","))
	}
}
