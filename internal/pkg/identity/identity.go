// Package identity carries the caller identity resolved by the edge gateway.
// The gateway authenticates the request and forwards the result as headers;
// this service trusts those headers and never re-validates credentials itself.
package identity

import (
	"context"
	"strings"

	"github.com/google/uuid"
)

type Role string

const (
	RoleUser  Role = "USER"
	RoleAdmin Role = "ADMIN"
)

type Identity struct {
	UserID uuid.UUID
	Email  string
	Roles  []Role
}

func (i Identity) HasRole(role Role) bool {
	for _, r := range i.Roles {
		if r == role {
			return true
		}
	}
	return false
}

// ParseRoles accepts the comma-separated X-User-Roles header value.
// Spring-style "ROLE_" prefixes from the upstream auth service are stripped.
func ParseRoles(header string) []Role {
	if header == "" {
		return nil
	}
	parts := strings.Split(header, ",")
	roles := make([]Role, 0, len(parts))
	for _, p := range parts {
		name := strings.TrimPrefix(strings.TrimSpace(p), "ROLE_")
		if name == "" {
			continue
		}
		roles = append(roles, Role(strings.ToUpper(name)))
	}
	return roles
}

type ctxKey struct{}

func NewContext(ctx context.Context, id Identity) context.Context {
	return context.WithValue(ctx, ctxKey{}, id)
}

func FromContext(ctx context.Context) (Identity, bool) {
	id, ok := ctx.Value(ctxKey{}).(Identity)
	return id, ok
}
