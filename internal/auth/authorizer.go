package auth

import (
	"context"
	"strings"
)

// Role is a coarse permission tag
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// Authorizer answers capability questions about a caller identity.
// Implementations may perform I/O; the store calls them before taking its lock.
type Authorizer interface {
	HasCapability(ctx context.Context, identity string, role Role) bool
	IsAdmin(ctx context.Context, identity string) bool
}

// StaticAuthorizer grants RoleUser to every non-empty identity and RoleAdmin
// to a fixed set of identities.
type StaticAuthorizer struct {
	admins map[string]struct{}
}

// NewStaticAuthorizer creates a StaticAuthorizer with the given admin identities
func NewStaticAuthorizer(adminIDs ...string) *StaticAuthorizer {
	admins := make(map[string]struct{}, len(adminIDs))
	for _, id := range adminIDs {
		if id = strings.TrimSpace(id); id != "" {
			admins[id] = struct{}{}
		}
	}
	return &StaticAuthorizer{admins: admins}
}

func (a *StaticAuthorizer) HasCapability(_ context.Context, identity string, role Role) bool {
	if identity == "" {
		return false
	}
	switch role {
	case RoleUser:
		return true
	case RoleAdmin:
		_, ok := a.admins[identity]
		return ok
	}
	return false
}

func (a *StaticAuthorizer) IsAdmin(ctx context.Context, identity string) bool {
	return a.HasCapability(ctx, identity, RoleAdmin)
}
