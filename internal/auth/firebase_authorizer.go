package auth

import (
	"context"

	fbauth "firebase.google.com/go/v4/auth"
	"go.uber.org/zap"
)

// AdminClaim is the Firebase custom claim that marks an administrator
const AdminClaim = "admin"

// UserGetter is the part of the Firebase auth client used for role lookups
type UserGetter interface {
	GetUser(ctx context.Context, uid string) (*fbauth.UserRecord, error)
}

// FirebaseAuthorizer resolves capabilities from Firebase user records.
// Any existing, enabled user holds RoleUser; RoleAdmin needs the admin custom claim.
type FirebaseAuthorizer struct {
	client UserGetter
	logger *zap.Logger
}

// NewFirebaseAuthorizer creates a FirebaseAuthorizer
func NewFirebaseAuthorizer(client UserGetter, logger *zap.Logger) *FirebaseAuthorizer {
	return &FirebaseAuthorizer{client: client, logger: logger}
}

func (a *FirebaseAuthorizer) HasCapability(ctx context.Context, identity string, role Role) bool {
	if identity == "" {
		return false
	}
	user, err := a.client.GetUser(ctx, identity)
	if err != nil {
		a.logger.Warn("Firebase user lookup failed", zap.String("identity", identity), zap.Error(err))
		return false
	}
	if user.Disabled {
		return false
	}
	switch role {
	case RoleUser:
		return true
	case RoleAdmin:
		isAdmin, _ := user.CustomClaims[AdminClaim].(bool)
		return isAdmin
	}
	return false
}

func (a *FirebaseAuthorizer) IsAdmin(ctx context.Context, identity string) bool {
	return a.HasCapability(ctx, identity, RoleAdmin)
}
