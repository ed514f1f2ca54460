package service

import (
	"context"

	"pinflow/internal/domain"
)

type ctxKey string

const userKey ctxKey = "user_id"

// WithUser attaches the authenticated user id to the context.
func WithUser(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, userKey, userID)
}

// UserFrom extracts the authenticated user id set by the auth
// middleware. The empty string means no user.
func UserFrom(ctx context.Context) string {
	id, _ := ctx.Value(userKey).(string)
	return id
}

// resolveTenant maps the ambient user to their tenant, creating the
// profile on first contact.
func resolveTenant(ctx context.Context, profiles ProfileStore) (*domain.Profile, error) {
	userID := UserFrom(ctx)
	if userID == "" {
		return nil, domain.ErrNotAuthenticated
	}
	return profiles.Ensure(ctx, userID)
}
