package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"pinflow/internal/domain"
)

type ProfileStore struct {
	db *sqlx.DB
}

func NewProfileStore(db *sqlx.DB) *ProfileStore {
	return &ProfileStore{db: db}
}

// Ensure bootstraps the tenant-scoped profile row for a user. It is
// idempotent: an existing profile is returned untouched, a missing one
// is created with a fresh tenant id.
func (s *ProfileStore) Ensure(ctx context.Context, userID string) (*domain.Profile, error) {
	query := `
		INSERT INTO profiles (id, user_id, tenant_id)
		VALUES ($1, $2, $3)
		ON CONFLICT (user_id) DO NOTHING`

	_, err := GetExecutor(ctx, s.db).ExecContext(ctx, query,
		uuid.NewString(), userID, uuid.NewString())
	if err != nil {
		return nil, fmt.Errorf("bootstrap profile: %w", err)
	}

	var profile domain.Profile
	err = sqlx.GetContext(ctx, GetExecutor(ctx, s.db), &profile,
		`SELECT id, user_id, tenant_id, created_at FROM profiles WHERE user_id = $1`,
		userID)
	if err != nil {
		return nil, fmt.Errorf("load profile: %w", err)
	}

	return &profile, nil
}
