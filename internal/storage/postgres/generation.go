package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"pinflow/internal/domain"
)

const generationColumns = `id, pin_id, tenant_id, title, description, alt_text, feedback, created_at`

// GenerationStore persists the immutable history of AI metadata
// generation attempts. Rows are only ever inserted.
type GenerationStore struct {
	db *sqlx.DB
}

func NewGenerationStore(db *sqlx.DB) *GenerationStore {
	return &GenerationStore{db: db}
}

func (s *GenerationStore) Insert(ctx context.Context, g *domain.MetadataGeneration) error {
	query := `
		INSERT INTO metadata_generations (id, pin_id, tenant_id, title, description, alt_text, feedback)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING created_at`

	err := GetExecutor(ctx, s.db).QueryRowxContext(ctx, query,
		g.ID, g.PinID, g.TenantID, g.Title, g.Description, g.AltText, g.Feedback,
	).Scan(&g.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert generation: %w", err)
	}
	return nil
}

// ListRecent surfaces at most the 3 most recent generations for a pin.
func (s *GenerationStore) ListRecent(ctx context.Context, tenantID, pinID string) ([]domain.MetadataGeneration, error) {
	var generations []domain.MetadataGeneration
	query := `
		SELECT ` + generationColumns + ` FROM metadata_generations
		WHERE tenant_id = $1 AND pin_id = $2
		ORDER BY created_at DESC
		LIMIT 3`

	if err := sqlx.SelectContext(ctx, GetExecutor(ctx, s.db), &generations, query, tenantID, pinID); err != nil {
		return nil, fmt.Errorf("list generations: %w", err)
	}
	return generations, nil
}

func (s *GenerationStore) GetByID(ctx context.Context, tenantID, id string) (*domain.MetadataGeneration, error) {
	var g domain.MetadataGeneration
	query := `SELECT ` + generationColumns + ` FROM metadata_generations WHERE tenant_id = $1 AND id = $2`

	err := sqlx.GetContext(ctx, GetExecutor(ctx, s.db), &g, query, tenantID, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, &domain.NotFoundError{Entity: "metadata generation", ID: id}
	}
	if err != nil {
		return nil, fmt.Errorf("get generation: %w", err)
	}
	return &g, nil
}
