package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"pinflow/internal/domain"
)

const pinColumns = `id, project_id, article_id, tenant_id, board_id, media_url, media_type,
	title, description, alt_text, status, previous_status, error_message,
	scheduled_at, published_at, pinterest_pin_id, pinterest_pin_url, created_at, updated_at`

type PinStore struct {
	db *sqlx.DB
}

func NewPinStore(db *sqlx.DB) *PinStore {
	return &PinStore{db: db}
}

func (s *PinStore) Create(ctx context.Context, p *domain.Pin) error {
	query := `
		INSERT INTO pins (id, project_id, article_id, tenant_id, board_id, media_url, media_type, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING created_at, updated_at`

	err := GetExecutor(ctx, s.db).QueryRowxContext(ctx, query,
		p.ID, p.ProjectID, p.ArticleID, p.TenantID, p.BoardID, p.MediaURL, p.MediaType, p.Status,
	).Scan(&p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return fmt.Errorf("insert pin: %w", err)
	}
	return nil
}

func (s *PinStore) GetByID(ctx context.Context, tenantID, id string) (*domain.Pin, error) {
	var p domain.Pin
	query := `SELECT ` + pinColumns + ` FROM pins WHERE tenant_id = $1 AND id = $2`

	err := sqlx.GetContext(ctx, GetExecutor(ctx, s.db), &p, query, tenantID, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, &domain.NotFoundError{Entity: "pin", ID: id}
	}
	if err != nil {
		return nil, fmt.Errorf("get pin: %w", err)
	}
	return &p, nil
}

// ListByProject returns the project's pins newest-first.
func (s *PinStore) ListByProject(ctx context.Context, tenantID, projectID string) ([]domain.Pin, error) {
	var pins []domain.Pin
	query := `SELECT ` + pinColumns + ` FROM pins WHERE tenant_id = $1 AND project_id = $2 ORDER BY created_at DESC`

	if err := sqlx.SelectContext(ctx, GetExecutor(ctx, s.db), &pins, query, tenantID, projectID); err != nil {
		return nil, fmt.Errorf("list pins: %w", err)
	}
	return pins, nil
}

// Update applies a partial edit to the pin's editable fields.
func (s *PinStore) Update(ctx context.Context, tenantID, id string, upd domain.PinUpdate) (*domain.Pin, error) {
	b := psql.Update("pins").
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"tenant_id": tenantID, "id": id}).
		Suffix("RETURNING " + pinColumns)

	b = setOptional(b, "board_id", upd.BoardID)
	b = setOptional(b, "title", upd.Title)
	b = setOptional(b, "description", upd.Description)
	b = setOptional(b, "alt_text", upd.AltText)
	b = setOptional(b, "scheduled_at", upd.ScheduledAt)

	query, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build update: %w", err)
	}

	var p domain.Pin
	err = sqlx.GetContext(ctx, GetExecutor(ctx, s.db), &p, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, &domain.NotFoundError{Entity: "pin", ID: id}
	}
	if err != nil {
		return nil, fmt.Errorf("update pin: %w", err)
	}
	return &p, nil
}

// SetStatus moves the pin into status and records the prior one so an
// error can be retried. errMsg is kept only for error transitions and
// cleared otherwise.
func (s *PinStore) SetStatus(ctx context.Context, tenantID, id string, status domain.PinStatus, errMsg *string) (*domain.Pin, error) {
	query := `
		UPDATE pins SET
			previous_status = status,
			status = $1,
			error_message = $2,
			updated_at = NOW()
		WHERE tenant_id = $3 AND id = $4
		RETURNING ` + pinColumns

	var p domain.Pin
	err := sqlx.GetContext(ctx, GetExecutor(ctx, s.db), &p, query, status, errMsg, tenantID, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, &domain.NotFoundError{Entity: "pin", ID: id}
	}
	if err != nil {
		return nil, fmt.Errorf("set pin status: %w", err)
	}
	return &p, nil
}

// SetMetadata writes the AI-generated fields onto the live pin.
func (s *PinStore) SetMetadata(ctx context.Context, tenantID, id, title, description, altText string, status domain.PinStatus) (*domain.Pin, error) {
	query := `
		UPDATE pins SET
			title = $1,
			description = $2,
			alt_text = $3,
			previous_status = status,
			status = $4,
			error_message = NULL,
			updated_at = NOW()
		WHERE tenant_id = $5 AND id = $6
		RETURNING ` + pinColumns

	var p domain.Pin
	err := sqlx.GetContext(ctx, GetExecutor(ctx, s.db), &p, query,
		title, description, altText, status, tenantID, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, &domain.NotFoundError{Entity: "pin", ID: id}
	}
	if err != nil {
		return nil, fmt.Errorf("set pin metadata: %w", err)
	}
	return &p, nil
}

// SetPublished records the Pinterest-assigned identifiers.
func (s *PinStore) SetPublished(ctx context.Context, tenantID, id, pinterestID, pinterestURL string, at time.Time) (*domain.Pin, error) {
	query := `
		UPDATE pins SET
			previous_status = status,
			status = 'published',
			published_at = $1,
			pinterest_pin_id = $2,
			pinterest_pin_url = $3,
			error_message = NULL,
			updated_at = NOW()
		WHERE tenant_id = $4 AND id = $5
		RETURNING ` + pinColumns

	var p domain.Pin
	err := sqlx.GetContext(ctx, GetExecutor(ctx, s.db), &p, query, at, pinterestID, pinterestURL, tenantID, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, &domain.NotFoundError{Entity: "pin", ID: id}
	}
	if err != nil {
		return nil, fmt.Errorf("set pin published: %w", err)
	}
	return &p, nil
}

// BulkDelete removes the given pins in one statement and reports which
// rows went away.
func (s *PinStore) BulkDelete(ctx context.Context, tenantID string, ids []string) ([]domain.PinRef, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var refs []domain.PinRef
	err := sqlx.SelectContext(ctx, GetExecutor(ctx, s.db), &refs,
		`DELETE FROM pins WHERE tenant_id = $1 AND id = ANY($2) RETURNING id, project_id`,
		tenantID, pq.Array(ids))
	if err != nil {
		return nil, fmt.Errorf("bulk delete pins: %w", err)
	}
	return refs, nil
}

// BulkSetStatus moves a batch of pins into status with one statement.
func (s *PinStore) BulkSetStatus(ctx context.Context, tenantID string, ids []string, status domain.PinStatus) ([]domain.PinRef, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var refs []domain.PinRef
	err := sqlx.SelectContext(ctx, GetExecutor(ctx, s.db), &refs, `
		UPDATE pins SET
			previous_status = status,
			status = $1,
			updated_at = NOW()
		WHERE tenant_id = $2 AND id = ANY($3)
		RETURNING id, project_id`,
		status, tenantID, pq.Array(ids))
	if err != nil {
		return nil, fmt.Errorf("bulk set status: %w", err)
	}
	return refs, nil
}

// BulkSchedule assigns per-pin timestamps in a single batched
// statement; partial-failure semantics are whatever that one
// statement's outcome is.
func (s *PinStore) BulkSchedule(ctx context.Context, tenantID string, ids []string, times []time.Time) ([]domain.PinRef, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	if len(ids) != len(times) {
		return nil, fmt.Errorf("bulk schedule: %d ids but %d timestamps", len(ids), len(times))
	}

	var refs []domain.PinRef
	err := sqlx.SelectContext(ctx, GetExecutor(ctx, s.db), &refs, `
		UPDATE pins SET
			scheduled_at = v.scheduled_at,
			previous_status = pins.status,
			status = 'ready_to_schedule',
			updated_at = NOW()
		FROM (SELECT unnest($2::text[]) AS id, unnest($3::timestamptz[]) AS scheduled_at) v
		WHERE pins.tenant_id = $1 AND pins.id = v.id
		RETURNING pins.id, pins.project_id`,
		tenantID, pq.Array(ids), pq.Array(times))
	if err != nil {
		return nil, fmt.Errorf("bulk schedule pins: %w", err)
	}
	return refs, nil
}

// ListDue returns scheduled pins whose publish time has passed.
func (s *PinStore) ListDue(ctx context.Context, now time.Time) ([]domain.Pin, error) {
	var pins []domain.Pin
	query := `
		SELECT ` + pinColumns + ` FROM pins
		WHERE status = 'ready_to_schedule' AND scheduled_at IS NOT NULL AND scheduled_at <= $1
		ORDER BY scheduled_at`

	if err := sqlx.SelectContext(ctx, GetExecutor(ctx, s.db), &pins, query, now); err != nil {
		return nil, fmt.Errorf("list due pins: %w", err)
	}
	return pins, nil
}
