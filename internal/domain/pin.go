package domain

import "time"

// Pin is a single image or video creative tied to one source article,
// destined for a Pinterest board.
type Pin struct {
	ID             string     `db:"id" json:"id"`
	ProjectID      string     `db:"project_id" json:"project_id"`
	ArticleID      string     `db:"article_id" json:"article_id"`
	TenantID       string     `db:"tenant_id" json:"tenant_id"`
	BoardID        *string    `db:"board_id" json:"board_id"`
	MediaURL       string     `db:"media_url" json:"media_url"`
	MediaType      string     `db:"media_type" json:"media_type"`
	Title          *string    `db:"title" json:"title"`
	Description    *string    `db:"description" json:"description"`
	AltText        *string    `db:"alt_text" json:"alt_text"`
	Status         PinStatus  `db:"status" json:"status"`
	PreviousStatus *PinStatus `db:"previous_status" json:"previous_status"`
	ErrorMessage   *string    `db:"error_message" json:"error_message"`
	ScheduledAt    *time.Time `db:"scheduled_at" json:"scheduled_at"`
	PublishedAt    *time.Time `db:"published_at" json:"published_at"`
	PinterestPinID *string    `db:"pinterest_pin_id" json:"pinterest_pin_id"`
	PinterestURL   *string    `db:"pinterest_pin_url" json:"pinterest_pin_url"`
	CreatedAt      time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt      time.Time  `db:"updated_at" json:"updated_at"`
}

// PinRef identifies one pin touched by a bulk statement, with the
// project it belongs to.
type PinRef struct {
	ID        string `db:"id"`
	ProjectID string `db:"project_id"`
}

// PinUpdate carries a partial edit of a pin's editable fields.
type PinUpdate struct {
	BoardID     Optional[string]    `json:"board_id"`
	Title       Optional[string]    `json:"title"`
	Description Optional[string]    `json:"description"`
	AltText     Optional[string]    `json:"alt_text"`
	ScheduledAt Optional[time.Time] `json:"scheduled_at"`
}

// MetadataGeneration is one historical AI-produced metadata record for
// a pin. Rows are immutable; restoring one copies its fields back onto
// the live pin without deleting history.
type MetadataGeneration struct {
	ID          string    `db:"id" json:"id"`
	PinID       string    `db:"pin_id" json:"pin_id"`
	TenantID    string    `db:"tenant_id" json:"tenant_id"`
	Title       string    `db:"title" json:"title"`
	Description string    `db:"description" json:"description"`
	AltText     string    `db:"alt_text" json:"alt_text"`
	Feedback    *string   `db:"feedback" json:"feedback"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
}
