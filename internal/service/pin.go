package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"pinflow/internal/ai"
	"pinflow/internal/domain"
	"pinflow/internal/events"
	"pinflow/internal/pinterest"
	"pinflow/internal/schedule"
)

type PinService struct {
	profiles    ProfileStore
	projects    ProjectStore
	articles    ArticleStore
	pins        PinStore
	generations GenerationStore
	txManager   TransactionManager
	generator   MetadataGenerator
	publisher   PinPublisher
	events      EventPublisher
	logger      *slog.Logger
}

func NewPinService(
	profiles ProfileStore,
	projects ProjectStore,
	articles ArticleStore,
	pins PinStore,
	generations GenerationStore,
	txManager TransactionManager,
	generator MetadataGenerator,
	publisher PinPublisher,
	eventPublisher EventPublisher,
	logger *slog.Logger,
) *PinService {
	return &PinService{
		profiles:    profiles,
		projects:    projects,
		articles:    articles,
		pins:        pins,
		generations: generations,
		txManager:   txManager,
		generator:   generator,
		publisher:   publisher,
		events:      eventPublisher,
		logger:      logger.With("service", "pins"),
	}
}

// MediaInput is one uploaded creative for a new pin.
type MediaInput struct {
	URL  string `json:"url"`
	Type string `json:"type"`
}

// CreatePinsInput makes one pin per media item, all tied to the same
// source article.
type CreatePinsInput struct {
	ArticleID string       `json:"article_id"`
	BoardID   *string      `json:"board_id"`
	Media     []MediaInput `json:"media"`
}

func (s *PinService) Create(ctx context.Context, input CreatePinsInput) ([]domain.Pin, error) {
	profile, err := resolveTenant(ctx, s.profiles)
	if err != nil {
		return nil, err
	}
	if len(input.Media) == 0 {
		return nil, &domain.ValidationError{Field: "media", Reason: "at least one media item is required"}
	}

	article, err := s.articles.GetByID(ctx, profile.TenantID, input.ArticleID)
	if err != nil {
		return nil, err
	}

	created := make([]domain.Pin, 0, len(input.Media))
	err = s.txManager.WithTransaction(ctx, func(ctx context.Context) error {
		for _, m := range input.Media {
			if m.URL == "" {
				return &domain.ValidationError{Field: "media.url", Reason: "must not be empty"}
			}
			mediaType := m.Type
			if mediaType == "" {
				mediaType = "image"
			}
			pin := domain.Pin{
				ID:        uuid.NewString(),
				ProjectID: article.ProjectID,
				ArticleID: article.ID,
				TenantID:  profile.TenantID,
				BoardID:   input.BoardID,
				MediaURL:  m.URL,
				MediaType: mediaType,
				Status:    domain.StatusDraft,
			}
			if err := s.pins.Create(ctx, &pin); err != nil {
				return fmt.Errorf("create pin: %w", err)
			}
			created = append(created, pin)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	for _, pin := range created {
		s.publishChange(ctx, "pins", "create", profile.TenantID, pin.ID, pin.ProjectID, pin.ID)
	}
	s.logger.Info("pins created", "article_id", article.ID, "count", len(created))
	return created, nil
}

// PinList is one status tab's worth of pins plus the per-tab counts
// over the whole project.
type PinList struct {
	Pins   []domain.Pin                      `json:"pins"`
	Counts map[domain.StatusTab]int          `json:"counts"`
	Badges map[domain.PinStatus]domain.Badge `json:"badges"`
}

func (s *PinService) List(ctx context.Context, projectID string, tab domain.StatusTab) (*PinList, error) {
	profile, err := resolveTenant(ctx, s.profiles)
	if err != nil {
		return nil, err
	}

	pins, err := s.pins.ListByProject(ctx, profile.TenantID, projectID)
	if err != nil {
		return nil, fmt.Errorf("list pins: %w", err)
	}

	if tab == "" {
		tab = domain.TabAll
	}
	list := &PinList{
		Pins:   domain.FilterByTab(pins, tab),
		Counts: domain.CountByTab(pins),
		Badges: make(map[domain.PinStatus]domain.Badge),
	}
	for _, pin := range list.Pins {
		list.Badges[pin.Status] = domain.BadgeFor(pin.Status)
	}
	return list, nil
}

func (s *PinService) Get(ctx context.Context, id string) (*domain.Pin, error) {
	profile, err := resolveTenant(ctx, s.profiles)
	if err != nil {
		return nil, err
	}
	return s.pins.GetByID(ctx, profile.TenantID, id)
}

func (s *PinService) Update(ctx context.Context, id string, upd domain.PinUpdate) (*domain.Pin, error) {
	profile, err := resolveTenant(ctx, s.profiles)
	if err != nil {
		return nil, err
	}

	pin, err := s.pins.Update(ctx, profile.TenantID, id, upd)
	if err != nil {
		return nil, err
	}

	s.publishChange(ctx, "pins", "update", profile.TenantID, id, pin.ProjectID, id)
	return pin, nil
}

// SetStatus moves a pin along the pipeline, rejecting transitions the
// pipeline does not allow.
func (s *PinService) SetStatus(ctx context.Context, id string, status domain.PinStatus) (*domain.Pin, error) {
	profile, err := resolveTenant(ctx, s.profiles)
	if err != nil {
		return nil, err
	}
	if !status.Known() {
		return nil, &domain.ValidationError{Field: "status", Reason: "unknown status"}
	}

	pin, err := s.pins.GetByID(ctx, profile.TenantID, id)
	if err != nil {
		return nil, err
	}
	if !domain.ValidTransition(pin.Status, status) {
		return nil, &domain.ValidationError{
			Field:  "status",
			Reason: fmt.Sprintf("cannot move from %s to %s", pin.Status, status),
		}
	}

	pin, err = s.pins.SetStatus(ctx, profile.TenantID, id, status, nil)
	if err != nil {
		return nil, err
	}

	s.publishChange(ctx, "pins", "update", profile.TenantID, id, pin.ProjectID, id)
	return pin, nil
}

// GenerateMetadata runs the AI metadata pipeline for one pin. Feedback,
// when present, makes this a regeneration guided by the user's notes.
func (s *PinService) GenerateMetadata(ctx context.Context, id, feedback string) (*domain.Pin, error) {
	profile, err := resolveTenant(ctx, s.profiles)
	if err != nil {
		return nil, err
	}
	pin, err := s.pins.GetByID(ctx, profile.TenantID, id)
	if err != nil {
		return nil, err
	}
	// Regeneration is allowed from the post-generation statuses; only
	// unready, in-flight and published pins are off limits.
	switch pin.Status {
	case domain.StatusDraft, domain.StatusGeneratingMetadata, domain.StatusPublished:
		return nil, &domain.ValidationError{
			Field:  "status",
			Reason: fmt.Sprintf("cannot generate metadata from %s", pin.Status),
		}
	}

	article, err := s.articles.GetByID(ctx, profile.TenantID, pin.ArticleID)
	if err != nil {
		return nil, err
	}
	project, err := s.projects.GetByID(ctx, profile.TenantID, pin.ProjectID)
	if err != nil {
		return nil, err
	}

	if _, err := s.pins.SetStatus(ctx, profile.TenantID, id, domain.StatusGeneratingMetadata, nil); err != nil {
		return nil, err
	}
	s.publishChange(ctx, "pins", "update", profile.TenantID, id, pin.ProjectID, id)

	req := ai.Request{
		ArticleTitle: article.Title,
		MediaURL:     pin.MediaURL,
		Feedback:     feedback,
	}
	if article.Content != nil {
		req.ArticleContent = *article.Content
	}
	if project.Audience != nil {
		req.Audience = *project.Audience
	}
	if project.Tone != nil {
		req.Tone = *project.Tone
	}

	md, err := s.generator.Generate(ctx, req)
	if err != nil {
		s.recordFailure(ctx, profile.TenantID, pin, err)
		return nil, err
	}

	var updated *domain.Pin
	err = s.txManager.WithTransaction(ctx, func(ctx context.Context) error {
		updated, err = s.pins.SetMetadata(ctx, profile.TenantID, id,
			md.Title, md.Description, md.AltText, domain.StatusMetadataCreated)
		if err != nil {
			return err
		}

		gen := &domain.MetadataGeneration{
			ID:          uuid.NewString(),
			PinID:       id,
			TenantID:    profile.TenantID,
			Title:       md.Title,
			Description: md.Description,
			AltText:     md.AltText,
		}
		if feedback != "" {
			gen.Feedback = &feedback
		}
		return s.generations.Insert(ctx, gen)
	})
	if err != nil {
		return nil, fmt.Errorf("store metadata: %w", err)
	}

	s.publishChange(ctx, "pins", "update", profile.TenantID, id, pin.ProjectID, id)
	s.publishChange(ctx, "metadata_generations", "create", profile.TenantID, id, pin.ProjectID, id)
	s.logger.Info("metadata generated", "pin_id", id, "regeneration", feedback != "")
	return updated, nil
}

// Generations lists the pin's recent metadata history, newest first.
func (s *PinService) Generations(ctx context.Context, pinID string) ([]domain.MetadataGeneration, error) {
	profile, err := resolveTenant(ctx, s.profiles)
	if err != nil {
		return nil, err
	}
	if _, err := s.pins.GetByID(ctx, profile.TenantID, pinID); err != nil {
		return nil, err
	}
	return s.generations.ListRecent(ctx, profile.TenantID, pinID)
}

// RestoreGeneration copies a historical generation's fields back onto
// its pin. The history row itself is untouched.
func (s *PinService) RestoreGeneration(ctx context.Context, generationID string) (*domain.Pin, error) {
	profile, err := resolveTenant(ctx, s.profiles)
	if err != nil {
		return nil, err
	}
	gen, err := s.generations.GetByID(ctx, profile.TenantID, generationID)
	if err != nil {
		return nil, err
	}

	pin, err := s.pins.Update(ctx, profile.TenantID, gen.PinID, domain.PinUpdate{
		Title:       domain.Some(gen.Title),
		Description: domain.Some(gen.Description),
		AltText:     domain.Some(gen.AltText),
	})
	if err != nil {
		return nil, err
	}

	s.publishChange(ctx, "pins", "update", profile.TenantID, pin.ID, pin.ProjectID, pin.ID)
	return pin, nil
}

// BulkScheduleInput spreads the listed pins over evenly spaced days
// starting at StartDate.
type BulkScheduleInput struct {
	PinIDs       []string  `json:"pin_ids"`
	StartDate    time.Time `json:"start_date"`
	TimeOfDay    string    `json:"time_of_day"`
	IntervalDays int       `json:"interval_days"`
}

func (s *PinService) BulkSchedule(ctx context.Context, input BulkScheduleInput) (int64, error) {
	profile, err := resolveTenant(ctx, s.profiles)
	if err != nil {
		return 0, err
	}
	if len(input.PinIDs) == 0 {
		return 0, &domain.ValidationError{Field: "pin_ids", Reason: "must not be empty"}
	}
	if input.IntervalDays < 0 {
		return 0, &domain.ValidationError{Field: "interval_days", Reason: "must not be negative"}
	}

	slots, err := schedule.Plan(input.PinIDs, input.StartDate, input.TimeOfDay, input.IntervalDays)
	if err != nil {
		return 0, err
	}

	times := make([]time.Time, len(slots))
	for i, slot := range slots {
		times[i] = slot.ScheduledAt
	}

	refs, err := s.pins.BulkSchedule(ctx, profile.TenantID, input.PinIDs, times)
	if err != nil {
		return 0, fmt.Errorf("bulk schedule: %w", err)
	}

	for _, ref := range refs {
		s.publishChange(ctx, "pins", "update", profile.TenantID, ref.ID, ref.ProjectID, ref.ID)
	}
	s.logger.Info("pins scheduled", "count", len(refs), "start", input.StartDate.Format("2006-01-02"))
	return int64(len(refs)), nil
}

func (s *PinService) BulkDelete(ctx context.Context, ids []string) (int64, error) {
	profile, err := resolveTenant(ctx, s.profiles)
	if err != nil {
		return 0, err
	}
	if len(ids) == 0 {
		return 0, &domain.ValidationError{Field: "pin_ids", Reason: "must not be empty"}
	}

	refs, err := s.pins.BulkDelete(ctx, profile.TenantID, ids)
	if err != nil {
		return 0, fmt.Errorf("bulk delete: %w", err)
	}

	for _, ref := range refs {
		s.publishChange(ctx, "pins", "delete", profile.TenantID, ref.ID, ref.ProjectID, ref.ID)
	}
	return int64(len(refs)), nil
}

func (s *PinService) BulkSetStatus(ctx context.Context, ids []string, status domain.PinStatus) (int64, error) {
	profile, err := resolveTenant(ctx, s.profiles)
	if err != nil {
		return 0, err
	}
	if !status.Known() {
		return 0, &domain.ValidationError{Field: "status", Reason: "unknown status"}
	}
	if len(ids) == 0 {
		return 0, &domain.ValidationError{Field: "pin_ids", Reason: "must not be empty"}
	}

	refs, err := s.pins.BulkSetStatus(ctx, profile.TenantID, ids, status)
	if err != nil {
		return 0, fmt.Errorf("bulk set status: %w", err)
	}

	for _, ref := range refs {
		s.publishChange(ctx, "pins", "update", profile.TenantID, ref.ID, ref.ProjectID, ref.ID)
	}
	return int64(len(refs)), nil
}

// Publish posts one pin to Pinterest. A failure parks the pin in the
// error status with the upstream message so the user can retry.
func (s *PinService) Publish(ctx context.Context, id string) (*domain.Pin, error) {
	profile, err := resolveTenant(ctx, s.profiles)
	if err != nil {
		return nil, err
	}
	pin, err := s.pins.GetByID(ctx, profile.TenantID, id)
	if err != nil {
		return nil, err
	}

	published, err := s.publishPin(ctx, pin)
	if err != nil {
		return nil, err
	}
	s.logger.Info("pin published", "pin_id", id, "pinterest_pin_id", *published.PinterestPinID)
	return published, nil
}

// PublishDue publishes every pin whose schedule has elapsed. Failures
// are recorded per pin and do not stop the batch.
func (s *PinService) PublishDue(ctx context.Context, now time.Time) (int, error) {
	due, err := s.pins.ListDue(ctx, now)
	if err != nil {
		return 0, fmt.Errorf("list due pins: %w", err)
	}

	published := 0
	for i := range due {
		pin := &due[i]
		if _, err := s.publishPin(ctx, pin); err != nil {
			s.logger.Warn("scheduled publish failed", "pin_id", pin.ID, "error", err)
			continue
		}
		published++
	}
	return published, nil
}

// publishPin is the tenant-preresolved core of Publish, shared with the
// scheduler where no user context exists. Configuration problems park
// the pin in the error status so it is not retried blindly.
func (s *PinService) publishPin(ctx context.Context, pin *domain.Pin) (*domain.Pin, error) {
	if pin.BoardID == nil || *pin.BoardID == "" {
		cause := &domain.ValidationError{Field: "board_id", Reason: "pin has no target board"}
		s.recordFailure(ctx, pin.TenantID, pin, cause)
		return nil, cause
	}

	project, err := s.projects.GetByID(ctx, pin.TenantID, pin.ProjectID)
	if err != nil {
		return nil, err
	}
	if project.PinterestToken == nil || *project.PinterestToken == "" {
		cause := &domain.ValidationError{Field: "project", Reason: "project is not connected to Pinterest"}
		s.recordFailure(ctx, pin.TenantID, pin, cause)
		return nil, cause
	}

	article, err := s.articles.GetByID(ctx, pin.TenantID, pin.ArticleID)
	if err != nil {
		return nil, err
	}

	req := pinterest.PublishRequest{
		BoardID:   *pin.BoardID,
		Link:      article.URL,
		MediaURL:  pin.MediaURL,
		MediaType: pin.MediaType,
	}
	if pin.Title != nil {
		req.Title = *pin.Title
	}
	if pin.Description != nil {
		req.Description = *pin.Description
	}
	if pin.AltText != nil {
		req.AltText = *pin.AltText
	}

	result, err := s.publisher.Publish(ctx, *project.PinterestToken, req)
	if err != nil {
		s.recordFailure(ctx, pin.TenantID, pin, err)
		return nil, err
	}

	published, err := s.pins.SetPublished(ctx, pin.TenantID, pin.ID, result.PinID, result.URL, time.Now().UTC())
	if err != nil {
		return nil, fmt.Errorf("record publish: %w", err)
	}

	s.publishChange(ctx, "pins", "update", pin.TenantID, pin.ID, pin.ProjectID, pin.ID)
	return published, nil
}

// recordFailure parks the pin in the error status, keeping the message
// and the status it came from so a retry can resume.
func (s *PinService) recordFailure(ctx context.Context, tenantID string, pin *domain.Pin, cause error) {
	msg := cause.Error()
	if _, err := s.pins.SetStatus(ctx, tenantID, pin.ID, domain.StatusError, &msg); err != nil {
		s.logger.Error("failed to record pin error", "pin_id", pin.ID, "error", err)
		return
	}
	s.publishChange(ctx, "pins", "update", tenantID, pin.ID, pin.ProjectID, pin.ID)
}

func (s *PinService) publishChange(ctx context.Context, table, action, tenantID, rowID, projectID, pinID string) {
	ev := events.ChangeEvent{
		Table:     table,
		Action:    action,
		TenantID:  tenantID,
		RowID:     rowID,
		ProjectID: projectID,
		PinID:     pinID,
		Timestamp: time.Now().UTC(),
	}
	if err := s.events.Publish(ctx, ev); err != nil {
		s.logger.Warn("change event not delivered", "table", table, "action", action, "error", err)
	}
}
