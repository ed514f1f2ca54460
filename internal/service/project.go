package service

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"pinflow/internal/cache"
	"pinflow/internal/domain"
	"pinflow/internal/events"
)

type ProjectService struct {
	profiles ProfileStore
	projects ProjectStore
	auth     PinterestAuth
	events   EventPublisher
	cache    *cache.Store
	logger   *slog.Logger

	// oauthStates ties a pending OAuth consent back to the user and
	// project that started it. The callback arrives without our auth
	// header, so the state parameter is the only link.
	mu          sync.Mutex
	oauthStates map[string]oauthState
}

type oauthState struct {
	userID    string
	projectID string
	createdAt time.Time
}

const oauthStateTTL = 15 * time.Minute

func NewProjectService(
	profiles ProfileStore,
	projects ProjectStore,
	auth PinterestAuth,
	publisher EventPublisher,
	readCache *cache.Store,
	logger *slog.Logger,
) *ProjectService {
	return &ProjectService{
		profiles:    profiles,
		projects:    projects,
		auth:        auth,
		events:      publisher,
		cache:       readCache,
		logger:      logger.With("service", "projects"),
		oauthStates: make(map[string]oauthState),
	}
}

// CreateProjectInput carries the fields a caller may set on creation.
type CreateProjectInput struct {
	Name        string  `json:"name"`
	BlogURL     string  `json:"blog_url"`
	SitemapURL  *string `json:"sitemap_url"`
	RSSURL      *string `json:"rss_url"`
	Cadence     string  `json:"cadence"`
	Audience    *string `json:"audience"`
	Tone        *string `json:"tone"`
	VisualStyle *string `json:"visual_style"`
}

func (s *ProjectService) Create(ctx context.Context, input CreateProjectInput) (*domain.BlogProject, error) {
	profile, err := resolveTenant(ctx, s.profiles)
	if err != nil {
		return nil, err
	}

	if input.Name == "" {
		return nil, &domain.ValidationError{Field: "name", Reason: "must not be empty"}
	}
	if err := domain.ValidateBlogURL(input.BlogURL); err != nil {
		return nil, err
	}
	cadence := domain.ScrapeCadence(input.Cadence)
	if cadence == "" {
		cadence = domain.CadenceManual
	}
	if !cadence.Valid() {
		return nil, &domain.ValidationError{Field: "cadence", Reason: "must be daily, weekly or manual"}
	}

	project := &domain.BlogProject{
		ID:          uuid.NewString(),
		TenantID:    profile.TenantID,
		Name:        input.Name,
		BlogURL:     input.BlogURL,
		SitemapURL:  input.SitemapURL,
		RSSURL:      input.RSSURL,
		Cadence:     cadence,
		Audience:    input.Audience,
		Tone:        input.Tone,
		VisualStyle: input.VisualStyle,
	}
	// Show the new project in any cached list while the insert is in
	// flight; the snapshot comes back if the insert fails.
	err = cache.Optimistic(s.cache, cache.ProjectsKey(profile.TenantID),
		func(cur []ProjectWithCounts) []ProjectWithCounts {
			return append(cur, ProjectWithCounts{BlogProject: *project})
		},
		func() error { return s.projects.Create(ctx, project) },
	)
	if err != nil {
		return nil, fmt.Errorf("create project: %w", err)
	}

	s.publishChange(ctx, "blog_projects", "create", profile.TenantID, project.ID, project.ID)
	s.logger.Info("project created", "project_id", project.ID, "blog_url", project.BlogURL)
	return project, nil
}

// ProjectWithCounts decorates a project with its dependent-row counts
// for list views.
type ProjectWithCounts struct {
	domain.BlogProject
	Counts domain.RelatedCounts `json:"counts"`
}

func (s *ProjectService) List(ctx context.Context) ([]ProjectWithCounts, error) {
	profile, err := resolveTenant(ctx, s.profiles)
	if err != nil {
		return nil, err
	}

	key := cache.ProjectsKey(profile.TenantID)
	if v, ok := s.cache.Get(key); ok {
		if cached, ok := v.([]ProjectWithCounts); ok {
			return cached, nil
		}
	}

	projects, err := s.projects.List(ctx, profile.TenantID)
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}

	out := make([]ProjectWithCounts, 0, len(projects))
	for _, p := range projects {
		out = append(out, ProjectWithCounts{
			BlogProject: p,
			Counts:      s.projects.CountRelated(ctx, profile.TenantID, p.ID),
		})
	}
	s.cache.Put(key, out)
	return out, nil
}

func (s *ProjectService) Get(ctx context.Context, id string) (*ProjectWithCounts, error) {
	profile, err := resolveTenant(ctx, s.profiles)
	if err != nil {
		return nil, err
	}

	project, err := s.projects.GetByID(ctx, profile.TenantID, id)
	if err != nil {
		return nil, err
	}
	return &ProjectWithCounts{
		BlogProject: *project,
		Counts:      s.projects.CountRelated(ctx, profile.TenantID, id),
	}, nil
}

func (s *ProjectService) Update(ctx context.Context, id string, upd domain.ProjectUpdate) (*domain.BlogProject, error) {
	profile, err := resolveTenant(ctx, s.profiles)
	if err != nil {
		return nil, err
	}

	if upd.BlogURL.Set {
		if !upd.BlogURL.Valid {
			return nil, &domain.ValidationError{Field: "blog_url", Reason: "must not be null"}
		}
		if err := domain.ValidateBlogURL(upd.BlogURL.Value); err != nil {
			return nil, err
		}
	}
	if upd.Cadence.Set {
		if !upd.Cadence.Valid || !domain.ScrapeCadence(upd.Cadence.Value).Valid() {
			return nil, &domain.ValidationError{Field: "cadence", Reason: "must be daily, weekly or manual"}
		}
	}

	project, err := s.projects.Update(ctx, profile.TenantID, id, upd)
	if err != nil {
		return nil, err
	}

	s.cache.Invalidate(cache.ProjectsKey(profile.TenantID))
	s.publishChange(ctx, "blog_projects", "update", profile.TenantID, id, id)
	return project, nil
}

func (s *ProjectService) Delete(ctx context.Context, id string) error {
	profile, err := resolveTenant(ctx, s.profiles)
	if err != nil {
		return err
	}

	if err := s.projects.Delete(ctx, profile.TenantID, id); err != nil {
		return err
	}

	s.cache.Invalidate(cache.ProjectsKey(profile.TenantID))
	s.publishChange(ctx, "blog_projects", "delete", profile.TenantID, id, id)
	s.logger.Info("project deleted", "project_id", id)
	return nil
}

// PinterestAuthURL builds the consent URL for connecting a project to
// a Pinterest account and registers the state for the callback.
func (s *ProjectService) PinterestAuthURL(ctx context.Context, projectID string) (string, error) {
	profile, err := resolveTenant(ctx, s.profiles)
	if err != nil {
		return "", err
	}
	if _, err := s.projects.GetByID(ctx, profile.TenantID, projectID); err != nil {
		return "", err
	}

	state := uuid.NewString()
	s.mu.Lock()
	for k, v := range s.oauthStates {
		if time.Since(v.createdAt) > oauthStateTTL {
			delete(s.oauthStates, k)
		}
	}
	s.oauthStates[state] = oauthState{userID: UserFrom(ctx), projectID: projectID, createdAt: time.Now()}
	s.mu.Unlock()

	return s.auth.AuthCodeURL(state), nil
}

// ConnectPinterest handles the OAuth callback: it resolves the state,
// exchanges the code and stores the resulting token on the project.
func (s *ProjectService) ConnectPinterest(ctx context.Context, state, code, username string) error {
	s.mu.Lock()
	st, ok := s.oauthStates[state]
	delete(s.oauthStates, state)
	s.mu.Unlock()
	if !ok || time.Since(st.createdAt) > oauthStateTTL {
		return &domain.ValidationError{Field: "state", Reason: "unknown or expired"}
	}

	profile, err := s.profiles.Ensure(ctx, st.userID)
	if err != nil {
		return err
	}

	token, err := s.auth.Exchange(ctx, code)
	if err != nil {
		return err
	}

	if err := s.projects.SetPinterestToken(ctx, profile.TenantID, st.projectID, username, token.AccessToken); err != nil {
		return err
	}

	s.cache.Invalidate(cache.ProjectsKey(profile.TenantID))
	s.publishChange(ctx, "blog_projects", "update", profile.TenantID, st.projectID, st.projectID)
	s.logger.Info("pinterest connected", "project_id", st.projectID, "pinterest_user", username)
	return nil
}

// publishChange emits a change event; delivery failures are logged and
// never fail the triggering operation.
func (s *ProjectService) publishChange(ctx context.Context, table, action, tenantID, rowID, projectID string) {
	ev := events.ChangeEvent{
		Table:     table,
		Action:    action,
		TenantID:  tenantID,
		RowID:     rowID,
		ProjectID: projectID,
		Timestamp: time.Now().UTC(),
	}
	if err := s.events.Publish(ctx, ev); err != nil {
		s.logger.Warn("change event not delivered", "table", table, "action", action, "error", err)
	}
}
