package domain

import (
	"fmt"
	"net/url"
	"strings"
	"time"
)

// ScrapeCadence controls how often a project's blog is re-scraped.
type ScrapeCadence string

const (
	CadenceDaily  ScrapeCadence = "daily"
	CadenceWeekly ScrapeCadence = "weekly"
	CadenceManual ScrapeCadence = "manual"
)

func (c ScrapeCadence) Valid() bool {
	switch c {
	case CadenceDaily, CadenceWeekly, CadenceManual:
		return true
	}
	return false
}

// BlogProject is a tracked blog owned by one tenant.
type BlogProject struct {
	ID             string        `db:"id" json:"id"`
	TenantID       string        `db:"tenant_id" json:"tenant_id"`
	Name           string        `db:"name" json:"name"`
	BlogURL        string        `db:"blog_url" json:"blog_url"`
	SitemapURL     *string       `db:"sitemap_url" json:"sitemap_url"`
	RSSURL         *string       `db:"rss_url" json:"rss_url"`
	Cadence        ScrapeCadence `db:"cadence" json:"cadence"`
	Audience       *string       `db:"audience" json:"audience"`
	Tone           *string       `db:"tone" json:"tone"`
	VisualStyle    *string       `db:"visual_style" json:"visual_style"`
	PinterestUser  *string       `db:"pinterest_user" json:"pinterest_user"`
	PinterestToken *string       `db:"pinterest_token" json:"-"`
	LastScrapedAt  *time.Time    `db:"last_scraped_at" json:"last_scraped_at"`
	CreatedAt      time.Time     `db:"created_at" json:"created_at"`
	UpdatedAt      time.Time     `db:"updated_at" json:"updated_at"`
}

// RelatedCounts holds dependent-entity counts for one project.
type RelatedCounts struct {
	Articles int `db:"articles" json:"articles"`
	Pins     int `db:"pins" json:"pins"`
}

// ProjectUpdate carries a partial edit. Unset fields are left untouched;
// a null value clears the column.
type ProjectUpdate struct {
	Name        Optional[string] `json:"name"`
	BlogURL     Optional[string] `json:"blog_url"`
	SitemapURL  Optional[string] `json:"sitemap_url"`
	RSSURL      Optional[string] `json:"rss_url"`
	Cadence     Optional[string] `json:"cadence"`
	Audience    Optional[string] `json:"audience"`
	Tone        Optional[string] `json:"tone"`
	VisualStyle Optional[string] `json:"visual_style"`
}

// ValidateBlogURL rejects anything that is not an absolute http(s) URL.
func ValidateBlogURL(raw string) error {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return &ValidationError{Field: "blog_url", Reason: fmt.Sprintf("malformed url: %v", err)}
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return &ValidationError{Field: "blog_url", Reason: "url must be absolute http(s)"}
	}
	if u.Host == "" {
		return &ValidationError{Field: "blog_url", Reason: "url has no host"}
	}
	return nil
}

// Profile is the tenant-scoped identity row bootstrapped for every
// authenticated user on first write.
type Profile struct {
	ID        string    `db:"id" json:"id"`
	UserID    string    `db:"user_id" json:"user_id"`
	TenantID  string    `db:"tenant_id" json:"tenant_id"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}
