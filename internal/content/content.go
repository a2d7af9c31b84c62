// Package content defines the unified content model served to page views and
// the adapter that maps remote-store rows and catalog records into it.
package content

import "time"

// Status is the publish state of a content record.
type Status string

const (
	StatusDraft     Status = "draft"
	StatusPublished Status = "published"
	StatusScheduled Status = "scheduled"
)

// Published reports whether the record is visible to the public.
func (s Status) Published() bool {
	return s == StatusPublished
}

// Valid reports whether the value is a known status.
func (s Status) Valid() bool {
	switch s {
	case StatusDraft, StatusPublished, StatusScheduled:
		return true
	}
	return false
}

// Section is one block of post body copy.
type Section struct {
	Heading string   `json:"heading,omitempty"`
	Body    []string `json:"body"`
	Bullets []string `json:"bullets,omitempty"`
}

// Post is the unified blog post model. ID is empty for catalog-backed records
// until the adapter sets it to the slug.
type Post struct {
	ID              string     `json:"id,omitempty"`
	Slug            string     `json:"slug"`
	Title           string     `json:"title"`
	Category        string     `json:"category"`
	Tags            []string   `json:"tags"`
	Excerpt         string     `json:"excerpt"`
	Description     string     `json:"description"`
	HeroImage       string     `json:"hero_image"`
	ReadTimeMinutes int        `json:"read_time_minutes"`
	Content         []Section  `json:"content"`
	Status          Status     `json:"status"`
	PublishedAt     *time.Time `json:"published_at"`
	CreatedAt       *time.Time `json:"created_at,omitempty"`
	UpdatedAt       *time.Time `json:"updated_at,omitempty"`
}

// Job is the unified job posting model.
type Job struct {
	ID               string     `json:"id,omitempty"`
	Slug             string     `json:"slug"`
	Title            string     `json:"title"`
	Location         string     `json:"location"`
	EmploymentType   string     `json:"employment_type"`
	Department       string     `json:"department"`
	RemoteType       string     `json:"remote_type"`
	Summary          string     `json:"summary"`
	Description      string     `json:"description"`
	Responsibilities []string   `json:"responsibilities"`
	Qualifications   []string   `json:"qualifications"`
	SalaryRange      string     `json:"salary_range,omitempty"`
	ApplyEmail       string     `json:"apply_email,omitempty"`
	ApplyURL         string     `json:"apply_url,omitempty"`
	Status           Status     `json:"status"`
	PostedAt         *time.Time `json:"posted_at"`
	CreatedAt        *time.Time `json:"created_at,omitempty"`
	UpdatedAt        *time.Time `json:"updated_at,omitempty"`
}
