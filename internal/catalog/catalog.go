// Package catalog holds the compiled-in fallback content for the public site.
// Records here are immutable, always considered published, and addressed by
// slug only.
package catalog

import "time"

// Section is one block of post body copy.
type Section struct {
	Heading string
	Body    []string
	Bullets []string
}

// Post is a compiled-in blog entry.
type Post struct {
	Slug            string
	Title           string
	Category        string
	Tags            []string
	Excerpt         string
	Description     string
	PublishedAt     time.Time
	ReadTimeMinutes int
	HeroImage       string
	Content         []Section
}

// Job is a compiled-in job posting. Optional fields are empty strings.
type Job struct {
	Slug             string
	Title            string
	Location         string
	EmploymentType   string
	Department       string
	RemoteType       string
	Summary          string
	Description      string
	Responsibilities []string
	Qualifications   []string
	SalaryRange      string
	ApplyEmail       string
	ApplyURL         string
	PostedAt         time.Time
}

// PostBySlug finds a catalog post. The bool reports whether the slug exists.
func PostBySlug(slug string) (Post, bool) {
	for i := range Posts {
		if Posts[i].Slug == slug {
			return Posts[i], true
		}
	}
	return Post{}, false
}

// JobBySlug finds a catalog job. The bool reports whether the slug exists.
func JobBySlug(slug string) (Job, bool) {
	for i := range Jobs {
		if Jobs[i].Slug == slug {
			return Jobs[i], true
		}
	}
	return Job{}, false
}

func utc(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 8, 0, 0, 0, time.UTC)
}
