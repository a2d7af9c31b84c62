package content

import (
	"time"

	"github.com/linque-cms/internal/catalog"
	"github.com/linque-cms/internal/models"
)

// Defaults enumerates every value the adapter substitutes for an absent or
// malformed optional field. Required fields (slug, title) are the caller's
// contract and are passed through untouched.
var Defaults = struct {
	PostCategory    string
	ReadTimeMinutes int
	JobRemoteType   string
	Status          Status
}{
	PostCategory:    "General",
	ReadTimeMinutes: 5,
	JobRemoteType:   "Onsite",
	Status:          StatusDraft,
}

// FromPostRow maps a remote-store post row into the unified model.
func FromPostRow(row models.Post) Post {
	return Post{
		ID:              row.ID,
		Slug:            row.Slug,
		Title:           row.Title,
		Category:        stringOr(row.Category, Defaults.PostCategory),
		Tags:            sliceOrEmpty(row.Tags),
		Excerpt:         stringOr(row.Excerpt, stringOr(row.Description, "")),
		Description:     stringOr(row.Description, ""),
		HeroImage:       stringOr(row.HeroImage, ""),
		ReadTimeMinutes: positiveIntOr(row.ReadTimeMinutes, Defaults.ReadTimeMinutes),
		Content:         sectionsFromRow(row.Content),
		Status:          statusOr(row.Status),
		PublishedAt:     row.PublishedAt,
		CreatedAt:       timePtr(row.CreatedAt),
		UpdatedAt:       timePtr(row.UpdatedAt),
	}
}

// FromJobRow maps a remote-store job row into the unified model.
func FromJobRow(row models.Job) Job {
	return Job{
		ID:               row.ID,
		Slug:             row.Slug,
		Title:            row.Title,
		Location:         stringOr(row.Location, ""),
		EmploymentType:   stringOr(row.EmploymentType, ""),
		Department:       stringOr(row.Department, ""),
		RemoteType:       stringOr(row.RemoteType, Defaults.JobRemoteType),
		Summary:          stringOr(row.Summary, ""),
		Description:      stringOr(row.Description, ""),
		Responsibilities: sliceOrEmpty(row.Responsibilities),
		Qualifications:   sliceOrEmpty(row.Qualifications),
		SalaryRange:      stringOr(row.SalaryRange, ""),
		ApplyEmail:       stringOr(row.ApplyEmail, ""),
		ApplyURL:         stringOr(row.ApplyURL, ""),
		Status:           statusOr(row.Status),
		PostedAt:         row.PostedAt,
		CreatedAt:        timePtr(row.CreatedAt),
		UpdatedAt:        timePtr(row.UpdatedAt),
	}
}

// FromCatalogPost maps a catalog post. Catalog records are always published
// and carry no identifier distinct from the slug.
func FromCatalogPost(record catalog.Post) Post {
	publishedAt := record.PublishedAt
	return Post{
		ID:              record.Slug,
		Slug:            record.Slug,
		Title:           record.Title,
		Category:        record.Category,
		Tags:            copyStrings(record.Tags),
		Excerpt:         record.Excerpt,
		Description:     record.Description,
		HeroImage:       record.HeroImage,
		ReadTimeMinutes: record.ReadTimeMinutes,
		Content:         sectionsFromCatalog(record.Content),
		Status:          StatusPublished,
		PublishedAt:     &publishedAt,
	}
}

// FromCatalogJob maps a catalog job.
func FromCatalogJob(record catalog.Job) Job {
	postedAt := record.PostedAt
	return Job{
		ID:               record.Slug,
		Slug:             record.Slug,
		Title:            record.Title,
		Location:         record.Location,
		EmploymentType:   record.EmploymentType,
		Department:       record.Department,
		RemoteType:       record.RemoteType,
		Summary:          record.Summary,
		Description:      record.Description,
		Responsibilities: copyStrings(record.Responsibilities),
		Qualifications:   copyStrings(record.Qualifications),
		SalaryRange:      record.SalaryRange,
		ApplyEmail:       record.ApplyEmail,
		ApplyURL:         record.ApplyURL,
		Status:           StatusPublished,
		PostedAt:         &postedAt,
	}
}

// ToPostRow maps a unified post back into a store row for writing. Empty
// optional fields become NULL so future reads re-apply the documented
// defaults rather than persisting them.
func ToPostRow(p Post) models.Post {
	return models.Post{
		ID:              p.ID,
		Slug:            p.Slug,
		Title:           p.Title,
		Category:        nullableString(p.Category),
		Tags:            models.StringSlice(copyStrings(p.Tags)),
		Excerpt:         nullableString(p.Excerpt),
		Description:     nullableString(p.Description),
		HeroImage:       nullableString(p.HeroImage),
		ReadTimeMinutes: nullablePositiveInt(p.ReadTimeMinutes),
		Content:         sectionsToRow(p.Content),
		Status:          nullableStatus(p.Status),
		PublishedAt:     p.PublishedAt,
	}
}

// ToJobRow maps a unified job back into a store row for writing.
func ToJobRow(j Job) models.Job {
	return models.Job{
		ID:               j.ID,
		Slug:             j.Slug,
		Title:            j.Title,
		Location:         nullableString(j.Location),
		EmploymentType:   nullableString(j.EmploymentType),
		Department:       nullableString(j.Department),
		RemoteType:       nullableString(j.RemoteType),
		Summary:          nullableString(j.Summary),
		Description:      nullableString(j.Description),
		Responsibilities: models.StringSlice(copyStrings(j.Responsibilities)),
		Qualifications:   models.StringSlice(copyStrings(j.Qualifications)),
		SalaryRange:      nullableString(j.SalaryRange),
		ApplyEmail:       nullableString(j.ApplyEmail),
		ApplyURL:         nullableString(j.ApplyURL),
		Status:           nullableStatus(j.Status),
		PostedAt:         j.PostedAt,
	}
}

// CatalogPosts adapts the full catalog blog.
func CatalogPosts() []Post {
	posts := make([]Post, 0, len(catalog.Posts))
	for _, record := range catalog.Posts {
		posts = append(posts, FromCatalogPost(record))
	}
	return posts
}

// CatalogJobs adapts the full catalog job board.
func CatalogJobs() []Job {
	jobs := make([]Job, 0, len(catalog.Jobs))
	for _, record := range catalog.Jobs {
		jobs = append(jobs, FromCatalogJob(record))
	}
	return jobs
}

func stringOr(value *string, fallback string) string {
	if value == nil || *value == "" {
		return fallback
	}
	return *value
}

func positiveIntOr(value *int, fallback int) int {
	if value == nil || *value <= 0 {
		return fallback
	}
	return *value
}

func statusOr(value *string) Status {
	if value == nil {
		return Defaults.Status
	}
	status := Status(*value)
	if !status.Valid() {
		return Defaults.Status
	}
	return status
}

func nullableString(value string) *string {
	if value == "" {
		return nil
	}
	return &value
}

func nullablePositiveInt(value int) *int {
	if value <= 0 {
		return nil
	}
	return &value
}

func nullableStatus(status Status) *string {
	if !status.Valid() {
		status = Defaults.Status
	}
	s := string(status)
	return &s
}

func sectionsToRow(sections []Section) models.SectionList {
	out := make(models.SectionList, 0, len(sections))
	for _, s := range sections {
		out = append(out, models.Section{
			Heading: s.Heading,
			Body:    copyStrings(s.Body),
			Bullets: copyStrings(s.Bullets),
		})
	}
	return out
}

func sliceOrEmpty(values models.StringSlice) []string {
	if len(values) == 0 {
		return []string{}
	}
	return copyStrings(values)
}

func copyStrings(values []string) []string {
	out := make([]string, len(values))
	copy(out, values)
	return out
}

func sectionsFromRow(sections models.SectionList) []Section {
	out := make([]Section, 0, len(sections))
	for _, s := range sections {
		out = append(out, Section{
			Heading: s.Heading,
			Body:    copyStrings(s.Body),
			Bullets: copyStrings(s.Bullets),
		})
	}
	return out
}

func sectionsFromCatalog(sections []catalog.Section) []Section {
	out := make([]Section, 0, len(sections))
	for _, s := range sections {
		out = append(out, Section{
			Heading: s.Heading,
			Body:    copyStrings(s.Body),
			Bullets: copyStrings(s.Bullets),
		})
	}
	return out
}

func timePtr(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	return &t
}
