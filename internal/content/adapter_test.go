package content

import (
	"testing"
	"time"

	"github.com/linque-cms/internal/catalog"
	"github.com/linque-cms/internal/models"
)

func TestFromPostRowAppliesDefaults(t *testing.T) {
	row := models.Post{
		ID:    "6f1a9f2e-0000-0000-0000-000000000001",
		Slug:  "bare-post",
		Title: "Bare Post",
	}

	post := FromPostRow(row)

	if post.Category != Defaults.PostCategory {
		t.Fatalf("expected default category %q, got %q", Defaults.PostCategory, post.Category)
	}
	if post.ReadTimeMinutes != Defaults.ReadTimeMinutes {
		t.Fatalf("expected default read time %d, got %d", Defaults.ReadTimeMinutes, post.ReadTimeMinutes)
	}
	if post.Status != StatusDraft {
		t.Fatalf("expected missing status to default to draft, got %q", post.Status)
	}
	if post.Tags == nil || len(post.Tags) != 0 {
		t.Fatalf("expected empty tag slice, got %#v", post.Tags)
	}
	if post.Content == nil || len(post.Content) != 0 {
		t.Fatalf("expected empty content, got %#v", post.Content)
	}
	if post.PublishedAt != nil {
		t.Fatalf("expected nil published_at, got %v", post.PublishedAt)
	}
}

func TestFromPostRowExcerptFallsBackToDescription(t *testing.T) {
	description := "A summary."
	row := models.Post{Slug: "p", Title: "P", Description: &description}

	post := FromPostRow(row)
	if post.Excerpt != description {
		t.Fatalf("expected excerpt to fall back to description, got %q", post.Excerpt)
	}
}

func TestFromPostRowCoercesMalformedOptionalFields(t *testing.T) {
	badStatus := "archived"
	badReadTime := -3
	row := models.Post{
		Slug:            "p",
		Title:           "P",
		Status:          &badStatus,
		ReadTimeMinutes: &badReadTime,
	}

	post := FromPostRow(row)
	if post.Status != Defaults.Status {
		t.Fatalf("expected unknown status coerced to %q, got %q", Defaults.Status, post.Status)
	}
	if post.ReadTimeMinutes != Defaults.ReadTimeMinutes {
		t.Fatalf("expected non-positive read time coerced to %d, got %d", Defaults.ReadTimeMinutes, post.ReadTimeMinutes)
	}
}

func TestFromJobRowAppliesDefaults(t *testing.T) {
	row := models.Job{Slug: "bare-job", Title: "Bare Job"}

	job := FromJobRow(row)

	if job.RemoteType != Defaults.JobRemoteType {
		t.Fatalf("expected default remote type %q, got %q", Defaults.JobRemoteType, job.RemoteType)
	}
	if job.Status != StatusDraft {
		t.Fatalf("expected missing status to default to draft, got %q", job.Status)
	}
	if job.Responsibilities == nil || len(job.Responsibilities) != 0 {
		t.Fatalf("expected empty responsibilities, got %#v", job.Responsibilities)
	}
	if job.Qualifications == nil || len(job.Qualifications) != 0 {
		t.Fatalf("expected empty qualifications, got %#v", job.Qualifications)
	}
}

func TestFromCatalogRecordsArePublishedWithSlugID(t *testing.T) {
	job := FromCatalogJob(catalog.Jobs[0])
	if job.Status != StatusPublished {
		t.Fatalf("catalog job should be published, got %q", job.Status)
	}
	if job.ID != job.Slug {
		t.Fatalf("catalog job id should equal slug, got id=%q slug=%q", job.ID, job.Slug)
	}
	if job.PostedAt == nil || job.PostedAt.IsZero() {
		t.Fatalf("catalog job should carry posted_at")
	}

	post := FromCatalogPost(catalog.Posts[0])
	if post.Status != StatusPublished {
		t.Fatalf("catalog post should be published, got %q", post.Status)
	}
	if post.ID != post.Slug {
		t.Fatalf("catalog post id should equal slug, got id=%q slug=%q", post.ID, post.Slug)
	}
}

func TestAdapterCopiesSlices(t *testing.T) {
	tags := models.StringSlice{"one", "two"}
	row := models.Post{Slug: "p", Title: "P", Tags: tags}

	post := FromPostRow(row)
	post.Tags[0] = "mutated"
	if tags[0] != "one" {
		t.Fatalf("adapter must not alias source slices")
	}
}

func TestTimePtr(t *testing.T) {
	if timePtr(time.Time{}) != nil {
		t.Fatalf("zero time should map to nil")
	}
	now := time.Now()
	got := timePtr(now)
	if got == nil || !got.Equal(now) {
		t.Fatalf("non-zero time should round-trip")
	}
}
