package service

import (
	"fmt"

	"github.com/linque-cms/internal/catalog"
	"github.com/linque-cms/internal/content"
	"github.com/linque-cms/internal/logger"
	"github.com/linque-cms/internal/repository"
)

// ContentService resolves posts and jobs from the remote store when one is
// configured, falling back to the compiled-in catalog otherwise. Reads fail
// open: a store error is logged and the catalog is served, so the public site
// never goes dark because the database did. Writes fail closed: without a
// configured store they return ErrStoreNotConfigured.
type ContentService struct {
	posts repository.PostRepository
	jobs  repository.JobRepository
}

// NewContentService creates a resolver. Pass nil repositories when no store
// is configured; every read then serves the catalog.
func NewContentService(posts repository.PostRepository, jobs repository.JobRepository) *ContentService {
	return &ContentService{posts: posts, jobs: jobs}
}

// StoreConfigured reports whether a remote store backs this resolver.
func (s *ContentService) StoreConfigured() bool {
	return s.posts != nil && s.jobs != nil
}

// ListPosts returns all posts, newest first. Draft records are dropped
// unless includeDrafts is set. The catalog is consulted only when the store
// is unconfigured, erroring, or holds no rows at all; a store whose rows are
// all drafts yields an empty public listing, not the catalog.
func (s *ContentService) ListPosts(includeDrafts bool) []content.Post {
	if s.posts != nil {
		rows, err := s.posts.List()
		if err != nil {
			logger.Warnw("content_store_read_failed", "resource", "posts", "error", err)
		} else if len(rows) > 0 {
			posts := make([]content.Post, 0, len(rows))
			for _, row := range rows {
				posts = append(posts, content.FromPostRow(row))
			}
			return filterPosts(posts, includeDrafts)
		}
	}
	return filterPosts(content.CatalogPosts(), includeDrafts)
}

// GetPostBySlug resolves one post. A store miss or a store error falls back
// to the catalog. A store row the store does hold is authoritative: when it
// is hidden from the caller the result is ErrNotFound even if the catalog
// carries an older copy of the same slug.
func (s *ContentService) GetPostBySlug(slug string, includeDrafts bool) (content.Post, error) {
	if s.posts != nil {
		row, err := s.posts.GetBySlug(slug)
		if err != nil {
			logger.Warnw("content_store_read_failed", "resource", "posts", "slug", slug, "error", err)
		} else if row != nil {
			post := content.FromPostRow(*row)
			if includeDrafts || post.Status.Published() {
				return post, nil
			}
			return content.Post{}, ErrNotFound
		}
	}
	if record, ok := catalog.PostBySlug(slug); ok {
		return content.FromCatalogPost(record), nil
	}
	return content.Post{}, ErrNotFound
}

// UpsertPost writes a post keyed on its slug and returns the saved record.
func (s *ContentService) UpsertPost(post content.Post) (content.Post, error) {
	if s.posts == nil {
		return content.Post{}, ErrStoreNotConfigured
	}
	if post.Slug == "" || post.Title == "" {
		return content.Post{}, fmt.Errorf("%w: slug and title are required", ErrInvalidInput)
	}
	row := content.ToPostRow(post)
	if err := s.posts.Upsert(&row); err != nil {
		return content.Post{}, err
	}
	saved, err := s.posts.GetBySlug(post.Slug)
	if err != nil {
		return content.Post{}, err
	}
	if saved == nil {
		return content.Post{}, ErrNotFound
	}
	logger.Infow("post_upserted", "slug", post.Slug, "id", saved.ID)
	return content.FromPostRow(*saved), nil
}

// DeletePost removes a post by id.
func (s *ContentService) DeletePost(id string) error {
	if s.posts == nil {
		return ErrStoreNotConfigured
	}
	if id == "" {
		return fmt.Errorf("%w: id is required", ErrInvalidInput)
	}
	if err := s.posts.Delete(id); err != nil {
		return err
	}
	logger.Infow("post_deleted", "id", id)
	return nil
}

// ListJobs returns all job postings, newest first, honoring includeDrafts
// the same way ListPosts does.
func (s *ContentService) ListJobs(includeDrafts bool) []content.Job {
	if s.jobs != nil {
		rows, err := s.jobs.List()
		if err != nil {
			logger.Warnw("content_store_read_failed", "resource", "jobs", "error", err)
		} else if len(rows) > 0 {
			jobs := make([]content.Job, 0, len(rows))
			for _, row := range rows {
				jobs = append(jobs, content.FromJobRow(row))
			}
			return filterJobs(jobs, includeDrafts)
		}
	}
	return filterJobs(content.CatalogJobs(), includeDrafts)
}

// GetJobBySlug resolves one job posting with the same store-row authority
// rules as GetPostBySlug.
func (s *ContentService) GetJobBySlug(slug string, includeDrafts bool) (content.Job, error) {
	if s.jobs != nil {
		row, err := s.jobs.GetBySlug(slug)
		if err != nil {
			logger.Warnw("content_store_read_failed", "resource", "jobs", "slug", slug, "error", err)
		} else if row != nil {
			job := content.FromJobRow(*row)
			if includeDrafts || job.Status.Published() {
				return job, nil
			}
			return content.Job{}, ErrNotFound
		}
	}
	if record, ok := catalog.JobBySlug(slug); ok {
		return content.FromCatalogJob(record), nil
	}
	return content.Job{}, ErrNotFound
}

// UpsertJob writes a job posting keyed on its slug and returns the saved record.
func (s *ContentService) UpsertJob(job content.Job) (content.Job, error) {
	if s.jobs == nil {
		return content.Job{}, ErrStoreNotConfigured
	}
	if job.Slug == "" || job.Title == "" {
		return content.Job{}, fmt.Errorf("%w: slug and title are required", ErrInvalidInput)
	}
	row := content.ToJobRow(job)
	if err := s.jobs.Upsert(&row); err != nil {
		return content.Job{}, err
	}
	saved, err := s.jobs.GetBySlug(job.Slug)
	if err != nil {
		return content.Job{}, err
	}
	if saved == nil {
		return content.Job{}, ErrNotFound
	}
	logger.Infow("job_upserted", "slug", job.Slug, "id", saved.ID)
	return content.FromJobRow(*saved), nil
}

// DeleteJob removes a job posting by id.
func (s *ContentService) DeleteJob(id string) error {
	if s.jobs == nil {
		return ErrStoreNotConfigured
	}
	if id == "" {
		return fmt.Errorf("%w: id is required", ErrInvalidInput)
	}
	if err := s.jobs.Delete(id); err != nil {
		return err
	}
	logger.Infow("job_deleted", "id", id)
	return nil
}

func filterPosts(posts []content.Post, includeDrafts bool) []content.Post {
	if includeDrafts {
		return posts
	}
	out := make([]content.Post, 0, len(posts))
	for _, p := range posts {
		if p.Status.Published() {
			out = append(out, p)
		}
	}
	return out
}

func filterJobs(jobs []content.Job, includeDrafts bool) []content.Job {
	if includeDrafts {
		return jobs
	}
	out := make([]content.Job, 0, len(jobs))
	for _, j := range jobs {
		if j.Status.Published() {
			out = append(out, j)
		}
	}
	return out
}
