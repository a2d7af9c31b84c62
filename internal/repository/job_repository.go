package repository

import (
	"errors"

	"github.com/linque-cms/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// JobRepository is the data access interface for job posting rows.
type JobRepository interface {
	List() ([]models.Job, error)
	GetBySlug(slug string) (*models.Job, error)
	GetByID(id string) (*models.Job, error)
	Upsert(job *models.Job) error
	Delete(id string) error
}

// GormJobRepository is the GORM implementation.
type GormJobRepository struct {
	db *gorm.DB
}

// NewJobRepository creates a job repository.
func NewJobRepository(db *gorm.DB) *GormJobRepository {
	return &GormJobRepository{db: db}
}

// List returns all job rows, posting timestamp descending with undated rows last.
func (r *GormJobRepository) List() ([]models.Job, error) {
	var jobs []models.Job
	if err := r.db.Order(publishedOrder("posted_at")).Find(&jobs).Error; err != nil {
		return nil, err
	}
	return jobs, nil
}

// GetBySlug fetches one job row by slug, or nil when absent.
func (r *GormJobRepository) GetBySlug(slug string) (*models.Job, error) {
	var job models.Job
	if err := r.db.Where("slug = ?", slug).First(&job).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &job, nil
}

// GetByID fetches one job row by id, or nil when absent.
func (r *GormJobRepository) GetByID(id string) (*models.Job, error) {
	var job models.Job
	if err := r.db.Where("id = ?", id).First(&job).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &job, nil
}

// Upsert writes a job row keyed on slug.
func (r *GormJobRepository) Upsert(job *models.Job) error {
	return r.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "slug"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"title",
			"location",
			"employment_type",
			"department",
			"remote_type",
			"summary",
			"description",
			"responsibilities",
			"qualifications",
			"salary_range",
			"apply_email",
			"apply_url",
			"status",
			"posted_at",
			"updated_at",
		}),
	}).Create(job).Error
}

// Delete removes a job row permanently.
func (r *GormJobRepository) Delete(id string) error {
	return r.db.Where("id = ?", id).Delete(&models.Job{}).Error
}
