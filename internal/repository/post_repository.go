package repository

import (
	"errors"

	"github.com/linque-cms/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// PostRepository is the data access interface for blog post rows.
type PostRepository interface {
	List() ([]models.Post, error)
	GetBySlug(slug string) (*models.Post, error)
	GetByID(id string) (*models.Post, error)
	Upsert(post *models.Post) error
	Delete(id string) error
}

// GormPostRepository is the GORM implementation.
type GormPostRepository struct {
	db *gorm.DB
}

// NewPostRepository creates a post repository.
func NewPostRepository(db *gorm.DB) *GormPostRepository {
	return &GormPostRepository{db: db}
}

// List returns all post rows, publish timestamp descending with unpublished
// rows last. Status filtering happens above the repository, after adaptation.
func (r *GormPostRepository) List() ([]models.Post, error) {
	var posts []models.Post
	if err := r.db.Order(publishedOrder("published_at")).Find(&posts).Error; err != nil {
		return nil, err
	}
	return posts, nil
}

// GetBySlug fetches one post row by slug, or nil when absent.
func (r *GormPostRepository) GetBySlug(slug string) (*models.Post, error) {
	var post models.Post
	if err := r.db.Where("slug = ?", slug).First(&post).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &post, nil
}

// GetByID fetches one post row by id, or nil when absent.
func (r *GormPostRepository) GetByID(id string) (*models.Post, error) {
	var post models.Post
	if err := r.db.Where("id = ?", id).First(&post).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &post, nil
}

// Upsert writes a post row keyed on slug: saving an existing slug overwrites
// the row in place instead of duplicating it.
func (r *GormPostRepository) Upsert(post *models.Post) error {
	return r.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "slug"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"title",
			"category",
			"tags",
			"excerpt",
			"description",
			"hero_image",
			"read_time_minutes",
			"content",
			"status",
			"published_at",
			"updated_at",
		}),
	}).Create(post).Error
}

// Delete removes a post row permanently.
func (r *GormPostRepository) Delete(id string) error {
	return r.db.Where("id = ?", id).Delete(&models.Post{}).Error
}
