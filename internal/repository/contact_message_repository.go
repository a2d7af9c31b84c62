package repository

import (
	"github.com/linque-cms/internal/models"

	"gorm.io/gorm"
)

// ContactMessageRepository stores contact form submissions.
type ContactMessageRepository interface {
	Create(msg *models.ContactMessage) error
	List(page, pageSize int) ([]models.ContactMessage, int64, error)
}

type GormContactMessageRepository struct {
	db *gorm.DB
}

func NewContactMessageRepository(db *gorm.DB) *GormContactMessageRepository {
	return &GormContactMessageRepository{db: db}
}

func (r *GormContactMessageRepository) Create(msg *models.ContactMessage) error {
	return r.db.Create(msg).Error
}

// List returns a page of messages, newest first, plus the total count.
func (r *GormContactMessageRepository) List(page, pageSize int) ([]models.ContactMessage, int64, error) {
	var msgs []models.ContactMessage
	var total int64
	if err := r.db.Model(&models.ContactMessage{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}
	offset := (page - 1) * pageSize
	if err := r.db.Order("created_at DESC").Offset(offset).Limit(pageSize).Find(&msgs).Error; err != nil {
		return nil, 0, err
	}
	return msgs, total, nil
}
