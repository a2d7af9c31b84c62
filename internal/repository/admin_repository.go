package repository

import (
	"errors"

	"github.com/linque-cms/internal/models"

	"gorm.io/gorm"
)

// AdminRepository looks up panel accounts.
type AdminRepository interface {
	GetByUsername(username string) (*models.Admin, error)
}

type GormAdminRepository struct {
	db *gorm.DB
}

func NewAdminRepository(db *gorm.DB) *GormAdminRepository {
	return &GormAdminRepository{db: db}
}

func (r *GormAdminRepository) GetByUsername(username string) (*models.Admin, error) {
	var admin models.Admin
	if err := r.db.Where("username = ?", username).First(&admin).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &admin, nil
}
