package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Post is the remote-store row for a blog post. Optional columns are nullable;
// the content adapter fills in defaults when reading.
type Post struct {
	ID              string      `gorm:"primaryKey;size:36" json:"id"`
	Slug            string      `gorm:"uniqueIndex;not null" json:"slug"`
	Title           string      `gorm:"not null" json:"title"`
	Category        *string     `json:"category"`
	Tags            StringSlice `gorm:"type:json" json:"tags"`
	Excerpt         *string     `json:"excerpt"`
	Description     *string     `json:"description"`
	HeroImage       *string     `json:"hero_image"`
	ReadTimeMinutes *int        `json:"read_time_minutes"`
	Content         SectionList `gorm:"type:json" json:"content"`
	Status          *string     `gorm:"index" json:"status"`
	PublishedAt     *time.Time  `gorm:"index" json:"published_at"`
	CreatedAt       time.Time   `json:"created_at"`
	UpdatedAt       time.Time   `json:"updated_at"`
}

// TableName sets the table name.
func (Post) TableName() string {
	return "posts"
}

// BeforeCreate assigns a UUID primary key when none is set.
func (p *Post) BeforeCreate(*gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}
