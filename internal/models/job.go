package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Job is the remote-store row for a job posting.
type Job struct {
	ID               string      `gorm:"primaryKey;size:36" json:"id"`
	Slug             string      `gorm:"uniqueIndex;not null" json:"slug"`
	Title            string      `gorm:"not null" json:"title"`
	Location         *string     `json:"location"`
	EmploymentType   *string     `json:"employment_type"`
	Department       *string     `json:"department"`
	RemoteType       *string     `json:"remote_type"`
	Summary          *string     `json:"summary"`
	Description      *string     `json:"description"`
	Responsibilities StringSlice `gorm:"type:json" json:"responsibilities"`
	Qualifications   StringSlice `gorm:"type:json" json:"qualifications"`
	SalaryRange      *string     `json:"salary_range"`
	ApplyEmail       *string     `json:"apply_email"`
	ApplyURL         *string     `gorm:"column:apply_url" json:"apply_url"`
	Status           *string     `gorm:"index" json:"status"`
	PostedAt         *time.Time  `gorm:"index" json:"posted_at"`
	CreatedAt        time.Time   `json:"created_at"`
	UpdatedAt        time.Time   `json:"updated_at"`
}

// TableName sets the table name.
func (Job) TableName() string {
	return "jobs"
}

// BeforeCreate assigns a UUID primary key when none is set.
func (j *Job) BeforeCreate(*gorm.DB) error {
	if j.ID == "" {
		j.ID = uuid.NewString()
	}
	return nil
}
