package models

import "time"

// ContactMessage is one submission from the public contact form.
type ContactMessage struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	Name      string    `gorm:"not null" json:"name"`
	Email     string    `gorm:"not null;index" json:"email"`
	Company   string    `json:"company"`
	Phone     string    `json:"phone"`
	Message   string    `gorm:"not null" json:"message"`
	CreatedAt time.Time `gorm:"index" json:"created_at"`
}

// TableName sets the table name.
func (ContactMessage) TableName() string {
	return "contact_messages"
}
