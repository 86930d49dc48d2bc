package models

import (
	"time"
)

// Review is a user review of a model. Only approved reviews are served and
// counted into the rating aggregate.
type Review struct {
	ID         string          `json:"id" gorm:"primaryKey;size:191"`
	ModelID    string          `json:"model_id" gorm:"not null;size:191;index"`
	UserID     string          `json:"user_id" gorm:"not null;size:191"`
	Title      string          `json:"title" gorm:"not null;size:255"`
	Content    string          `json:"content" gorm:"type:text"`
	Rating     int             `json:"rating" gorm:"not null"`
	Pros       StringSliceType `json:"pros" gorm:"type:json"`
	Cons       StringSliceType `json:"cons" gorm:"type:json"`
	IsApproved bool            `json:"is_approved" gorm:"default:false;index"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`

	User User `json:"user" gorm:"foreignKey:UserID"`
}
