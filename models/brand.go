package models

import (
	"time"
)

type Brand struct {
	ID        string    `json:"id" gorm:"primaryKey;size:191"`
	Name      string    `json:"name" gorm:"not null;size:100"`
	Slug      string    `json:"slug" gorm:"uniqueIndex;not null;size:100"`
	LogoURL   *string   `json:"logo" gorm:"size:500"`
	Country   string    `json:"country" gorm:"size:100"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Models []Model `json:"models,omitempty" gorm:"foreignKey:BrandID"`
}
