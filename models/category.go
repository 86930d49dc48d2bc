package models

import (
	"time"
)

type Category struct {
	ID        string    `json:"id" gorm:"primaryKey;size:191"`
	Name      string    `json:"name" gorm:"not null;size:100"`
	Slug      string    `json:"slug" gorm:"uniqueIndex;not null;size:100"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Models []Model `json:"models,omitempty" gorm:"foreignKey:CategoryID"`
}
