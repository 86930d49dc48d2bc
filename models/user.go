package models

import (
	"time"
)

type User struct {
	ID        string    `json:"id" gorm:"primaryKey;size:191"`
	Name      string    `json:"name" gorm:"not null;size:255"`
	Email     string    `json:"email" gorm:"uniqueIndex;not null;size:255"`
	Password  string    `json:"-" gorm:"not null;size:255"`
	Role      string    `json:"role" gorm:"default:'USER';size:20"`
	Avatar    *string   `json:"image" gorm:"size:500"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Reviews         []Review         `json:"reviews,omitempty" gorm:"foreignKey:UserID"`
	EMICalculations []EMICalculation `json:"emi_calculations,omitempty" gorm:"foreignKey:UserID"`
}
