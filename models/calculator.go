package models

import (
	"time"
)

// EMICalculation is a saved loan quote for a bike purchase.
type EMICalculation struct {
	ID            string    `json:"id" gorm:"primaryKey;size:191"`
	UserID        string    `json:"user_id" gorm:"not null;size:191;index"`
	ModelID       *string   `json:"model_id" gorm:"size:191"`
	BikePrice     float64   `json:"bike_price" gorm:"not null"`
	DownPayment   float64   `json:"down_payment" gorm:"not null"`
	InterestRate  float64   `json:"interest_rate" gorm:"not null"` // annual, percent
	TenureMonths  int       `json:"tenure_months" gorm:"not null"`
	MonthlyEMI    float64   `json:"monthly_emi" gorm:"not null"`
	TotalInterest float64   `json:"total_interest" gorm:"not null"`
	TotalAmount   float64   `json:"total_amount" gorm:"not null"`
	CreatedAt     time.Time `json:"created_at"`

	User User `json:"user" gorm:"foreignKey:UserID"`
}
