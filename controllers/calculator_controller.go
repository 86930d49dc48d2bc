package controllers

import (
	"math"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"motomarket-api/models"
	"motomarket-api/utils"
)

type CalculatorController struct {
	db *gorm.DB
}

func NewCalculatorController(db *gorm.DB) *CalculatorController {
	return &CalculatorController{db: db}
}

type EMIRequest struct {
	BikePrice    float64 `json:"bike_price" binding:"required,gt=0"`
	DownPayment  float64 `json:"down_payment" binding:"gte=0"`
	InterestRate float64 `json:"interest_rate" binding:"required,gt=0"` // annual, percent
	TenureMonths int     `json:"tenure_months" binding:"required,gt=0"`
}

type SaveEMIRequest struct {
	EMIRequest
	ModelID *string `json:"model_id"`
}

// CalculateEMI handles POST /calculator/emi with the standard amortization
// formula: EMI = P*r*(1+r)^n / ((1+r)^n - 1), r being the monthly rate.
func (cc *CalculatorController) CalculateEMI(c *gin.Context) {
	var req EMIRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendValidationError(c, "Bike price, interest rate and tenure are required")
		return
	}

	if req.DownPayment > req.BikePrice {
		utils.SendValidationError(c, "Down payment cannot exceed bike price")
		return
	}
	if req.TenureMonths > 84 {
		utils.SendValidationError(c, "Tenure cannot exceed 84 months")
		return
	}

	quote := computeEMI(req)
	utils.SendSuccess(c, http.StatusOK, quote, "")
}

// SaveCalculation handles POST /calculator/save for authenticated users.
func (cc *CalculatorController) SaveCalculation(c *gin.Context) {
	userID := c.GetString("user_id")

	var req SaveEMIRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendValidationError(c, "Bike price, interest rate and tenure are required")
		return
	}

	if req.DownPayment > req.BikePrice {
		utils.SendValidationError(c, "Down payment cannot exceed bike price")
		return
	}

	quote := computeEMI(req.EMIRequest)

	calculation := models.EMICalculation{
		ID:            uuid.New().String(),
		UserID:        userID,
		ModelID:       req.ModelID,
		BikePrice:     req.BikePrice,
		DownPayment:   req.DownPayment,
		InterestRate:  req.InterestRate,
		TenureMonths:  req.TenureMonths,
		MonthlyEMI:    quote.MonthlyEMI,
		TotalInterest: quote.TotalInterest,
		TotalAmount:   quote.TotalAmount,
	}

	if err := cc.db.Create(&calculation).Error; err != nil {
		utils.SendServerError(c, "Failed to save calculation")
		return
	}

	utils.SendSuccess(c, http.StatusCreated, gin.H{"calculation": calculation}, "Calculation saved")
}

// GetHistory handles GET /calculator/history (last 20 saved quotes).
func (cc *CalculatorController) GetHistory(c *gin.Context) {
	userID := c.GetString("user_id")

	var calculations []models.EMICalculation
	if err := cc.db.Where("user_id = ?", userID).Order("created_at DESC").Limit(20).Find(&calculations).Error; err != nil {
		utils.SendServerError(c, "Failed to fetch calculation history")
		return
	}

	utils.SendSuccess(c, http.StatusOK, gin.H{"calculations": calculations}, "")
}

// ClearHistory handles DELETE /calculator/history.
func (cc *CalculatorController) ClearHistory(c *gin.Context) {
	userID := c.GetString("user_id")

	if err := cc.db.Where("user_id = ?", userID).Delete(&models.EMICalculation{}).Error; err != nil {
		utils.SendServerError(c, "Failed to clear calculation history")
		return
	}

	utils.SendSuccess(c, http.StatusOK, nil, "Calculation history cleared")
}

type EMIQuote struct {
	LoanAmount    float64 `json:"loan_amount"`
	MonthlyEMI    float64 `json:"monthly_emi"`
	TotalInterest float64 `json:"total_interest"`
	TotalAmount   float64 `json:"total_amount"`
}

func computeEMI(req EMIRequest) EMIQuote {
	loan := req.BikePrice - req.DownPayment
	if loan <= 0 {
		return EMIQuote{
			LoanAmount:  0,
			TotalAmount: req.DownPayment,
		}
	}

	monthlyRate := req.InterestRate / (12 * 100)
	n := float64(req.TenureMonths)

	factor := math.Pow(1+monthlyRate, n)
	emi := math.Round(loan * monthlyRate * factor / (factor - 1))

	totalPayment := emi * n

	return EMIQuote{
		LoanAmount:    loan,
		MonthlyEMI:    emi,
		TotalInterest: totalPayment - loan,
		TotalAmount:   req.DownPayment + totalPayment,
	}
}
