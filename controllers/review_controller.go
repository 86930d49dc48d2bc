package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"motomarket-api/models"
	"motomarket-api/utils"
)

type ReviewController struct {
	db *gorm.DB
}

func NewReviewController(db *gorm.DB) *ReviewController {
	return &ReviewController{db: db}
}

type CreateReviewRequest struct {
	Title   string   `json:"title" binding:"required"`
	Content string   `json:"content" binding:"required"`
	Rating  int      `json:"rating" binding:"required,min=1,max=5"`
	Pros    []string `json:"pros"`
	Cons    []string `json:"cons"`
}

// CreateReview handles POST /models/:slug/reviews. New reviews start
// unapproved and only count toward the rating aggregate once approved.
func (rc *ReviewController) CreateReview(c *gin.Context) {
	userID := c.GetString("user_id")
	slug := c.Param("slug")

	var model models.Model
	if err := rc.db.Where("slug = ?", slug).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.SendNotFound(c, "Model not found")
			return
		}
		utils.SendServerError(c, "Failed to fetch model")
		return
	}

	var req CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendValidationError(c, "Title, content and a 1-5 rating are required")
		return
	}

	review := models.Review{
		ID:         uuid.New().String(),
		ModelID:    model.ID,
		UserID:     userID,
		Title:      req.Title,
		Content:    req.Content,
		Rating:     req.Rating,
		Pros:       models.StringSliceType(req.Pros),
		Cons:       models.StringSliceType(req.Cons),
		IsApproved: false,
	}

	if err := rc.db.Create(&review).Error; err != nil {
		utils.SendServerError(c, "Failed to submit review")
		return
	}

	utils.SendSuccess(c, http.StatusCreated, gin.H{"review": review},
		"Review submitted and pending approval")
}
