package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"motomarket-api/models"
	"motomarket-api/utils"
)

type UserController struct {
	db *gorm.DB
}

func NewUserController(db *gorm.DB) *UserController {
	return &UserController{db: db}
}

// GetProfile handles GET /users/profile for the dashboard.
func (uc *UserController) GetProfile(c *gin.Context) {
	userID := c.GetString("user_id")

	var user models.User
	if err := uc.db.Preload("Reviews").First(&user, "id = ?", userID).Error; err != nil {
		utils.SendNotFound(c, "User not found")
		return
	}

	user.Password = ""
	utils.SendSuccess(c, http.StatusOK, gin.H{"user": user}, "")
}

func (uc *UserController) UpdateProfile(c *gin.Context) {
	userID := c.GetString("user_id")

	var req struct {
		Name   *string `json:"name"`
		Avatar *string `json:"image"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendValidationError(c, "Invalid profile payload")
		return
	}

	updates := map[string]interface{}{}
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Avatar != nil {
		updates["avatar"] = *req.Avatar
	}

	if len(updates) == 0 {
		utils.SendValidationError(c, "Nothing to update")
		return
	}

	if err := uc.db.Model(&models.User{}).Where("id = ?", userID).Updates(updates).Error; err != nil {
		utils.SendServerError(c, "Failed to update profile")
		return
	}

	utils.SendSuccess(c, http.StatusOK, nil, "Profile updated successfully")
}
