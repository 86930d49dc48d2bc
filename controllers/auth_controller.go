package controllers

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"motomarket-api/middleware"
	"motomarket-api/models"
	"motomarket-api/services"
	"motomarket-api/utils"
)

const (
	tokenTTL        = 24 * time.Hour
	refreshTokenTTL = 7 * 24 * time.Hour
)

type AuthController struct {
	db           *gorm.DB
	jwtSecret    string
	emailService *services.EmailService
}

func NewAuthController(db *gorm.DB, jwtSecret string, emailService *services.EmailService) *AuthController {
	return &AuthController{
		db:           db,
		jwtSecret:    jwtSecret,
		emailService: emailService,
	}
}

type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

func (ac *AuthController) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendValidationError(c, "Name, email and password are required")
		return
	}

	// Check if email already exists
	var existingUser models.User
	if err := ac.db.Where("email = ?", req.Email).First(&existingUser).Error; err == nil {
		utils.SendError(c, http.StatusConflict, "Email already registered")
		return
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		utils.SendServerError(c, "Registration failed")
		return
	}

	user := models.User{
		ID:       uuid.New().String(),
		Name:     req.Name,
		Email:    req.Email,
		Password: string(hashedPassword),
		Role:     "USER",
	}

	if err := ac.db.Create(&user).Error; err != nil {
		utils.SendServerError(c, "Registration failed")
		return
	}

	// Welcome email must never block or fail the registration
	go func() {
		if err := ac.emailService.SendWelcomeEmail(user.Email, user.Name); err != nil {
			log.Printf("Welcome email for %s failed: %v", user.Email, err)
		}
	}()

	user.Password = ""
	utils.SendSuccess(c, http.StatusCreated, gin.H{"user": user},
		"Registration successful. You can now log in.")
}

func (ac *AuthController) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendValidationError(c, "Email and password are required")
		return
	}

	var user models.User
	if err := ac.db.Where("email = ?", req.Email).First(&user).Error; err != nil {
		utils.SendError(c, http.StatusUnauthorized, "Invalid email or password")
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		utils.SendError(c, http.StatusUnauthorized, "Invalid email or password")
		return
	}

	token, err := ac.generateJWT(user.ID, user.Email, tokenTTL)
	if err != nil {
		utils.SendServerError(c, "Authentication failed")
		return
	}

	refreshToken, err := ac.generateJWT(user.ID, user.Email, refreshTokenTTL)
	if err != nil {
		utils.SendServerError(c, "Authentication failed")
		return
	}

	// Session cookies mirror the token lifetimes
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie("token", token, int(tokenTTL.Seconds()), "/", "", false, true)
	c.SetCookie("refresh_token", refreshToken, int(refreshTokenTTL.Seconds()), "/", "", false, true)

	user.Password = ""
	utils.SendSuccess(c, http.StatusOK, gin.H{
		"user":  user,
		"token": token,
	}, "Login successful")
}

func (ac *AuthController) Logout(c *gin.Context) {
	c.SetCookie("token", "", -1, "/", "", false, true)
	c.SetCookie("refresh_token", "", -1, "/", "", false, true)

	utils.SendSuccess(c, http.StatusOK, nil, "Successfully logged out")
}

// Session handles GET /auth/session: the dashboard gate. An absent or
// invalid token is not an error, just an unauthenticated session.
func (ac *AuthController) Session(c *gin.Context) {
	tokenString := middleware.TokenFromRequest(c)
	if tokenString == "" {
		utils.SendSuccess(c, http.StatusOK, gin.H{"authenticated": false}, "")
		return
	}

	userID, _, err := middleware.ParseToken(tokenString, ac.jwtSecret)
	if err != nil {
		utils.SendSuccess(c, http.StatusOK, gin.H{"authenticated": false}, "")
		return
	}

	var user models.User
	if err := ac.db.First(&user, "id = ?", userID).Error; err != nil {
		utils.SendSuccess(c, http.StatusOK, gin.H{"authenticated": false}, "")
		return
	}

	user.Password = ""
	utils.SendSuccess(c, http.StatusOK, gin.H{
		"authenticated": true,
		"user":          user,
	}, "")
}

func (ac *AuthController) generateJWT(userID, email string, ttl time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"user_id": userID,
		"email":   email,
		"exp":     time.Now().Add(ttl).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(ac.jwtSecret))
}
