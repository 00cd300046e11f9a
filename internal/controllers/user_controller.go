package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/shirtstore/shirts-api/internal/models"
	"github.com/shirtstore/shirts-api/internal/services"
)

// UserAuthController handles user registration and login, issuing user JWTs
// separate from the application token path.
type UserAuthController struct {
	userService services.UserService
	jwtSecret   []byte
}

func NewUserAuthController(userService services.UserService, jwtSecret string) *UserAuthController {
	return &UserAuthController{
		userService: userService,
		jwtSecret:   []byte(jwtSecret),
	}
}

// Register godoc
// @Summary Register a user
// @Description Creates a user account and returns a JWT
// @Tags users
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} models.APIError
// @Failure 409 {object} models.APIError
// @Router /api/users/register [post]
func (uc *UserAuthController) Register(c *gin.Context) {
	var req struct {
		Username string `json:"username" binding:"required,min=3"`
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required,min=6"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.NewAPIError(models.ErrValidationFailed, err.Error()))
		return
	}

	user := &models.User{
		Username: req.Username,
		Email:    req.Email,
	}

	if err := uc.userService.CreateUser(user, req.Password); err != nil {
		c.JSON(http.StatusConflict, models.NewAPIError(models.ErrConflict, "user_already_exists"))
		return
	}

	token, err := uc.generateUserToken(user)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.NewAPIError(models.ErrInternalServer, "token_generation_failed"))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "User registered successfully.",
		"token":   token,
		"user": gin.H{
			"userId":   user.UserID,
			"username": user.Username,
			"email":    user.Email,
		},
	})
}

// Login godoc
// @Summary Log a user in
// @Description Verifies username/password and returns a JWT
// @Tags users
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} models.APIError
// @Failure 401 {object} models.APIError
// @Router /api/users/login [post]
func (uc *UserAuthController) Login(c *gin.Context) {
	var req struct {
		Username string `json:"username" binding:"required"`
		Password string `json:"password" binding:"required"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.NewAPIError(models.ErrValidationFailed, err.Error()))
		return
	}

	user, ok := uc.userService.Authenticate(req.Username, req.Password)
	if !ok {
		c.JSON(http.StatusUnauthorized, models.NewAPIError(models.ErrUnauthorized, "Login failed."))
		return
	}

	token, err := uc.generateUserToken(user)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.NewAPIError(models.ErrInternalServer, "token_generation_failed"))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Login successful.",
		"token":   token,
		"user": gin.H{
			"userId":   user.UserID,
			"username": user.Username,
			"email":    user.Email,
		},
	})
}

func (uc *UserAuthController) generateUserToken(user *models.User) (string, error) {
	now := time.Now().UTC()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":   user.Username,
		"uid":   user.UserID,
		"roles": user.Roles,
		"iat":   now.Unix(),
		"exp":   now.Add(24 * time.Hour).Unix(),
	})
	return token.SignedString(uc.jwtSecret)
}
