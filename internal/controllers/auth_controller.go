package controllers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"storefront-be/internal/apperrors"
	"storefront-be/internal/middleware"
	"storefront-be/internal/models"
	"storefront-be/internal/service"
)

type AuthController struct {
	authService service.AuthService
}

func NewAuthController(authService service.AuthService) *AuthController {
	return &AuthController{
		authService: authService,
	}
}

// Register handles POST /api/auth/register
func (ac *AuthController) Register(c *gin.Context) {
	var req models.RegisterRequest
	if issues := bindJSON(c, &req); issues != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":  issues[0].Message,
			"issues": issues,
		})
		return
	}

	response, err := ac.authService.Register(c.Request.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrDuplicateEmail):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Email already in use"})
		case errors.Is(err, apperrors.ErrPasswordTooLong):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Password must be at most 72 bytes"})
		default:
			log.Printf("ERROR: register failed: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}

	c.JSON(http.StatusCreated, response)
}

// Login handles POST /api/auth/login
func (ac *AuthController) Login(c *gin.Context) {
	var req models.LoginRequest
	if issues := bindJSON(c, &req); issues != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":  issues[0].Message,
			"issues": issues,
		})
		return
	}

	response, err := ac.authService.Login(c.Request.Context(), &req)
	if err != nil {
		// Unknown email and wrong password get the same answer
		if errors.Is(err, apperrors.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password"})
			return
		}
		log.Printf("ERROR: login failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, response)
}

// Me handles GET /api/auth/me - returns the authenticated user
func (ac *AuthController) Me(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "User authenticated",
		"user":    user,
	})
}
