package middleware

import (
	"context"
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"storefront-be/internal/apperrors"
	"storefront-be/internal/jwt"
	"storefront-be/internal/models"
)

const currentUserKey = "currentUser"

// Rejection codes returned by AuthMiddleware
const (
	CodeMissingToken    = "MISSING_TOKEN"
	CodeMalformedHeader = "MALFORMED_HEADER"
	CodeInvalidToken    = "INVALID_TOKEN"
	CodeExpiredToken    = "EXPIRED_TOKEN"
	CodeSubjectNotFound = "SUBJECT_NOT_FOUND"
)

// TokenValidator verifies a bearer token and returns its subject
type TokenValidator interface {
	ValidateToken(token string) (int64, error)
}

// IdentityResolver loads the public profile of a token subject
type IdentityResolver interface {
	Identity(ctx context.Context, userID int64) (*models.UserResponse, error)
}

// AuthMiddleware requires a valid "Authorization: Bearer <token>" header and
// stores the caller's identity in the context
func AuthMiddleware(tokens TokenValidator, identities IdentityResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			reject(c, CodeMissingToken, "Access token not provided")
			return
		}

		// Header must be: "Bearer <token>"
		scheme, token, found := strings.Cut(authHeader, " ")
		if !found || !strings.EqualFold(scheme, "Bearer") || token == "" {
			reject(c, CodeMalformedHeader, "Invalid token format")
			return
		}

		userID, err := tokens.ValidateToken(token)
		if err != nil {
			if errors.Is(err, jwt.ErrTokenExpired) {
				reject(c, CodeExpiredToken, "Token expired")
				return
			}
			reject(c, CodeInvalidToken, "Invalid token")
			return
		}

		identity, err := identities.Identity(c.Request.Context(), userID)
		if errors.Is(err, apperrors.ErrNotFound) {
			reject(c, CodeSubjectNotFound, "User not found")
			return
		}
		if err != nil {
			log.Printf("ERROR: failed to resolve user %d: %v", userID, err)
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
			return
		}

		c.Set(currentUserKey, identity)
		c.Next()
	}
}

// CurrentUser returns the identity stored by AuthMiddleware
func CurrentUser(c *gin.Context) (*models.UserResponse, bool) {
	value, exists := c.Get(currentUserKey)
	if !exists {
		return nil, false
	}
	identity, ok := value.(*models.UserResponse)
	return identity, ok
}

func reject(c *gin.Context, code, message string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
		"error": message,
		"code":  code,
	})
}
