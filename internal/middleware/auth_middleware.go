package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	"github.com/ArowuTest/ticket-ledger/pkg/jwt"
)

// Context keys set by JWTAuthMiddleware
const (
	ContextOperatorID    = "operatorID"
	ContextOperatorEmail = "operatorEmail"
	ContextOperatorRole  = "operatorRole"
)

// JWTAuthMiddleware creates a gin middleware that requires a valid operator token
func JWTAuthMiddleware(tokens *jwt.TokenService) gin.HandlerFunc {
	return func(c *gin.Context) {
		const BearerSchema = "Bearer "
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header is required"})
			return
		}
		if !strings.HasPrefix(authHeader, BearerSchema) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header must start with Bearer "})
			return
		}

		claims, err := tokens.Parse(strings.TrimSpace(authHeader[len(BearerSchema):]))
		if err != nil {
			log.WithFields(log.Fields{
				"path":  c.FullPath(),
				"error": err,
			}).Warn("Token validation failed")
			if errors.Is(err, jwt.ErrTokenExpired) {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Token has expired"})
			} else {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			}
			return
		}

		c.Set(ContextOperatorID, claims.Subject)
		c.Set(ContextOperatorEmail, claims.Email)
		c.Set(ContextOperatorRole, claims.Role)
		c.Next()
	}
}
