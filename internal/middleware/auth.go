package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/openpitch/field-booking/internal/config"
	"github.com/openpitch/field-booking/internal/domain/access"
)

const (
	ContextUserID   = "userID"
	ContextUserRole = "userRole"
)

func AuthMiddleware(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		requester, ok := requesterFromHeader(c, cfg)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid_token"})
			return
		}

		c.Set(ContextUserID, requester.ID)
		c.Set(ContextUserRole, string(requester.Role))

		c.Next()
	}
}

// OptionalAuth resolves the requester when a valid bearer token is
// present but lets anonymous requests through. Public reads use it so
// role-dependent detail (a field's bookings) can still be served to
// authenticated callers.
func OptionalAuth(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		if requester, ok := requesterFromHeader(c, cfg); ok {
			c.Set(ContextUserID, requester.ID)
			c.Set(ContextUserRole, string(requester.Role))
		}
		c.Next()
	}
}

// RequireRole aborts with 403 unless the authenticated requester holds
// one of the given roles. Must run after AuthMiddleware.
func RequireRole(roles ...access.Role) gin.HandlerFunc {
	allowed := make(map[access.Role]bool, len(roles))
	for _, r := range roles {
		allowed[r] = true
	}

	return func(c *gin.Context) {
		requester, ok := RequesterFrom(c)
		if !ok || !allowed[requester.Role] {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "forbidden"})
			return
		}
		c.Next()
	}
}

// RequesterFrom rebuilds the explicit requester value handed to every
// use case. ok is false on anonymous requests.
func RequesterFrom(c *gin.Context) (access.Requester, bool) {
	idVal, okID := c.Get(ContextUserID)
	roleVal, okRole := c.Get(ContextUserRole)
	if !okID || !okRole {
		return access.Requester{}, false
	}

	role, ok := access.ParseRole(roleVal.(string))
	if !ok {
		return access.Requester{}, false
	}

	return access.Requester{ID: idVal.(uint), Role: role}, true
}

func requesterFromHeader(c *gin.Context, cfg *config.Config) (access.Requester, bool) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return access.Requester{}, false
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return access.Requester{}, false
	}

	token, err := jwt.Parse(parts[1], func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrTokenMalformed
		}
		return []byte(cfg.JWTSecret), nil
	})
	if err != nil || !token.Valid {
		return access.Requester{}, false
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return access.Requester{}, false
	}

	userID, okID := claims["sub"].(float64)
	roleStr, _ := claims["role"].(string)
	role, okRole := access.ParseRole(roleStr)
	if !okID || !okRole {
		return access.Requester{}, false
	}

	return access.Requester{ID: uint(userID), Role: role}, true
}
