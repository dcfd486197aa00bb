package middleware

import (
	"strings"

	"armust-news-cms/config"
	"armust-news-cms/helper"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v4"
)

var HTTPHelper = &helper.HTTPHelper{}

// Claims carries both principal kinds. Kind distinguishes contributor
// tokens from staff tokens; only the matching id field is set.
type Claims struct {
	UserID           uint   `json:"user_id,omitempty"`
	JournalistID     uint   `json:"journalist_id,omitempty"`
	Username         string `json:"username"`
	Role             string `json:"role,omitempty"`
	RegistrationType string `json:"registration_type,omitempty"`
	Kind             string `json:"kind"`
	jwt.RegisteredClaims
}

func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			HTTPHelper.SendUnauthorizedError(c, "Authorization header required", HTTPHelper.EmptyJsonMap())
			c.Abort()
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			HTTPHelper.SendUnauthorizedError(c, "Bearer token required", HTTPHelper.EmptyJsonMap())
			c.Abort()
			return
		}

		claims := &Claims{}

		token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return config.JWTSecret, nil
		})

		if err != nil {
			HTTPHelper.SendUnauthorizedError(c, "Invalid token: "+err.Error(), HTTPHelper.EmptyJsonMap())
			c.Abort()
			return
		}

		if !token.Valid {
			HTTPHelper.SendUnauthorizedError(c, "Token is not valid", HTTPHelper.EmptyJsonMap())
			c.Abort()
			return
		}

		c.Set("kind", claims.Kind)
		c.Set("username", claims.Username)
		switch claims.Kind {
		case "journalist":
			c.Set("journalist_id", claims.JournalistID)
			c.Set("registration_type", claims.RegistrationType)
		case "staff":
			c.Set("user_id", claims.UserID)
			c.Set("role", claims.Role)
		}

		c.Next()
	}
}

// RequireJournalist gates the contributor surface.
func RequireJournalist() gin.HandlerFunc {
	return func(c *gin.Context) {
		kind, exists := c.Get("kind")
		if !exists || kind.(string) != "journalist" {
			HTTPHelper.SendUnauthorizedError(c, "Journalist account required", HTTPHelper.EmptyJsonMap())
			c.Abort()
			return
		}
		c.Next()
	}
}

// RequireRole gates staff endpoints by role.
func RequireRole(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		kind, exists := c.Get("kind")
		if !exists || kind.(string) != "staff" {
			HTTPHelper.SendUnauthorizedError(c, "Staff account required", HTTPHelper.EmptyJsonMap())
			c.Abort()
			return
		}

		userRole, exists := c.Get("role")
		if !exists {
			HTTPHelper.SendUnauthorizedError(c, "User role not found", HTTPHelper.EmptyJsonMap())
			c.Abort()
			return
		}

		roleStr := userRole.(string)
		for _, role := range roles {
			if roleStr == role {
				c.Next()
				return
			}
		}

		HTTPHelper.SendBadRequest(c, "Insufficient permissions", HTTPHelper.EmptyJsonMap())
		c.Abort()
	}
}
