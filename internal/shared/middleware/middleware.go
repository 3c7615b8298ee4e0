package middleware

import (
	"net/http"
	"strings"

	"eventuraa/internal/accounts"
	"eventuraa/internal/shared/config"
	"eventuraa/internal/shared/utils/response"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v4"
)

// JWTAuth creates a JWT authentication middleware
func JWTAuth() gin.HandlerFunc {
	return JWTAuthWithConfig(config.Load())
}

// JWTAuthWithConfig creates a JWT authentication middleware with config
func JWTAuthWithConfig(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.RespondJSON(c, "error", http.StatusUnauthorized, "Authorization header is required", nil, nil)
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			response.RespondJSON(c, "error", http.StatusUnauthorized, "authorization header format must be Bearer {token}", nil, nil)
			c.Abort()
			return
		}

		claims, ok := parseAccessToken(parts[1], cfg.JWT.Secret)
		if !ok {
			response.RespondJSON(c, "error", http.StatusUnauthorized, "invalid or expired token", nil, nil)
			c.Abort()
			return
		}

		c.Set("account_id", claims["account_id"])
		c.Set("account_email", claims["email"])
		c.Set("account_role", claims["role"])

		c.Next()
	}
}

// OptionalAuth validates a JWT token if present but doesn't require it.
// Guest checkout paths use this: an anonymous caller proceeds with no
// account identity in context.
func OptionalAuth() gin.HandlerFunc {
	return OptionalAuthWithConfig(config.Load())
}

func OptionalAuthWithConfig(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.Next()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.Next()
			return
		}

		if claims, ok := parseAccessToken(parts[1], cfg.JWT.Secret); ok {
			c.Set("account_id", claims["account_id"])
			c.Set("account_email", claims["email"])
			c.Set("account_role", claims["role"])
		}

		c.Next()
	}
}

func parseAccessToken(tokenString, secret string) (jwt.MapClaims, bool) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		return nil, false
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, false
	}
	if tokenType, ok := claims["type"]; !ok || tokenType != "access" {
		return nil, false
	}
	return claims, true
}

// RequireRoles middleware checks if the caller has any of the required roles
func RequireRoles(requiredRoles ...accounts.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		accountRole, exists := c.Get("account_role")
		if !exists {
			response.RespondJSON(c, "error", http.StatusUnauthorized, "account role not found in context", nil, nil)
			c.Abort()
			return
		}

		roleStr, _ := accountRole.(string)
		hasRole := false
		for _, role := range requiredRoles {
			if roleStr == string(role) {
				hasRole = true
				break
			}
		}

		if !hasRole {
			response.RespondJSON(c, "error", http.StatusForbidden, "Insufficient permissions", nil, nil)
			c.Abort()
			return
		}

		c.Next()
	}
}

// RequireAdmin middleware that requires admin role
func RequireAdmin() gin.HandlerFunc {
	return RequireRoles(accounts.RoleAdmin)
}

// ActorRole extracts the caller's role from context, defaulting to guest.
func ActorRole(c *gin.Context) accounts.Role {
	roleValue, exists := c.Get("account_role")
	if !exists {
		return accounts.RoleGuest
	}
	roleStr, ok := roleValue.(string)
	if !ok || !accounts.IsValidRole(roleStr) {
		return accounts.RoleGuest
	}
	return accounts.Role(roleStr)
}
