package middleware

import (
	"net/http"
	"strings"

	"github.com/Modeva-Ecommerce/modeva-cms-admin/models"
	"github.com/Modeva-Ecommerce/modeva-cms-admin/services"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	adminIDKey    = "adminID"
	adminEmailKey = "adminEmail"
)

// AdminAuthMiddleware validates the admin JWT from the admin_token cookie
// or the Authorization header.
func AdminAuthMiddleware(jwtService *services.JWTService, log *zap.Logger) gin.HandlerFunc {
	log = log.Named("auth")
	return func(c *gin.Context) {
		token, err := c.Cookie("admin_token")
		if err != nil || token == "" {
			authHeader := c.GetHeader("Authorization")
			if authHeader == "" {
				c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Unauthorized - no token provided"))
				c.Abort()
				return
			}

			// Extract token from "Bearer <token>"
			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || parts[0] != "Bearer" {
				c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Unauthorized - invalid token format"))
				c.Abort()
				return
			}
			token = parts[1]
		}

		claims, err := jwtService.VerifyAdminJWT(token)
		if err != nil {
			log.Info("invalid token", zap.Error(err))
			c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Unauthorized - invalid token"))
			c.Abort()
			return
		}

		SetAdmin(c, claims.AdminID, claims.Email)
		c.Next()
	}
}

// SetAdmin stores the authenticated admin on the request context.
func SetAdmin(c *gin.Context, adminID, email string) {
	c.Set(adminIDKey, adminID)
	c.Set(adminEmailKey, email)
}

func GetAdminIDFromContext(c *gin.Context) (string, bool) {
	return c.GetString(adminIDKey), c.GetString(adminIDKey) != ""
}

func GetAdminEmailFromContext(c *gin.Context) (string, bool) {
	return c.GetString(adminEmailKey), c.GetString(adminEmailKey) != ""
}
