package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// AgeVerificationMiddleware gates catalog reads behind an explicit age
// confirmation carried in the X-Age-Confirmed header.
func AgeVerificationMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetHeader("X-Age-Confirmed") != "true" {
			c.JSON(http.StatusForbidden, gin.H{
				"error":                   "Age verification required",
				"message":                 "You must confirm that you are 18 years or older to access this content",
				"requiresAgeVerification": true,
			})
			c.Abort()
			return
		}

		c.Next()
	}
}
