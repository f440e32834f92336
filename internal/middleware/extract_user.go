package middleware

import (
	"go-payslip/internal/shared/apperror"

	"github.com/gin-gonic/gin"
)

// ExtractUserID promotes the authenticated user id to "user_id_validated",
// which owner scoped handlers read.
func ExtractUserID() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("user_id")
		if userID == "" {
			abortWith(c, apperror.ErrUnauthorized)
			return
		}

		c.Set("user_id_validated", userID)
		c.Next()
	}
}
