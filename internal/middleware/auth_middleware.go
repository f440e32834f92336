package middleware

import (
	"strings"

	autherrors "go-payslip/internal/auth/errors"
	"go-payslip/internal/auth/token"
	"go-payslip/internal/shared/apperror"
	"go-payslip/internal/shared/response"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware accepts an access token from the Authorization header or
// the access_token cookie and stores its user id as "user_id".
func AuthMiddleware(tokens *token.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, _ := strings.CutPrefix(c.GetHeader("Authorization"), "Bearer ")
		if tokenString == "" {
			if cookie, err := c.Cookie("access_token"); err == nil {
				tokenString = cookie
			}
		}

		if tokenString == "" {
			abortWith(c, autherrors.ErrTokenNotFound)
			return
		}

		userID, err := tokens.Parse(tokenString, token.KindAccess)
		if err != nil {
			abortWith(c, err)
			return
		}

		c.Set("user_id", userID)
		c.Next()
	}
}

func abortWith(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, nil)
	c.Abort()
}
