package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/cms-preschool/checkin-api/internal/service"
	appErrors "github.com/cms-preschool/checkin-api/pkg/errors"
	"github.com/cms-preschool/checkin-api/pkg/response"
)

// Session protects routes by requiring a valid session token. SSE
// clients cannot set headers, so the token is also accepted as a query
// parameter.
func Session(authService *service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			token = c.Query("token")
		}
		if token == "" {
			response.Error(c, appErrors.ErrUnauthorized)
			c.Abort()
			return
		}

		if err := authService.ValidateToken(token); err != nil {
			response.Error(c, err)
			c.Abort()
			return
		}
		c.Next()
	}
}

func bearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return parts[1]
}
