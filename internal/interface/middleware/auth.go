package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/profissaovlog/profissaovlog-api/pkg/helpers"
	"github.com/profissaovlog/profissaovlog-api/pkg/response"
)

// Context keys set by Auth for downstream handlers.
const (
	CtxUserIDKey   = "userID"
	CtxUserTypeKey = "userType"
)

// Auth validates the access token cookie and sets userID and userType in
// the Gin context. When redis is configured it additionally requires an
// active session record, so logout invalidates outstanding tokens.
func Auth(rdb *redis.Client, jwt *helpers.JWTManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie("access_token")
		if err != nil || token == "" {
			response.Error(c, http.StatusUnauthorized, "missing access token", nil)
			c.Abort()
			return
		}
		claims, err := jwt.ParseAccessToken(token)
		if err != nil {
			response.Error(c, http.StatusUnauthorized, "invalid access token", err.Error())
			c.Abort()
			return
		}

		if rdb != nil {
			key := "user:session:" + itoa(claims.UserID)
			data, err := rdb.HGetAll(c.Request.Context(), key).Result()
			if err != nil || len(data) == 0 {
				response.Error(c, http.StatusUnauthorized, "session not found", nil)
				c.Abort()
				return
			}
		}

		c.Set(CtxUserIDKey, claims.UserID)
		c.Set(CtxUserTypeKey, claims.UserType)
		c.Next()
	}
}

// RequireUserType gates a route to one account role. Must run after Auth.
func RequireUserType(userType string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetString(CtxUserTypeKey) != userType {
			response.Error(c, http.StatusForbidden, "forbidden for this account type", nil)
			c.Abort()
			return
		}
		c.Next()
	}
}
