package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/kun-ahmadraza/Grocery-store/auth"
)

const currentUserKey = "current_user"

// CurrentUser resolves the session cookie once per request and exposes the
// claims to handlers and templates. Anonymous requests pass through.
func CurrentUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		if claims := auth.CurrentUser(c); claims != nil {
			c.Set(currentUserKey, claims)
		}
		c.Next()
	}
}

// UserFromContext returns the claims attached by CurrentUser.
func UserFromContext(c *gin.Context) (*auth.Claims, bool) {
	val, exists := c.Get(currentUserKey)
	if !exists {
		return nil, false
	}
	claims, ok := val.(*auth.Claims)
	return claims, ok
}

// RequireUser redirects anonymous requests to the log-in page. The auth
// check runs before any handler touches the claims.
func RequireUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := UserFromContext(c); !ok {
			c.Redirect(http.StatusSeeOther, "/log-in")
			c.Abort()
			return
		}
		c.Next()
	}
}
