package utils

import (
	"github.com/gin-gonic/gin"
)

// UserClaims is the verified caller identity resolved by the auth
// middleware. The follow graph only ever consumes the user ID.
type UserClaims struct {
	UserID string `json:"user_id"`
}

type contextKey string

const UserContextKey contextKey = "user"

func GetUser(c *gin.Context) *UserClaims {
	user, exists := c.Get(string(UserContextKey))
	if !exists {
		return nil
	}
	if userClaims, ok := user.(*UserClaims); ok {
		return userClaims
	}
	return nil
}
