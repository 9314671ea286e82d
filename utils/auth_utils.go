package utils

import (
	"github.com/gin-gonic/gin"
)

// UserClaims is what the identity provider asserts about the caller.
// ProfileIDs is the token-borne snapshot of the account's profile list; it is
// an eventually-consistent cache, the user directory is authoritative.
type UserClaims struct {
	AccountID  string `json:"account_id"`
	ProfileIDs []uint `json:"profiles"`
	Role       string `json:"role"`
}

const RoleAdmin = "admin"

// OwnsProfile checks the token-borne profile list only.
func (c *UserClaims) OwnsProfile(profileID uint) bool {
	for _, id := range c.ProfileIDs {
		if id == profileID {
			return true
		}
	}
	return false
}

func (c *UserClaims) IsAdmin() bool {
	return c.Role == RoleAdmin
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
