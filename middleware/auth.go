package middleware

import (
	"net/http"
	"os"
	"strings"

	"github.com/sergiostefanizzi/profile-microservice-sub000/utils"

	"github.com/dgrijalva/jwt-go"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header is required"})
			c.Abort()
			return
		}

		bearerToken := strings.Split(authHeader, " ")
		if len(bearerToken) != 2 {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token format"})
			c.Abort()
			return
		}

		token := bearerToken[1]
		claims := jwt.MapClaims{}
		parsedToken, err := jwt.ParseWithClaims(token, claims, func(token *jwt.Token) (interface{}, error) {
			return []byte(os.Getenv("JWT_SECRET")), nil
		})

		if err != nil || !parsedToken.Valid {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			c.Abort()
			return
		}

		accountID, ok := claims["account_id"].(string)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token claims"})
			c.Abort()
			return
		}
		if _, err := uuid.Parse(accountID); err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid account id"})
			c.Abort()
			return
		}

		// The profiles claim is the account's owned-profile list, cached in
		// the token at issue time.
		var profileIDs []uint
		if rawProfiles, ok := claims["profiles"].([]interface{}); ok {
			profileIDs = make([]uint, 0, len(rawProfiles))
			for _, raw := range rawProfiles {
				if id, ok := raw.(float64); ok {
					profileIDs = append(profileIDs, uint(id))
				}
			}
		}

		role, _ := claims["role"].(string)

		userClaims := &utils.UserClaims{
			AccountID:  accountID,
			ProfileIDs: profileIDs,
			Role:       role,
		}

		c.Set(string(utils.UserContextKey), userClaims)

		c.Next()
	}
}

// AdminMiddleware gates the /admins surface. Runs after AuthMiddleware.
func AdminMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		user := utils.GetUser(c)
		if user == nil || !user.IsAdmin() {
			c.JSON(http.StatusForbidden, gin.H{"error": "admin role required"})
			c.Abort()
			return
		}
		c.Next()
	}
}
