package httpHandler

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const userContextKey = "authUser"

// AuthUser is what the middleware extracts from a verified bearer token.
type AuthUser struct {
	ID       string
	Username string
	Rol      string
}

type tokenClaims struct {
	UserID   string `json:"user_id"`
	Username string `json:"username"`
	Rol      string `json:"rol"`
	jwt.RegisteredClaims
}

// IssueToken signs an HS256 token for a logged-in user.
func IssueToken(secret string, user AuthUser, ttl time.Duration) (string, error) {
	claims := tokenClaims{
		UserID:   user.ID,
		Username: user.Username,
		Rol:      user.Rol,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// AuthRequired verifies the Authorization: Bearer header and stores the
// authenticated user in the gin context.
func AuthRequired(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Token requerido"})
			return
		}
		raw := strings.TrimPrefix(header, "Bearer ")

		claims := &tokenClaims{}
		token, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return []byte(secret), nil
		})
		if err != nil || !token.Valid {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Token inválido"})
			return
		}

		c.Set(userContextKey, AuthUser{
			ID:       claims.UserID,
			Username: claims.Username,
			Rol:      claims.Rol,
		})
		c.Next()
	}
}

// currentUser returns the authenticated user, or a zero user when the route
// runs without the middleware (tests, open deployments).
func currentUser(c *gin.Context) AuthUser {
	if v, ok := c.Get(userContextKey); ok {
		if u, ok := v.(AuthUser); ok {
			return u
		}
	}
	return AuthUser{}
}
