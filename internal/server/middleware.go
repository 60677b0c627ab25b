package server

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/Thecodingpm/calories-counterr/internal/domain"
)

const (
	ctxUserKey  = "user"
	ctxTokenKey = "token"
)

// authMiddleware validates the bearer token signature and then checks the
// durable session record, so logout invalidates a token before it expires.
func (s *Server) authMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header required"})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, errors.New("unexpected signing method")
			}
			return s.jwtSecret, nil
		})
		if err != nil || !token.Valid {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}

		user, err := s.sessions.Restore(c.Request.Context(), tokenString)
		if err != nil {
			s.errHandler.Handle(c.Request.Context(), err)
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
			return
		}
		if user == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "session expired"})
			return
		}

		c.Set(ctxUserKey, user)
		c.Set(ctxTokenKey, tokenString)
		c.Next()
	}
}

func currentUser(c *gin.Context) *domain.User {
	u, _ := c.Get(ctxUserKey)
	user, _ := u.(*domain.User)
	return user
}

func currentToken(c *gin.Context) string {
	t, _ := c.Get(ctxTokenKey)
	token, _ := t.(string)
	return token
}
