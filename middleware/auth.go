package middleware

import (
	"errors"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"cleaning-backend/models"
	"cleaning-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const SessionCookieName = "session"

// Context keys set by RequireUser. The session carries exactly these
// three values, nothing else.
const (
	CtxUserID   = "userID"
	CtxFullName = "fullName"
	CtxIsAdmin  = "isAdmin"
)

func sessionTTL() time.Duration {
	hours := 24
	if env := os.Getenv("SESSION_TTL_HOURS"); env != "" {
		if h, err := strconv.Atoi(env); err == nil && h > 0 {
			hours = h
		}
	}
	return time.Duration(hours) * time.Hour
}

func sessionSecret() ([]byte, error) {
	secret := os.Getenv("SESSION_SECRET")
	if secret == "" {
		return nil, errors.New("SESSION_SECRET not set")
	}
	return []byte(secret), nil
}

// IssueSessionToken signs a token carrying the user's id, display name
// and admin flag.
func IssueSessionToken(user *models.User) (string, error) {
	secret, err := sessionSecret()
	if err != nil {
		return "", err
	}

	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":   strconv.FormatUint(uint64(user.ID), 10),
		"name":  user.FullName,
		"admin": user.IsAdmin,
		"iat":   now.Unix(),
		"exp":   now.Add(sessionTTL()).Unix(),
	})

	return token.SignedString(secret)
}

// SetSessionCookie stores the token in an HTTP-only cookie scoped to the
// whole site.
func SetSessionCookie(c *gin.Context, token string) {
	c.SetCookie(SessionCookieName, token, int(sessionTTL().Seconds()), "/", "", true, true)
}

// ClearSessionCookie drops the session unconditionally.
func ClearSessionCookie(c *gin.Context) {
	c.SetCookie(SessionCookieName, "", -1, "/", "", true, true)
}

func extractToken(c *gin.Context) string {
	if cookie, err := c.Cookie(SessionCookieName); err == nil && cookie != "" {
		return cookie
	}

	header := c.GetHeader("Authorization")
	if len(header) > 7 && strings.EqualFold(header[0:6], "BEARER") {
		return header[7:]
	}
	return ""
}

// RequireUser rejects requests without a valid session and otherwise
// stores the session values in the request context.
func RequireUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := extractToken(c)
		if tokenString == "" {
			utils.JSONError(c, http.StatusUnauthorized, "Please log in first")
			c.Abort()
			return
		}

		token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, errors.New("unexpected signing method")
			}
			return sessionSecret()
		})
		if err != nil || !token.Valid {
			utils.JSONError(c, http.StatusUnauthorized, "Invalid or expired session")
			c.Abort()
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			utils.JSONError(c, http.StatusUnauthorized, "Invalid session claims")
			c.Abort()
			return
		}

		sub, _ := claims["sub"].(string)
		userID, err := strconv.ParseUint(sub, 10, 64)
		if err != nil || userID == 0 {
			utils.JSONError(c, http.StatusUnauthorized, "Invalid session claims")
			c.Abort()
			return
		}

		name, _ := claims["name"].(string)
		admin, _ := claims["admin"].(bool)

		c.Set(CtxUserID, uint(userID))
		c.Set(CtxFullName, name)
		c.Set(CtxIsAdmin, admin)

		c.Next()
	}
}

// RequireAdmin must run after RequireUser.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !c.GetBool(CtxIsAdmin) {
			utils.JSONError(c, http.StatusForbidden, "Admin access only")
			c.Abort()
			return
		}
		c.Next()
	}
}

// SessionUserID returns the authenticated user's id from the context.
func SessionUserID(c *gin.Context) uint {
	if v, ok := c.Get(CtxUserID); ok {
		if id, ok2 := v.(uint); ok2 {
			return id
		}
	}
	return 0
}
