// middleware/jwt_middleware.go
package middleware

import (
	"context"
	"errors"
	"os"
	"sync"
	"time"

	"github.com/golang-jwt/jwt"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/sirupsen/logrus"

	"github.com/top5deutschland/top5_backend/config"
	"github.com/top5deutschland/top5_backend/models"
)

// AdminClaims for admin session tokens
type AdminClaims struct {
	Role string `json:"role"`
	jwt.StandardClaims
}

// Valid implements the Claims interface for Echo's JWT middleware
func (c AdminClaims) Valid() error {
	if c.ExpiresAt > 0 && time.Now().Unix() > c.ExpiresAt {
		return errors.New("token is expired")
	}
	if c.NotBefore > 0 && time.Now().Unix() < c.NotBefore {
		return errors.New("token used before valid")
	}
	if c.Role != "admin" {
		return errors.New("token is not an admin token")
	}
	return nil
}

// AdminTokenTTL is the lifetime of an admin session token.
const AdminTokenTTL = 12 * time.Hour

// In-process fallback blacklist, used when Redis is unavailable.
var (
	blacklistMu    sync.Mutex
	tokenBlacklist = make(map[string]time.Time)
)

// CleanupBlacklist periodically removes expired tokens from the in-process blacklist
func CleanupBlacklist() {
	for {
		time.Sleep(1 * time.Hour)
		now := time.Now()
		blacklistMu.Lock()
		for token, expiry := range tokenBlacklist {
			if now.After(expiry) {
				delete(tokenBlacklist, token)
			}
		}
		blacklistMu.Unlock()
	}
}

// RevokeToken invalidates a token until its natural expiry. Revocations go to
// Redis when configured so they survive restarts, otherwise to process memory.
func RevokeToken(ctx context.Context, token string, expiry time.Time) {
	ttl := time.Until(expiry)
	if ttl <= 0 {
		return
	}
	if rdb := config.GetRedisClient(); rdb != nil {
		if err := rdb.Set(ctx, "revoked:"+token, "1", ttl).Err(); err == nil {
			return
		}
		logrus.Warn("redis revocation write failed, falling back to in-memory blacklist")
	}
	blacklistMu.Lock()
	tokenBlacklist[token] = expiry
	blacklistMu.Unlock()
}

// IsTokenRevoked checks both revocation stores
func IsTokenRevoked(ctx context.Context, token string) bool {
	if rdb := config.GetRedisClient(); rdb != nil {
		if n, err := rdb.Exists(ctx, "revoked:"+token).Result(); err == nil && n > 0 {
			return true
		}
	}
	blacklistMu.Lock()
	_, exists := tokenBlacklist[token]
	blacklistMu.Unlock()
	return exists
}

// GetJWTSecret returns the JWT secret from environment variables
func GetJWTSecret() string {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		panic("JWT_SECRET environment variable is required")
	}
	return secret
}

// GenerateAdminToken issues a signed admin session token
func GenerateAdminToken() (string, error) {
	claims := &AdminClaims{
		Role: "admin",
		StandardClaims: jwt.StandardClaims{
			IssuedAt:  time.Now().Unix(),
			ExpiresAt: time.Now().Add(AdminTokenTTL).Unix(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		return "", errors.New("JWT_SECRET environment variable is required")
	}
	return token.SignedString([]byte(secret))
}

// AdminJWTMiddleware guards the admin route group
func AdminJWTMiddleware() echo.MiddlewareFunc {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		logrus.Warn("JWT_SECRET environment variable is not set")
		return func(next echo.HandlerFunc) echo.HandlerFunc {
			return func(c echo.Context) error {
				return c.JSON(echo.ErrUnauthorized.Code, models.Response{
					Status:  echo.ErrUnauthorized.Code,
					Message: "JWT configuration error",
				})
			}
		}
	}

	return echomw.JWTWithConfig(echomw.JWTConfig{
		SigningKey: []byte(secret),
		Claims:     &AdminClaims{},
		SuccessHandler: func(c echo.Context) {
			user := c.Get("user").(*jwt.Token)

			if IsTokenRevoked(c.Request().Context(), user.Raw) {
				c.Error(echo.NewHTTPError(echo.ErrUnauthorized.Code, "Token has been invalidated"))
				return
			}

			claims := user.Claims.(*AdminClaims)
			c.Set("role", claims.Role)
		},
		ErrorHandler: func(err error) error {
			return echo.NewHTTPError(echo.ErrUnauthorized.Code, "Invalid or expired token")
		},
	})
}

// GetAdminClaims extracts the validated claims from the request context
func GetAdminClaims(c echo.Context) *AdminClaims {
	user := c.Get("user")
	if user == nil {
		return nil
	}

	token, ok := user.(*jwt.Token)
	if !ok {
		return nil
	}

	claims, ok := token.Claims.(*AdminClaims)
	if !ok {
		return nil
	}

	return claims
}
