package middleware

import (
	"fmt"
	"time"

	"edumate/config"
	"edumate/models"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
)

// SessionCookie is the cookie carrying the signed session token
const SessionCookie = "token"

// SessionClaims is the verified payload of a session token
type SessionClaims struct {
	UserID uint              `json:"id"`
	Name   string            `json:"name"`
	Role   models.Role       `json:"role"`
	Status models.UserStatus `json:"status"`
	jwt.RegisteredClaims
}

// GenerateToken signs a session token for the user, valid for one hour
func GenerateToken(user *models.User) (string, error) {
	claims := SessionClaims{
		UserID: user.ID,
		Name:   user.Name,
		Role:   user.Role,
		Status: user.Status,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(config.AppConfig.JWTKey))
}

// ParseToken verifies a session token's signature and expiry. Any failure
// (bad signature, expired, malformed) comes back as an error; callers treat
// every error identically to a missing token.
func ParseToken(raw string) (*SessionClaims, error) {
	claims := new(SessionClaims)
	token, err := jwt.ParseWithClaims(raw, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(config.AppConfig.JWTKey), nil
	})
	if err != nil || !token.Valid {
		return nil, fmt.Errorf("invalid session token")
	}
	return claims, nil
}

// SetSessionCookie attaches the signed token to the response
func SetSessionCookie(c *fiber.Ctx, token string) {
	c.Cookie(&fiber.Cookie{
		Name:     SessionCookie,
		Value:    token,
		Path:     "/",
		MaxAge:   3600,
		HTTPOnly: true,
		Secure:   config.IsProduction(),
		SameSite: fiber.CookieSameSiteStrictMode,
	})
}

// ClearSessionCookie expires the session cookie. Every verification failure
// path that serves a response must clear the cookie so a broken token does
// not keep failing downstream.
func ClearSessionCookie(c *fiber.Ctx) {
	c.Cookie(&fiber.Cookie{
		Name:     SessionCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HTTPOnly: true,
		Secure:   config.IsProduction(),
		SameSite: fiber.CookieSameSiteStrictMode,
	})
}

// AuthMiddleware is a middleware to check for a valid session token cookie
func AuthMiddleware(c *fiber.Ctx) error {
	raw := c.Cookies(SessionCookie)
	if raw == "" {
		return JsonResponse(c, fiber.StatusUnauthorized, false, "Authentication required!", nil)
	}

	claims, err := ParseToken(raw)
	if err != nil {
		ClearSessionCookie(c)
		return JsonResponse(c, fiber.StatusUnauthorized, false, "Invalid or expired session!", nil)
	}

	c.Locals("claims", claims)
	return c.Next()
}

// Claims returns the verified session claims set by AuthMiddleware, or nil
func Claims(c *fiber.Ctx) *SessionClaims {
	claims, _ := c.Locals("claims").(*SessionClaims)
	return claims
}

func JsonResponse(c *fiber.Ctx, statusCode int, status bool, message string, data interface{}) error {
	return c.Status(statusCode).JSON(fiber.Map{
		"status":  status,
		"message": message,
		"data":    data,
	})
}

func ValidationErrorResponse(c *fiber.Ctx, errors map[string]string) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"status":  false,
		"message": "Validation failed!",
		"data":    errors,
	})
}
