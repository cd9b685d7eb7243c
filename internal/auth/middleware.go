package auth

import (
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

type contextKey string

const unlockClaimsKey contextKey = "unlock_claims"

// Middleware reads an unlock token from the Authorization header or the token query
// parameter. Requests without a valid token pass through as locked; it never rejects.
func (u *Unlocker) Middleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		tokenString := TokenFromRequest(c)
		if tokenString == "" {
			return next(c)
		}
		if claims, err := u.Parse(tokenString); err == nil {
			c.Set(string(unlockClaimsKey), claims)
		}
		return next(c)
	}
}

// TokenFromRequest returns the bearer token, or the token query parameter.
func TokenFromRequest(c echo.Context) string {
	authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
	parts := strings.Fields(authHeader)
	if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
		return parts[1]
	}
	return strings.TrimSpace(c.QueryParam("token"))
}

// Unlocks reports whether the request carries a valid token for reportID.
func Unlocks(c echo.Context, reportID uuid.UUID) bool {
	claims, ok := c.Get(string(unlockClaimsKey)).(*UnlockClaims)
	if !ok || claims == nil {
		return false
	}
	return claims.Subject == reportID.String()
}
