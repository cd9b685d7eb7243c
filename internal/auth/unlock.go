package auth

import (
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrInvalidToken        = errors.New("invalid or expired unlock token")
	ErrTokenReportMismatch = errors.New("unlock token belongs to another report")
)

const tokenIssuer = "scholarship-hunter"

// UnlockClaims grant full access to one report. The subject is the report id.
type UnlockClaims struct {
	LeadID string `json:"lead"`
	jwt.RegisteredClaims
}

// Unlocker issues and verifies HS256 unlock tokens.
type Unlocker struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewUnlocker falls back to an ephemeral in-memory secret when secret is empty.
// Tokens issued under it stop verifying after a restart.
func NewUnlocker(secret string, ttl time.Duration, logger *zap.Logger) (*Unlocker, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if ttl <= 0 {
		ttl = 30 * 24 * time.Hour
	}

	key := []byte(strings.TrimSpace(secret))
	if len(key) == 0 {
		buf := make([]byte, 48)
		if _, err := rand.Read(buf); err != nil {
			return nil, fmt.Errorf("failed to generate fallback unlock secret: %w", err)
		}
		key = []byte(base64.RawURLEncoding.EncodeToString(buf))
		logger.Warn("unlock.secret is not set; using ephemeral in-memory fallback secret")
	}

	return &Unlocker{secret: key, ttl: ttl, now: time.Now}, nil
}

// WithClock replaces the time source; used by tests.
func (u *Unlocker) WithClock(now func() time.Time) *Unlocker {
	u.now = now
	return u
}

func (u *Unlocker) Issue(reportID, leadID uuid.UUID) (string, error) {
	now := u.now()
	claims := UnlockClaims{
		LeadID: leadID.String(),
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    tokenIssuer,
			Subject:   reportID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(u.ttl)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(u.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign unlock token: %w", err)
	}
	return signed, nil
}

// Parse checks signature, issuer and expiry but not which report the token is for.
func (u *Unlocker) Parse(tokenString string) (*UnlockClaims, error) {
	claims := &UnlockClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return u.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(tokenIssuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(u.now),
	)
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

// Verify parses the token and checks it unlocks reportID.
func (u *Unlocker) Verify(tokenString string, reportID uuid.UUID) (*UnlockClaims, error) {
	claims, err := u.Parse(tokenString)
	if err != nil {
		return nil, err
	}
	if claims.Subject != reportID.String() {
		return nil, ErrTokenReportMismatch
	}
	return claims, nil
}
