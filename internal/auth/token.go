package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidToken indicates a token that is missing, malformed, expired, or
// carries a bad signature.
var ErrInvalidToken = errors.New("invalid token")

// TokenManager issues and verifies signed JWTs for authenticated users.
// Claims carry the user id only; profile fields are looked up fresh per
// request so tokens never go stale on profile edits.
type TokenManager struct {
	secret []byte
	issuer string
	ttl    time.Duration
}

// NewTokenManager creates a manager with the provided secret, issuer, and
// lifetime. A zero ttl issues tokens without an expiry claim.
func NewTokenManager(secret, issuer string, ttl time.Duration) *TokenManager {
	return &TokenManager{
		secret: []byte(secret),
		issuer: issuer,
		ttl:    ttl,
	}
}

// Generate issues a signed JWT string for the provided user id.
func (t *TokenManager) Generate(userID string) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"iss": t.issuer,
		"sub": userID,
		"iat": now.Unix(),
	}
	if t.ttl > 0 {
		claims["exp"] = now.Add(t.ttl).Unix()
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(t.secret)
}

// Verify checks the signature (and expiry, when present) and returns the
// user id the token was issued for.
func (t *TokenManager) Verify(tokenString string) (string, error) {
	parsed, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", token.Header["alg"])
		}
		return t.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil || !parsed.Valid {
		return "", ErrInvalidToken
	}
	sub, err := parsed.Claims.GetSubject()
	if err != nil || sub == "" {
		return "", ErrInvalidToken
	}
	return sub, nil
}
