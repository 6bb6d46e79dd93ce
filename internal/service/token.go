package service

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims defines JWT claims carried by every issued token.
type Claims struct {
	jwt.RegisteredClaims
	AdminID string `json:"admin_id"`
}

// TokenManager issues and verifies HS256 bearer tokens. The signing secret is
// injected once at startup and never read from globals, so issuer and
// verifier are testable in isolation and guaranteed to share one key.
type TokenManager struct {
	secret []byte
	ttl    time.Duration
}

func NewTokenManager(secret string, ttl time.Duration) *TokenManager {
	return &TokenManager{secret: []byte(secret), ttl: ttl}
}

// Issue signs a token embedding the admin id with the configured TTL.
// Issuance never touches the store.
func (m *TokenManager) Issue(adminID string) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   adminID,
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
		AdminID: adminID,
	})
	return token.SignedString(m.secret)
}

// Parse verifies signature and expiration and returns the embedded admin id.
// The token is self-contained: no store lookup happens here.
func (m *TokenManager) Parse(accessToken string) (string, error) {
	token, err := jwt.ParseWithClaims(accessToken, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		// Ensure HMAC signing is used
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return m.secret, nil
	})
	if err != nil {
		return "", err
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return "", ErrInvalidToken
	}
	return claims.AdminID, nil
}
