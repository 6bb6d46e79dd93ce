package service

import (
	"crypto/rand"
	"crypto/rsa"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const testSecret = "test-signing-secret"

func testTokens() *TokenManager {
	return NewTokenManager(testSecret, time.Hour)
}

func TestTokenManager_IssueParse_RoundTrip(t *testing.T) {
	tm := testTokens()

	token, err := tm.Issue("admin-99")
	if err != nil {
		t.Fatalf("Issue failed: %v", err)
	}
	if token == "" {
		t.Fatalf("expected non-empty token")
	}

	id, err := tm.Parse(token)
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	if id != "admin-99" {
		t.Fatalf("expected admin id 'admin-99', got %q", id)
	}
}

func TestTokenManager_Parse_Malformed(t *testing.T) {
	tm := testTokens()
	if _, err := tm.Parse("not-a-jwt"); err == nil {
		t.Fatalf("expected error for malformed token")
	}
}

func TestTokenManager_Parse_InvalidSignature(t *testing.T) {
	tm := testTokens()

	// Token signed with a different key.
	other := NewTokenManager("different-key", time.Hour)
	badToken, err := other.Issue("admin-5")
	if err != nil {
		t.Fatalf("Issue failed: %v", err)
	}

	if _, err := tm.Parse(badToken); err == nil {
		t.Fatalf("expected signature verification error")
	}
}

func TestTokenManager_Parse_Expired(t *testing.T) {
	tm := testTokens()

	// Issue an already expired token using the same signing key.
	past := time.Now().Add(-2 * time.Hour)
	tk := jwt.NewWithClaims(jwt.SigningMethodHS256, &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "admin-11",
			ExpiresAt: jwt.NewNumericDate(past),
			IssuedAt:  jwt.NewNumericDate(past.Add(-time.Minute)),
		},
		AdminID: "admin-11",
	})
	expiredToken, err := tk.SignedString([]byte(testSecret))
	if err != nil {
		t.Fatalf("SignedString failed: %v", err)
	}

	if _, err := tm.Parse(expiredToken); err == nil {
		t.Fatalf("expected error for expired token")
	}
}

func TestTokenManager_Parse_UnexpectedAlg(t *testing.T) {
	tm := testTokens()

	privateKey, err := rsa.GenerateKey(rand.Reader, 2048)
	if err != nil {
		t.Fatalf("rsa.GenerateKey failed: %v", err)
	}

	now := time.Now()
	tk := jwt.NewWithClaims(jwt.SigningMethodRS256, &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "admin-12",
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
		AdminID: "admin-12",
	})
	tokenStr, err := tk.SignedString(privateKey)
	if err != nil {
		t.Fatalf("SignedString failed: %v", err)
	}

	if _, err := tm.Parse(tokenStr); err == nil {
		t.Fatalf("expected error due to unexpected signing method")
	}
}
