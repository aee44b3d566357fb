package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func TestPasswordRoundTrip(t *testing.T) {
	hash, err := HashPassword("pw123")
	if err != nil {
		t.Fatalf("HashPassword returned error: %v", err)
	}
	if hash == "pw123" {
		t.Fatal("hash must not equal the plain password")
	}
	if !CheckPassword("pw123", hash) {
		t.Fatal("correct password did not verify")
	}
	if CheckPassword("wrong", hash) {
		t.Fatal("wrong password verified")
	}
}

func TestTokenRoundTrip(t *testing.T) {
	Setup("test-secret", time.Hour)

	token, err := CreateToken(42, "alice", "user")
	if err != nil {
		t.Fatalf("CreateToken returned error: %v", err)
	}

	claims, err := ParseToken(token)
	if err != nil {
		t.Fatalf("ParseToken returned error: %v", err)
	}
	if claims.UserID != 42 {
		t.Fatalf("user id mismatch: got %d want 42", claims.UserID)
	}
	if claims.Username != "alice" {
		t.Fatalf("username mismatch: got %q want %q", claims.Username, "alice")
	}
	if claims.Role != "user" {
		t.Fatalf("role mismatch: got %q want %q", claims.Role, "user")
	}
	if !claims.ExpiresAt.After(time.Now()) {
		t.Fatal("expiry should be in the future")
	}
}

func TestExpiredToken(t *testing.T) {
	Setup("test-secret", time.Hour)

	claims := &Claims{
		UserID:   42,
		Username: "alice",
		Role:     "user",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(jwtSecret)
	if err != nil {
		t.Fatalf("signing expired token: %v", err)
	}

	if _, err := ParseToken(token); err != ErrTokenExpired {
		t.Fatalf("expected ErrTokenExpired, got %v", err)
	}
}

func TestMalformedToken(t *testing.T) {
	Setup("test-secret", time.Hour)

	if _, err := ParseToken("not-a-jwt"); err != ErrTokenMalformed {
		t.Fatalf("expected ErrTokenMalformed, got %v", err)
	}
}

func TestWrongSecret(t *testing.T) {
	Setup("test-secret", time.Hour)
	token, err := CreateToken(1, "bob", "user")
	if err != nil {
		t.Fatalf("CreateToken returned error: %v", err)
	}

	Setup("other-secret", time.Hour)
	if _, err := ParseToken(token); err != ErrTokenInvalid {
		t.Fatalf("expected ErrTokenInvalid, got %v", err)
	}
}
