package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func TestNewJWTManagerRequiresSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")

	manager, err := NewJWTManager("issuer-for-test", time.Hour)
	if err == nil {
		t.Fatalf("expected error when JWT_SECRET is empty")
	}
	if manager != nil {
		t.Fatalf("expected nil manager when env is invalid")
	}
}

func TestNewJWTManagerDefaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	manager, err := NewJWTManager("", 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if manager.issuer != "poros-portal" {
		t.Fatalf("expected default issuer poros-portal, got %q", manager.issuer)
	}
	if manager.ttl != 7*24*time.Hour {
		t.Fatalf("expected default ttl 7d, got %s", manager.ttl)
	}
}

func TestSignAndParseSessionRoundTrip(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	manager, err := NewJWTManager("test-issuer", time.Hour)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	in := SessionClaims{
		UserID: "64b0c0ffee00000000000001",
		Email:  "admin@example.com",
		Name:   "Admin",
		Role:   RoleAdmin,
	}
	token, err := manager.SignSession(in)
	if err != nil {
		t.Fatalf("unexpected sign error: %v", err)
	}

	out, err := manager.ParseSession(token)
	if err != nil {
		t.Fatalf("unexpected parse error: %v", err)
	}
	if out != in {
		t.Fatalf("claims round trip mismatch: %+v != %+v", out, in)
	}
}

func TestParseSessionRejectsForgedSignature(t *testing.T) {
	manager := &JWTManager{
		secret: []byte("service-secret"),
		issuer: "issuer",
		ttl:    time.Hour,
	}

	forged := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":  "64b0c0ffee00000000000001",
		"role": RoleAdmin,
		"iss":  "issuer",
		"exp":  time.Now().Add(time.Hour).Unix(),
	})
	tokenString, err := forged.SignedString([]byte("other-secret"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := manager.ParseSession(tokenString); err == nil {
		t.Fatalf("expected forged token to be rejected")
	}
}

func TestParseSessionRejectsExpiredToken(t *testing.T) {
	manager := &JWTManager{
		secret: []byte("service-secret"),
		issuer: "issuer",
		ttl:    -time.Hour,
	}

	token, err := manager.SignSession(SessionClaims{UserID: "64b0c0ffee00000000000001"})
	if err != nil {
		t.Fatalf("unexpected sign error: %v", err)
	}
	if _, err := manager.ParseSession(token); err == nil {
		t.Fatalf("expected expired token to be rejected")
	}
}

func TestParseSessionRequiresSubClaim(t *testing.T) {
	manager := &JWTManager{
		secret: []byte("service-secret"),
		issuer: "issuer",
		ttl:    time.Hour,
	}

	anonymous := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"iss": "issuer",
		"exp": time.Now().Add(time.Hour).Unix(),
	})
	tokenString, err := anonymous.SignedString([]byte("service-secret"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := manager.ParseSession(tokenString); err == nil {
		t.Fatalf("expected token without sub to be rejected")
	}
}

func TestViewedSlugsTokenCarriesDedupWindow(t *testing.T) {
	manager := &JWTManager{
		secret: []byte("service-secret"),
		issuer: "issuer",
		ttl:    time.Hour,
	}

	token, err := manager.SignViewedSlugs([]string{"story-one"})
	if err != nil {
		t.Fatalf("unexpected sign error: %v", err)
	}

	claims, err := manager.parse(token)
	if err != nil {
		t.Fatalf("unexpected parse error: %v", err)
	}
	exp, ok := claims["exp"].(float64)
	if !ok {
		t.Fatalf("expected numeric exp claim")
	}
	remaining := time.Until(time.Unix(int64(exp), 0))
	if remaining < ViewDedupWindow-time.Minute || remaining > ViewDedupWindow {
		t.Fatalf("expected exp about %s out, got %s", ViewDedupWindow, remaining)
	}
}
