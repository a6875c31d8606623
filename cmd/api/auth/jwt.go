package auth

import (
	"fmt"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// RoleAdmin is the only role the portal distinguishes today; the session
// gate requires an active user, not a particular role.
const RoleAdmin = "admin"

// SessionClaims is the user identity carried by the admin session token.
type SessionClaims struct {
	UserID string
	Email  string
	Name   string
	Role   string
}

// JWTManager signs and verifies tokens with a single HS256 secret.
type JWTManager struct {
	secret []byte
	issuer string
	ttl    time.Duration
}

// NewJWTManager builds a manager with the secret from JWT_SECRET.
//
// - JWT_SECRET: HS256 signing secret (required)
// - issuer: iss claim value (defaults to "poros-portal")
// - ttl: session token lifetime
func NewJWTManager(issuer string, ttl time.Duration) (*JWTManager, error) {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required")
	}
	if issuer == "" {
		issuer = "poros-portal"
	}
	if ttl <= 0 {
		ttl = 7 * 24 * time.Hour
	}

	return &JWTManager{
		secret: []byte(secret),
		issuer: issuer,
		ttl:    ttl,
	}, nil
}

// SignSession issues an admin session token.
func (m *JWTManager) SignSession(sc SessionClaims) (string, error) {
	claims := jwt.MapClaims{
		"sub":   sc.UserID,
		"email": sc.Email,
		"name":  sc.Name,
		"role":  sc.Role,
		"iss":   m.issuer,
		"exp":   time.Now().Add(m.ttl).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(m.secret)
}

// ParseSession verifies a session token and returns its claims.
func (m *JWTManager) ParseSession(tokenString string) (SessionClaims, error) {
	claims, err := m.parse(tokenString)
	if err != nil {
		return SessionClaims{}, err
	}

	sub, _ := claims["sub"].(string)
	if sub == "" {
		return SessionClaims{}, fmt.Errorf("token missing sub claim")
	}
	email, _ := claims["email"].(string)
	name, _ := claims["name"].(string)
	role, _ := claims["role"].(string)

	return SessionClaims{UserID: sub, Email: email, Name: name, Role: role}, nil
}

func (m *JWTManager) parse(tokenString string) (jwt.MapClaims, error) {
	parsed, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return m.secret, nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok || !parsed.Valid {
		return nil, fmt.Errorf("invalid token claims")
	}
	return claims, nil
}
