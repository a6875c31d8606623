package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ViewDedupWindow is how long a repeat view of the same article slug is
// ignored by the view counter. The token's exp claim enforces it: once the
// token expires, the client effectively starts with an empty viewed list
// and the next view counts again.
const ViewDedupWindow = 24 * time.Hour

// SignViewedSlugs issues a token listing article slugs already counted for
// this client.
func (m *JWTManager) SignViewedSlugs(slugs []string) (string, error) {
	claims := jwt.MapClaims{
		"slugs": slugs,
		"iss":   m.issuer,
		"exp":   time.Now().Add(ViewDedupWindow).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(m.secret)
}

// ParseViewedSlugs returns the slugs from a view-dedup token. Missing,
// expired or tampered tokens degrade to an empty list; the worst outcome
// is one extra counted view.
func (m *JWTManager) ParseViewedSlugs(tokenString string) []string {
	if tokenString == "" {
		return nil
	}
	claims, err := m.parse(tokenString)
	if err != nil {
		return nil
	}

	raw, ok := claims["slugs"].([]interface{})
	if !ok {
		return nil
	}
	slugs := make([]string, 0, len(raw))
	for _, v := range raw {
		if s, ok := v.(string); ok && s != "" {
			slugs = append(slugs, s)
		}
	}
	return slugs
}
