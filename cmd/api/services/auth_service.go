package services

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"

	"poros-portal/cmd/api/auth"
	"poros-portal/cmd/api/dto"
)

// AuthService backs the admin session gate: credential checks, session
// token issuance, and per-request session validation.
type AuthService struct {
	users UserStore
	jwt   *auth.JWTManager
}

func NewAuthService(users UserStore, jwt *auth.JWTManager) *AuthService {
	return &AuthService{users: users, jwt: jwt}
}

// Login verifies credentials and issues a session token. Unknown emails,
// wrong passwords and deactivated users all collapse into the same
// invalid-credentials answer.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, *dto.SessionUserDTO, error) {
	u, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return "", nil, ErrInvalidCredentials
		}
		return "", nil, err
	}
	if !u.IsActive {
		return "", nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return "", nil, ErrInvalidCredentials
	}

	token, err := s.jwt.SignSession(auth.SessionClaims{
		UserID: u.ID.Hex(),
		Email:  u.Email,
		Name:   u.Name,
		Role:   u.Role,
	})
	if err != nil {
		return "", nil, err
	}

	return token, &dto.SessionUserDTO{
		ID:    u.ID.Hex(),
		Email: u.Email,
		Name:  u.Name,
		Role:  u.Role,
	}, nil
}

// Authenticate validates a session token and re-checks that the user it
// names still exists and is active. The token is a capability, but
// deactivation must take effect before it expires, hence the store
// round-trip on every admin request.
func (s *AuthService) Authenticate(ctx context.Context, token string) (*dto.SessionUserDTO, error) {
	claims, err := s.jwt.ParseSession(token)
	if err != nil {
		return nil, ErrInvalidCredentials
	}

	id, err := parseID(claims.UserID, "user")
	if err != nil {
		return nil, ErrInvalidCredentials
	}
	u, err := s.users.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if !u.IsActive {
		return nil, ErrInvalidCredentials
	}

	return &dto.SessionUserDTO{
		ID:    u.ID.Hex(),
		Email: u.Email,
		Name:  u.Name,
		Role:  u.Role,
	}, nil
}

// DecodeSession decodes a session token without the store round-trip.
// Used by the /auth/me echo endpoint.
func (s *AuthService) DecodeSession(token string) (*dto.SessionUserDTO, error) {
	claims, err := s.jwt.ParseSession(token)
	if err != nil {
		return nil, ErrInvalidCredentials
	}
	return &dto.SessionUserDTO{
		ID:    claims.UserID,
		Email: claims.Email,
		Name:  claims.Name,
		Role:  claims.Role,
	}, nil
}

// ViewedSlugs decodes the client's view-dedup token.
func (s *AuthService) ViewedSlugs(token string) []string {
	return s.jwt.ParseViewedSlugs(token)
}

// SignViewedSlugs issues a fresh view-dedup token for the given slugs.
func (s *AuthService) SignViewedSlugs(slugs []string) (string, error) {
	return s.jwt.SignViewedSlugs(slugs)
}
