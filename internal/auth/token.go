package auth

import (
	"errors"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"

	"github.com/spec-kit/edupulse/internal/domain"
)

// ErrInvalidCredentials is the single failure surfaced for any token that
// does not verify: malformed, tampered, expired, or missing its subject.
// Callers never learn which check failed.
var ErrInvalidCredentials = errors.New("could not validate credentials")

// TokenManager issues and validates stateless HS256 JWTs. There is no token
// registry: a role change after issuance does not invalidate outstanding
// tokens, and revocation before expiry is not possible.
type TokenManager struct {
	secret []byte
	ttl    time.Duration
}

// NewTokenManager builds a manager. Non-positive TTLs fall back to 15 minutes.
func NewTokenManager(secret string, ttlMinutes int) *TokenManager {
	if ttlMinutes <= 0 {
		ttlMinutes = 15
	}
	return &TokenManager{secret: []byte(secret), ttl: time.Duration(ttlMinutes) * time.Minute}
}

// Claims describes the JWT payload. The registered subject is the account email.
type Claims struct {
	Role domain.Role `json:"role"`
	jwt.RegisteredClaims
}

// Issue signs a token for the subject using the configured TTL.
func (tm *TokenManager) Issue(email string, role domain.Role) (string, time.Time, error) {
	return tm.IssueWithTTL(email, role, tm.ttl)
}

// IssueWithTTL signs a token with an explicit lifetime.
func (tm *TokenManager) IssueWithTTL(email string, role domain.Role, ttl time.Duration) (string, time.Time, error) {
	expiresAt := time.Now().Add(ttl)
	claims := &Claims{
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   email,
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(tm.secret)
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, expiresAt, nil
}

// Verify decodes the token and checks signature and expiry atomically.
func (tm *TokenManager) Verify(tokenStr string) (*Claims, error) {
	parsed, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if token.Method != jwt.SigningMethodHS256 {
			return nil, ErrInvalidCredentials
		}
		return tm.secret, nil
	})
	if err != nil {
		return nil, ErrInvalidCredentials
	}

	claims, ok := parsed.Claims.(*Claims)
	if !ok || !parsed.Valid || claims.Subject == "" {
		return nil, ErrInvalidCredentials
	}
	return claims, nil
}

// TTL exposes the configured token lifetime.
func (tm *TokenManager) TTL() time.Duration {
	return tm.ttl
}
