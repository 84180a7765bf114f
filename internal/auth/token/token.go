// Package token issues and verifies signed, time-limited bearer tokens
package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// DefaultTTL is the lifetime of an access token
const DefaultTTL = 45 * time.Minute

// ErrUnauthorized is returned for every verification failure.
// Callers never learn which check failed.
var ErrUnauthorized = errors.New("could not validate credentials")

// Claims holds the verified content of a token
type Claims struct {
	Subject   string
	ExpiresAt time.Time
}

// Service signs and verifies access tokens with a process-wide secret
type Service struct {
	secret []byte
	method *jwt.SigningMethodHMAC
	ttl    time.Duration
	now    func() time.Time
}

// NewService creates a new token service.
//
// "algorithm" must name an HMAC signing method (HS256, HS384 or HS512).
// A non-positive ttl falls back to DefaultTTL.
func NewService(secret, algorithm string, ttl time.Duration) (*Service, error) {
	if secret == "" {
		return nil, fmt.Errorf("token secret cannot be empty")
	}

	method, ok := jwt.GetSigningMethod(algorithm).(*jwt.SigningMethodHMAC)
	if !ok {
		return nil, fmt.Errorf("unsupported signing algorithm %q", algorithm)
	}

	if ttl <= 0 {
		ttl = DefaultTTL
	}

	return &Service{
		secret: []byte(secret),
		method: method,
		ttl:    ttl,
		now:    func() time.Time { return time.Now().UTC() },
	}, nil
}

// TTL returns the configured token lifetime
func (s *Service) TTL() time.Duration {
	return s.ttl
}

// Issue creates a signed token for the given subject that expires after the configured TTL
func (s *Service) Issue(subject string) (string, error) {
	claims := jwt.RegisteredClaims{
		Subject:   subject,
		ExpiresAt: jwt.NewNumericDate(s.now().Add(s.ttl)),
	}

	tokenString, err := jwt.NewWithClaims(s.method, claims).SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign access token: %w", err)
	}

	return tokenString, nil
}

// Verify checks the token signature, the presence of "sub" and "exp" and the expiry.
//
// Expiry is a hard cutoff with no leeway: a token is accepted while now < exp, the
// instant exp itself is already expired. Any failure collapses to ErrUnauthorized.
func (s *Service) Verify(tokenString string) (*Claims, error) {
	claims := &jwt.RegisteredClaims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		return s.secret, nil
	},
		jwt.WithValidMethods([]string{s.method.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil || !token.Valid {
		return nil, ErrUnauthorized
	}

	if claims.Subject == "" || claims.ExpiresAt == nil {
		return nil, ErrUnauthorized
	}

	return &Claims{
		Subject:   claims.Subject,
		ExpiresAt: claims.ExpiresAt.Time.UTC(),
	}, nil
}
