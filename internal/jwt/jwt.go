package jwt

import (
	"errors"
	"fmt"
	"time"

	gojwt "github.com/golang-jwt/jwt/v5"
)

// Token errors
var (
	ErrMissingSecret         = errors.New("missing JWT secret")
	ErrTokenExpired          = errors.New("token expired")
	ErrTokenMalformed        = errors.New("token malformed")
	ErrTokenSignatureInvalid = errors.New("token signature invalid")
	ErrTokenInvalid          = errors.New("token invalid")
)

// Claims carries the user ID alongside the registered claims
type Claims struct {
	UserID int64 `json:"userId"`
	gojwt.RegisteredClaims
}

// JWTService signs and validates HS256 bearer tokens
type JWTService struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// Option configures a JWTService
type Option func(*JWTService)

// WithClock replaces time.Now as the source of issue and validation times.
func WithClock(now func() time.Time) Option {
	return func(s *JWTService) {
		s.now = now
	}
}

// NewJWTService creates a new JWT service
func NewJWTService(secret string, ttl time.Duration, opts ...Option) (*JWTService, error) {
	if secret == "" {
		return nil, ErrMissingSecret
	}

	s := &JWTService{
		secret: []byte(secret),
		ttl:    ttl,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// GenerateToken issues a token for userID that expires after the configured TTL
func (s *JWTService) GenerateToken(userID int64) (string, error) {
	now := s.now()
	claims := Claims{
		UserID: userID,
		RegisteredClaims: gojwt.RegisteredClaims{
			IssuedAt:  gojwt.NewNumericDate(now),
			ExpiresAt: gojwt.NewNumericDate(now.Add(s.ttl)),
		},
	}

	token := gojwt.NewWithClaims(gojwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// ValidateToken verifies the signature and expiry of tokenString and returns
// the user ID it was issued for
func (s *JWTService) ValidateToken(tokenString string) (int64, error) {
	claims := &Claims{}

	// The signature is verified before any claim is looked at.
	token, err := gojwt.ParseWithClaims(tokenString, claims,
		func(t *gojwt.Token) (interface{}, error) {
			return s.secret, nil
		},
		gojwt.WithValidMethods([]string{gojwt.SigningMethodHS256.Alg()}),
		gojwt.WithExpirationRequired(),
		gojwt.WithTimeFunc(s.now),
	)
	if err != nil {
		switch {
		case errors.Is(err, gojwt.ErrTokenMalformed):
			return 0, ErrTokenMalformed
		case errors.Is(err, gojwt.ErrTokenSignatureInvalid):
			return 0, ErrTokenSignatureInvalid
		case errors.Is(err, gojwt.ErrTokenExpired):
			return 0, ErrTokenExpired
		default:
			return 0, fmt.Errorf("%w: %v", ErrTokenInvalid, err)
		}
	}

	if !token.Valid || claims.UserID <= 0 {
		return 0, ErrTokenInvalid
	}

	return claims.UserID, nil
}
